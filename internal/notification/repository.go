package notification

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

// Repository stores per-student notifications.
type Repository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	List(ctx context.Context, studentID int64, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, studentID, notificationID int64) error
	MarkAllRead(ctx context.Context, studentID int64) (int64, error)
	UnreadCount(ctx context.Context, studentID int64) (int64, error)
	Delete(ctx context.Context, studentID, notificationID int64) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed notification repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create stores a notification.
func (r *PostgresRepository) Create(ctx context.Context, n Notification) (Notification, error) {
	err := r.db.QueryRow(ctx, `INSERT INTO notifications (student_id, title, message, type)
        VALUES ($1, $2, $3, $4)
        RETURNING id, is_read, created_at`,
		n.StudentID, n.Title, n.Message, n.Type).Scan(&n.ID, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return Notification{}, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

// List returns the student's notifications, newest first.
func (r *PostgresRepository) List(ctx context.Context, studentID int64, unreadOnly bool) ([]Notification, error) {
	query := `SELECT id, title, COALESCE(message, ''), COALESCE(type, ''), is_read, created_at
        FROM notifications WHERE student_id = $1`
	if unreadOnly {
		query += " AND is_read = FALSE"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []Notification
	for rows.Next() {
		n := Notification{StudentID: studentID}
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead flags one notification owned by the student as read.
func (r *PostgresRepository) MarkRead(ctx context.Context, studentID, notificationID int64) error {
	var id int64
	err := r.db.QueryRow(ctx, `UPDATE notifications SET is_read = TRUE
        WHERE id = $1 AND student_id = $2 RETURNING id`,
		notificationID, studentID).Scan(&id)
	if err != nil {
		if apperr.IsNoRows(err) {
			return apperr.NotFound("notification not found")
		}
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead flags every unread notification and returns how many changed.
func (r *PostgresRepository) MarkAllRead(ctx context.Context, studentID int64) (int64, error) {
	cmd, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = TRUE
        WHERE student_id = $1 AND is_read = FALSE`, studentID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// UnreadCount returns how many notifications the student has not read.
func (r *PostgresRepository) UnreadCount(ctx context.Context, studentID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications
        WHERE student_id = $1 AND is_read = FALSE`, studentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// Delete removes one notification owned by the student.
func (r *PostgresRepository) Delete(ctx context.Context, studentID, notificationID int64) error {
	var id int64
	err := r.db.QueryRow(ctx, `DELETE FROM notifications
        WHERE id = $1 AND student_id = $2 RETURNING id`,
		notificationID, studentID).Scan(&id)
	if err != nil {
		if apperr.IsNoRows(err) {
			return apperr.NotFound("notification not found")
		}
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}
