package attendance

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads attendance records scoped by student.
type Repository interface {
	Summary(ctx context.Context, studentID int64) ([]CourseSummary, error)
	ForCourse(ctx context.Context, studentID, courseID int64) ([]Record, error)
	Monthly(ctx context.Context, studentID int64, year, month int) ([]Record, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed attendance repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Summary aggregates attendance per course for the student.
func (r *PostgresRepository) Summary(ctx context.Context, studentID int64) ([]CourseSummary, error) {
	rows, err := r.db.Query(ctx, `SELECT c.course_name, c.course_code,
            COUNT(*),
            COUNT(*) FILTER (WHERE a.status = 'present'),
            COUNT(*) FILTER (WHERE a.status = 'absent'),
            COUNT(*) FILTER (WHERE a.status = 'late'),
            ROUND(COUNT(*) FILTER (WHERE a.status = 'present') * 100.0 / COUNT(*), 2)
        FROM attendance a
        JOIN courses c ON a.course_id = c.id
        WHERE a.student_id = $1
        GROUP BY c.course_name, c.course_code
        ORDER BY c.course_name`, studentID)
	if err != nil {
		return nil, fmt.Errorf("attendance summary: %w", err)
	}
	defer rows.Close()

	var summaries []CourseSummary
	for rows.Next() {
		var s CourseSummary
		if err := rows.Scan(&s.CourseName, &s.CourseCode, &s.TotalClasses,
			&s.PresentClasses, &s.AbsentClasses, &s.LateClasses, &s.AttendancePercentage); err != nil {
			return nil, fmt.Errorf("scan attendance summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// ForCourse lists the student's attendance in one course.
func (r *PostgresRepository) ForCourse(ctx context.Context, studentID, courseID int64) ([]Record, error) {
	rows, err := r.db.Query(ctx, `SELECT a.date, a.status, COALESCE(a.remarks, ''), c.course_name
        FROM attendance a
        JOIN courses c ON a.course_id = c.id
        WHERE a.student_id = $1 AND a.course_id = $2
        ORDER BY a.date DESC`, studentID, courseID)
	if err != nil {
		return nil, fmt.Errorf("course attendance: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Date, &rec.Status, &rec.Remarks, &rec.CourseName); err != nil {
			return nil, fmt.Errorf("scan course attendance: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Monthly lists the student's attendance in a calendar month.
func (r *PostgresRepository) Monthly(ctx context.Context, studentID int64, year, month int) ([]Record, error) {
	rows, err := r.db.Query(ctx, `SELECT a.date, a.status, COALESCE(a.remarks, ''), c.course_name, c.course_code
        FROM attendance a
        JOIN courses c ON a.course_id = c.id
        WHERE a.student_id = $1
          AND EXTRACT(YEAR FROM a.date) = $2
          AND EXTRACT(MONTH FROM a.date) = $3
        ORDER BY a.date DESC`, studentID, year, month)
	if err != nil {
		return nil, fmt.Errorf("monthly attendance: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Date, &rec.Status, &rec.Remarks, &rec.CourseName, &rec.CourseCode); err != nil {
			return nil, fmt.Errorf("scan monthly attendance: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
