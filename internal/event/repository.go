package event

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

// Repository stores events and registrations.
type Repository interface {
	List(ctx context.Context, studentID int64, filter ListFilter) ([]Event, error)
	Find(ctx context.Context, studentID, eventID int64) (Event, error)
	Register(ctx context.Context, studentID, eventID int64) (Registration, error)
	Unregister(ctx context.Context, studentID, eventID int64) error
	ListRegistered(ctx context.Context, studentID int64) ([]RegisteredEvent, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed event repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const eventColumns = `e.id, e.title, COALESCE(e.description, ''), e.event_date,
        COALESCE(e.location, ''), COALESCE(e.event_type, ''), COALESCE(e.max_participants, 0),
        e.registration_deadline, e.created_at,
        (SELECT COUNT(*) FROM event_registrations r WHERE r.event_id = e.id),
        EXISTS(SELECT 1 FROM event_registrations r WHERE r.event_id = e.id AND r.student_id = $1)`

// List returns events newest first, optionally narrowed by type or to
// upcoming dates only.
func (r *PostgresRepository) List(ctx context.Context, studentID int64, filter ListFilter) ([]Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e WHERE 1=1`
	args := []any{studentID}
	if filter.EventType != "" {
		args = append(args, filter.EventType)
		query += fmt.Sprintf(" AND e.event_type = $%d", len(args))
	}
	if filter.UpcomingOnly {
		query += " AND e.event_date >= NOW()"
	}
	query += " ORDER BY e.event_date ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// Find returns one event with the student's registration state.
func (r *PostgresRepository) Find(ctx context.Context, studentID, eventID int64) (Event, error) {
	row := r.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM events e WHERE e.id = $2`,
		studentID, eventID)
	ev, err := scanEvent(row)
	if err != nil {
		if apperr.IsNoRows(err) {
			return Event{}, apperr.NotFound("event not found")
		}
		return Event{}, err
	}
	return ev, nil
}

// Register inserts a registration only while the event still has room.
// The guarded insert and the unique constraint close the capacity and
// duplicate-registration races inside the database.
func (r *PostgresRepository) Register(ctx context.Context, studentID, eventID int64) (Registration, error) {
	var reg Registration
	err := r.db.QueryRow(ctx, `INSERT INTO event_registrations (event_id, student_id)
        SELECT e.id, $2 FROM events e
        WHERE e.id = $1
          AND (e.max_participants IS NULL OR e.max_participants <= 0 OR
               (SELECT COUNT(*) FROM event_registrations r WHERE r.event_id = e.id) < e.max_participants)
        RETURNING id, event_id, registration_date, status`,
		eventID, studentID).Scan(&reg.ID, &reg.EventID, &reg.RegistrationDate, &reg.Status)
	if err == nil {
		return reg, nil
	}
	if apperr.IsUniqueViolation(err) {
		return Registration{}, apperr.Conflict("already registered for this event")
	}
	if !apperr.IsNoRows(err) {
		return Registration{}, fmt.Errorf("register for event: %w", err)
	}

	// No row inserted: either the event does not exist or it is full.
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`,
		eventID).Scan(&exists); err != nil {
		return Registration{}, fmt.Errorf("check event: %w", err)
	}
	if !exists {
		return Registration{}, apperr.NotFound("event not found")
	}
	return Registration{}, apperr.Full("event is full")
}

// Unregister removes the student's registration.
func (r *PostgresRepository) Unregister(ctx context.Context, studentID, eventID int64) error {
	var id int64
	err := r.db.QueryRow(ctx, `DELETE FROM event_registrations
        WHERE event_id = $1 AND student_id = $2 RETURNING id`,
		eventID, studentID).Scan(&id)
	if err != nil {
		if apperr.IsNoRows(err) {
			return apperr.NotFound("registration not found")
		}
		return fmt.Errorf("unregister from event: %w", err)
	}
	return nil
}

// ListRegistered returns the events the student registered for.
func (r *PostgresRepository) ListRegistered(ctx context.Context, studentID int64) ([]RegisteredEvent, error) {
	rows, err := r.db.Query(ctx, `SELECT `+eventColumns+`, r.id, r.registration_date
        FROM event_registrations r
        JOIN events e ON r.event_id = e.id
        WHERE r.student_id = $1
        ORDER BY e.event_date ASC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("list registered events: %w", err)
	}
	defer rows.Close()

	var events []RegisteredEvent
	for rows.Next() {
		var re RegisteredEvent
		if err := rows.Scan(&re.ID, &re.Title, &re.Description, &re.EventDate,
			&re.Location, &re.EventType, &re.MaxParticipants,
			&re.RegistrationDeadline, &re.CreatedAt, &re.RegisteredCount, &re.IsRegistered,
			&re.RegistrationID, &re.RegistrationDate); err != nil {
			return nil, fmt.Errorf("scan registered event: %w", err)
		}
		events = append(events, re)
	}
	return events, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (Event, error) {
	var ev Event
	err := row.Scan(&ev.ID, &ev.Title, &ev.Description, &ev.EventDate,
		&ev.Location, &ev.EventType, &ev.MaxParticipants,
		&ev.RegistrationDeadline, &ev.CreatedAt, &ev.RegisteredCount, &ev.IsRegistered)
	if err != nil {
		return Event{}, err
	}
	return ev, nil
}
