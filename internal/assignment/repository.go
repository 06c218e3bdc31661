package assignment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

// Repository reads assignments through the student's enrollments and stores
// submissions.
type Repository interface {
	ListForStudent(ctx context.Context, studentID int64) ([]View, error)
	FindForStudent(ctx context.Context, studentID, assignmentID int64) (View, error)
	CreateSubmission(ctx context.Context, assignmentID, studentID int64, filePath string) (Submission, error)
	Upcoming(ctx context.Context, studentID int64) ([]Upcoming, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed assignment repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const viewQuery = `SELECT a.id, a.title, COALESCE(a.description, ''), a.due_date,
        COALESCE(a.max_marks, 0), COALESCE(a.file_path, ''),
        c.course_name, c.course_code,
        COALESCE(s.status, ''), s.submission_date, s.marks_obtained,
        COALESCE(s.feedback, ''), COALESCE(s.file_path, '')
    FROM assignments a
    JOIN courses c ON a.course_id = c.id
    JOIN enrollments e ON c.id = e.course_id
    LEFT JOIN submissions s ON a.id = s.assignment_id AND s.student_id = $1
    WHERE e.student_id = $1`

// ListForStudent returns all assignments in the student's enrolled courses
// joined with the student's own submissions.
func (r *PostgresRepository) ListForStudent(ctx context.Context, studentID int64) ([]View, error) {
	rows, err := r.db.Query(ctx, viewQuery+` ORDER BY a.due_date ASC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var views []View
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, rows.Err()
}

// FindForStudent returns one assignment if the student is enrolled in its
// course. Missing assignments and assignments in other students' courses are
// indistinguishable.
func (r *PostgresRepository) FindForStudent(ctx context.Context, studentID, assignmentID int64) (View, error) {
	row := r.db.QueryRow(ctx, viewQuery+` AND a.id = $2`, studentID, assignmentID)
	v, err := scanView(row)
	if err != nil {
		if apperr.IsNoRows(err) {
			return View{}, apperr.NotFound("assignment not found or you are not enrolled in this course")
		}
		return View{}, err
	}
	return v, nil
}

// CreateSubmission inserts the student's submission. The unique constraint
// on (assignment_id, student_id) makes a concurrent duplicate submission
// lose with a conflict instead of creating a second row.
func (r *PostgresRepository) CreateSubmission(ctx context.Context, assignmentID, studentID int64, filePath string) (Submission, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO submissions (assignment_id, student_id, file_path, submission_date, status)
        VALUES ($1, $2, NULLIF($3, ''), NOW(), 'submitted')
        RETURNING id, submission_date, status`, assignmentID, studentID, filePath)

	var sub Submission
	if err := row.Scan(&sub.ID, &sub.SubmissionDate, &sub.Status); err != nil {
		if apperr.IsUniqueViolation(err) {
			return Submission{}, apperr.Conflict("assignment already submitted")
		}
		return Submission{}, fmt.Errorf("insert submission: %w", err)
	}
	return sub, nil
}

// Upcoming returns future-due assignments for the student's courses.
func (r *PostgresRepository) Upcoming(ctx context.Context, studentID int64) ([]Upcoming, error) {
	rows, err := r.db.Query(ctx, `SELECT a.id, a.title, a.due_date, c.course_name, c.course_code,
            EXTRACT(EPOCH FROM (a.due_date - NOW())) / 86400
        FROM assignments a
        JOIN courses c ON a.course_id = c.id
        JOIN enrollments e ON c.id = e.course_id
        WHERE e.student_id = $1 AND a.due_date > NOW()
        ORDER BY a.due_date ASC
        LIMIT 10`, studentID)
	if err != nil {
		return nil, fmt.Errorf("upcoming assignments: %w", err)
	}
	defer rows.Close()

	var upcoming []Upcoming
	for rows.Next() {
		var u Upcoming
		if err := rows.Scan(&u.ID, &u.Title, &u.DueDate, &u.CourseName, &u.CourseCode, &u.DaysRemaining); err != nil {
			return nil, fmt.Errorf("scan upcoming assignment: %w", err)
		}
		upcoming = append(upcoming, u)
	}
	return upcoming, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanView(row rowScanner) (View, error) {
	var v View
	err := row.Scan(&v.ID, &v.Title, &v.Description, &v.DueDate, &v.MaxMarks, &v.FilePath,
		&v.CourseName, &v.CourseCode,
		&v.SubmissionStatus, &v.SubmissionDate, &v.MarksObtained, &v.Feedback, &v.SubmissionFile)
	if err != nil {
		return View{}, err
	}
	return v, nil
}
