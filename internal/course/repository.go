package course

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

// Repository reads courses through the student's enrollments.
type Repository interface {
	ListEnrolled(ctx context.Context, studentID int64) ([]EnrolledCourse, error)
	IsEnrolled(ctx context.Context, studentID, courseID int64) (bool, error)
	Detail(ctx context.Context, studentID, courseID int64) (Detail, error)
	ListActive(ctx context.Context, studentID int64) ([]Course, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed course repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListEnrolled returns the student's courses joined with enrollment state.
func (r *PostgresRepository) ListEnrolled(ctx context.Context, studentID int64) ([]EnrolledCourse, error) {
	rows, err := r.db.Query(ctx, `SELECT c.id, c.course_code, c.course_name, COALESCE(c.credits, 0),
            COALESCE(c.faculty_name, ''), COALESCE(c.faculty_email, ''), COALESCE(c.description, ''),
            COALESCE(e.semester, 0), COALESCE(e.year, 0), COALESCE(e.grade, ''), e.status
        FROM enrollments e
        JOIN courses c ON e.course_id = c.id
        WHERE e.student_id = $1
        ORDER BY e.year DESC, e.semester DESC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("list enrolled courses: %w", err)
	}
	defer rows.Close()

	var courses []EnrolledCourse
	for rows.Next() {
		var ec EnrolledCourse
		if err := rows.Scan(&ec.ID, &ec.CourseCode, &ec.CourseName, &ec.Credits,
			&ec.FacultyName, &ec.FacultyEmail, &ec.Description,
			&ec.EnrollmentSemester, &ec.EnrollmentYear, &ec.Grade, &ec.Status); err != nil {
			return nil, fmt.Errorf("scan enrolled course: %w", err)
		}
		courses = append(courses, ec)
	}
	return courses, rows.Err()
}

// IsEnrolled reports whether the student holds an enrollment for the course.
func (r *PostgresRepository) IsEnrolled(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(
            SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check enrollment: %w", err)
	}
	return exists, nil
}

// Detail returns the course with its assignments and the student's
// attendance records.
func (r *PostgresRepository) Detail(ctx context.Context, studentID, courseID int64) (Detail, error) {
	var d Detail

	row := r.db.QueryRow(ctx, `SELECT id, course_code, course_name, COALESCE(department, ''),
            COALESCE(semester, 0), COALESCE(credits, 0), COALESCE(faculty_name, ''),
            COALESCE(faculty_email, ''), COALESCE(description, '')
        FROM courses WHERE id = $1`, courseID)
	err := row.Scan(&d.Course.ID, &d.Course.CourseCode, &d.Course.CourseName, &d.Course.Department,
		&d.Course.Semester, &d.Course.Credits, &d.Course.FacultyName,
		&d.Course.FacultyEmail, &d.Course.Description)
	if err != nil {
		if apperr.IsNoRows(err) {
			return Detail{}, apperr.NotFound("course not found")
		}
		return Detail{}, fmt.Errorf("get course: %w", err)
	}

	assignRows, err := r.db.Query(ctx, `SELECT id, title, COALESCE(description, ''), due_date,
            COALESCE(max_marks, 0), COALESCE(file_path, '')
        FROM assignments WHERE course_id = $1 ORDER BY due_date ASC`, courseID)
	if err != nil {
		return Detail{}, fmt.Errorf("list course assignments: %w", err)
	}
	defer assignRows.Close()
	for assignRows.Next() {
		var a Assignment
		if err := assignRows.Scan(&a.ID, &a.Title, &a.Description, &a.DueDate, &a.MaxMarks, &a.FilePath); err != nil {
			return Detail{}, fmt.Errorf("scan course assignment: %w", err)
		}
		d.Assignments = append(d.Assignments, a)
	}
	if err := assignRows.Err(); err != nil {
		return Detail{}, fmt.Errorf("list course assignments: %w", err)
	}

	attRows, err := r.db.Query(ctx, `SELECT date, status, COALESCE(remarks, '')
        FROM attendance WHERE student_id = $1 AND course_id = $2 ORDER BY date DESC`,
		studentID, courseID)
	if err != nil {
		return Detail{}, fmt.Errorf("list course attendance: %w", err)
	}
	defer attRows.Close()
	for attRows.Next() {
		var rec AttendanceRecord
		if err := attRows.Scan(&rec.Date, &rec.Status, &rec.Remarks); err != nil {
			return Detail{}, fmt.Errorf("scan course attendance: %w", err)
		}
		d.Attendance = append(d.Attendance, rec)
	}
	return d, attRows.Err()
}

// ListActive returns the student's active-enrollment courses for the
// timetable view.
func (r *PostgresRepository) ListActive(ctx context.Context, studentID int64) ([]Course, error) {
	rows, err := r.db.Query(ctx, `SELECT c.id, c.course_code, c.course_name, COALESCE(c.credits, 0),
            COALESCE(c.faculty_name, '')
        FROM enrollments e
        JOIN courses c ON e.course_id = c.id
        WHERE e.student_id = $1 AND e.status = 'active'
        ORDER BY c.course_name`, studentID)
	if err != nil {
		return nil, fmt.Errorf("list active courses: %w", err)
	}
	defer rows.Close()

	var courses []Course
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.ID, &c.CourseCode, &c.CourseName, &c.Credits, &c.FacultyName); err != nil {
			return nil, fmt.Errorf("scan active course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
