package student

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

// Repository persists student identities.
type Repository interface {
	Create(ctx context.Context, s Student) (Student, error)
	FindByEmail(ctx context.Context, email string) (Student, error)
	FindByID(ctx context.Context, id int64) (Student, error)
	UpdateProfile(ctx context.Context, id int64, input UpdateProfileInput) (Student, error)
}

const studentColumns = `id, student_id, name, email, password,
        COALESCE(phone, ''), COALESCE(department, ''), COALESCE(year, 0), COALESCE(semester, 0),
        COALESCE(roll_number, ''), COALESCE(profile_image, ''), COALESCE(address, ''),
        COALESCE(TO_CHAR(date_of_birth, 'YYYY-MM-DD'), ''),
        COALESCE(parent_name, ''), COALESCE(parent_phone, ''), created_at`

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed student repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new student. Uniqueness of email, student_id and
// roll_number is enforced by the table constraints, so concurrent duplicate
// registrations cannot both succeed.
func (r *PostgresRepository) Create(ctx context.Context, s Student) (Student, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO students
        (student_id, name, email, password, phone, department, year, semester,
         roll_number, address, date_of_birth, parent_name, parent_phone)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, 0), NULLIF($8, 0),
                NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, '')::date, NULLIF($12, ''), NULLIF($13, ''))
        RETURNING id, created_at`,
		s.StudentID, s.Name, s.Email, s.PasswordHash, s.Phone, s.Department, s.Year, s.Semester,
		s.RollNumber, s.Address, s.DateOfBirth, s.ParentName, s.ParentPhone)

	if err := row.Scan(&s.ID, &s.CreatedAt); err != nil {
		if apperr.IsUniqueViolation(err) {
			return Student{}, apperr.Conflict("student with this email, student ID, or roll number already exists")
		}
		return Student{}, fmt.Errorf("insert student: %w", err)
	}
	return s, nil
}

// FindByEmail fetches a student, including the password hash, for credential
// verification.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (Student, error) {
	row := r.db.QueryRow(ctx, `SELECT `+studentColumns+` FROM students WHERE email = $1`, email)
	return scanStudent(row)
}

// FindByID fetches a student by internal id.
func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (Student, error) {
	row := r.db.QueryRow(ctx, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
	return scanStudent(row)
}

// UpdateProfile applies a partial update of the mutable profile fields.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int64, input UpdateProfileInput) (Student, error) {
	row := r.db.QueryRow(ctx, `UPDATE students
        SET name = COALESCE($1, name),
            phone = COALESCE($2, phone),
            address = COALESCE($3, address),
            parent_name = COALESCE($4, parent_name),
            parent_phone = COALESCE($5, parent_phone),
            updated_at = NOW()
        WHERE id = $6
        RETURNING `+studentColumns,
		input.Name, input.Phone, input.Address, input.ParentName, input.ParentPhone, id)
	return scanStudent(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudent(row rowScanner) (Student, error) {
	var s Student
	err := row.Scan(&s.ID, &s.StudentID, &s.Name, &s.Email, &s.PasswordHash,
		&s.Phone, &s.Department, &s.Year, &s.Semester,
		&s.RollNumber, &s.ProfileImage, &s.Address, &s.DateOfBirth,
		&s.ParentName, &s.ParentPhone, &s.CreatedAt)
	if err != nil {
		if apperr.IsNoRows(err) {
			return Student{}, apperr.NotFound("student not found")
		}
		return Student{}, fmt.Errorf("scan student: %w", err)
	}
	return s, nil
}
