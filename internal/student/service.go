package student

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

// Service manages the student identity lifecycle and profile reads.
type Service struct {
	repo    Repository
	reports Reports
	cost    int
}

// NewService creates a student service. cost is the bcrypt work factor.
func NewService(repo Repository, reports Reports, cost int) *Service {
	if cost == 0 {
		cost = 12
	}
	return &Service{repo: repo, reports: reports, cost: cost}
}

// Register hashes the password and persists a new student. Duplicate email,
// student id or roll number surfaces as a single uniform conflict.
func (s *Service) Register(ctx context.Context, input RegisterInput) (Student, error) {
	if input.StudentID == "" || input.Name == "" || input.Email == "" || input.Password == "" {
		return Student{}, apperr.Validation("student ID, name, email, and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return Student{}, fmt.Errorf("hash password: %w", err)
	}

	return s.repo.Create(ctx, Student{
		StudentID:    input.StudentID,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Department:   input.Department,
		Year:         input.Year,
		Semester:     input.Semester,
		RollNumber:   input.RollNumber,
		Address:      input.Address,
		DateOfBirth:  input.DateOfBirth,
		ParentName:   input.ParentName,
		ParentPhone:  input.ParentPhone,
	})
}

// Authenticate verifies credentials. Unknown email and wrong password fail
// with the same error so the response does not reveal which one it was.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Student, error) {
	if email == "" || password == "" {
		return Student{}, apperr.Validation("email and password are required")
	}

	found, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return Student{}, apperr.Unauthorized("invalid email or password")
		}
		return Student{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		return Student{}, apperr.Unauthorized("invalid email or password")
	}

	return found, nil
}

// Get fetches a student by internal id.
func (s *Service) Get(ctx context.Context, id int64) (Student, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile applies a partial update of mutable profile fields.
func (s *Service) UpdateProfile(ctx context.Context, id int64, input UpdateProfileInput) (Student, error) {
	return s.repo.UpdateProfile(ctx, id, input)
}

// Dashboard returns the aggregate dashboard payload for the student.
func (s *Service) Dashboard(ctx context.Context, id int64) (Dashboard, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Dashboard{}, err
	}
	d, err := s.reports.Dashboard(ctx, id)
	if err != nil {
		return Dashboard{}, err
	}
	profile.PasswordHash = ""
	d.Student = profile
	return d, nil
}

// AcademicPerformance returns semester SGPA and graded courses.
func (s *Service) AcademicPerformance(ctx context.Context, id int64) (Performance, error) {
	return s.reports.AcademicPerformance(ctx, id)
}
