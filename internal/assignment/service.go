package assignment

import (
	"context"
	"time"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

// Service exposes assignment reads and the submission flow.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates an assignment service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns assignments across the student's enrolled courses.
func (s *Service) List(ctx context.Context, studentID int64) ([]View, error) {
	return s.repo.ListForStudent(ctx, studentID)
}

// Get returns one assignment, guarded by enrollment.
func (s *Service) Get(ctx context.Context, studentID, assignmentID int64) (View, error) {
	return s.repo.FindForStudent(ctx, studentID, assignmentID)
}

// Submit records the student's submission. Preconditions: enrollment
// (lookup joins enrollments), deadline not passed, not already submitted.
// The duplicate check is enforced by the storage layer so two concurrent
// submissions cannot both insert.
func (s *Service) Submit(ctx context.Context, studentID, assignmentID int64, input SubmitInput) (Submission, error) {
	view, err := s.repo.FindForStudent(ctx, studentID, assignmentID)
	if err != nil {
		return Submission{}, err
	}

	if s.now().After(view.DueDate) {
		return Submission{}, apperr.Expired("assignment submission deadline has passed")
	}

	return s.repo.CreateSubmission(ctx, assignmentID, studentID, input.FilePath)
}

// Upcoming returns future-due assignments, soonest first.
func (s *Service) Upcoming(ctx context.Context, studentID int64) ([]Upcoming, error) {
	return s.repo.Upcoming(ctx, studentID)
}
