package attendance

import (
	"context"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

// EnrollmentChecker answers whether a student is enrolled in a course. The
// course repository satisfies it.
type EnrollmentChecker interface {
	IsEnrolled(ctx context.Context, studentID, courseID int64) (bool, error)
}

// Service exposes attendance reads guarded by enrollments.
type Service struct {
	repo        Repository
	enrollments EnrollmentChecker
}

// NewService creates an attendance service.
func NewService(repo Repository, enrollments EnrollmentChecker) *Service {
	return &Service{repo: repo, enrollments: enrollments}
}

// Summary aggregates attendance per course.
func (s *Service) Summary(ctx context.Context, studentID int64) ([]CourseSummary, error) {
	return s.repo.Summary(ctx, studentID)
}

// ForCourse returns per-course attendance after the enrollment guard.
func (s *Service) ForCourse(ctx context.Context, studentID, courseID int64) ([]Record, error) {
	enrolled, err := s.enrollments.IsEnrolled(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperr.Forbidden("you are not enrolled in this course")
	}
	return s.repo.ForCourse(ctx, studentID, courseID)
}

// Monthly returns the student's attendance for a calendar month.
func (s *Service) Monthly(ctx context.Context, studentID int64, year, month int) ([]Record, error) {
	if month < 1 || month > 12 {
		return nil, apperr.Validation("month must be between 1 and 12")
	}
	return s.repo.Monthly(ctx, studentID, year, month)
}
