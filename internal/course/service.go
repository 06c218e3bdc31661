package course

import (
	"context"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

// Service exposes course reads guarded by the student's enrollments.
type Service struct {
	repo Repository
}

// NewService creates a course service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the student's enrolled courses.
func (s *Service) List(ctx context.Context, studentID int64) ([]EnrolledCourse, error) {
	return s.repo.ListEnrolled(ctx, studentID)
}

// Detail returns course detail after confirming the student is enrolled.
func (s *Service) Detail(ctx context.Context, studentID, courseID int64) (Detail, error) {
	enrolled, err := s.repo.IsEnrolled(ctx, studentID, courseID)
	if err != nil {
		return Detail{}, err
	}
	if !enrolled {
		return Detail{}, apperr.Forbidden("you are not enrolled in this course")
	}
	return s.repo.Detail(ctx, studentID, courseID)
}

// Timetable returns the student's active courses with the weekly schedule.
// The schedule itself is a fixed structure until class scheduling gets its
// own storage.
func (s *Service) Timetable(ctx context.Context, studentID int64) ([]Course, map[string][]TimetableSlot, error) {
	courses, err := s.repo.ListActive(ctx, studentID)
	if err != nil {
		return nil, nil, err
	}
	return courses, weeklySchedule(), nil
}

func weeklySchedule() map[string][]TimetableSlot {
	return map[string][]TimetableSlot{
		"monday": {
			{Time: "09:00-10:00", Course: "Data Structures", Faculty: "Dr. Alice Johnson", Room: "CS-101"},
			{Time: "11:00-12:00", Course: "Database Systems", Faculty: "Dr. Bob Wilson", Room: "CS-102"},
		},
		"tuesday": {
			{Time: "10:00-11:00", Course: "Data Structures", Faculty: "Dr. Alice Johnson", Room: "CS-101"},
			{Time: "14:00-15:00", Course: "Database Systems", Faculty: "Dr. Bob Wilson", Room: "CS-102"},
		},
		"wednesday": {
			{Time: "09:00-10:00", Course: "Data Structures", Faculty: "Dr. Alice Johnson", Room: "CS-101"},
		},
		"thursday": {
			{Time: "11:00-12:00", Course: "Database Systems", Faculty: "Dr. Bob Wilson", Room: "CS-102"},
		},
		"friday": {
			{Time: "10:00-11:00", Course: "Data Structures", Faculty: "Dr. Alice Johnson", Room: "CS-101"},
			{Time: "15:00-16:00", Course: "Database Systems", Faculty: "Dr. Bob Wilson", Room: "CS-102"},
		},
	}
}
