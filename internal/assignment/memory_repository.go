package assignment

import (
	"context"
	"sync"
	"time"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

type seededAssignment struct {
	view     View
	enrolled map[int64]bool
}

// MemoryRepository is an in-memory assignment store for testing.
type MemoryRepository struct {
	mu          sync.Mutex
	assignments map[int64]*seededAssignment
	submissions map[[2]int64]Submission
	nextSubID   int64
}

// NewMemoryRepository builds an empty in-memory assignment store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		assignments: make(map[int64]*seededAssignment),
		submissions: make(map[[2]int64]Submission),
		nextSubID:   1,
	}
}

// Seed registers an assignment and the students enrolled in its course.
func (r *MemoryRepository) Seed(v View, enrolledStudents ...int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sa := &seededAssignment{view: v, enrolled: make(map[int64]bool)}
	for _, id := range enrolledStudents {
		sa.enrolled[id] = true
	}
	r.assignments[v.ID] = sa
}

func (r *MemoryRepository) ListForStudent(_ context.Context, studentID int64) ([]View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var views []View
	for id, sa := range r.assignments {
		if !sa.enrolled[studentID] {
			continue
		}
		v := sa.view
		if sub, ok := r.submissions[[2]int64{id, studentID}]; ok {
			v.SubmissionStatus = sub.Status
			date := sub.SubmissionDate
			v.SubmissionDate = &date
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *MemoryRepository) FindForStudent(_ context.Context, studentID, assignmentID int64) (View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sa, ok := r.assignments[assignmentID]
	if !ok || !sa.enrolled[studentID] {
		return View{}, apperr.NotFound("assignment not found or you are not enrolled in this course")
	}
	v := sa.view
	if sub, ok := r.submissions[[2]int64{assignmentID, studentID}]; ok {
		v.SubmissionStatus = sub.Status
		date := sub.SubmissionDate
		v.SubmissionDate = &date
	}
	return v, nil
}

func (r *MemoryRepository) CreateSubmission(_ context.Context, assignmentID, studentID int64, _ string) (Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]int64{assignmentID, studentID}
	if _, exists := r.submissions[key]; exists {
		return Submission{}, apperr.Conflict("assignment already submitted")
	}
	sub := Submission{ID: r.nextSubID, SubmissionDate: time.Now().UTC(), Status: "submitted"}
	r.nextSubID++
	r.submissions[key] = sub
	return sub, nil
}

func (r *MemoryRepository) Upcoming(_ context.Context, studentID int64) ([]Upcoming, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	var upcoming []Upcoming
	for _, sa := range r.assignments {
		if !sa.enrolled[studentID] || !sa.view.DueDate.After(now) {
			continue
		}
		upcoming = append(upcoming, Upcoming{
			ID:            sa.view.ID,
			Title:         sa.view.Title,
			DueDate:       sa.view.DueDate,
			CourseName:    sa.view.CourseName,
			CourseCode:    sa.view.CourseCode,
			DaysRemaining: sa.view.DueDate.Sub(now).Hours() / 24,
		})
	}
	return upcoming, nil
}
