package student

import (
	"context"
	"sync"
	"time"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

type memoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]Student
}

// NewMemoryRepository builds an in-memory student store for testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{nextID: 1, byID: make(map[int64]Student)}
}

func (r *memoryRepository) Create(_ context.Context, s Student) (Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == s.Email || existing.StudentID == s.StudentID ||
			(s.RollNumber != "" && existing.RollNumber == s.RollNumber) {
			return Student{}, apperr.Conflict("student with this email, student ID, or roll number already exists")
		}
	}
	s.ID = r.nextID
	s.CreatedAt = time.Now().UTC()
	r.nextID++
	r.byID[s.ID] = s
	return s, nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.byID {
		if s.Email == email {
			return s, nil
		}
	}
	return Student{}, apperr.NotFound("student not found")
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return Student{}, apperr.NotFound("student not found")
	}
	return s, nil
}

func (r *memoryRepository) UpdateProfile(_ context.Context, id int64, input UpdateProfileInput) (Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok {
		return Student{}, apperr.NotFound("student not found")
	}
	if input.Name != nil {
		s.Name = *input.Name
	}
	if input.Phone != nil {
		s.Phone = *input.Phone
	}
	if input.Address != nil {
		s.Address = *input.Address
	}
	if input.ParentName != nil {
		s.ParentName = *input.ParentName
	}
	if input.ParentPhone != nil {
		s.ParentPhone = *input.ParentPhone
	}
	r.byID[id] = s
	return s, nil
}

type memoryReports struct{}

// NewMemoryReports returns a Reports implementation with empty aggregates,
// for wiring handlers in tests.
func NewMemoryReports() Reports {
	return memoryReports{}
}

func (memoryReports) Dashboard(_ context.Context, _ int64) (Dashboard, error) {
	return Dashboard{}, nil
}

func (memoryReports) AcademicPerformance(_ context.Context, _ int64) (Performance, error) {
	return Performance{}, nil
}
