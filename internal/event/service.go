package event

import (
	"context"
	"fmt"
	"time"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

// Notifier records a notification for a student after a state change.
type Notifier interface {
	Notify(ctx context.Context, studentID int64, title, message, kind string) error
}

// Service exposes event browsing and registration.
type Service struct {
	repo     Repository
	notifier Notifier
	now      func() time.Time
}

// NewService creates an event service. notifier may be nil.
func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier, now: time.Now}
}

// List returns events matching the filter.
func (s *Service) List(ctx context.Context, studentID int64, filter ListFilter) ([]Event, error) {
	return s.repo.List(ctx, studentID, filter)
}

// Get returns one event with the student's registration state.
func (s *Service) Get(ctx context.Context, studentID, eventID int64) (Event, error) {
	return s.repo.Find(ctx, studentID, eventID)
}

// Register books the student onto the event. The deadline is checked
// here; capacity and duplicates are enforced by the storage layer so
// concurrent registrations cannot oversubscribe the event.
func (s *Service) Register(ctx context.Context, studentID, eventID int64) (Registration, error) {
	ev, err := s.repo.Find(ctx, studentID, eventID)
	if err != nil {
		return Registration{}, err
	}
	if ev.RegistrationDeadline != nil && s.now().After(*ev.RegistrationDeadline) {
		return Registration{}, apperr.Expired("registration deadline has passed")
	}

	reg, err := s.repo.Register(ctx, studentID, eventID)
	if err != nil {
		return Registration{}, err
	}

	if s.notifier != nil {
		// Best effort; the registration stands even if the notification
		// write fails.
		_ = s.notifier.Notify(ctx, studentID, "Event registration confirmed",
			fmt.Sprintf("You are registered for %s", ev.Title), "event")
	}
	return reg, nil
}

// Unregister releases the student's spot.
func (s *Service) Unregister(ctx context.Context, studentID, eventID int64) error {
	return s.repo.Unregister(ctx, studentID, eventID)
}

// MyRegistrations returns the events the student registered for.
func (s *Service) MyRegistrations(ctx context.Context, studentID int64) ([]RegisteredEvent, error) {
	return s.repo.ListRegistered(ctx, studentID)
}
