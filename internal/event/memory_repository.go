package event

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

// MemoryRepository is an in-memory Repository for tests.
type MemoryRepository struct {
	mu            sync.Mutex
	events        map[int64]Event
	registrations map[[2]int64]Registration
	nextRegID     int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		events:        make(map[int64]Event),
		registrations: make(map[[2]int64]Registration),
		nextRegID:     1,
	}
}

// Seed stores an event.
func (r *MemoryRepository) Seed(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	r.events[ev.ID] = ev
}

func (r *MemoryRepository) List(_ context.Context, studentID int64, filter ListFilter) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	var events []Event
	for _, ev := range r.events {
		if filter.EventType != "" && ev.EventType != filter.EventType {
			continue
		}
		if filter.UpcomingOnly && (ev.EventDate == nil || ev.EventDate.Before(now)) {
			continue
		}
		events = append(events, r.decorateLocked(ev, studentID))
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (r *MemoryRepository) Find(_ context.Context, studentID, eventID int64) (Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, ok := r.events[eventID]
	if !ok {
		return Event{}, apperr.NotFound("event not found")
	}
	return r.decorateLocked(ev, studentID), nil
}

func (r *MemoryRepository) Register(_ context.Context, studentID, eventID int64) (Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, ok := r.events[eventID]
	if !ok {
		return Registration{}, apperr.NotFound("event not found")
	}
	key := [2]int64{eventID, studentID}
	if _, dup := r.registrations[key]; dup {
		return Registration{}, apperr.Conflict("already registered for this event")
	}
	if ev.MaxParticipants > 0 && r.countLocked(eventID) >= int64(ev.MaxParticipants) {
		return Registration{}, apperr.Full("event is full")
	}
	reg := Registration{
		ID:               r.nextRegID,
		EventID:          eventID,
		RegistrationDate: time.Now().UTC(),
		Status:           "registered",
	}
	r.nextRegID++
	r.registrations[key] = reg
	return reg, nil
}

func (r *MemoryRepository) Unregister(_ context.Context, studentID, eventID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]int64{eventID, studentID}
	if _, ok := r.registrations[key]; !ok {
		return apperr.NotFound("registration not found")
	}
	delete(r.registrations, key)
	return nil
}

func (r *MemoryRepository) ListRegistered(_ context.Context, studentID int64) ([]RegisteredEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var events []RegisteredEvent
	for key, reg := range r.registrations {
		if key[1] != studentID {
			continue
		}
		ev, ok := r.events[key[0]]
		if !ok {
			continue
		}
		events = append(events, RegisteredEvent{
			Event:            r.decorateLocked(ev, studentID),
			RegistrationID:   reg.ID,
			RegistrationDate: reg.RegistrationDate,
		})
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (r *MemoryRepository) countLocked(eventID int64) int64 {
	var n int64
	for key := range r.registrations {
		if key[0] == eventID {
			n++
		}
	}
	return n
}

func (r *MemoryRepository) decorateLocked(ev Event, studentID int64) Event {
	ev.RegisteredCount = r.countLocked(ev.ID)
	_, ev.IsRegistered = r.registrations[[2]int64{ev.ID, studentID}]
	return ev
}
