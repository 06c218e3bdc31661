package event

import "time"

// Event is a campus event. RegisteredCount and IsRegistered are computed
// per request for the authenticated student.
type Event struct {
	ID                   int64      `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description,omitempty"`
	EventDate            *time.Time `json:"event_date,omitempty"`
	Location             string     `json:"location,omitempty"`
	EventType            string     `json:"event_type,omitempty"`
	MaxParticipants      int        `json:"max_participants,omitempty"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	RegisteredCount      int64      `json:"registered_count"`
	IsRegistered         bool       `json:"is_registered"`
}

// Registration records a student's spot at an event.
type Registration struct {
	ID               int64     `json:"id"`
	EventID          int64     `json:"event_id"`
	RegistrationDate time.Time `json:"registration_date"`
	Status           string    `json:"status"`
}

// RegisteredEvent is an event joined with the student's registration.
type RegisteredEvent struct {
	Event
	RegistrationID   int64     `json:"registration_id"`
	RegistrationDate time.Time `json:"registration_date"`
}

// ListFilter narrows the event listing.
type ListFilter struct {
	EventType    string
	UpcomingOnly bool
}
