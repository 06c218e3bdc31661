package notification

import "time"

// Notification is a message delivered to a single student.
type Notification struct {
	ID        int64     `json:"id"`
	StudentID int64     `json:"-"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	Type      string    `json:"type,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
