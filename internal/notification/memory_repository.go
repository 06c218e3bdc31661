package notification

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
	notifications map[int64]Notification
	nextID        int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{notifications: make(map[int64]Notification), nextID: 1}
}

func (r *MemoryRepository) Create(_ context.Context, n Notification) (Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = r.nextID
	r.nextID++
	n.IsRead = false
	n.CreatedAt = time.Now().UTC()
	r.notifications[n.ID] = n
	return n, nil
}

func (r *MemoryRepository) List(_ context.Context, studentID int64, unreadOnly bool) ([]Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var notifications []Notification
	for _, n := range r.notifications {
		if n.StudentID != studentID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		notifications = append(notifications, n)
	}
	sort.Slice(notifications, func(i, j int) bool { return notifications[i].ID > notifications[j].ID })
	return notifications, nil
}

func (r *MemoryRepository) MarkRead(_ context.Context, studentID, notificationID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[notificationID]
	if !ok || n.StudentID != studentID {
		return apperr.NotFound("notification not found")
	}
	n.IsRead = true
	r.notifications[notificationID] = n
	return nil
}

func (r *MemoryRepository) MarkAllRead(_ context.Context, studentID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var changed int64
	for id, n := range r.notifications {
		if n.StudentID == studentID && !n.IsRead {
			n.IsRead = true
			r.notifications[id] = n
			changed++
		}
	}
	return changed, nil
}

func (r *MemoryRepository) UnreadCount(_ context.Context, studentID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, n := range r.notifications {
		if n.StudentID == studentID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *MemoryRepository) Delete(_ context.Context, studentID, notificationID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[notificationID]
	if !ok || n.StudentID != studentID {
		return apperr.NotFound("notification not found")
	}
	delete(r.notifications, notificationID)
	return nil
}
