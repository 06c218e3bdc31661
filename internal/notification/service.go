package notification

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const unreadCacheTTL = time.Minute

// Service exposes the notification inbox. The unread counter is cached
// in Redis because clients poll it; cache errors fall back to the
// database. cache may be nil.
type Service struct {
	repo  Repository
	cache *redis.Client
}

func NewService(repo Repository, cache *redis.Client) *Service {
	return &Service{repo: repo, cache: cache}
}

// Notify stores a notification for the student. Other services call this
// after state changes such as fee payments and event registrations.
func (s *Service) Notify(ctx context.Context, studentID int64, title, message, kind string) error {
	_, err := s.repo.Create(ctx, Notification{
		StudentID: studentID,
		Title:     title,
		Message:   message,
		Type:      kind,
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx, studentID)
	return nil
}

// List returns the student's notifications.
func (s *Service) List(ctx context.Context, studentID int64, unreadOnly bool) ([]Notification, error) {
	return s.repo.List(ctx, studentID, unreadOnly)
}

// MarkRead flags one notification as read.
func (s *Service) MarkRead(ctx context.Context, studentID, notificationID int64) error {
	if err := s.repo.MarkRead(ctx, studentID, notificationID); err != nil {
		return err
	}
	s.invalidate(ctx, studentID)
	return nil
}

// MarkAllRead flags every unread notification and returns how many changed.
func (s *Service) MarkAllRead(ctx context.Context, studentID int64) (int64, error) {
	changed, err := s.repo.MarkAllRead(ctx, studentID)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx, studentID)
	return changed, nil
}

// UnreadCount returns the unread counter, served from cache when warm.
func (s *Service) UnreadCount(ctx context.Context, studentID int64) (int64, error) {
	key := unreadKey(studentID)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
			if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return count, nil
			}
		}
	}

	count, err := s.repo.UnreadCount(ctx, studentID)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, key, strconv.FormatInt(count, 10), unreadCacheTTL)
	}
	return count, nil
}

// Delete removes one notification.
func (s *Service) Delete(ctx context.Context, studentID, notificationID int64) error {
	if err := s.repo.Delete(ctx, studentID, notificationID); err != nil {
		return err
	}
	s.invalidate(ctx, studentID)
	return nil
}

func (s *Service) invalidate(ctx context.Context, studentID int64) {
	if s.cache != nil {
		s.cache.Del(ctx, unreadKey(studentID))
	}
}

func unreadKey(studentID int64) string {
	return "notif:unread:" + strconv.FormatInt(studentID, 10)
}
