package event

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

func futureEvent(id int64, maxParticipants int) Event {
	date := time.Now().Add(7 * 24 * time.Hour)
	deadline := time.Now().Add(3 * 24 * time.Hour)
	return Event{
		ID:                   id,
		Title:                fmt.Sprintf("Event %d", id),
		EventDate:            &date,
		MaxParticipants:      maxParticipants,
		RegistrationDeadline: &deadline,
	}
}

func TestRegisterAndUnregister(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Seed(futureEvent(1, 50))
	svc := NewService(repo, nil)

	reg, err := svc.Register(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, "registered", reg.Status)

	ev, err := svc.Get(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.True(t, ev.IsRegistered)
	assert.Equal(t, int64(1), ev.RegisteredCount)

	require.NoError(t, svc.Unregister(context.Background(), 7, 1))

	err = svc.Unregister(context.Background(), 7, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestRegisterTwiceConflicts(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Seed(futureEvent(1, 50))
	svc := NewService(repo, nil)

	_, err := svc.Register(context.Background(), 7, 1)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), 7, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.EqualError(t, err, "already registered for this event")
}

func TestRegisterAfterDeadlineFails(t *testing.T) {
	repo := NewMemoryRepository()
	ev := futureEvent(1, 50)
	past := time.Now().Add(-time.Hour)
	ev.RegistrationDeadline = &past
	repo.Seed(ev)
	svc := NewService(repo, nil)

	_, err := svc.Register(context.Background(), 7, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindExpired))
	assert.EqualError(t, err, "registration deadline has passed")
}

func TestRegisterHonorsCapacity(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Seed(futureEvent(1, 3))
	svc := NewService(repo, nil)

	for studentID := int64(1); studentID <= 3; studentID++ {
		_, err := svc.Register(context.Background(), studentID, 1)
		require.NoError(t, err)
	}

	_, err := svc.Register(context.Background(), 4, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindFull))
	assert.EqualError(t, err, "event is full")
}

func TestRegisterMissingEventNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)

	_, err := svc.Register(context.Background(), 7, 99)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestListFilters(t *testing.T) {
	repo := NewMemoryRepository()
	workshop := futureEvent(1, 0)
	workshop.EventType = "workshop"
	repo.Seed(workshop)

	past := futureEvent(2, 0)
	pastDate := time.Now().Add(-24 * time.Hour)
	past.EventDate = &pastDate
	past.EventType = "seminar"
	repo.Seed(past)

	svc := NewService(repo, nil)

	all, err := svc.List(context.Background(), 7, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	upcoming, err := svc.List(context.Background(), 7, ListFilter{UpcomingOnly: true})
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, int64(1), upcoming[0].ID)

	seminars, err := svc.List(context.Background(), 7, ListFilter{EventType: "seminar"})
	require.NoError(t, err)
	require.Len(t, seminars, 1)
	assert.Equal(t, int64(2), seminars[0].ID)
}

func TestMyRegistrations(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Seed(futureEvent(1, 0))
	repo.Seed(futureEvent(2, 0))
	svc := NewService(repo, nil)

	_, err := svc.Register(context.Background(), 7, 2)
	require.NoError(t, err)

	mine, err := svc.MyRegistrations(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(2), mine[0].ID)
	assert.True(t, mine[0].IsRegistered)
}
