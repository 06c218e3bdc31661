package notification

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

func testCache(t *testing.T) *redis.Client {
	t.Helper()
	srv := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: srv.Addr()})
}

func TestNotifyAndList(t *testing.T) {
	svc := NewService(NewMemoryRepository(), testCache(t))
	ctx := context.Background()

	require.NoError(t, svc.Notify(ctx, 7, "Payment received", "Your tuition payment was received", "fee"))
	require.NoError(t, svc.Notify(ctx, 7, "Event registration confirmed", "You are registered for Tech Fest", "event"))
	require.NoError(t, svc.Notify(ctx, 9, "Payment received", "Your hostel payment was received", "fee"))

	mine, err := svc.List(ctx, 7, false)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Event registration confirmed", mine[0].Title)
}

func TestUnreadCountUsesCache(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, testCache(t))
	ctx := context.Background()

	require.NoError(t, svc.Notify(ctx, 7, "a", "", "system"))
	require.NoError(t, svc.Notify(ctx, 7, "b", "", "system"))

	count, err := svc.UnreadCount(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Warm cache serves the same value without touching the repository.
	count, err = svc.UnreadCount(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, svc.MarkRead(ctx, 7, mine(t, svc, 7)[0].ID))

	count, err = svc.UnreadCount(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func mine(t *testing.T, svc *Service, studentID int64) []Notification {
	t.Helper()
	notifications, err := svc.List(context.Background(), studentID, false)
	require.NoError(t, err)
	require.NotEmpty(t, notifications)
	return notifications
}

func TestMarkAllReadReturnsExactCount(t *testing.T) {
	svc := NewService(NewMemoryRepository(), testCache(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Notify(ctx, 7, "n", "", "system"))
	}
	require.NoError(t, svc.Notify(ctx, 9, "other", "", "system"))

	changed, err := svc.MarkAllRead(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), changed)

	// Already read; nothing left to change.
	changed, err = svc.MarkAllRead(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), changed)
}

func TestMarkReadOwnershipGuard(t *testing.T) {
	svc := NewService(NewMemoryRepository(), testCache(t))
	ctx := context.Background()

	require.NoError(t, svc.Notify(ctx, 7, "n", "", "system"))
	id := mine(t, svc, 7)[0].ID

	err := svc.MarkRead(ctx, 9, id)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestDeleteNotification(t *testing.T) {
	svc := NewService(NewMemoryRepository(), testCache(t))
	ctx := context.Background()

	require.NoError(t, svc.Notify(ctx, 7, "n", "", "system"))
	id := mine(t, svc, 7)[0].ID

	require.NoError(t, svc.Delete(ctx, 7, id))

	err := svc.Delete(ctx, 7, id)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
