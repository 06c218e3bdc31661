package assignment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

func TestSubmitSucceedsOnceThenConflicts(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Seed(View{ID: 1, Title: "Essay", DueDate: time.Now().Add(time.Hour)}, 7)
	svc := NewService(repo)
	ctx := context.Background()

	sub, err := svc.Submit(ctx, 7, 1, SubmitInput{FilePath: "essay.pdf"})
	require.NoError(t, err)
	assert.Equal(t, "submitted", sub.Status)

	_, err = svc.Submit(ctx, 7, 1, SubmitInput{FilePath: "essay-v2.pdf"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestSubmitAfterDeadlineExpires(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Seed(View{ID: 1, Title: "Essay", DueDate: time.Now().Add(-time.Minute)}, 7)
	svc := NewService(repo)

	_, err := svc.Submit(context.Background(), 7, 1, SubmitInput{})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindExpired))
}

func TestSubmitNotEnrolledIsNotFound(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Seed(View{ID: 1, Title: "Essay", DueDate: time.Now().Add(time.Hour)}, 7)
	svc := NewService(repo)

	_, err := svc.Submit(context.Background(), 99, 1, SubmitInput{})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestGetHidesOtherStudentsAssignments(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Seed(View{ID: 1, Title: "Essay", DueDate: time.Now().Add(time.Hour)}, 7)
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Get(ctx, 7, 1)
	require.NoError(t, err)

	// A student outside the course gets the same answer as for a missing
	// assignment.
	_, enrolledErr := svc.Get(ctx, 99, 1)
	_, missingErr := svc.Get(ctx, 7, 404)
	assert.True(t, apperr.IsKind(enrolledErr, apperr.KindNotFound))
	assert.True(t, apperr.IsKind(missingErr, apperr.KindNotFound))
	assert.Equal(t, enrolledErr.Error(), missingErr.Error())
}

func TestUpcomingSkipsPastDue(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Seed(View{ID: 1, Title: "Past", DueDate: time.Now().Add(-time.Hour)}, 7)
	repo.Seed(View{ID: 2, Title: "Future", DueDate: time.Now().Add(48 * time.Hour)}, 7)
	svc := NewService(repo)

	upcoming, err := svc.Upcoming(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, int64(2), upcoming[0].ID)
	assert.InDelta(t, 2.0, upcoming[0].DaysRemaining, 0.1)
}
