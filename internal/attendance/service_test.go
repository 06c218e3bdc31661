package attendance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

type stubRepository struct {
	records []Record
}

func (s stubRepository) Summary(context.Context, int64) ([]CourseSummary, error) { return nil, nil }
func (s stubRepository) ForCourse(context.Context, int64, int64) ([]Record, error) {
	return s.records, nil
}
func (s stubRepository) Monthly(context.Context, int64, int, int) ([]Record, error) {
	return s.records, nil
}

type stubEnrollments map[[2]int64]bool

func (s stubEnrollments) IsEnrolled(_ context.Context, studentID, courseID int64) (bool, error) {
	return s[[2]int64{studentID, courseID}], nil
}

func TestForCourseRequiresEnrollment(t *testing.T) {
	svc := NewService(stubRepository{records: []Record{{Status: "present"}}},
		stubEnrollments{{7, 1}: true})
	ctx := context.Background()

	records, err := svc.ForCourse(ctx, 7, 1)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = svc.ForCourse(ctx, 9, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	assert.EqualError(t, err, "you are not enrolled in this course")
}

func TestMonthlyValidatesMonth(t *testing.T) {
	svc := NewService(stubRepository{}, stubEnrollments{})

	for _, month := range []int{0, 13, -1} {
		_, err := svc.Monthly(context.Background(), 7, 2026, month)
		require.Error(t, err, "month %d", month)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	}

	_, err := svc.Monthly(context.Background(), 7, 2026, 6)
	assert.NoError(t, err)
}
