package course

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

type stubRepository struct {
	enrolled map[[2]int64]bool
	detail   Detail
	active   []Course
}

func (s stubRepository) ListEnrolled(context.Context, int64) ([]EnrolledCourse, error) {
	return nil, nil
}

func (s stubRepository) IsEnrolled(_ context.Context, studentID, courseID int64) (bool, error) {
	return s.enrolled[[2]int64{studentID, courseID}], nil
}

func (s stubRepository) Detail(context.Context, int64, int64) (Detail, error) {
	return s.detail, nil
}

func (s stubRepository) ListActive(context.Context, int64) ([]Course, error) {
	return s.active, nil
}

func TestDetailRequiresEnrollment(t *testing.T) {
	repo := stubRepository{
		enrolled: map[[2]int64]bool{{7, 1}: true},
		detail:   Detail{Course: Course{ID: 1, CourseCode: "CS101"}},
	}
	svc := NewService(repo)
	ctx := context.Background()

	d, err := svc.Detail(ctx, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, "CS101", d.Course.CourseCode)

	_, err = svc.Detail(ctx, 9, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	assert.EqualError(t, err, "you are not enrolled in this course")
}

func TestTimetableReturnsScheduleForActiveCourses(t *testing.T) {
	repo := stubRepository{active: []Course{{ID: 1, CourseCode: "CS101"}}}
	svc := NewService(repo)

	courses, timetable, err := svc.Timetable(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.NotEmpty(t, timetable["monday"])
}
