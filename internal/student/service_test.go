package student

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

func newTestService() *Service {
	return NewService(NewMemoryRepository(), NewMemoryReports(), bcrypt.MinCost)
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{
		StudentID: "STU100", Name: "Ada", Email: "a@x.com", Password: "pw",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, "pw", created.PasswordHash)

	authed, err := svc.Authenticate(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, created.ID, authed.ID)
}

func TestRegisterRequiresFields(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@x.com"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{StudentID: "STU100", Name: "Ada", Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{StudentID: "STU101", Name: "Bea", Email: "a@x.com", Password: "pw2"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestAuthenticateFailsUniformly(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{StudentID: "STU100", Name: "Ada", Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	_, wrongPassword := svc.Authenticate(ctx, "a@x.com", "nope")
	_, unknownEmail := svc.Authenticate(ctx, "ghost@x.com", "pw")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	// Same kind and message for both, so responses cannot be used to
	// enumerate accounts.
	assert.True(t, apperr.IsKind(wrongPassword, apperr.KindUnauthorized))
	assert.True(t, apperr.IsKind(unknownEmail, apperr.KindUnauthorized))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestUpdateProfilePartial(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{
		StudentID: "STU100", Name: "Ada", Email: "a@x.com", Password: "pw", Phone: "111",
	})
	require.NoError(t, err)

	phone := "222"
	updated, err := svc.UpdateProfile(ctx, created.ID, UpdateProfileInput{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "222", updated.Phone)
	assert.Equal(t, "Ada", updated.Name)
}
