package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	signed, err := svc.Issue(42, "a@x.com")
	require.NoError(t, err)

	subject, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), subject.StudentID)
	assert.Equal(t, "a@x.com", subject.Email)
}

func TestVerifyRejectsExpired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	signed, err := svc.Issue(42, "a@x.com")
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
	assert.Contains(t, err.Error(), "expired")
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour)
	verifier := NewService("secret-b", time.Hour)

	signed, err := issuer.Issue(42, "a@x.com")
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(tok)
		assert.Error(t, err, "token %q", tok)
	}
}
