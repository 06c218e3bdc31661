package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/campus_hub/internal/logging"
	"github.com/campus-hub/campus_hub/internal/respond"
	"github.com/campus-hub/campus_hub/internal/token"
)

func authTestApp(t *testing.T, tokens *token.Service) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{
		ErrorHandler: respond.ErrorHandler(logging.Discard(), false),
	})
	app.Get("/protected", Auth(tokens), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"student_id": StudentID(c), "email": StudentEmail(c)})
	})
	return app
}

func TestAuthRejectsMissingToken(t *testing.T) {
	app := authTestApp(t, token.NewService("secret", time.Hour))

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var envelope respond.Envelope
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "access token required", envelope.Message)
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	app := authTestApp(t, token.NewService("secret", time.Hour))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthAcceptsValidToken(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	app := authTestApp(t, tokens)

	issued, err := tokens.Issue(42, "alex@univ.edu")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issued)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload struct {
		StudentID int64  `json:"student_id"`
		Email     string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, int64(42), payload.StudentID)
	assert.Equal(t, "alex@univ.edu", payload.Email)
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	expired := token.NewService("secret", -time.Minute)
	app := authTestApp(t, token.NewService("secret", time.Hour))

	issued, err := expired.Issue(42, "alex@univ.edu")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issued)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
