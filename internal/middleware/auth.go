package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/campus-hub/campus_hub/internal/apperr"
	"github.com/campus-hub/campus_hub/internal/token"
)

const (
	studentIDKey    = "student_id"
	studentEmailKey = "student_email"
)

// Auth returns a middleware that validates the bearer token and stores the
// authenticated identity in request-scoped locals for downstream handlers.
func Auth(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return apperr.Unauthorized("access token required")
		}

		subject, err := tokens.Verify(strings.TrimSpace(authz[len("Bearer "):]))
		if err != nil {
			return err
		}

		c.Locals(studentIDKey, subject.StudentID)
		c.Locals(studentEmailKey, subject.Email)
		return c.Next()
	}
}

// StudentID returns the authenticated student id set by Auth, or 0 when the
// request is unauthenticated.
func StudentID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(studentIDKey).(int64)
	return id
}

// StudentEmail returns the authenticated student email set by Auth.
func StudentEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(studentEmailKey).(string)
	return email
}
