// Package respond shapes every HTTP response into the shared envelope.
package respond

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/campus-hub/campus_hub/internal/apperr"
)

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Success writes a success envelope with a message and payload.
func Success(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Envelope{Status: "success", Message: message, Data: data})
}

// Data writes a 200 success envelope carrying only a payload.
func Data(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Status: "success", Data: data})
}

// ErrorHandler maps classified errors onto the envelope. Internal errors
// are logged and their details hidden unless dev is set.
func ErrorHandler(logger *slog.Logger, dev bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(Envelope{Status: "error", Message: fiberErr.Message})
		}

		appErr := apperr.From(err)
		if appErr.Kind == apperr.KindInternal {
			logger.Error("request failed",
				"method", c.Method(),
				"path", c.Path(),
				"error", appErr.Err,
			)
			message := "internal server error"
			if dev && appErr.Err != nil {
				message = appErr.Err.Error()
			}
			return c.Status(fiber.StatusInternalServerError).JSON(Envelope{Status: "error", Message: message})
		}

		return c.Status(appErr.Kind.Status()).JSON(Envelope{Status: "error", Message: appErr.Error()})
	}
}
