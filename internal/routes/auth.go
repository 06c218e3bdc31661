package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-hub/campus_hub/internal/auth"
)

// RegisterAuthRoutes wires registration and login.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, loginLimiter fiber.Handler) {
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", loginLimiter, h.Login)
}
