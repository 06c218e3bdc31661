package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-hub/campus_hub/internal/event"
)

// RegisterEventRoutes wires event browsing and registration. The static
// registrations path is registered before the parameterized routes.
func RegisterEventRoutes(r fiber.Router, h *event.Handler) {
	r.Get("/events", h.List)
	r.Get("/events/my/registrations", h.MyRegistrations)
	r.Get("/events/:eventId", h.Get)
	r.Post("/events/:eventId/register", h.Register)
	r.Delete("/events/:eventId/unregister", h.Unregister)
}
