package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-hub/campus_hub/internal/assignment"
)

// RegisterAssignmentRoutes wires assignment views and submission. The
// static upcoming path is registered before the parameterized routes.
func RegisterAssignmentRoutes(r fiber.Router, h *assignment.Handler) {
	r.Get("/assignments", h.List)
	r.Get("/assignments/upcoming/list", h.Upcoming)
	r.Get("/assignments/:assignmentId", h.Get)
	r.Post("/assignments/:assignmentId/submit", h.Submit)
}
