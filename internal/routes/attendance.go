package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-hub/campus_hub/internal/attendance"
)

// RegisterAttendanceRoutes wires attendance views.
func RegisterAttendanceRoutes(r fiber.Router, h *attendance.Handler) {
	r.Get("/attendance/summary", h.Summary)
	r.Get("/attendance/course/:courseId", h.ForCourse)
	r.Get("/attendance/monthly/:year/:month", h.Monthly)
}
