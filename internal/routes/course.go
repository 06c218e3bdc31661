package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-hub/campus_hub/internal/course"
)

// RegisterCourseRoutes wires course browsing. The static timetable path
// is registered before the parameterized detail route.
func RegisterCourseRoutes(r fiber.Router, h *course.Handler) {
	r.Get("/courses", h.List)
	r.Get("/courses/timetable/view", h.Timetable)
	r.Get("/courses/:courseId", h.Detail)
}
