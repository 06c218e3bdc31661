package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-hub/campus_hub/internal/student"
)

// RegisterStudentRoutes wires the student's own views.
func RegisterStudentRoutes(r fiber.Router, h *student.Handler) {
	r.Get("/students/dashboard", h.Dashboard)
	r.Get("/students/profile", h.Profile)
	r.Put("/students/profile", h.UpdateProfile)
	r.Get("/students/academic-performance", h.AcademicPerformance)
}
