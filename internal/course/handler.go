package course

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-hub/campus_hub/internal/apperr"
	"github.com/campus-hub/campus_hub/internal/middleware"
	"github.com/campus-hub/campus_hub/internal/respond"
)

// Handler exposes course HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a course HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns the authenticated student's enrolled courses.
func (h *Handler) List(c *fiber.Ctx) error {
	courses, err := h.service.List(c.UserContext(), middleware.StudentID(c))
	if err != nil {
		return err
	}
	return respond.Data(c, fiber.Map{"courses": courses})
}

// Detail returns a single course with assignments and attendance, guarded
// by enrollment.
func (h *Handler) Detail(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil {
		return apperr.Validation("invalid course id")
	}
	d, err := h.service.Detail(c.UserContext(), middleware.StudentID(c), int64(courseID))
	if err != nil {
		return err
	}
	return respond.Data(c, d)
}

// Timetable returns active courses plus the weekly schedule.
func (h *Handler) Timetable(c *fiber.Ctx) error {
	courses, timetable, err := h.service.Timetable(c.UserContext(), middleware.StudentID(c))
	if err != nil {
		return err
	}
	return respond.Data(c, fiber.Map{"courses": courses, "timetable": timetable})
}
