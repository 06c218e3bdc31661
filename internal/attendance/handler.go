package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-hub/campus_hub/internal/apperr"
	"github.com/campus-hub/campus_hub/internal/middleware"
	"github.com/campus-hub/campus_hub/internal/respond"
)

// Handler exposes attendance HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds an attendance HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Summary returns per-course attendance aggregates.
func (h *Handler) Summary(c *fiber.Ctx) error {
	summaries, err := h.service.Summary(c.UserContext(), middleware.StudentID(c))
	if err != nil {
		return err
	}
	return respond.Data(c, fiber.Map{"attendance": summaries})
}

// ForCourse returns attendance for one course.
func (h *Handler) ForCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil {
		return apperr.Validation("invalid course id")
	}
	records, err := h.service.ForCourse(c.UserContext(), middleware.StudentID(c), int64(courseID))
	if err != nil {
		return err
	}
	return respond.Data(c, fiber.Map{"attendance": records})
}

// Monthly returns attendance for a calendar month.
func (h *Handler) Monthly(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil {
		return apperr.Validation("invalid year")
	}
	month, err := c.ParamsInt("month")
	if err != nil {
		return apperr.Validation("invalid month")
	}
	records, err := h.service.Monthly(c.UserContext(), middleware.StudentID(c), year, month)
	if err != nil {
		return err
	}
	return respond.Data(c, fiber.Map{"attendance": records})
}
