package student

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/campus-hub/campus_hub/internal/apperr"
	"github.com/campus-hub/campus_hub/internal/middleware"
	"github.com/campus-hub/campus_hub/internal/respond"
)

// Handler exposes the student profile and report endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a student HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Dashboard returns the aggregate dashboard for the authenticated student.
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	d, err := h.service.Dashboard(c.UserContext(), middleware.StudentID(c))
	if err != nil {
		return err
	}
	return respond.Data(c, d)
}

// Profile returns the authenticated student's full profile.
func (h *Handler) Profile(c *fiber.Ctx) error {
	s, err := h.service.Get(c.UserContext(), middleware.StudentID(c))
	if err != nil {
		return err
	}
	s.PasswordHash = ""
	return respond.Data(c, fiber.Map{"student": s})
}

// UpdateProfile partially updates the mutable profile fields.
func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	var input UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body")
	}
	s, err := h.service.UpdateProfile(c.UserContext(), middleware.StudentID(c), input)
	if err != nil {
		return err
	}
	s.PasswordHash = ""
	return respond.Success(c, http.StatusOK, "Profile updated successfully", fiber.Map{"student": s})
}

// AcademicPerformance returns semester SGPA and graded courses.
func (h *Handler) AcademicPerformance(c *fiber.Ctx) error {
	p, err := h.service.AcademicPerformance(c.UserContext(), middleware.StudentID(c))
	if err != nil {
		return err
	}
	return respond.Data(c, p)
}
