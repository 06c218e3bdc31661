package assignment

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/campus-hub/campus_hub/internal/apperr"
	"github.com/campus-hub/campus_hub/internal/middleware"
	"github.com/campus-hub/campus_hub/internal/respond"
)

// Handler exposes assignment HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds an assignment HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns all assignments in the student's courses.
func (h *Handler) List(c *fiber.Ctx) error {
	views, err := h.service.List(c.UserContext(), middleware.StudentID(c))
	if err != nil {
		return err
	}
	return respond.Data(c, fiber.Map{"assignments": views})
}

// Get returns one assignment with the student's submission state.
func (h *Handler) Get(c *fiber.Ctx) error {
	assignmentID, err := c.ParamsInt("assignmentId")
	if err != nil {
		return apperr.Validation("invalid assignment id")
	}
	view, err := h.service.Get(c.UserContext(), middleware.StudentID(c), int64(assignmentID))
	if err != nil {
		return err
	}
	return respond.Data(c, fiber.Map{"assignment": view})
}

// Submit records a submission for the assignment.
func (h *Handler) Submit(c *fiber.Ctx) error {
	assignmentID, err := c.ParamsInt("assignmentId")
	if err != nil {
		return apperr.Validation("invalid assignment id")
	}
	var input SubmitInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body")
	}
	sub, err := h.service.Submit(c.UserContext(), middleware.StudentID(c), int64(assignmentID), input)
	if err != nil {
		return err
	}
	return respond.Success(c, http.StatusCreated, "Assignment submitted successfully", fiber.Map{"submission": sub})
}

// Upcoming returns assignments due in the future.
func (h *Handler) Upcoming(c *fiber.Ctx) error {
	upcoming, err := h.service.Upcoming(c.UserContext(), middleware.StudentID(c))
	if err != nil {
		return err
	}
	return respond.Data(c, fiber.Map{"upcomingAssignments": upcoming})
}
