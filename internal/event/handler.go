package event

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-hub/campus_hub/internal/apperr"
	"github.com/campus-hub/campus_hub/internal/middleware"
	"github.com/campus-hub/campus_hub/internal/respond"
)

// Handler serves the event endpoints.
type Handler struct {
	events *Service
}

func NewHandler(events *Service) *Handler {
	return &Handler{events: events}
}

// List returns events, filtered by ?type= and ?upcoming=true.
func (h *Handler) List(c *fiber.Ctx) error {
	filter := ListFilter{
		EventType:    c.Query("type"),
		UpcomingOnly: c.Query("upcoming") == "true",
	}
	events, err := h.events.List(c.UserContext(), middleware.StudentID(c), filter)
	if err != nil {
		return err
	}
	return respond.Data(c, events)
}

// Get returns a single event.
func (h *Handler) Get(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("eventId")
	if err != nil {
		return apperr.Validation("invalid event id")
	}

	ev, err := h.events.Get(c.UserContext(), middleware.StudentID(c), int64(eventID))
	if err != nil {
		return err
	}
	return respond.Data(c, ev)
}

// Register books the student onto an event.
func (h *Handler) Register(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("eventId")
	if err != nil {
		return apperr.Validation("invalid event id")
	}

	reg, err := h.events.Register(c.UserContext(), middleware.StudentID(c), int64(eventID))
	if err != nil {
		return err
	}
	return respond.Success(c, fiber.StatusCreated, "Successfully registered for event", reg)
}

// Unregister releases the student's registration.
func (h *Handler) Unregister(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("eventId")
	if err != nil {
		return apperr.Validation("invalid event id")
	}

	if err := h.events.Unregister(c.UserContext(), middleware.StudentID(c), int64(eventID)); err != nil {
		return err
	}
	return respond.Success(c, fiber.StatusOK, "Successfully unregistered from event", nil)
}

// MyRegistrations returns the student's registered events.
func (h *Handler) MyRegistrations(c *fiber.Ctx) error {
	events, err := h.events.MyRegistrations(c.UserContext(), middleware.StudentID(c))
	if err != nil {
		return err
	}
	return respond.Data(c, events)
}
