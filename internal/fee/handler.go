package fee

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-hub/campus_hub/internal/apperr"
	"github.com/campus-hub/campus_hub/internal/middleware"
	"github.com/campus-hub/campus_hub/internal/respond"
)

// Handler serves the fee endpoints.
type Handler struct {
	fees *Service
}

func NewHandler(fees *Service) *Handler {
	return &Handler{fees: fees}
}

// List returns all fees for the authenticated student.
func (h *Handler) List(c *fiber.Ctx) error {
	fees, err := h.fees.List(c.UserContext(), middleware.StudentID(c))
	if err != nil {
		return err
	}
	return respond.Data(c, fees)
}

// Summary returns the aggregate fee position.
func (h *Handler) Summary(c *fiber.Ctx) error {
	summary, err := h.fees.Summary(c.UserContext(), middleware.StudentID(c))
	if err != nil {
		return err
	}
	return respond.Data(c, summary)
}

// Get returns a single fee.
func (h *Handler) Get(c *fiber.Ctx) error {
	feeID, err := c.ParamsInt("feeId")
	if err != nil {
		return apperr.Validation("invalid fee id")
	}

	fee, err := h.fees.Get(c.UserContext(), middleware.StudentID(c), int64(feeID))
	if err != nil {
		return err
	}
	return respond.Data(c, fee)
}

// Pay settles a fee.
func (h *Handler) Pay(c *fiber.Ctx) error {
	feeID, err := c.ParamsInt("feeId")
	if err != nil {
		return apperr.Validation("invalid fee id")
	}

	var input PayInput
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("invalid request body")
	}

	paid, err := h.fees.Pay(c.UserContext(), middleware.StudentID(c), int64(feeID), input)
	if err != nil {
		return err
	}
	return respond.Success(c, fiber.StatusOK, "Payment successful", paid)
}

// History returns settled payments, most recent first.
func (h *Handler) History(c *fiber.Ctx) error {
	payments, err := h.fees.PaymentHistory(c.UserContext(), middleware.StudentID(c))
	if err != nil {
		return err
	}
	return respond.Data(c, payments)
}
