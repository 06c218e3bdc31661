package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-hub/campus_hub/internal/fee"
)

// RegisterFeeRoutes wires fee views and payment. Static paths are
// registered before the parameterized routes.
func RegisterFeeRoutes(r fiber.Router, h *fee.Handler) {
	r.Get("/fees", h.List)
	r.Get("/fees/summary", h.Summary)
	r.Get("/fees/history/payments", h.History)
	r.Get("/fees/:feeId", h.Get)
	r.Post("/fees/:feeId/pay", h.Pay)
}
