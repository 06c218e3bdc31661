package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-hub/campus_hub/internal/notification"
)

// RegisterNotificationRoutes wires the notification inbox. Static paths
// are registered before the parameterized routes.
func RegisterNotificationRoutes(r fiber.Router, h *notification.Handler) {
	r.Get("/notifications", h.List)
	r.Get("/notifications/count/unread", h.UnreadCount)
	r.Put("/notifications/mark-all-read", h.MarkAllRead)
	r.Put("/notifications/:notificationId/read", h.MarkRead)
	r.Delete("/notifications/:notificationId", h.Delete)
}
