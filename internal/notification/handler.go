package notification

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campus-hub/campus_hub/internal/apperr"
	"github.com/campus-hub/campus_hub/internal/middleware"
	"github.com/campus-hub/campus_hub/internal/respond"
)

// Handler serves the notification endpoints.
type Handler struct {
	notifications *Service
}

func NewHandler(notifications *Service) *Handler {
	return &Handler{notifications: notifications}
}

// List returns notifications; ?unread_only=true narrows to unread.
func (h *Handler) List(c *fiber.Ctx) error {
	unreadOnly := c.Query("unread_only") == "true"
	notifications, err := h.notifications.List(c.UserContext(), middleware.StudentID(c), unreadOnly)
	if err != nil {
		return err
	}
	return respond.Data(c, notifications)
}

// UnreadCount returns the unread counter.
func (h *Handler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.notifications.UnreadCount(c.UserContext(), middleware.StudentID(c))
	if err != nil {
		return err
	}
	return respond.Data(c, fiber.Map{"unread_count": count})
}

// MarkRead flags one notification as read.
func (h *Handler) MarkRead(c *fiber.Ctx) error {
	notificationID, err := c.ParamsInt("notificationId")
	if err != nil {
		return apperr.Validation("invalid notification id")
	}

	if err := h.notifications.MarkRead(c.UserContext(), middleware.StudentID(c), int64(notificationID)); err != nil {
		return err
	}
	return respond.Success(c, fiber.StatusOK, "Notification marked as read", nil)
}

// MarkAllRead flags every unread notification as read.
func (h *Handler) MarkAllRead(c *fiber.Ctx) error {
	changed, err := h.notifications.MarkAllRead(c.UserContext(), middleware.StudentID(c))
	if err != nil {
		return err
	}
	return respond.Success(c, fiber.StatusOK, "All notifications marked as read",
		fiber.Map{"updated_count": changed})
}

// Delete removes one notification.
func (h *Handler) Delete(c *fiber.Ctx) error {
	notificationID, err := c.ParamsInt("notificationId")
	if err != nil {
		return apperr.Validation("invalid notification id")
	}

	if err := h.notifications.Delete(c.UserContext(), middleware.StudentID(c), int64(notificationID)); err != nil {
		return err
	}
	return respond.Success(c, fiber.StatusOK, "Notification deleted", nil)
}
