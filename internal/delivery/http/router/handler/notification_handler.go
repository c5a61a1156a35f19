package handler

import (
	"log/slog"
	"net/http"

	"github.com/shipeast-beep/upkeep-guardian-home/internal/delivery/http/response"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the request to list notifications. The unread_only query
// parameter restricts the listing to unread ones.
func (h *NotificationHandler) List(c echo.Context) error {
	unreadOnly := c.QueryParam("unread_only") == "true"

	notifications, err := h.uc.ListNotifications(c.Request().Context(), unreadOnly)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// UnreadCount handles the request for the unread notification badge count.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count, err := h.uc.UnreadCount(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"count": count}, "Unread count retrieved successfully")
}

// MarkRead handles the request to flag a notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification id")
	}

	notification, err := h.uc.MarkAsRead(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notification, "Notification marked as read")
}

// Delete handles the notification deletion request.
func (h *NotificationHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification id")
	}

	if err := h.uc.DeleteNotification(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
