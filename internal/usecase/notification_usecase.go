package usecase

import (
	"context"

	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for notification use cases
type NotificationUsecase interface {
	// ListNotifications retrieves notifications, optionally only unread ones
	ListNotifications(ctx context.Context, unreadOnly bool) ([]*entity.Notification, error)

	// UnreadCount returns the number of unread notifications
	UnreadCount(ctx context.Context) (int, error)

	// MarkAsRead flags a notification as read
	MarkAsRead(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// DeleteNotification removes a single notification
	DeleteNotification(ctx context.Context, id uuid.UUID) error
}
