package impl

import (
	"context"
	"fmt"

	domainerrors "github.com/shipeast-beep/upkeep-guardian-home/internal/domain/errors"

	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/entity"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/repository"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	store repository.Store
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(store repository.Store) usecase.NotificationUsecase {
	return &notificationService{store: store}
}

// ListNotifications retrieves notifications, optionally only unread ones
func (s *notificationService) ListNotifications(ctx context.Context, unreadOnly bool) ([]*entity.Notification, error) {
	notifications, err := s.store.ListNotifications(ctx, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}

// UnreadCount returns the number of unread notifications
func (s *notificationService) UnreadCount(ctx context.Context) (int, error) {
	count, err := s.store.UnreadNotificationCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// MarkAsRead flags a notification as read
func (s *notificationService) MarkAsRead(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	notification, err := s.store.MarkNotificationAsRead(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if notification == nil {
		return nil, domainerrors.ErrNotificationNotFound
	}

	return notification, nil
}

// DeleteNotification removes a single notification. Deleting an unknown
// notification is a no-op.
func (s *notificationService) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteNotification(ctx, id); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	return nil
}
