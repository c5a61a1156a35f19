package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "github.com/shipeast-beep/upkeep-guardian-home/internal/domain/errors"

	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/repository"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, repository.Store) {
	t.Helper()
	store := createTestStore(t)

	return NewNotificationService(store), store
}

func seedNotification(t *testing.T, store repository.Store) uuid.UUID {
	t.Helper()

	notification, err := store.AddNotification(context.Background(), repository.CreateNotification{
		MaintenanceEventID: uuid.New(),
		PropertyID:         uuid.New(),
		MaintenanceTitle:   "Servis kotle",
		Date:               time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return notification.ID
}

func TestNotificationService_MarkAsRead_Success(t *testing.T) {
	service, store := createTestNotificationService(t)
	ctx := context.Background()
	id := seedNotification(t, store)

	notification, err := service.MarkAsRead(ctx, id)
	require.NoError(t, err)
	assert.True(t, notification.IsRead)

	count, err := service.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNotificationService_MarkAsRead_UnknownIDFails(t *testing.T) {
	service, _ := createTestNotificationService(t)

	_, err := service.MarkAsRead(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_ListNotifications_UnreadOnly(t *testing.T) {
	service, store := createTestNotificationService(t)
	ctx := context.Background()

	read := seedNotification(t, store)
	unread := seedNotification(t, store)
	_, err := service.MarkAsRead(ctx, read)
	require.NoError(t, err)

	notifications, err := service.ListNotifications(ctx, true)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, unread, notifications[0].ID)

	notifications, err = service.ListNotifications(ctx, false)
	require.NoError(t, err)
	assert.Len(t, notifications, 2)
}

func TestNotificationService_DeleteNotification(t *testing.T) {
	service, store := createTestNotificationService(t)
	ctx := context.Background()
	id := seedNotification(t, store)

	require.NoError(t, service.DeleteNotification(ctx, id))
	require.NoError(t, service.DeleteNotification(ctx, uuid.New()))

	notifications, err := service.ListNotifications(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}
