package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	domainerrors "github.com/shipeast-beep/upkeep-guardian-home/internal/domain/errors"

	"github.com/shipeast-beep/upkeep-guardian-home/config"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/repository"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPushService captures reminder pushes for assertions.
type recordingPushService struct {
	mu    sync.Mutex
	sent  []string
	token string
}

func (p *recordingPushService) SendReminder(_ context.Context, token, title, body string, _ map[string]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = token
	p.sent = append(p.sent, title+": "+body)

	return nil
}

func createTestMaintenanceService(t *testing.T) (usecase.MaintenanceUsecase, usecase.PropertyUsecase, *recordingPushService) {
	t.Helper()

	store := createTestStore(t)
	push := &recordingPushService{}
	cfg := testConfig()
	cfg.Firebase = &config.FirebaseConfig{DeviceToken: "device-token"}

	return NewMaintenanceService(testLogger(), store, push, cfg), NewPropertyService(store), push
}

func TestMaintenanceService_AddEvent_UnknownPropertyFails(t *testing.T) {
	service, _, _ := createTestMaintenanceService(t)

	_, err := service.AddEvent(context.Background(), usecase.CreateMaintenanceEventInput{
		PropertyID: uuid.New(),
		Title:      "Revize",
		Category:   "gas",
		Date:       day(2024, time.January, 15),
	})
	assert.ErrorIs(t, err, domainerrors.ErrPropertyNotFound)
}

func TestMaintenanceService_AddEvent_UnknownCategoryFails(t *testing.T) {
	service, properties, _ := createTestMaintenanceService(t)
	property := seedProperty(t, properties, "Dům")

	_, err := service.AddEvent(context.Background(), usecase.CreateMaintenanceEventInput{
		PropertyID: property.ID,
		Title:      "Revize",
		Category:   "spaceship",
		Date:       day(2024, time.January, 15),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestMaintenanceService_AddEvent_RecurringSendsReminderPush(t *testing.T) {
	service, properties, push := createTestMaintenanceService(t)
	property := seedProperty(t, properties, "Dům")

	event, err := service.AddEvent(context.Background(), usecase.CreateMaintenanceEventInput{
		PropertyID:      property.ID,
		Title:           "Servis kotle",
		Category:        "heating",
		Date:            day(2024, time.January, 15),
		RecurringPeriod: "monthly",
	})
	require.NoError(t, err)
	require.NotNil(t, event.NextDueDate)

	require.Len(t, push.sent, 1)
	assert.Equal(t, "device-token", push.token)
	assert.Contains(t, push.sent[0], "Servis kotle")
}

func TestMaintenanceService_AddEvent_OneOffSendsNoPush(t *testing.T) {
	service, properties, push := createTestMaintenanceService(t)
	property := seedProperty(t, properties, "Dům")

	_, err := service.AddEvent(context.Background(), usecase.CreateMaintenanceEventInput{
		PropertyID: property.ID,
		Title:      "Oprava dveří",
		Category:   "structural",
		Date:       day(2024, time.February, 1),
	})
	require.NoError(t, err)
	assert.Empty(t, push.sent)
}

func TestMaintenanceService_GetEvent_UnknownIDFails(t *testing.T) {
	service, _, _ := createTestMaintenanceService(t)

	_, err := service.GetEvent(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrMaintenanceEventNotFound)
}

func TestMaintenanceService_UpdateEvent_UnknownIDFails(t *testing.T) {
	service, _, _ := createTestMaintenanceService(t)

	title := "Nový titulek"
	_, err := service.UpdateEvent(context.Background(), uuid.New(), usecase.UpdateMaintenanceEventInput{Title: &title})
	assert.ErrorIs(t, err, domainerrors.ErrMaintenanceEventNotFound)
}

func TestMaintenanceService_ListEvents_UnknownSortFails(t *testing.T) {
	service, _, _ := createTestMaintenanceService(t)

	_, err := service.ListEvents(context.Background(), usecase.ListMaintenanceEventsInput{Sort: "sideways"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestMaintenanceService_ListEvents_FiltersByCategory(t *testing.T) {
	service, properties, _ := createTestMaintenanceService(t)
	ctx := context.Background()
	property := seedProperty(t, properties, "Dům")

	for _, seed := range []struct {
		title    string
		category string
	}{
		{"Revize kotle", "heating"},
		{"Sekání trávy", "garden"},
	} {
		_, err := service.AddEvent(ctx, usecase.CreateMaintenanceEventInput{
			PropertyID: property.ID,
			Title:      seed.title,
			Category:   seed.category,
			Date:       day(2024, time.March, 1),
		})
		require.NoError(t, err)
	}

	events, err := service.ListEvents(ctx, usecase.ListMaintenanceEventsInput{Category: "garden"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Sekání trávy", events[0].Title)

	events, err = service.ListEvents(ctx, usecase.ListMaintenanceEventsInput{Sort: string(repository.SortOldestFirst)})
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestMaintenanceService_Overview(t *testing.T) {
	service, properties, _ := createTestMaintenanceService(t)
	ctx := context.Background()
	now := day(2024, time.June, 15)
	property := seedProperty(t, properties, "Dům")

	_, err := service.AddEvent(ctx, usecase.CreateMaintenanceEventInput{
		PropertyID:      property.ID,
		Title:           "Kontrola střechy",
		Category:        "structural",
		Date:            day(2024, time.March, 1),
		RecurringPeriod: "annually",
	})
	require.NoError(t, err)
	_, err = service.AddEvent(ctx, usecase.CreateMaintenanceEventInput{
		PropertyID: property.ID,
		Title:      "Jednorázová oprava",
		Category:   "other",
		Date:       day(2024, time.May, 1),
	})
	require.NoError(t, err)

	overview, err := service.Overview(ctx, now)
	require.NoError(t, err)
	require.Len(t, overview.Upcoming, 1)
	assert.Equal(t, "Kontrola střechy", overview.Upcoming[0].Title)
	require.Len(t, overview.Recent, 2)
	assert.Equal(t, "Jednorázová oprava", overview.Recent[0].Title)
}
