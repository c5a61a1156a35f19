package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domainerrors "github.com/shipeast-beep/upkeep-guardian-home/internal/domain/errors"

	"github.com/shipeast-beep/upkeep-guardian-home/config"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/entity"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/repository"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/service"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/errors"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/usecase"

	"github.com/google/uuid"
)

type maintenanceService struct {
	logger      *slog.Logger
	store       repository.Store
	push        service.PushService
	deviceToken string
}

// NewMaintenanceService creates a new maintenance service instance. The push
// service is optional; when absent, reminder pushes are skipped.
func NewMaintenanceService(logger *slog.Logger, store repository.Store, push service.PushService, cfg *config.Config) usecase.MaintenanceUsecase {
	deviceToken := ""
	if cfg.Firebase != nil {
		deviceToken = cfg.Firebase.DeviceToken
	}

	return &maintenanceService{
		logger:      logger,
		store:       store,
		push:        push,
		deviceToken: deviceToken,
	}
}

// AddEvent records a new maintenance event against an existing property
func (s *maintenanceService) AddEvent(ctx context.Context, input usecase.CreateMaintenanceEventInput) (*entity.MaintenanceEvent, error) {
	category := entity.Category(input.Category)
	if !category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown category %q", input.Category))
	}

	period := entity.RecurringPeriod(input.RecurringPeriod)
	if input.RecurringPeriod == "" {
		period = entity.RecurringNone
	}
	if !period.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown recurring period %q", input.RecurringPeriod))
	}

	event, err := s.store.AddMaintenanceEvent(ctx, repository.CreateMaintenanceEvent{
		PropertyID:      input.PropertyID,
		Title:           input.Title,
		Category:        category,
		Date:            input.Date,
		Notes:           input.Notes,
		Photo:           input.Photo,
		RecurringPeriod: period,
	})
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, fmt.Errorf("failed to add maintenance event: %w", err)
	}

	s.sendReminder(ctx, event)

	return event, nil
}

// GetEvent retrieves a single maintenance event by id
func (s *maintenanceService) GetEvent(ctx context.Context, id uuid.UUID) (*entity.MaintenanceEvent, error) {
	event, err := s.store.GetMaintenanceEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance event: %w", err)
	}
	if event == nil {
		return nil, domainerrors.ErrMaintenanceEventNotFound
	}

	return event, nil
}

// ListEvents retrieves the selection-scoped events matching the filter
func (s *maintenanceService) ListEvents(ctx context.Context, input usecase.ListMaintenanceEventsInput) ([]*entity.MaintenanceEvent, error) {
	filter := repository.EventFilter{Search: input.Search}

	if input.Category != "" {
		category := entity.Category(input.Category)
		if !category.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown category %q", input.Category))
		}
		filter.Category = &category
	}

	switch input.Sort {
	case "", string(repository.SortNewestFirst):
		filter.Sort = repository.SortNewestFirst
	case string(repository.SortOldestFirst):
		filter.Sort = repository.SortOldestFirst
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown sort order %q", input.Sort))
	}

	events, err := s.store.ListMaintenanceEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance events: %w", err)
	}

	return events, nil
}

// UpdateEvent applies a partial update to an existing maintenance event
func (s *maintenanceService) UpdateEvent(ctx context.Context, id uuid.UUID, input usecase.UpdateMaintenanceEventInput) (*entity.MaintenanceEvent, error) {
	patch := repository.MaintenanceEventPatch{
		Title: input.Title,
		Date:  input.Date,
		Notes: input.Notes,
		Photo: input.Photo,
	}
	if input.Category != nil {
		category := entity.Category(*input.Category)
		if !category.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown category %q", *input.Category))
		}
		patch.Category = &category
	}
	if input.RecurringPeriod != nil {
		period := entity.RecurringPeriod(*input.RecurringPeriod)
		if !period.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown recurring period %q", *input.RecurringPeriod))
		}
		patch.RecurringPeriod = &period
	}

	event, err := s.store.UpdateMaintenanceEvent(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update maintenance event: %w", err)
	}
	if event == nil {
		return nil, domainerrors.ErrMaintenanceEventNotFound
	}

	s.sendReminder(ctx, event)

	return event, nil
}

// DeleteEvent removes a maintenance event and its derived notifications.
// Deleting an unknown event is a no-op.
func (s *maintenanceService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteMaintenanceEvent(ctx, id); err != nil {
		return fmt.Errorf("failed to delete maintenance event: %w", err)
	}

	return nil
}

// Overview retrieves the upcoming and recent event views relative to now
func (s *maintenanceService) Overview(ctx context.Context, now time.Time) (*usecase.MaintenanceOverview, error) {
	upcoming, err := s.store.UpcomingEvents(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}

	recent, err := s.store.RecentEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent events: %w", err)
	}

	return &usecase.MaintenanceOverview{
		Upcoming: upcoming,
		Recent:   recent,
	}, nil
}

// sendReminder delivers a best-effort push for the event's live notification.
// Failures are logged and never surfaced to the caller.
func (s *maintenanceService) sendReminder(ctx context.Context, event *entity.MaintenanceEvent) {
	if s.push == nil || s.deviceToken == "" || !event.IsRecurring() {
		return
	}

	notification, err := s.store.NotificationForEvent(ctx, event.ID)
	if err != nil || notification == nil {
		return
	}

	body := fmt.Sprintf("%s: %s", notification.MaintenanceTitle, notification.Date.Format("02.01.2006"))
	data := map[string]string{
		"notificationId": notification.ID.String(),
		"propertyId":     notification.PropertyID.String(),
	}
	if err := s.push.SendReminder(ctx, s.deviceToken, "Blíží se plánovaná údržba", body, data); err != nil {
		s.logger.Warn("Failed to send reminder push", slog.Any("error", err))
	}
}
