package usecase

import (
	"context"
	"time"

	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateMaintenanceEventInput carries the caller-provided fields for a new
// maintenance event. The next due date is derived, never supplied.
type CreateMaintenanceEventInput struct {
	PropertyID      uuid.UUID `json:"propertyId" validate:"required"`
	Title           string    `json:"title" validate:"required"`
	Category        string    `json:"category" validate:"required"`
	Date            time.Time `json:"date" validate:"required"`
	Notes           string    `json:"notes"`
	Photo           string    `json:"photo"`
	RecurringPeriod string    `json:"recurringPeriod"`
}

// UpdateMaintenanceEventInput is a partial event update; nil fields stay unchanged.
type UpdateMaintenanceEventInput struct {
	Title           *string    `json:"title"`
	Category        *string    `json:"category"`
	Date            *time.Time `json:"date"`
	Notes           *string    `json:"notes"`
	Photo           *string    `json:"photo"`
	RecurringPeriod *string    `json:"recurringPeriod"`
}

// ListMaintenanceEventsInput narrows and orders an event listing.
type ListMaintenanceEventsInput struct {
	Search   string
	Category string
	Sort     string
}

// MaintenanceOverview bundles the dashboard views: recurring events not yet
// due, and the full history newest first. Both are scoped to the selection.
type MaintenanceOverview struct {
	Upcoming []*entity.MaintenanceEvent `json:"upcoming"`
	Recent   []*entity.MaintenanceEvent `json:"recent"`
}

// MaintenanceUsecase defines the interface for maintenance event use cases
type MaintenanceUsecase interface {
	// AddEvent records a new maintenance event against an existing property
	AddEvent(ctx context.Context, input CreateMaintenanceEventInput) (*entity.MaintenanceEvent, error)

	// GetEvent retrieves a single maintenance event by id
	GetEvent(ctx context.Context, id uuid.UUID) (*entity.MaintenanceEvent, error)

	// ListEvents retrieves the selection-scoped events matching the filter
	ListEvents(ctx context.Context, input ListMaintenanceEventsInput) ([]*entity.MaintenanceEvent, error)

	// UpdateEvent applies a partial update to an existing maintenance event
	UpdateEvent(ctx context.Context, id uuid.UUID, input UpdateMaintenanceEventInput) (*entity.MaintenanceEvent, error)

	// DeleteEvent removes a maintenance event and its derived notifications
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	// Overview retrieves the upcoming and recent event views relative to now
	Overview(ctx context.Context, now time.Time) (*MaintenanceOverview, error)
}
