package usecase

import (
	"context"

	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePropertyInput carries the caller-provided fields for a new property.
// An empty type falls back to "other"; an empty name gets a placeholder.
type CreatePropertyInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Type    string `json:"type"`
}

// UpdatePropertyInput is a partial property update; nil fields stay unchanged.
type UpdatePropertyInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Type    *string `json:"type"`
}

// PropertyUsecase defines the interface for property management use cases
type PropertyUsecase interface {
	// CreateProperty registers a new property
	CreateProperty(ctx context.Context, input CreatePropertyInput) (*entity.Property, error)

	// ListProperties retrieves all properties in insertion order
	ListProperties(ctx context.Context) ([]*entity.Property, error)

	// UpdateProperty applies a partial update to an existing property
	UpdateProperty(ctx context.Context, id uuid.UUID, input UpdatePropertyInput) (*entity.Property, error)

	// DeleteProperty removes a property together with its events and notifications
	DeleteProperty(ctx context.Context, id uuid.UUID) error

	// SelectProperty sets or clears the active-property filter
	SelectProperty(ctx context.Context, id *uuid.UUID) error

	// SelectedPropertyID returns the id of the currently selected property,
	// or nil when no selection is active
	SelectedPropertyID(ctx context.Context) (*uuid.UUID, error)
}
