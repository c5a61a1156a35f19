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

type propertyService struct {
	store repository.Store
}

// NewPropertyService creates a new property service instance
func NewPropertyService(store repository.Store) usecase.PropertyUsecase {
	return &propertyService{store: store}
}

// CreateProperty registers a new property
func (s *propertyService) CreateProperty(ctx context.Context, input usecase.CreatePropertyInput) (*entity.Property, error) {
	propertyType := entity.PropertyType(input.Type)
	if input.Type == "" {
		propertyType = entity.PropertyTypeOther
	}
	if !propertyType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown property type %q", input.Type))
	}

	property, err := s.store.AddProperty(ctx, repository.CreateProperty{
		Name:    input.Name,
		Address: input.Address,
		Type:    propertyType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add property: %w", err)
	}

	return property, nil
}

// ListProperties retrieves all properties in insertion order
func (s *propertyService) ListProperties(ctx context.Context) ([]*entity.Property, error) {
	properties, err := s.store.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	return properties, nil
}

// UpdateProperty applies a partial update to an existing property
func (s *propertyService) UpdateProperty(ctx context.Context, id uuid.UUID, input usecase.UpdatePropertyInput) (*entity.Property, error) {
	patch := repository.PropertyPatch{
		Name:    input.Name,
		Address: input.Address,
	}
	if input.Type != nil {
		propertyType := entity.PropertyType(*input.Type)
		if !propertyType.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown property type %q", *input.Type))
		}
		patch.Type = &propertyType
	}

	property, err := s.store.UpdateProperty(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	if property == nil {
		return nil, domainerrors.ErrPropertyNotFound
	}

	return property, nil
}

// DeleteProperty removes a property together with its events and notifications.
// Deleting an unknown property is a no-op.
func (s *propertyService) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteProperty(ctx, id); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	return nil
}

// SelectProperty sets or clears the active-property filter
func (s *propertyService) SelectProperty(ctx context.Context, id *uuid.UUID) error {
	if err := s.store.SelectProperty(ctx, id); err != nil {
		return fmt.Errorf("failed to select property: %w", err)
	}

	return nil
}

// SelectedPropertyID returns the id of the currently selected property
func (s *propertyService) SelectedPropertyID(ctx context.Context) (*uuid.UUID, error) {
	id, err := s.store.SelectedPropertyID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}

	return id, nil
}
