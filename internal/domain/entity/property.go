// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// PropertyType represents the kind of physical asset a property is.
type PropertyType string

const (
	// PropertyTypeHouse indicates a standalone house.
	PropertyTypeHouse PropertyType = "house"
	// PropertyTypeApartment indicates an apartment unit.
	PropertyTypeApartment PropertyType = "apartment"
	// PropertyTypeCottage indicates a cottage or holiday home.
	PropertyTypeCottage PropertyType = "cottage"
	// PropertyTypeOther indicates any other kind of property.
	PropertyTypeOther PropertyType = "other"
)

// String returns the string representation of the PropertyType.
func (p PropertyType) String() string {
	return string(p)
}

// IsValid checks if the PropertyType is a valid value.
func (p PropertyType) IsValid() bool {
	switch p {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeCottage, PropertyTypeOther:
		return true
	default:
		return false
	}
}

// Property represents a physical asset whose maintenance is tracked.
type Property struct {
	ID      uuid.UUID    `json:"id"`      // The unique identifier for the property, assigned on creation.
	Name    string       `json:"name"`    // Display name; never empty, a placeholder is substituted on creation.
	Address string       `json:"address"` // Optional street address.
	Type    PropertyType `json:"type"`    // The kind of property (house, apartment, ...).
}
