package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents the area of the property a maintenance event concerns.
type Category string

const (
	CategoryElectrical      Category = "electrical"
	CategoryPlumbing        Category = "plumbing"
	CategoryGas             Category = "gas"
	CategoryGarden          Category = "garden"
	CategoryHeating         Category = "heating"
	CategoryAirConditioning Category = "air_conditioning"
	CategoryAppliances      Category = "appliances"
	CategoryStructural      Category = "structural"
	CategoryOther           Category = "other"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryElectrical, CategoryPlumbing, CategoryGas, CategoryGarden,
		CategoryHeating, CategoryAirConditioning, CategoryAppliances,
		CategoryStructural, CategoryOther:
		return true
	default:
		return false
	}
}

// RecurringPeriod represents the cadence at which a maintenance action repeats.
type RecurringPeriod string

const (
	RecurringNone       RecurringPeriod = "none"
	RecurringWeekly     RecurringPeriod = "weekly"
	RecurringMonthly    RecurringPeriod = "monthly"
	RecurringQuarterly  RecurringPeriod = "quarterly"
	RecurringBiannually RecurringPeriod = "biannually"
	RecurringAnnually   RecurringPeriod = "annually"
)

// String returns the string representation of the RecurringPeriod.
func (r RecurringPeriod) String() string {
	return string(r)
}

// IsValid checks if the RecurringPeriod is a valid value.
func (r RecurringPeriod) IsValid() bool {
	switch r {
	case RecurringNone, RecurringWeekly, RecurringMonthly,
		RecurringQuarterly, RecurringBiannually, RecurringAnnually:
		return true
	default:
		return false
	}
}

// MaintenanceEvent represents a single recorded maintenance action against a property.
type MaintenanceEvent struct {
	ID              uuid.UUID       `json:"id"`                    // The unique identifier for the event, assigned on creation.
	PropertyID      uuid.UUID       `json:"propertyId"`            // The property this event belongs to; required at creation.
	Title           string          `json:"title"`                 // Short description of the performed maintenance.
	Category        Category        `json:"category"`              // The area of the property the event concerns.
	Date            time.Time       `json:"date"`                  // The date the maintenance occurred.
	Notes           string          `json:"notes,omitempty"`       // Optional free-form notes.
	Photo           string          `json:"photo,omitempty"`       // Optional embedded image reference (data URI).
	RecurringPeriod RecurringPeriod `json:"recurringPeriod"`       // The cadence at which the action repeats.
	NextDueDate     *time.Time      `json:"nextDueDate,omitempty"` // Derived; present iff RecurringPeriod != none.
}

// IsRecurring reports whether the event repeats and carries a next due date.
func (e *MaintenanceEvent) IsRecurring() bool {
	return e.RecurringPeriod != RecurringNone && e.NextDueDate != nil
}
