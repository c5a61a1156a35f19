// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for the maintenance store.
var (
	// ErrPropertyNotFound is returned when an operation requires a property
	// that does not exist, e.g. creating an event against an unknown property.
	ErrPropertyNotFound = errors.New("property not found")
)

// DefaultPropertyName is substituted when a property is created with an empty name.
const DefaultPropertyName = "Nepojmenovaná nemovitost"

// CreateProperty carries the caller-provided fields for a new property.
type CreateProperty struct {
	Name    string
	Address string
	Type    entity.PropertyType
}

// PropertyPatch is a partial update of a property. Nil fields are left unchanged.
type PropertyPatch struct {
	Name    *string
	Address *string
	Type    *entity.PropertyType
}

// CreateMaintenanceEvent carries the caller-provided fields for a new event.
// NextDueDate is derived by the store, never supplied by the caller.
type CreateMaintenanceEvent struct {
	PropertyID      uuid.UUID
	Title           string
	Category        entity.Category
	Date            time.Time
	Notes           string
	Photo           string
	RecurringPeriod entity.RecurringPeriod
}

// MaintenanceEventPatch is a partial update of a maintenance event. Nil fields
// are left unchanged. Supplying Date or RecurringPeriod triggers a next-due-date
// recomputation on the merged record.
type MaintenanceEventPatch struct {
	Title           *string
	Category        *entity.Category
	Date            *time.Time
	Notes           *string
	Photo           *string
	RecurringPeriod *entity.RecurringPeriod
}

// CreateNotification carries the fields for a directly created notification.
type CreateNotification struct {
	MaintenanceEventID uuid.UUID
	PropertyID         uuid.UUID
	MaintenanceTitle   string
	Date               time.Time
}

// SortOrder selects the direction of the date sort in event listings.
type SortOrder string

const (
	// SortNewestFirst sorts events descending by date.
	SortNewestFirst SortOrder = "newest"
	// SortOldestFirst sorts events ascending by date.
	SortOldestFirst SortOrder = "oldest"
)

// EventFilter narrows an event listing. The zero value lists every event for
// the currently selected property (or all events when none is selected),
// newest first.
type EventFilter struct {
	// Search is a case-insensitive substring match over title and notes.
	Search string
	// Category restricts the listing to a single category when non-nil.
	Category *entity.Category
	// Sort selects the date sort direction; defaults to newest first.
	Sort SortOrder
}

// Store is the single owner of all domain state: properties, maintenance
// events, notifications and the active-property selection. Mutations keep the
// cascading invariants (property deletion removes its events and notifications;
// a recurring event carries at most one live notification) and persist the full
// state snapshot afterwards. Persistence failures are logged, not surfaced; the
// in-memory state stays authoritative for the session.
//
// Update and delete operations with an unknown id are silent no-ops by design.
// Updates report the no-op by returning a nil record with a nil error.
type Store interface {
	// AddProperty inserts a new property with a fresh id. An empty name is
	// replaced with DefaultPropertyName.
	AddProperty(ctx context.Context, input CreateProperty) (*entity.Property, error)

	// UpdateProperty merges the patch into the property matching id.
	UpdateProperty(ctx context.Context, id uuid.UUID, patch PropertyPatch) (*entity.Property, error)

	// DeleteProperty removes the property and cascades to all maintenance
	// events and notifications referencing it. The selection is reset to nil
	// when it pointed at the deleted property.
	DeleteProperty(ctx context.Context, id uuid.UUID) error

	// GetProperty retrieves a property by id, or nil when it does not exist.
	GetProperty(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// ListProperties returns all properties in insertion order.
	ListProperties(ctx context.Context) ([]*entity.Property, error)

	// SelectProperty sets the active-property filter. A nil id clears it.
	// The operation performs no existence validation itself.
	SelectProperty(ctx context.Context, id *uuid.UUID) error

	// SelectedPropertyID returns the active-property filter, or nil.
	SelectedPropertyID(ctx context.Context) (*uuid.UUID, error)

	// AddMaintenanceEvent inserts a new event with a fresh id, derives its
	// next due date from the event date and recurring period, and synthesizes
	// one unread notification when the event is recurring. It returns
	// ErrPropertyNotFound when the referenced property does not exist.
	AddMaintenanceEvent(ctx context.Context, input CreateMaintenanceEvent) (*entity.MaintenanceEvent, error)

	// UpdateMaintenanceEvent merges the patch into the event matching id,
	// recomputes the next due date when the patch carries a date or recurring
	// period, and reconciles the event's notifications: all existing ones are
	// removed and a single fresh unread one is appended when the merged event
	// is recurring. Read state never survives the reconciliation.
	UpdateMaintenanceEvent(ctx context.Context, id uuid.UUID, patch MaintenanceEventPatch) (*entity.MaintenanceEvent, error)

	// DeleteMaintenanceEvent removes the event and all of its notifications.
	DeleteMaintenanceEvent(ctx context.Context, id uuid.UUID) error

	// GetMaintenanceEvent retrieves an event by id, or nil when it does not exist.
	GetMaintenanceEvent(ctx context.Context, id uuid.UUID) (*entity.MaintenanceEvent, error)

	// ListMaintenanceEvents returns the events matching the filter, scoped to
	// the current selection. Sorting is stable; equal keys keep insertion order.
	ListMaintenanceEvents(ctx context.Context, filter EventFilter) ([]*entity.MaintenanceEvent, error)

	// UpcomingEvents returns the selection-scoped events whose next due date
	// is after now, ascending by due date.
	UpcomingEvents(ctx context.Context, now time.Time) ([]*entity.MaintenanceEvent, error)

	// RecentEvents returns the selection-scoped events descending by date.
	RecentEvents(ctx context.Context) ([]*entity.MaintenanceEvent, error)

	// EventsForProperty returns every event belonging to the property,
	// descending by date and ignoring the selection.
	EventsForProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.MaintenanceEvent, error)

	// AddNotification inserts a notification directly, with no side effects
	// beyond the single record.
	AddNotification(ctx context.Context, input CreateNotification) (*entity.Notification, error)

	// MarkNotificationAsRead sets IsRead on the notification matching id.
	MarkNotificationAsRead(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// DeleteNotification removes the single notification matching id.
	DeleteNotification(ctx context.Context, id uuid.UUID) error

	// ListNotifications returns notifications in insertion order, optionally
	// restricted to unread ones.
	ListNotifications(ctx context.Context, unreadOnly bool) ([]*entity.Notification, error)

	// UnreadNotificationCount returns the number of unread notifications.
	UnreadNotificationCount(ctx context.Context) (int, error)

	// NotificationForEvent returns the live notification derived from the
	// given event, or nil when the event has none outstanding.
	NotificationForEvent(ctx context.Context, eventID uuid.UUID) (*entity.Notification, error)
}
