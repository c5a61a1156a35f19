package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification represents a derived reminder record tied to a recurring
// maintenance event's next due date.
//
// MaintenanceTitle and PropertyID are deliberate denormalized snapshots taken
// at notification-creation time, so the reminder keeps its historical text even
// if the source event is later renamed.
type Notification struct {
	ID                 uuid.UUID `json:"id"`                 // The unique identifier for the notification.
	MaintenanceEventID uuid.UUID `json:"maintenanceEventId"` // The event this notification was derived from.
	PropertyID         uuid.UUID `json:"propertyId"`         // Snapshot of the owning event's property, for filtering without a join.
	MaintenanceTitle   string    `json:"maintenanceTitle"`   // Snapshot of the event's title at creation time.
	Date               time.Time `json:"date"`               // The due date the notification represents.
	IsRead             bool      `json:"isRead"`             // Set only by an explicit mark-read action; starts false.
}
