// Package localstore contains the concrete implementation of the maintenance
// store: in-memory entity collections guarded by a mutex and snapshot-persisted
// after every mutation.
package localstore

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/entity"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/recurrence"
	"github.com/shipeast-beep/upkeep-guardian-home/internal/domain/repository"

	"github.com/google/uuid"
)

// Store implements repository.Store. All collections live in memory; the full
// state is written to the snapshot store after every mutation. A snapshot
// write failure is logged and swallowed so the in-memory state stays
// authoritative for the session.
type Store struct {
	logger    *slog.Logger
	snapshots *SnapshotStore

	mu                 sync.RWMutex
	properties         []entity.Property
	events             []entity.MaintenanceEvent
	notifications      []entity.Notification
	selectedPropertyID *uuid.UUID
}

// New is the constructor for Store. It loads the persisted snapshot; a missing
// or corrupt snapshot initializes all collections empty.
func New(ctx context.Context, logger *slog.Logger, snapshots *SnapshotStore) (repository.Store, error) {
	store := &Store{
		logger:    logger,
		snapshots: snapshots,
	}

	snap, err := snapshots.Load(ctx)
	if err != nil {
		logger.Warn("Discarding unreadable state snapshot, starting empty", slog.Any("error", err))

		return store, nil
	}
	if snap == nil {
		return store, nil
	}

	store.properties = snap.Properties
	store.events = snap.MaintenanceEvents
	store.notifications = snap.Notifications
	store.selectedPropertyID = snap.SelectedPropertyID

	return store, nil
}

// persist writes the current state to the snapshot store. Must be called with
// the write lock held.
func (s *Store) persist(ctx context.Context) {
	snap := &snapshot{
		Properties:         s.properties,
		MaintenanceEvents:  s.events,
		Notifications:      s.notifications,
		SelectedPropertyID: s.selectedPropertyID,
	}

	if err := s.snapshots.Save(ctx, snap); err != nil {
		s.logger.Warn("Failed to persist state snapshot", slog.Any("error", err))
	}
}

// AddProperty inserts a new property with a fresh id.
func (s *Store) AddProperty(ctx context.Context, input repository.CreateProperty) (*entity.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = repository.DefaultPropertyName
	}

	property := entity.Property{
		ID:      uuid.New(),
		Name:    name,
		Address: input.Address,
		Type:    input.Type,
	}
	s.properties = append(s.properties, property)

	s.persist(ctx)

	return &property, nil
}

// UpdateProperty merges the patch into the property matching id. An unknown id
// is a silent no-op reported as a nil record.
func (s *Store) UpdateProperty(ctx context.Context, id uuid.UUID, patch repository.PropertyPatch) (*entity.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.propertyIndex(id)
	if idx < 0 {
		return nil, nil
	}

	property := &s.properties[idx]
	if patch.Name != nil {
		property.Name = *patch.Name
	}
	if patch.Address != nil {
		property.Address = *patch.Address
	}
	if patch.Type != nil {
		property.Type = *patch.Type
	}

	s.persist(ctx)

	updated := *property

	return &updated, nil
}

// DeleteProperty removes the property and cascades to its maintenance events
// and notifications. No dangling reference survives the deletion.
func (s *Store) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.propertyIndex(id) < 0 {
		return nil
	}

	kept := s.properties[:0]
	for _, p := range s.properties {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.properties = kept

	keptEvents := s.events[:0]
	for _, e := range s.events {
		if e.PropertyID != id {
			keptEvents = append(keptEvents, e)
		}
	}
	s.events = keptEvents

	keptNotifications := s.notifications[:0]
	for _, n := range s.notifications {
		if n.PropertyID != id {
			keptNotifications = append(keptNotifications, n)
		}
	}
	s.notifications = keptNotifications

	if s.selectedPropertyID != nil && *s.selectedPropertyID == id {
		s.selectedPropertyID = nil
	}

	s.persist(ctx)

	return nil
}

// GetProperty retrieves a property by id.
func (s *Store) GetProperty(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.propertyIndex(id)
	if idx < 0 {
		return nil, nil
	}

	property := s.properties[idx]

	return &property, nil
}

// ListProperties returns all properties in insertion order.
func (s *Store) ListProperties(ctx context.Context) ([]*entity.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	properties := make([]*entity.Property, 0, len(s.properties))
	for i := range s.properties {
		property := s.properties[i]
		properties = append(properties, &property)
	}

	return properties, nil
}

// SelectProperty sets the active-property filter without existence validation.
func (s *Store) SelectProperty(ctx context.Context, id *uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == nil {
		s.selectedPropertyID = nil
	} else {
		selected := *id
		s.selectedPropertyID = &selected
	}

	s.persist(ctx)

	return nil
}

// SelectedPropertyID returns the active-property filter.
func (s *Store) SelectedPropertyID(ctx context.Context) (*uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selectedPropertyID == nil {
		return nil, nil
	}

	selected := *s.selectedPropertyID

	return &selected, nil
}

// AddMaintenanceEvent inserts a new event, derives its next due date and
// synthesizes one unread notification when the event is recurring.
func (s *Store) AddMaintenanceEvent(ctx context.Context, input repository.CreateMaintenanceEvent) (*entity.MaintenanceEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.propertyIndex(input.PropertyID) < 0 {
		return nil, repository.ErrPropertyNotFound
	}

	event := entity.MaintenanceEvent{
		ID:              uuid.New(),
		PropertyID:      input.PropertyID,
		Title:           input.Title,
		Category:        input.Category,
		Date:            input.Date,
		Notes:           input.Notes,
		Photo:           input.Photo,
		RecurringPeriod: input.RecurringPeriod,
		NextDueDate:     recurrence.NextDueDate(input.Date, input.RecurringPeriod),
	}
	s.events = append(s.events, event)

	if event.IsRecurring() {
		s.appendNotification(&event)
	}

	s.persist(ctx)

	created := event

	return &created, nil
}

// UpdateMaintenanceEvent merges the patch, recomputes the next due date when
// the date or recurring period is supplied, and reconciles notifications for
// the event. An unknown id is a silent no-op reported as a nil record.
func (s *Store) UpdateMaintenanceEvent(ctx context.Context, id uuid.UUID, patch repository.MaintenanceEventPatch) (*entity.MaintenanceEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.eventIndex(id)
	if idx < 0 {
		return nil, nil
	}

	event := &s.events[idx]
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Category != nil {
		event.Category = *patch.Category
	}
	if patch.Date != nil {
		event.Date = *patch.Date
	}
	if patch.Notes != nil {
		event.Notes = *patch.Notes
	}
	if patch.Photo != nil {
		event.Photo = *patch.Photo
	}
	if patch.RecurringPeriod != nil {
		event.RecurringPeriod = *patch.RecurringPeriod
	}

	if patch.Date != nil || patch.RecurringPeriod != nil {
		event.NextDueDate = recurrence.NextDueDate(event.Date, event.RecurringPeriod)
	}

	// Reconcile notifications regardless of which fields changed: drop every
	// notification for this event, then append a fresh unread one when the
	// merged event is still recurring. Read state never carries over.
	s.removeNotificationsForEvent(id)
	if event.IsRecurring() {
		s.appendNotification(event)
	}

	s.persist(ctx)

	updated := *event

	return &updated, nil
}

// DeleteMaintenanceEvent removes the event and all notifications derived from it.
func (s *Store) DeleteMaintenanceEvent(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.eventIndex(id) < 0 {
		return nil
	}

	kept := s.events[:0]
	for _, e := range s.events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.events = kept

	s.removeNotificationsForEvent(id)

	s.persist(ctx)

	return nil
}

// GetMaintenanceEvent retrieves an event by id.
func (s *Store) GetMaintenanceEvent(ctx context.Context, id uuid.UUID) (*entity.MaintenanceEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.eventIndex(id)
	if idx < 0 {
		return nil, nil
	}

	event := s.events[idx]

	return &event, nil
}

// ListMaintenanceEvents returns the selection-scoped events matching the filter.
func (s *Store) ListMaintenanceEvents(ctx context.Context, filter repository.EventFilter) ([]*entity.MaintenanceEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := s.selectionScopedEvents()

	if term := strings.ToLower(strings.TrimSpace(filter.Search)); term != "" {
		matched := events[:0]
		for _, e := range events {
			if strings.Contains(strings.ToLower(e.Title), term) ||
				strings.Contains(strings.ToLower(e.Notes), term) {
				matched = append(matched, e)
			}
		}
		events = matched
	}

	if filter.Category != nil {
		matched := events[:0]
		for _, e := range events {
			if e.Category == *filter.Category {
				matched = append(matched, e)
			}
		}
		events = matched
	}

	newestFirst := filter.Sort != repository.SortOldestFirst
	sort.SliceStable(events, func(i, j int) bool {
		if newestFirst {
			return events[i].Date.After(events[j].Date)
		}

		return events[i].Date.Before(events[j].Date)
	})

	return events, nil
}

// UpcomingEvents returns the selection-scoped events due after now, ascending
// by due date.
func (s *Store) UpcomingEvents(ctx context.Context, now time.Time) ([]*entity.MaintenanceEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := s.selectionScopedEvents()

	upcoming := events[:0]
	for _, e := range events {
		if e.NextDueDate != nil && e.NextDueDate.After(now) {
			upcoming = append(upcoming, e)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].NextDueDate.Before(*upcoming[j].NextDueDate)
	})

	return upcoming, nil
}

// RecentEvents returns the selection-scoped events descending by date.
func (s *Store) RecentEvents(ctx context.Context) ([]*entity.MaintenanceEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := s.selectionScopedEvents()

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.After(events[j].Date)
	})

	return events, nil
}

// EventsForProperty returns the property's events descending by date,
// ignoring the selection.
func (s *Store) EventsForProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.MaintenanceEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]*entity.MaintenanceEvent, 0)
	for i := range s.events {
		if s.events[i].PropertyID != propertyID {
			continue
		}
		event := s.events[i]
		events = append(events, &event)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.After(events[j].Date)
	})

	return events, nil
}

// AddNotification inserts a notification directly, with no further side effects.
func (s *Store) AddNotification(ctx context.Context, input repository.CreateNotification) (*entity.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification := entity.Notification{
		ID:                 uuid.New(),
		MaintenanceEventID: input.MaintenanceEventID,
		PropertyID:         input.PropertyID,
		MaintenanceTitle:   input.MaintenanceTitle,
		Date:               input.Date,
		IsRead:             false,
	}
	s.notifications = append(s.notifications, notification)

	s.persist(ctx)

	return &notification, nil
}

// MarkNotificationAsRead sets IsRead on the matching notification. An unknown
// id is a silent no-op reported as a nil record.
func (s *Store) MarkNotificationAsRead(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			s.persist(ctx)
			notification := s.notifications[i]

			return &notification, nil
		}
	}

	return nil, nil
}

// DeleteNotification removes the single matching notification.
func (s *Store) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.notifications[:0]
	removed := false
	for _, n := range s.notifications {
		if n.ID == id {
			removed = true

			continue
		}
		kept = append(kept, n)
	}
	s.notifications = kept

	if removed {
		s.persist(ctx)
	}

	return nil
}

// ListNotifications returns notifications in insertion order.
func (s *Store) ListNotifications(ctx context.Context, unreadOnly bool) ([]*entity.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notifications := make([]*entity.Notification, 0, len(s.notifications))
	for i := range s.notifications {
		if unreadOnly && s.notifications[i].IsRead {
			continue
		}
		notification := s.notifications[i]
		notifications = append(notifications, &notification)
	}

	return notifications, nil
}

// UnreadNotificationCount returns the number of unread notifications.
func (s *Store) UnreadNotificationCount(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for i := range s.notifications {
		if !s.notifications[i].IsRead {
			count++
		}
	}

	return count, nil
}

// NotificationForEvent returns the live notification derived from the event.
func (s *Store) NotificationForEvent(ctx context.Context, eventID uuid.UUID) (*entity.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.notifications {
		if s.notifications[i].MaintenanceEventID == eventID {
			notification := s.notifications[i]

			return &notification, nil
		}
	}

	return nil, nil
}

// appendNotification synthesizes the single unread notification for a
// recurring event. Must be called with the write lock held.
func (s *Store) appendNotification(event *entity.MaintenanceEvent) {
	s.notifications = append(s.notifications, entity.Notification{
		ID:                 uuid.New(),
		MaintenanceEventID: event.ID,
		PropertyID:         event.PropertyID,
		MaintenanceTitle:   event.Title,
		Date:               *event.NextDueDate,
		IsRead:             false,
	})
}

// removeNotificationsForEvent drops every notification derived from the event.
// Must be called with the write lock held.
func (s *Store) removeNotificationsForEvent(eventID uuid.UUID) {
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.MaintenanceEventID != eventID {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
}

// selectionScopedEvents copies the events matching the current selection, in
// insertion order. Must be called with at least the read lock held.
func (s *Store) selectionScopedEvents() []*entity.MaintenanceEvent {
	events := make([]*entity.MaintenanceEvent, 0, len(s.events))
	for i := range s.events {
		if s.selectedPropertyID != nil && s.events[i].PropertyID != *s.selectedPropertyID {
			continue
		}
		event := s.events[i]
		events = append(events, &event)
	}

	return events
}

// propertyIndex returns the index of the property matching id, or -1.
// Must be called with a lock held.
func (s *Store) propertyIndex(id uuid.UUID) int {
	for i := range s.properties {
		if s.properties[i].ID == id {
			return i
		}
	}

	return -1
}

// eventIndex returns the index of the event matching id, or -1.
// Must be called with a lock held.
func (s *Store) eventIndex(id uuid.UUID) int {
	for i := range s.events {
		if s.events[i].ID == id {
			return i
		}
	}

	return -1
}
