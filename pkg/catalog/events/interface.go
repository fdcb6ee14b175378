package events

import "time"

// EventStorage defines the interface for activity log operations.
type EventStorage interface {
	// StoreEvent stores a single event
	StoreEvent(event Event) error

	// ListEvents lists events matching the provided filters, newest first
	ListEvents(filters EventFilters) ([]Event, error)

	// GetEventsByComic retrieves events for one comic id
	GetEventsByComic(comicID string, limit int) ([]Event, error)

	// GetRecentErrors retrieves recent error events
	GetRecentErrors(limit int) ([]Event, error)

	// CleanupOldEvents removes events older than the specified time
	CleanupOldEvents(before time.Time) (int, error)
}

var _ EventStorage = (*Storage)(nil)
