package events

import "time"

type EventType string

const (
	EventTypeAdded   EventType = "added"
	EventTypeDeleted EventType = "deleted"
	EventTypeError   EventType = "error"
	EventTypeInfo    EventType = "info"
	EventTypeWarning EventType = "warning"
)

// DefaultBatchSize bounds the number of events removed per cleanup transaction.
const DefaultBatchSize = 1000

type Event struct {
	ID        string                 `json:"id"`
	Timestamp time.Time              `json:"timestamp"`
	Type      EventType              `json:"type"`
	ComicID   string                 `json:"comicId,omitempty"`
	Message   string                 `json:"message"`
	Error     string                 `json:"error,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

type EventFilters struct {
	ComicID string
	Type    EventType
	Since   time.Time
	Until   time.Time
	Limit   int
	Offset  int
}
