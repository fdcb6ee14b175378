package events

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/garunski/comic-catalog/pkg/catalog/database"
	apperrors "github.com/garunski/comic-catalog/pkg/catalog/errors"
)

const (
	keyPrefix      = "events/"
	byComicPrefix  = "events/by-comic/"
	byTypePrefix   = "events/by-type/"
	defaultListMax = 100
)

type Storage struct {
	db     *database.DB
	logger logr.Logger
}

func NewStorage(db *database.DB, logger logr.Logger) *Storage {
	return &Storage{
		db:     db,
		logger: logger,
	}
}

func timestampKey(event Event) string {
	return fmt.Sprintf("%s%020d/%s", keyPrefix, event.Timestamp.UnixNano(), event.ID)
}

func comicKey(event Event) string {
	return fmt.Sprintf("%s%s/%020d/%s", byComicPrefix, event.ComicID, event.Timestamp.UnixNano(), event.ID)
}

func typeKey(event Event) string {
	return fmt.Sprintf("%s%s/%020d/%s", byTypePrefix, event.Type, event.Timestamp.UnixNano(), event.ID)
}

// StoreEvent writes the event and its secondary index entries in one batch.
func (s *Storage) StoreEvent(event Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %w", apperrors.ErrEventStore, err)
	}

	items := map[string][]byte{
		timestampKey(event): data,
		typeKey(event):      data,
	}
	if event.ComicID != "" {
		items[comicKey(event)] = data
	}

	if err := s.db.BatchSet(items); err != nil {
		return fmt.Errorf("%w: failed to store event: %w", apperrors.ErrEventStore, err)
	}

	return nil
}

func (s *Storage) ListEvents(filters EventFilters) ([]Event, error) {
	var prefix string

	if filters.ComicID != "" {
		prefix = byComicPrefix + filters.ComicID + "/"
	} else if filters.Type != "" {
		prefix = byTypePrefix + string(filters.Type) + "/"
	} else {
		prefix = keyPrefix
	}

	allItems, err := s.db.List(prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list events: %w", apperrors.ErrEventStore, err)
	}

	events := make([]Event, 0, len(allItems))
	for key, data := range allItems {
		if prefix == keyPrefix && isIndexKey(key) {
			continue
		}

		var event Event
		if err := json.Unmarshal(data, &event); err != nil {
			s.logger.Error(err, "failed to unmarshal event", "key", key)
			continue
		}

		if filters.ComicID != "" && event.ComicID != filters.ComicID {
			continue
		}
		if filters.Type != "" && event.Type != filters.Type {
			continue
		}
		if !filters.Since.IsZero() && event.Timestamp.Before(filters.Since) {
			continue
		}
		if !filters.Until.IsZero() && event.Timestamp.After(filters.Until) {
			continue
		}

		events = append(events, event)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})

	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(events) {
		return []Event{}, nil
	}
	if offset > 0 {
		events = events[offset:]
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultListMax
	}
	if len(events) > limit {
		events = events[:limit]
	}

	return events, nil
}

func (s *Storage) GetEventsByComic(comicID string, limit int) ([]Event, error) {
	return s.ListEvents(EventFilters{
		ComicID: comicID,
		Limit:   limit,
	})
}

func (s *Storage) GetRecentErrors(limit int) ([]Event, error) {
	return s.ListEvents(EventFilters{
		Type:  EventTypeError,
		Limit: limit,
	})
}

func isIndexKey(key string) bool {
	return strings.HasPrefix(key, byComicPrefix) || strings.HasPrefix(key, byTypePrefix)
}
