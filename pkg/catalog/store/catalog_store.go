package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-logr/logr"

	"github.com/garunski/comic-catalog/pkg/catalog/comic"
	"github.com/garunski/comic-catalog/pkg/catalog/database"
	apperrors "github.com/garunski/comic-catalog/pkg/catalog/errors"
	"github.com/garunski/comic-catalog/pkg/catalog/events"
)

// CatalogKey is the single storage slot holding the serialized collection.
const CatalogKey = "comic_catalog_data"

// CorruptPolicy decides what Load does with a stored blob that fails to decode.
type CorruptPolicy string

const (
	// CorruptReset backs the blob up under a side key and starts empty.
	CorruptReset CorruptPolicy = "reset"
	// CorruptFail surfaces the decode error to the caller.
	CorruptFail CorruptPolicy = "fail"
)

// ParseCorruptPolicy validates a policy name. The empty string selects CorruptReset.
func ParseCorruptPolicy(s string) (CorruptPolicy, error) {
	switch CorruptPolicy(s) {
	case "", CorruptReset:
		return CorruptReset, nil
	case CorruptFail:
		return CorruptFail, nil
	}
	return "", fmt.Errorf("%w: unknown corrupt data policy %q (want %q or %q)", apperrors.ErrInvalid, s, CorruptReset, CorruptFail)
}

// CatalogStore keeps the ordered collection in memory and overwrites the
// storage slot with the full collection after every mutation.
type CatalogStore struct {
	mu         sync.RWMutex
	db         *database.DB
	eventStore events.EventStorage
	logger     logr.Logger
	policy     CorruptPolicy
	comics     []comic.Record
}

type Option func(*CatalogStore)

func WithCorruptPolicy(policy CorruptPolicy) Option {
	return func(s *CatalogStore) {
		s.policy = policy
	}
}

func WithEventStore(eventStore events.EventStorage) Option {
	return func(s *CatalogStore) {
		s.eventStore = eventStore
	}
}

func NewCatalogStore(db *database.DB, logger logr.Logger, opts ...Option) *CatalogStore {
	s := &CatalogStore{
		db:     db,
		logger: logger,
		policy: CorruptReset,
		comics: []comic.Record{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CatalogStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.db.Get(CatalogKey)
	if errors.Is(err, database.ErrNotFound) {
		s.comics = []comic.Record{}
		s.logger.Info("No stored catalog, starting empty")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	var loaded []comic.Record
	if err := json.Unmarshal(data, &loaded); err != nil {
		return s.handleCorruptLocked(data, err)
	}
	if loaded == nil {
		loaded = []comic.Record{}
	}

	s.comics = loaded
	s.logger.Info("Loaded catalog", "count", len(loaded))
	return nil
}

func (s *CatalogStore) handleCorruptLocked(data []byte, decodeErr error) error {
	corruptErr := apperrors.WrapCorrupt(decodeErr, "decode "+CatalogKey)
	if s.policy == CorruptFail {
		return corruptErr
	}

	backupKey := fmt.Sprintf("%s.corrupt.%d", CatalogKey, time.Now().UnixNano())
	if err := s.db.Set(backupKey, data); err != nil {
		return fmt.Errorf("back up corrupt catalog: %w", err)
	}

	s.logger.Error(corruptErr, "Stored catalog is corrupt, starting empty", "backupKey", backupKey)
	events.StoreEventSafe(s.eventStore, s.logger, events.Warning("load",
		fmt.Sprintf("stored catalog could not be decoded and was moved to %s", backupKey)))

	s.comics = []comic.Record{}
	return nil
}

func (s *CatalogStore) List() []comic.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]comic.Record, len(s.comics))
	copy(result, s.comics)
	return result
}

func (s *CatalogStore) Get(id string) (comic.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexLocked(id); i >= 0 {
		return s.comics[i], true
	}
	return comic.Record{}, false
}

func (s *CatalogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.comics)
}

func (s *CatalogStore) Add(record comic.Record) error {
	if record.ID == "" {
		return fmt.Errorf("%w: comic id cannot be empty", apperrors.ErrInvalid)
	}
	if record.Title == "" || record.Issue == "" || record.Publisher == "" {
		return fmt.Errorf("%w: title, issue and publisher are required", apperrors.ErrIncompleteForm)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(record.ID) >= 0 {
		return fmt.Errorf("%w: comic id %s already exists", apperrors.ErrInvalid, record.ID)
	}

	s.comics = append(s.comics, record)
	if err := s.persistLocked(); err != nil {
		s.comics = s.comics[:len(s.comics)-1]
		events.StoreEventSafe(s.eventStore, s.logger, events.Error(record.ID, "add", "failed to persist catalog", err))
		return err
	}

	s.logger.V(1).Info("Added comic", "id", record.ID, "title", record.Title, "count", len(s.comics))
	events.StoreEventSafe(s.eventStore, s.logger, events.Added(record))
	return nil
}

func (s *CatalogStore) Delete(id string) (comic.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return comic.Record{}, fmt.Errorf("%w: comic %s", apperrors.ErrNotFound, id)
	}

	previous := s.comics
	removed := previous[i]

	remaining := make([]comic.Record, 0, len(previous)-1)
	remaining = append(remaining, previous[:i]...)
	remaining = append(remaining, previous[i+1:]...)
	s.comics = remaining

	if err := s.persistLocked(); err != nil {
		s.comics = previous
		events.StoreEventSafe(s.eventStore, s.logger, events.Error(id, "delete", "failed to persist catalog", err))
		return comic.Record{}, err
	}

	s.logger.V(1).Info("Deleted comic", "id", id, "count", len(s.comics))
	events.StoreEventSafe(s.eventStore, s.logger, events.Deleted(removed))
	return removed, nil
}

func (s *CatalogStore) indexLocked(id string) int {
	for i := range s.comics {
		if s.comics[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *CatalogStore) persistLocked() error {
	data, err := json.Marshal(s.comics)
	if err != nil {
		return apperrors.WrapStorage(err, "encode catalog")
	}
	if err := s.db.Set(CatalogKey, data); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}
	return nil
}
