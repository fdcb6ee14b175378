package events

import (
	"encoding/json"
	"time"

	apperrors "github.com/garunski/comic-catalog/pkg/catalog/errors"
)

// CleanupOldEvents deletes every event stamped before the cutoff together
// with its index entries. Unreadable primary entries are removed as well.
// It returns the number of keys deleted.
func (s *Storage) CleanupOldEvents(before time.Time) (int, error) {
	deletedCount := 0

	allItems, err := s.db.List(keyPrefix)
	if err != nil {
		return 0, apperrors.WrapStorage(err, "failed to list events for cleanup")
	}

	var keysToDelete []string
	for key, data := range allItems {
		if isIndexKey(key) {
			continue
		}

		var event Event
		if err := json.Unmarshal(data, &event); err != nil || event.ID == "" {
			keysToDelete = append(keysToDelete, key)
			continue
		}

		if !event.Timestamp.Before(before) {
			continue
		}

		keysToDelete = append(keysToDelete, timestampKey(event), typeKey(event))
		if event.ComicID != "" {
			keysToDelete = append(keysToDelete, comicKey(event))
		}
	}

	for i := 0; i < len(keysToDelete); i += DefaultBatchSize {
		end := i + DefaultBatchSize
		if end > len(keysToDelete) {
			end = len(keysToDelete)
		}
		batch := keysToDelete[i:end]

		if err := s.db.BatchDelete(batch); err != nil {
			s.logger.Error(err, "failed to batch delete events", "count", len(batch))

			for _, key := range batch {
				if err := s.db.Delete(key); err != nil {
					if isIndexKey(key) {
						s.logger.V(1).Info("failed to delete event index entry (non-critical)", "key", key, "error", err)
					} else {
						s.logger.Error(err, "failed to delete event", "key", key)
					}
				} else {
					deletedCount++
				}
			}
			continue
		}
		deletedCount += len(batch)
	}

	s.logger.Info("Cleaned up old events", "deleted", deletedCount, "before", before)
	return deletedCount, nil
}
