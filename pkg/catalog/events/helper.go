package events

import "github.com/go-logr/logr"

// StoreEventSafe records an event without ever failing the caller.
func StoreEventSafe(storage EventStorage, logger logr.Logger, event Event) {
	if storage == nil {
		return
	}
	if err := storage.StoreEvent(event); err != nil {
		logger.V(1).Info("failed to store event",
			"error", err,
			"type", event.Type,
			"comicId", event.ComicID,
			"message", event.Message)
	}
}
