package events

import (
	"time"

	"github.com/garunski/comic-catalog/pkg/catalog/comic"
)

func Added(record comic.Record) Event {
	return Event{
		Type:      EventTypeAdded,
		ComicID:   record.ID,
		Message:   "added " + record.Heading(),
		Timestamp: time.Now(),
		Details: map[string]interface{}{
			"title":     record.Title,
			"issue":     record.Issue,
			"publisher": record.Publisher,
		},
	}
}

func Deleted(record comic.Record) Event {
	return Event{
		Type:      EventTypeDeleted,
		ComicID:   record.ID,
		Message:   "deleted " + record.Heading(),
		Timestamp: time.Now(),
		Details: map[string]interface{}{
			"title":     record.Title,
			"issue":     record.Issue,
			"publisher": record.Publisher,
		},
	}
}

func Error(comicID, operation, message string, err error) Event {
	event := Event{
		Type:      EventTypeError,
		ComicID:   comicID,
		Message:   message,
		Timestamp: time.Now(),
		Details: map[string]interface{}{
			"operation": operation,
		},
	}
	if err != nil {
		event.Error = err.Error()
	}
	return event
}

func Info(operation, message string) Event {
	return Event{
		Type:      EventTypeInfo,
		Message:   message,
		Timestamp: time.Now(),
		Details: map[string]interface{}{
			"operation": operation,
		},
	}
}

func Warning(operation, message string) Event {
	return Event{
		Type:      EventTypeWarning,
		Message:   message,
		Timestamp: time.Now(),
		Details: map[string]interface{}{
			"operation": operation,
		},
	}
}
