package events

import (
	"testing"

	"github.com/go-logr/logr"

	"github.com/garunski/comic-catalog/pkg/catalog/comic"
)

func TestStoreEventSafe(t *testing.T) {
	storage, _ := newTestStorage(t)
	logger := logr.Discard()

	record := comic.Record{ID: "a", Title: "Watchmen", Issue: "1", Publisher: "DC"}
	StoreEventSafe(storage, logger, Added(record))

	got, err := storage.ListEvents(EventFilters{ComicID: "a", Limit: 10})
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	if len(got) != 1 || got[0].Message != "added Watchmen #1" {
		t.Errorf("StoreEventSafe() stored %+v", got)
	}
}

func TestStoreEventSafe_NilStorage(t *testing.T) {
	// Must not panic.
	StoreEventSafe(nil, logr.Discard(), Info("load", "nothing stored"))
}

func TestStoreEventSafe_StorageError(t *testing.T) {
	storage, db := newTestStorage(t)
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// A closed database fails the write; the helper swallows it.
	StoreEventSafe(storage, logr.Discard(), Info("load", "lost"))
}
