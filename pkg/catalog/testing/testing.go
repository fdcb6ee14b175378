// Package testing provides shared fixtures for catalog tests.
package testing

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap/zaptest"

	"github.com/garunski/comic-catalog/pkg/catalog/comic"
	"github.com/garunski/comic-catalog/pkg/catalog/database"
	"github.com/garunski/comic-catalog/pkg/catalog/events"
	"github.com/garunski/comic-catalog/pkg/catalog/store"
)

// CoverDataURL is a minimal PNG cover usable wherever an image is required.
const CoverDataURL = "data:image/png;base64,iVBORw0KGgo="

// NewTestLogger creates a logger that writes through t.Log.
func NewTestLogger(t testing.TB) logr.Logger {
	return zapr.NewLogger(zaptest.NewLogger(t))
}

// NewTestDB creates an in-memory database closed at the end of the test.
func NewTestDB(t testing.TB) *database.DB {
	t.Helper()
	db, err := database.NewTestDB(t)
	if err != nil {
		t.Fatalf("failed to create test DB: %v", err)
	}
	return db
}

// NewTestEventStore creates a test event store
func NewTestEventStore(t testing.TB) events.EventStorage {
	db := NewTestDB(t)
	return events.NewStorage(db, NewTestLogger(t))
}

// NewTestCatalogStore creates a loaded, empty catalog backed by its own
// in-memory database and event store.
func NewTestCatalogStore(t testing.TB, opts ...store.Option) *store.CatalogStore {
	t.Helper()
	db := NewTestDB(t)
	logger := NewTestLogger(t)

	opts = append([]store.Option{store.WithEventStore(events.NewStorage(db, logger))}, opts...)
	s := store.NewCatalogStore(db, logger, opts...)
	if err := s.Load(); err != nil {
		t.Fatalf("failed to load test catalog: %v", err)
	}
	return s
}

// NewComic returns a complete record with the given id and title.
func NewComic(id, title string) comic.Record {
	return comic.Record{
		ID:        id,
		Title:     title,
		Issue:     "1",
		Publisher: "Test Comics",
		ImageURL:  CoverDataURL,
	}
}
