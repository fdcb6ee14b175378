package api

import (
	"testing"

	"github.com/go-logr/logr"

	"github.com/garunski/comic-catalog/pkg/catalog/database"
	"github.com/garunski/comic-catalog/pkg/catalog/events"
	"github.com/garunski/comic-catalog/pkg/catalog/form"
	"github.com/garunski/comic-catalog/pkg/catalog/store"
)

const (
	testCoverA = "data:image/png;base64,iVBORw0KGgo="
	testCoverB = "data:image/gif;base64,R0lGODlh"
)

var testPNG = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type testHandlerConfig struct {
	appName       string
	version       string
	db            *database.DB
	eventStore    events.EventStorage
	eventStoreSet bool
	formOptions   []form.Option
}

type testHandlerOption func(*testHandlerConfig)

func WithTestEventStore(eventStore events.EventStorage) testHandlerOption {
	return func(cfg *testHandlerConfig) {
		cfg.eventStore = eventStore
		cfg.eventStoreSet = true
	}
}

func WithNilEventStore() testHandlerOption {
	return func(cfg *testHandlerConfig) {
		cfg.eventStore = nil
		cfg.eventStoreSet = true
	}
}

func WithTestIDs(ids ...string) testHandlerOption {
	return func(cfg *testHandlerConfig) {
		next := 0
		cfg.formOptions = append(cfg.formOptions, form.WithIDGenerator(func() string {
			id := ids[next%len(ids)]
			next++
			return id
		}))
	}
}

type testEnv struct {
	handler    *Handler
	db         *database.DB
	store      *store.CatalogStore
	eventStore events.EventStorage
}

func newTestEnv(t *testing.T, opts ...testHandlerOption) *testEnv {
	t.Helper()
	logger := logr.Discard()

	cfg := testHandlerConfig{
		appName: "test-app",
		version: "test-version",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.db == nil {
		db, err := database.NewTestDB(t)
		if err != nil {
			t.Fatalf("NewTestDB() error = %v", err)
		}
		cfg.db = db
	}

	if cfg.eventStore == nil && !cfg.eventStoreSet {
		cfg.eventStore = events.NewStorage(cfg.db, logger)
	}

	catalog := store.NewCatalogStore(cfg.db, logger, store.WithEventStore(cfg.eventStore))
	if err := catalog.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	handler, err := NewHandler(catalog, cfg.eventStore, logger, cfg.appName, cfg.version, nil,
		WithPinger(cfg.db),
		WithFormOptions(cfg.formOptions...),
	)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	return &testEnv{
		handler:    handler,
		db:         cfg.db,
		store:      catalog,
		eventStore: cfg.eventStore,
	}
}
