package server

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/garunski/comic-catalog/pkg/catalog/database"
	"github.com/garunski/comic-catalog/pkg/catalog/events"
	"github.com/garunski/comic-catalog/pkg/catalog/store"
)

// StorageComponents holds all storage-related components
type StorageComponents struct {
	DB         *database.DB
	EventStore events.EventStorage
	Store      *store.CatalogStore
}

// NewStorageComponents opens the database, creates the event store and loads
// the catalog from its storage slot. The database is closed again if loading
// fails.
func NewStorageComponents(cfg *Config, logger logr.Logger) (*StorageComponents, error) {
	db, err := openDB(cfg, logger)
	if err != nil {
		return nil, err
	}

	eventStore := events.NewStorage(db, logger)
	logger.V(1).Info("Event storage initialized")

	catalog := store.NewCatalogStore(db, logger,
		store.WithEventStore(eventStore),
		store.WithCorruptPolicy(cfg.CorruptPolicy),
	)
	if err := catalog.Load(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error(closeErr, "failed to close database after load failure")
		}
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.V(1).Info("Storage ready", "comics", catalog.Len(), "inMemory", cfg.InMemory)

	return &StorageComponents{
		DB:         db,
		EventStore: eventStore,
		Store:      catalog,
	}, nil
}

func openDB(cfg *Config, logger logr.Logger) (*database.DB, error) {
	if cfg.InMemory {
		logger.Info("Opening in-memory BadgerDB")
		db, err := database.NewInMemoryDB(logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open in-memory BadgerDB: %w", err)
		}
		return db, nil
	}

	logger.Info("Opening BadgerDB", "path", cfg.DataPath)
	db, err := database.NewDB(cfg.DataPath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB: %w", err)
	}
	return db, nil
}

// Close releases the database.
func (c *StorageComponents) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
