package server

import (
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-logr/logr"

	"github.com/garunski/comic-catalog/pkg/catalog/api"
	"github.com/garunski/comic-catalog/pkg/catalog/database"
	"github.com/garunski/comic-catalog/pkg/catalog/events"
	"github.com/garunski/comic-catalog/pkg/catalog/store"
)

// Config holds server configuration
type Config struct {
	AppName            string
	AppVersion         string
	DataPath           string
	InMemory           bool
	Port               string
	LogRetentionDays   int
	LogCleanupInterval time.Duration
	CorruptPolicy      store.CorruptPolicy
	CustomTemplateFS   fs.FS // Optional custom templates
}

type Server struct {
	config     *Config
	logger     logr.Logger
	db         *database.DB
	store      *store.CatalogStore
	eventStore events.EventStorage
	handler    *api.Handler
	httpServer *http.Server
}

// NewServer opens storage, loads the catalog and prepares the HTTP server.
// Nothing listens until Start is called.
func NewServer(cfg *Config, logger logr.Logger) (*Server, error) {
	storage, err := NewStorageComponents(cfg, logger)
	if err != nil {
		return nil, err
	}

	handler, err := api.NewHandler(
		storage.Store,
		storage.EventStore,
		logger,
		cfg.AppName,
		cfg.AppVersion,
		cfg.CustomTemplateFS,
		api.WithPinger(storage.DB),
		api.WithRetention(retention(cfg.LogRetentionDays)),
	)
	if err != nil {
		if closeErr := storage.Close(); closeErr != nil {
			logger.Error(closeErr, "failed to close database")
		}
		return nil, fmt.Errorf("failed to create handler: %w", err)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           handler.SetupRoutes(),
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
	}

	return &Server{
		config:     cfg,
		logger:     logger,
		db:         storage.DB,
		store:      storage.Store,
		eventStore: storage.EventStore,
		handler:    handler,
		httpServer: httpServer,
	}, nil
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Store returns the loaded catalog.
func (s *Server) Store() *store.CatalogStore {
	return s.store
}

func (s *Server) Close() error {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}

func retention(days int) time.Duration {
	return time.Duration(days) * 24 * time.Hour
}
