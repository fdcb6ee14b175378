// Package catalog wires the comic catalog together: configuration, logging,
// storage and the HTTP server.
package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"

	"github.com/garunski/comic-catalog/pkg/catalog/server"
	"github.com/garunski/comic-catalog/pkg/catalog/store"
)

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config holds all application configuration
type Config struct {
	// Application metadata
	AppName    string
	AppVersion string

	// Storage configuration
	DataPath      string
	InMemory      bool
	CorruptPolicy string

	// Server configuration
	Port             string
	CustomTemplateFS fs.FS // Optional custom templates

	// Logging configuration
	LogFormat          string
	LogRetentionDays   int
	LogCleanupInterval time.Duration
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		AppName:            "Comic Book Catalog",
		AppVersion:         getEnvOrDefault("VERSION", "dev"),
		DataPath:           getEnvOrDefault("CATALOG_DATA_PATH", "data"),
		CorruptPolicy:      getEnvOrDefault("CATALOG_CORRUPT_POLICY", string(store.CorruptReset)),
		Port:               getEnvOrDefault("PORT", "8080"),
		LogFormat:          getEnvOrDefault("LOG_FORMAT", LogFormatConsole),
		LogRetentionDays:   parseIntOrDefault("LOG_RETENTION_DAYS", 7),
		LogCleanupInterval: parseDurationOrDefault("LOG_CLEANUP_INTERVAL", 1*time.Hour),
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.AppName == "" {
		return fmt.Errorf("AppName cannot be empty")
	}
	if c.DataPath == "" && !c.InMemory {
		return fmt.Errorf("DataPath cannot be empty")
	}
	if c.Port == "" {
		return fmt.Errorf("Port cannot be empty")
	}
	if c.LogRetentionDays < 0 {
		return fmt.Errorf("LogRetentionDays cannot be negative")
	}
	if c.LogCleanupInterval <= 0 {
		return fmt.Errorf("LogCleanupInterval must be positive")
	}
	if _, err := store.ParseCorruptPolicy(c.CorruptPolicy); err != nil {
		return err
	}
	switch c.LogFormat {
	case "", LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("LogFormat must be %q or %q, got %q", LogFormatConsole, LogFormatJSON, c.LogFormat)
	}
	return nil
}

// ServerConfig converts a validated Config into the server's settings.
func (c *Config) ServerConfig() (*server.Config, error) {
	policy, err := store.ParseCorruptPolicy(c.CorruptPolicy)
	if err != nil {
		return nil, err
	}
	return &server.Config{
		AppName:            c.AppName,
		AppVersion:         c.AppVersion,
		DataPath:           c.DataPath,
		InMemory:           c.InMemory,
		Port:               c.Port,
		LogRetentionDays:   c.LogRetentionDays,
		LogCleanupInterval: c.LogCleanupInterval,
		CorruptPolicy:      policy,
		CustomTemplateFS:   c.CustomTemplateFS,
	}, nil
}

// NewLogger builds a zap-backed logr.Logger. The json format selects zap's
// production encoder; anything else gets the development console encoder.
func NewLogger(format string) (logr.Logger, error) {
	var (
		zapLog *zap.Logger
		err    error
	)
	if format == LogFormatJSON {
		zapLog, err = zap.NewProduction()
	} else {
		zapLog, err = zap.NewDevelopment()
	}
	if err != nil {
		return logr.Discard(), fmt.Errorf("failed to create logger: %w", err)
	}
	return zapr.NewLogger(zapLog), nil
}

// Run starts the catalog server and blocks until it is shut down by a signal
// or by cancelling ctx.
func Run(ctx context.Context, cfg Config) error {
	logger, err := NewLogger(cfg.LogFormat)
	if err != nil {
		return err
	}
	return RunWithLogger(ctx, cfg, logger)
}

// RunWithLogger is Run with a caller-supplied logger.
func RunWithLogger(ctx context.Context, cfg Config, logger logr.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("Starting catalog", "appName", cfg.AppName, "version", cfg.AppVersion)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	serverCfg, err := cfg.ServerConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	srv, err := server.NewServer(serverCfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	defer func() {
		if err := srv.Close(); err != nil {
			logger.Error(err, "failed to close server")
		}
	}()

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	return nil
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseIntOrDefault accepts a plain integer or a day count such as "7d".
func parseIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(strings.TrimSuffix(value, "d")); err == nil {
			return i
		}
	}
	return defaultValue
}
