package config

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/garunski/comic-catalog/pkg/catalog"
	"github.com/garunski/comic-catalog/pkg/catalog/store"
)

// Builder provides a fluent interface for building catalog configuration.
type Builder struct {
	config catalog.Config
}

// NewBuilder creates a new configuration builder seeded from DefaultConfig.
func NewBuilder() *Builder {
	return &Builder{
		config: catalog.DefaultConfig(),
	}
}

// WithAppName sets the application name.
func (b *Builder) WithAppName(name string) *Builder {
	b.config.AppName = name
	return b
}

// WithAppVersion sets the application version.
func (b *Builder) WithAppVersion(version string) *Builder {
	b.config.AppVersion = version
	return b
}

// WithDataPath sets the data storage path.
func (b *Builder) WithDataPath(path string) *Builder {
	b.config.DataPath = path
	return b
}

// WithInMemory keeps all data in memory; nothing survives a restart.
func (b *Builder) WithInMemory(inMemory bool) *Builder {
	b.config.InMemory = inMemory
	return b
}

// WithPort sets the HTTP server port.
func (b *Builder) WithPort(port string) *Builder {
	b.config.Port = port
	return b
}

// WithCustomTemplateFS sets custom HTML templates.
func (b *Builder) WithCustomTemplateFS(fsys fs.FS) *Builder {
	b.config.CustomTemplateFS = fsys
	return b
}

// WithCorruptPolicy sets how a stored catalog that fails to decode is handled.
func (b *Builder) WithCorruptPolicy(policy store.CorruptPolicy) *Builder {
	b.config.CorruptPolicy = string(policy)
	return b
}

// WithLogFormat selects console or json log output.
func (b *Builder) WithLogFormat(format string) *Builder {
	b.config.LogFormat = format
	return b
}

// WithLogRetentionDays sets the activity log retention period in days.
func (b *Builder) WithLogRetentionDays(days int) *Builder {
	b.config.LogRetentionDays = days
	return b
}

// WithLogCleanupInterval sets the activity log cleanup interval.
func (b *Builder) WithLogCleanupInterval(interval time.Duration) *Builder {
	b.config.LogCleanupInterval = interval
	return b
}

// Build returns the configured Config and validates it.
// Returns an error if validation fails.
func (b *Builder) Build() (catalog.Config, error) {
	if err := b.config.Validate(); err != nil {
		return catalog.Config{}, err
	}
	return b.config, nil
}

// MustBuild returns the configured Config and panics if validation fails.
func (b *Builder) MustBuild() catalog.Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}
	return cfg
}
