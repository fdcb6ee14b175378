package config

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/garunski/comic-catalog/pkg/catalog"
	"github.com/garunski/comic-catalog/pkg/catalog/store"
)

func TestNewBuilder(t *testing.T) {
	builder := NewBuilder()
	if builder == nil {
		t.Fatal("NewBuilder() returned nil")
	}
}

func TestBuilder_WithAppName(t *testing.T) {
	builder := NewBuilder()
	result := builder.WithAppName("test-app")
	if result != builder {
		t.Error("WithAppName() should return the same builder")
	}

	cfg, err := builder.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if cfg.AppName != "test-app" {
		t.Errorf("AppName = %v, want test-app", cfg.AppName)
	}
}

func TestBuilder_Chain(t *testing.T) {
	templates := fstest.MapFS{
		"templates/pages/catalog.html": &fstest.MapFile{Data: []byte(`{{define "catalog-page"}}custom{{end}}`)},
	}

	cfg, err := NewBuilder().
		WithAppVersion("1.0.0").
		WithDataPath("/tmp/comics").
		WithPort("9000").
		WithCustomTemplateFS(templates).
		WithCorruptPolicy(store.CorruptFail).
		WithLogFormat(catalog.LogFormatJSON).
		WithLogRetentionDays(3).
		WithLogCleanupInterval(10 * time.Minute).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if cfg.AppVersion != "1.0.0" {
		t.Errorf("AppVersion = %v, want 1.0.0", cfg.AppVersion)
	}
	if cfg.DataPath != "/tmp/comics" {
		t.Errorf("DataPath = %v, want /tmp/comics", cfg.DataPath)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %v, want 9000", cfg.Port)
	}
	if cfg.CustomTemplateFS == nil {
		t.Error("CustomTemplateFS was not set")
	}
	if cfg.CorruptPolicy != string(store.CorruptFail) {
		t.Errorf("CorruptPolicy = %v, want fail", cfg.CorruptPolicy)
	}
	if cfg.LogFormat != catalog.LogFormatJSON {
		t.Errorf("LogFormat = %v, want json", cfg.LogFormat)
	}
	if cfg.LogRetentionDays != 3 {
		t.Errorf("LogRetentionDays = %v, want 3", cfg.LogRetentionDays)
	}
	if cfg.LogCleanupInterval != 10*time.Minute {
		t.Errorf("LogCleanupInterval = %v, want 10m", cfg.LogCleanupInterval)
	}
}

func TestBuilder_WithInMemory(t *testing.T) {
	cfg, err := NewBuilder().WithDataPath("").WithInMemory(true).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !cfg.InMemory {
		t.Error("InMemory = false, want true")
	}
}

func TestBuilder_Build_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
	}{
		{name: "empty port", builder: NewBuilder().WithPort("")},
		{name: "empty data path", builder: NewBuilder().WithDataPath("")},
		{name: "negative retention", builder: NewBuilder().WithLogRetentionDays(-1)},
		{name: "zero interval", builder: NewBuilder().WithLogCleanupInterval(0)},
		{name: "unknown policy", builder: NewBuilder().WithCorruptPolicy("ignore")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.builder.Build(); err == nil {
				t.Error("Build() should fail")
			}
		})
	}
}

func TestBuilder_MustBuild_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustBuild() should panic on invalid config")
		}
	}()
	NewBuilder().WithAppName("").MustBuild()
}
