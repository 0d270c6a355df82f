package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := NewViperLoader("", "LIBRESHELF").Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mongo.URL != "mongodb://localhost:27017" {
		t.Fatalf("mongo.url = %q", cfg.Mongo.URL)
	}
	if cfg.Mongo.Database != "libreshelf" {
		t.Fatalf("mongo.database = %q", cfg.Mongo.Database)
	}
	if cfg.Catalog.Collection != "books" {
		t.Fatalf("catalog.collection = %q", cfg.Catalog.Collection)
	}
	if cfg.Catalog.DefaultPageSize != 10 {
		t.Fatalf("catalog.default_page_size = %d", cfg.Catalog.DefaultPageSize)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Fatalf("logging defaults = %q/%q", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
mongo:
  database: bookworm
catalog:
  collection: library
  default_page_size: 25
logging:
  level: debug
  format: text
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := NewViperLoader(path, "LIBRESHELF").Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mongo.Database != "bookworm" {
		t.Fatalf("mongo.database = %q", cfg.Mongo.Database)
	}
	if cfg.Catalog.Collection != "library" || cfg.Catalog.DefaultPageSize != 25 {
		t.Fatalf("catalog = %+v", cfg.Catalog)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
	// untouched keys keep their defaults
	if cfg.Mongo.URL != "mongodb://localhost:27017" {
		t.Fatalf("mongo.url = %q", cfg.Mongo.URL)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("mongo:\n  database: fromfile\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("LIBRESHELF_MONGO_DATABASE", "fromenv")
	t.Setenv("LIBRESHELF_MONGO_OPERATION_TIMEOUT", "30s")

	cfg, err := NewViperLoader(path, "LIBRESHELF").Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mongo.Database != "fromenv" {
		t.Fatalf("mongo.database = %q, want env override", cfg.Mongo.Database)
	}
	if cfg.Mongo.OperationTimeout != 30*time.Second {
		t.Fatalf("mongo.operation_timeout = %v", cfg.Mongo.OperationTimeout)
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("LIBRESHELF_MONGO_DATABASE", "fromenv")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("mongo-database", "", "")
	flags.String("collection", "", "")
	if err := flags.Parse([]string{"--mongo-database=fromflag", "--collection=shelf"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := NewViperLoader("", "LIBRESHELF").WithFlags(flags).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mongo.Database != "fromflag" {
		t.Fatalf("mongo.database = %q, want flag override", cfg.Mongo.Database)
	}
	if cfg.Catalog.Collection != "shelf" {
		t.Fatalf("catalog.collection = %q, want flag override", cfg.Catalog.Collection)
	}
}

func TestLoad_UnsetFlagsDoNotOverride(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("mongo-database", "", "")

	cfg, err := NewViperLoader("", "LIBRESHELF").WithFlags(flags).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mongo.Database != "libreshelf" {
		t.Fatalf("mongo.database = %q, want default", cfg.Mongo.Database)
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := NewViperLoader("/nonexistent/config.yaml", "LIBRESHELF").Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	loader := NewViperLoader("", "LIBRESHELF")

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty mongo url", func(c *Config) { c.Mongo.URL = "" }},
		{"empty database", func(c *Config) { c.Mongo.Database = "" }},
		{"empty collection", func(c *Config) { c.Catalog.Collection = "" }},
		{"zero page size", func(c *Config) { c.Catalog.DefaultPageSize = 0 }},
		{"negative timeout", func(c *Config) { c.Mongo.ConnectTimeout = -time.Second }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := loader.Validate(&cfg); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}

	valid := DefaultConfig()
	if err := loader.Validate(&valid); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
}
