package config

import "time"

// Config is the root configuration structure for the catalog service.
type Config struct {
	Service ServiceConfig `mapstructure:"service"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServiceConfig configures service identity metadata.
type ServiceConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// MongoConfig configures the MongoDB connection.
type MongoConfig struct {
	URL              string        `mapstructure:"url"`
	Database         string        `mapstructure:"database"`
	ConnectTimeout   time.Duration `mapstructure:"connect_timeout"`
	OperationTimeout time.Duration `mapstructure:"operation_timeout"`
}

// CatalogConfig configures the book collection and query defaults.
type CatalogConfig struct {
	Collection      string `mapstructure:"collection"`
	DefaultPageSize int    `mapstructure:"default_page_size"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the configuration used when no file or environment
// overrides are present.
func DefaultConfig() Config {
	return Config{
		Service: ServiceConfig{
			Name:        "libreshelf",
			Environment: "development",
		},
		Mongo: MongoConfig{
			URL:              "mongodb://localhost:27017",
			Database:         "libreshelf",
			ConnectTimeout:   5 * time.Second,
			OperationTimeout: 5 * time.Second,
		},
		Catalog: CatalogConfig{
			Collection:      "books",
			DefaultPageSize: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
