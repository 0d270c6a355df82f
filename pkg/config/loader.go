package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Loader defines the interface for loading configuration
type Loader interface {
	Load() (*Config, error)
	Validate(*Config) error
}

// ViperLoader implements Loader using Viper for configuration management
type ViperLoader struct {
	configFile string
	envPrefix  string
	flags      *pflag.FlagSet
}

// NewViperLoader creates a new ViperLoader.
// configFile: path to configuration file (optional, can be empty)
// envPrefix: prefix for environment variables (e.g., "LIBRESHELF")
func NewViperLoader(configFile, envPrefix string) *ViperLoader {
	if envPrefix == "" {
		envPrefix = "LIBRESHELF"
	}
	return &ViperLoader{
		configFile: configFile,
		envPrefix:  envPrefix,
	}
}

// WithFlags registers a command-line flag set as the highest-precedence
// configuration source. Only flags named in flagKeys are consulted.
func (l *ViperLoader) WithFlags(flags *pflag.FlagSet) *ViperLoader {
	l.flags = flags
	return l
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"mongo-url":      "mongo.url",
	"mongo-database": "mongo.database",
	"collection":     "catalog.collection",
	"log-level":      "logging.level",
	"log-format":     "logging.format",
}

// Load loads configuration with precedence: flags > ENV > file > defaults
func (l *ViperLoader) Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	l.setDefaults(v, defaults)

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", l.configFile, err)
		}
	}

	v.SetEnvPrefix(l.envPrefix)
	l.bindEnvVars(v)

	if l.flags != nil {
		for name, key := range flagKeys {
			if f := l.flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := l.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (l *ViperLoader) setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("service.name", d.Service.Name)
	v.SetDefault("service.environment", d.Service.Environment)
	v.SetDefault("mongo.url", d.Mongo.URL)
	v.SetDefault("mongo.database", d.Mongo.Database)
	v.SetDefault("mongo.connect_timeout", d.Mongo.ConnectTimeout)
	v.SetDefault("mongo.operation_timeout", d.Mongo.OperationTimeout)
	v.SetDefault("catalog.collection", d.Catalog.Collection)
	v.SetDefault("catalog.default_page_size", d.Catalog.DefaultPageSize)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// bindEnvVars explicitly binds environment variables for nested structs
func (l *ViperLoader) bindEnvVars(v *viper.Viper) {
	v.BindEnv("service.name", l.prefixedEnv("SERVICE_NAME"))
	v.BindEnv("service.environment", l.prefixedEnv("SERVICE_ENVIRONMENT"), l.prefixedEnv("ENVIRONMENT"))

	v.BindEnv("mongo.url", l.prefixedEnv("MONGO_URL"))
	v.BindEnv("mongo.database", l.prefixedEnv("MONGO_DATABASE"))
	v.BindEnv("mongo.connect_timeout", l.prefixedEnv("MONGO_CONNECT_TIMEOUT"))
	v.BindEnv("mongo.operation_timeout", l.prefixedEnv("MONGO_OPERATION_TIMEOUT"))

	v.BindEnv("catalog.collection", l.prefixedEnv("CATALOG_COLLECTION"))
	v.BindEnv("catalog.default_page_size", l.prefixedEnv("CATALOG_DEFAULT_PAGE_SIZE"))

	v.BindEnv("logging.level", l.prefixedEnv("LOG_LEVEL"))
	v.BindEnv("logging.format", l.prefixedEnv("LOG_FORMAT"))
}

func (l *ViperLoader) prefixedEnv(key string) string {
	return l.envPrefix + "_" + key
}

// Validate checks the loaded configuration for values the catalog cannot
// start with.
func (l *ViperLoader) Validate(cfg *Config) error {
	if cfg.Mongo.URL == "" {
		return fmt.Errorf("mongo.url is required")
	}
	if cfg.Mongo.Database == "" {
		return fmt.Errorf("mongo.database is required")
	}
	if cfg.Catalog.Collection == "" {
		return fmt.Errorf("catalog.collection is required")
	}
	if cfg.Catalog.DefaultPageSize < 1 {
		return fmt.Errorf("catalog.default_page_size must be >= 1, got %d", cfg.Catalog.DefaultPageSize)
	}
	if cfg.Mongo.ConnectTimeout < 0 || cfg.Mongo.OperationTimeout < 0 {
		return fmt.Errorf("mongo timeouts must not be negative")
	}
	if _, err := parseLevel(cfg.Logging.Level); err != nil {
		return err
	}
	if _, err := parseFormat(cfg.Logging.Format); err != nil {
		return err
	}
	return nil
}

func parseLevel(level string) (string, error) {
	switch level {
	case "debug", "info", "warn", "warning", "error":
		return level, nil
	default:
		return "", fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", level)
	}
}

func parseFormat(format string) (string, error) {
	switch format {
	case "json", "text", "console":
		return format, nil
	default:
		return "", fmt.Errorf("logging.format must be json or text; got %q", format)
	}
}
