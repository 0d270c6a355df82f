// Package cli provides the libreshelf command tree: seeding, queries,
// aggregation reports, index management, and diagnostics against a MongoDB
// book collection.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/libreshelf/libreshelf/pkg/catalog"
	"github.com/libreshelf/libreshelf/pkg/config"
	"github.com/libreshelf/libreshelf/pkg/observability/logger"
	mongostore "github.com/libreshelf/libreshelf/pkg/store/mongodb"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewRootCommand creates the libreshelf CLI with its subcommands.
func NewRootCommand() *cobra.Command {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:           "libreshelf",
		Short:         "Query and maintain a MongoDB book catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config-file", "c", "", "config file path")
	rootCmd.PersistentFlags().String("mongo-url", "", "MongoDB connection URL (overrides config)")
	rootCmd.PersistentFlags().String("mongo-database", "", "MongoDB database name (overrides config)")
	rootCmd.PersistentFlags().String("collection", "", "book collection name (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().String("log-format", "", "log format: json or text (overrides config)")

	rootCmd.AddCommand(
		newSeedCommand(&cfgPath),
		newListCommand(&cfgPath),
		newFindCommand(&cfgPath),
		newPageCommand(&cfgPath),
		newUpdatePriceCommand(&cfgPath),
		newDeleteCommand(&cfgPath),
		newStatsCommand(&cfgPath),
		newIndexesCommand(&cfgPath),
		newExplainCommand(&cfgPath),
		newHealthcheckCommand(&cfgPath),
		newVersionCommand(),
	)
	return rootCmd
}

// Execute runs the root command with signal-aware context cancellation.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}

// runtime bundles everything a subcommand needs once configuration is loaded
// and the store connection is up.
type runtime struct {
	cfg     *config.Config
	log     logger.Logger
	adapter *mongostore.Adapter
	catalog *catalog.Catalog
}

func (r *runtime) close() {
	if err := r.adapter.Close(); err != nil {
		r.log.Warn("failed to close store connection", "error", err)
	}
}

// setup loads configuration, builds the logger, connects to MongoDB, and
// binds a catalog to the configured collection. Flags passed on the command
// line take precedence over environment and file settings.
func setup(cfgPath string, flags *pflag.FlagSet) (*runtime, error) {
	cfg, err := config.NewViperLoader(cfgPath, "LIBRESHELF").WithFlags(flags).Load()
	if err != nil {
		return nil, err
	}

	level, err := logger.ParseLogLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseLogFormat(cfg.Logging.Format)
	if err != nil {
		return nil, err
	}
	zl, err := logger.NewZapLogger(logger.Config{Level: level, Format: format})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	log := zl.With("service", cfg.Service.Name, "run_id", uuid.NewString())

	adapter, err := mongostore.NewAdapter(mongostore.Config{
		URL:              cfg.Mongo.URL,
		Database:         cfg.Mongo.Database,
		ConnectTimeout:   cfg.Mongo.ConnectTimeout,
		OperationTimeout: cfg.Mongo.OperationTimeout,
	}, log)
	if err != nil {
		return nil, err
	}

	exec, err := catalog.NewMongoExecutor(adapter)
	if err != nil {
		_ = adapter.Close()
		return nil, err
	}
	cat, err := catalog.New(exec, cfg.Catalog.Collection, log)
	if err != nil {
		_ = adapter.Close()
		return nil, err
	}

	return &runtime{cfg: cfg, log: log, adapter: adapter, catalog: cat}, nil
}

// withRuntime wraps a subcommand body with setup and teardown.
func withRuntime(cfgPath *string, body func(ctx context.Context, rt *runtime, cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		rt, err := setup(*cfgPath, cmd.Flags())
		if err != nil {
			return err
		}
		defer rt.close()
		return body(cmd.Context(), rt, cmd)
	}
}

// printJSON writes v to the command's stdout as indented JSON.
func printJSON(cmd *cobra.Command, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
