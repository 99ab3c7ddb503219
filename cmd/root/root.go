// Package root contains the root command for the application.
package root

import (
	"context"
	"fmt"
	"time"

	"ecakir/fintext/internal/catalog"
	"ecakir/fintext/internal/config"
	"ecakir/fintext/internal/extraction"
	"ecakir/fintext/internal/logging"
	"ecakir/fintext/internal/pipeline"
	"ecakir/fintext/internal/resolver"
	"ecakir/fintext/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the resolved application configuration.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "fintext",
		Short: "Turn natural-language utterances into categorized ledger entries.",
		Long: `fintext parses free-form text like "500 lira market harcaması yaptım"
into a structured ledger entry, resolving the matching user category without
an explicit pick.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to fintext!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			if cfg.Categorization.KeywordOverrides != "" {
				if err := catalog.LoadOverrides(cfg.Categorization.KeywordOverrides); err != nil {
					return err
				}
				Log.WithField("file", cfg.Categorization.KeywordOverrides).Debug("Loaded keyword overrides")
			}
			return nil
		},
	}
)

// Logger returns the logging adapter wrapping the shared logrus instance.
func Logger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// OpenStore connects to the configured database, ensures the schema, and
// returns the store plus a close func.
func OpenStore(ctx context.Context) (*store.Store, func(), error) {
	if Cfg.Database.URL == "" {
		return nil, nil, fmt.Errorf("DATABASE_URL is required")
	}

	pool, err := store.Connect(ctx, Cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}

	st := store.New(pool, Logger())
	if err := st.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return st, pool.Close, nil
}

// BuildPipeline assembles the parsing pipeline on top of an open store.
func BuildPipeline(st *store.Store) *pipeline.Pipeline {
	client := extraction.NewGeminiClient(
		Cfg.AI.APIKey,
		Cfg.AI.Model,
		time.Duration(Cfg.AI.TimeoutSeconds)*time.Second,
		Logger(),
	)
	return pipeline.New(
		client,
		st,
		st,
		resolver.New(Logger()),
		Cfg.Categorization.ConfidenceThreshold,
		Cfg.AI.MaxInputChars,
		Logger(),
	)
}
