package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/solatis/surfacegen/internal/core/config"
	"github.com/solatis/surfacegen/internal/core/logging"
	"github.com/spf13/cobra"
)

const Version = "0.1.0"

// app carries persistent flag values and the state resolved from them
// before any subcommand runs.
type app struct {
	configFile string
	dbURL      string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "surfacegen",
		Short:        "Build and serialize terrain surface rule trees",
		Long:         `surfacegen assembles surface rule trees for world generation and prints them as engine JSON.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&a.dbURL, "db-url", "", "database connection URL (sqlite://path or postgres://...)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format (json, text)")

	rootCmd.AddCommand(
		newPrintCmd(a),
		newPresetsCmd(a),
		newValidateCmd(a),
		newMigrateCmd(a),
		newStoreCmd(a),
	)

	return rootCmd
}

// setup loads config and applies changed persistent flags on top of it.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("db-url") {
		cfg.Database.URL = a.dbURL
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
