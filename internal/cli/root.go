// Package cli defines Cobra command definitions for the leafecho CLI.
// This file contains the root command, version flag, and help output.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leafecho/leafecho/internal/config"
	"github.com/leafecho/leafecho/internal/log"
	"github.com/leafecho/leafecho/internal/summarize"
	"github.com/leafecho/leafecho/internal/tui"
	"github.com/leafecho/leafecho/internal/tui/app"
)

var (
	configPath string
	debug      bool
	version    = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "leafecho",
	Short: "A year-end reflection ritual for the terminal",
	Long: `Leaf Echo walks you through a year-end reflection.
Ring the wind chime to draw questions from twelve topics, answer them
at your own pace, then browse, copy and summarize your answers.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The ritual needs a terminal; point elsewhere otherwise
		if !tui.IsTTY() {
			return tui.RunFallback(cmd.OutOrStdout())
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, err := openLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Close()

		summarizer, err := summarize.New(context.Background(), cfg.Summarizer)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "summaries disabled: %v\n", err)
			summarizer = summarize.Disabled{}
		}

		tuiApp := app.New(cfg, app.Deps{Summarizer: summarizer, Logger: logger})
		return tui.Run(tuiApp)
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (default: user config dir)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Record debug events such as rejected intents")

	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads --config when given, otherwise the per-user config,
// falling back to defaults when none exists.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.ReadFile(configPath)
	}
	dir, err := config.DefaultDir()
	if err != nil {
		return config.DefaultConfig(), nil
	}
	return config.LoadOrDefault(dir)
}

// logDir returns the directory holding the event log.
func logDir(cfg *config.Config) (string, error) {
	if cfg.Log.Dir != "" {
		return cfg.Log.Dir, nil
	}
	return config.DefaultDir()
}

// openLogger opens the event log for a new run, or a no-op logger when
// logging is disabled.
func openLogger(cfg *config.Config) (*log.Logger, error) {
	if !cfg.Log.Enabled {
		return log.NewNop(), nil
	}
	dir, err := logDir(cfg)
	if err != nil {
		return nil, err
	}
	logger, err := log.NewLogger(dir, log.WithDebug(debug), log.WithRun(uuid.NewString()))
	if err != nil {
		return nil, fmt.Errorf("opening event log: %w", err)
	}
	return logger, nil
}
