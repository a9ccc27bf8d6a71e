package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/toneshift-backend/internal/app"
	"github.com/heartmarshall/toneshift-backend/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "toneshift",
	Short:         "Toneshift rewrites text in a chosen tone",
	Long:          `Toneshift rewrites short text in one of a fixed set of tones using a hosted language model and keeps a public feed of recent results.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to YAML config file (default: $CONFIG_PATH or ./config.yaml)")
}

// setup loads configuration and the process logger for a command.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := app.LoadConfig(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}
