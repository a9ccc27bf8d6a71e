package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/toneshift-backend/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the HTTP API. SIGINT or SIGTERM stops accepting requests and drains pending feed writes before exiting.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		path, _ := cmd.Flags().GetString("config")
		return app.Run(ctx, path)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
