package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/toneshift-backend/internal/app"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending store migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		return app.Migrate(cmd.Context(), cfg, logger)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
