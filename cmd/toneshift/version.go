package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/toneshift-backend/internal/app"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "toneshift version %s\n", app.BuildVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
