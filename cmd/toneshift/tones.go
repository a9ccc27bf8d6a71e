package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/toneshift-backend/internal/domain"
)

var tonesCmd = &cobra.Command{
	Use:   "tones",
	Short: "List available tones",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SLUG\tLABEL\tMENU")
		for _, t := range domain.Tones() {
			marker := ""
			if t == domain.DefaultTone {
				marker = " (default)"
			}
			fmt.Fprintf(tw, "%s%s\t%s\t%s\n", t.Slug(), marker, t.Label(), t.MenuLabel())
		}
		_ = tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(tonesCmd)
}
