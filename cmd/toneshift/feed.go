package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/toneshift-backend/internal/app"
	"github.com/heartmarshall/toneshift-backend/internal/domain"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Print the most recent community transformations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		recs, err := app.RecentTransformations(cmd.Context(), cfg, logger, limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, r := range recs {
			fmt.Fprintf(out, "[%s] %s (%s)\n  %s\n  -> %s\n",
				r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Tone.Label(), r.OriginalText, r.TransformedText)
		}
		return nil
	},
}

func init() {
	feedCmd.Flags().Int("limit", domain.FeedLimit, "number of records to show (max 50)")
	rootCmd.AddCommand(feedCmd)
}
