package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/toneshift-backend/internal/app"
	"github.com/heartmarshall/toneshift-backend/internal/domain"
)

var transformCmd = &cobra.Command{
	Use:   "transform [text...]",
	Short: "Transform text in a tone and print the result",
	Long: `Transforms the given text once and prints the rewritten text.
With --save the result is also added to the community feed.`,
	Example: `  toneshift transform --tone pirate "Please review my pull request"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug, _ := cmd.Flags().GetString("tone")
		save, _ := cmd.Flags().GetBool("save")

		tone, err := domain.ParseTone(slug)
		if err != nil {
			return err
		}

		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		res, err := app.TransformOnce(cmd.Context(), cfg, logger, strings.Join(args, " "), tone, save)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.TransformedText)
		return nil
	},
}

func init() {
	transformCmd.Flags().String("tone", domain.DefaultTone.Slug(), "tone slug (see `toneshift tones`)")
	transformCmd.Flags().Bool("save", false, "add the result to the community feed")
	rootCmd.AddCommand(transformCmd)
}
