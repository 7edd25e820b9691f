package cli

import (
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the letter statistics learned from the word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(newStatsView(app.Engine.Tables(), top))
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 3, "Letters to show per position")

	return cmd
}
