package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/hangbot/internal/services/simulation"
)

func newPlayCmd() *cobra.Command {
	simCfg := simulation.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play games against secrets drawn from the word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Runner.Run(cmd.Context(), simCfg)
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(newReportView(report))
			return nil
		},
	}

	cmd.Flags().IntVarP(&simCfg.Games, "games", "n", simCfg.Games, "Number of games to play")
	cmd.Flags().IntVar(&simCfg.MaxTries, "max-tries", simCfg.MaxTries, "Wrong guesses allowed per game")
	cmd.Flags().StringVar(&simCfg.Strategy, "strategy", simCfg.Strategy, "Bot strategy: solver, random")
	cmd.Flags().IntVar(&simCfg.Workers, "workers", simCfg.Workers, "Games played concurrently")
	cmd.Flags().BoolVar(&simCfg.Trace, "trace", simCfg.Trace, "Show every guess of the first game")

	return cmd
}
