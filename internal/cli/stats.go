package cli

import (
	"github.com/spf13/cobra"

	"github.com/puzzlecraft/cryptogram-go/internal/dependencies/random"
	"github.com/puzzlecraft/cryptogram-go/internal/services/derangement"
	"github.com/puzzlecraft/cryptogram-go/internal/services/stats"
)

func newStatsCmd() *cobra.Command {
	var trials int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Estimate the average shuffle attempts per mapping",
		Long: `stats runs the mapping generator repeatedly and reports the mean number
of shuffles needed before a valid mapping appeared. The mean converges to
e ≈ 2.718, since about 1 in e random shuffles leaves no letter in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := stats.New(derangement.New(random.New(), discardLogger()))

			average, err := service.AverageAttempts(trials)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintStats(StatsResult{Trials: trials, Average: average})
			return nil
		},
	}

	cmd.Flags().IntVar(&trials, "trials", 10000, "Number of generator runs to average over")

	return cmd
}
