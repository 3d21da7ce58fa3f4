package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/puzzlecraft/cryptogram-go/internal/dependencies/random"
	"github.com/puzzlecraft/cryptogram-go/internal/services/derangement"
	"github.com/puzzlecraft/cryptogram-go/internal/services/encoder"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	var (
		showMapping  bool
		showAttempts bool
	)

	rootCmd := &cobra.Command{
		Use:   "cryptogram [phrase]",
		Short: "Generate substitution-cipher puzzles",
		Long: `cryptogram turns a phrase into a substitution-cipher puzzle.

Each letter of the phrase is consistently replaced with a different letter,
using a randomly drawn mapping in which no letter stands for itself. The
phrase is read from the first argument, or prompted for interactively when
no argument is given.

Subcommands talk to a running puzzle server for shared puzzles.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client = NewClient(cfg.ServerURL)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var source InputSource
			if len(args) > 0 {
				source = NewArgsSource(args[0])
			} else {
				source = NewPromptSource(cmd.InOrStdin(), cmd.OutOrStdout())
			}

			return runGenerate(cmd, source, showMapping, showAttempts)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: CRYPTOGRAM_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Local generation flags
	rootCmd.Flags().BoolVar(&showMapping, "show-mapping", false, "Print the letter mapping used")
	rootCmd.Flags().BoolVar(&showAttempts, "show-attempts", false, "Print how many shuffles the mapping took")

	// Add subcommands
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newSubmitCmd())
	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// runGenerate produces a puzzle locally, without a server
func runGenerate(cmd *cobra.Command, source InputSource, showMapping, showAttempts bool) error {
	phrase, err := source.Phrase()
	if err != nil {
		return err
	}

	generator := derangement.New(random.New(), discardLogger())

	mapping, attempts, err := generator.Generate()
	if err != nil {
		return err
	}

	cg := encoder.New().Build(phrase, mapping, attempts)

	out := NewOutput(cfg.Output, cmd.OutOrStdout())
	out.PrintCryptogram(cg, showMapping, showAttempts)
	return nil
}

// discardLogger suppresses service logging in CLI runs
func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
