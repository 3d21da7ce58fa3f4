package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/puzzlecraft/cryptogram-go/internal/model"
)

func newSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <phrase>",
		Short: "Create a puzzle on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result model.Cryptogram

			body := map[string]string{"phrase": args[0]}
			if err := client.Post("/api/v1/puzzles", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintCryptogram(&result, false, false)
			return nil
		},
	}
}

func newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <id>",
		Short: "Fetch a stored puzzle from the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result model.Cryptogram

			if err := client.Get(fmt.Sprintf("/api/v1/puzzles/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintCryptogram(&result, true, true)
			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored puzzle from the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/puzzles/%s", args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage(fmt.Sprintf("Deleted puzzle %s", args[0]))
			return nil
		},
	}
}
