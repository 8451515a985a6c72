package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.yml"

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Two-player tic-tac-toe in the terminal",
		Long: heredoc.Doc(`tictactoe runs a hot-seat tic-tac-toe match on the terminal.
			X always moves first; players alternate until one of them
			completes a row, a column or a diagonal, or the board fills.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// global flags
	root.PersistentFlags().StringP("config", "c", defaultConfigPath, "Path to the config file")
	root.PersistentFlags().String("log-level", "", "Override the configured log level (debug, info, warn, error)")

	root.AddCommand(Play())
	root.AddCommand(Positions())

	return root
}
