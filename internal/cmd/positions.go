package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// tictactoe positions
func Positions() *cobra.Command {
	return &cobra.Command{
		Use:   "positions",
		Short: "Lists the position names accepted by play",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			for _, position := range entity.AllPositions() {
				if _, err := fmt.Fprintf(out, "%-14s %d,%d\n", position, position.Row(), position.Col()); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
