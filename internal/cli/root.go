package cli

import (
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-tac-toe game engine and server",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(Serve())
	root.AddCommand(Play())

	return root
}
