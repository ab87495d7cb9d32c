package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"laptudirm.com/x/tictac/pkg/common"
	"laptudirm.com/x/tictac/pkg/console"
	"laptudirm.com/x/tictac/pkg/game"
	"laptudirm.com/x/tictac/pkg/play"
)

// tictac play
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game of tic-tac-toe on this terminal",
		Args:  cobra.ExactArgs(0),
		Long: heredoc.Doc(`play starts a two-player game of tic-tac-toe on the
			current terminal. Both players share the keyboard and
			enter moves as two digits, column first: 21 is the
			second column of the first row. X always moves first.

			The first player to own a full row, column or diagonal
			of the board wins. The board size is remembered across
			runs in ~/tictac/settings.yaml and can be changed with
			the --size flag, which accepts sizes from 3 to 9.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			size := common.UserSettings.BoardSize

			if cmd.Flag("size").Changed {
				requested, err := cmd.Flags().GetInt("size")
				if err != nil {
					return err
				}

				size = game.ClampSize(requested)

				// Remember the choice for the next run.
				common.UserSettings.BoardSize = size
				common.UserSettings.Dump()
			}

			if common.UserSettings.NoColor {
				color.NoColor = true
			}

			return play.Run(console.New(), size)
		},
	}

	cmd.Flags().IntP("size", "s", game.MinSize, "Board size (3-9)")

	return cmd
}
