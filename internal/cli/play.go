package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var errInputClosed = errors.New("input closed before the game finished")

var marks = map[tictactoe.Cell]string{
	tictactoe.CellPlayerOne: "X",
	tictactoe.CellPlayerTwo: "O",
}

func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Plays a local game for two players on one terminal",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}

			withBot, err := cmd.Flags().GetBool("bot")
			if err != nil {
				return err
			}

			var opponent *bot
			if withBot {
				opponent = newBot(time.Now().UnixNano())
			}

			// the engine discards logs without a logger
			var logger *slog.Logger
			if verbose {
				logger = newLogger("debug", cmd.ErrOrStderr())
			}

			return playGame(logger, opponent, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Log engine decisions to stderr")
	cmd.Flags().BoolP("bot", "b", false, "Let a bot play as player two")

	return cmd
}

// playGame runs one game reading cell numbers from in. Without an
// opponent both players share the terminal.
func playGame(logger *slog.Logger, opponent *bot, in io.Reader, out io.Writer) error {
	engine := tictactoe.NewEngine(logger, "local")

	for range 2 {
		if _, err := engine.AddPlayer(); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(in)

	for !engine.IsOver() {
		printBoard(out, engine.Board())

		player := engine.State().PlayerToMove()

		if opponent != nil && player == tictactoe.PlayerTwo {
			cell, err := opponent.chooseCell(engine.Board())
			if err != nil {
				return err
			}

			if err = engine.ExecuteMove(player, cell); err != nil {
				return fmt.Errorf("bot failed to make move: %w", err)
			}

			fmt.Fprintf(out, "Bot (%s) plays %d\n", marks[player.Cell()], cell)
			continue
		}

		fmt.Fprintf(out, "Player %d (%s), choose a cell: ", player, marks[player.Cell()])

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read move: %w", err)
			}
			return errInputClosed
		}

		input := strings.TrimSpace(scanner.Text())

		cell, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintf(out, "%q is not a cell number\n", input)
			continue
		}

		if err = engine.ExecuteMove(player, cell); err != nil {
			if apperror.IsInvariantViolation(err) {
				return err
			}

			fmt.Fprintf(out, "Move rejected: %v\n", err)
		}
	}

	printBoard(out, engine.Board())
	fmt.Fprintln(out, result(engine.State()))

	return nil
}

func printBoard(out io.Writer, board tictactoe.Board) {
	fmt.Fprintln(out)

	for row := range tictactoe.BoardRows {
		cells := make([]string, 0, tictactoe.BoardColumns)
		for column := range tictactoe.BoardColumns {
			mark, ok := marks[board[row][column]]
			if !ok {
				// free cells show the number to type
				mark = strconv.Itoa(row*tictactoe.BoardColumns + column)
			}
			cells = append(cells, mark)
		}

		fmt.Fprintf(out, " %s\n", strings.Join(cells, " | "))
		if row < tictactoe.BoardRows-1 {
			fmt.Fprintln(out, "---+---+---")
		}
	}

	fmt.Fprintln(out)
}

func result(state tictactoe.State) string {
	if winner := state.Winner(); winner != tictactoe.NoPlayer {
		return fmt.Sprintf("Player %d (%s) wins!", winner, marks[winner.Cell()])
	}

	return "Stalemate."
}
