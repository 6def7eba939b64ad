package cli

import (
	"errors"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var errNoAvailableMoves = errors.New("no available moves")

// bot plays player two by picking a random free cell.
type bot struct {
	rng *rand.Rand
}

func newBot(seed int64) *bot {
	return &bot{
		rng: rand.New(rand.NewSource(seed)), //nolint: gosec // game moves, not secrets
	}
}

func (that *bot) chooseCell(board tictactoe.Board) (int, error) {
	cells := board.Cells()

	available := make([]int, 0, len(cells))
	for i, cell := range cells {
		if cell == tictactoe.CellEmpty {
			available = append(available, i)
		}
	}

	if len(available) == 0 {
		return tictactoe.NoCell, errNoAvailableMoves
	}

	return available[that.rng.Intn(len(available))], nil
}
