package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// startedGame returns a game with both players seated.
func startedGame(t *testing.T) *Engine {
	t.Helper()

	engine := NewEngine(nil, "123")

	_, err := engine.AddPlayer()
	require.NoError(t, err)

	_, err = engine.AddPlayer()
	require.NoError(t, err)

	return engine
}

// playMoves alternates moves starting with player one.
func playMoves(t *testing.T, engine *Engine, cells ...int) {
	t.Helper()

	player := PlayerOne
	for _, cell := range cells {
		require.NoError(t, engine.ExecuteMove(player, cell), "move at cell %d", cell)

		if player == PlayerOne {
			player = PlayerTwo
		} else {
			player = PlayerOne
		}
	}
}

func TestNewEngine(t *testing.T) {
	// When: create a new game
	engine := NewEngine(nil, "123")

	// Then: the game is new with an empty board
	assert.Equal(t, "123", engine.GameID())
	assert.Equal(t, StateNew, engine.State())
	assert.False(t, engine.IsOver())
	assert.Equal(t, [CellCount]Cell{}, engine.Cells())
}

func TestEngine_AddPlayer(t *testing.T) {
	t.Run("First player gets id 1", func(t *testing.T) {
		// Given: a new game
		engine := NewEngine(nil, "123")

		// When: the first player joins
		player, err := engine.AddPlayer()

		// Then: player one waits for an opponent
		require.NoError(t, err)
		assert.Equal(t, PlayerOne, player)
		assert.Equal(t, StateWaitingForPlayerTwo, engine.State())
	})

	t.Run("Second player gets id 2 and player one moves first", func(t *testing.T) {
		// Given: a game with one player
		engine := NewEngine(nil, "123")
		_, err := engine.AddPlayer()
		require.NoError(t, err)

		// When: the second player joins
		player, err := engine.AddPlayer()

		// Then: the game starts with player one to move
		require.NoError(t, err)
		assert.Equal(t, PlayerTwo, player)
		assert.Equal(t, StatePlayerOneToMove, engine.State())
	})

	t.Run("Third player is rejected", func(t *testing.T) {
		// Given: a started game
		engine := startedGame(t)

		// When: another player tries to join
		player, err := engine.AddPlayer()

		// Then: ErrIllegalStateToAddPlayer is returned and the state is kept
		require.ErrorIs(t, err, apperror.ErrIllegalStateToAddPlayer)
		assert.Equal(t, NoPlayer, player)
		assert.Equal(t, StatePlayerOneToMove, engine.State())
	})

	t.Run("Finished game is rejected", func(t *testing.T) {
		// Given: a game won by player one
		engine := startedGame(t)
		playMoves(t, engine, 0, 3, 1, 4, 2)

		// When: a player tries to join
		_, err := engine.AddPlayer()

		// Then: ErrIllegalStateToAddPlayer is returned
		require.ErrorIs(t, err, apperror.ErrIllegalStateToAddPlayer)
		assert.Equal(t, StatePlayerOneWins, engine.State())
	})
}

func TestEngine_ExecuteMove(t *testing.T) {
	t.Run("Move flips the turn", func(t *testing.T) {
		// Given: a started game
		engine := startedGame(t)

		// When: player one plays the center
		err := engine.ExecuteMove(PlayerOne, 4)

		// Then: the cell is taken and player two moves next
		require.NoError(t, err)
		assert.Equal(t, StatePlayerTwoToMove, engine.State())
		assert.Equal(t, CellPlayerOne, engine.Board()[1][1])
	})

	t.Run("Row win", func(t *testing.T) {
		// Given: a started game
		engine := startedGame(t)

		// When: player one fills the top row
		playMoves(t, engine, 0, 3, 1, 4, 2)

		// Then: player one wins
		assert.Equal(t, StatePlayerOneWins, engine.State())
		assert.True(t, engine.IsOver())
	})

	t.Run("Column win", func(t *testing.T) {
		engine := startedGame(t)

		playMoves(t, engine, 0, 1, 3, 4, 6)

		assert.Equal(t, StatePlayerOneWins, engine.State())
	})

	t.Run("Diagonal win", func(t *testing.T) {
		engine := startedGame(t)

		playMoves(t, engine, 0, 1, 4, 2, 8)

		assert.Equal(t, StatePlayerOneWins, engine.State())
	})

	t.Run("Forward diagonal win for player two", func(t *testing.T) {
		engine := startedGame(t)

		playMoves(t, engine, 0, 2, 1, 4, 8, 6)

		assert.Equal(t, StatePlayerTwoWins, engine.State())
		assert.True(t, engine.IsOver())
	})

	t.Run("Stalemate", func(t *testing.T) {
		// Given: a started game
		engine := startedGame(t)

		// When: the board is filled without a line
		// player one: 0, 1, 5, 6, 8 / player two: 2, 3, 4, 7
		playMoves(t, engine, 0, 2, 1, 3, 5, 4, 6, 7, 8)

		// Then: the game ends in a stalemate
		assert.Equal(t, StateStalemate, engine.State())
		assert.True(t, engine.IsOver())
	})

	t.Run("Win on the last cell is not a stalemate", func(t *testing.T) {
		engine := startedGame(t)

		// O O X / X O X / O X X: player one completes the right column on cell 8
		playMoves(t, engine, 3, 0, 2, 1, 7, 4, 5, 6, 8)

		assert.Equal(t, StatePlayerOneWins, engine.State())
	})

	t.Run("Out of turn move", func(t *testing.T) {
		// Given: a started game where player one moves
		engine := startedGame(t)

		// When: player two tries to move
		err := engine.ExecuteMove(PlayerTwo, 0)

		// Then: ErrIncorrectPlayerTurn is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrIncorrectPlayerTurn)
		assert.Equal(t, StatePlayerOneToMove, engine.State())
		assert.Equal(t, [CellCount]Cell{}, engine.Cells())
	})

	t.Run("Occupied cell", func(t *testing.T) {
		// Given: player one took cell 0
		engine := startedGame(t)
		playMoves(t, engine, 0)

		// When: player two plays cell 0
		err := engine.ExecuteMove(PlayerTwo, 0)

		// Then: ErrCellAlreadyPlayed is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrCellAlreadyPlayed)
		assert.Equal(t, StatePlayerTwoToMove, engine.State())
		assert.Equal(t, [CellCount]Cell{CellPlayerOne}, engine.Cells())
	})

	t.Run("Move before the game started", func(t *testing.T) {
		engine := NewEngine(nil, "123")

		err := engine.ExecuteMove(PlayerOne, 0)

		require.ErrorIs(t, err, apperror.ErrIllegalStateToExecuteMove)
		assert.Equal(t, StateNew, engine.State())
	})

	t.Run("Move while waiting for player two", func(t *testing.T) {
		engine := NewEngine(nil, "123")
		_, err := engine.AddPlayer()
		require.NoError(t, err)

		err = engine.ExecuteMove(PlayerOne, 0)

		require.ErrorIs(t, err, apperror.ErrIllegalStateToExecuteMove)
	})

	t.Run("Move after the game finished", func(t *testing.T) {
		// Given: a game won by player one
		engine := startedGame(t)
		playMoves(t, engine, 0, 3, 1, 4, 2)
		cells := engine.Cells()

		// When: player two tries another move
		err := engine.ExecuteMove(PlayerTwo, 8)

		// Then: the state check fails first and the board is kept
		require.ErrorIs(t, err, apperror.ErrIllegalStateToExecuteMove)
		assert.Equal(t, StatePlayerOneWins, engine.State())
		assert.Equal(t, cells, engine.Cells())
	})

	t.Run("Move after stalemate", func(t *testing.T) {
		engine := startedGame(t)
		playMoves(t, engine, 0, 2, 1, 3, 5, 4, 6, 7, 8)

		err := engine.ExecuteMove(PlayerTwo, 0)

		require.ErrorIs(t, err, apperror.ErrIllegalStateToExecuteMove)
	})

	t.Run("Illegal player ids", func(t *testing.T) {
		engine := startedGame(t)

		for _, player := range []PlayerID{NoPlayer, -1, 3} {
			err := engine.ExecuteMove(player, 0)

			require.ErrorIs(t, err, apperror.ErrIllegalPlayerID)
		}

		assert.Equal(t, StatePlayerOneToMove, engine.State())
	})

	t.Run("Illegal cell ids", func(t *testing.T) {
		engine := startedGame(t)

		for _, cell := range []int{NoCell, 9, 20} {
			err := engine.ExecuteMove(PlayerOne, cell)

			require.ErrorIs(t, err, apperror.ErrIllegalCellID)
		}

		assert.Equal(t, [CellCount]Cell{}, engine.Cells())
	})
}

func TestEngine_ExecuteMoveValidationOrder(t *testing.T) {
	t.Run("State is checked before the player", func(t *testing.T) {
		engine := NewEngine(nil, "123")

		err := engine.ExecuteMove(NoPlayer, NoCell)

		require.ErrorIs(t, err, apperror.ErrIllegalStateToExecuteMove)
	})

	t.Run("Player is checked before the cell", func(t *testing.T) {
		engine := startedGame(t)

		err := engine.ExecuteMove(7, 42)

		require.ErrorIs(t, err, apperror.ErrIllegalPlayerID)
	})

	t.Run("Cell is checked before the turn", func(t *testing.T) {
		engine := startedGame(t)

		err := engine.ExecuteMove(PlayerTwo, 42)

		require.ErrorIs(t, err, apperror.ErrIllegalCellID)
	})

	t.Run("Turn is checked before the occupied cell", func(t *testing.T) {
		engine := startedGame(t)
		playMoves(t, engine, 0)

		err := engine.ExecuteMove(PlayerOne, 0)

		require.ErrorIs(t, err, apperror.ErrIncorrectPlayerTurn)
	})
}

func TestNextTurn(t *testing.T) {
	state, err := nextTurn(PlayerOne)
	require.NoError(t, err)
	assert.Equal(t, StatePlayerTwoToMove, state)

	state, err = nextTurn(PlayerTwo)
	require.NoError(t, err)
	assert.Equal(t, StatePlayerOneToMove, state)

	_, err = nextTurn(NoPlayer)
	require.ErrorIs(t, err, apperror.ErrIllegalState)
	assert.True(t, apperror.IsInvariantViolation(err))
}

func TestRestore(t *testing.T) {
	t.Run("Restored game continues", func(t *testing.T) {
		// Given: a stored game in progress
		cells := [CellCount]Cell{CellPlayerOne, CellPlayerTwo}

		// When: restoring it
		engine, err := Restore(nil, "123", cells, StatePlayerOneToMove)
		require.NoError(t, err)

		// Then: the game accepts the next move
		require.NoError(t, engine.ExecuteMove(PlayerOne, 4))
		assert.Equal(t, StatePlayerTwoToMove, engine.State())
		assert.Equal(t, "123", engine.GameID())
	})

	t.Run("Restored finished game stays finished", func(t *testing.T) {
		engine := startedGame(t)
		playMoves(t, engine, 0, 3, 1, 4, 2)

		restored, err := Restore(nil, "123", engine.Cells(), engine.State())

		require.NoError(t, err)
		assert.True(t, restored.IsOver())
		assert.Equal(t, engine.Board(), restored.Board())
	})

	t.Run("Rejects inconsistent snapshots", func(t *testing.T) {
		cases := map[string]struct {
			cells [CellCount]Cell
			state State
		}{
			"unknown state":       {state: State(42)},
			"unknown cell":        {cells: [CellCount]Cell{5}, state: StatePlayerOneToMove},
			"new game with moves": {cells: [CellCount]Cell{CellPlayerOne}, state: StateNew},
			"win without line":    {cells: [CellCount]Cell{CellPlayerOne}, state: StatePlayerOneWins},
			"stalemate not full":  {state: StateStalemate},
			"in play with a winner": {
				cells: [CellCount]Cell{CellPlayerTwo, CellPlayerTwo, CellPlayerTwo, CellPlayerOne, CellPlayerOne},
				state: StatePlayerOneToMove,
			},
		}

		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := Restore(nil, "123", tc.cells, tc.state)

				require.ErrorIs(t, err, apperror.ErrIllegalState)
			})
		}
	})
}

func TestLineWinner(t *testing.T) {
	assert.Equal(t, CellPlayerOne, lineWinner([LineLength]Cell{CellPlayerOne, CellPlayerOne, CellPlayerOne}))
	assert.Equal(t, CellPlayerTwo, lineWinner([LineLength]Cell{CellPlayerTwo, CellPlayerTwo, CellPlayerTwo}))
	assert.Equal(t, CellEmpty, lineWinner([LineLength]Cell{CellEmpty, CellEmpty, CellEmpty}))
	assert.Equal(t, CellEmpty, lineWinner([LineLength]Cell{CellPlayerOne, CellPlayerTwo, CellPlayerOne}))
	assert.Equal(t, CellEmpty, lineWinner([LineLength]Cell{CellPlayerOne, CellPlayerOne, CellEmpty}))
}

func TestEngine_ExecuteMoveUnknownWinner(t *testing.T) {
	// Given: a started game whose board holds a line of an unknown mark
	engine := startedGame(t)
	engine.board[2] = [BoardColumns]Cell{Cell(3), Cell(3), Cell(3)}

	// When: a legal move is made
	err := engine.ExecuteMove(PlayerOne, 0)

	// Then: the broken invariant is reported and nothing changes
	require.ErrorIs(t, err, apperror.ErrIllegalState)
	assert.Equal(t, StatePlayerOneToMove, engine.State())
	assert.Equal(t, CellEmpty, engine.Board()[0][0])
}

func TestStateOnWin(t *testing.T) {
	engine := NewEngine(nil, "123")

	state, err := engine.stateOnWin(PlayerOne)
	require.NoError(t, err)
	assert.Equal(t, StatePlayerOneWins, state)

	state, err = engine.stateOnWin(PlayerTwo)
	require.NoError(t, err)
	assert.Equal(t, StatePlayerTwoWins, state)

	_, err = engine.stateOnWin(NoPlayer)
	require.ErrorIs(t, err, apperror.ErrIllegalState)
}
