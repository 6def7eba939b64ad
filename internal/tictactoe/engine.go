package tictactoe

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Engine is the state machine of a single game. It is not safe for
// concurrent use: callers serialize AddPlayer and ExecuteMove per game.
type Engine struct {
	logger *slog.Logger

	gameID string
	board  Board
	state  State
}

// NewEngine returns a game in StateNew with an empty board.
func NewEngine(logger *slog.Logger, gameID string) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Engine{
		logger: logger.With("component", "engine", "gameID", gameID),
		gameID: gameID,
		state:  StateNew,
	}
}

// Restore rebuilds an engine from a stored board and state.
func Restore(logger *slog.Logger, gameID string, cells [CellCount]Cell, state State) (*Engine, error) {
	if _, ok := stateNames[state]; !ok {
		return nil, fmt.Errorf("%w: unknown state %d", apperror.ErrIllegalState, uint8(state))
	}

	for cellID, cell := range cells {
		if !cell.IsValid() {
			return nil, fmt.Errorf("%w: cell %d holds %d", apperror.ErrIllegalState, cellID, cell)
		}
	}

	engine := NewEngine(logger, gameID)
	engine.board = boardFromCells(cells)
	engine.state = state

	if err := engine.checkConsistency(); err != nil {
		return nil, err
	}

	return engine, nil
}

func (that *Engine) GameID() string {
	return that.gameID
}

func (that *Engine) State() State {
	return that.state
}

func (that *Engine) IsOver() bool {
	return that.state.IsTerminal()
}

func (that *Engine) Board() Board {
	return that.board
}

func (that *Engine) Cells() [CellCount]Cell {
	return that.board.Cells()
}

// AddPlayer seats the next player and returns its id.
func (that *Engine) AddPlayer() (PlayerID, error) {
	switch that.state {
	case StateNew:
		that.state = StateWaitingForPlayerTwo
		that.logger.Info("player joined", "player", PlayerOne)

		return PlayerOne, nil
	case StateWaitingForPlayerTwo:
		that.state = StatePlayerOneToMove
		that.logger.Info("player joined", "player", PlayerTwo)

		return PlayerTwo, nil
	default:
		return NoPlayer, fmt.Errorf("%w: game is %s", apperror.ErrIllegalStateToAddPlayer, that.state)
	}
}

// ExecuteMove marks cellID for player. The outcome of the move is read
// with State afterwards. A failed move leaves the game untouched.
func (that *Engine) ExecuteMove(player PlayerID, cellID int) error {
	if !that.state.IsInProgress() {
		return fmt.Errorf("%w: game is %s", apperror.ErrIllegalStateToExecuteMove, that.state)
	}

	if !player.IsValid() {
		return fmt.Errorf("%w: %d", apperror.ErrIllegalPlayerID, player)
	}

	if cellID < 0 || cellID >= CellCount {
		return fmt.Errorf("%w: %d", apperror.ErrIllegalCellID, cellID)
	}

	if that.state.PlayerToMove() != player {
		return fmt.Errorf("%w: player %d", apperror.ErrIncorrectPlayerTurn, player)
	}

	row, column := cellPosition(cellID)
	if that.board[row][column] != CellEmpty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellAlreadyPlayed, cellID)
	}

	next, err := nextTurn(player)
	if err != nil {
		return err
	}

	that.logger.Info("executing move", "player", player, "cell", cellID)

	that.board[row][column] = player.Cell()

	outcome, err := that.checkForWin(next)
	if err != nil {
		that.board[row][column] = CellEmpty
		return err
	}

	that.state = outcome

	return nil
}

// nextTurn is the provisional state after player has moved.
func nextTurn(player PlayerID) (State, error) {
	switch player {
	case PlayerOne:
		return StatePlayerTwoToMove, nil
	case PlayerTwo:
		return StatePlayerOneToMove, nil
	default:
		return 0, fmt.Errorf("%w: no turn follows player %d", apperror.ErrIllegalState, player)
	}
}

// checkForWin returns the state that follows the last move, falling back
// to the provisional next turn.
func (that *Engine) checkForWin(next State) (State, error) {
	if winner := that.findWinner(); winner != CellEmpty {
		return that.stateOnWin(winner.Player())
	}

	that.logger.Debug("checking for stalemate")

	if that.board.isFull() {
		that.logger.Info("no one has won the game")
		return StateStalemate, nil
	}

	that.logger.Debug("game has not been won")

	return next, nil
}

// findWinner scans rows, then columns, then both diagonals.
func (that *Engine) findWinner() Cell {
	for rowID := range BoardRows {
		that.logger.Debug("checking row for win", "row", rowID)

		if winner := lineWinner(that.board.row(rowID)); winner != CellEmpty {
			return winner
		}
	}

	for columnID := range BoardColumns {
		that.logger.Debug("checking column for win", "column", columnID)

		if winner := lineWinner(that.board.column(columnID)); winner != CellEmpty {
			return winner
		}
	}

	that.logger.Debug("checking back diagonal for win")

	if winner := lineWinner(that.board.backDiagonal()); winner != CellEmpty {
		return winner
	}

	that.logger.Debug("checking forward diagonal for win")

	return lineWinner(that.board.forwardDiagonal())
}

func (that *Engine) stateOnWin(player PlayerID) (State, error) {
	switch player {
	case PlayerOne:
		that.logger.Info("player has won the game", "player", player)
		return StatePlayerOneWins, nil
	case PlayerTwo:
		that.logger.Info("player has won the game", "player", player)
		return StatePlayerTwoWins, nil
	default:
		return 0, fmt.Errorf("%w: line won by player %d", apperror.ErrIllegalState, player)
	}
}

// checkConsistency verifies that the board agrees with the state.
func (that *Engine) checkConsistency() error {
	winner := that.findWinner()

	switch that.state {
	case StateNew, StateWaitingForPlayerTwo:
		if !that.board.isEmpty() {
			return fmt.Errorf("%w: %s game with played cells", apperror.ErrIllegalState, that.state)
		}
	case StatePlayerOneToMove, StatePlayerTwoToMove:
		if winner != CellEmpty || that.board.isFull() {
			return fmt.Errorf("%w: %s game is already decided", apperror.ErrIllegalState, that.state)
		}
	case StatePlayerOneWins, StatePlayerTwoWins:
		if winner.Player() != that.state.Winner() {
			return fmt.Errorf("%w: %s without a winning line", apperror.ErrIllegalState, that.state)
		}
	case StateStalemate:
		if winner != CellEmpty || !that.board.isFull() {
			return fmt.Errorf("%w: stalemate on an undecided board", apperror.ErrIllegalState)
		}
	}

	return nil
}
