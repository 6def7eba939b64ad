package apperror

import "errors"

var (
	ErrIllegalStateToAddPlayer   = newGameError("IllegalStateToAddPlayer", "game does not accept more players")
	ErrIllegalStateToExecuteMove = newGameError("IllegalStateToExecuteMove", "game is not in play")
	ErrIllegalPlayerID           = newGameError("IllegalPlayerId", "illegal player id")
	ErrIllegalCellID             = newGameError("IllegalCellId", "illegal cell id")
	ErrIncorrectPlayerTurn       = newGameError("IncorrectPlayerTurn", "it's not your turn")
	ErrCellAlreadyPlayed         = newGameError("CellAlreadyPlayed", "cell is already played")

	// ErrIllegalState signals a broken engine invariant, never a caller mistake.
	ErrIllegalState = newGameError("IllegalStateError", "game reached an illegal state")
)

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrPlayerNotInGame = errors.New("player is not in a game")
)

// GameError is a rule violation reported by the game engine.
type GameError struct {
	Code    string
	message string
}

func newGameError(code, message string) *GameError {
	return &GameError{Code: code, message: message}
}

func (that *GameError) Error() string {
	return that.message
}

// Code returns the code of the game error wrapped in err, or an empty string.
func Code(err error) string {
	var gameErr *GameError
	if errors.As(err, &gameErr) {
		return gameErr.Code
	}

	return ""
}

func IsInvariantViolation(err error) bool {
	return errors.Is(err, ErrIllegalState)
}
