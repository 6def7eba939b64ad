package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// State is the lifecycle state of a game.
type State uint8

const (
	StateNew State = iota
	StateWaitingForPlayerTwo
	StatePlayerOneToMove
	StatePlayerTwoToMove
	StatePlayerOneWins
	StatePlayerTwoWins
	StateStalemate
)

var stateNames = map[State]string{
	StateNew:                 "new",
	StateWaitingForPlayerTwo: "waiting_for_player_two",
	StatePlayerOneToMove:     "player_one_to_move",
	StatePlayerTwoToMove:     "player_two_to_move",
	StatePlayerOneWins:       "player_one_wins",
	StatePlayerTwoWins:       "player_two_wins",
	StateStalemate:           "stalemate",
}

func (that State) String() string {
	if name, ok := stateNames[that]; ok {
		return name
	}

	return fmt.Sprintf("state(%d)", uint8(that))
}

func (that State) MarshalText() ([]byte, error) {
	name, ok := stateNames[that]
	if !ok {
		return nil, fmt.Errorf("%w: unknown state %d", apperror.ErrIllegalState, uint8(that))
	}

	return []byte(name), nil
}

func (that *State) UnmarshalText(text []byte) error {
	for state, name := range stateNames {
		if name == string(text) {
			*that = state
			return nil
		}
	}

	return fmt.Errorf("%w: unknown state %q", apperror.ErrIllegalState, text)
}

// IsTerminal reports whether no more moves are accepted.
func (that State) IsTerminal() bool {
	switch that {
	case StatePlayerOneWins, StatePlayerTwoWins, StateStalemate:
		return true
	default:
		return false
	}
}

func (that State) IsInProgress() bool {
	return that == StatePlayerOneToMove || that == StatePlayerTwoToMove
}

// PlayerToMove returns the player whose move is expected, or NoPlayer.
func (that State) PlayerToMove() PlayerID {
	switch that {
	case StatePlayerOneToMove:
		return PlayerOne
	case StatePlayerTwoToMove:
		return PlayerTwo
	default:
		return NoPlayer
	}
}

// Winner returns the winning player of a finished game, or NoPlayer.
func (that State) Winner() PlayerID {
	switch that {
	case StatePlayerOneWins:
		return PlayerOne
	case StatePlayerTwoWins:
		return PlayerTwo
	default:
		return NoPlayer
	}
}
