package entity

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// Game is the stored snapshot of a game engine.
type Game struct {
	ID        string                              `json:"id"`
	Board     [tictactoe.CellCount]tictactoe.Cell `json:"board"`
	State     tictactoe.State                     `json:"state"`
	Players   []*Player                           `json:"players,omitempty"`
	UpdatedAt time.Time                           `json:"updated_at"`
}

// NewGameSnapshot captures the current board and state of engine.
func NewGameSnapshot(engine *tictactoe.Engine, players []*Player) *Game {
	return &Game{
		ID:        engine.GameID(),
		Board:     engine.Cells(),
		State:     engine.State(),
		Players:   players,
		UpdatedAt: time.Now().UTC(),
	}
}

func (that *Game) IsOver() bool {
	return that.State.IsTerminal()
}

func (that *Game) IsWaiting() bool {
	return that.State == tictactoe.StateNew || that.State == tictactoe.StateWaitingForPlayerTwo
}

// Seat returns the player holding the given seat, or nil.
func (that *Game) Seat(number tictactoe.PlayerID) *Player {
	for _, player := range that.Players {
		if player.Number == number {
			return player
		}
	}

	return nil
}

// Player returns the seated player with the given id, or nil.
func (that *Game) Player(playerID string) *Player {
	for _, player := range that.Players {
		if player.ID == playerID {
			return player
		}
	}

	return nil
}

// HasPlayer reports whether the player is seated in this game.
func (that *Game) HasPlayer(playerID string) bool {
	return that.Player(playerID) != nil
}
