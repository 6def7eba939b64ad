package entity

import "github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"

type Player struct {
	ID     string             `json:"id"`
	GameID string             `json:"game_id,omitempty"`
	Number tictactoe.PlayerID `json:"number,omitempty"`
}

func (that *Player) InGame() bool {
	return that.GameID != ""
}

// Leave releases the player's seat.
func (that *Player) Leave() {
	that.GameID = ""
	that.Number = tictactoe.NoPlayer
}
