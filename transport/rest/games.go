package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) getGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "getGame")

	gameID := r.PathValue("id")

	game, err := that.gameReader.GetGame(r.Context(), gameID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "game not found"})
		return
	}

	if err != nil {
		log.Error("failed to get game", "gameID", gameID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}
