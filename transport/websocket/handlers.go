package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const (
	codeBadRequest      = "BadRequest"
	codeGameNotFound    = "GameNotFound"
	codePlayerNotFound  = "PlayerNotFound"
	codePlayerNotInGame = "PlayerNotInGame"
	codeInternal        = "InternalError"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendBadRequest(conn, msg.Action, err.Error())
	}

	var playerID string
	if payloadReq.Player != nil {
		playerID = payloadReq.Player.ID
	}

	player, err := that.uGame.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to get or create player", "playerID", playerID, "error", err)
		return that.sendError(conn, msg.Action, err)
	}

	that.register(player.ID, conn)

	payloadResp := Payload{
		Player: player,
	}

	if player.InGame() {
		game, err := that.uGame.GetGame(ctx, player.GameID)
		if err != nil {
			log.Error("failed to get game", "gameID", player.GameID, "error", err)
			return that.sendError(conn, msg.Action, err)
		}

		payloadResp.Game = game
	}

	if err = conn.sendMessage(msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("player connected", "playerID", player.ID)

	return nil
}

// handleNewGame creates a game and seats the requesting player as player one.
func (that *Server) handleNewGame(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleNewGame")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendBadRequest(conn, msg.Action, err.Error())
	}

	playerID := that.playerID(payloadReq, conn)
	if playerID == "" {
		return that.sendBadRequest(conn, msg.Action, "player is required")
	}

	created, err := that.uGame.CreateGame(ctx)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return that.sendError(conn, msg.Action, err)
	}

	game, player, err := that.uGame.JoinGame(ctx, created.ID, playerID)
	if err != nil {
		log.Error("failed to join new game", "gameID", created.ID, "error", err)
		return that.sendError(conn, msg.Action, err)
	}

	that.register(player.ID, conn)

	if err = conn.sendMessage(msg.Action, Payload{Player: player, Game: game}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("game created", "gameID", game.ID, "playerID", player.ID)

	return nil
}

func (that *Server) handleJoinGame(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleJoinGame")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendBadRequest(conn, msg.Action, err.Error())
	}

	playerID := that.playerID(payloadReq, conn)
	if playerID == "" {
		return that.sendBadRequest(conn, msg.Action, "player is required")
	}

	if payloadReq.Game == nil || payloadReq.Game.ID == "" {
		return that.sendBadRequest(conn, msg.Action, "game is required")
	}

	log = log.With("gameID", payloadReq.Game.ID, "playerID", playerID)

	game, player, err := that.uGame.JoinGame(ctx, payloadReq.Game.ID, playerID)
	if err != nil {
		log.Warn("failed to join game", "error", err)
		return that.sendError(conn, msg.Action, err)
	}

	that.register(player.ID, conn)
	that.broadcast(msg.Action, game)

	log.Info("player joined game", "state", game.State)

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, conn *connection) error {
	log := that.logger.With("method", "handleGameTurn")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendBadRequest(conn, msg.Action, err.Error())
	}

	// an unknown player can not be seated anywhere
	playerID := that.playerID(payloadReq, conn)
	if playerID == "" {
		return that.sendError(conn, msg.Action, apperror.ErrIllegalPlayerID)
	}

	cell := tictactoe.NoCell
	if payloadReq.Cell != nil {
		cell = *payloadReq.Cell
	}

	log = log.With("playerID", playerID, "cell", cell)

	game, err := that.uGame.MakeMove(ctx, playerID, cell)
	if err != nil {
		log.Warn("move rejected", "error", err)
		return that.sendError(conn, msg.Action, err)
	}

	that.broadcast(msg.Action, game)

	log.Info("move made", "gameID", game.ID, "state", game.State)

	return nil
}

func (that *Server) handleGameState(ctx context.Context, msg *Message, conn *connection) error {
	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendBadRequest(conn, msg.Action, err.Error())
	}

	if payloadReq.Game == nil || payloadReq.Game.ID == "" {
		return that.sendBadRequest(conn, msg.Action, "game is required")
	}

	game, err := that.uGame.GetGame(ctx, payloadReq.Game.ID)
	if err != nil {
		return that.sendError(conn, msg.Action, err)
	}

	return conn.sendMessage(msg.Action, Payload{Game: game})
}

// broadcast sends the game to every seated player that has a connection.
func (that *Server) broadcast(action string, game *entity.Game) {
	log := that.logger.With("method", "broadcast", "gameID", game.ID)

	for _, player := range game.Players {
		conn, ok := that.connection(player.ID)
		if !ok {
			log.Warn("connection not found for player", "playerID", player.ID)
			continue
		}

		if err := conn.sendMessage(action, Payload{Player: player, Game: game}); err != nil {
			log.Error("failed to send game update", "playerID", player.ID, "error", err)
		}
	}
}

// playerID prefers the player named in the payload over the one bound to the connection.
func (that *Server) playerID(payload Payload, conn *connection) string {
	if payload.Player != nil && payload.Player.ID != "" {
		return payload.Player.ID
	}

	return conn.playerID
}

func (that *Server) sendError(conn *connection, action string, err error) error {
	payload := Payload{
		Error: err.Error(),
		Code:  errorCode(err),
	}

	if !usecase.IsUserError(err) {
		payload.Error = "internal error"
	}

	if sendErr := conn.sendMessage(action, payload); sendErr != nil {
		return fmt.Errorf("failed to send error response: %w", sendErr)
	}

	return nil
}

func (that *Server) sendBadRequest(conn *connection, action, reason string) error {
	if err := conn.sendMessage(action, Payload{Error: reason, Code: codeBadRequest}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}

func decodePayload(msg *Message) (Payload, error) {
	var payload Payload
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, errors.New("payload is not valid JSON")
	}

	return payload, nil
}

func errorCode(err error) string {
	if code := apperror.Code(err); code != "" {
		return code
	}

	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return codeGameNotFound
	case errors.Is(err, apperror.ErrPlayerNotFound):
		return codePlayerNotFound
	case errors.Is(err, apperror.ErrPlayerNotInGame):
		return codePlayerNotInGame
	default:
		return codeInternal
	}
}
