package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

type gameMetrics interface {
	GameCreated()
	PlayerJoined(err error)
	MoveExecuted(err error)
	GameFinished(state tictactoe.State)
}

// GameManager runs game engines on top of the stored snapshots. Mutations
// of one game are serialized; different games never wait on each other.
type GameManager struct {
	logger  *slog.Logger
	metrics gameMetrics

	playerRepo playerRepo
	gameRepo   gameRepo

	locks *gameLocks
}

func NewGameManager(logger *slog.Logger, metrics gameMetrics, playerRepo playerRepo, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:  logger,
		metrics: metrics,

		playerRepo: playerRepo,
		gameRepo:   gameRepo,

		locks: newGameLocks(),
	}
}

// GetOrCreatePlayer returns the stored player, or registers a new one when id is empty.
func (that *GameManager) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	if id == "" {
		player, err := that.createPlayer(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create new player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// CreateGame stores a new game nobody has joined yet.
func (that *GameManager) CreateGame(ctx context.Context) (*entity.Game, error) {
	gameID := pkg.GenerateGameID()
	engine := tictactoe.NewEngine(that.logger, gameID)

	game := entity.NewGameSnapshot(engine, nil)
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.metrics.GameCreated()
	that.logger.Info("game created", "gameID", gameID)

	return game, nil
}

// JoinGame seats the player in the game. Joining a game the player
// already sits in returns the game unchanged.
func (that *GameManager) JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, *entity.Player, error) {
	log := that.logger.With("method", "JoinGame", "gameID", gameID, "playerID", playerID)

	unlock := that.locks.lock(gameID)
	defer unlock()

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}

	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}

	if seated := game.Player(player.ID); seated != nil && !game.IsOver() {
		if player.GameID == game.ID {
			return game, player, nil
		}

		return that.takeSeat(ctx, game, player, seated.Number)
	}

	engine, err := that.restoreEngine(game)
	if err != nil {
		return nil, nil, err
	}

	number, err := engine.AddPlayer()
	that.metrics.PlayerJoined(err)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to add player to game %s: %w", gameID, err)
	}

	if player.InGame() {
		log.Warn("player leaves previous game", "previousGameID", player.GameID)
	}

	player.GameID = game.ID
	player.Number = number
	if err = that.updatePlayer(ctx, player); err != nil {
		return nil, nil, err
	}

	updated := entity.NewGameSnapshot(engine, append(game.Players, player))
	if err = that.updateGame(ctx, updated); err != nil {
		return nil, nil, err
	}

	log.Info("player joined game", "number", number, "state", updated.State)

	return updated, player, nil
}

// takeSeat puts a player back into the seat they already hold in game.
func (that *GameManager) takeSeat(ctx context.Context, game *entity.Game, player *entity.Player, number tictactoe.PlayerID) (*entity.Game, *entity.Player, error) {
	that.logger.Info("player returned to game", "method", "JoinGame", "gameID", game.ID, "playerID", player.ID, "number", number)

	player.GameID = game.ID
	player.Number = number
	if err := that.updatePlayer(ctx, player); err != nil {
		return nil, nil, err
	}

	return game, player, nil
}

// MakeMove plays cell for the player in the game the player is seated in.
// The result of the move is read from the state of the returned game.
func (that *GameManager) MakeMove(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if !player.InGame() {
		return nil, fmt.Errorf("%w: player %s", apperror.ErrPlayerNotInGame, playerID)
	}

	unlock := that.locks.lock(player.GameID)
	defer unlock()

	// the seat may have been released while waiting for the lock
	player, err = that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if !player.InGame() {
		return nil, fmt.Errorf("%w: player %s", apperror.ErrPlayerNotInGame, playerID)
	}

	game, err := that.getGameByID(ctx, player.GameID)
	if err != nil {
		return nil, err
	}

	engine, err := that.restoreEngine(game)
	if err != nil {
		return nil, err
	}

	err = engine.ExecuteMove(player.Number, cell)
	that.metrics.MoveExecuted(err)
	if err != nil {
		return game, fmt.Errorf("failed to make move in game %s: %w", game.ID, err)
	}

	updated := entity.NewGameSnapshot(engine, game.Players)
	if err = that.updateGame(ctx, updated); err != nil {
		return nil, err
	}

	if updated.IsOver() {
		that.finishGame(ctx, updated)
	}

	return updated, nil
}

// GetGame returns the current snapshot of the game.
func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	unlock := that.locks.lock(gameID)
	defer unlock()

	return that.getGameByID(ctx, gameID)
}

// finishGame releases the seats of a finished game. The game itself stays
// readable until the repository expires it.
func (that *GameManager) finishGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "finishGame", "gameID", game.ID)

	that.metrics.GameFinished(game.State)

	for _, seated := range game.Players {
		player, err := that.playerRepo.GetByID(ctx, seated.ID)
		if err != nil {
			log.Error("failed to get player", "playerID", seated.ID, "error", err)
			continue
		}

		// the player already moved on to another game
		if player.GameID != game.ID {
			continue
		}

		player.Leave()

		if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			log.Error("failed to release player", "playerID", player.ID, "error", err)
		}
	}

	log.Info("game finished", "state", game.State)
}

func (that *GameManager) restoreEngine(game *entity.Game) (*tictactoe.Engine, error) {
	engine, err := tictactoe.Restore(that.logger, game.ID, game.Board, game.State)
	if err != nil {
		that.logger.Error("stored game is corrupted", "gameID", game.ID, "error", err)
		return nil, fmt.Errorf("failed to restore game %s: %w", game.ID, err)
	}

	return engine, nil
}

func (that *GameManager) createPlayer(ctx context.Context) (*entity.Player, error) {
	playerID, err := pkg.GenerateNewSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate player id: %w", err)
	}

	player := &entity.Player{
		ID: playerID,
	}

	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) getPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (that *GameManager) updatePlayer(ctx context.Context, player *entity.Player) error {
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	return nil
}

// IsUserError reports whether err was caused by the caller and can be
// retried with corrected input.
func IsUserError(err error) bool {
	if apperror.IsInvariantViolation(err) {
		return false
	}

	return apperror.Code(err) != "" ||
		errors.Is(err, apperror.ErrGameNotFound) ||
		errors.Is(err, apperror.ErrPlayerNotFound) ||
		errors.Is(err, apperror.ErrPlayerNotInGame)
}
