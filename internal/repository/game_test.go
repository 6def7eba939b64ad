package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

const finishedTTL = time.Minute

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	t.Run("Game in progress never expires", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, finishedTTL)

		// Given: a game in progress
		game := &entity.Game{
			ID:    "123",
			State: tictactoe.StatePlayerOneToMove,
		}

		// When: CreateOrUpdate is called
		err := gameRepo.CreateOrUpdate(ctx, game)

		// Then: the game is stored without expiration
		require.NoError(t, err)

		ttl, err := st.Storage.TTL(ctx, "game:123").Result()
		require.NoError(t, err)
		assert.Equal(t, time.Duration(-1), ttl)
	})

	t.Run("Finished game expires", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, finishedTTL)

		// Given: a finished game
		game := &entity.Game{
			ID:    "123",
			State: tictactoe.StateStalemate,
		}

		// When: CreateOrUpdate is called
		err := gameRepo.CreateOrUpdate(ctx, game)

		// Then: the game is stored with the finished TTL
		require.NoError(t, err)

		ttl, err := st.Storage.TTL(ctx, "game:123").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, finishedTTL)
	})
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, finishedTTL)

		// Given: a game with a board, a state and players
		game := &entity.Game{
			ID:    "123",
			Board: [tictactoe.CellCount]tictactoe.Cell{1, 0, 0, 0, 2},
			State: tictactoe.StatePlayerOneToMove,
			Players: []*entity.Player{
				{ID: "alice", GameID: "123", Number: tictactoe.PlayerOne},
				{ID: "bob", GameID: "123", Number: tictactoe.PlayerTwo},
			},
		}

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		require.Equal(t, game.ID, retrievedGame.ID)
		require.Equal(t, game.Board, retrievedGame.Board)
		require.Equal(t, game.State, retrievedGame.State)
		require.Equal(t, game.Players, retrievedGame.Players)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, finishedTTL)

		nonExistentGameID := "9999999"

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, nonExistentGameID)

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, retrievedGame)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, finishedTTL)

		// Given: a finished game
		game := &entity.Game{
			ID:    "123",
			State: tictactoe.StatePlayerOneWins,
		}

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: DeleteByID is called with existing ID
		err = gameRepo.DeleteByID(ctx, game.ID)

		// Then: no error should be returned
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, finishedTTL)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}
