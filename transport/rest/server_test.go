package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type stubGameReader map[string]*entity.Game

func (that stubGameReader) GetGame(_ context.Context, gameID string) (*entity.Game, error) {
	if gameID == "broken" {
		return nil, assert.AnError
	}

	game, ok := that[gameID]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	return game, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	games := stubGameReader{
		"g1": {ID: "g1", State: tictactoe.StatePlayerOneWins},
	}

	server := httptest.NewServer(New(slog.Default(), games, metrics.New().Handler()).Handler())
	t.Cleanup(server.Close)

	return server
}

func TestServer_Ping(t *testing.T) {
	server := newTestServer(t)

	response, err := http.Get(server.URL + "/ping")
	require.NoError(t, err)
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestServer_Metrics(t *testing.T) {
	server := newTestServer(t)

	response, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, string(body), "tictactoe_games_created_total")
}

func TestServer_GetGame(t *testing.T) {
	server := newTestServer(t)

	t.Run("existing game", func(t *testing.T) {
		response, err := http.Get(server.URL + "/games/g1")
		require.NoError(t, err)
		defer response.Body.Close()

		require.Equal(t, http.StatusOK, response.StatusCode)
		assert.Equal(t, "application/json", response.Header.Get("Content-Type"))

		var game entity.Game
		require.NoError(t, json.NewDecoder(response.Body).Decode(&game))
		assert.Equal(t, "g1", game.ID)
		assert.Equal(t, tictactoe.StatePlayerOneWins, game.State)
	})

	tests := map[string]struct {
		path   string
		status int
	}{
		"unknown game":  {path: "/games/missing", status: http.StatusNotFound},
		"storage error": {path: "/games/broken", status: http.StatusInternalServerError},
		"no game id":    {path: "/games", status: http.StatusNotFound},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			response, err := http.Get(server.URL + tt.path)
			require.NoError(t, err)
			defer response.Body.Close()

			assert.Equal(t, tt.status, response.StatusCode)
		})
	}
}
