package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/rest"
	"github.com/rocketscienceinc/tictactoe-engine/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until ctx is canceled or a signal arrives.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if conf.Redis.Host == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, conf.Redis)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisStorage)
	gameRepo := repository.NewGameRepository(redisStorage, conf.Game.FinishedTTL)
	gameMetrics := metrics.New()
	gameManager := usecase.NewGameManager(logger, gameMetrics, playerRepo, gameRepo)

	const servers = 2
	errCh := make(chan error, servers)

	// run HTTP server
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpServer := rest.New(logger, gameManager, gameMetrics.Handler())
		if err := httpServer.Start(ctx, conf.HTTPPort); err != nil {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
			return
		}
		errCh <- nil
	}()

	// run Websocket server
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameManager)
		if err := wsServer.Start(ctx, conf.SocketPort); err != nil {
			errCh <- fmt.Errorf("WebSocket server error: %w", err)
			return
		}
		errCh <- nil
	}()

	var runErr error
	stopped := 0

	select {
	case runErr = <-errCh:
		stopped++
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	cancel()

	// both servers return once their shutdown is done
	for ; stopped < servers; stopped++ {
		if err := <-errCh; err != nil {
			log.Error("server stopped with error", "error", err)
		}
	}

	return runErr
}
