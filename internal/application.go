package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-rounds/internal/config"
	"github.com/rocketscienceinc/tictactoe-rounds/internal/repository"
	"github.com/rocketscienceinc/tictactoe-rounds/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-rounds/internal/service"
	"github.com/rocketscienceinc/tictactoe-rounds/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-rounds/internal/usecase"
)

const suspendTimeout = 5 * time.Second

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	settings, err := conf.Game.Settings()
	if err != nil {
		return fmt.Errorf("invalid game settings: %w", err)
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sessionRepo := repository.NewSessionRepository(redisStorage.Connection)
	botService := service.NewBotService(nil)
	gameUseCase := usecase.NewGameUseCase(logger, sessionRepo, botService, conf.SessionID, settings)

	gameUseCase.Resume(ctx)

	log.Info("Starting console", "session", conf.SessionID)
	consoleServer := console.New(logger, gameUseCase, settings, os.Stdin, os.Stdout)
	runErr := consoleServer.Start(ctx)

	// ctx may already be canceled by a signal, the snapshot still has to be written
	suspendCtx, suspendCancel := context.WithTimeout(context.WithoutCancel(ctx), suspendTimeout)
	defer suspendCancel()

	if err = gameUseCase.Suspend(suspendCtx); err != nil {
		return errors.Join(runErr, fmt.Errorf("could not suspend session: %w", err))
	}

	if runErr != nil {
		return fmt.Errorf("console error: %w", runErr)
	}

	log.Info("Session suspended, shutting down")

	return nil
}
