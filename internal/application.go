package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gomoku-agent/internal/config"
	"github.com/rocketscienceinc/gomoku-agent/internal/entity"
	"github.com/rocketscienceinc/gomoku-agent/internal/repository"
	"github.com/rocketscienceinc/gomoku-agent/internal/repository/storage"
	"github.com/rocketscienceinc/gomoku-agent/internal/service"
	"github.com/rocketscienceinc/gomoku-agent/internal/transport/line"
	"github.com/rocketscienceinc/gomoku-agent/internal/usecase"
)

// RunApp - plays one game over in/out and returns once it is over.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo, closeJournal := initJournal(ctx, log, conf)
	defer closeJournal()

	selector, err := service.NewMoveSelector(conf.Strategy, rand.New(rand.NewSource(conf.Seed))) //nolint:gosec // reproducible play, not security
	if err != nil {
		return fmt.Errorf("could not create move selector: %w", err)
	}

	board, err := entity.NewBoard(conf.BoardSize)
	if err != nil {
		return fmt.Errorf("could not create board: %w", err)
	}

	gameManager := usecase.NewGameManager(logger, gameRepo, service.NewBotService(selector), board)
	server := line.New(logger, gameManager)

	log.Info("Agent ready", "strategy", conf.Strategy, "boardSize", conf.BoardSize, "journal", conf.Journal.Enabled)

	serveErrCh := make(chan error, 1)
	go func() {
		serveErrCh <- server.Serve(ctx, in, out)
	}()

	select {
	case err = <-serveErrCh:
		if err != nil {
			return fmt.Errorf("game aborted: %w", err)
		}
		log.Info("Game over, shutting down")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// initJournal - connects the Redis journal when enabled. An unreachable Redis
// leaves the agent playing without a journal.
func initJournal(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.GameRepository, func()) {
	noop := func() {}

	if !conf.Journal.Enabled {
		return repository.NewDiscardGameRepository(), noop
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Journal.Redis.GetRedisAddr())
	if err != nil {
		log.Warn("Journal disabled, could not connect to redis storage", "error", err)
		return repository.NewDiscardGameRepository(), noop
	}

	return repository.NewGameRepository(redisStorage.Connection, conf.Journal.TTL), func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}
}
