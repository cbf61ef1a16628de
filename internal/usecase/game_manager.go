package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/gomoku-agent/internal/entity"
	"github.com/rocketscienceinc/gomoku-agent/internal/gomoku"
)

type GameManager interface {
	// Start - the agent moves first as O and plays its opening move.
	Start(ctx context.Context) (*entity.Game, error)
	// Join - the agent plays X; the opponent's first move is applied and answered.
	Join(ctx context.Context, row, col int) (*entity.Game, error)
	// MakeTurn - applies the opponent's move and answers it unless the game is over.
	MakeTurn(ctx context.Context, row, col int) (*entity.Game, error)
	// EndGame - records the final state once the adjudicator ends the game.
	EndGame(ctx context.Context) *entity.Game
}

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
}

type botDep interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type gameManager struct {
	logger *slog.Logger

	gameRepo gameRepoDep
	bot      botDep

	game *entity.Game
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepoDep, bot botDep, board *entity.Board) GameManager {
	return &gameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		bot:      bot,
		game:     entity.NewGame(uuid.NewString(), board),
	}
}

func (that *gameManager) Start(ctx context.Context) (*entity.Game, error) {
	if err := that.game.Begin(entity.PlayerO); err != nil {
		return nil, fmt.Errorf("failed to begin game: %w", err)
	}

	that.logger.Info("Game started", "gameID", that.game.ID, "mark", that.game.Mark)

	if _, err := that.bot.MakeTurn(that.game); err != nil {
		return that.game, fmt.Errorf("bot failed to make first turn: %w", err)
	}

	that.saveGame(ctx)

	return that.game, nil
}

func (that *gameManager) Join(ctx context.Context, row, col int) (*entity.Game, error) {
	if err := that.game.Begin(entity.PlayerX); err != nil {
		return nil, fmt.Errorf("failed to begin game: %w", err)
	}

	that.logger.Info("Game joined", "gameID", that.game.ID, "mark", that.game.Mark)

	return that.MakeTurn(ctx, row, col)
}

func (that *gameManager) MakeTurn(ctx context.Context, row, col int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", that.game.ID)

	move := entity.NewMove(row, col, that.game.Mark.Opponent())
	if err := gomoku.MakeTurn(that.game, move); err != nil {
		return that.game, fmt.Errorf("failed to apply opponent move: %w", err)
	}

	log.Debug("Opponent moved", "row", row, "col", col)

	if that.game.IsFinished() {
		log.Info("Game finished by opponent move", "winner", that.game.Winner)
		that.saveGame(ctx)

		return that.game, nil
	}

	reply, err := that.bot.MakeTurn(that.game)
	if err != nil {
		return that.game, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("Bot moved", "row", reply.Row, "col", reply.Col)

	if that.game.IsFinished() {
		log.Info("Game finished by bot move", "winner", that.game.Winner)
	}

	that.saveGame(ctx)

	return that.game, nil
}

func (that *gameManager) EndGame(ctx context.Context) *entity.Game {
	that.logger.Info("Game ended",
		"gameID", that.game.ID,
		"status", that.game.Status,
		"winner", that.game.Winner,
		"moves", len(that.game.Moves),
	)

	that.saveGame(ctx)

	return that.game
}

// saveGame - the journal is informational, a failed write never stops the game.
func (that *gameManager) saveGame(ctx context.Context) {
	if err := that.gameRepo.CreateOrUpdate(ctx, that.game); err != nil {
		that.logger.Warn("failed to save game", "gameID", that.game.ID, "error", err)
	}
}
