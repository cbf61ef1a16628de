package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-agent/internal/apperror"
	"github.com/rocketscienceinc/gomoku-agent/internal/entity"
	"github.com/rocketscienceinc/gomoku-agent/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-agent/internal/service"
	mockedUseCase "github.com/rocketscienceinc/gomoku-agent/mocks/usecase"
)

var errRedisDown = errors.New("redis down")

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestBoard(t *testing.T) *entity.Board {
	t.Helper()

	board, err := entity.NewBoard(entity.DefaultBoardSize)
	require.NoError(t, err)

	return board
}

func newSmartBot() service.BotService {
	return service.NewBotService(gomoku.NewSelector())
}

// edgeBot plays along the bottom row, far away from anything the tests build.
func edgeBot(t *testing.T) func(game *entity.Game) (entity.Move, error) {
	t.Helper()

	col := 0
	return func(game *entity.Game) (entity.Move, error) {
		move := entity.NewMove(entity.DefaultBoardSize-1, col, game.Mark)
		col++
		return move, gomoku.MakeTurn(game, move)
	}
}

func TestGameManager_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays the center as O", func(t *testing.T) {
		// Given: a game manager with a journal
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := NewGameManager(newTestLogger(), mockGameRepo, newSmartBot(), newTestBoard(t))

		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Once()

		// When: the agent is told to start
		game, err := manager.Start(ctx)

		// Then: it plays O on the center and waits for X
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.Equal(t, entity.PlayerO, game.Mark)
		assert.Equal(t, []entity.Move{entity.NewMove(7, 7, entity.PlayerO)}, game.Moves)
		assert.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Journal failure does not stop the game", func(t *testing.T) {
		// Given: a journal that is down
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := NewGameManager(newTestLogger(), mockGameRepo, newSmartBot(), newTestBoard(t))

		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.Anything).
			Return(errRedisDown).
			Once()

		// When: the agent starts
		game, err := manager.Start(ctx)

		// Then: the move is still played
		require.NoError(t, err)
		assert.Len(t, game.Moves, 1)
	})

	t.Run("Bot failure is returned", func(t *testing.T) {
		// Given: a bot that cannot move
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockBot := mockedUseCase.NewMockbotDep(t)
		manager := NewGameManager(newTestLogger(), mockGameRepo, mockBot, newTestBoard(t))

		mockBot.EXPECT().
			MakeTurn(mock.Anything).
			Return(entity.Move{}, apperror.ErrNoLegalMove).
			Once()

		// When: the agent starts
		_, err := manager.Start(ctx)

		// Then: the error reaches the caller
		require.ErrorIs(t, err, apperror.ErrNoLegalMove)
	})
}

func TestGameManager_Join(t *testing.T) {
	ctx := context.Background()

	// Given: a game manager whose opponent opens on the center
	mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
	manager := NewGameManager(newTestLogger(), mockGameRepo, newSmartBot(), newTestBoard(t))

	mockGameRepo.EXPECT().
		CreateOrUpdate(mock.Anything, mock.Anything).
		Return(nil).
		Once()

	// When: the first line is the opponent's move
	game, err := manager.Join(ctx, 7, 7)

	// Then: the agent plays X right next to it
	require.NoError(t, err)
	assert.Equal(t, entity.PlayerX, game.Mark)
	assert.Equal(t, []entity.Move{
		entity.NewMove(7, 7, entity.PlayerO),
		entity.NewMove(7, 8, entity.PlayerX),
	}, game.Moves)
	assert.Equal(t, entity.PlayerO, game.Turn)
}

func TestGameManager_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Answers the opponent", func(t *testing.T) {
		// Given: the agent opened as O
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := NewGameManager(newTestLogger(), mockGameRepo, newSmartBot(), newTestBoard(t))

		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.Anything).
			Return(nil).
			Twice()

		_, err := manager.Start(ctx)
		require.NoError(t, err)

		// When: X answers on 7 8
		game, err := manager.MakeTurn(ctx, 7, 8)

		// Then: O extends on the other side
		require.NoError(t, err)
		last, ok := game.LastMove()
		require.True(t, ok)
		assert.Equal(t, entity.NewMove(7, 6, entity.PlayerO), last)
	})

	t.Run("Rejects a move onto an occupied cell", func(t *testing.T) {
		// Given: the agent opened on the center
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := NewGameManager(newTestLogger(), mockGameRepo, newSmartBot(), newTestBoard(t))

		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.Anything).
			Return(nil).
			Once()

		_, err := manager.Start(ctx)
		require.NoError(t, err)

		// When: the opponent claims the center too
		game, err := manager.MakeTurn(ctx, 7, 7)

		// Then: ErrCellOccupied is returned and nothing is journaled
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Len(t, game.Moves, 1)
	})

	t.Run("Rejects a move off the board", func(t *testing.T) {
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		manager := NewGameManager(newTestLogger(), mockGameRepo, newSmartBot(), newTestBoard(t))

		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.Anything).
			Return(nil).
			Once()

		_, err := manager.Start(ctx)
		require.NoError(t, err)

		_, err = manager.MakeTurn(ctx, 20, 20)

		require.ErrorIs(t, err, apperror.ErrOutOfRange)
	})

	t.Run("Opponent five finishes the game without a reply", func(t *testing.T) {
		// Given: the agent plays X along the bottom edge
		mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
		mockBot := mockedUseCase.NewMockbotDep(t)
		manager := NewGameManager(newTestLogger(), mockGameRepo, mockBot, newTestBoard(t))

		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.Anything).
			Return(nil).
			Times(5)
		mockBot.EXPECT().
			MakeTurn(mock.Anything).
			RunAndReturn(edgeBot(t)).
			Times(4)

		_, err := manager.Join(ctx, 0, 0)
		require.NoError(t, err)

		for col := 1; col < 4; col++ {
			_, err = manager.MakeTurn(ctx, 0, col)
			require.NoError(t, err)
		}

		// When: O completes five in row 0
		game, err := manager.MakeTurn(ctx, 0, 4)

		// Then: O wins and the agent does not answer
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, "O", game.Winner)
		last, _ := game.LastMove()
		assert.Equal(t, entity.NewMove(0, 4, entity.PlayerO), last)

		// And: any further move is rejected
		_, err = manager.MakeTurn(ctx, 1, 1)
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGameManager_EndGame(t *testing.T) {
	// Given: a started game
	ctx := context.Background()
	mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)
	manager := NewGameManager(newTestLogger(), mockGameRepo, newSmartBot(), newTestBoard(t))

	mockGameRepo.EXPECT().
		CreateOrUpdate(mock.Anything, mock.Anything).
		Return(nil).
		Twice()

	_, err := manager.Start(ctx)
	require.NoError(t, err)

	// When: the adjudicator ends the game
	game := manager.EndGame(ctx)

	// Then: the final state is journaled and returned
	assert.Len(t, game.Moves, 1)
	assert.True(t, game.IsOngoing())
}
