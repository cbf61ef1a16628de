package gomoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-agent/internal/apperror"
	"github.com/rocketscienceinc/gomoku-agent/internal/entity"
)

func newOngoingGame(t *testing.T, size int) *entity.Game {
	t.Helper()

	game := entity.NewGame("123", newTestBoard(t, size))
	require.NoError(t, game.Begin(entity.PlayerO))

	return game
}

func TestMakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new ongoing game
		game := newOngoingGame(t, entity.DefaultBoardSize)

		// When: O plays the center
		err := MakeTurn(game, entity.NewMove(7, 7, entity.PlayerO))
		require.NoError(t, err)

		// Then: the stone is placed, recorded and the turn passes to X
		assert.Equal(t, entity.CellO, game.Board.Occupant(7, 7))
		assert.Equal(t, []entity.Move{entity.NewMove(7, 7, entity.PlayerO)}, game.Moves)
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Equal(t, entity.StatusOngoing, game.Status)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game where O is to move
		game := newOngoingGame(t, entity.DefaultBoardSize)

		// When: X tries to move first
		err := MakeTurn(game, entity.NewMove(7, 7, entity.PlayerX))

		// Then: ErrNotYourTurn is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.True(t, game.Board.IsEmpty(7, 7))
		assert.Empty(t, game.Moves)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: O holds the center
		game := newOngoingGame(t, entity.DefaultBoardSize)
		require.NoError(t, MakeTurn(game, entity.NewMove(7, 7, entity.PlayerO)))

		// When: X plays on the same cell
		err := MakeTurn(game, entity.NewMove(7, 7, entity.PlayerX))

		// Then: ErrCellOccupied is returned and it is still X's turn
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, entity.CellO, game.Board.Occupant(7, 7))
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Len(t, game.Moves, 1)
	})

	t.Run("Error on coordinates out of range", func(t *testing.T) {
		game := newOngoingGame(t, entity.DefaultBoardSize)

		err := MakeTurn(game, entity.NewMove(20, 20, entity.PlayerO))

		require.ErrorIs(t, err, apperror.ErrOutOfRange)
		assert.Equal(t, entity.PlayerO, game.Turn)
	})

	t.Run("Error before the game has begun", func(t *testing.T) {
		game := entity.NewGame("123", newTestBoard(t, entity.DefaultBoardSize))

		err := MakeTurn(game, entity.NewMove(7, 7, entity.PlayerO))

		require.ErrorIs(t, err, apperror.ErrTurnOrder)
	})

	t.Run("Five in a row finishes the game", func(t *testing.T) {
		// Given: O builds a row while X plays elsewhere
		game := newOngoingGame(t, entity.DefaultBoardSize)
		for col := 0; col < 4; col++ {
			require.NoError(t, MakeTurn(game, entity.NewMove(0, col, entity.PlayerO)))
			require.NoError(t, MakeTurn(game, entity.NewMove(5, col, entity.PlayerX)))
		}

		// When: O places the fifth stone
		err := MakeTurn(game, entity.NewMove(0, 4, entity.PlayerO))
		require.NoError(t, err)

		// Then: O wins and further moves are rejected
		assert.True(t, game.IsFinished())
		assert.Equal(t, "O", game.Winner)

		err = MakeTurn(game, entity.NewMove(5, 4, entity.PlayerX))
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.True(t, game.Board.IsEmpty(5, 4))
	})

	t.Run("Full board without a five is a tie", func(t *testing.T) {
		// Given: the moves of a drawn 5x5 game, O and X alternating
		game := newOngoingGame(t, 5)

		var movesO, movesX []entity.Move
		for row, line := range drawnGrid {
			for col, mark := range line {
				if mark == 'O' {
					movesO = append(movesO, entity.NewMove(row, col, entity.PlayerO))
				} else {
					movesX = append(movesX, entity.NewMove(row, col, entity.PlayerX))
				}
			}
		}

		// When: all moves are played
		for i, move := range movesO {
			require.NoError(t, MakeTurn(game, move))
			if i < len(movesX) {
				require.NoError(t, MakeTurn(game, movesX[i]))
			}
		}

		// Then: the game ends in a tie
		assert.True(t, game.IsTie())
		assert.Len(t, game.Moves, 25)
	})
}
