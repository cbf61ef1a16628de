package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-agent/internal/apperror"
	"github.com/rocketscienceinc/gomoku-agent/internal/entity"
)

// MakeTurn - validates and applies a move, then checks the four axes through
// the new stone. A five ends the game for the mover, a full board ends it in a tie.
func MakeTurn(game *entity.Game, move entity.Move) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if err := validateMove(game, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if err := game.Board.Apply(move.Row, move.Col, move.Player); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Moves = append(game.Moves, move)
	updateGameStatus(game, move)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, move entity.Move) error {
	if !move.Player.IsValid() {
		return apperror.ErrInvalidPlayer
	}

	if game.Turn != move.Player {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game, move entity.Move) {
	switch {
	case IsWinningMove(game.Board, move.Row, move.Col, move.Player):
		game.FinishWithWinner(move.Player)
	case game.Board.IsFull():
		game.FinishWithTie()
	default:
		game.Turn = move.Player.Opponent()
	}
}
