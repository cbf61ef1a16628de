package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku-agent/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the agent's view of the match it is playing.
type Game struct {
	ID        string `json:"id"`
	Board     *Board `json:"-"`
	BoardSize int    `json:"board_size"`
	Mark      Player `json:"mark,omitempty"`
	Turn      Player `json:"player_turn,omitempty"`
	Winner    string `json:"winner"`
	Status    string `json:"status"`
	Moves     []Move `json:"moves"`
}

func NewGame(id string, board *Board) *Game {
	return &Game{
		ID:        id,
		Board:     board,
		BoardSize: board.Size(),
		Turn:      PlayerO,
		Status:    StatusWaiting,
		Moves:     []Move{},
	}
}

// Begin - assigns the agent's mark and marks the game as ongoing.
func (that *Game) Begin(mark Player) error {
	if !mark.IsValid() {
		return apperror.ErrInvalidPlayer
	}

	that.Mark = mark
	that.Status = StatusOngoing

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrTurnOrder
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsMyTurn() bool {
	return that.IsOngoing() && that.Turn == that.Mark
}

func (that *Game) LastMove() (Move, bool) {
	if len(that.Moves) == 0 {
		return Move{}, false
	}
	return that.Moves[len(that.Moves)-1], true
}

func (that *Game) FinishWithWinner(winner Player) {
	that.Winner = winner.String()
	that.Status = StatusFinished
	that.Turn = 0
}

func (that *Game) FinishWithTie() {
	that.Winner = markTie
	that.Status = StatusFinished
	that.Turn = 0
}

func (that *Game) IsTie() bool {
	return that.IsFinished() && that.Winner == markTie
}
