package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/gomoku-agent/internal/apperror"
	"github.com/rocketscienceinc/gomoku-agent/internal/entity"
	"github.com/rocketscienceinc/gomoku-agent/internal/gomoku"
)

const (
	StrategySmart    = "smart"
	StrategyNeighbor = "neighbor"
	StrategyRandom   = "random"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

type MoveSelector interface {
	SelectMove(board *entity.Board, player entity.Player) (entity.Move, error)
}

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Move, error)
}

type botService struct {
	selector MoveSelector
}

func NewBotService(selector MoveSelector) BotService {
	return &botService{selector: selector}
}

// IsKnownStrategy - reports whether NewMoveSelector accepts the name.
func IsKnownStrategy(strategy string) bool {
	switch strategy {
	case StrategySmart, StrategyNeighbor, StrategyRandom:
		return true
	default:
		return false
	}
}

// NewMoveSelector - builds the selector for a configured strategy. The
// random source is only used by the neighbor and random strategies.
func NewMoveSelector(strategy string, rnd *rand.Rand) (MoveSelector, error) {
	switch strategy {
	case StrategySmart:
		return gomoku.NewSelector(), nil
	case StrategyNeighbor:
		return newNeighborSelector(rnd), nil
	case StrategyRandom:
		return newRandomSelector(rnd), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// MakeTurn - selects and plays the bot's move on its own mark.
func (that *botService) MakeTurn(game *entity.Game) (entity.Move, error) {
	if !game.IsMyTurn() {
		return entity.Move{}, apperror.ErrNotYourTurn
	}

	move, err := that.selector.SelectMove(game.Board, game.Mark)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to select move: %w", err)
	}

	if err = gomoku.MakeTurn(game, move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}

// randomSelector plays a uniformly random empty cell.
type randomSelector struct {
	rnd *rand.Rand
}

func newRandomSelector(rnd *rand.Rand) *randomSelector {
	return &randomSelector{rnd: rnd}
}

func (that *randomSelector) SelectMove(board *entity.Board, player entity.Player) (entity.Move, error) {
	if !player.IsValid() {
		return entity.Move{}, apperror.ErrInvalidPlayer
	}

	size := board.Size()
	for i := 0; i < size * size; i++ {
		row, col := that.rnd.Intn(size), that.rnd.Intn(size)
		if board.IsEmpty(row, col) {
			return entity.NewMove(row, col, player), nil
		}
	}

	// nearly full board, stop guessing
	for _, p := range gomoku.ScanOrder(size) {
		if board.IsEmpty(p.Row, p.Col) {
			return entity.NewMove(p.Row, p.Col, player), nil
		}
	}

	return entity.Move{}, apperror.ErrNoLegalMove
}

// neighborSelector opens in the center, then plays the first empty cell
// touching one of its own stones. Without such a cell it plays randomly.
type neighborSelector struct {
	random *randomSelector
}

func newNeighborSelector(rnd *rand.Rand) *neighborSelector {
	return &neighborSelector{random: newRandomSelector(rnd)}
}

func (that *neighborSelector) SelectMove(board *entity.Board, player entity.Player) (entity.Move, error) {
	if !player.IsValid() {
		return entity.Move{}, apperror.ErrInvalidPlayer
	}

	if board.EmptyCount() == board.Size()*board.Size() {
		row, col := board.Center()
		return entity.NewMove(row, col, player), nil
	}

	own := player.Cell()
	for _, p := range gomoku.ScanOrder(board.Size()) {
		if board.Occupant(p.Row, p.Col) != own {
			continue
		}

		for dRow := -1; dRow <= 1; dRow++ {
			for dCol := -1; dCol <= 1; dCol++ {
				if board.IsEmpty(p.Row+dRow, p.Col+dCol) {
					return entity.NewMove(p.Row+dRow, p.Col+dCol, player), nil
				}
			}
		}
	}

	return that.random.SelectMove(board, player)
}
