package gomoku

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-agent/internal/apperror"
	"github.com/rocketscienceinc/gomoku-agent/internal/entity"
)

// blockThreshold is the opponent run through a cell that must be blocked.
const blockThreshold = 3

type Point struct {
	Row int
	Col int
}

// ScanOrder - the candidate order used by the selector: rows starting at the
// center row and wrapping modulo size, with the columns of every row walked
// the same way. The first cell is always the center.
func ScanOrder(size int) []Point {
	order := make([]Point, 0, size*size)
	start := size / 2

	for i := 0; i < size; i++ {
		row := (start + i) % size
		for j := 0; j < size; j++ {
			order = append(order, Point{Row: row, Col: (start + j) % size})
		}
	}

	return order
}

// Score - how good (row, col) is for player. Per axis the player's own run
// counts, unless the opponent already has blockThreshold stones through the
// cell, in which case blocking scores one more than the threat. The best axis wins.
func Score(board *entity.Board, row, col int, player entity.Player) int {
	opponent := player.Opponent()
	best := 0

	for _, axis := range entity.Axes {
		score := AxisRun(board, row, col, axis, player)

		if threat := AxisRun(board, row, col, axis, opponent); threat >= blockThreshold {
			score = threat + 1
		}

		best = max(best, score)
	}

	return best
}

// Selector picks a move by scoring every empty cell once. It keeps no state
// between calls.
type Selector struct{}

func NewSelector() *Selector {
	return &Selector{}
}

// SelectMove - returns the best scoring empty cell for player. Ties go to the
// cell met first in ScanOrder. Once a positive score is found, cells with no
// adjacent stone are skipped.
func (that *Selector) SelectMove(board *entity.Board, player entity.Player) (entity.Move, error) {
	if !player.IsValid() {
		return entity.Move{}, apperror.ErrInvalidPlayer
	}

	if board.IsFull() {
		return entity.Move{}, apperror.ErrNoLegalMove
	}

	// nothing to score against on an empty board, the opening rule decides
	if board.EmptyCount() == board.Size()*board.Size() {
		return that.fallback(board, player)
	}

	bestScore := -1
	var best Point

	for _, candidate := range ScanOrder(board.Size()) {
		if !board.IsEmpty(candidate.Row, candidate.Col) {
			continue
		}

		if bestScore > 0 && !board.HasNeighbor(candidate.Row, candidate.Col) {
			continue
		}

		if score := Score(board, candidate.Row, candidate.Col, player); score > bestScore {
			bestScore = score
			best = candidate
		}
	}

	if bestScore < 0 {
		return that.fallback(board, player)
	}

	return entity.NewMove(best.Row, best.Col, player), nil
}

// fallback - the center if free, otherwise the first empty cell found on
// square rings growing around the center.
func (that *Selector) fallback(board *entity.Board, player entity.Player) (entity.Move, error) {
	centerRow, centerCol := board.Center()
	if board.IsEmpty(centerRow, centerCol) {
		return entity.NewMove(centerRow, centerCol, player), nil
	}

	for d := 1; d < board.Size(); d++ {
		for i := -d; i <= d; i++ {
			for j := -d; j <= d; j++ {
				if board.IsEmpty(centerRow+i, centerCol+j) {
					return entity.NewMove(centerRow+i, centerCol+j, player), nil
				}
			}
		}
	}

	return entity.Move{}, fmt.Errorf("fallback: %w", apperror.ErrNoLegalMove)
}
