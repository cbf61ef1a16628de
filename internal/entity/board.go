package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku-agent/internal/apperror"
)

const (
	DefaultBoardSize = 15
	MinBoardSize     = 5
)

var ErrInvalidBoardSize = errors.New("invalid board size")

// Board is a fixed-size square grid. Stones are never removed once placed.
type Board struct {
	size  int
	cells []Cell
}

func NewBoard(size int) (*Board, error) {
	if size < MinBoardSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoardSize, size)
	}

	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < that.size && col < that.size
}

// Occupant - returns the cell state, CellEmpty for coordinates off the board.
func (that *Board) Occupant(row, col int) Cell {
	if !that.InBounds(row, col) {
		return CellEmpty
	}
	return that.cells[that.index(row, col)]
}

func (that *Board) IsEmpty(row, col int) bool {
	return that.InBounds(row, col) && that.cells[that.index(row, col)] == CellEmpty
}

// Apply - places a stone. The board is left untouched on error.
func (that *Board) Apply(row, col int, player Player) error {
	if !player.IsValid() {
		return apperror.ErrInvalidPlayer
	}

	if !that.InBounds(row, col) {
		return fmt.Errorf("%w: %d %d", apperror.ErrOutOfRange, row, col)
	}

	idx := that.index(row, col)
	if that.cells[idx] != CellEmpty {
		return fmt.Errorf("%w: %d %d", apperror.ErrCellOccupied, row, col)
	}

	that.cells[idx] = player.Cell()

	return nil
}

func (that *Board) Center() (int, int) {
	return that.size / 2, that.size / 2
}

// HasNeighbor - reports whether any of the 8 cells around (row, col) holds a stone.
func (that *Board) HasNeighbor(row, col int) bool {
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}
			if that.Occupant(row+dRow, col+dCol) != CellEmpty {
				return true
			}
		}
	}

	return false
}

func (that *Board) EmptyCount() int {
	count := 0
	for _, cell := range that.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

func (that *Board) IsFull() bool {
	return that.EmptyCount() == 0
}

func (that *Board) String() string {
	buf := make([]byte, 0, that.size*(that.size+1))
	for row := 0; row < that.size; row++ {
		for col := 0; col < that.size; col++ {
			buf = append(buf, that.cells[that.index(row, col)].String()...)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func (that *Board) index(row, col int) int {
	return row*that.size + col
}
