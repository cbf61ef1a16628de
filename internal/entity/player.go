package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku-agent/internal/apperror"
)

// Player is one of the two sides of a game. O always moves first.
type Player uint8

const (
	PlayerO Player = iota + 1
	PlayerX
)

const (
	markO   = "O"
	markX   = "X"
	markTie = "-"
)

func (that Player) IsValid() bool {
	return that == PlayerO || that == PlayerX
}

// Opponent - returns the other side. The zero value maps to itself.
func (that Player) Opponent() Player {
	switch that {
	case PlayerO:
		return PlayerX
	case PlayerX:
		return PlayerO
	default:
		return that
	}
}

func (that Player) Cell() Cell {
	switch that {
	case PlayerO:
		return CellO
	case PlayerX:
		return CellX
	default:
		return CellEmpty
	}
}

func (that Player) String() string {
	switch that {
	case PlayerO:
		return markO
	case PlayerX:
		return markX
	default:
		return ""
	}
}

func (that Player) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case markO:
		*that = PlayerO
	case markX:
		*that = PlayerX
	case "":
		*that = 0
	default:
		return fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, text)
	}

	return nil
}

// Cell is the state of a single board square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellO
	CellX
)

// Player - returns the owner of the cell, false for an empty cell.
func (that Cell) Player() (Player, bool) {
	switch that {
	case CellO:
		return PlayerO, true
	case CellX:
		return PlayerX, true
	default:
		return 0, false
	}
}

func (that Cell) String() string {
	if player, ok := that.Player(); ok {
		return player.String()
	}
	return "."
}
