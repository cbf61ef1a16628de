package gomoku

import "github.com/rocketscienceinc/gomoku-agent/internal/entity"

// WinLength is the run length that ends the game.
const WinLength = 5

// ExtensionCount - counts the player's stones in a row starting one step away
// from (row, col) along dir. The scan stops at the board edge or at the first
// cell not owned by the player.
func ExtensionCount(board *entity.Board, row, col int, dir entity.Direction, player entity.Player) int {
	want := player.Cell()
	if want == entity.CellEmpty {
		return 0
	}

	count := 0
	for r, c := row+dir.DRow, col+dir.DCol; board.InBounds(r, c); r, c = r+dir.DRow, c+dir.DCol {
		if board.Occupant(r, c) != want {
			break
		}
		count++
	}

	return count
}

// AxisRun - the player's stones adjacent to (row, col) along both directions
// of an axis, not counting (row, col) itself.
func AxisRun(board *entity.Board, row, col int, axis entity.Direction, player entity.Player) int {
	return ExtensionCount(board, row, col, axis, player) +
		ExtensionCount(board, row, col, axis.Reverse(), player)
}

// IsWinningMove - reports whether a stone of player at (row, col) completes a
// run of WinLength or more. The cell itself is never inspected, so this holds
// both before and after the stone is placed.
func IsWinningMove(board *entity.Board, row, col int, player entity.Player) bool {
	if !board.InBounds(row, col) || !player.IsValid() {
		return false
	}

	for _, axis := range entity.Axes {
		if AxisRun(board, row, col, axis, player)+1 >= WinLength {
			return true
		}
	}

	return false
}
