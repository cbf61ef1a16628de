package entity

import "fmt"

type Move struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Player Player `json:"player"`
}

func NewMove(row, col int, player Player) Move {
	return Move{Row: row, Col: col, Player: player}
}

// String - renders the move the way it travels over the wire: "<row> <col>".
func (that Move) String() string {
	return fmt.Sprintf("%d %d", that.Row, that.Col)
}

// Direction is a step vector on the board.
type Direction struct {
	DRow int
	DCol int
}

func (that Direction) Reverse() Direction {
	return Direction{DRow: -that.DRow, DCol: -that.DCol}
}

// Axes holds the four lines through a cell. Each axis is scanned in both
// directions, so only one of a direction and its reverse is listed.
var Axes = [4]Direction{
	{DRow: 0, DCol: 1},  // horizontal
	{DRow: 1, DCol: 0},  // vertical
	{DRow: 1, DCol: 1},  // diagonal
	{DRow: 1, DCol: -1}, // anti-diagonal
}
