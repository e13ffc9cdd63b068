// Package othello implements the board mechanics for an Othello-style
// disk-flipping game: legal-move enumeration, move application with
// line capture, and score counting. Boards are immutable values;
// applying a move always produces a fresh board.
package othello

import "fmt"

// Cell is the contents of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	Dark
	Light
)

// Player identifies a side to move. The only valid players are Dark
// and Light; everything else must be treated as an error by callers.
type Player = Cell

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Dark:
		return "dark"
	case Light:
		return "light"
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

// Opponent returns the other player. Only meaningful for Dark and Light.
func (c Cell) Opponent() Player {
	return Dark + Light - c
}

// Valid reports whether c is an actual player.
func (c Cell) Valid() bool {
	return c == Dark || c == Light
}

// A Move is a 0-indexed (row, column) coordinate into the board.
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}
