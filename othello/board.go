package othello

import (
	"strings"
)

// directions for line scanning, clockwise from north.
var directions = [8][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// Board is an immutable n×n grid of cells. The zero value is not a
// usable board; construct one with New or Parse. Boards compare
// structurally with ==, so they can be used directly as map keys.
type Board struct {
	dim   int
	cells string // dim*dim raw Cell bytes, row-major
}

// New creates a board of the given dimension with the standard
// four-disk starting position in the center. Dark moves first.
func New(dim int) Board {
	cells := make([]byte, dim*dim)
	mid := dim / 2
	cells[(mid-1)*dim+(mid-1)] = byte(Light)
	cells[mid*dim+mid] = byte(Light)
	cells[(mid-1)*dim+mid] = byte(Dark)
	cells[mid*dim+(mid-1)] = byte(Dark)
	return Board{dim: dim, cells: string(cells)}
}

// Dim returns the board dimension n.
func (b Board) Dim() int {
	return b.dim
}

// At returns the cell at the given coordinate.
func (b Board) At(row, col int) Cell {
	return Cell(b.cells[row*b.dim+col])
}

func (b Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.dim && col >= 0 && col < b.dim
}

// Fingerprint returns the raw cell bytes of the board, row-major. Two
// boards have equal fingerprints iff they have identical cell layouts
// and dimension (the dimension is implied by the length).
func (b Board) Fingerprint() string {
	return b.cells
}

// line walks from the square adjacent to m in direction d and returns
// the run of opponent disks captured by player p placing at m, or nil
// if the run is not terminated by one of p's own disks.
func (b Board) line(p Player, m Move, d [2]int) []Move {
	var captured []Move
	row, col := m.Row+d[0], m.Col+d[1]
	for b.inBounds(row, col) {
		switch b.At(row, col) {
		case p.Opponent():
			captured = append(captured, Move{Row: row, Col: col})
		case p:
			return captured
		default:
			return nil
		}
		row += d[0]
		col += d[1]
	}
	return nil
}

// FindLines returns, per direction, the non-empty runs of opponent
// disks that placing p's disk at m would capture. An empty result
// means m is not a capturing placement.
func (b Board) FindLines(p Player, m Move) [][]Move {
	var lines [][]Move
	for _, d := range directions {
		if captured := b.line(p, m, d); len(captured) > 0 {
			lines = append(lines, captured)
		}
	}
	return lines
}

// LegalMoves returns every legal move for p in row-major order. An
// empty result means p has to pass; if neither player can move the
// position is terminal.
func (b Board) LegalMoves(p Player) []Move {
	var moves []Move
	for row := 0; row < b.dim; row++ {
		for col := 0; col < b.dim; col++ {
			m := Move{Row: row, Col: col}
			if b.At(row, col) != Empty {
				continue
			}
			for _, d := range directions {
				if len(b.line(p, m, d)) > 0 {
					moves = append(moves, m)
					break
				}
			}
		}
	}
	return moves
}

// ApplyMove places p's disk at m, flips every captured line, and
// returns the resulting board. The receiver is never mutated. The move
// must be legal for p.
func (b Board) ApplyMove(p Player, m Move) Board {
	cells := []byte(b.cells)
	cells[m.Row*b.dim+m.Col] = byte(p)
	for _, captured := range b.FindLines(p, m) {
		for _, c := range captured {
			cells[c.Row*b.dim+c.Col] = byte(p)
		}
	}
	return Board{dim: b.dim, cells: string(cells)}
}

// Score returns the disk counts for Dark and Light.
func (b Board) Score() (dark, light int) {
	for i := 0; i < len(b.cells); i++ {
		switch Cell(b.cells[i]) {
		case Dark:
			dark++
		case Light:
			light++
		}
	}
	return dark, light
}

// String renders the board as a grid, one row per line, with '.' for
// empty squares, 'x' for dark disks and 'o' for light disks.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.dim; row++ {
		for col := 0; col < b.dim; col++ {
			switch b.At(row, col) {
			case Dark:
				sb.WriteByte('x')
			case Light:
				sb.WriteByte('o')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
