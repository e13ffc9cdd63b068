package othello

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadBoard is returned when a textual board does not strictly match
// the nested-row form the game manager emits.
var ErrBadBoard = errors.New("malformed board text")

// Parse deserializes a board from its nested-row textual form, e.g.
// [[0, 2, 1], [1, 0, 0], [0, 0, 2]]. Rows are top to bottom; cell
// tokens are 0 (empty), 1 (dark) and 2 (light). Both bracket and
// parenthesis delimiters are accepted, since managers serialize the
// grid either as nested lists or nested tuples. Anything that is not
// a well-formed n×n grid over the cell domain is rejected.
func Parse(text string) (Board, error) {
	s := strings.TrimSpace(text)
	if len(s) < 2 || !isOpen(s[0]) || !isClose(s[len(s)-1]) {
		return Board{}, fmt.Errorf("%w: not a nested sequence", ErrBadBoard)
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])

	var rows [][]Cell
	for len(inner) > 0 {
		if inner[0] == ',' {
			inner = strings.TrimSpace(inner[1:])
			continue
		}
		if !isOpen(inner[0]) {
			return Board{}, fmt.Errorf("%w: expected row at %q", ErrBadBoard, inner)
		}
		end := strings.IndexFunc(inner, func(r rune) bool { return isClose(byte(r)) })
		if end < 0 {
			return Board{}, fmt.Errorf("%w: unterminated row", ErrBadBoard)
		}
		row, err := parseRow(inner[1:end])
		if err != nil {
			return Board{}, err
		}
		rows = append(rows, row)
		inner = strings.TrimSpace(inner[end+1:])
	}

	dim := len(rows)
	if dim == 0 {
		return Board{}, fmt.Errorf("%w: empty grid", ErrBadBoard)
	}
	cells := make([]byte, 0, dim*dim)
	for _, row := range rows {
		if len(row) != dim {
			return Board{}, fmt.Errorf("%w: grid is not square (%d rows, row of %d cells)",
				ErrBadBoard, dim, len(row))
		}
		for _, c := range row {
			cells = append(cells, byte(c))
		}
	}
	return Board{dim: dim, cells: string(cells)}, nil
}

func parseRow(s string) ([]Cell, error) {
	var row []Cell
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		switch tok {
		case "0":
			row = append(row, Empty)
		case "1":
			row = append(row, Dark)
		case "2":
			row = append(row, Light)
		default:
			return nil, fmt.Errorf("%w: bad cell token %q", ErrBadBoard, tok)
		}
	}
	if len(row) == 0 {
		return nil, fmt.Errorf("%w: empty row", ErrBadBoard)
	}
	return row, nil
}

func isOpen(b byte) bool  { return b == '[' || b == '(' }
func isClose(b byte) bool { return b == ']' || b == ')' }
