package othello

import (
	"testing"

	"github.com/matryer/is"
)

func TestNewStartingPosition(t *testing.T) {
	is := is.New(t)
	b := New(8)
	is.Equal(b.Dim(), 8)
	is.Equal(b.At(3, 3), Light)
	is.Equal(b.At(4, 4), Light)
	is.Equal(b.At(3, 4), Dark)
	is.Equal(b.At(4, 3), Dark)
	dark, light := b.Score()
	is.Equal(dark, 2)
	is.Equal(light, 2)
}

func TestLegalMovesStartingPosition(t *testing.T) {
	is := is.New(t)
	b := New(8)
	// Row-major generator order.
	is.Equal(b.LegalMoves(Dark), []Move{{2, 3}, {3, 2}, {4, 5}, {5, 4}})
	is.Equal(b.LegalMoves(Light), []Move{{2, 4}, {3, 5}, {4, 2}, {5, 3}})
}

func TestFindLines(t *testing.T) {
	is := is.New(t)
	b := New(8)
	lines := b.FindLines(Dark, Move{2, 3})
	is.Equal(lines, [][]Move{{{3, 3}}})
	is.Equal(len(b.FindLines(Dark, Move{0, 0})), 0) // no captures from a corner here
}

func TestApplyMoveFlipsAndDoesNotMutate(t *testing.T) {
	is := is.New(t)
	b := New(8)
	child := b.ApplyMove(Dark, Move{2, 3})

	is.Equal(child.At(2, 3), Dark)
	is.Equal(child.At(3, 3), Dark) // captured
	dark, light := child.Score()
	is.Equal(dark, 4)
	is.Equal(light, 1)

	// The parent board is a fresh value, never aliased.
	is.Equal(b, New(8))
	is.True(b != child)
}

func TestStructuralEquality(t *testing.T) {
	is := is.New(t)
	is.Equal(New(8), New(8))
	a := New(8).ApplyMove(Dark, Move{2, 3})
	b := New(8).ApplyMove(Dark, Move{2, 3})
	is.Equal(a, b)
	is.Equal(a.Fingerprint(), b.Fingerprint())
}

func TestOpponent(t *testing.T) {
	is := is.New(t)
	is.Equal(Dark.Opponent(), Light)
	is.Equal(Light.Opponent(), Dark)
	is.True(Dark.Valid())
	is.True(Light.Valid())
	is.True(!Empty.Valid())
}

func TestString(t *testing.T) {
	is := is.New(t)
	is.Equal(New(4).String(), "....\n.ox.\n.xo.\n....\n")
}
