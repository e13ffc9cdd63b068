package search

import (
	"testing"

	"github.com/matryer/is"

	"github.com/seymourg/flipside/othello"
)

func TestStateCacheStoreAndLookup(t *testing.T) {
	is := is.New(t)
	c := NewStateCache()
	b := othello.New(8)
	m := othello.Move{Row: 2, Col: 3}

	_, ok := c.Lookup(plainKey(b, othello.Dark))
	is.True(!ok)

	c.Store(plainKey(b, othello.Dark), SearchResult{Move: &m, Value: 3})
	res, ok := c.Lookup(plainKey(b, othello.Dark))
	is.True(ok)
	is.Equal(*res.Move, m)
	is.Equal(res.Value, float32(3))

	is.Equal(c.Len(), 1)
	is.Equal(c.Lookups(), uint64(2))
	is.Equal(c.Hits(), uint64(1))
}

func TestStateCacheKeysAreStructural(t *testing.T) {
	is := is.New(t)
	c := NewStateCache()
	b := othello.New(8)
	c.Store(plainKey(b, othello.Dark), SearchResult{Value: 1})

	// Same layout built independently is the same key.
	_, ok := c.Lookup(plainKey(othello.New(8), othello.Dark))
	is.True(ok)

	// The player is part of the key.
	_, ok = c.Lookup(plainKey(b, othello.Light))
	is.True(!ok)

	// A different layout is a different key.
	child := b.ApplyMove(othello.Dark, othello.Move{Row: 2, Col: 3})
	_, ok = c.Lookup(plainKey(child, othello.Dark))
	is.True(!ok)
}

// The alpha-beta cache memoizes by exact (state, window): revisiting
// the same board under any other window must miss. This is the known
// weak memoization scheme, kept deliberately — a cached value is only
// valid for the exact window it was computed under, so generalizing
// hits across windows would return values computed under different
// cutoffs.
func TestWindowIsPartOfTheKey(t *testing.T) {
	is := is.New(t)
	c := NewStateCache()
	b := othello.New(8)

	c.Store(windowKey(b, othello.Dark, -Infinity, Infinity), SearchResult{Value: 2})

	_, ok := c.Lookup(windowKey(b, othello.Dark, -Infinity, Infinity))
	is.True(ok)

	_, ok = c.Lookup(windowKey(b, othello.Dark, -Infinity, 5))
	is.True(!ok)
	_, ok = c.Lookup(windowKey(b, othello.Dark, 0, Infinity))
	is.True(!ok)

	// Windowed and plain keys never alias.
	_, ok = c.Lookup(plainKey(b, othello.Dark))
	is.True(!ok)
}
