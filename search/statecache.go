package search

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/seymourg/flipside/othello"
)

// cacheKey identifies a cached search result structurally: the exact
// board layout, the player to move, and — for alpha-beta searches —
// the exact (α, β) window the node was entered with. Keying on the
// window means this is a memo table, not a sound general transposition
// scheme: the same board revisited under a different window is a miss,
// and a hit is only ever replayed for the identical window it was
// computed under.
type cacheKey struct {
	board    othello.Board
	player   othello.Player
	windowed bool
	alpha    float32
	beta     float32
}

func plainKey(b othello.Board, player othello.Player) cacheKey {
	return cacheKey{board: b, player: player}
}

func windowKey(b othello.Board, player othello.Player, α, β float32) cacheKey {
	return cacheKey{board: b, player: player, windowed: true, alpha: α, beta: β}
}

func (k cacheKey) hash() uint64 {
	d := xxhash.New()
	d.WriteString(k.board.Fingerprint())
	var buf [10]byte
	buf[0] = byte(k.player)
	if k.windowed {
		buf[1] = 1
		binary.LittleEndian.PutUint32(buf[2:6], math.Float32bits(k.alpha))
		binary.LittleEndian.PutUint32(buf[6:10], math.Float32bits(k.beta))
	}
	d.Write(buf[:])
	return d.Sum64()
}

type cacheEntry struct {
	key    cacheKey
	result SearchResult
}

// StateCache memoizes previously computed (move, value) pairs per
// search key. Buckets hold a single entry keyed by the xxhash of the
// structural key; the full key is stored alongside so a bucket hit is
// only returned on an exact structural match. A "type 2" collision —
// two different keys hashing to the same bucket — evicts on store and
// misses on lookup, which costs recomputation but never correctness.
// The cache grows monotonically; nothing evicts or bounds it beyond
// bucket overwrites.
type StateCache struct {
	entries map[uint64]cacheEntry

	lookups      uint64
	hits         uint64
	t2collisions uint64
}

// NewStateCache creates an empty cache.
func NewStateCache() *StateCache {
	return &StateCache{entries: make(map[uint64]cacheEntry)}
}

// Lookup returns the stored result for k, if present.
func (c *StateCache) Lookup(k cacheKey) (SearchResult, bool) {
	c.lookups++
	e, ok := c.entries[k.hash()]
	if !ok {
		return SearchResult{}, false
	}
	if e.key != k {
		// Another position lives in this bucket.
		c.t2collisions++
		return SearchResult{}, false
	}
	c.hits++
	return e.result, true
}

// Store records the result for k, overwriting whatever occupied its
// bucket.
func (c *StateCache) Store(k cacheKey, res SearchResult) {
	c.entries[k.hash()] = cacheEntry{key: k, result: res}
}

// Len returns the number of occupied buckets.
func (c *StateCache) Len() int {
	return len(c.entries)
}

// Lookups returns the total number of lookups.
func (c *StateCache) Lookups() uint64 { return c.lookups }

// Hits returns the number of lookups answered from the cache.
func (c *StateCache) Hits() uint64 { return c.hits }

// T2Collisions returns the number of bucket collisions observed.
func (c *StateCache) T2Collisions() uint64 { return c.t2collisions }
