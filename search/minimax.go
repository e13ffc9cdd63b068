// Package search implements the move selector: depth-limited minimax
// over the game tree, optionally augmented with alpha-beta pruning,
// positional state caching, and one-ply move ordering.
package search

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/seymourg/flipside/eval"
	"github.com/seymourg/flipside/othello"
)

// Infinity is 10 million; no board evaluation can reach it.
const Infinity = float32(10000000)

// UnlimitedDepth is the sentinel depth meaning "search to a true
// terminal state, never cut on depth".
const UnlimitedDepth = -1

// A SearchResult pairs the best move found at a node with its value.
// The value is always expressed from the perspective of the player to
// move at that node. Move is nil only at a position with no legal
// moves or at the depth limit.
type SearchResult struct {
	Move  *othello.Move
	Value float32
}

// Solver runs minimax and alpha-beta searches from a root position.
// One Solver is one search session: its state cache is shared across
// every search it runs and is never invalidated in between, so reuse
// a Solver only for searches with the same depth configuration.
type Solver struct {
	evaluate   eval.Func
	cache      *StateCache
	cachingOn  bool
	orderingOn bool
	nodes      int
}

// Init initializes the solver with the given leaf evaluator. A nil
// evaluator defaults to the exact disk-count utility.
func (s *Solver) Init(evaluate eval.Func) {
	if evaluate == nil {
		evaluate = eval.Utility
	}
	s.evaluate = evaluate
	s.cache = NewStateCache()
	s.nodes = 0
}

// SetStateCaching turns the positional memo table on or off.
func (s *Solver) SetStateCaching(on bool) {
	s.cachingOn = on
}

// SetMoveOrdering turns one-ply static move ordering on or off. It
// only affects alpha-beta searches.
func (s *Solver) SetMoveOrdering(on bool) {
	s.orderingOn = on
}

// NodesVisited returns the number of nodes expanded by the last
// search.
func (s *Solver) NodesVisited() int {
	return s.nodes
}

// Cache returns the solver's state cache, for diagnostics.
func (s *Solver) Cache() *StateCache {
	return s.cache
}

func better(maximizing bool, value, best float32) bool {
	if maximizing {
		return value > best
	}
	return value < best
}

// SelectMoveMinimax runs a plain minimax search to the given depth and
// returns the best move for player together with its value. The move
// is nil if player has no legal moves. Pass UnlimitedDepth to search
// to terminal states only.
func (s *Solver) SelectMoveMinimax(b othello.Board, player othello.Player, depth int) (*othello.Move, float32) {
	tstart := time.Now()
	s.nodes = 0
	res := s.minimax(b, player, depth, true)
	log.Debug().
		Int("depth", depth).
		Bool("caching", s.cachingOn).
		Int("nodes", s.nodes).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("minimax-returning")
	return res.Move, res.Value
}

// minimax is the classic two-procedure recursion folded into a single
// function parameterized by a maximizing tag; the tag flips every ply.
func (s *Solver) minimax(b othello.Board, player othello.Player, depth int, maximizing bool) SearchResult {
	if s.cachingOn {
		if res, ok := s.cache.Lookup(plainKey(b, player)); ok {
			return res
		}
	}
	s.nodes++

	moves := b.LegalMoves(player)
	if len(moves) == 0 || depth == 0 {
		return SearchResult{Value: s.evaluate(b, player)}
	}

	best := SearchResult{}
	for i := range moves {
		child := b.ApplyMove(player, moves[i])
		sub := s.minimax(child, player.Opponent(), depth-1, !maximizing)
		// Strict comparison: the earliest-generated move among ties
		// is retained.
		if best.Move == nil || better(maximizing, sub.Value, best.Value) {
			best = SearchResult{Move: &moves[i], Value: sub.Value}
		}
	}

	if s.cachingOn {
		s.cache.Store(plainKey(b, player), best)
	}
	return best
}
