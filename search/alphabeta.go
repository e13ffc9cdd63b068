package search

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/seymourg/flipside/eval"
	"github.com/seymourg/flipside/othello"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if α ≥ β then
                break (* α cut-off *)
        return value
(* Initial call *)
alphabeta(origin, depth, −∞, +∞, TRUE)
**/

// SelectMoveAlphaBeta runs an alpha-beta search to the given depth and
// returns the best move for player together with its value. The root
// is a maximizing node with window (−Infinity, Infinity). Pruning and
// ordering never change the returned value relative to plain minimax,
// only the number of nodes visited.
func (s *Solver) SelectMoveAlphaBeta(b othello.Board, player othello.Player, depth int) (*othello.Move, float32) {
	tstart := time.Now()
	s.nodes = 0
	res := s.alphabeta(b, player, -Infinity, Infinity, depth, true)
	log.Debug().
		Int("depth", depth).
		Bool("caching", s.cachingOn).
		Bool("ordering", s.orderingOn).
		Int("nodes", s.nodes).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("alphabeta-returning")
	return res.Move, res.Value
}

func (s *Solver) alphabeta(b othello.Board, player othello.Player, α, β float32, depth int, maximizing bool) SearchResult {
	// The window is part of the cache key as entered; see StateCache
	// for why this memoizes by exact (state, window) only.
	key := windowKey(b, player, α, β)
	if s.cachingOn {
		if res, ok := s.cache.Lookup(key); ok {
			return res
		}
	}
	s.nodes++

	moves := b.LegalMoves(player)
	if len(moves) == 0 || depth == 0 {
		return SearchResult{Value: s.evaluate(b, player)}
	}
	if s.orderingOn {
		orderMoves(b, player, moves, maximizing)
	}

	best := SearchResult{}
	for i := range moves {
		child := b.ApplyMove(player, moves[i])
		sub := s.alphabeta(child, player.Opponent(), α, β, depth-1, !maximizing)
		if best.Move == nil || better(maximizing, sub.Value, best.Value) {
			best = SearchResult{Move: &moves[i], Value: sub.Value}
		}
		if maximizing {
			if α < best.Value {
				α = best.Value
				if α >= β {
					break // β cut-off
				}
			}
		} else {
			if β > best.Value {
				β = best.Value
				if β <= α {
					break // α cut-off
				}
			}
		}
	}

	if s.cachingOn {
		s.cache.Store(key, best)
	}
	return best
}

type playSorter struct {
	estimates []float32
	moves     []othello.Move
}

func (ps playSorter) Len() int { return len(ps.moves) }
func (ps playSorter) Swap(i, j int) {
	ps.estimates[i], ps.estimates[j] = ps.estimates[j], ps.estimates[i]
	ps.moves[i], ps.moves[j] = ps.moves[j], ps.moves[i]
}
func (ps playSorter) Less(i, j int) bool {
	return ps.estimates[i] < ps.estimates[j]
}

// orderMoves sorts the candidate moves in place by a one-ply static
// evaluation from the current mover's perspective: ascending at a
// minimizing node, descending at a maximizing node, so the move most
// favorable to the opponent's pruning comes first. The sort is stable
// to keep tie-breaks deterministic.
func orderMoves(b othello.Board, player othello.Player, moves []othello.Move, maximizing bool) {
	estimates := lo.Map(moves, func(m othello.Move, _ int) float32 {
		est := eval.Utility(b.ApplyMove(player, m), player)
		if maximizing {
			est = -est
		}
		return est
	})
	sort.Stable(playSorter{estimates: estimates, moves: moves})
}
