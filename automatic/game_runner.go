// Package automatic contains the logic for playing engines against
// each other automatically: full games to completion, and randomized
// midgame positions for property testing and benchmarking.
package automatic

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/seymourg/flipside/othello"
	"github.com/seymourg/flipside/search"
)

// Algorithm selects the search strategy for one side.
type Algorithm int

const (
	AlphaBeta Algorithm = iota
	Minimax
)

func (a Algorithm) String() string {
	if a == Minimax {
		return "minimax"
	}
	return "alphabeta"
}

// PlayerConfig configures one side of an automatic game.
type PlayerConfig struct {
	Algorithm Algorithm
	Depth     int
	Caching   bool
	Ordering  bool
}

// GameRunner is the master struct for the automatic game logic. It
// holds one solver per side; each solver keeps its own state cache
// for the whole game.
type GameRunner struct {
	board   othello.Board
	onTurn  othello.Player
	passes  int
	turnNum int

	configs [2]PlayerConfig // indexed by player-1
	solvers [2]*search.Solver
}

// NewGameRunner sets up a game on a dim×dim board between the two
// configured sides. Dark moves first.
func NewGameRunner(dim int, dark, light PlayerConfig) *GameRunner {
	r := &GameRunner{
		board:   othello.New(dim),
		onTurn:  othello.Dark,
		configs: [2]PlayerConfig{dark, light},
	}
	for i, cfg := range r.configs {
		s := &search.Solver{}
		s.Init(nil)
		s.SetStateCaching(cfg.Caching)
		s.SetMoveOrdering(cfg.Ordering)
		r.solvers[i] = s
	}
	return r
}

// Board returns the current position.
func (r *GameRunner) Board() othello.Board {
	return r.board
}

// PlayerOnTurn returns the side to move.
func (r *GameRunner) PlayerOnTurn() othello.Player {
	return r.onTurn
}

// Playing reports whether the game is still going. The game is over
// once both players pass in succession.
func (r *GameRunner) Playing() bool {
	return r.passes < 2
}

// PlayTurn plays a single turn for the side to move: a searched move,
// or a pass if it has no legal moves.
func (r *GameRunner) PlayTurn() error {
	if !r.Playing() {
		return fmt.Errorf("game is over after turn %d", r.turnNum)
	}
	r.turnNum++
	player := r.onTurn
	r.onTurn = player.Opponent()

	if len(r.board.LegalMoves(player)) == 0 {
		r.passes++
		log.Debug().Int("turn", r.turnNum).Str("player", player.String()).Msg("pass")
		return nil
	}
	r.passes = 0

	cfg := r.configs[player-1]
	solver := r.solvers[player-1]
	var move *othello.Move
	var value float32
	if cfg.Algorithm == Minimax {
		move, value = solver.SelectMoveMinimax(r.board, player, cfg.Depth)
	} else {
		move, value = solver.SelectMoveAlphaBeta(r.board, player, cfg.Depth)
	}
	if move == nil {
		return fmt.Errorf("turn %d: %s solver returned no move", r.turnNum, cfg.Algorithm)
	}
	r.board = r.board.ApplyMove(player, *move)
	log.Debug().
		Int("turn", r.turnNum).
		Str("player", player.String()).
		Str("move", move.String()).
		Float32("value", value).
		Msg("played")
	return nil
}

// PlayToEnd plays the game out and returns the final score.
func (r *GameRunner) PlayToEnd() (dark, light int, err error) {
	for r.Playing() {
		if err := r.PlayTurn(); err != nil {
			d, l := r.board.Score()
			return d, l, err
		}
	}
	dark, light = r.board.Score()
	log.Info().Int("dark", dark).Int("light", light).Int("turns", r.turnNum).Msg("game-complete")
	return dark, light, nil
}

// RandomPosition plays up to plies uniformly random legal moves from
// the starting position and returns the resulting board along with
// the player to move. It stops early if the game ends.
func RandomPosition(dim, plies int) (othello.Board, othello.Player) {
	board := othello.New(dim)
	player := othello.Dark
	passes := 0
	for i := 0; i < plies && passes < 2; i++ {
		moves := board.LegalMoves(player)
		if len(moves) == 0 {
			passes++
			player = player.Opponent()
			continue
		}
		passes = 0
		board = board.ApplyMove(player, moves[frand.Intn(len(moves))])
		player = player.Opponent()
	}
	return board, player
}
