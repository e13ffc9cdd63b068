// Package eval scores a board from one player's perspective, either
// exactly (disk-count differential) or heuristically (weighted
// positional estimate).
package eval

import (
	"github.com/rs/zerolog/log"

	"github.com/seymourg/flipside/othello"
)

// Positional weights for the heuristic stability term.
const (
	cornerWeight   = 5
	edgeWeight     = 2
	interiorWeight = 1
)

// Heuristic component weights.
const (
	parityFactor    = 0.3
	stabilityFactor = 0.7
)

// A Func scores a board from the given player's perspective.
type Func func(othello.Board, othello.Player) float32

// Utility returns the exact disk-count differential from player's
// perspective. An invalid player is logged and scored as a neutral 0
// rather than aborting the search.
func Utility(b othello.Board, player othello.Player) float32 {
	dark, light := b.Score()
	switch player {
	case othello.Dark:
		return float32(dark - light)
	case othello.Light:
		return float32(light - dark)
	}
	log.Error().Uint8("player", uint8(player)).Msg("invalid player")
	return 0
}

// Heuristic estimates the value of a non-terminal board from player's
// perspective. It combines disk parity with a positional stability
// estimate: corners weigh 5, non-corner edges 2, interior squares 1.
func Heuristic(b othello.Board, player othello.Player) float32 {
	if !player.Valid() {
		log.Error().Uint8("player", uint8(player)).Msg("invalid player")
		return 0
	}
	dark, light := b.Score()
	parity := float32(dark - light)

	var stability float32
	n := b.Dim()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			var weight float32
			switch {
			case (row == 0 || row == n-1) && (col == 0 || col == n-1):
				weight = cornerWeight
			case row == 0 || row == n-1 || col == 0 || col == n-1:
				weight = edgeWeight
			default:
				weight = interiorWeight
			}
			switch b.At(row, col) {
			case othello.Dark:
				stability += weight
			case othello.Light:
				stability -= weight
			}
		}
	}

	value := parityFactor*parity + stabilityFactor*stability
	if player == othello.Light {
		value = -value
	}
	return value
}
