package bot

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seymourg/flipside/othello"
)

const start4x4 = "[[0, 0, 0, 0], [0, 2, 1, 0], [0, 1, 2, 0], [0, 0, 0, 0]]"

func runSession(t *testing.T, input string) (string, error) {
	t.Helper()
	var out strings.Builder
	b := New("flipside", strings.NewReader(input), &out)
	err := b.Run()
	return out.String(), err
}

func TestFullSession(t *testing.T) {
	input := strings.Join([]string{
		"1,1,1,0,0", // dark, depth 1, minimax, no caching, no ordering
		"SCORE 2 2",
		start4x4,
		"FINAL 9 7",
	}, "\n") + "\n"

	out, err := runSession(t, input)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "flipside", lines[0])
	// At depth 1 every opening move ties, so the first-generated legal
	// move is selected.
	assert.Equal(t, "0 1", lines[1])
}

func TestAlphaBetaSessionReturnsLegalMove(t *testing.T) {
	input := strings.Join([]string{
		"2,3,0,1,1", // light, depth 3, alpha-beta, caching, ordering
		"SCORE 2 2",
		start4x4,
		"FINAL 9 7",
	}, "\n") + "\n"

	out, err := runSession(t, input)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	board, err := othello.Parse(start4x4)
	require.NoError(t, err)
	var row, col int
	_, err = fmt.Sscanf(lines[1], "%d %d", &row, &col)
	require.NoError(t, err)
	assert.Contains(t, board.LegalMoves(othello.Light), othello.Move{Row: row, Col: col},
		"move %q not legal for light", lines[1])
}

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig("2, -1, 0, 1, 0")
	require.NoError(t, err)
	assert.Equal(t, othello.Light, cfg.Player)
	assert.Equal(t, -1, cfg.Depth)
	assert.False(t, cfg.Minimax)
	assert.True(t, cfg.Caching)
	assert.False(t, cfg.Ordering)
}

func TestMalformedInputFailsFast(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
	}{
		{"too few config fields", "1,2,1,0\n"},
		{"bad color", "3,2,1,0,0\n"},
		{"bad depth", "1,-2,1,0,0\n"},
		{"bad flag", "1,2,7,0,0\n"},
		{"bad status", "1,2,1,0,0\nHELLO 2 2\n"},
		{"non-integer score", "1,2,1,0,0\nSCORE x 2\n"},
		{"bad board", "1,2,1,0,0\nSCORE 2 2\n[[0,9],[0,0]]\n"},
		{"truncated session", "1,2,1,0,0\nSCORE 2 2\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := runSession(t, tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrProtocol)
		})
	}
}
