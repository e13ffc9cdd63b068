// Package bot speaks the line-based text protocol with an external
// game manager: it identifies itself, reads its startup configuration,
// then answers every board it is shown with a move. Only protocol
// lines go to the manager writer; all diagnostics go to the logger.
package bot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/seymourg/flipside/othello"
	"github.com/seymourg/flipside/search"
)

// ErrProtocol is returned when the manager sends input this bot
// cannot safely interpret. Continuing with corrupt state risks
// returning nonsensical moves, so the session fails fast instead.
var ErrProtocol = errors.New("malformed manager input")

// Config is the startup configuration the manager sends as one line
// of five comma-separated integers.
type Config struct {
	Player   othello.Player // 1 dark, 2 light
	Depth    int            // -1 means unlimited
	Minimax  bool           // 1 minimax, 0 alpha-beta
	Caching  bool
	Ordering bool // meaningful for alpha-beta only
}

func parseFlag(field, name string) (bool, error) {
	switch strings.TrimSpace(field) {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("%w: %s flag must be 0 or 1, got %q", ErrProtocol, name, field)
}

func parseConfig(line string) (Config, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 5 {
		return Config{}, fmt.Errorf("%w: want 5 config fields, got %d", ErrProtocol, len(fields))
	}
	var cfg Config

	color, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || (color != 1 && color != 2) {
		return Config{}, fmt.Errorf("%w: bad player color %q", ErrProtocol, fields[0])
	}
	cfg.Player = othello.Player(color)

	cfg.Depth, err = strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || cfg.Depth < search.UnlimitedDepth {
		return Config{}, fmt.Errorf("%w: bad depth limit %q", ErrProtocol, fields[1])
	}
	if cfg.Minimax, err = parseFlag(fields[2], "algorithm"); err != nil {
		return Config{}, err
	}
	if cfg.Caching, err = parseFlag(fields[3], "caching"); err != nil {
		return Config{}, err
	}
	if cfg.Ordering, err = parseFlag(fields[4], "ordering"); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Bot is one manager session over a reader/writer pair.
type Bot struct {
	name    string
	scanner *bufio.Scanner
	out     io.Writer
	solver  *search.Solver
	cfg     Config
}

// New creates a bot that reads manager input from r and writes
// protocol output to w.
func New(name string, r io.Reader, w io.Writer) *Bot {
	return &Bot{name: name, scanner: bufio.NewScanner(r), out: w}
}

func (b *Bot) readLine() (string, error) {
	if !b.scanner.Scan() {
		if err := b.scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: unexpected end of input", ErrProtocol)
	}
	return b.scanner.Text(), nil
}

// Run plays one full manager session: identification line, config
// line, then the SCORE/FINAL loop. It returns nil on a clean FINAL.
func (b *Bot) Run() error {
	fmt.Fprintln(b.out, b.name)

	line, err := b.readLine()
	if err != nil {
		return err
	}
	b.cfg, err = parseConfig(line)
	if err != nil {
		return err
	}
	b.solver = &search.Solver{}
	b.solver.Init(nil)
	b.solver.SetStateCaching(b.cfg.Caching)
	b.solver.SetMoveOrdering(b.cfg.Ordering)

	log.Info().
		Str("player", b.cfg.Player.String()).
		Int("depth", b.cfg.Depth).
		Bool("minimax", b.cfg.Minimax).
		Bool("caching", b.cfg.Caching).
		Bool("ordering", b.cfg.Ordering).
		Msg("bot-config")
	if b.cfg.Minimax && b.cfg.Ordering {
		log.Warn().Msg("move ordering has no effect on plain minimax")
	}

	for {
		status, dark, light, err := b.readStatus()
		if err != nil {
			return err
		}
		if status == "FINAL" {
			log.Info().Int("dark", dark).Int("light", light).Msg("game-over")
			return nil
		}
		log.Debug().Int("dark", dark).Int("light", light).Msg("score")

		boardLine, err := b.readLine()
		if err != nil {
			return err
		}
		board, err := othello.Parse(boardLine)
		if err != nil {
			return err
		}
		move, value := b.selectMove(board)
		if move == nil {
			return fmt.Errorf("%w: asked to move with no legal moves", ErrProtocol)
		}
		log.Debug().Str("move", move.String()).Float32("value", value).Msg("selected")
		fmt.Fprintf(b.out, "%d %d\n", move.Row, move.Col)
	}
}

func (b *Bot) readStatus() (status string, dark, light int, err error) {
	line, err := b.readLine()
	if err != nil {
		return "", 0, 0, err
	}
	fields := strings.Fields(line)
	if len(fields) != 3 || (fields[0] != "SCORE" && fields[0] != "FINAL") {
		return "", 0, 0, fmt.Errorf("%w: bad status line %q", ErrProtocol, line)
	}
	if dark, err = strconv.Atoi(fields[1]); err != nil {
		return "", 0, 0, fmt.Errorf("%w: bad status line %q", ErrProtocol, line)
	}
	if light, err = strconv.Atoi(fields[2]); err != nil {
		return "", 0, 0, fmt.Errorf("%w: bad status line %q", ErrProtocol, line)
	}
	return fields[0], dark, light, nil
}

func (b *Bot) selectMove(board othello.Board) (*othello.Move, float32) {
	if b.cfg.Minimax {
		return b.solver.SelectMoveMinimax(board, b.cfg.Player, b.cfg.Depth)
	}
	return b.solver.SelectMoveAlphaBeta(board, b.cfg.Player, b.cfg.Depth)
}
