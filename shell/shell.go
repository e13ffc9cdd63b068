// Package shell is an interactive analysis REPL: set up positions,
// run the searchers with different options, and pit them against each
// other.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/seymourg/flipside/automatic"
	"github.com/seymourg/flipside/config"
	"github.com/seymourg/flipside/eval"
	"github.com/seymourg/flipside/othello"
	"github.com/seymourg/flipside/search"
)

var errExit = errors.New("sentinel error; please exit")

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "show - print the current position\n")
	io.WriteString(w, "new [dim] - start from the standard opening position\n")
	io.WriteString(w, "load <board-literal> - load a position in manager form, e.g. [[0,1],[2,0]]\n")
	io.WriteString(w, "turn <dark|light> - set the side to move\n")
	io.WriteString(w, "moves - list legal moves for the side to move\n")
	io.WriteString(w, "play <row> <col> - apply a move for the side to move\n")
	io.WriteString(w, "set <depth|caching|ordering|heuristic> <value> - tune the searcher\n")
	io.WriteString(w, "solve [minimax|ab] - search the current position (ab is the default)\n")
	io.WriteString(w, "auto [n] - self-play n games, minimax vs alpha-beta (default 1)\n")
	io.WriteString(w, "exit - quit\n")
}

// ShellController owns the REPL state: the position being analyzed
// and the searcher options.
type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	board  othello.Board
	onTurn othello.Player

	depth     int
	caching   bool
	ordering  bool
	heuristic bool
}

// NewShellController creates a controller with a fresh starting
// position.
func NewShellController(cfg *config.Config) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mflipside>\033[0m ",
		HistoryFile:     cfg.HistoryFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	return &ShellController{
		l:      l,
		cfg:    cfg,
		board:  othello.New(cfg.BoardSize),
		onTurn: othello.Dark,
		depth:  4,
	}, nil
}

func (sc *ShellController) showPosition() {
	out := sc.l.Stderr()
	io.WriteString(out, sc.board.String())
	dark, light := sc.board.Score()
	showMessage(fmt.Sprintf("score: dark %d, light %d; %s to move", dark, light, sc.onTurn), out)
}

func (sc *ShellController) newSolver() *search.Solver {
	s := &search.Solver{}
	if sc.heuristic {
		s.Init(eval.Heuristic)
	} else {
		s.Init(nil)
	}
	s.SetStateCaching(sc.caching)
	s.SetMoveOrdering(sc.ordering)
	return s
}

func (sc *ShellController) solve(args []string) error {
	algo := "ab"
	if len(args) > 0 {
		algo = args[0]
	}
	solver := sc.newSolver()
	var move *othello.Move
	var value float32
	switch algo {
	case "minimax":
		move, value = solver.SelectMoveMinimax(sc.board, sc.onTurn, sc.depth)
	case "ab", "alphabeta":
		move, value = solver.SelectMoveAlphaBeta(sc.board, sc.onTurn, sc.depth)
	default:
		return fmt.Errorf("unknown algorithm %q", algo)
	}
	out := sc.l.Stderr()
	if move == nil {
		showMessage(fmt.Sprintf("no legal moves; position value %v", value), out)
	} else {
		showMessage(fmt.Sprintf("best move %v, value %v", move, value), out)
	}
	cache := solver.Cache()
	showMessage(fmt.Sprintf("nodes %d; cache: %d entries, %d lookups, %d hits, %d collisions",
		solver.NodesVisited(), cache.Len(), cache.Lookups(), cache.Hits(), cache.T2Collisions()), out)
	return nil
}

func (sc *ShellController) play(args []string) error {
	if len(args) != 2 {
		return errors.New("play needs a row and a column")
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}
	m := othello.Move{Row: row, Col: col}
	legal := false
	for _, lm := range sc.board.LegalMoves(sc.onTurn) {
		if lm == m {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("%v is not a legal move for %s", m, sc.onTurn)
	}
	sc.board = sc.board.ApplyMove(sc.onTurn, m)
	sc.onTurn = sc.onTurn.Opponent()
	sc.showPosition()
	return nil
}

func (sc *ShellController) set(args []string) error {
	if len(args) != 2 {
		return errors.New("set needs an option and a value")
	}
	switch args[0] {
	case "depth":
		d, err := strconv.Atoi(args[1])
		if err != nil || d < search.UnlimitedDepth {
			return fmt.Errorf("bad depth %q", args[1])
		}
		sc.depth = d
	case "caching":
		sc.caching = args[1] == "on" || args[1] == "1"
	case "ordering":
		sc.ordering = args[1] == "on" || args[1] == "1"
	case "heuristic":
		sc.heuristic = args[1] == "on" || args[1] == "1"
	default:
		return fmt.Errorf("unknown option %q", args[0])
	}
	return nil
}

func (sc *ShellController) auto(args []string) error {
	games := 1
	if len(args) > 0 {
		var err error
		if games, err = strconv.Atoi(args[0]); err != nil || games < 1 {
			return fmt.Errorf("bad game count %q", args[0])
		}
	}
	out := sc.l.Stderr()
	dark := automatic.PlayerConfig{Algorithm: automatic.Minimax, Depth: sc.depth, Caching: sc.caching}
	light := automatic.PlayerConfig{Algorithm: automatic.AlphaBeta, Depth: sc.depth, Caching: sc.caching, Ordering: sc.ordering}
	for i := 0; i < games; i++ {
		runner := automatic.NewGameRunner(sc.cfg.BoardSize, dark, light)
		d, l, err := runner.PlayToEnd()
		if err != nil {
			return err
		}
		showMessage(fmt.Sprintf("game %d: dark (minimax) %d - light (alphabeta) %d", i+1, d, l), out)
	}
	return nil
}

func (sc *ShellController) execLine(line string) error {
	fields, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "show":
		sc.showPosition()
	case "new":
		dim := sc.cfg.BoardSize
		if len(args) > 0 {
			if dim, err = strconv.Atoi(args[0]); err != nil || dim < 4 || dim%2 != 0 {
				return fmt.Errorf("bad board dimension %q", args[0])
			}
		}
		sc.board = othello.New(dim)
		sc.onTurn = othello.Dark
		sc.showPosition()
	case "load":
		if len(args) != 1 {
			return errors.New("load needs a board literal")
		}
		b, err := othello.Parse(args[0])
		if err != nil {
			return err
		}
		sc.board = b
		sc.showPosition()
	case "turn":
		switch strings.ToLower(strings.Join(args, "")) {
		case "dark":
			sc.onTurn = othello.Dark
		case "light":
			sc.onTurn = othello.Light
		default:
			return errors.New("turn needs dark or light")
		}
	case "moves":
		showMessage(fmt.Sprintf("%v", sc.board.LegalMoves(sc.onTurn)), sc.l.Stderr())
	case "play":
		return sc.play(args)
	case "set":
		return sc.set(args)
	case "solve":
		return sc.solve(args)
	case "auto":
		return sc.auto(args)
	case "help":
		usage(sc.l.Stderr())
	case "exit", "quit":
		return errExit
	default:
		return fmt.Errorf("unknown command %q; try help", cmd)
	}
	return nil
}

// Loop runs the REPL until exit or EOF.
func (sc *ShellController) Loop() {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		if err := sc.execLine(strings.TrimSpace(line)); err != nil {
			if errors.Is(err, errExit) {
				break
			}
			showMessage("error: "+err.Error(), sc.l.Stderr())
			log.Debug().Err(err).Str("line", line).Msg("command-error")
		}
	}
	log.Debug().Msg("exiting shell loop")
}
