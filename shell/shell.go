// Package shell is an interactive console for querying computed bearoff
// databases.
package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/pfrstg/bgend/board"
	"github.com/pfrstg/bgend/strategy"
)

type ShellController struct {
	l     *readline.Instance
	store *strategy.DistributionStore
	path  string
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewShellController() *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mbgend>\033[0m ",
		HistoryFile:     "/tmp/bgend_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l}
}

func (sc *ShellController) showMessage(msg string) {
	io.WriteString(sc.l.Stderr(), msg)
	io.WriteString(sc.l.Stderr(), "\n")
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "load <path/to/db> - load a computed database\n")
	io.WriteString(w, "show <id | n,n,...> - print a board and its distribution\n")
	io.WriteString(w, "best <id | n,n,...> <die1> <die2> - best moves for a roll\n")
	io.WriteString(w, "ev <id | n,n,...> - expected turns remaining\n")
	io.WriteString(w, "exit - quit\n")
}

// parseBoard accepts either a numeric board id or comma-separated spot
// counts ("4,1,0,1").
func (sc *ShellController) parseBoard(arg string) (*board.Board, error) {
	if strings.Contains(arg, ",") {
		parts := strings.Split(arg, ",")
		counts := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, err
			}
			counts = append(counts, n)
		}
		return board.New(sc.store.Config, counts)
	}
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return nil, err
	}
	return board.FromID(sc.store.Config, id)
}

func (sc *ShellController) load(path string) error {
	store, err := strategy.LoadSQLite(path)
	if err != nil {
		return err
	}
	sc.store = store
	sc.path = path
	sc.showMessage(fmt.Sprintf("loaded %d boards (markers=%d spots=%d)",
		len(store.DistributionMap), store.Config.NumMarkers, store.Config.NumSpots))
	return nil
}

func (sc *ShellController) show(arg string) error {
	b, err := sc.parseBoard(arg)
	if err != nil {
		return err
	}
	d, ok := sc.store.DistributionMap[b.ID()]
	if !ok {
		return fmt.Errorf("board %d not in store", b.ID())
	}
	sc.showMessage(fmt.Sprintf("Board %d", b.ID()))
	sc.showMessage(d.String())
	sc.showMessage(b.PrettyString(nil))
	return nil
}

func (sc *ShellController) best(boardArg, die1Arg, die2Arg string) error {
	b, err := sc.parseBoard(boardArg)
	if err != nil {
		return err
	}
	d1, err := strconv.Atoi(die1Arg)
	if err != nil {
		return err
	}
	d2, err := strconv.Atoi(die2Arg)
	if err != nil {
		return err
	}
	var roll board.Roll
	if d1 == d2 {
		roll = board.Roll{Dice: []int{d1, d1, d1, d1}, Prob: 1.0 / 36}
	} else {
		roll = board.Roll{Dice: []int{d1, d2}, Prob: 1.0 / 18}
	}
	moves, err := sc.store.ComputeBestMovesForRoll(b, roll)
	if err != nil {
		return err
	}
	next, err := b.ApplyMoves(moves)
	if err != nil {
		return err
	}
	sc.showMessage(fmt.Sprintf("best: %s -> board %d", moves, next.ID()))
	sc.showMessage(b.PrettyString(moves))
	return nil
}

func (sc *ShellController) ev(arg string) error {
	b, err := sc.parseBoard(arg)
	if err != nil {
		return err
	}
	d, ok := sc.store.DistributionMap[b.ID()]
	if !ok {
		return fmt.Errorf("board %d not in store", b.ID())
	}
	sc.showMessage(strconv.FormatFloat(d.ExpectedValue(), 'f', 6, 64))
	return nil
}

func (sc *ShellController) dispatch(line string) (bool, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return false, err
	}
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := fields[0], fields[1:]

	needStore := cmd == "show" || cmd == "best" || cmd == "ev"
	if needStore && sc.store == nil {
		return false, fmt.Errorf("no database loaded; use load <path>")
	}

	switch cmd {
	case "load":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: load <path>")
		}
		return false, sc.load(args[0])
	case "show":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: show <id | n,n,...>")
		}
		return false, sc.show(args[0])
	case "best":
		if len(args) != 3 {
			return false, fmt.Errorf("usage: best <id | n,n,...> <die1> <die2>")
		}
		return false, sc.best(args[0], args[1], args[2])
	case "ev":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: ev <id | n,n,...>")
		}
		return false, sc.ev(args[0])
	case "help":
		usage(sc.l.Stderr())
		return false, nil
	case "exit", "quit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q; try help", cmd)
	}
}

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
		quit, err := sc.dispatch(strings.TrimSpace(line))
		if err != nil {
			sc.showError(err)
		}
		if quit {
			break
		}
	}
	log.Debug().Msg("exiting readline loop")
}
