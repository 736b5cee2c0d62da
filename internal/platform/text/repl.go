// Package text provides a line-oriented front end for Kulki: the board is
// printed after every command and moves are typed as two cell names.
package text

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/kulki/internal/games/kulki"
)

// REPL reads commands from a reader and plays them on a session.
type REPL struct {
	game   *kulki.Game
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Logger
	prompt bool
}

// New creates a command loop. The prompt is printed only when in is a
// terminal.
func New(game *kulki.Game, in io.Reader, out io.Writer, logger *log.Logger) *REPL {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &REPL{
		game:   game,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
		prompt: isTerminal(in),
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run plays until the player quits, the board fills up or input ends.
// The session must already be reset.
func (r *REPL) Run() error {
	r.println("Welcome to Kulki (5 in a row) game!")
	r.println("Enter 'h' for help, 'q' to quit")

	for {
		r.println("")
		r.println(r.game.BoardText())
		if r.game.GameOver() {
			r.println(kulki.GameOverMessage(r.game.Score()))
			return nil
		}

		if r.prompt {
			fmt.Fprint(r.out, "Enter command: ")
		}
		if !r.in.Scan() {
			if err := r.in.Err(); err != nil {
				return fmt.Errorf("read command: %w", err)
			}
			r.logger.Debug("input closed", "score", r.game.Score())
			return nil
		}

		switch cmd := strings.TrimSpace(r.in.Text()); cmd {
		case "":
			continue
		case "h", "H":
			r.println(kulki.RulesText(r.game.Rules()))
		case "q", "Q":
			r.logger.Info("quit", "score", r.game.Score())
			return nil
		default:
			if r.move(cmd) {
				return nil
			}
		}
	}
}

// move plays one command and reports whether the game ended.
func (r *REPL) move(cmd string) bool {
	from, to, err := kulki.ParseMove(cmd)
	if err != nil {
		r.logger.Debug("bad command", "command", cmd, "error", err)
		r.println(kulki.InvalidCellMessage)
		return false
	}

	res := r.game.Move(from, to)
	if !res.Accepted {
		r.logger.Debug("move rejected", "from", kulki.CellName(from), "to", kulki.CellName(to), "reason", res.Reason)
		r.println(r.game.Message())
		return false
	}

	r.logger.Debug("move", "from", kulki.CellName(from), "to", kulki.CellName(to),
		"points", res.Points, "spawned", len(res.Spawned))
	if res.GameOver {
		r.println("")
		r.println(r.game.BoardText())
		r.println(r.game.Message())
		r.logger.Info("game over", "score", r.game.Score(), "moves", r.game.State().Moves)
		return true
	}
	if msg := r.game.Message(); msg != "" {
		r.println(msg)
	}
	return false
}

func (r *REPL) println(s string) {
	fmt.Fprintln(r.out, s)
}
