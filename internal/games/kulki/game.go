// Package kulki wraps the board engine for interactive front ends: cell
// names, a cursor with two-step selection, player messages and rendering
// into a platform screen.
package kulki

import (
	"fmt"

	platformcore "github.com/vovakirdan/kulki/internal/core"
	"github.com/vovakirdan/kulki/internal/games/kulki/core"
)

// NoCell marks an unset cursor selection.
const NoCell = -1

// Option configures a Game.
type Option func(*Game)

// WithRules sets the spawn counts used by every new board.
func WithRules(r core.Rules) Option {
	return func(g *Game) {
		g.rules = r
	}
}

// WithGlyph draws balls with r instead of their colour digit.
// A zero rune keeps the digits.
func WithGlyph(r rune) Option {
	return func(g *Game) {
		g.glyph = r
	}
}

// WithTargets toggles the markers on cells the selected ball can reach.
func WithTargets(show bool) Option {
	return func(g *Game) {
		g.showTargets = show
	}
}

// WithCursor toggles the cursor brackets. Line-oriented front ends have
// no cursor.
func WithCursor(show bool) Option {
	return func(g *Game) {
		g.showCursor = show
	}
}

// Outcome reports what an input did.
type Outcome struct {
	Moved    bool // A move was attempted
	From, To int
	Result   core.MoveResult
}

// Game is one interactive Kulki session.
type Game struct {
	cfg    platformcore.RuntimeConfig
	engine *core.Game
	rules  core.Rules

	// Selection state
	cursor   int   // Board index under the cursor
	selected int   // Board index of the picked ball, NoCell if none
	targets  []int // Cells the selected ball can reach

	message string

	// Rendering config
	glyph       rune
	showTargets bool
	showCursor  bool
}

// New creates a session. Call Reset before use.
func New(opts ...Option) *Game {
	g := &Game{
		rules:       core.DefaultRules(),
		selected:    NoCell,
		showTargets: true,
		showCursor:  true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "kulki"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Kulki"
}

// Reset starts a new board. A zero seed picks one from the clock.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.cfg = cfg
	g.engine = core.NewGame(core.NewRandom(cfg.Seed), core.WithRules(g.rules))
	g.cursor = core.Index(core.Width/2, core.Height/2)
	g.clearSelection()
	g.message = ""
	if g.engine.GameOver() {
		g.message = GameOverMessage(g.engine.Score())
	}
}

// Resize records new screen dimensions.
func (g *Game) Resize(w, h int) {
	g.cfg.ScreenW = w
	g.cfg.ScreenH = h
}

// Handle applies one platform action.
func (g *Game) Handle(a platformcore.Action) Outcome {
	switch a {
	case platformcore.ActionUp:
		g.moveCursor(0, -1)
	case platformcore.ActionDown:
		g.moveCursor(0, 1)
	case platformcore.ActionLeft:
		g.moveCursor(-1, 0)
	case platformcore.ActionRight:
		g.moveCursor(1, 0)
	case platformcore.ActionCancel:
		g.clearSelection()
		g.message = ""
	case platformcore.ActionRestart:
		if g.engine.GameOver() {
			// A fixed seed only applies to the first board
			cfg := g.cfg
			cfg.Seed = 0
			g.Reset(cfg)
		}
	case platformcore.ActionSelect:
		return g.selectCursor()
	}
	return Outcome{}
}

func (g *Game) moveCursor(dx, dy int) {
	x, y := core.XY(g.cursor)
	x = platformcore.Clamp(x+dx, 0, core.Width-1)
	y = platformcore.Clamp(y+dy, 0, core.Height-1)
	g.cursor = core.Index(x, y)
}

// selectCursor picks the ball under the cursor, or moves the picked ball to
// the cursor when it points at an empty cell.
func (g *Game) selectCursor() Outcome {
	if g.engine.GameOver() {
		return Outcome{}
	}

	grid := g.engine.Grid()
	switch {
	case g.selected == g.cursor:
		g.clearSelection()
		g.message = ""
	case grid.At(g.cursor) != core.Empty:
		g.selected = g.cursor
		g.targets = g.engine.Reachable(g.cursor)
		g.message = fmt.Sprintf("Selected %s", CellName(g.cursor))
	case g.selected == NoCell:
		g.message = RejectionMessage(core.ReasonEmptySource)
	default:
		from := g.selected
		res := g.Move(from, g.cursor)
		return Outcome{Moved: true, From: from, To: g.cursor, Result: res}
	}
	return Outcome{}
}

// Move attempts to move the ball at from to to and updates the message.
// The selection is dropped once the move is accepted.
func (g *Game) Move(from, to int) core.MoveResult {
	res := g.engine.AttemptMove(from, to)
	if !res.Accepted {
		if res.Reason == core.ReasonGameOver {
			g.message = GameOverMessage(g.engine.Score())
		} else {
			g.message = RejectionMessage(res.Reason)
		}
		return res
	}

	g.clearSelection()
	switch {
	case res.GameOver:
		g.message = GameOverMessage(g.engine.Score())
	case res.Points > 0:
		g.message = fmt.Sprintf("+%d points", res.Points)
	default:
		g.message = ""
	}
	return res
}

func (g *Game) clearSelection() {
	g.selected = NoCell
	g.targets = g.targets[:0]
}

// State returns the summary reported to the platform.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.engine.Score(),
		Moves:    g.engine.Moves(),
		GameOver: g.engine.GameOver(),
	}
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.engine.Score()
}

// GameOver returns true once the board is full.
func (g *Game) GameOver() bool {
	return g.engine.GameOver()
}

// Message returns the last status message.
func (g *Game) Message() string {
	return g.message
}

// Cursor returns the board index under the cursor.
func (g *Game) Cursor() int {
	return g.cursor
}

// Selected returns the picked ball's index, or NoCell.
func (g *Game) Selected() int {
	return g.selected
}

// Rules returns the spawn counts of the current board.
func (g *Game) Rules() core.Rules {
	return g.engine.Rules()
}
