// Package tui provides the Bubble Tea front end for Kulki.
// It maps keys to board actions, renders the session screen with lipgloss
// and shows the key help and a move history.
package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kulki/internal/core"
	"github.com/vovakirdan/kulki/internal/games/kulki"
)

// Options configures the front end.
type Options struct {
	Theme       Theme
	Logger      *log.Logger
	ShowHistory bool
}

// Model is the Bubble Tea model for a Kulki session.
type Model struct {
	game    *kulki.Game
	screen  *core.Screen
	config  core.RuntimeConfig
	theme   Theme
	logger  *log.Logger
	keys    KeyMap
	help    help.Model
	history moveHistory

	showHistory bool
	width       int
	height      int
	quitting    bool
}

// NewModel creates a model and starts a new board.
func NewModel(game *kulki.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Theme == nil {
		opts.Theme = NewTheme(nil)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := Model{
		game:        game,
		config:      cfg,
		theme:       opts.Theme,
		logger:      opts.Logger,
		keys:        DefaultKeyMap(),
		help:        h,
		showHistory: opts.ShowHistory,
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
	}
	m.history = newMoveHistory(m.boardHeight() - 4)
	m.screen = core.NewScreen(m.boardWidth(), m.boardHeight())

	// Reset here: Init has a value receiver and cannot keep changes
	m.game.Reset(cfg)
	m.syncKeys()
	m.logger.Info("new game", "seed", cfg.Seed, "rules", game.Rules())
	return m
}

// Init implements tea.Model. The board only changes on input, so there is
// no tick loop.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "score", m.game.Score(), "moves", m.game.State().Moves)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case key.Matches(msg, m.keys.History):
		m.showHistory = !m.showHistory
		m.layout()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	wasOver := m.game.GameOver()
	out := m.game.Handle(action)
	m.logOutcome(out)
	m.history.add(out)

	if action == core.ActionRestart && wasOver && !m.game.GameOver() {
		m.history.reset()
		m.logger.Info("new game", "rules", m.game.Rules())
	}
	m.syncKeys()
	return m, nil
}

func (m Model) logOutcome(out kulki.Outcome) {
	if !out.Moved {
		return
	}

	from, to := kulki.CellName(out.From), kulki.CellName(out.To)
	res := out.Result
	if !res.Accepted {
		m.logger.Debug("move rejected", "from", from, "to", to, "reason", res.Reason)
		return
	}

	m.logger.Debug("move", "from", from, "to", to, "points", res.Points,
		"cleared", len(res.Cleared), "spawned", len(res.Spawned))
	if res.GameOver {
		state := m.game.State()
		m.logger.Info("game over", "score", state.Score, "moves", state.Moves)
	}
}

// syncKeys enables the restart binding only once the game is over.
func (m *Model) syncKeys() {
	m.keys.Restart.SetEnabled(m.game.GameOver())
}

// handleResize processes window resize events. The board is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout resizes the screen buffer and the history panel to the window.
func (m *Model) layout() {
	w, h := m.boardWidth(), m.boardHeight()
	m.screen.Resize(w, h)
	m.history.setHeight(h - 4)
	m.game.Resize(w, h)
}

// historyVisible reports whether the panel is on and fits beside the board.
func (m Model) historyVisible() bool {
	return m.showHistory && m.width >= kulki.LayoutWidth+historyWidth+2
}

func (m Model) boardWidth() int {
	if m.historyVisible() {
		return max(m.width-historyWidth, 0)
	}
	return max(m.width, 0)
}

func (m Model) boardHeight() int {
	return max(m.height-lipgloss.Height(m.help.View(m.keys))-1, 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	board := RenderScreen(m.screen, m.theme)

	if m.historyVisible() {
		board = lipgloss.JoinHorizontal(lipgloss.Top, board, m.history.view())
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	return board + "\n\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game *kulki.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
