package kulki

import "github.com/vovakirdan/kulki/internal/games/kulki/core"

// GameStateType represents the current session state.
type GameStateType string

const (
	StatePlaying   GameStateType = "playing"
	StateSelecting GameStateType = "selecting"
	StateGameOver  GameStateType = "game_over"
)

// Snapshot captures the session for determinism testing and logging.
type Snapshot struct {
	Board    core.Snapshot
	Cursor   int
	Selected int // NoCell when nothing is picked
	Targets  int // Number of cells the selected ball can reach
	Message  string
	State    GameStateType
}

// Snapshot returns a copy of the session state.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.engine.GameOver():
		state = StateGameOver
	case g.selected != NoCell:
		state = StateSelecting
	}

	return Snapshot{
		Board:    g.engine.Snapshot(),
		Cursor:   g.cursor,
		Selected: g.selected,
		Targets:  len(g.targets),
		Message:  g.message,
		State:    state,
	}
}
