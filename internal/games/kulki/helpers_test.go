package kulki

import (
	"testing"

	platformcore "github.com/vovakirdan/kulki/internal/core"
	"github.com/vovakirdan/kulki/internal/games/kulki/core"
)

// firstChoice always picks the first candidate: spawns land on the lowest
// empty index with colour 1.
type firstChoice struct{}

func (firstChoice) Intn(int) int { return 0 }

// board builds a grid from up to nine rows of digits; any other character
// is an empty cell.
func board(rows ...string) core.Grid {
	var g core.Grid
	for y, row := range rows {
		for x, ch := range row {
			if ch >= '1' && ch <= '7' {
				g.Set(core.Index(x, y), core.Color(ch-'0'))
			}
		}
	}
	return g
}

// fullBoard returns a full grid without any qualifying run.
func fullBoard() core.Grid {
	var g core.Grid
	for y := range core.Height {
		for x := range core.Width {
			g.Set(core.Index(x, y), core.Color((x+2*y)%core.ColorCount+1))
		}
	}
	return g
}

// newTestGame returns a session playing on the given board.
func newTestGame(t *testing.T, grid core.Grid, opts ...Option) *Game {
	t.Helper()
	g := New(opts...)
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	g.engine = core.NewGameFromGrid(firstChoice{}, grid, 0, core.WithRules(g.rules))
	return g
}
