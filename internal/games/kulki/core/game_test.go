package core

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
)

type GameSuite struct {
	suite.Suite
}

func TestGameSuite(t *testing.T) {
	suite.Run(t, new(GameSuite))
}

func (s *GameSuite) TestNewGameSpawnsInitialBalls() {
	g := NewGame(rand.New(rand.NewSource(42)))

	snap := g.Snapshot()
	s.Equal(CellCount-5, snap.Grid.EmptyCount())
	s.Equal(0, snap.Score)
	s.Equal(0, snap.Moves)
	s.False(snap.GameOver)
}

func (s *GameSuite) TestNewGameWithRules() {
	g := NewGame(rand.New(rand.NewSource(42)), WithRules(Rules{InitialBalls: 12, SpawnPerMove: 1}))

	grid := g.Grid()
	s.Equal(CellCount-12, grid.EmptyCount())
	s.Equal(Rules{InitialBalls: 12, SpawnPerMove: 1}, g.Rules())

	g = NewGame(rand.New(rand.NewSource(42)), WithRules(Rules{InitialBalls: -3, SpawnPerMove: -1}))
	grid = g.Grid()
	s.Equal(CellCount, grid.EmptyCount())
	s.Equal(Rules{}, g.Rules())
}

func (s *GameSuite) TestSameSeedSameBoard() {
	a := NewGame(rand.New(rand.NewSource(12345)))
	b := NewGame(rand.New(rand.NewSource(12345)))
	s.Equal(a.Snapshot(), b.Snapshot())
}

func (s *GameSuite) TestRejectedMovesLeaveStateUntouched() {
	start := board(
		"12",
		"3........",
		"",
		"",
		"....5",
	)

	tests := []struct {
		name     string
		from, to int
		reason   Reason
		err      error
	}{
		{"negative index", -1, 40, ReasonOutOfRange, ErrOutOfRange},
		{"index past the board", Index(4, 4), CellCount, ReasonOutOfRange, ErrOutOfRange},
		{"same cell", Index(4, 4), Index(4, 4), ReasonSameCell, ErrSameCell},
		{"empty source", 40 + 1, 50, ReasonEmptySource, ErrEmptySource},
		{"occupied target", Index(4, 4), 1, ReasonOccupiedTarget, ErrOccupiedTarget},
		{"boxed in", 0, 80, ReasonNoPath, ErrNoPath},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			g := NewGameFromGrid(newScriptedRandom(), start, 17)
			before := g.Snapshot()

			res := g.AttemptMove(tc.from, tc.to)

			s.False(res.Accepted)
			s.Equal(tc.reason, res.Reason)
			s.True(errors.Is(res.Reason.Err(), tc.err))
			s.Equal(before, g.Snapshot())
		})
	}
}

func (s *GameSuite) TestMoveCompletingRunClearsWithoutSpawning() {
	start := board(
		"2222",
		"", "", "", "", "", "", "",
		"....2",
	)
	// A spawn would consume these values and leave a ball behind.
	rng := newScriptedRandom(0, 0, 0, 0, 0, 0)
	g := NewGameFromGrid(rng, start, 0)

	res := g.AttemptMove(Index(4, 8), Index(4, 0))

	s.True(res.Accepted)
	s.Equal(ReasonNone, res.Reason)
	s.Nil(res.Reason.Err())
	s.Equal(5, res.Points)
	s.Equal([]Run{{Horizontal, 0, 5, 2}}, res.Cleared)
	s.Empty(res.Spawned)
	s.False(res.GameOver)

	snap := g.Snapshot()
	s.Equal(5, snap.Score)
	s.Equal(1, snap.Moves)
	s.Equal(CellCount, snap.Grid.EmptyCount())
	s.Equal(0, rng.next, "no random values consumed")
}

func (s *GameSuite) TestMoveWithoutRunSpawnsThree() {
	start := board("1")
	// Each spawn draws an empty-list position, then a colour index.
	g := NewGameFromGrid(newScriptedRandom(0, 1, 0, 2, 0, 3), start, 0)

	res := g.AttemptMove(0, 1)

	s.True(res.Accepted)
	s.Equal(0, res.Points)
	s.Empty(res.Cleared)
	s.Equal([]int{0, 2, 3}, res.Spawned)

	grid := g.Grid()
	s.Equal(Color(2), grid.At(0))
	s.Equal(Color(1), grid.At(1))
	s.Equal(Color(3), grid.At(2))
	s.Equal(Color(4), grid.At(3))
	s.Equal(CellCount-4, grid.EmptyCount())
	s.Equal(0, g.Score())
}

func (s *GameSuite) TestSpawnedBallsCanCompleteRun() {
	start := board(
		"2222",
		"", "", "", "", "", "", "",
		"........5",
	)
	// First spawn lands on cell 4 with colour 2 and completes the row.
	g := NewGameFromGrid(newScriptedRandom(0, 1, 0, 2, 0, 3), start, 10)

	res := g.AttemptMove(Index(8, 8), Index(7, 8))

	s.True(res.Accepted)
	s.Equal([]int{4, 5, 6}, res.Spawned)
	s.Equal([]Run{{Horizontal, 0, 5, 2}}, res.Cleared)
	s.Equal(5, res.Points)
	s.Equal(15, g.Score())

	grid := g.Grid()
	for i := range 5 {
		s.Equal(Empty, grid.At(i), "cell %d", i)
	}
	s.Equal(Color(3), grid.At(5))
	s.Equal(Color(4), grid.At(6))
	s.Equal(Color(5), grid.At(Index(7, 8)))
}

func (s *GameSuite) TestBoardFullEndsGame() {
	start := noRunPattern()
	start.Set(80, Empty)

	g := NewGameFromGrid(newScriptedRandom(0, 0), start, 0)
	s.False(g.GameOver())

	// The ball leaves cell 79, which becomes the only free cell and is
	// refilled by the spawn.
	res := g.AttemptMove(79, 80)

	s.True(res.Accepted)
	s.Equal([]int{79}, res.Spawned)
	s.True(res.GameOver)
	s.True(g.GameOver())

	before := g.Snapshot()
	res = g.AttemptMove(0, 1)
	s.False(res.Accepted)
	s.Equal(ReasonGameOver, res.Reason)
	s.True(res.GameOver)
	s.Equal(before, g.Snapshot())
}

func (s *GameSuite) TestClearingFreesCellsBeforeFullCheck() {
	// Full board except the target; the move completes a run, so the
	// game carries on even though it was one ball from full.
	start := noRunPattern()
	for x := range 4 {
		start.Set(Index(x, 0), 6)
	}
	start.Set(Index(4, 0), Empty)
	start.Set(Index(4, 1), 6)

	g := NewGameFromGrid(newScriptedRandom(), start, 0)
	res := g.AttemptMove(Index(4, 1), Index(4, 0))

	s.True(res.Accepted)
	// Cell (5,0) of the pattern is also colour 6, so the run is six long.
	s.Equal([]Run{{Horizontal, 0, 6, 6}}, res.Cleared)
	s.Equal(7, res.Points)
	s.False(res.GameOver)

	grid := g.Grid()
	s.Equal(7, grid.EmptyCount(), "six cleared plus the vacated source")
}

func (s *GameSuite) TestReachable() {
	start := board(
		"1.2",
		"..2",
		"222",
	)
	g := NewGameFromGrid(newScriptedRandom(), start, 0)

	s.ElementsMatch([]int{1, Index(0, 1), Index(1, 1)}, g.Reachable(0))
	s.Nil(g.Reachable(Index(5, 5)), "empty source")
	s.Nil(g.Reachable(-1))
}

func (s *GameSuite) TestRandomPlayKeepsInvariants() {
	rng := rand.New(rand.NewSource(2024))
	g := NewGame(rng)

	for range 500 {
		if g.GameOver() {
			break
		}
		before := g.Snapshot()
		from, to := rng.Intn(CellCount), rng.Intn(CellCount)

		res := g.AttemptMove(from, to)
		after := g.Snapshot()

		if !res.Accepted {
			s.Equal(before, after)
			continue
		}

		s.Equal(before.Score+res.Points, after.Score)
		s.Empty(FindRuns(&after.Grid, nil), "runs must never survive a move")
		for i := range CellCount {
			s.True(after.Grid.At(i).Valid())
		}
		s.Equal(after.Grid.IsFull(), res.GameOver)
	}
}
