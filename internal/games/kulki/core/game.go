package core

// Rules holds the spawn counts of a game. Board size, colour count and the
// minimum run length are fixed by the package constants.
type Rules struct {
	InitialBalls int // Balls placed on a new board
	SpawnPerMove int // Balls added after a move that clears nothing
}

// DefaultRules returns the classic rules: 5 balls to start, 3 per move.
func DefaultRules() Rules {
	return Rules{
		InitialBalls: 5,
		SpawnPerMove: 3,
	}
}

// Option configures a Game.
type Option func(*Game)

// WithRules overrides the default spawn counts.
// Negative counts are treated as zero.
func WithRules(r Rules) Option {
	return func(g *Game) {
		g.rules = Rules{
			InitialBalls: max(r.InitialBalls, 0),
			SpawnPerMove: max(r.SpawnPerMove, 0),
		}
	}
}

// Game owns the board, the score and the scratch state used to play one
// game. A Game is not safe for concurrent use.
type Game struct {
	grid     Grid
	score    int
	moves    int
	gameOver bool
	rules    Rules

	paths   *PathFinder
	spawner *Spawner
	runs    []Run
}

// NewGame creates an empty board, spawns the initial balls and returns the
// game ready for the first move.
func NewGame(rng Random, opts ...Option) *Game {
	g := &Game{
		rules:   DefaultRules(),
		paths:   NewPathFinder(),
		spawner: NewSpawner(rng),
		runs:    make([]Run, 0, MaxRuns),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.spawner.SpawnMany(&g.grid, g.rules.InitialBalls, nil)
	g.gameOver = g.grid.IsFull()
	return g
}

// NewGameFromGrid starts a game on a prepared board with the given score.
// No initial balls are spawned.
func NewGameFromGrid(rng Random, grid Grid, score int, opts ...Option) *Game {
	g := &Game{
		grid:    grid,
		score:   score,
		rules:   DefaultRules(),
		paths:   NewPathFinder(),
		spawner: NewSpawner(rng),
		runs:    make([]Run, 0, MaxRuns),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.gameOver = g.grid.IsFull()
	return g
}

// Validate checks whether moving from -> to would be accepted, without
// changing anything.
func (g *Game) Validate(from, to int) Reason {
	switch {
	case g.gameOver:
		return ReasonGameOver
	case !ValidIndex(from) || !ValidIndex(to):
		return ReasonOutOfRange
	case from == to:
		return ReasonSameCell
	case g.grid.At(from) == Empty:
		return ReasonEmptySource
	case g.grid.At(to) != Empty:
		return ReasonOccupiedTarget
	case !g.paths.PathExists(&g.grid, from, to):
		return ReasonNoPath
	}
	return ReasonNone
}

// AttemptMove plays one move: the ball at from travels to to, runs are
// cleared and scored, and if nothing was cleared new balls are spawned and
// checked for runs once more. The game is over when the board is full
// after all of that.
//
// A rejected move leaves the board and score untouched.
func (g *Game) AttemptMove(from, to int) MoveResult {
	if reason := g.Validate(from, to); reason != ReasonNone {
		return MoveResult{Reason: reason, GameOver: g.gameOver}
	}

	g.grid.Set(to, g.grid.At(from))
	g.grid.Set(from, Empty)
	g.moves++

	res := MoveResult{Accepted: true}
	if !g.clearRuns(&res) {
		res.Spawned = g.spawner.SpawnMany(&g.grid, g.rules.SpawnPerMove, nil)
		// New balls may complete a run; nothing more is spawned either way.
		g.clearRuns(&res)
	}

	// Removals can free cells, so fullness is checked last.
	g.gameOver = g.grid.IsFull()
	res.GameOver = g.gameOver
	return res
}

// clearRuns removes every run on the board and adds its points.
// Returns true if anything was removed.
func (g *Game) clearRuns(res *MoveResult) bool {
	g.runs = FindRuns(&g.grid, g.runs[:0])
	if len(g.runs) == 0 {
		return false
	}

	points := ScoreRuns(g.runs)
	RemoveRuns(&g.grid, g.runs)
	g.score += points

	res.Points += points
	res.Cleared = append(res.Cleared, g.runs...)
	return true
}

// Reachable lists the empty cells the ball at from could move to.
func (g *Game) Reachable(from int) []int {
	if !ValidIndex(from) || g.grid.At(from) == Empty {
		return nil
	}
	return g.paths.Reachable(&g.grid, from, nil)
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Moves returns the number of accepted moves.
func (g *Game) Moves() int {
	return g.moves
}

// GameOver returns true once the board is full.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Rules returns the spawn counts in effect.
func (g *Game) Rules() Rules {
	return g.rules
}

// Grid returns a copy of the board.
func (g *Game) Grid() Grid {
	return g.grid
}

// Snapshot returns a copy of the game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:     g.grid,
		Score:    g.score,
		Moves:    g.moves,
		GameOver: g.gameOver,
	}
}
