package core

import "errors"

// Reason explains why a move was rejected.
type Reason int

const (
	ReasonNone           Reason = iota // Move accepted
	ReasonGameOver                     // No moves after the board filled up
	ReasonOutOfRange                   // Index outside the board
	ReasonSameCell                     // Source and target are the same cell
	ReasonEmptySource                  // Nothing to move
	ReasonOccupiedTarget               // Target holds a ball
	ReasonNoPath                       // Target not reachable through empty cells
)

// Rejection errors, one per Reason, for callers that prefer errors.Is.
var (
	ErrGameOver       = errors.New("game is over")
	ErrOutOfRange     = errors.New("cell index out of range")
	ErrSameCell       = errors.New("source and target are the same cell")
	ErrEmptySource    = errors.New("source cell is empty")
	ErrOccupiedTarget = errors.New("target cell is not empty")
	ErrNoPath         = errors.New("no path between the cells")
)

// String returns a stable identifier for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonGameOver:
		return "game_over"
	case ReasonOutOfRange:
		return "out_of_range"
	case ReasonSameCell:
		return "same_cell"
	case ReasonEmptySource:
		return "empty_source"
	case ReasonOccupiedTarget:
		return "occupied_target"
	case ReasonNoPath:
		return "no_path"
	default:
		return "unknown"
	}
}

// Err returns the sentinel error for r, or nil for ReasonNone.
func (r Reason) Err() error {
	switch r {
	case ReasonGameOver:
		return ErrGameOver
	case ReasonOutOfRange:
		return ErrOutOfRange
	case ReasonSameCell:
		return ErrSameCell
	case ReasonEmptySource:
		return ErrEmptySource
	case ReasonOccupiedTarget:
		return ErrOccupiedTarget
	case ReasonNoPath:
		return ErrNoPath
	default:
		return nil
	}
}

// MoveResult describes the outcome of AttemptMove.
type MoveResult struct {
	Accepted bool
	Reason   Reason // ReasonNone when accepted
	GameOver bool

	Points  int   // Points gained by this move
	Cleared []Run // Runs removed, from both the move and the follow-up spawn
	Spawned []int // Cells that received a new ball
}

// Snapshot is a read-only copy of the game for rendering and tests.
type Snapshot struct {
	Grid     Grid
	Score    int
	Moves    int
	GameOver bool
}
