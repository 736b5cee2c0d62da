package kulki

import (
	"fmt"

	"github.com/vovakirdan/kulki/internal/games/kulki/core"
)

// InvalidCellMessage is shown for commands that are not two cell names.
const InvalidCellMessage = "Invalid cell name"

// RejectionMessage returns the player-facing text for a rejected move.
func RejectionMessage(r core.Reason) string {
	switch r {
	case core.ReasonOutOfRange:
		return InvalidCellMessage
	case core.ReasonSameCell:
		return "You can't move to the same cell"
	case core.ReasonEmptySource:
		return "The source cell is empty"
	case core.ReasonOccupiedTarget:
		return "The target cell is not empty"
	case core.ReasonNoPath:
		return "There is no path between the cells"
	case core.ReasonGameOver:
		return "The game is over"
	default:
		return ""
	}
}

// GameOverMessage is shown once the board fills up.
func GameOverMessage(score int) string {
	return fmt.Sprintf("Game over! Your score is: %d", score)
}
