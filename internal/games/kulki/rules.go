package kulki

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/kulki/internal/games/kulki/core"
)

// RulesText returns the help screen for the given spawn rules.
func RulesText(r core.Rules) string {
	var sb strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&sb, format, args...)
		sb.WriteByte('\n')
	}

	line("Rules:")
	line("- You can move balls from one cell to another, if the path from the source and target cell exists")
	line("- The ball can move only horizontally or vertically, not diagonally")
	line("- If there are %d or more balls of the same color in a row, column or diagonally, they disappear, and your score is increased", core.MinRun)
	line("  If there are %d balls in a series, you get %d points. If there are more than %d balls in a row, you get 2 points for each additional ball.",
		core.MinRun, core.ScoreForRun(core.MinRun), core.MinRun)
	line("  For example, %d balls in a row give you %d points, %d balls in a row give you %d points, etc.",
		core.MinRun+1, core.ScoreForRun(core.MinRun+1), core.MinRun+2, core.ScoreForRun(core.MinRun+2))
	line("- The game starts with %d balls on the board", r.InitialBalls)
	line("- After each move, if the move doesn't result in any series of balls disappearing, %d new balls are added to the board", r.SpawnPerMove)
	line("- The game ends when the board is completely filled with balls, and there are no more moves possible")
	line("")
	line("Gameplay command format:")
	line("(source cell name) (target cell name) - move ball from one cell to another")
	line("e.g. A1 B1 - move ball from A1 to B1 (case-insensitive)")
	line("")
	line("Other commands:")
	line("q - quit")
	line("h - display this help")
	return sb.String()
}
