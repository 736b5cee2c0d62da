package core

// Points awarded for the shortest run and for every ball beyond it.
const (
	basePoints  = 5
	extraPoints = 2
)

// ScoreForRun returns the points for a run of the given length:
// 5 for five balls plus 2 for each additional ball.
// Lengths below MinRun score nothing.
func ScoreForRun(length int) int {
	if length < MinRun {
		return 0
	}
	return basePoints + (length-MinRun)*extraPoints
}

// ScoreRuns sums the points of all runs. Crossing runs are scored
// separately even though they share a cell.
func ScoreRuns(runs []Run) int {
	total := 0
	for _, r := range runs {
		total += ScoreForRun(r.Length)
	}
	return total
}
