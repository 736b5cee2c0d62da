package core

// scriptedRandom replays queued values; once they run out it returns 0.
type scriptedRandom struct {
	values []int
	next   int
}

func newScriptedRandom(values ...int) *scriptedRandom {
	return &scriptedRandom{values: values}
}

func (r *scriptedRandom) Intn(n int) int {
	if r.next >= len(r.values) {
		return 0
	}
	v := r.values[r.next]
	r.next++
	return v % n
}

// board builds a grid from rows of digits; any other rune is an empty cell.
func board(rows ...string) Grid {
	var g Grid
	for y, row := range rows {
		for x, ch := range row {
			if ch >= '1' && ch <= '7' {
				g.Set(Index(x, y), Color(ch-'0'))
			}
		}
	}
	return g
}

// noRunPattern fills the board so that no two neighbours in any of the
// four directions share a colour.
func noRunPattern() Grid {
	var g Grid
	for y := range Height {
		for x := range Width {
			g.Set(Index(x, y), Color((x+2*y)%ColorCount+1))
		}
	}
	return g
}
