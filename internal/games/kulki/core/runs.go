package core

// Orientation is the direction of a line on the board.
type Orientation int

const (
	Horizontal   Orientation = iota // left to right
	Vertical                        // top to bottom
	Diagonal                        // top-left to bottom-right
	AntiDiagonal                    // top-right to bottom-left
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	case AntiDiagonal:
		return "anti-diagonal"
	default:
		return "unknown"
	}
}

// Step returns the linear index distance between consecutive cells of a
// line with this orientation.
func (o Orientation) Step() int {
	switch o {
	case Horizontal:
		return 1
	case Vertical:
		return Width
	case Diagonal:
		return Width + 1
	case AntiDiagonal:
		return Width - 1
	default:
		return 0
	}
}

// Run is a line of at least MinRun equal balls.
type Run struct {
	Orientation Orientation
	Start       int // Index of the first cell in scan order
	Length      int
	Color       Color
}

// Cells returns the linear indices covered by the run.
func (r Run) Cells() []int {
	cells := make([]int, r.Length)
	step := r.Orientation.Step()
	for k := range r.Length {
		cells[k] = r.Start + k*step
	}
	return cells
}

// A line of Width or Height cells can hold at most one run: two disjoint
// runs would need 2*MinRun cells. The scanner stops looking at a line once
// a run is closed, so this must hold for both dimensions or the build fails.
const (
	_ uint = 2*MinRun - Width - 1
	_ uint = 2*MinRun - Height - 1
)

// MaxRuns bounds the number of runs a single scan can report: one per
// row and column, and one per scanned diagonal (Width offsets each way).
const MaxRuns = Height + Width + 2*Width

// FindRuns appends every run on the board to dst and returns the
// extended slice. Each row, column and diagonal contributes at most one
// run. The grid is not modified.
func FindRuns(g *Grid, dst []Run) []Run {
	for y := range Height {
		dst = scanLine(g, dst, Horizontal, 0, y, 1, 0, Width)
	}
	for x := range Width {
		dst = scanLine(g, dst, Vertical, x, 0, 0, 1, Height)
	}
	// Diagonals that start left of the board enter it further down; the
	// out-of-bounds prefix reads as empty. Offsets outside this range give
	// lines shorter than MinRun.
	for d := -(MinRun - 1); d <= Width-MinRun; d++ {
		dst = scanLine(g, dst, Diagonal, d, 0, 1, 1, Height)
	}
	for d := MinRun - 1; d <= Width+MinRun-2; d++ {
		dst = scanLine(g, dst, AntiDiagonal, d, 0, -1, 1, Height)
	}
	return dst
}

// scanLine walks n cells from (x, y) in steps of (dx, dy), plus one
// sentinel step past the end so a run touching the edge is closed.
func scanLine(g *Grid, dst []Run, o Orientation, x, y, dx, dy, n int) []Run {
	var (
		color  = Empty
		length = 0
		start  = 0
	)

	for k := 0; k <= n; k++ {
		cx, cy := x+k*dx, y+k*dy
		c := g.Get(cx, cy)

		if length >= MinRun && color != Empty && c != color {
			// The run is closed and no second one fits on this line.
			break
		}

		if c == color {
			length++
			continue
		}
		color = c
		length = 1
		start = Index(cx, cy)
	}

	if length >= MinRun && color != Empty {
		dst = append(dst, Run{
			Orientation: o,
			Start:       start,
			Length:      length,
			Color:       color,
		})
	}
	return dst
}

// RemoveRuns empties every cell covered by runs.
// Cells shared by crossing runs are cleared once.
func RemoveRuns(g *Grid, runs []Run) {
	for _, r := range runs {
		step := r.Orientation.Step()
		for k := range r.Length {
			g.Set(r.Start+k*step, Empty)
		}
	}
}
