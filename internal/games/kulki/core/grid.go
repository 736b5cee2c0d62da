// Package core implements the Kulki board rules: move legality, run
// detection and removal, scoring and ball spawning.
// It imports only the standard library; front ends live in the platform
// packages.
package core

// Board dimensions and rule constants.
const (
	Width      = 9
	Height     = 9
	CellCount  = Width * Height
	ColorCount = 7 // Ball colours are 1..ColorCount
	MinRun     = 5 // Shortest line of equal balls that gets removed
)

// Color is the content of a cell: Empty or a ball colour in [1, ColorCount].
type Color uint8

// Empty marks a free cell.
const Empty Color = 0

// Valid reports whether c is Empty or a ball colour.
func (c Color) Valid() bool {
	return c <= ColorCount
}

// Grid is the 9x9 board stored in row-major order: index = y*Width + x.
// The zero value is an empty board.
type Grid struct {
	cells [CellCount]Color
}

// NewGrid builds a grid from a row-major list of cell values.
// Missing trailing cells stay empty; extra values are ignored.
func NewGrid(cells ...Color) Grid {
	var g Grid
	copy(g.cells[:], cells)
	return g
}

// Index converts a coordinate to a linear index. Callers check bounds.
func Index(x, y int) int {
	return y*Width + x
}

// XY converts a linear index to a coordinate.
func XY(i int) (x, y int) {
	return i % Width, i / Width
}

// InBounds returns true if (x, y) lies on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// ValidIndex returns true if i addresses a cell.
func ValidIndex(i int) bool {
	return i >= 0 && i < CellCount
}

// Get returns the cell at (x, y).
// Out-of-bounds coordinates read as Empty, which lets neighbour probes and
// line scans run off the edge without special cases.
func (g *Grid) Get(x, y int) Color {
	if !InBounds(x, y) {
		return Empty
	}
	return g.cells[Index(x, y)]
}

// At returns the cell at linear index i.
func (g *Grid) At(i int) Color {
	return g.cells[i]
}

// Set writes c at linear index i.
func (g *Grid) Set(i int, c Color) {
	g.cells[i] = c
}

// IsFull returns true if no cell is empty.
func (g *Grid) IsFull() bool {
	for _, c := range g.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Empty {
			n++
		}
	}
	return n
}

// EmptyCells appends the indices of all empty cells to dst in ascending
// order and returns the extended slice.
func (g *Grid) EmptyCells(dst []int) []int {
	for i, c := range g.cells {
		if c == Empty {
			dst = append(dst, i)
		}
	}
	return dst
}

// Cells returns a copy of the cell values in row-major order.
func (g *Grid) Cells() []Color {
	out := make([]Color, CellCount)
	copy(out, g.cells[:])
	return out
}

// Equal returns true if both grids hold the same cells.
func (g *Grid) Equal(other *Grid) bool {
	return g.cells == other.cells
}
