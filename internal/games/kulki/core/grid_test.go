package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridGetOutOfBounds(t *testing.T) {
	g := board("777777777")

	tests := []struct {
		name string
		x, y int
	}{
		{"left of board", -1, 0},
		{"right of board", Width, 0},
		{"above board", 0, -1},
		{"below board", 0, Height},
		{"far away", 100, -100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, Empty, g.Get(tc.x, tc.y))
		})
	}

	assert.Equal(t, Color(7), g.Get(0, 0))
	assert.Equal(t, Color(7), g.Get(Width-1, 0))
}

func TestGridIndexRoundTrip(t *testing.T) {
	for i := range CellCount {
		x, y := XY(i)
		require.True(t, InBounds(x, y))
		require.Equal(t, i, Index(x, y))
	}
	assert.Equal(t, 0, Index(0, 0))
	assert.Equal(t, 80, Index(8, 8))
	assert.Equal(t, 10, Index(1, 1))
}

func TestGridEmptyCells(t *testing.T) {
	var g Grid
	assert.Len(t, g.EmptyCells(nil), CellCount)
	assert.Equal(t, CellCount, g.EmptyCount())

	g = noRunPattern()
	g.Set(40, Empty)
	g.Set(3, Empty)
	g.Set(77, Empty)

	assert.Equal(t, []int{3, 40, 77}, g.EmptyCells(nil))
	assert.Equal(t, 3, g.EmptyCount())

	// Appends to the given slice.
	assert.Equal(t, []int{-1, 3, 40, 77}, g.EmptyCells([]int{-1}))
}

func TestGridIsFull(t *testing.T) {
	var g Grid
	assert.False(t, g.IsFull())

	g = noRunPattern()
	assert.True(t, g.IsFull())

	g.Set(80, Empty)
	assert.False(t, g.IsFull())
}

func TestGridCopiesAreIndependent(t *testing.T) {
	a := board("1")
	b := a
	b.Set(0, 2)

	assert.Equal(t, Color(1), a.At(0))
	assert.False(t, a.Equal(&b))

	cells := a.Cells()
	cells[0] = 5
	assert.Equal(t, Color(1), a.At(0))
}

func TestColorValid(t *testing.T) {
	assert.True(t, Empty.Valid())
	assert.True(t, Color(ColorCount).Valid())
	assert.False(t, Color(ColorCount+1).Valid())
}
