package kulki

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		name     string
		expected int
	}{
		{"A1", 0},
		{"a1", 0},
		{"B1", 1},
		{"A2", 9},
		{"b2", 10},
		{"E5", 40},
		{"I9", 80},
		{"i9", 80},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCell(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestParseCellInvalid(t *testing.T) {
	for _, name := range []string{"", "A", "A10", "J1", "A0", "11", "AA", " A1", "@1", "a:"} {
		t.Run(name, func(t *testing.T) {
			got, err := ParseCell(name)
			require.ErrorIs(t, err, ErrInvalidCell)
			assert.Equal(t, -1, got)
		})
	}
}

func TestCellNameRoundTrip(t *testing.T) {
	for i := range 81 {
		name := CellName(i)
		got, err := ParseCell(name)
		require.NoError(t, err, name)
		assert.Equal(t, i, got, name)
	}
	assert.Equal(t, "A1", CellName(0))
	assert.Equal(t, "I9", CellName(80))
	assert.Equal(t, "??", CellName(81))
	assert.Equal(t, "??", CellName(-1))
}

func TestParseMove(t *testing.T) {
	from, to, err := ParseMove("A1 b1")
	require.NoError(t, err)
	assert.Equal(t, 0, from)
	assert.Equal(t, 1, to)

	from, to, err = ParseMove("  a1\tI9 ")
	require.NoError(t, err)
	assert.Equal(t, 0, from)
	assert.Equal(t, 80, to)

	for _, cmd := range []string{"", "A1", "A1 B1 C1", "A1 Z9", "X0 A1"} {
		_, _, err := ParseMove(cmd)
		assert.ErrorIs(t, err, ErrInvalidCell, cmd)
	}
}
