package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreForRun(t *testing.T) {
	tests := []struct {
		length   int
		expected int
	}{
		{0, 0},
		{4, 0},
		{5, 5},
		{6, 7},
		{7, 9},
		{8, 11},
		{9, 13},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, ScoreForRun(tc.length), "length %d", tc.length)
	}
}

func TestScoreRunsSumsIndependently(t *testing.T) {
	runs := []Run{
		{Horizontal, 18, 5, 1},
		{Vertical, 22, 5, 1}, // shares a cell with the horizontal run
		{Diagonal, 0, 7, 2},
	}
	assert.Equal(t, 5+5+9, ScoreRuns(runs))
	assert.Equal(t, 0, ScoreRuns(nil))
}
