package core

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnOnePicksFromEmptyCells(t *testing.T) {
	g := noRunPattern()
	for _, i := range []int{5, 6, 7, 60} {
		g.Set(i, Empty)
	}

	// Third empty cell, colour index 3 -> colour 4.
	s := NewSpawner(newScriptedRandom(2, 3))
	cell, ok := s.SpawnOne(&g)

	require.True(t, ok)
	assert.Equal(t, 7, cell)
	assert.Equal(t, Color(4), g.At(7))
	assert.Equal(t, 3, g.EmptyCount())
}

func TestSpawnOneFullGrid(t *testing.T) {
	g := noRunPattern()
	before := g

	s := NewSpawner(newScriptedRandom())
	_, ok := s.SpawnOne(&g)

	assert.False(t, ok)
	assert.Equal(t, before, g)
}

func TestSpawnManyStopsWhenFull(t *testing.T) {
	tests := []struct {
		name    string
		empty   []int
		n       int
		spawned int
	}{
		{"fewer than free", []int{1, 2, 3, 4}, 3, 3},
		{"exactly free", []int{1, 2, 3}, 3, 3},
		{"more than free", []int{10, 20}, 5, 2},
		{"nothing free", nil, 3, 0},
		{"zero requested", []int{1}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := noRunPattern()
			for _, i := range tc.empty {
				g.Set(i, Empty)
			}

			s := NewSpawner(rand.New(rand.NewSource(1)))
			cells := s.SpawnMany(&g, tc.n, nil)

			assert.Len(t, cells, tc.spawned)
			assert.Equal(t, len(tc.empty)-tc.spawned, g.EmptyCount())
			for _, i := range cells {
				assert.Contains(t, tc.empty, i)
				assert.NotEqual(t, Empty, g.At(i))
			}
		})
	}
}

func TestSpawnColoursInRange(t *testing.T) {
	var g Grid
	s := NewSpawner(rand.New(rand.NewSource(99)))
	s.SpawnMany(&g, CellCount, nil)

	require.True(t, g.IsFull())
	for i := range CellCount {
		c := g.At(i)
		assert.True(t, c >= 1 && c <= ColorCount, "cell %d has colour %d", i, c)
	}
}

// A free cell right after a long occupied stretch must not be favoured.
func TestSpawnIsUniformOverEmptyCells(t *testing.T) {
	const trials = 20000

	template := noRunPattern()
	// Cells 0 and 1 are free; everything after them is occupied, so a
	// random-index-then-probe spawner would pick cell 0 almost always.
	template.Set(0, Empty)
	template.Set(1, Empty)

	rng := rand.New(rand.NewSource(3))
	s := NewSpawner(rng)
	hits := map[int]int{}
	for range trials {
		g := template
		cell, ok := s.SpawnOne(&g)
		require.True(t, ok)
		hits[cell]++
	}

	assert.Len(t, hits, 2)
	assert.InDelta(t, trials/2, hits[0], trials*0.05)
	assert.InDelta(t, trials/2, hits[1], trials*0.05)
}
