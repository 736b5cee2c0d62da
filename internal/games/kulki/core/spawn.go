package core

// Spawner places randomly coloured balls on uniformly chosen empty cells.
type Spawner struct {
	rng   Random
	empty []int // scratch list of empty cells, rebuilt on every spawn
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng Random) *Spawner {
	return &Spawner{
		rng:   rng,
		empty: make([]int, 0, CellCount),
	}
}

// SpawnOne puts one ball of a random colour on a random empty cell.
// Returns the chosen index and true, or false if the grid is full.
//
// The cell is drawn from an explicit list of empty cells. Picking a random
// index and probing forward would favour cells right after long occupied
// stretches.
func (s *Spawner) SpawnOne(g *Grid) (int, bool) {
	s.empty = g.EmptyCells(s.empty[:0])
	if len(s.empty) == 0 {
		return 0, false
	}

	cell := s.empty[s.rng.Intn(len(s.empty))]
	g.Set(cell, Color(s.rng.Intn(ColorCount)+1))
	return cell, true
}

// SpawnMany calls SpawnOne n times, appending the filled indices to dst.
// Once the grid is full the remaining calls do nothing.
func (s *Spawner) SpawnMany(g *Grid, n int, dst []int) []int {
	for range n {
		cell, ok := s.SpawnOne(g)
		if !ok {
			break
		}
		dst = append(dst, cell)
	}
	return dst
}
