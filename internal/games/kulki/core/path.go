package core

// PathFinder answers reachability questions with a breadth-first search
// over empty cells. The frontier and visited marks are reused between
// calls and reset at the start of each search.
type PathFinder struct {
	queue   [CellCount]int
	visited [CellCount]bool
	head    int
	tail    int
}

// NewPathFinder creates a path finder with empty scratch buffers.
func NewPathFinder() *PathFinder {
	return &PathFinder{}
}

// PathExists reports whether a ball at from can travel to to, moving one
// cardinal step at a time through empty cells only.
// It uses a throwaway PathFinder; hot paths should keep their own.
func PathExists(g *Grid, from, to int) bool {
	return NewPathFinder().PathExists(g, from, to)
}

// PathExists reports whether to is reachable from from.
// The source cell is passable even though it holds a ball. The grid is
// never modified.
func (p *PathFinder) PathExists(g *Grid, from, to int) bool {
	if !ValidIndex(from) || !ValidIndex(to) {
		return false
	}

	p.reset()
	p.push(from)

	for p.head < p.tail {
		cur := p.pop()
		if cur == to {
			return true
		}
		p.expand(g, cur)
	}
	return false
}

// Reachable appends to dst every empty cell reachable from from, in
// breadth-first order, and returns the extended slice.
// The source cell itself is not included.
func (p *PathFinder) Reachable(g *Grid, from int, dst []int) []int {
	if !ValidIndex(from) {
		return dst
	}

	p.reset()
	p.push(from)

	for p.head < p.tail {
		cur := p.pop()
		if cur != from {
			dst = append(dst, cur)
		}
		p.expand(g, cur)
	}
	return dst
}

// reset clears the frontier and the visited marks.
func (p *PathFinder) reset() {
	p.head = 0
	p.tail = 0
	for i := range p.visited {
		p.visited[i] = false
	}
}

// push enqueues i and marks it visited.
// Each cell is enqueued at most once, so the queue never overflows.
func (p *PathFinder) push(i int) {
	p.queue[p.tail] = i
	p.tail++
	p.visited[i] = true
}

func (p *PathFinder) pop() int {
	i := p.queue[p.head]
	p.head++
	return i
}

// expand enqueues the empty, unvisited neighbours of cur
// in west, east, north, south order.
func (p *PathFinder) expand(g *Grid, cur int) {
	x, y := XY(cur)
	p.visit(g, x-1, y)
	p.visit(g, x+1, y)
	p.visit(g, x, y-1)
	p.visit(g, x, y+1)
}

func (p *PathFinder) visit(g *Grid, x, y int) {
	if !InBounds(x, y) {
		return
	}
	i := Index(x, y)
	if g.At(i) == Empty && !p.visited[i] {
		p.push(i)
	}
}
