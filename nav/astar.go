package nav

import (
	"container/heap"
	"math"
)

// node is an open-set entry for one grid cell.
type node struct {
	cell  int // flat cell index
	g     float64
	h     float64
	f     float64
	index int // position in the heap
}

// nodeQueue is a min-heap of nodes ordered by f cost.
type nodeQueue []*node

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	// Tie-break toward the goal so equal-cost frontiers drain faster.
	return q[i].h < q[j].h
}

func (q nodeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *nodeQueue) Push(x interface{}) {
	n := x.(*node)
	n.index = len(*q)
	*q = append(*q, n)
}

func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// Cell search states. Zero value means the cell is untouched.
const (
	cellNew uint8 = iota
	cellOpen
	cellClosed
)

// neighborOffsets covers the eight neighbors of a cell. Orthogonal
// steps cost 1, diagonal steps √2.
var neighborOffsets = [8]struct {
	dc, dr   int
	cost     float64
	diagonal bool
}{
	{0, -1, 1, false},
	{1, 0, 1, false},
	{0, 1, 1, false},
	{-1, 0, 1, false},
	{1, -1, math.Sqrt2, true},
	{1, 1, math.Sqrt2, true},
	{-1, 1, math.Sqrt2, true},
	{-1, -1, math.Sqrt2, true},
}

// octile is the octile-distance heuristic for 8-directional movement:
// max(dx,dy) + (√2-1)·min(dx,dy). It is admissible and consistent for
// the unit/√2 step costs above, so the first time the goal is popped
// the path is optimal.
func octile(dc, dr int) float64 {
	dx := math.Abs(float64(dc))
	dy := math.Abs(float64(dr))
	if dx > dy {
		return dx + (math.Sqrt2-1)*dy
	}
	return dy + (math.Sqrt2-1)*dx
}

// PathFinder runs A* searches over a Grid. The zero value is not
// usable; create one with NewPathFinder. Scratch state is reused
// between searches, so a PathFinder must not be shared across
// goroutines without external locking.
type PathFinder struct {
	grid *Grid

	open    nodeQueue
	nodes   []*node
	state   []uint8
	parent  []int32
	touched []int
}

// NewPathFinder creates a path finder bound to the given grid.
func NewPathFinder(g *Grid) *PathFinder {
	size := g.cols * g.rows
	return &PathFinder{
		grid:   g,
		nodes:  make([]*node, size),
		state:  make([]uint8, size),
		parent: make([]int32, size),
	}
}

// Grid returns the grid this finder searches.
func (f *PathFinder) Grid() *Grid {
	return f.grid
}

// FindPath searches for a route between two world-coordinate points and
// returns the simplified path, or nil when either endpoint maps to a
// cell that is out of bounds or blocked, or when no route exists. It
// never returns an error; nil is the single "no route" answer.
func (f *PathFinder) FindPath(startX, startY, endX, endY float64) *Path {
	return SimplifyPath(f.findRawPath(startX, startY, endX, endY))
}

// findRawPath runs the search and returns the cell-by-cell path through
// every intermediate cell center, before simplification.
func (f *PathFinder) findRawPath(startX, startY, endX, endY float64) *Path {
	g := f.grid
	sc, sr := g.WorldToCell(startX, startY)
	ec, er := g.WorldToCell(endX, endY)

	if !g.IsWalkable(sc, sr) || !g.IsWalkable(ec, er) {
		return nil
	}

	start := g.index(sc, sr)
	goal := g.index(ec, er)
	if start == goal {
		x, y := g.CellCenter(sc, sr)
		return &Path{Points: []Waypoint{{X: x, Y: y, GridX: sc, GridY: sr}}}
	}

	f.reset()

	sn := &node{cell: start, g: 0, h: octile(ec-sc, er-sr)}
	sn.f = sn.h
	f.nodes[start] = sn
	f.state[start] = cellOpen
	f.parent[start] = -1
	f.touched = append(f.touched, start)
	heap.Push(&f.open, sn)

	// Each cell closes at most once, so this bound only guards against
	// bookkeeping bugs.
	maxIterations := g.cols * g.rows

	for iter := 0; f.open.Len() > 0 && iter < maxIterations; iter++ {
		current := heap.Pop(&f.open).(*node)
		if current.cell == goal {
			return f.reconstruct(current)
		}
		f.state[current.cell] = cellClosed

		cc := current.cell % g.cols
		cr := current.cell / g.cols

		for _, off := range neighborOffsets {
			nc := cc + off.dc
			nr := cr + off.dr
			if !g.IsWalkable(nc, nr) {
				continue
			}
			// A diagonal step must not cut a corner: both cells it
			// brushes past have to be open too.
			if off.diagonal {
				if !g.IsWalkable(cc+off.dc, cr) || !g.IsWalkable(cc, cr+off.dr) {
					continue
				}
			}

			cell := g.index(nc, nr)
			tentative := current.g + off.cost

			switch f.state[cell] {
			case cellClosed:
				continue
			case cellOpen:
				n := f.nodes[cell]
				if tentative < n.g {
					n.g = tentative
					n.f = tentative + n.h
					f.parent[cell] = int32(current.cell)
					heap.Fix(&f.open, n.index)
				}
			default:
				n := &node{
					cell: cell,
					g:    tentative,
					h:    octile(ec-nc, er-nr),
				}
				n.f = n.g + n.h
				f.nodes[cell] = n
				f.state[cell] = cellOpen
				f.parent[cell] = int32(current.cell)
				f.touched = append(f.touched, cell)
				heap.Push(&f.open, n)
			}
		}
	}

	return nil
}

// reset clears the scratch state dirtied by the previous search.
func (f *PathFinder) reset() {
	for _, cell := range f.touched {
		f.nodes[cell] = nil
		f.state[cell] = cellNew
		f.parent[cell] = 0
	}
	f.touched = f.touched[:0]
	f.open = f.open[:0]
}

// reconstruct walks the parent links back from the goal and builds the
// waypoint list in travel order.
func (f *PathFinder) reconstruct(goal *node) *Path {
	g := f.grid

	count := 0
	for cell := int32(goal.cell); cell >= 0; cell = f.parent[cell] {
		count++
	}

	points := make([]Waypoint, count)
	i := count - 1
	for cell := int32(goal.cell); cell >= 0; cell = f.parent[cell] {
		col := int(cell) % g.cols
		row := int(cell) / g.cols
		x, y := g.CellCenter(col, row)
		points[i] = Waypoint{X: x, Y: y, GridX: col, GridY: row}
		i--
	}

	return &Path{Points: points, Cost: goal.g}
}
