package nav

import (
	"math"

	"aisle/floorplan"
)

// DefaultCellSize is the grid resolution in inches used when a floor
// plan does not specify one. Two-foot cells are fine-grained enough for
// aisle-width geometry without blowing up the search space.
const DefaultCellSize = 24.0

// Grid is a uniform occupancy grid over a floor plan's extent. Cells are
// square with side cellSize, stored walkable/blocked in a flat slice
// indexed row*cols+col. Coordinates outside the grid are treated as
// blocked.
type Grid struct {
	cols     int
	rows     int
	cellSize float64
	width    float64
	height   float64

	walkable  []bool
	obstacles []floorplan.Rect
}

// NewGrid creates a grid covering width×height inches of world space.
// Dimensions are divided by cellSize and rounded up, so a partial cell
// at the right or bottom edge still gets a full cell. A cellSize of
// zero or less falls back to DefaultCellSize.
func NewGrid(width, height, cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g := &Grid{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		width:    width,
		height:   height,
		walkable: make([]bool, cols*rows),
	}
	for i := range g.walkable {
		g.walkable[i] = true
	}
	return g
}

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the cell side length in inches.
func (g *Grid) CellSize() float64 { return g.cellSize }

// Width returns the covered world width in inches.
func (g *Grid) Width() float64 { return g.width }

// Height returns the covered world height in inches.
func (g *Grid) Height() float64 { return g.height }

func (g *Grid) index(col, row int) int {
	return row*g.cols + col
}

// InBounds reports whether the cell coordinates fall inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// IsWalkable reports whether the cell is inside the grid and not
// blocked by an obstacle.
func (g *Grid) IsWalkable(col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	return g.walkable[g.index(col, row)]
}

// WorldToCell converts world coordinates to the grid cell containing
// them. The result may be out of bounds; callers check with InBounds.
func (g *Grid) WorldToCell(x, y float64) (col, row int) {
	return int(math.Floor(x / g.cellSize)), int(math.Floor(y / g.cellSize))
}

// CellCenter returns the world coordinates of the cell's center point.
func (g *Grid) CellCenter(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * g.cellSize, (float64(row) + 0.5) * g.cellSize
}

// CellSpan returns the inclusive cell range a rectangle covers, clamped
// to the grid. The span is floor(min/cellSize) through
// ceil(max/cellSize)-1 on each axis, so a rectangle that merely touches
// a cell boundary does not claim the neighboring cell. A rectangle
// entirely outside the grid yields an empty span (c1 > c2 or r1 > r2).
func (g *Grid) CellSpan(r floorplan.Rect) (c1, r1, c2, r2 int) {
	r = r.Normalize()
	c1 = int(math.Floor(r.X1 / g.cellSize))
	r1 = int(math.Floor(r.Y1 / g.cellSize))
	c2 = int(math.Ceil(r.X2/g.cellSize)) - 1
	r2 = int(math.Ceil(r.Y2/g.cellSize)) - 1

	if c1 < 0 {
		c1 = 0
	}
	if r1 < 0 {
		r1 = 0
	}
	if c2 >= g.cols {
		c2 = g.cols - 1
	}
	if r2 >= g.rows {
		r2 = g.rows - 1
	}
	return c1, r1, c2, r2
}

// AddObstacle blocks every cell whose footprint the rectangle overlaps,
// per CellSpan. Portions outside the grid are clamped away without
// complaint.
func (g *Grid) AddObstacle(r floorplan.Rect) {
	c1, r1, c2, r2 := g.CellSpan(r)
	for row := r1; row <= r2; row++ {
		for col := c1; col <= c2; col++ {
			g.walkable[g.index(col, row)] = false
		}
	}
	g.obstacles = append(g.obstacles, r.Normalize())
}

// ClearObstacles resets every cell to walkable and drops the recorded
// obstacle list.
func (g *Grid) ClearObstacles() {
	for i := range g.walkable {
		g.walkable[i] = true
	}
	g.obstacles = g.obstacles[:0]
}

// Obstacles returns the rectangles rasterized into the grid, in the
// order they were added. The slice is shared; callers must not modify.
func (g *Grid) Obstacles() []floorplan.Rect {
	return g.obstacles
}

// BlockedCount returns the number of blocked cells, mostly useful in
// tests and diagnostics.
func (g *Grid) BlockedCount() int {
	n := 0
	for _, w := range g.walkable {
		if !w {
			n++
		}
	}
	return n
}
