package nav

import (
	"aisle/floorplan"
)

// Options configures a Planner. Zero values select defaults: the floor
// plan's own cell size (or DefaultCellSize), DefaultWalkSpeed and
// DefaultLandmarkRadiusCells.
type Options struct {
	CellSize            float64
	WalkSpeed           float64
	LandmarkRadiusCells float64
}

// Route is the full answer to a wayfinding query: the simplified path
// plus turn-by-turn directions.
type Route struct {
	Path       *Path      `json:"path"`
	Directions Directions `json:"directions"`
}

// Planner owns the navigation state derived from a floor plan: the
// rasterized occupancy grid and a path finder over it. It is not safe
// for concurrent use; callers that share one across goroutines must
// serialize access themselves.
type Planner struct {
	plan          *floorplan.FloorPlan
	grid          *Grid
	finder        *PathFinder
	cellSize      float64
	walkSpeed     float64
	landmarkCells float64
}

// NewPlanner builds the grid for the given floor plan and returns a
// planner ready to answer route queries.
func NewPlanner(plan *floorplan.FloorPlan, opts Options) *Planner {
	cellSize := opts.CellSize
	if cellSize <= 0 {
		cellSize = plan.CellSize
	}
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	speed := opts.WalkSpeed
	if speed <= 0 {
		speed = DefaultWalkSpeed
	}
	radiusCells := opts.LandmarkRadiusCells
	if radiusCells <= 0 {
		radiusCells = DefaultLandmarkRadiusCells
	}
	p := &Planner{
		plan:          plan,
		cellSize:      cellSize,
		walkSpeed:     speed,
		landmarkCells: radiusCells,
	}
	p.Rebuild()
	return p
}

// Rebuild re-rasterizes the grid from the current floor plan contents.
// Call it after walls, shelves or zones change.
func (p *Planner) Rebuild() {
	grid := NewGrid(p.plan.Width, p.plan.Height, p.cellSize)
	for _, r := range p.plan.Obstacles() {
		grid.AddObstacle(r)
	}
	p.grid = grid
	p.finder = NewPathFinder(grid)
}

// Plan returns the floor plan this planner was built from.
func (p *Planner) Plan() *floorplan.FloorPlan {
	return p.plan
}

// Grid returns the current occupancy grid.
func (p *Planner) Grid() *Grid {
	return p.grid
}

// Route finds a path between two world-coordinate points and generates
// directions for it. Returns nil when no route exists, including when
// either endpoint is blocked or outside the plan.
func (p *Planner) Route(from, to floorplan.Point) *Route {
	path := p.finder.FindPath(from.X, from.Y, to.X, to.Y)
	if path == nil {
		return nil
	}
	return &Route{
		Path: path,
		Directions: GenerateDirections(path, p.plan.Locations, DirectionsOptions{
			CellSize:            p.cellSize,
			WalkSpeed:           p.walkSpeed,
			LandmarkRadiusCells: p.landmarkCells,
		}),
	}
}

// RouteBetween finds a route between two named locations. Returns nil
// when either ID is unknown or no route exists.
func (p *Planner) RouteBetween(fromID, toID string) *Route {
	from, ok := p.plan.LocationByID(fromID)
	if !ok {
		return nil
	}
	to, ok := p.plan.LocationByID(toID)
	if !ok {
		return nil
	}
	return p.Route(from.Position(), to.Position())
}
