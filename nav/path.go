// Package nav provides grid-based route planning over a floor plan:
// obstacle rasterization, A* search with an octile heuristic, path
// simplification and turn-by-turn directions.
package nav

import (
	"fmt"
	"strings"
)

// Waypoint is a point along a route in world coordinates (inches),
// together with the grid cell it passes through.
type Waypoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	GridX int     `json:"gridX"`
	GridY int     `json:"gridY"`
}

// Path is an ordered sequence of waypoints. Cost is the A* walk cost in
// cell units: 1 per orthogonal step, √2 per diagonal step. A Path is
// produced fresh per query and never mutated after being returned.
type Path struct {
	Points []Waypoint
	Cost   float64
}

// Length returns the number of waypoints in the path.
func (p *Path) Length() int {
	if p == nil {
		return 0
	}
	return len(p.Points)
}

// IsEmpty returns true if the path has no waypoints.
func (p *Path) IsEmpty() bool {
	return p.Length() == 0
}

// String renders the path for debugging.
func (p *Path) String() string {
	if p.IsEmpty() {
		return "empty path"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Path (cost=%.2f): ", p.Cost)
	for i, wp := range p.Points {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		fmt.Fprintf(&sb, "(%d,%d)", wp.GridX, wp.GridY)
	}
	return sb.String()
}
