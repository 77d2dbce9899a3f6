package floorplan

import "fmt"

// Validate checks the plan for structural problems: non-positive floor
// dimensions, duplicate or missing location ids, and locations placed
// outside the floor. Obstacle rectangles are allowed to overhang the floor
// edge; the navigation grid clips them.
func (p *FloorPlan) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("floor dimensions must be positive, got %gx%g", p.Width, p.Height)
	}
	if p.CellSize < 0 {
		return fmt.Errorf("cell size must not be negative, got %g", p.CellSize)
	}

	seen := make(map[string]bool, len(p.Locations))
	for i, l := range p.Locations {
		if l.ID == "" {
			return fmt.Errorf("location %d (%q) has no id", i, l.Name)
		}
		if seen[l.ID] {
			return fmt.Errorf("duplicate location id: %s", l.ID)
		}
		seen[l.ID] = true
		if !p.Bounds().Contains(l.Position()) {
			return fmt.Errorf("location %s at (%g,%g) is outside the %gx%g floor",
				l.ID, l.X, l.Y, p.Width, p.Height)
		}
	}
	return nil
}
