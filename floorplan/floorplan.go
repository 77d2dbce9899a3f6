// Package floorplan contains the floor-plan document model shared by the
// aisle navigation, rendering and editing layers.
package floorplan

// ZoneKind classifies a marked region of the floor.
type ZoneKind string

const (
	// ZoneRestricted blocks navigation, like a wall.
	ZoneRestricted ZoneKind = "restricted"
	// ZoneStaging marks a staging area; walkable, annotation only.
	ZoneStaging ZoneKind = "staging"
	// ZoneDock marks a loading dock; walkable, annotation only.
	ZoneDock ZoneKind = "dock"
)

// Wall is a solid structural obstacle.
type Wall struct {
	Rect
}

// Shelf is a storage rack footprint. The label is shown by the renderer
// and has no effect on navigation.
type Shelf struct {
	Rect
	Label string `json:"label,omitempty"`
}

// Zone marks a region of the floor. Restricted zones block navigation;
// every other kind is an annotation.
type Zone struct {
	Rect
	Kind  ZoneKind `json:"kind"`
	Label string   `json:"label,omitempty"`
}

// Blocking reports whether the zone participates in obstacle rasterization.
func (z Zone) Blocking() bool {
	return z.Kind == ZoneRestricted
}

// Location is a named point of interest, typically imported from the
// inventory system. Locations annotate direction steps as landmarks.
type Location struct {
	ID   string  `json:"id" csv:"id"`
	Name string  `json:"name" csv:"name"`
	X    float64 `json:"x" csv:"x"`
	Y    float64 `json:"y" csv:"y"`
}

// Position returns the location as a Point.
func (l Location) Position() Point {
	return Point{X: l.X, Y: l.Y}
}

// FloorPlan is a complete floor document: the floor extent, its obstacles
// and its named locations. Dimensions are in inches.
type FloorPlan struct {
	Name      string     `json:"name,omitempty"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	CellSize  float64    `json:"cellSize,omitempty"` // navigation cell size; 0 = configured default
	Walls     []Wall     `json:"walls,omitempty"`
	Shelves   []Shelf    `json:"shelves,omitempty"`
	Zones     []Zone     `json:"zones,omitempty"`
	Locations []Location `json:"locations,omitempty"`
}

// Obstacles returns every rectangle that blocks navigation: walls, shelf
// footprints and restricted zones, in document order.
func (p *FloorPlan) Obstacles() []Rect {
	out := make([]Rect, 0, len(p.Walls)+len(p.Shelves)+len(p.Zones))
	for _, w := range p.Walls {
		out = append(out, w.Rect)
	}
	for _, s := range p.Shelves {
		out = append(out, s.Rect)
	}
	for _, z := range p.Zones {
		if z.Blocking() {
			out = append(out, z.Rect)
		}
	}
	return out
}

// LocationByID returns the location with the given id, or false.
func (p *FloorPlan) LocationByID(id string) (Location, bool) {
	for _, l := range p.Locations {
		if l.ID == id {
			return l, true
		}
	}
	return Location{}, false
}

// Bounds returns the floor extent as a rectangle anchored at the origin.
func (p *FloorPlan) Bounds() Rect {
	return Rect{X2: p.Width, Y2: p.Height}
}

// Clone creates a deep copy of the plan.
func (p *FloorPlan) Clone() *FloorPlan {
	if p == nil {
		return nil
	}
	clone := &FloorPlan{
		Name:     p.Name,
		Width:    p.Width,
		Height:   p.Height,
		CellSize: p.CellSize,
	}
	if p.Walls != nil {
		clone.Walls = make([]Wall, len(p.Walls))
		copy(clone.Walls, p.Walls)
	}
	if p.Shelves != nil {
		clone.Shelves = make([]Shelf, len(p.Shelves))
		copy(clone.Shelves, p.Shelves)
	}
	if p.Zones != nil {
		clone.Zones = make([]Zone, len(p.Zones))
		copy(clone.Zones, p.Zones)
	}
	if p.Locations != nil {
		clone.Locations = make([]Location, len(p.Locations))
		copy(clone.Locations, p.Locations)
	}
	return clone
}

// RemoveObstacleAt deletes the first wall, shelf or zone whose rectangle
// contains the point, searching in that order. Returns true if anything
// was removed.
func (p *FloorPlan) RemoveObstacleAt(pt Point) bool {
	for i, w := range p.Walls {
		if w.Contains(pt) {
			p.Walls = append(p.Walls[:i], p.Walls[i+1:]...)
			return true
		}
	}
	for i, s := range p.Shelves {
		if s.Contains(pt) {
			p.Shelves = append(p.Shelves[:i], p.Shelves[i+1:]...)
			return true
		}
	}
	for i, z := range p.Zones {
		if z.Contains(pt) {
			p.Zones = append(p.Zones[:i], p.Zones[i+1:]...)
			return true
		}
	}
	return false
}
