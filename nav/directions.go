package nav

import (
	"math"

	"aisle/floorplan"
)

// DefaultWalkSpeed is the assumed walking pace in feet per second used
// for time estimates.
const DefaultWalkSpeed = 4.0

// DefaultLandmarkRadiusCells is the landmark search radius as a
// multiple of the cell size.
const DefaultLandmarkRadiusCells = 2.0

// Step is one turn-by-turn instruction derived from a path segment.
type Step struct {
	Index        int      `json:"stepIndex"`
	Instruction  string   `json:"instruction"`
	Icon         string   `json:"icon"`
	DistanceFeet int      `json:"distanceFeet"`
	Landmark     string   `json:"landmark,omitempty"`
	Position     Waypoint `json:"position"`
}

// Directions is a turn-by-turn instruction list with summary totals.
// TotalDistanceFeet is the summed segment length converted from inches
// and rounded; EstimatedMinutes is derived from that rounded total.
type Directions struct {
	Steps             []Step `json:"directions"`
	TotalDistanceFeet int    `json:"totalDistanceFeet"`
	EstimatedMinutes  int    `json:"estimatedMinutes"`
}

// DirectionsOptions tunes direction generation. Zero values select the
// defaults.
type DirectionsOptions struct {
	// CellSize scales the landmark search radius: a location within
	// LandmarkRadiusCells×CellSize inches of a step's starting waypoint
	// is called out. Zero falls back to DefaultCellSize.
	CellSize float64

	// WalkSpeed is the walking pace in feet per second for the time
	// estimate. Zero falls back to DefaultWalkSpeed.
	WalkSpeed float64

	// LandmarkRadiusCells overrides the landmark radius multiplier.
	// Zero falls back to DefaultLandmarkRadiusCells.
	LandmarkRadiusCells float64
}

// GenerateDirections turns a simplified path into human-readable
// instructions, one step per segment. Each step is classified by its
// dominant axis of movement and annotated with the nearest location
// when one sits within the landmark radius of the step's start. A nil
// path or one with fewer than two waypoints yields empty directions.
func GenerateDirections(p *Path, locations []floorplan.Location, opts DirectionsOptions) Directions {
	cellSize := opts.CellSize
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

	dirs := Directions{Steps: []Step{}}
	if p.Length() < 2 {
		return dirs
	}

	landmarkRadius := radiusCells * cellSize
	totalInches := 0.0

	for i := 0; i < len(p.Points)-1; i++ {
		from := p.Points[i]
		to := p.Points[i+1]

		dx := to.X - from.X
		dy := to.Y - from.Y
		inches := math.Hypot(dx, dy)
		totalInches += inches

		instruction, icon := classifyHeading(dx, dy)

		step := Step{
			Index:        i,
			Instruction:  instruction,
			Icon:         icon,
			DistanceFeet: int(math.Round(inches / 12)),
			Landmark:     findLandmark(from, locations, landmarkRadius),
			Position:     from,
		}
		dirs.Steps = append(dirs.Steps, step)
	}

	dirs.TotalDistanceFeet = int(math.Round(totalInches / 12))
	dirs.EstimatedMinutes = int(math.Round(float64(dirs.TotalDistanceFeet) / speed))
	return dirs
}

// classifyHeading picks the instruction text and arrow for a segment by
// its dominant axis. Ties go to the vertical axis. Screen coordinates:
// y grows downward.
func classifyHeading(dx, dy float64) (instruction, icon string) {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return "Turn right", "→"
		}
		return "Turn left", "←"
	}
	if dy > 0 {
		return "Head down", "↓"
	}
	return "Head up", "↑"
}

// findLandmark returns the name of the first location in list order
// within radius inches of the waypoint, or "" when none qualifies.
func findLandmark(wp Waypoint, locations []floorplan.Location, radius float64) string {
	for _, loc := range locations {
		if math.Hypot(loc.X-wp.X, loc.Y-wp.Y) <= radius {
			return loc.Name
		}
	}
	return ""
}
