package render

import (
	"strings"
	"testing"

	"aisle/floorplan"
	"aisle/nav"
)

func TestCanvas_SetGetClipping(t *testing.T) {
	c := NewCanvas(5, 3)

	c.Set(2, 1, 'x')
	if got := c.Get(2, 1); got != 'x' {
		t.Errorf("got %q, want 'x'", got)
	}

	// Out-of-bounds writes are dropped, reads come back as space.
	c.Set(-1, 0, 'y')
	c.Set(5, 0, 'y')
	c.Set(0, 3, 'y')
	for _, p := range [][2]int{{-1, 0}, {5, 0}, {0, 3}} {
		if got := c.Get(p[0], p[1]); got != ' ' {
			t.Errorf("Get(%d,%d) = %q, want space", p[0], p[1], got)
		}
	}
}

func TestCanvas_InvalidSize(t *testing.T) {
	if NewCanvas(0, 5) != nil || NewCanvas(5, -1) != nil {
		t.Error("expected nil canvas for non-positive dimensions")
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	tests := []struct {
		name  string
		from  [2]int
		to    [2]int
		cells [][2]int
	}{
		{
			name:  "Horizontal",
			from:  [2]int{1, 2},
			to:    [2]int{4, 2},
			cells: [][2]int{{1, 2}, {2, 2}, {3, 2}, {4, 2}},
		},
		{
			name:  "Vertical reversed",
			from:  [2]int{3, 4},
			to:    [2]int{3, 1},
			cells: [][2]int{{3, 4}, {3, 3}, {3, 2}, {3, 1}},
		},
		{
			name:  "Diagonal",
			from:  [2]int{0, 0},
			to:    [2]int{3, 3},
			cells: [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(6, 6)
			c.DrawLine(tt.from[0], tt.from[1], tt.to[0], tt.to[1], '*')

			for _, cell := range tt.cells {
				if got := c.Get(cell[0], cell[1]); got != '*' {
					t.Errorf("cell (%d,%d) = %q, want '*'", cell[0], cell[1], got)
				}
			}

			marked := 0
			for y := 0; y < 6; y++ {
				for x := 0; x < 6; x++ {
					if c.Get(x, y) == '*' {
						marked++
					}
				}
			}
			if marked != len(tt.cells) {
				t.Errorf("line marked %d cells, want %d", marked, len(tt.cells))
			}
		})
	}
}

func TestCanvas_DrawTextClips(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawText(2, 0, "hello")
	if got := c.String(); got != "  he" {
		t.Errorf("got %q, want %q", got, "  he")
	}
}

// renderPlan builds the standard test fixture: a 240×240-inch room on a
// 24-inch grid (10×10 cells inside a 12×12 frame).
func renderPlan() *floorplan.FloorPlan {
	return &floorplan.FloorPlan{
		Name:     "render-fixture",
		Width:    240,
		Height:   240,
		CellSize: 24,
		Walls: []floorplan.Wall{
			{Rect: floorplan.NewRect(0, 0, 240, 24)},
		},
		Shelves: []floorplan.Shelf{
			{Rect: floorplan.NewRect(96, 48, 144, 192), Label: "A1"},
		},
		Zones: []floorplan.Zone{
			{Rect: floorplan.NewRect(0, 216, 48, 240), Kind: floorplan.ZoneRestricted, Label: "No entry"},
			{Rect: floorplan.NewRect(192, 216, 240, 240), Kind: floorplan.ZoneStaging, Label: "Staging"},
		},
		Locations: []floorplan.Location{
			{ID: "recv", Name: "Receiving", X: 36, Y: 120},
			{ID: "ship", Name: "Shipping", X: 204, Y: 120},
		},
	}
}

func TestRenderPlan_Glyphs(t *testing.T) {
	plan := renderPlan()
	p := nav.NewPlanner(plan, nav.Options{})
	r := NewRenderer()

	c := r.PlanCanvas(plan, p.Grid())
	if c == nil {
		t.Fatal("PlanCanvas returned nil")
	}
	t.Logf("plan:\n%s", c.String())

	// Frame corners. Grid is 10×10, canvas 12×12.
	if c.Get(0, 0) != '╭' || c.Get(11, 0) != '╮' || c.Get(0, 11) != '╰' || c.Get(11, 11) != '╯' {
		t.Error("frame corners missing")
	}

	// Wall along the top row of cells.
	for col := 1; col <= 10; col++ {
		if got := c.Get(col, 1); got != GlyphWall {
			t.Errorf("wall cell (%d,1) = %q, want %q", col, got, GlyphWall)
		}
	}

	// Shelf footprint: columns 4-5, rows 2-7 in grid space. Its top-left
	// pair carries the label instead of shading.
	if c.Get(5, 3) != 'A' || c.Get(6, 3) != '1' {
		t.Errorf("shelf label not drawn: got %q%q", c.Get(5, 3), c.Get(6, 3))
	}
	if got := c.Get(5, 4); got != GlyphShelf {
		t.Errorf("shelf cell = %q, want %q", got, GlyphShelf)
	}

	// Zones: restricted shaded, staging dotted.
	if got := c.Get(1, 10); got != GlyphRestricted {
		t.Errorf("restricted cell = %q, want %q", got, GlyphRestricted)
	}
	if got := c.Get(9, 10); got != GlyphZone {
		t.Errorf("staging cell = %q, want %q", got, GlyphZone)
	}

	// Locations.
	if got := c.Get(2, 6); got != GlyphLocation {
		t.Errorf("location cell = %q, want %q", got, GlyphLocation)
	}
}

func TestRenderPlan_Legend(t *testing.T) {
	plan := renderPlan()
	p := nav.NewPlanner(plan, nav.Options{})

	out := NewRenderer().RenderPlan(plan, p.Grid())
	if !strings.Contains(out, "◆ Receiving (recv)") {
		t.Errorf("legend missing Receiving:\n%s", out)
	}
	if !strings.Contains(out, "◆ Shipping (ship)") {
		t.Errorf("legend missing Shipping:\n%s", out)
	}
}

func TestRenderRoute(t *testing.T) {
	plan := renderPlan()
	plan.Walls = nil // keep the shelf detour, drop the top wall
	p := nav.NewPlanner(plan, nav.Options{})

	route := p.RouteBetween("recv", "ship")
	if route == nil {
		t.Fatal("expected a route")
	}

	out := NewRenderer().RenderRoute(plan, p.Grid(), route)
	t.Logf("route:\n%s", out)

	lines := strings.Split(out, "\n")
	if len(lines) < 12 {
		t.Fatalf("output too short: %d lines", len(lines))
	}

	// Endpoint markers replace the location diamonds.
	frame := lines[:12]
	joined := strings.Join(frame, "\n")
	if !strings.ContainsRune(joined, GlyphStart) {
		t.Error("start marker missing")
	}
	if !strings.ContainsRune(joined, GlyphEnd) {
		t.Error("end marker missing")
	}

	if !strings.Contains(out, "Route: 21 ft") {
		t.Errorf("summary missing or wrong:\n%s", out)
	}
	if !strings.Contains(out, "1. ") {
		t.Error("numbered steps missing")
	}
}

func TestRenderRoute_NoRoute(t *testing.T) {
	plan := renderPlan()
	p := nav.NewPlanner(plan, nav.Options{})

	out := NewRenderer().RenderRoute(plan, p.Grid(), nil)
	if !strings.Contains(out, "No route found.") {
		t.Errorf("missing no-route notice:\n%s", out)
	}
}

func TestRenderPlan_ShowGrid(t *testing.T) {
	plan := &floorplan.FloorPlan{Name: "empty", Width: 96, Height: 96, CellSize: 24}
	p := nav.NewPlanner(plan, nav.Options{})

	r := NewRenderer()
	r.ShowGrid = true
	c := r.PlanCanvas(plan, p.Grid())

	for _, cell := range [][2]int{{1, 1}, {4, 4}, {2, 3}} {
		if got := c.Get(cell[0], cell[1]); got != GlyphWalkable {
			t.Errorf("walkable cell (%d,%d) = %q, want %q", cell[0], cell[1], got, GlyphWalkable)
		}
	}
}
