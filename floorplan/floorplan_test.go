package floorplan

import (
	"math"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNewRectNormalizes(t *testing.T) {
	r := NewRect(10, 20, 4, 6)
	want := Rect{X1: 4, Y1: 6, X2: 10, Y2: 20}
	if r != want {
		t.Errorf("NewRect(10,20,4,6) = %+v, want %+v", r, want)
	}
}

func TestRectDimensions(t *testing.T) {
	r := NewRect(0, 0, 10, 5)
	if r.Width() != 10 {
		t.Errorf("Width = %g, want 10", r.Width())
	}
	if r.Height() != 5 {
		t.Errorf("Height = %g, want 5", r.Height())
	}
	if c := r.Center(); c.X != 5 || c.Y != 2.5 {
		t.Errorf("Center = %+v, want (5,2.5)", c)
	}

	// Width and Height hold on un-normalized corners too.
	flipped := Rect{X1: 10, Y1: 5, X2: 0, Y2: 0}
	if flipped.Width() != 10 || flipped.Height() != 5 {
		t.Errorf("flipped Width/Height = %g/%g, want 10/5", flipped.Width(), flipped.Height())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{X: 15, Y: 15}, true},
		{"corner", Point{X: 10, Y: 10}, true},
		{"edge", Point{X: 20, Y: 15}, true},
		{"left of", Point{X: 9.99, Y: 15}, false},
		{"below", Point{X: 15, Y: 20.01}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("%s: Contains(%+v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}

	// Contains normalizes flipped corners internally.
	flipped := Rect{X1: 20, Y1: 20, X2: 10, Y2: 10}
	if !flipped.Contains(Point{X: 15, Y: 15}) {
		t.Error("Expected flipped rect to contain its center")
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)
	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"overlap", NewRect(5, 5, 15, 15), true},
		{"contained", NewRect(2, 2, 8, 8), true},
		{"touching edge", NewRect(10, 0, 20, 10), true},
		{"touching corner", NewRect(10, 10, 20, 20), true},
		{"disjoint", NewRect(11, 0, 20, 10), false},
		{"above", NewRect(0, -20, 10, -1), false},
	}
	for _, tt := range tests {
		if got := base.Intersects(tt.o); got != tt.want {
			t.Errorf("%s: Intersects = %v, want %v", tt.name, got, tt.want)
		}
		// Intersection is symmetric.
		if got := tt.o.Intersects(base); got != tt.want {
			t.Errorf("%s: reverse Intersects = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPointDistance(t *testing.T) {
	d := Point{X: 0, Y: 0}.DistanceTo(Point{X: 3, Y: 4})
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("DistanceTo = %g, want 5", d)
	}
}

func TestZoneBlocking(t *testing.T) {
	if !(Zone{Kind: ZoneRestricted}).Blocking() {
		t.Error("Expected restricted zones to block")
	}
	if (Zone{Kind: ZoneStaging}).Blocking() {
		t.Error("Expected staging zones to be walkable")
	}
	if (Zone{Kind: ZoneDock}).Blocking() {
		t.Error("Expected dock zones to be walkable")
	}
}

func TestObstaclesOrderAndFilter(t *testing.T) {
	plan := &FloorPlan{
		Width:  100,
		Height: 100,
		Walls:  []Wall{{Rect: NewRect(0, 0, 10, 10)}},
		Shelves: []Shelf{
			{Rect: NewRect(20, 0, 30, 10), Label: "A1"},
		},
		Zones: []Zone{
			{Rect: NewRect(40, 0, 50, 10), Kind: ZoneStaging},
			{Rect: NewRect(60, 0, 70, 10), Kind: ZoneRestricted},
		},
	}

	obs := plan.Obstacles()
	if len(obs) != 3 {
		t.Fatalf("Expected 3 obstacles (staging excluded), got %d", len(obs))
	}
	if obs[0] != plan.Walls[0].Rect {
		t.Errorf("Expected walls first, got %+v", obs[0])
	}
	if obs[1] != plan.Shelves[0].Rect {
		t.Errorf("Expected shelves second, got %+v", obs[1])
	}
	if obs[2] != plan.Zones[1].Rect {
		t.Errorf("Expected the restricted zone last, got %+v", obs[2])
	}
}

func TestLocationByID(t *testing.T) {
	plan := &FloorPlan{
		Width:  100,
		Height: 100,
		Locations: []Location{
			{ID: "recv", Name: "Receiving", X: 10, Y: 20},
		},
	}

	loc, ok := plan.LocationByID("recv")
	if !ok {
		t.Fatal("Expected to find recv")
	}
	if loc.Name != "Receiving" {
		t.Errorf("Expected Receiving, got %q", loc.Name)
	}
	if pos := loc.Position(); pos.X != 10 || pos.Y != 20 {
		t.Errorf("Position = %+v, want (10,20)", pos)
	}

	if _, ok := plan.LocationByID("nope"); ok {
		t.Error("Expected lookup miss for an unknown id")
	}
}

func TestCloneIsDeep(t *testing.T) {
	plan := &FloorPlan{
		Name:      "Main",
		Width:     100,
		Height:    100,
		CellSize:  12,
		Walls:     []Wall{{Rect: NewRect(0, 0, 10, 10)}},
		Shelves:   []Shelf{{Rect: NewRect(20, 0, 30, 10), Label: "A1"}},
		Zones:     []Zone{{Rect: NewRect(40, 0, 50, 10), Kind: ZoneDock}},
		Locations: []Location{{ID: "recv", Name: "Receiving", X: 10, Y: 20}},
	}

	clone := plan.Clone()
	if !reflect.DeepEqual(plan, clone) {
		t.Fatalf("Clone differs:\n  got  %+v\n  want %+v", clone, plan)
	}

	clone.Walls[0].X1 = 99
	clone.Locations[0].Name = "Changed"
	if plan.Walls[0].X1 == 99 {
		t.Error("Mutating the clone's walls changed the original")
	}
	if plan.Locations[0].Name == "Changed" {
		t.Error("Mutating the clone's locations changed the original")
	}

	var nilPlan *FloorPlan
	if nilPlan.Clone() != nil {
		t.Error("Expected Clone of nil to be nil")
	}
}

func TestRemoveObstacleAt(t *testing.T) {
	mkPlan := func() *FloorPlan {
		return &FloorPlan{
			Width:   100,
			Height:  100,
			Walls:   []Wall{{Rect: NewRect(0, 0, 10, 10)}},
			Shelves: []Shelf{{Rect: NewRect(0, 0, 30, 30), Label: "A1"}},
			Zones:   []Zone{{Rect: NewRect(0, 0, 50, 50), Kind: ZoneRestricted}},
		}
	}

	// All three overlap at (5,5); walls win, then shelves, then zones.
	plan := mkPlan()
	if !plan.RemoveObstacleAt(Point{X: 5, Y: 5}) {
		t.Fatal("Expected removal at (5,5)")
	}
	if len(plan.Walls) != 0 || len(plan.Shelves) != 1 || len(plan.Zones) != 1 {
		t.Errorf("Expected the wall removed first, got walls=%d shelves=%d zones=%d",
			len(plan.Walls), len(plan.Shelves), len(plan.Zones))
	}

	if !plan.RemoveObstacleAt(Point{X: 5, Y: 5}) {
		t.Fatal("Expected a second removal at (5,5)")
	}
	if len(plan.Shelves) != 0 || len(plan.Zones) != 1 {
		t.Errorf("Expected the shelf removed second, got shelves=%d zones=%d",
			len(plan.Shelves), len(plan.Zones))
	}

	if plan.RemoveObstacleAt(Point{X: 99, Y: 99}) {
		t.Error("Expected no removal outside every obstacle")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *FloorPlan {
		return &FloorPlan{
			Width:  100,
			Height: 100,
			Locations: []Location{
				{ID: "a", Name: "A", X: 10, Y: 10},
				{ID: "b", Name: "B", X: 20, Y: 20},
			},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("Expected a valid plan, got %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*FloorPlan)
		wantErr string
	}{
		{
			"zero width",
			func(p *FloorPlan) { p.Width = 0 },
			"dimensions must be positive",
		},
		{
			"negative height",
			func(p *FloorPlan) { p.Height = -5 },
			"dimensions must be positive",
		},
		{
			"negative cell size",
			func(p *FloorPlan) { p.CellSize = -1 },
			"cell size",
		},
		{
			"missing id",
			func(p *FloorPlan) { p.Locations[0].ID = "" },
			"has no id",
		},
		{
			"duplicate id",
			func(p *FloorPlan) { p.Locations[1].ID = "a" },
			"duplicate location id",
		},
		{
			"location off the floor",
			func(p *FloorPlan) { p.Locations[1].X = 500 },
			"outside",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)
			err := p.Validate()
			if err == nil {
				t.Fatal("Expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	plan := &FloorPlan{
		Name:     "Main Warehouse",
		Width:    480,
		Height:   360,
		CellSize: 24,
		Walls:    []Wall{{Rect: NewRect(0, 0, 480, 6)}},
		Shelves:  []Shelf{{Rect: NewRect(96, 48, 144, 312), Label: "A1"}},
		Zones:    []Zone{{Rect: NewRect(380, 40, 470, 140), Kind: ZoneStaging, Label: "Staging"}},
		Locations: []Location{
			{ID: "recv", Name: "Receiving", X: 36, Y: 132},
		},
	}

	file := filepath.Join(t.TempDir(), "plan.json")
	if err := Save(file, plan); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(file)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(plan, loaded) {
		t.Errorf("Round trip differs:\n  got  %+v\n  want %+v", loaded, plan)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Error("Expected a parse error for malformed JSON")
	}

	// Well-formed JSON still goes through validation.
	if _, err := Parse([]byte(`{"width": 0, "height": 100}`)); err == nil {
		t.Error("Expected a validation error for a zero-width plan")
	}
}

func TestBounds(t *testing.T) {
	plan := &FloorPlan{Width: 480, Height: 360}
	want := Rect{X2: 480, Y2: 360}
	if got := plan.Bounds(); got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
}
