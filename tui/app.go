// Package tui is the interactive floor-plan editor: a modal,
// keyboard-driven view of the plan with live routing. Normal mode moves
// the cursor and places route markers; draw mode stretches wall, shelf
// and zone rectangles; a vim-style command line saves and quits.
package tui

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"aisle/floorplan"
	"aisle/nav"
)

// App holds the complete editor state. All key handling mutates the App
// directly; drawing reads it. Nothing here touches the terminal, so the
// state layer can be driven in tests without a real screen.
type App struct {
	plan     *floorplan.FloorPlan
	planner  *nav.Planner
	opts     nav.Options
	filename string

	mode      Mode
	cursorCol int
	cursorRow int

	// Route markers, world coordinates. Nil until placed.
	start *floorplan.Point
	end   *floorplan.Point
	route *nav.Route

	// Rectangle draft: anchor cell set on the first press.
	draftKind   DraftKind
	draftActive bool
	draftCol    int
	draftRow    int

	textBuffer    []rune
	commandBuffer []rune

	undo      *floorplan.FloorPlan // single-level snapshot
	dirty     bool
	showHelp  bool
	showGrid  bool
	statusMsg string

	quitting bool
}

// NewApp creates an editor over the given plan. The filename is where
// :w writes when no argument is given; it may be empty for a new plan.
func NewApp(plan *floorplan.FloorPlan, filename string, opts nav.Options) *App {
	a := &App{
		plan:     plan,
		planner:  nav.NewPlanner(plan, opts),
		opts:     opts,
		filename: filename,
		mode:     ModeNormal,
	}
	a.cursorCol = a.planner.Grid().Cols() / 2
	a.cursorRow = a.planner.Grid().Rows() / 2
	return a
}

// Mode returns the current editing mode.
func (a *App) Mode() Mode { return a.mode }

// Plan returns the plan being edited.
func (a *App) Plan() *floorplan.FloorPlan { return a.plan }

// Route returns the current route, or nil when markers are unset or no
// path exists.
func (a *App) Route() *nav.Route { return a.route }

// Cursor returns the cursor cell.
func (a *App) Cursor() (col, row int) { return a.cursorCol, a.cursorRow }

// Dirty reports whether the plan has unsaved edits.
func (a *App) Dirty() bool { return a.dirty }

// cursorPoint returns the world coordinates of the cursor cell center.
func (a *App) cursorPoint() floorplan.Point {
	x, y := a.planner.Grid().CellCenter(a.cursorCol, a.cursorRow)
	return floorplan.Point{X: x, Y: y}
}

// moveCursor shifts the cursor, clamped to the grid.
func (a *App) moveCursor(dc, dr int) {
	g := a.planner.Grid()
	a.cursorCol = clamp(a.cursorCol+dc, 0, g.Cols()-1)
	a.cursorRow = clamp(a.cursorRow+dr, 0, g.Rows()-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// placeStart pins the route start at the cursor and re-routes.
func (a *App) placeStart() {
	p := a.cursorPoint()
	a.start = &p
	a.recomputeRoute()
}

// placeEnd pins the route end at the cursor and re-routes.
func (a *App) placeEnd() {
	p := a.cursorPoint()
	a.end = &p
	a.recomputeRoute()
}

// clearMarkers drops both markers and the route.
func (a *App) clearMarkers() {
	a.start = nil
	a.end = nil
	a.route = nil
	a.statusMsg = "markers cleared"
}

// recomputeRoute recalculates the route whenever both markers are set.
// A nil result means the markers are unreachable from each other.
func (a *App) recomputeRoute() {
	if a.start == nil || a.end == nil {
		a.route = nil
		return
	}
	a.route = a.planner.Route(*a.start, *a.end)
	if a.route == nil {
		a.statusMsg = "no route between markers"
	} else {
		a.statusMsg = ""
	}
}

// snapshot saves the plan for a single-level undo.
func (a *App) snapshot() {
	a.undo = a.plan.Clone()
}

// undoEdit swaps the plan with the last snapshot. Pressing u twice
// restores the edit, the old vi behavior.
func (a *App) undoEdit() {
	if a.undo == nil {
		a.statusMsg = "nothing to undo"
		return
	}
	a.plan, a.undo = a.undo, a.plan
	a.planner = nav.NewPlanner(a.plan, a.opts)
	a.dirty = true
	a.recomputeRoute()
	a.statusMsg = "undo"
}

// startDraft anchors a rectangle at the cursor and enters draw mode.
func (a *App) startDraft(kind DraftKind) {
	a.draftKind = kind
	a.draftCol = a.cursorCol
	a.draftRow = a.cursorRow
	a.SetMode(ModeDraw)
	a.draftActive = true
	a.statusMsg = fmt.Sprintf("drawing %s: move and press %c or Enter", kind, kind.key())
}

// draftRect returns the world rectangle spanned by the anchor cell and
// the cursor cell, covering both cells fully.
func (a *App) draftRect() floorplan.Rect {
	cs := a.planner.Grid().CellSize()
	c1, c2 := a.draftCol, a.cursorCol
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	r1, r2 := a.draftRow, a.cursorRow
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return floorplan.NewRect(float64(c1)*cs, float64(r1)*cs, float64(c2+1)*cs, float64(r2+1)*cs)
}

// commitDraft turns the draft into a plan obstacle and rebuilds the grid.
func (a *App) commitDraft() {
	rect := a.draftRect()
	a.snapshot()
	switch a.draftKind {
	case DraftWall:
		a.plan.Walls = append(a.plan.Walls, floorplan.Wall{Rect: rect})
	case DraftShelf:
		a.plan.Shelves = append(a.plan.Shelves, floorplan.Shelf{Rect: rect})
	case DraftZone:
		a.plan.Zones = append(a.plan.Zones, floorplan.Zone{Rect: rect, Kind: floorplan.ZoneRestricted})
	}
	a.dirty = true
	a.planner.Rebuild()
	a.recomputeRoute()
	a.SetMode(ModeNormal)
	a.statusMsg = fmt.Sprintf("%s added", strings.ToLower(a.draftKind.String()))
}

// deleteAtCursor removes the obstacle under the cursor, if any.
func (a *App) deleteAtCursor() {
	snap := a.plan.Clone()
	if !a.plan.RemoveObstacleAt(a.cursorPoint()) {
		a.statusMsg = "no obstacle here"
		return
	}
	a.undo = snap
	a.dirty = true
	a.planner.Rebuild()
	a.recomputeRoute()
	a.statusMsg = "obstacle removed"
}

// commitLocation adds a named location at the cursor from the text
// buffer. An empty name cancels.
func (a *App) commitLocation() {
	name := strings.TrimSpace(string(a.textBuffer))
	if name == "" {
		a.statusMsg = ""
		return
	}
	a.snapshot()
	pt := a.cursorPoint()
	a.plan.Locations = append(a.plan.Locations, floorplan.Location{
		ID:   "loc-" + uuid.NewString()[:8],
		Name: name,
		X:    pt.X,
		Y:    pt.Y,
	})
	a.dirty = true
	a.recomputeRoute()
	a.statusMsg = fmt.Sprintf("location %q added", name)
}

// save writes the plan to filename, or the file the app was opened with.
func (a *App) save(filename string) {
	if filename == "" {
		filename = a.filename
	}
	if filename == "" {
		a.statusMsg = "no file name (:w <file>)"
		return
	}
	if err := floorplan.Save(filename, a.plan); err != nil {
		a.statusMsg = fmt.Sprintf("write failed: %v", err)
		return
	}
	a.filename = filename
	a.dirty = false
	a.statusMsg = fmt.Sprintf("wrote %s", filename)
}
