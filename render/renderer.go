package render

import (
	"fmt"
	"strings"

	"aisle/floorplan"
	"aisle/nav"
)

// Glyphs used on the plan. Obstacles shade darker the more solid they
// are; the route overlay draws on top of everything but its endpoints.
const (
	GlyphWall       = '█'
	GlyphShelf      = '▒'
	GlyphRestricted = '░'
	GlyphZone       = '·'
	GlyphLocation   = '◆'
	GlyphWalkable   = '·'
	GlyphRoute      = '·'
	GlyphStart      = '○'
	GlyphEnd        = '●'
)

// Renderer draws a floor plan, and optionally a route across it, at one
// character per grid cell inside a rounded frame.
type Renderer struct {
	// ShowGrid marks every walkable cell with a dot, handy when
	// debugging rasterization.
	ShowGrid bool
}

// NewRenderer returns a renderer with default settings.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderPlan draws the floor plan and a legend of its locations.
func (r *Renderer) RenderPlan(plan *floorplan.FloorPlan, grid *nav.Grid) string {
	c := r.PlanCanvas(plan, grid)
	if c == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(c.String())
	r.writeLegend(&sb, plan)
	return sb.String()
}

// RenderRoute draws the floor plan with the route overlaid, followed by
// a summary line and the turn-by-turn steps. A nil route renders the
// plan with a "no route" notice instead.
func (r *Renderer) RenderRoute(plan *floorplan.FloorPlan, grid *nav.Grid, route *nav.Route) string {
	c := r.PlanCanvas(plan, grid)
	if c == nil {
		return ""
	}

	var sb strings.Builder
	if route == nil || route.Path.IsEmpty() {
		sb.WriteString(c.String())
		sb.WriteString("\nNo route found.\n")
		return sb.String()
	}

	r.OverlayRoute(c, route)
	sb.WriteString(c.String())

	d := route.Directions
	fmt.Fprintf(&sb, "\nRoute: %d ft (~%d min)\n", d.TotalDistanceFeet, d.EstimatedMinutes)
	for i, step := range d.Steps {
		fmt.Fprintf(&sb, "%2d. %s %s, %d ft", i+1, step.Icon, step.Instruction, step.DistanceFeet)
		if step.Landmark != "" {
			fmt.Fprintf(&sb, " (near %s)", step.Landmark)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PlanCanvas renders the framed plan body onto a fresh canvas. Callers
// that need more than the plain string form (the TUI blits the cells
// with per-glyph styling) compose on top of this.
func (r *Renderer) PlanCanvas(plan *floorplan.FloorPlan, grid *nav.Grid) *Canvas {
	c := NewCanvas(grid.Cols()+2, grid.Rows()+2)
	if c == nil {
		return nil
	}
	c.DrawBox(0, 0, grid.Cols()+2, grid.Rows()+2, DefaultBoxStyle)

	if r.ShowGrid {
		for row := 0; row < grid.Rows(); row++ {
			for col := 0; col < grid.Cols(); col++ {
				if grid.IsWalkable(col, row) {
					c.Set(col+1, row+1, GlyphWalkable)
				}
			}
		}
	}

	for _, z := range plan.Zones {
		glyph := GlyphZone
		if z.Blocking() {
			glyph = GlyphRestricted
		}
		r.fillSpan(c, grid, z.Rect, glyph)
	}
	for _, s := range plan.Shelves {
		r.fillSpan(c, grid, s.Rect, GlyphShelf)
		r.drawShelfLabel(c, grid, s)
	}
	for _, w := range plan.Walls {
		r.fillSpan(c, grid, w.Rect, GlyphWall)
	}
	for _, loc := range plan.Locations {
		col, row := grid.WorldToCell(loc.X, loc.Y)
		if grid.InBounds(col, row) {
			c.Set(col+1, row+1, GlyphLocation)
		}
	}
	return c
}

// fillSpan shades every grid cell a rectangle's footprint covers.
func (r *Renderer) fillSpan(c *Canvas, grid *nav.Grid, rect floorplan.Rect, glyph rune) {
	c1, r1, c2, r2 := grid.CellSpan(rect)
	if c1 > c2 || r1 > r2 {
		return
	}
	c.Fill(c1+1, r1+1, c2-c1+1, r2-r1+1, glyph)
}

// drawShelfLabel writes the shelf label across its top row when there
// is room for at least two characters.
func (r *Renderer) drawShelfLabel(c *Canvas, grid *nav.Grid, s floorplan.Shelf) {
	if s.Label == "" {
		return
	}
	c1, r1, c2, r2 := grid.CellSpan(s.Rect)
	if c1 > c2 || r1 > r2 {
		return
	}
	span := c2 - c1 + 1
	if span < 2 {
		return
	}
	label := []rune(s.Label)
	if len(label) > span {
		label = label[:span]
	}
	c.DrawText(c1+1, r1+1, string(label))
}

// OverlayRoute draws the route on top of the plan: dotted segments,
// an arrow at each turn, then the endpoint markers.
func (r *Renderer) OverlayRoute(c *Canvas, route *nav.Route) {
	pts := route.Path.Points
	for i := 0; i < len(pts)-1; i++ {
		c.DrawLine(pts[i].GridX+1, pts[i].GridY+1, pts[i+1].GridX+1, pts[i+1].GridY+1, GlyphRoute)
	}

	steps := route.Directions.Steps
	for i := 1; i < len(pts)-1; i++ {
		if i < len(steps) {
			icon := []rune(steps[i].Icon)
			if len(icon) == 1 {
				c.Set(pts[i].GridX+1, pts[i].GridY+1, icon[0])
			}
		}
	}

	c.Set(pts[0].GridX+1, pts[0].GridY+1, GlyphStart)
	c.Set(pts[len(pts)-1].GridX+1, pts[len(pts)-1].GridY+1, GlyphEnd)
}

// writeLegend appends one line per named location.
func (r *Renderer) writeLegend(sb *strings.Builder, plan *floorplan.FloorPlan) {
	if len(plan.Locations) == 0 {
		return
	}
	sb.WriteByte('\n')
	for _, loc := range plan.Locations {
		fmt.Fprintf(sb, "%c %s (%s)\n", GlyphLocation, loc.Name, loc.ID)
	}
}
