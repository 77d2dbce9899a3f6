package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"aisle/render"
)

// Styles are keyed by glyph so structure reads at a glance even where
// runes collide (staging zones and the walkable overlay share '·').
var (
	styleDefault    = tcell.StyleDefault
	styleWall       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleShelf      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleRestricted = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleFloor      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLocation   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleRoute      = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleDraft      = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleStatus     = tcell.StyleDefault.Reverse(true)
)

func styleFor(r rune) tcell.Style {
	switch r {
	case render.GlyphWall:
		return styleWall
	case render.GlyphShelf:
		return styleShelf
	case render.GlyphRestricted:
		return styleRestricted
	case render.GlyphZone:
		return styleFloor
	case render.GlyphLocation:
		return styleLocation
	default:
		return styleDefault
	}
}

func draftGlyph(k DraftKind) rune {
	switch k {
	case DraftWall:
		return render.GlyphWall
	case DraftShelf:
		return render.GlyphShelf
	default:
		return render.GlyphRestricted
	}
}

// draw renders a full frame: plan, route overlay, draft preview,
// directions panel, help overlay and the status bar.
func (a *App) draw(s tcell.Screen) {
	s.Clear()
	w, h := s.Size()

	r := &render.Renderer{ShowGrid: a.showGrid}
	grid := a.planner.Grid()
	canvas := r.PlanCanvas(a.plan, grid)
	if canvas == nil {
		drawString(s, 0, 0, styleDefault, "plan too small to draw")
		s.Show()
		return
	}

	// The route goes on its own layer so its cells can be styled without
	// re-deriving which runes belong to the path.
	var routeLayer *render.Canvas
	if a.route != nil {
		cols, rows := canvas.Size()
		routeLayer = render.NewCanvas(cols, rows)
		r.OverlayRoute(routeLayer, a.route)
	}

	cols, rows := canvas.Size()
	for y := 0; y < rows && y < h-1; y++ {
		for x := 0; x < cols && x < w; x++ {
			if routeLayer != nil {
				if rr := routeLayer.Get(x, y); rr != ' ' {
					s.SetContent(x, y, rr, nil, styleRoute)
					continue
				}
			}
			cell := canvas.Get(x, y)
			s.SetContent(x, y, cell, nil, styleFor(cell))
		}
	}

	// Markers draw even when only one is placed.
	if a.start != nil {
		col, row := grid.WorldToCell(a.start.X, a.start.Y)
		s.SetContent(col+1, row+1, render.GlyphStart, nil, styleRoute)
	}
	if a.end != nil {
		col, row := grid.WorldToCell(a.end.X, a.end.Y)
		s.SetContent(col+1, row+1, render.GlyphEnd, nil, styleRoute)
	}

	if a.mode == ModeDraw && a.draftActive {
		a.drawDraft(s)
	}
	if a.route != nil {
		a.drawDirections(s, cols+2, w)
	}
	if a.showHelp {
		drawHelp(s)
	}
	a.drawStatusBar(s, w, h)

	s.ShowCursor(a.cursorCol+1, a.cursorRow+1)
	s.Show()
}

// drawDraft previews the rectangle between the anchor and the cursor.
func (a *App) drawDraft(s tcell.Screen) {
	c1, c2 := a.draftCol, a.cursorCol
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	r1, r2 := a.draftRow, a.cursorRow
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	glyph := draftGlyph(a.draftKind)
	for row := r1; row <= r2; row++ {
		for col := c1; col <= c2; col++ {
			s.SetContent(col+1, row+1, glyph, nil, styleDraft)
		}
	}
}

// drawDirections writes the turn-by-turn panel to the right of the plan.
func (a *App) drawDirections(s tcell.Screen, x, w int) {
	if x >= w {
		return
	}
	d := a.route.Directions
	drawString(s, x, 1, styleDefault.Bold(true),
		fmt.Sprintf("Route: %d ft (~%d min)", d.TotalDistanceFeet, d.EstimatedMinutes))
	for i, step := range d.Steps {
		line := fmt.Sprintf("%2d. %s %s, %d ft", i+1, step.Icon, step.Instruction, step.DistanceFeet)
		if step.Landmark != "" {
			line += fmt.Sprintf(" (near %s)", step.Landmark)
		}
		drawString(s, x, 2+i, styleDefault, line)
	}
}

var helpLines = []string{
	" aisle editor                           ",
	"                                        ",
	" arrows/hjkl  move cursor               ",
	" s / e        route start / end         ",
	" c            clear markers             ",
	" w / S / z    draw wall / shelf / zone  ",
	"              (same key or Enter commits)",
	" x            delete obstacle at cursor ",
	" L            add named location        ",
	" u            undo last edit            ",
	" g            toggle walkable overlay   ",
	" :w [file]    save   :q quit   :wq both ",
	" ?            close this help           ",
}

func drawHelp(s tcell.Screen) {
	for i, line := range helpLines {
		drawString(s, 2, 1+i, styleStatus, line)
	}
}

// drawStatusBar writes the bottom line: the command or text prompt when
// one is active, otherwise mode, cursor position and route summary.
func (a *App) drawStatusBar(s tcell.Screen, w, h int) {
	for x := 0; x < w; x++ {
		s.SetContent(x, h-1, ' ', nil, styleStatus)
	}

	var line string
	switch a.mode {
	case ModeCommand:
		line = ":" + string(a.commandBuffer)
	case ModeText:
		line = "location name: " + string(a.textBuffer)
	default:
		line = a.statusLine()
	}
	drawString(s, 0, h-1, styleStatus, line)
}

// statusLine composes the normal-mode status text.
func (a *App) statusLine() string {
	pt := a.cursorPoint()
	line := fmt.Sprintf(" %s | cell (%d,%d) %.0f,%.0f in", a.mode, a.cursorCol, a.cursorRow, pt.X, pt.Y)
	if a.dirty {
		line += " [+]"
	}
	if a.route != nil {
		d := a.route.Directions
		line += fmt.Sprintf(" | route %d ft ~%d min", d.TotalDistanceFeet, d.EstimatedMinutes)
	}
	if a.statusMsg != "" {
		line += " | " + a.statusMsg
	}
	return line
}

func drawString(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
