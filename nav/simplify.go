package nav

// sign returns -1, 0 or 1.
func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// SimplifyPath collapses straight runs of a cell-by-cell path down to
// their turning points. A waypoint survives only when the direction of
// travel (sign of the column delta, sign of the row delta) changes
// there; the first and last points always survive. Paths with fewer
// than three points come back unchanged. Applying SimplifyPath to its
// own output is a no-op.
func SimplifyPath(p *Path) *Path {
	if p == nil {
		return nil
	}
	if len(p.Points) < 3 {
		return p
	}

	pts := p.Points
	out := make([]Waypoint, 0, len(pts))
	out = append(out, pts[0])

	lastDX := sign(pts[1].GridX - pts[0].GridX)
	lastDY := sign(pts[1].GridY - pts[0].GridY)

	for i := 1; i < len(pts)-1; i++ {
		dx := sign(pts[i+1].GridX - pts[i].GridX)
		dy := sign(pts[i+1].GridY - pts[i].GridY)
		if dx != lastDX || dy != lastDY {
			out = append(out, pts[i])
			lastDX = dx
			lastDY = dy
		}
	}

	out = append(out, pts[len(pts)-1])
	return &Path{Points: out, Cost: p.Cost}
}
