package floorplan

import "math"

// Point is a position on the floor in world coordinates (inches).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance to another point, in inches.
func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Rect is an axis-aligned rectangle in world coordinates (inches).
// Corners may arrive in any order; use Normalize before treating
// (X1,Y1) as the minimum corner.
type Rect struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// NewRect returns a normalized rectangle spanning the two corners.
func NewRect(x1, y1, x2, y2 float64) Rect {
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}.Normalize()
}

// Normalize returns the rectangle with (X1,Y1) as the minimum corner
// and (X2,Y2) as the maximum corner.
func (r Rect) Normalize() Rect {
	if r.X1 > r.X2 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y1 > r.Y2 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
	return r
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return math.Abs(r.X2 - r.X1)
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return math.Abs(r.Y2 - r.Y1)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Contains checks if a point is inside the rectangle (edges inclusive).
func (r Rect) Contains(p Point) bool {
	r = r.Normalize()
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}

// Intersects checks if two rectangles overlap (touching edges count).
func (r Rect) Intersects(o Rect) bool {
	r = r.Normalize()
	o = o.Normalize()
	return r.X1 <= o.X2 && o.X1 <= r.X2 && r.Y1 <= o.Y2 && o.Y1 <= r.Y2
}
