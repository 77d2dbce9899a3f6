// Package render draws floor plans and routes as Unicode text, one
// character cell per navigation grid cell.
package render

import "strings"

// Canvas is a fixed-size rune matrix. Writes outside the canvas are
// clipped silently; the drawing layer clamps rather than reporting
// errors, like the rest of the pipeline.
//
// Coordinate system: origin top-left, x rightward, y downward, all in
// character cells.
type Canvas struct {
	matrix [][]rune
	width  int
	height int
}

// NewCanvas creates a canvas filled with spaces. Returns nil for
// non-positive dimensions.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		return nil
	}
	matrix := make([][]rune, height)
	for y := range matrix {
		matrix[y] = make([]rune, width)
		for x := range matrix[y] {
			matrix[y][x] = ' '
		}
	}
	return &Canvas{matrix: matrix, width: width, height: height}
}

// Size returns the width and height of the canvas.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Get returns the rune at the position, or ' ' when out of bounds.
func (c *Canvas) Get(x, y int) rune {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ' '
	}
	return c.matrix[y][x]
}

// Set places a rune, clipping writes outside the canvas.
func (c *Canvas) Set(x, y int, char rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.matrix[y][x] = char
}

// Fill sets every cell of a rectangle to the same rune.
func (c *Canvas) Fill(x, y, width, height int, char rune) {
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			c.Set(x+dx, y+dy, char)
		}
	}
}

// BoxStyle holds the runes for the four corners and two edges of a box.
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// DefaultBoxStyle is the rounded frame used for plan borders.
var DefaultBoxStyle = BoxStyle{
	TopLeft:     '╭',
	TopRight:    '╮',
	BottomLeft:  '╰',
	BottomRight: '╯',
	Horizontal:  '─',
	Vertical:    '│',
}

// DrawBox draws the outline of a rectangle.
func (c *Canvas) DrawBox(x, y, width, height int, style BoxStyle) {
	if width < 2 || height < 2 {
		return
	}
	c.Set(x, y, style.TopLeft)
	c.Set(x+width-1, y, style.TopRight)
	c.Set(x, y+height-1, style.BottomLeft)
	c.Set(x+width-1, y+height-1, style.BottomRight)
	for i := 1; i < width-1; i++ {
		c.Set(x+i, y, style.Horizontal)
		c.Set(x+i, y+height-1, style.Horizontal)
	}
	for i := 1; i < height-1; i++ {
		c.Set(x, y+i, style.Vertical)
		c.Set(x+width-1, y+i, style.Vertical)
	}
}

// DrawLine draws a Bresenham line between two cells. For horizontal,
// vertical and 45° diagonal lines this visits exactly the cells on the
// segment, which is all the route overlay needs.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, char rune) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	xInc, yInc := 1, 1
	if x1 > x2 {
		xInc = -1
	}
	if y1 > y2 {
		yInc = -1
	}

	x, y := x1, y1
	if dx > dy {
		err := dx / 2
		for x != x2 {
			c.Set(x, y, char)
			err -= dy
			if err < 0 {
				y += yInc
				err += dx
			}
			x += xInc
		}
	} else {
		err := dy / 2
		for y != y2 {
			c.Set(x, y, char)
			err -= dx
			if err < 0 {
				x += xInc
				err += dy
			}
			y += yInc
		}
	}
	c.Set(x2, y2, char)
}

// DrawText writes a string left to right, clipping at the right edge.
func (c *Canvas) DrawText(x, y int, text string) {
	for _, r := range text {
		if x >= c.width {
			break
		}
		c.Set(x, y, r)
		x++
	}
}

// String renders the canvas with newline-separated rows.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.matrix[y][x])
		}
		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
