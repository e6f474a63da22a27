package viz

import (
	"strings"

	"github.com/san-kum/curvelab/internal/geom"
)

// Braille Patterns: 2x4 dots per character cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille pixel grid with a world-coordinate viewport.
// Curve geometry lives in world pixels; the terminal resolution is
// Width*2 x Height*4 sub-pixels.
type Canvas struct {
	Width, Height  int
	WorldW, WorldH float64
	Grid           [][]rune
}

func NewCanvas(w, h int, worldW, worldH float64) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		WorldW: worldW,
		WorldH: worldH,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// project maps a world point to sub-pixel coordinates.
func (c *Canvas) project(p geom.Vec) (int, int) {
	sx := p.X / c.WorldW * float64(c.Width*2)
	sy := p.Y / c.WorldH * float64(c.Height*4)
	return int(sx), int(sy)
}

// Set turns on a sub-pixel. Out-of-range coordinates are ignored; the
// renderer clips implicitly.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Unset clears a sub-pixel.
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] &= ^rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < 0x2800 {
		c.Grid[row][col] = 0x2800
	}
}

// Clear resets the canvas.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a sub-pixel line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Plot sets the sub-pixel under a world point.
func (c *Canvas) Plot(p geom.Vec) {
	x, y := c.project(p)
	c.Set(x, y)
}

// Segment draws a world-space line segment.
func (c *Canvas) Segment(a, b geom.Vec) {
	x0, y0 := c.project(a)
	x1, y1 := c.project(b)
	c.DrawLine(x0, y0, x1, y1)
}

// Stroke draws a world-space polyline, point to point.
func (c *Canvas) Stroke(points []geom.Vec) {
	for i := 1; i < len(points); i++ {
		c.Segment(points[i-1], points[i])
	}
}

// Marker draws a filled square of the given sub-pixel radius centered
// on a world point. Used for control point handles.
func (c *Canvas) Marker(p geom.Vec, radius int) {
	x, y := c.project(p)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			c.Set(x+dx, y+dy)
		}
	}
}

// Dashed draws a world-space segment as alternating on/off runs of
// sub-pixels. Used for the guide lines from endpoints to handles.
func (c *Canvas) Dashed(a, b geom.Vec, on, off int) {
	if on <= 0 {
		on = 3
	}
	if off <= 0 {
		off = 3
	}

	x0, y0 := c.project(a)
	x1, y1 := c.project(b)

	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	i := 0
	for {
		if i%(on+off) < on {
			c.Set(x0, y0)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
		i++
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
