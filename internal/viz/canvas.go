package viz

import (
	"math"
	"math/bits"
	"strings"

	"github.com/san-kum/spinners/internal/epicycle"
)

// Braille Patterns: 2x4 dots
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

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set turns on the dot at sub-pixel (x, y).
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	// Early bounds check for negative coordinates
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
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

// Dots counts the dots currently set.
func (c *Canvas) Dots() int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			n += bits.OnesCount32(uint32(r - 0x2800))
		}
	}
	return n
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

// Surface returns a plot surface drawing onto the canvas' sub-pixel grid.
func (c *Canvas) Surface() *CanvasSurface {
	return &CanvasSurface{
		canvas: c,
		vp:     NewViewport(0, 0, float64(c.Width*2), float64(c.Height*4)),
	}
}

// CanvasSurface implements epicycle.Surface on a braille canvas.
type CanvasSurface struct {
	canvas *Canvas
	vp     Viewport
}

func (s *CanvasSurface) Arrows(origins, tips []epicycle.Point) {
	for i := range origins {
		if i >= len(tips) {
			break
		}
		x0, y0 := s.pixel(origins[i])
		x1, y1 := s.pixel(tips[i])
		s.canvas.DrawLine(x0, y0, x1, y1)

		l, r := epicycle.ArrowHead(origins[i], tips[i], epicycle.ArrowTipLength*2)
		for _, barb := range []epicycle.Point{l, r} {
			bx, by := s.pixel(barb)
			s.canvas.DrawLine(x1, y1, bx, by)
		}
	}
}

func (s *CanvasSurface) Points(pts []epicycle.Point) {
	for _, p := range pts {
		s.canvas.Set(s.pixel(p))
	}
}

func (s *CanvasSurface) pixel(p epicycle.Point) (int, int) {
	x, y := s.vp.ToScreen(p)
	return int(math.Floor(x)), int(math.Floor(y))
}
