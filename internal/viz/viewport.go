package viz

import (
	"math"

	"github.com/san-kum/spinners/internal/epicycle"
)

// DefaultExtent is the half-width of the data square shown by a plot. Both
// orbits have unit radius, so every tip lies within 2 of the origin.
const DefaultExtent = 2.2

// Viewport maps plot data coordinates onto a screen rectangle with a fixed
// 1:1 aspect, centered on the origin. Screen y grows downward.
type Viewport struct {
	X, Y, W, H float64
	Extent     float64
}

func NewViewport(x, y, w, h float64) Viewport {
	return Viewport{X: x, Y: y, W: w, H: h, Extent: DefaultExtent}
}

// Scale is the number of screen units per data unit.
func (v Viewport) Scale() float64 {
	if v.Extent <= 0 {
		return 0
	}
	return math.Min(v.W, v.H) / (2 * v.Extent)
}

func (v Viewport) ToScreen(p epicycle.Point) (float64, float64) {
	s := v.Scale()
	return v.X + v.W/2 + p.X*s, v.Y + v.H/2 - p.Y*s
}

// Contains reports whether the screen position lies inside the viewport.
func (v Viewport) Contains(x, y float64) bool {
	return x >= v.X && x < v.X+v.W && y >= v.Y && y < v.Y+v.H
}
