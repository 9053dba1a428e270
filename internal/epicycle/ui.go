package epicycle

import "math"

// Surface is a 2D plotting area with a fixed 1:1 data aspect, no grid and no
// axes.
type Surface interface {
	// Arrows draws one directed segment per origins[i] -> tips[i].
	Arrows(origins, tips []Point)
	// Points draws pts as a point cloud, in order.
	Points(pts []Point)
}

// DragFloat describes a numeric drag editor.
type DragFloat struct {
	Prefix   string
	Speed    float64 // value change per pixel dragged
	Decimals int     // fixed display decimals; negative means automatic
	Clamp    bool
	Min, Max float64
}

// Apply clamps v into the editor range when the editor is clamped.
func (d DragFloat) Apply(v float64) float64 {
	if !d.Clamp {
		return v
	}
	if v < d.Min {
		return d.Min
	}
	if v > d.Max {
		return d.Max
	}
	return v
}

// Precision is the number of decimals used to display the editor's value.
// Automatic precision follows the drag speed.
func (d DragFloat) Precision() int {
	if d.Decimals >= 0 {
		return d.Decimals
	}
	if d.Speed <= 0 {
		return 0
	}
	return int(math.Max(0, math.Round(-math.Log10(d.Speed))))
}

// UI is the per-frame, immediate-mode view of one plot column. Widgets are
// declared in call order and report interaction from the current frame.
type UI interface {
	// FrameDelta is the real time elapsed since the previous frame, in seconds.
	FrameDelta() float64
	// Button draws a button and reports whether it was clicked.
	Button(label string) bool
	// DragFloat draws a drag editor showing value and returns the edited value.
	DragFloat(d DragFloat, value float64) float64
	// Plot returns the drawing surface for the plot identified by id.
	Plot(id string) Surface
}

var (
	frequencyEditor = DragFloat{Prefix: "Num: ", Speed: 0.001, Decimals: 5}
	timeScaleEditor = DragFloat{Prefix: "Time scale: ", Speed: 0.1, Decimals: -1, Clamp: true, Min: 0, Max: MaxTimeScale}
)

// FrequencyEditor returns the editor used for the frequency ratio.
func FrequencyEditor() DragFloat { return frequencyEditor }

// TimeScaleEditor returns the editor used for the time scale.
func TimeScaleEditor() DragFloat { return timeScaleEditor }
