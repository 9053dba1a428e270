package viz

import "github.com/san-kum/spinners/internal/epicycle"

// Pointer is the mouse state sampled once per frame.
type Pointer struct {
	X, Y     float64
	DX       float64 // horizontal motion since the previous frame
	Down     bool
	Pressed  bool // went down this frame
	Released bool // went up this frame
}

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks r by d on every side. The result never has negative size.
func (r Rect) Inset(d float64) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

func (r Rect) Viewport() Viewport {
	return NewViewport(r.X, r.Y, r.W, r.H)
}

// WidgetState is how a widget should be drawn this frame.
type WidgetState int

const (
	Idle WidgetState = iota
	Hovered
	Active
)

// Widgets tracks which widget holds the pointer across frames. Widgets are
// identified by string ids that must stay stable between frames.
type Widgets struct {
	Pointer Pointer
	active  string
}

// Begin starts a frame with freshly sampled pointer state.
func (w *Widgets) Begin(p Pointer) {
	w.Pointer = p
	if !p.Down && !p.Released {
		w.active = ""
	}
}

// Active returns the id of the widget holding the pointer, if any.
func (w *Widgets) Active() string { return w.active }

func (w *Widgets) press(id string, r Rect) bool {
	hovered := r.Contains(w.Pointer.X, w.Pointer.Y)
	if hovered && w.Pointer.Pressed && w.active == "" {
		w.active = id
	}
	return hovered
}

// Button reports a click when the pointer is pressed and released over r.
func (w *Widgets) Button(id string, r Rect) (WidgetState, bool) {
	hovered := w.press(id, r)
	if w.active != id {
		if hovered {
			return Hovered, false
		}
		return Idle, false
	}
	if w.Pointer.Released {
		w.active = ""
		return Hovered, hovered
	}
	return Active, false
}

// Drag edits v by the horizontal pointer motion while the widget is held,
// scaled by the editor speed and clamped by the editor range.
func (w *Widgets) Drag(id string, r Rect, d epicycle.DragFloat, v float64) (float64, WidgetState) {
	hovered := w.press(id, r)
	if w.active != id {
		if hovered {
			return v, Hovered
		}
		return v, Idle
	}
	if w.Pointer.DX != 0 {
		v = d.Apply(v + w.Pointer.DX*d.Speed)
	}
	if w.Pointer.Released || !w.Pointer.Down {
		w.active = ""
	}
	return v, Active
}

// Row lays widgets out left to right.
type Row struct {
	bounds Rect
	x      float64
}

func NewRow(bounds Rect) *Row {
	return &Row{bounds: bounds, x: bounds.X}
}

// Next reserves the next w pixels of the row.
func (r *Row) Next(w float64) Rect {
	out := Rect{X: r.x, Y: r.bounds.Y, W: w, H: r.bounds.H}
	r.x += w + Spacing
	return out
}

// SplitColumns divides a w x h area into n equal side-by-side columns.
func SplitColumns(w, h float64, n int) []Rect {
	if n <= 0 {
		return nil
	}
	cw := w / float64(n)
	cols := make([]Rect, n)
	for i := range cols {
		cols[i] = Rect{X: float64(i) * cw, Y: 0, W: cw, H: h}
	}
	return cols
}
