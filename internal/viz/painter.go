package viz

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/spinners/internal/epicycle"
)

// Painter draws 2D primitives in screen pixels.
type Painter interface {
	Line(x0, y0, x1, y1, width float64, c colorful.Color)
	Circle(x, y, radius float64, c colorful.Color)
	FillRect(r Rect, c colorful.Color)
	StrokeRect(r Rect, width float64, c colorful.Color)
	Text(s string, x, y float64, c colorful.Color)
	// MeasureText returns the width of s in pixels.
	MeasureText(s string) float64
}

// PlotSurface implements epicycle.Surface through a Painter.
type PlotSurface struct {
	Viewport    Viewport
	Painter     Painter
	Arrow       colorful.Color
	Trace       colorful.Color
	LineWidth   float64
	PointRadius float64
}

func (s PlotSurface) Arrows(origins, tips []epicycle.Point) {
	for i := range origins {
		if i >= len(tips) {
			break
		}
		x0, y0 := s.Viewport.ToScreen(origins[i])
		x1, y1 := s.Viewport.ToScreen(tips[i])
		s.Painter.Line(x0, y0, x1, y1, s.LineWidth, s.Arrow)

		l, r := epicycle.ArrowHead(origins[i], tips[i], epicycle.ArrowTipLength)
		for _, barb := range []epicycle.Point{l, r} {
			bx, by := s.Viewport.ToScreen(barb)
			s.Painter.Line(x1, y1, bx, by, s.LineWidth, s.Arrow)
		}
	}
}

// Points draws a dot per point, skipping those that land outside the viewport.
func (s PlotSurface) Points(pts []epicycle.Point) {
	for _, p := range pts {
		x, y := s.Viewport.ToScreen(p)
		if !s.Viewport.Contains(x, y) {
			continue
		}
		s.Painter.Circle(x, y, s.PointRadius, s.Trace)
	}
}

type OpKind int

const (
	OpLine OpKind = iota
	OpCircle
	OpFillRect
	OpStrokeRect
	OpText
)

// Op is one recorded draw call. Lines use (X0,Y0)-(X1,Y1); circles use
// (X0,Y0) and Size as radius; rects use Rect; text uses (X0,Y0) and Text.
type Op struct {
	Kind   OpKind
	X0, Y0 float64
	X1, Y1 float64
	Size   float64
	Rect   Rect
	Text   string
	Color  colorful.Color
}

// DisplayList is a Painter that records draw calls for later replay.
type DisplayList struct {
	Ops []Op
	// GlyphWidth is the advance of one character used by MeasureText.
	GlyphWidth float64
}

func (d *DisplayList) Reset() { d.Ops = d.Ops[:0] }

func (d *DisplayList) Line(x0, y0, x1, y1, width float64, c colorful.Color) {
	d.Ops = append(d.Ops, Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Size: width, Color: c})
}

func (d *DisplayList) Circle(x, y, radius float64, c colorful.Color) {
	d.Ops = append(d.Ops, Op{Kind: OpCircle, X0: x, Y0: y, Size: radius, Color: c})
}

func (d *DisplayList) FillRect(r Rect, c colorful.Color) {
	d.Ops = append(d.Ops, Op{Kind: OpFillRect, Rect: r, Color: c})
}

func (d *DisplayList) StrokeRect(r Rect, width float64, c colorful.Color) {
	d.Ops = append(d.Ops, Op{Kind: OpStrokeRect, Rect: r, Size: width, Color: c})
}

func (d *DisplayList) Text(s string, x, y float64, c colorful.Color) {
	d.Ops = append(d.Ops, Op{Kind: OpText, X0: x, Y0: y, Text: s, Color: c})
}

func (d *DisplayList) MeasureText(s string) float64 {
	return float64(len([]rune(s))) * d.GlyphWidth
}

// Count returns the number of recorded ops of kind k.
func (d *DisplayList) Count(k OpKind) int {
	n := 0
	for _, op := range d.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}
