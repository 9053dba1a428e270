package viz

import (
	"strconv"

	"github.com/san-kum/spinners/internal/epicycle"
	"github.com/san-kum/spinners/internal/theme"
)

// Layout metrics shared by the pixel backends.
const (
	Padding     = 8.0
	Spacing     = 6.0
	RowHeight   = 24.0
	LineWidth   = 1.5
	PointRadius = 1.0
)

// Frame is one immediate-mode frame drawn through a Painter. It implements the
// shell's column view.
type Frame struct {
	Width, Height float64
	Delta         float64
	Widgets       *Widgets
	Painter       Painter
	Visuals       theme.Visuals
	Repaint       bool
}

func (f *Frame) Columns(n int) []epicycle.UI {
	rects := SplitColumns(f.Width, f.Height, n)
	cols := make([]epicycle.UI, len(rects))
	for i, r := range rects {
		cols[i] = &Column{
			id:     strconv.Itoa(i),
			bounds: r,
			frame:  f,
			row:    NewRow(Rect{X: r.X + Padding, Y: r.Y + Padding, W: r.W - 2*Padding, H: RowHeight}),
		}
	}
	return cols
}

func (f *Frame) RequestRepaint() { f.Repaint = true }

// Column is the UI of one plot: a row of controls above a square-aspect plot.
type Column struct {
	id     string
	bounds Rect
	frame  *Frame
	row    *Row
}

func (c *Column) FrameDelta() float64 { return c.frame.Delta }

func (c *Column) Button(label string) bool {
	p := c.frame.Painter
	r := c.row.Next(p.MeasureText(label) + 2*Padding)
	state, clicked := c.frame.Widgets.Button(c.id+"/"+label, r)
	c.widget(r, state, label)
	return clicked
}

func (c *Column) DragFloat(d epicycle.DragFloat, value float64) float64 {
	p := c.frame.Painter
	r := c.row.Next(p.MeasureText(d.Prefix+FormatValue(value, d.Precision())) + 2*Padding)
	value, state := c.frame.Widgets.Drag(c.id+"/"+d.Prefix, r, d, value)
	c.widget(r, state, d.Prefix+FormatValue(value, d.Precision()))
	return value
}

func (c *Column) widget(r Rect, state WidgetState, label string) {
	v := c.frame.Visuals
	fill := v.Panel
	if state != Idle {
		fill = v.Hover
	}
	text := v.Text
	if state == Active {
		text = v.Trace
	}
	p := c.frame.Painter
	p.FillRect(r, fill)
	p.StrokeRect(r, 1, v.Stroke)
	p.Text(label, r.X+Padding, r.Y+(RowHeight-textHeight)/2, text)
}

// PlotArea is the part of the column below the controls.
func (c *Column) PlotArea() Rect {
	r := c.bounds.Inset(Padding)
	r.Y += RowHeight + Padding
	r.H -= RowHeight + Padding
	if r.H < 0 {
		r.H = 0
	}
	return r
}

func (c *Column) Plot(id string) epicycle.Surface {
	area := c.PlotArea()
	v := c.frame.Visuals
	c.frame.Painter.StrokeRect(area, 1, v.Stroke)
	return PlotSurface{
		Viewport:    area.Viewport(),
		Painter:     c.frame.Painter,
		Arrow:       v.Arrow,
		Trace:       v.Trace,
		LineWidth:   LineWidth,
		PointRadius: PointRadius,
	}
}

const textHeight = 14.0
