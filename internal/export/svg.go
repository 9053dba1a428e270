package export

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/san-kum/spinners/internal/epicycle"
	"github.com/san-kum/spinners/internal/theme"
)

// svgUnit is the number of SVG user units per data unit. svgo only takes
// integer coordinates, so the view box is scaled up instead.
const svgUnit = 1000

// errWriter keeps the first write error, since svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG draws the orbit arrows and trace of p as an SVG document.
func WriteSVG(w io.Writer, p *epicycle.Plot, opts Options) error {
	if err := check(p, opts); err != nil {
		return err
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	ex, ey := extents(opts)
	vw, vh := round(2*ex*svgUnit), round(2*ey*svgUnit)
	canvas.Startview(opts.Width, opts.Height, -vw/2, -vh/2, vw, vh)
	canvas.Title(p.ID())

	// user units per pixel
	px := float64(vw) / float64(opts.Width)
	v := opts.Visuals
	canvas.Rect(-vw/2, -vh/2, vw, vh, "fill:"+theme.Hex(v.Background))

	canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-width:%d;stroke-linecap:round", theme.Hex(v.Arrow), round(1.5*px)))
	for _, s := range arrowSegments(p.Frame()) {
		x0, y0 := svgPoint(s[0])
		x1, y1 := svgPoint(s[1])
		canvas.Line(x0, y0, x1, y1)
	}
	canvas.Gend()

	r := int(math.Max(1, math.Round(0.5*px)))
	canvas.Gstyle("fill:" + theme.Hex(v.Trace))
	for _, pt := range p.Trace() {
		x, y := svgPoint(pt)
		canvas.Circle(x, y, r)
	}
	canvas.Gend()

	canvas.End()
	return ew.err
}

// svgPoint maps a data point to user units, flipping y to point up.
func svgPoint(p epicycle.Point) (int, int) {
	return round(p.X * svgUnit), round(-p.Y * svgUnit)
}
