package export

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/spinners/internal/epicycle"
	"github.com/san-kum/spinners/internal/theme"
)

// pngDPI converts pixel sizes to vg lengths.
const pngDPI = 96

// WritePNG draws p with gonum/plot, axes hidden and the data aspect fixed.
func WritePNG(w io.Writer, p *epicycle.Plot, opts Options) error {
	if err := check(p, opts); err != nil {
		return err
	}
	v := opts.Visuals

	pl := plot.New()
	pl.HideAxes()
	pl.BackgroundColor = theme.RGBA(v.Background)

	for _, s := range arrowSegments(p.Frame()) {
		l, err := plotter.NewLine(plotter.XYs{{X: s[0].X, Y: s[0].Y}, {X: s[1].X, Y: s[1].Y}})
		if err != nil {
			return fmt.Errorf("arrow: %w", err)
		}
		l.LineStyle.Color = theme.RGBA(v.Arrow)
		l.LineStyle.Width = vg.Points(1)
		pl.Add(l)
	}

	xs, ys := Series(p.Trace())
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	sc.GlyphStyle = draw.GlyphStyle{
		Color:  theme.RGBA(v.Trace),
		Radius: vg.Points(0.5),
		Shape:  draw.CircleGlyph{},
	}
	pl.Add(sc)

	// Add widens the ranges to the data, so pin them afterwards.
	ex, ey := extents(opts)
	pl.X.Min, pl.X.Max = -ex, ex
	pl.Y.Min, pl.Y.Max = -ey, ey

	width := vg.Length(opts.Width) * vg.Inch / pngDPI
	height := vg.Length(opts.Height) * vg.Inch / pngDPI
	wt, err := pl.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("png: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}
