// Package export renders a plot headlessly to SVG or PNG.
package export

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/san-kum/spinners/internal/epicycle"
	"github.com/san-kum/spinners/internal/theme"
	"github.com/san-kum/spinners/internal/viz"
)

var (
	ErrEmptyTrace    = errors.New("export: plot has no trace")
	ErrUnknownFormat = errors.New("export: unknown format")
	ErrInvalidSize   = errors.New("export: image size must be positive")
)

// Formats lists the accepted output formats.
var Formats = []string{"svg", "png"}

type Options struct {
	Width, Height int
	Visuals       theme.Visuals
}

func DefaultOptions() Options {
	return Options{Width: 640, Height: 640, Visuals: theme.Dark()}
}

// Simulate runs a plot headlessly for frames fixed steps of dt seconds.
func Simulate(ratio, timeScale float64, frames int, dt float64) *epicycle.Plot {
	p := epicycle.New(ratio)
	p.SetTimeScale(timeScale)
	for i := 0; i < frames; i++ {
		p.Step(dt)
	}
	return p
}

// Write renders p in the named format.
func Write(w io.Writer, p *epicycle.Plot, format string, opts Options) error {
	switch format {
	case "svg":
		return WriteSVG(w, p, opts)
	case "png":
		return WritePNG(w, p, opts)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Series splits a trace into x and y samples.
func Series(trace []epicycle.Point) (xs, ys []float64) {
	xs = make([]float64, len(trace))
	ys = make([]float64, len(trace))
	for i, p := range trace {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

func check(p *epicycle.Plot, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return ErrInvalidSize
	}
	if len(p.Trace()) == 0 {
		return ErrEmptyTrace
	}
	return nil
}

// extents returns the visible half-widths of the data area so that one data
// unit spans the same number of pixels on both axes.
func extents(opts Options) (float64, float64) {
	e := viz.DefaultExtent
	aspect := float64(opts.Width) / float64(opts.Height)
	if aspect >= 1 {
		return e * aspect, e
	}
	return e, e / aspect
}

// arrowSegments returns the shaft and barbs of both orbit arrows.
func arrowSegments(f epicycle.Frame) [][2]epicycle.Point {
	var segs [][2]epicycle.Point
	for _, a := range [][2]epicycle.Point{{{}, f.Primary}, {f.Primary, f.Secondary}} {
		l, r := epicycle.ArrowHead(a[0], a[1], epicycle.ArrowTipLength)
		segs = append(segs, a, [2]epicycle.Point{a[1], l}, [2]epicycle.Point{a[1], r})
	}
	return segs
}

func round(v float64) int { return int(math.Round(v)) }
