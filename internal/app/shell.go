// Package app is the application shell: it owns the two plots, lays them out
// side by side and drives their per-frame updates.
package app

import (
	"github.com/san-kum/spinners/internal/config"
	"github.com/san-kum/spinners/internal/epicycle"
	"github.com/san-kum/spinners/internal/theme"
)

// RepaintMode selects how a backend schedules frames.
type RepaintMode int

const (
	// Continuous redraws every frame at the target rate whether or not input
	// arrived. The plots animate every frame, so this is the shell's mode.
	Continuous RepaintMode = iota
	// OnEvent redraws only after input or an explicit repaint request.
	OnEvent
)

func (m RepaintMode) String() string {
	switch m {
	case Continuous:
		return "continuous"
	case OnEvent:
		return "on-event"
	}
	return "unknown"
}

// Schedule is the explicit frame scheduling handed to backends.
type Schedule struct {
	Mode RepaintMode
	FPS  int
}

// Columns is the per-frame view a backend gives the shell.
type Columns interface {
	// Columns splits the frame into n side-by-side plot columns.
	Columns(n int) []epicycle.UI
	// RequestRepaint asks for another frame after this one.
	RequestRepaint()
}

type Options struct {
	Ratios     [config.PlotCount]float64
	TimeScales [config.PlotCount]float64
	Visuals    theme.Visuals
	Schedule   Schedule
}

func DefaultOptions() Options {
	return FromConfig(config.DefaultConfig())
}

// FromConfig maps a validated configuration to shell options.
func FromConfig(cfg *config.Config) Options {
	return Options{
		Ratios:     cfg.Ratios(),
		TimeScales: cfg.TimeScales(),
		Visuals:    theme.For(cfg.Visuals.Dark),
		Schedule:   Schedule{Mode: Continuous, FPS: cfg.FPS},
	}
}

type Shell struct {
	plots    [config.PlotCount]*epicycle.Plot
	visuals  theme.Visuals
	schedule Schedule
	frames   uint64
}

func New(opts Options) *Shell {
	s := &Shell{
		visuals:  opts.Visuals,
		schedule: opts.Schedule,
	}
	if s.schedule.FPS <= 0 {
		s.schedule.FPS = config.DefaultFPS
	}
	for i, r := range opts.Ratios {
		s.plots[i] = epicycle.New(r)
		s.plots[i].SetTimeScale(opts.TimeScales[i])
	}
	return s
}

// Frame runs one frame: each plot updates inside its own column, then another
// frame is requested unconditionally.
func (s *Shell) Frame(ui Columns) {
	cols := ui.Columns(len(s.plots))
	for i, p := range s.plots {
		if i < len(cols) {
			p.Show(cols[i])
		}
	}
	s.frames++
	ui.RequestRepaint()
}

func (s *Shell) Plot(i int) *epicycle.Plot { return s.plots[i] }
func (s *Shell) Plots() []*epicycle.Plot   { return s.plots[:] }
func (s *Shell) Visuals() theme.Visuals    { return s.visuals }
func (s *Shell) Schedule() Schedule        { return s.schedule }
func (s *Shell) Frames() uint64            { return s.frames }
