package epicycle

import (
	"fmt"
	"math"
)

const (
	// MaxFrameDelta caps the real time consumed by a single update.
	MaxFrameDelta = 1.0 / 120.0
	// SamplesPerUnitScale is the number of interpolated sub-samples per frame
	// at time scale 1.
	SamplesPerUnitScale = 20
	// SpeedNormalization keeps differing frequency ratios animating at a
	// comparable visual speed: time advances by SpeedNormalization/ratio.
	SpeedNormalization = 5.0
	MaxTimeScale       = 10.0
	DefaultTimeScale   = 1.0

	// ArrowTipLength is the barb length of both orbit arrows, in data units.
	ArrowTipLength = 0.1
)

// Plot is one epicycle simulation and its accumulated trace.
type Plot struct {
	ratio     float64
	time      float64
	timeScale float64
	trace     []Point
	frame     Frame
}

// New creates a plot at frequencyRatio with the default time scale.
func New(frequencyRatio float64) *Plot {
	p := &Plot{
		ratio:     frequencyRatio,
		timeScale: DefaultTimeScale,
		trace:     make([]Point, 0, 1024),
	}
	p.frame = p.tipFrame()
	return p
}

func (p *Plot) FrequencyRatio() float64 { return p.ratio }
func (p *Plot) Time() float64           { return p.time }
func (p *Plot) TimeScale() float64      { return p.timeScale }

// Trace returns the accumulated tip positions in render order. The slice is
// owned by the plot and only valid until the next update.
func (p *Plot) Trace() []Point { return p.trace }

// Frame returns the orbit tips computed by the most recent update.
func (p *Plot) Frame() Frame { return p.frame }

// ID names the plot's drawing surface. It changes with the frequency ratio.
func (p *Plot) ID() string { return fmt.Sprintf("Plot%v", p.ratio) }

// Reset zeroes the clock and empties the trace, keeping its capacity.
func (p *Plot) Reset() {
	p.time = 0
	p.trace = p.trace[:0]
	p.frame = p.tipFrame()
}

// SetFrequencyRatio replaces the frequency ratio and resets the plot when the
// value differs. Zero and non-finite ratios are ignored. It reports whether a
// reset happened.
func (p *Plot) SetFrequencyRatio(v float64) bool {
	if v == p.ratio || v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	p.ratio = v
	p.Reset()
	return true
}

// SetTimeScale sets the time scale, clamped to [0, MaxTimeScale].
func (p *Plot) SetTimeScale(v float64) {
	if math.IsNaN(v) {
		return
	}
	p.timeScale = timeScaleEditor.Apply(v)
}

// Step runs one full update for a frame that took frameDelta seconds and
// returns the orbit tips at the new time.
func (p *Plot) Step(frameDelta float64) Frame {
	p.advance(frameDelta)
	return p.finish()
}

// Show runs one frame against an immediate-mode UI: advance the clock, lay out
// the controls, append the exact current tip, then draw.
func (p *Plot) Show(ui UI) {
	p.advance(ui.FrameDelta())

	if ui.Button("Reset") {
		p.Reset()
	}
	p.SetFrequencyRatio(ui.DragFloat(frequencyEditor, p.ratio))
	p.SetTimeScale(ui.DragFloat(timeScaleEditor, p.timeScale))

	p.finish()
	p.Draw(ui.Plot(p.ID()))
}

// Draw renders both orbit radii as arrows and the trace as points.
func (p *Plot) Draw(s Surface) {
	origin := Point{}
	s.Arrows(
		[]Point{origin, p.frame.Primary},
		[]Point{p.frame.Primary, p.frame.Secondary},
	)
	s.Points(p.trace)
}

// advance moves the clock forward by the clamped, scaled frame delta and
// appends the interpolated sub-samples covering the step.
func (p *Plot) advance(frameDelta float64) {
	last := p.time
	// |ratio| keeps the clock non-decreasing for negative ratios.
	norm := SpeedNormalization / math.Abs(p.ratio)
	p.time += clampDelta(frameDelta) * p.timeScale * norm
	dt := p.time - last

	n := int(math.Floor(SamplesPerUnitScale * p.timeScale))
	if n == 0 {
		return
	}
	inc := dt / float64(n)
	for i := 0; i <= n; i++ {
		_, tip := Tip(last+inc*float64(i), p.ratio)
		p.trace = append(p.trace, tip)
	}
}

// finish appends the tip at the exact current time. Under most conditions it
// duplicates the last sub-sample; it is kept so the trace always ends at the
// current position even when sub-sampling was skipped.
func (p *Plot) finish() Frame {
	p.frame = p.tipFrame()
	p.trace = append(p.trace, p.frame.Secondary)
	return p.frame
}

func (p *Plot) tipFrame() Frame {
	p1, p2 := Tip(p.time, p.ratio)
	return Frame{Primary: p1, Secondary: p2}
}

func clampDelta(d float64) float64 {
	if d < 0 || math.IsNaN(d) {
		return 0
	}
	return math.Min(d, MaxFrameDelta)
}
