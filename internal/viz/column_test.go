package viz

import (
	"math"
	"testing"

	"github.com/san-kum/spinners/internal/epicycle"
	"github.com/san-kum/spinners/internal/theme"
)

func newTestFrame(p Pointer, w *Widgets) (*Frame, *DisplayList) {
	dl := &DisplayList{GlyphWidth: 6}
	w.Begin(p)
	return &Frame{
		Width:   800,
		Height:  400,
		Delta:   1.0 / 60,
		Widgets: w,
		Painter: dl,
		Visuals: theme.Dark(),
	}, dl
}

func TestColumnDrawsControlsAndPlot(t *testing.T) {
	var w Widgets
	f, dl := newTestFrame(Pointer{}, &w)
	p := epicycle.New(math.Pi)

	cols := f.Columns(2)
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(cols))
	}
	p.Show(cols[0])

	if n := dl.Count(OpFillRect); n != 3 {
		t.Errorf("expected 3 widgets, got %d", n)
	}
	if n := dl.Count(OpText); n != 3 {
		t.Errorf("expected 3 labels, got %d", n)
	}
	if n := dl.Count(OpLine); n != 6 {
		t.Errorf("expected 2 arrows of 3 segments, got %d", n)
	}
	if n := dl.Count(OpCircle); n != len(p.Trace()) {
		t.Errorf("expected a circle per trace point, got %d for %d", n, len(p.Trace()))
	}
	if dl.Ops[len(dl.Ops)-1].Color != theme.Dark().Trace {
		t.Error("expected trace drawn last in the trace color")
	}
}

func TestColumnLabels(t *testing.T) {
	var w Widgets
	f, dl := newTestFrame(Pointer{}, &w)
	epicycle.New(math.Pi).Show(f.Columns(2)[0])

	want := []string{"Reset", "Num: 3.14159", "Time scale: 1.0"}
	var got []string
	for _, op := range dl.Ops {
		if op.Kind == OpText {
			got = append(got, op.Text)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("expected labels %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestColumnPlotAreaKeepsAspect(t *testing.T) {
	var w Widgets
	f, _ := newTestFrame(Pointer{}, &w)
	col := f.Columns(2)[1].(*Column)

	area := col.PlotArea()
	if area.X != 408 || area.Y != 40 || area.W != 384 || area.H != 352 {
		t.Errorf("unexpected plot area %+v", area)
	}
	vp := area.Viewport()
	x, y := vp.ToScreen(epicycle.Point{X: 1, Y: 1})
	cx, cy := vp.ToScreen(epicycle.Point{})
	if math.Abs((x-cx)+(y-cy)) > 1e-9 {
		t.Error("expected equal scale on both axes")
	}
}

func TestColumnResetClick(t *testing.T) {
	var w Widgets
	p := epicycle.New(math.Pi)
	for i := 0; i < 3; i++ {
		f, _ := newTestFrame(Pointer{}, &w)
		p.Show(f.Columns(2)[0])
	}

	// the reset button is the first widget of the row
	f, _ := newTestFrame(Pointer{X: 20, Y: 15, Down: true, Pressed: true}, &w)
	p.Show(f.Columns(2)[0])
	f, _ = newTestFrame(Pointer{X: 20, Y: 15, Released: true}, &w)
	p.Show(f.Columns(2)[0])

	if len(p.Trace()) != 1 || p.Time() != 0 {
		t.Errorf("expected reset, got t=%f points=%d", p.Time(), len(p.Trace()))
	}
}

func TestColumnDragRatio(t *testing.T) {
	var w Widgets
	p := epicycle.New(math.Pi)

	// "Num: 3.14159" follows the 46px reset button
	f, _ := newTestFrame(Pointer{X: 70, Y: 15, Down: true, Pressed: true}, &w)
	p.Show(f.Columns(2)[0])
	f, _ = newTestFrame(Pointer{X: 170, Y: 15, DX: 100, Down: true}, &w)
	p.Show(f.Columns(2)[0])

	if math.Abs(p.FrequencyRatio()-(math.Pi+0.1)) > 1e-12 {
		t.Errorf("expected ratio dragged by 0.1, got %f", p.FrequencyRatio())
	}
	if p.Time() != 0 {
		t.Errorf("expected ratio change to reset the clock, got %f", p.Time())
	}
}

func TestFrameRepaint(t *testing.T) {
	var w Widgets
	f, _ := newTestFrame(Pointer{}, &w)
	f.RequestRepaint()
	if !f.Repaint {
		t.Error("expected repaint flag")
	}
}
