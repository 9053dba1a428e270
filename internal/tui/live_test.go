package tui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/spinners/internal/app"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func step(t *testing.T, m tea.Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return model, cmd
}

func run(t *testing.T, m Model, start time.Time, frames int) Model {
	t.Helper()
	for i := 0; i < frames; i++ {
		var cmd tea.Cmd
		m, cmd = step(t, m, tickMsg(start.Add(time.Duration(i)*time.Second/60)))
		if cmd == nil {
			t.Fatalf("frame %d: expected another tick to be scheduled", i)
		}
	}
	return m
}

func TestTicksAdvanceBothPlots(t *testing.T) {
	shell := app.New(app.DefaultOptions())
	m := run(t, NewModel(shell), time.Unix(0, 0), 5)

	for i, p := range shell.Plots() {
		if p.Time() <= 0 {
			t.Errorf("plot %d did not advance", i)
		}
		if len(m.history[i]) != 5 {
			t.Errorf("plot %d: expected 5 history samples, got %d", i, len(m.history[i]))
		}
	}
	if shell.Frames() != 5 {
		t.Errorf("expected 5 frames, got %d", shell.Frames())
	}
}

func TestFirstFrameHasZeroDelta(t *testing.T) {
	shell := app.New(app.DefaultOptions())
	run(t, NewModel(shell), time.Unix(0, 0), 1)

	if shell.Plot(0).Time() != 0 {
		t.Errorf("expected no time on the first frame, got %f", shell.Plot(0).Time())
	}
}

func TestResetKeyTargetsFocusedPlot(t *testing.T) {
	shell := app.New(app.DefaultOptions())
	start := time.Unix(0, 0)
	m := run(t, NewModel(shell), start, 3)

	m, _ = step(t, m, key("tab"))
	m, _ = step(t, m, key("r"))
	m = run(t, m, start.Add(time.Second), 1)

	if len(shell.Plot(1).Trace()) != 1 {
		t.Errorf("expected focused plot reset to one point, got %d", len(shell.Plot(1).Trace()))
	}
	if len(shell.Plot(0).Trace()) <= 1 {
		t.Error("expected unfocused plot untouched")
	}
	if m.input[1].reset {
		t.Error("expected input consumed by the frame")
	}
}

func TestRatioKeysResetPlot(t *testing.T) {
	shell := app.New(app.DefaultOptions())
	start := time.Unix(0, 0)
	m := run(t, NewModel(shell), start, 3)

	m, _ = step(t, m, key("+"))
	run(t, m, start.Add(time.Second), 1)

	p := shell.Plot(0)
	if math.Abs(p.FrequencyRatio()-(math.Pi+0.001)) > 1e-12 {
		t.Errorf("expected ratio nudged by 0.001, got %f", p.FrequencyRatio())
	}
	if p.Time() != 0 || len(p.Trace()) != 1 {
		t.Errorf("expected ratio change to reset, got t=%f points=%d", p.Time(), len(p.Trace()))
	}
}

func TestTimeScaleKeysClamp(t *testing.T) {
	shell := app.New(app.DefaultOptions())
	m := NewModel(shell)

	m, _ = step(t, m, key("down"))
	for i := 0; i < 20; i++ {
		m, _ = step(t, m, key("H"))
	}
	run(t, m, time.Unix(0, 0), 1)

	if shell.Plot(0).TimeScale() != 0 {
		t.Errorf("expected time scale clamped to 0, got %f", shell.Plot(0).TimeScale())
	}
}

func TestQuit(t *testing.T) {
	m := NewModel(app.New(app.DefaultOptions()))
	_, cmd := step(t, m, key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestViewShowsBothPlots(t *testing.T) {
	shell := app.New(app.DefaultOptions())
	m := run(t, NewModel(shell), time.Unix(0, 0), 3)

	out := m.View()
	for _, p := range shell.Plots() {
		if !strings.Contains(out, p.ID()) {
			t.Errorf("view missing %s", p.ID())
		}
	}
	if !strings.Contains(out, "3.14159") {
		t.Error("view missing formatted ratio")
	}
	if !strings.Contains(out, strings.Repeat("─", canvasWidth)) {
		t.Error("view missing separator above the chart")
	}
}

func TestResizeRebuildsCanvases(t *testing.T) {
	m := NewModel(app.New(app.DefaultOptions()))
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.canvases[0].Width != 54 || m.canvases[0].Height != 26 {
		t.Errorf("unexpected canvas size %dx%d", m.canvases[0].Width, m.canvases[0].Height)
	}
}
