package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/spinners/internal/app"
	"github.com/san-kum/spinners/internal/epicycle"
	"github.com/san-kum/spinners/internal/viz"
)

const (
	canvasWidth     = 36
	canvasHeight    = 18
	historyCapacity = 240
	graphHeight     = 4
)

const (
	fieldRatio = iota
	fieldTimeScale
)

type tickMsg time.Time

// pending holds keyboard input collected between frames for one column.
type pending struct {
	reset bool
	ratio float64 // signed number of ratio steps
	scale float64 // signed number of time scale steps
}

// Model renders both plots of a shell in the terminal.
type Model struct {
	shell    *app.Shell
	styles   viz.Styles
	canvases [2]*viz.Canvas
	ids      [2]string
	history  [2][]float64
	input    [2]pending
	focus    int
	field    int
	last     time.Time
	repaint  bool
}

func NewModel(shell *app.Shell) Model {
	m := Model{
		shell:  shell,
		styles: viz.NewStyles(shell.Visuals()),
	}
	for i := range m.canvases {
		m.canvases[i] = viz.NewCanvas(canvasWidth, canvasHeight)
		m.history[i] = make([]float64, 0, historyCapacity)
	}
	return m
}

// Run blocks until the user quits.
func Run(shell *app.Shell) error {
	_, err := tea.NewProgram(NewModel(shell), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	fps := m.shell.Schedule().FPS
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		m.frame(time.Time(msg))
		if m.repaint {
			return m, m.tick()
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := &m.input[m.focus]
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % len(m.canvases)
	case "up", "k":
		m.field = fieldRatio
	case "down", "j":
		m.field = fieldTimeScale
	case "r":
		in.reset = true
	case "+", "=":
		in.ratio++
	case "-", "_":
		in.ratio--
	case "]":
		in.scale++
	case "[":
		in.scale--
	case "right", "l":
		m.nudge(in, 1)
	case "left", "h":
		m.nudge(in, -1)
	case "L":
		m.nudge(in, 10)
	case "H":
		m.nudge(in, -10)
	}
	return m, nil
}

func (m *Model) nudge(in *pending, steps float64) {
	if m.field == fieldRatio {
		in.ratio += steps
	} else {
		in.scale += steps
	}
}

func (m *Model) resize(w, h int) {
	cw := w/2 - 6
	ch := h - 14
	if cw < 16 {
		cw = 16
	}
	if ch < 8 {
		ch = 8
	}
	for i := range m.canvases {
		m.canvases[i] = viz.NewCanvas(cw, ch)
	}
}

// frame runs one shell frame stamped at now.
func (m *Model) frame(now time.Time) {
	delta := 0.0
	if !m.last.IsZero() {
		delta = now.Sub(m.last).Seconds()
	}
	m.last = now
	m.repaint = false

	m.shell.Frame(&frameView{m: m, delta: delta})

	for i, p := range m.shell.Plots() {
		h := append(m.history[i], p.Frame().Secondary.X)
		if len(h) > historyCapacity {
			h = h[len(h)-historyCapacity:]
		}
		m.history[i] = h
		m.input[i] = pending{}
	}
}

// frameView adapts the model to app.Columns for one frame.
type frameView struct {
	m     *Model
	delta float64
}

func (f *frameView) Columns(n int) []epicycle.UI {
	cols := make([]epicycle.UI, 0, n)
	for i := 0; i < n && i < len(f.m.canvases); i++ {
		cols = append(cols, &column{m: f.m, idx: i, delta: f.delta})
	}
	return cols
}

func (f *frameView) RequestRepaint() { f.m.repaint = true }

// column is the epicycle.UI of one plot: key presses stand in for clicks and
// drags.
type column struct {
	m     *Model
	idx   int
	delta float64
}

func (c *column) FrameDelta() float64 { return c.delta }

func (c *column) Button(label string) bool {
	return c.m.input[c.idx].reset
}

func (c *column) DragFloat(d epicycle.DragFloat, value float64) float64 {
	in := c.m.input[c.idx]
	steps := in.scale
	if d.Prefix == epicycle.FrequencyEditor().Prefix {
		steps = in.ratio
	}
	if steps == 0 {
		return value
	}
	return d.Apply(value + steps*d.Speed)
}

func (c *column) Plot(id string) epicycle.Surface {
	if c.m.ids[c.idx] != id {
		c.m.ids[c.idx] = id
		c.m.history[c.idx] = c.m.history[c.idx][:0]
	}
	canvas := c.m.canvases[c.idx]
	canvas.Clear()
	return canvas.Surface()
}

func (m Model) View() string {
	cols := make([]string, len(m.canvases))
	for i := range m.canvases {
		cols[i] = m.viewColumn(i)
	}
	help := m.styles.Hint.Render("tab: plot  ↑↓: field  ←→: adjust  +/-: ratio  [ ]: time scale  r: reset  q: quit")
	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.JoinHorizontal(lipgloss.Top, cols...), help)
}

func (m Model) viewColumn(i int) string {
	p := m.shell.Plot(i)
	focused := i == m.focus
	ratioEd, scaleEd := epicycle.FrequencyEditor(), epicycle.TimeScaleEditor()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(p.ID()) + "\n")
	b.WriteString(m.styles.ParamLine(strings.TrimSpace(ratioEd.Prefix), viz.FormatValue(p.FrequencyRatio(), ratioEd.Precision()), focused && m.field == fieldRatio) + "\n")
	b.WriteString(m.styles.ParamLine(strings.TrimSpace(scaleEd.Prefix), viz.FormatValue(p.TimeScale(), scaleEd.Precision()), focused && m.field == fieldTimeScale) + "\n")
	b.WriteString(m.styles.Label.Render(fmt.Sprintf("  t=%.2f  points=%d", p.Time(), len(p.Trace()))) + "\n")
	b.WriteString(m.styles.Trace.Render(m.canvases[i].String()))

	b.WriteString(m.styles.Rule(m.canvases[i].Width))

	if h := m.history[i]; len(h) > 1 {
		chart := asciigraph.Plot(h,
			asciigraph.Height(graphHeight),
			asciigraph.Width(m.canvases[i].Width-8),
			asciigraph.Precision(2),
			asciigraph.Caption("tip x"),
		)
		b.WriteString("\n" + m.styles.Graph.Render(chart))
	}

	if focused {
		return m.styles.Focus.Render(b.String())
	}
	return m.styles.Panel.Render(b.String())
}
