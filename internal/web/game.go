// Package web runs the shell as an ebiten game. Built for js/wasm it draws
// into a browser canvas; on desktop it opens a native window.
package web

import (
	"errors"
	"image"
	"log/slog"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/spinners/internal/app"
	"github.com/san-kum/spinners/internal/config"
	"github.com/san-kum/spinners/internal/theme"
	"github.com/san-kum/spinners/internal/viz"
)

const (
	// glyphWidth and glyphHeight are the debug font metrics.
	glyphWidth  = 6
	glyphHeight = 16
	title       = "spinners"
)

// Game records each shell frame during Update and replays it in Draw.
type Game struct {
	shell   *app.Shell
	logger  *slog.Logger
	widgets viz.Widgets
	list    viz.DisplayList
	scratch *ebiten.Image

	width, height int
	cursorX       int
	last          time.Time
	unfocused     bool

	now func() time.Time
}

func NewGame(shell *app.Shell, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		shell:  shell,
		logger: logger,
		list:   viz.DisplayList{GlyphWidth: glyphWidth},
		now:    time.Now,
	}
}

// Run blocks until the window is closed or the page is unloaded.
func Run(shell *app.Shell, win config.WindowConfig, logger *slog.Logger) error {
	g := NewGame(shell, logger)

	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(shell.Schedule().FPS)

	g.logger.Info("starting", "os", runtime.GOOS, "tps", shell.Schedule().FPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	g.logger.Info("stopped", "frames", shell.Frames())
	return nil
}

func (g *Game) Update() error {
	if runtime.GOOS != "js" && inpututil.IsKeyJustPressed(ebiten.KeyQ) && g.widgets.Active() == "" {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	g.widgets.Begin(viz.Pointer{
		X:        float64(x),
		Y:        float64(y),
		DX:       float64(x - g.cursorX),
		Down:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	})
	g.cursorX = x

	now := g.now()
	delta := 0.0
	if !g.last.IsZero() {
		delta = now.Sub(g.last).Seconds()
	}
	g.last = now

	g.list.Reset()
	frame := &viz.Frame{
		Width:   float64(g.width),
		Height:  float64(g.height),
		Delta:   delta,
		Widgets: &g.widgets,
		Painter: &g.list,
		Visuals: g.shell.Visuals(),
	}
	g.shell.Frame(frame)

	// keep animating in background tabs and unfocused windows while the
	// shell keeps asking for frames
	if frame.Repaint != g.unfocused {
		ebiten.SetRunnableOnUnfocused(frame.Repaint)
		g.unfocused = frame.Repaint
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(theme.RGBA(g.shell.Visuals().Background))

	for _, op := range g.list.Ops {
		c := theme.RGBA(op.Color)
		switch op.Kind {
		case viz.OpLine:
			vector.StrokeLine(screen, float32(op.X0), float32(op.Y0), float32(op.X1), float32(op.Y1), float32(op.Size), c, true)
		case viz.OpCircle:
			vector.DrawFilledCircle(screen, float32(op.X0), float32(op.Y0), float32(op.Size), c, true)
		case viz.OpFillRect:
			r := op.Rect
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
		case viz.OpStrokeRect:
			r := op.Rect
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(op.Size), c, false)
		case viz.OpText:
			g.drawText(screen, op)
		}
	}
}

// drawText prints white debug text into a scratch image and tints it while
// copying it to the screen.
func (g *Game) drawText(screen *ebiten.Image, op viz.Op) {
	w := int(g.list.MeasureText(op.Text))
	if w == 0 {
		return
	}
	if g.scratch == nil || g.scratch.Bounds().Dx() < w {
		g.scratch = ebiten.NewImage(w+64, glyphHeight)
	}
	g.scratch.Clear()
	ebitenutil.DebugPrint(g.scratch, op.Text)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(op.X0, op.Y0-2)
	opts.ColorScale.ScaleWithColor(theme.RGBA(op.Color))
	screen.DrawImage(g.scratch.SubImage(image.Rect(0, 0, w, glyphHeight)).(*ebiten.Image), opts)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
