// Package gui runs the shell in a desktop window with raylib.
package gui

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/spinners/internal/app"
	"github.com/san-kum/spinners/internal/config"
	"github.com/san-kum/spinners/internal/viz"
)

const title = "spinners"

// fontPath is tried before falling back to raylib's built-in font.
var fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"

var ErrNoWindow = errors.New("gui: window could not be created")

type App struct {
	Shell   *app.Shell
	Logger  *slog.Logger
	Width   int32
	Height  int32
	Widgets viz.Widgets
	Font    rl.Font

	delta   float64
	waiting bool
	quit    bool
}

func initWindow(w, h int32, fps int) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w, h, title)
	if !rl.IsWindowReady() {
		return ErrNoWindow
	}
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
	return nil
}

// loadFont loads the Liberation Mono font when installed, otherwise the
// default raylib font.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(shell *app.Shell, win config.WindowConfig, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		Shell:  shell,
		Logger: logger,
		Width:  int32(win.Width),
		Height: int32(win.Height),
	}
}

// Run opens the window and blocks until it is closed.
func Run(shell *app.Shell, win config.WindowConfig, logger *slog.Logger) error {
	a := NewApp(shell, win, logger)
	if err := initWindow(a.Width, a.Height, shell.Schedule().FPS); err != nil {
		return err
	}
	defer rl.CloseWindow()

	a.Font = loadFont()
	a.Logger.Info("window opened",
		"width", a.Width,
		"height", a.Height,
		"fps", shell.Schedule().FPS,
		"repaint", shell.Schedule().Mode,
	)
	a.RunLoop()
	a.Logger.Info("window closed", "frames", shell.Frames())
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

// Update samples input for the next frame.
func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) && a.Widgets.Active() == "" {
		a.quit = true
	}
	a.delta = float64(rl.GetFrameTime())

	mouse := rl.GetMousePosition()
	a.Widgets.Begin(viz.Pointer{
		X:        float64(mouse.X),
		Y:        float64(mouse.Y),
		DX:       float64(rl.GetMouseDelta().X),
		Down:     rl.IsMouseButtonDown(rl.MouseLeftButton),
		Pressed:  rl.IsMouseButtonPressed(rl.MouseLeftButton),
		Released: rl.IsMouseButtonReleased(rl.MouseLeftButton),
	})
}

func (a *App) Draw() {
	visuals := a.Shell.Visuals()

	rl.BeginDrawing()
	rl.ClearBackground(color(visuals.Background))

	frame := &viz.Frame{
		Width:   float64(rl.GetScreenWidth()),
		Height:  float64(rl.GetScreenHeight()),
		Delta:   a.delta,
		Widgets: &a.Widgets,
		Painter: painter{font: a.Font},
		Visuals: visuals,
	}
	a.Shell.Frame(frame)
	a.drawHUD(frame)

	rl.EndDrawing()
	a.schedule(frame.Repaint)
}

func (a *App) drawHUD(f *viz.Frame) {
	p := f.Painter
	fps := fmt.Sprintf("%d FPS", rl.GetFPS())
	p.Text(fps, f.Width-p.MeasureText(fps)-viz.Padding, f.Height-viz.Padding-fontSize, f.Visuals.TextDim)
}

// schedule switches raylib between polling and waiting for events depending
// on whether the shell asked for another frame.
func (a *App) schedule(repaint bool) {
	switch {
	case repaint && a.waiting:
		rl.DisableEventWaiting()
		a.waiting = false
	case !repaint && !a.waiting:
		rl.EnableEventWaiting()
		a.waiting = true
	}
}
