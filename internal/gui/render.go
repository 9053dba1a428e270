package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/spinners/internal/theme"
	"github.com/san-kum/spinners/internal/viz"
)

const (
	fontSize    = 16
	fontSpacing = 1
)

// painter draws viz primitives straight to the raylib frame buffer. It must
// only be used between BeginDrawing and EndDrawing.
type painter struct {
	font rl.Font
}

func color(c colorful.Color) rl.Color {
	rgba := theme.RGBA(c)
	return rl.NewColor(rgba.R, rgba.G, rgba.B, rgba.A)
}

func vec(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x), float32(y))
}

func rect(r viz.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}

func (p painter) Line(x0, y0, x1, y1, width float64, c colorful.Color) {
	rl.DrawLineEx(vec(x0, y0), vec(x1, y1), float32(width), color(c))
}

func (p painter) Circle(x, y, radius float64, c colorful.Color) {
	rl.DrawCircleV(vec(x, y), float32(radius), color(c))
}

func (p painter) FillRect(r viz.Rect, c colorful.Color) {
	rl.DrawRectangleRec(rect(r), color(c))
}

func (p painter) StrokeRect(r viz.Rect, width float64, c colorful.Color) {
	rl.DrawRectangleLinesEx(rect(r), float32(width), color(c))
}

func (p painter) Text(s string, x, y float64, c colorful.Color) {
	rl.DrawTextEx(p.font, s, vec(x, y), fontSize, fontSpacing, color(c))
}

func (p painter) MeasureText(s string) float64 {
	return float64(rl.MeasureTextEx(p.font, s, fontSize, fontSpacing).X)
}
