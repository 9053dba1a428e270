// Package theme holds the visual settings handed to the application shell at
// construction. There is one toggle: dark or light.
package theme

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Visuals is the palette used by every rendering backend.
type Visuals struct {
	Dark       bool
	Background colorful.Color
	Panel      colorful.Color // widget fill
	Hover      colorful.Color // hovered / active widget fill
	Stroke     colorful.Color // widget border
	Text       colorful.Color
	TextDim    colorful.Color
	Arrow      colorful.Color
	Trace      colorful.Color
}

// Dark mirrors the monochrome dark palette of the desktop window.
func Dark() Visuals {
	bg := mustHex("#1b1b1b")
	text := mustHex("#8c8c8c")
	return Visuals{
		Dark:       true,
		Background: bg,
		Panel:      mustHex("#3c3c3c"),
		Hover:      mustHex("#464646"),
		Stroke:     mustHex("#5a5a5a"),
		Text:       text,
		TextDim:    text.BlendLab(bg, 0.5).Clamped(),
		Arrow:      mustHex("#a0a0a0"), // light gray
		Trace:      mustHex("#ffffff"),
	}
}

func Light() Visuals {
	bg := mustHex("#f8f8f8")
	text := mustHex("#505050")
	return Visuals{
		Dark:       false,
		Background: bg,
		Panel:      mustHex("#e6e6e6"),
		Hover:      mustHex("#dcdcdc"),
		Stroke:     mustHex("#bebebe"),
		Text:       text,
		TextDim:    text.BlendLab(bg, 0.5).Clamped(),
		Arrow:      mustHex("#606060"),
		Trace:      mustHex("#000000"),
	}
}

// For returns the dark or light palette.
func For(dark bool) Visuals {
	if dark {
		return Dark()
	}
	return Light()
}

// RGBA converts c to an opaque color.RGBA.
func RGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Hex returns c as a #rrggbb string.
func Hex(c colorful.Color) string {
	return c.Clamped().Hex()
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
