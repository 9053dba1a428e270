package viz

import (
	"fmt"
	"strings"
)

// ParamLine renders "label value" with a marker on the focused row.
func (s Styles) ParamLine(label, value string, focused bool) string {
	if focused {
		return s.Active.Render("> "+label) + " " + s.Active.Render(value)
	}
	return "  " + s.Label.Render(label) + " " + s.Value.Render(value)
}

// FormatValue prints v with a fixed number of decimals, or with the shortest
// exact representation when decimals is negative.
func FormatValue(v float64, decimals int) string {
	if decimals < 0 {
		return fmt.Sprintf("%g", v)
	}
	return fmt.Sprintf("%.*f", decimals, v)
}

// Rule returns a horizontal separator of width w.
func (s Styles) Rule(w int) string {
	if w < 0 {
		w = 0
	}
	return s.Label.Render(strings.Repeat("─", w))
}
