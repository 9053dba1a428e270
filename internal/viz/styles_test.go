package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/spinners/internal/theme"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     string
	}{
		{3.14159265, 5, "3.14159"},
		{1, 5, "1.00000"},
		{1.5, -1, "1.5"},
		{2, -1, "2"},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.v, tt.decimals); got != tt.want {
			t.Errorf("FormatValue(%v, %d): expected %q, got %q", tt.v, tt.decimals, tt.want, got)
		}
	}
}

func TestParamLineMarksFocus(t *testing.T) {
	s := NewStyles(theme.Dark())
	if !strings.Contains(s.ParamLine("Num:", "3.14159", true), ">") {
		t.Error("expected focus marker")
	}
	if strings.Contains(s.ParamLine("Num:", "3.14159", false), ">") {
		t.Error("unexpected focus marker")
	}
}

func TestRule(t *testing.T) {
	s := NewStyles(theme.Dark())
	if got := strings.Count(s.Rule(12), "─"); got != 12 {
		t.Errorf("expected 12 rule cells, got %d", got)
	}
	if got := s.Rule(-3); strings.Contains(got, "─") {
		t.Errorf("expected empty rule, got %q", got)
	}
}
