package config

import (
	"math"
	"sort"
)

// Presets maps a name to the frequency ratios of the two plots.
var Presets = map[string][PlotCount]float64{
	"default":    {math.Pi, math.Phi},
	"euler":      {math.E, math.Sqrt2},
	"integer":    {3, 5},
	"retrograde": {-2, -math.Pi},
	"near-five":  {4.99, 5.01},
	"roots":      {math.Sqrt2, math.Sqrt(3)},
}

// GetPreset returns the default configuration with the preset's ratios, or
// nil for an unknown name.
func GetPreset(name string) *Config {
	ratios, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	for i, r := range ratios {
		cfg.Plots[i].FrequencyRatio = r
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
