package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/spinners/internal/epicycle"
)

const (
	PlotCount     = 2
	DefaultFPS    = 60
	DefaultWidth  = 1280
	DefaultHeight = 640
)

var (
	ErrPlotCount      = errors.New("config: exactly two plots are required")
	ErrZeroFrequency  = errors.New("config: frequency ratio must be finite and non-zero")
	ErrTimeScaleRange = errors.New("config: time scale out of range [0, 10]")
	ErrInvalidFPS     = errors.New("config: fps must be positive")
	ErrWindowSize     = errors.New("config: window size must be positive")
	ErrUnknownPreset  = errors.New("config: unknown preset")
)

type Config struct {
	Plots   []PlotConfig  `yaml:"plots"`
	Visuals VisualsConfig `yaml:"visuals"`
	FPS     int           `yaml:"fps"`
	Window  WindowConfig  `yaml:"window"`
}

type PlotConfig struct {
	FrequencyRatio float64 `yaml:"frequency_ratio"`
	TimeScale      float64 `yaml:"time_scale"`
}

// UnmarshalYAML starts each plot entry at the default time scale, since a
// plots list replaces the defaults wholesale.
func (p *PlotConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain PlotConfig
	out := plain{TimeScale: epicycle.DefaultTimeScale}
	if err := node.Decode(&out); err != nil {
		return err
	}
	*p = PlotConfig(out)
	return nil
}

type VisualsConfig struct {
	Dark bool `yaml:"dark"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Plots: []PlotConfig{
			{FrequencyRatio: math.Pi, TimeScale: epicycle.DefaultTimeScale},
			{FrequencyRatio: math.Phi, TimeScale: epicycle.DefaultTimeScale},
		},
		Visuals: VisualsConfig{Dark: true},
		FPS:     DefaultFPS,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Encode writes cfg as YAML to w.
func Encode(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

func (c *Config) Validate() error {
	if len(c.Plots) != PlotCount {
		return fmt.Errorf("%w: got %d", ErrPlotCount, len(c.Plots))
	}
	for i, p := range c.Plots {
		if p.FrequencyRatio == 0 || math.IsNaN(p.FrequencyRatio) || math.IsInf(p.FrequencyRatio, 0) {
			return fmt.Errorf("plot %d: %w", i, ErrZeroFrequency)
		}
		if p.TimeScale < 0 || p.TimeScale > epicycle.MaxTimeScale || math.IsNaN(p.TimeScale) {
			return fmt.Errorf("plot %d: %w: %v", i, ErrTimeScaleRange, p.TimeScale)
		}
	}
	if c.FPS <= 0 {
		return ErrInvalidFPS
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return ErrWindowSize
	}
	return nil
}

// Ratios returns the frequency ratio of both plots.
func (c *Config) Ratios() [PlotCount]float64 {
	var r [PlotCount]float64
	for i := 0; i < PlotCount && i < len(c.Plots); i++ {
		r[i] = c.Plots[i].FrequencyRatio
	}
	return r
}

// TimeScales returns the time scale of both plots.
func (c *Config) TimeScales() [PlotCount]float64 {
	var s [PlotCount]float64
	for i := 0; i < PlotCount && i < len(c.Plots); i++ {
		s[i] = c.Plots[i].TimeScale
	}
	return s
}
