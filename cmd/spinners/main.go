package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/spinners/internal/analysis"
	"github.com/san-kum/spinners/internal/app"
	"github.com/san-kum/spinners/internal/config"
	"github.com/san-kum/spinners/internal/epicycle"
	"github.com/san-kum/spinners/internal/export"
	"github.com/san-kum/spinners/internal/gui"
	"github.com/san-kum/spinners/internal/logging"
	"github.com/san-kum/spinners/internal/theme"
	"github.com/san-kum/spinners/internal/tui"
)

var (
	configFile string
	preset     string
	ratioA     float64
	ratioB     float64
	timeScale  float64
	fps        int
	light      bool
	logLevel   string

	// headless commands
	frames      int
	traceFrames int
	dt          float64
	format      string
	width       int
	height      int
	dump        string
	samples     int
	spacing     float64

	logger = slog.Default()
)

// main registers the commands, opens the desktop window when no subcommand is
// given and exits with status 1 if the command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spinners",
		Short: "two epicycle plots side by side",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(os.Stderr, logLevel)
			if err != nil {
				return err
			}
			logger = l
			slog.SetDefault(l)
			return nil
		},
		SilenceUsage: true,
		RunE:         runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use a named ratio preset")
	pf.Float64Var(&ratioA, "ratio-a", 0, "frequency ratio of the left plot")
	pf.Float64Var(&ratioB, "ratio-b", 0, "frequency ratio of the right plot")
	pf.Float64Var(&timeScale, "time-scale", epicycle.DefaultTimeScale, "time scale of both plots")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "target frame rate")
	pf.BoolVar(&light, "light", false, "use the light palette")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open both plots in a desktop window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "draw both plots in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [slot]",
		Short: "run one plot headless and write an image to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&frames, "frames", 600, "number of frames to simulate")
	snapshotCmd.Flags().Float64Var(&dt, "dt", 1.0/60, "frame delta in seconds")
	snapshotCmd.Flags().StringVar(&format, "format", "svg", "output format ("+strings.Join(export.Formats, ", ")+")")
	snapshotCmd.Flags().IntVar(&width, "width", 640, "image width in pixels")
	snapshotCmd.Flags().IntVar(&height, "height", 640, "image height in pixels")

	traceCmd := &cobra.Command{
		Use:   "trace [slot]",
		Short: "chart the tip position of one plot over frames",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&traceFrames, "frames", 240, "number of frames to simulate")
	traceCmd.Flags().Float64Var(&dt, "dt", 1.0/60, "frame delta in seconds")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [slot]",
		Short: "frequency analysis of one plot's tip",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSpectrum,
	}
	spectrumCmd.Flags().IntVar(&samples, "samples", 4096, "number of tip samples")
	spectrumCmd.Flags().Float64Var(&spacing, "spacing", 0.05, "sample spacing in epicycle time")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named ratio presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}
	presetsCmd.Flags().StringVar(&dump, "dump", "", "print the named preset as a config file")

	rootCmd.AddCommand(guiCmd, tuiCmd, snapshotCmd, traceCmd, spectrumCmd, presetsCmd)
	return rootCmd
}

// buildConfig layers the preset, the config file and changed flags, in that
// order. A config file replaces the preset entirely.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	source := "defaults"

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("%w: %s (available: %v)", config.ErrUnknownPreset, preset, config.ListPresets())
		}
		source = "preset " + preset
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		source = configFile
	}

	flags := cmd.Flags()
	if flags.Changed("ratio-a") {
		cfg.Plots[0].FrequencyRatio = ratioA
	}
	if flags.Changed("ratio-b") {
		cfg.Plots[1].FrequencyRatio = ratioB
	}
	if flags.Changed("time-scale") {
		for i := range cfg.Plots {
			cfg.Plots[i].TimeScale = timeScale
		}
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("light") {
		cfg.Visuals.Dark = !light
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("config", "source", source, "ratios", cfg.Ratios(), "time_scales", cfg.TimeScales(), "dark", cfg.Visuals.Dark)
	return cfg, nil
}

func newShell(cmd *cobra.Command) (*app.Shell, *config.Config, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	return app.New(app.FromConfig(cfg)), cfg, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	shell, cfg, err := newShell(cmd)
	if err != nil {
		return err
	}
	logger.Info("starting", "backend", "raylib", "width", cfg.Window.Width, "height", cfg.Window.Height)
	if err := gui.Run(shell, cfg.Window, logger); err != nil {
		logger.Error("window failed", "err", err)
		return err
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	shell, _, err := newShell(cmd)
	if err != nil {
		return err
	}
	logger.Info("starting", "backend", "terminal")
	return tui.Run(shell)
}

// parseSlot maps "a"/"b" or "0"/"1" to a plot index.
func parseSlot(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	switch s := strings.ToLower(args[0]); s {
	case "a", "left":
		return 0, nil
	case "b", "right":
		return 1, nil
	default:
		i, err := strconv.Atoi(s)
		if err != nil || i < 0 || i >= config.PlotCount {
			return 0, fmt.Errorf("invalid slot %q: want a, b, 0 or 1", args[0])
		}
		return i, nil
	}
}

func headlessPlot(cmd *cobra.Command, args []string, n int) (config.PlotConfig, *config.Config, error) {
	slot, err := parseSlot(args)
	if err != nil {
		return config.PlotConfig{}, nil, err
	}
	cfg, err := buildConfig(cmd)
	if err != nil {
		return config.PlotConfig{}, nil, err
	}
	if n < 1 {
		return config.PlotConfig{}, nil, fmt.Errorf("count must be positive, got %d", n)
	}
	return cfg.Plots[slot], cfg, nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	pc, cfg, err := headlessPlot(cmd, args, frames)
	if err != nil {
		return err
	}
	p := export.Simulate(pc.FrequencyRatio, pc.TimeScale, frames, dt)
	logger.Info("snapshot", "plot", p.ID(), "frames", frames, "points", len(p.Trace()), "format", format)

	opts := export.Options{Width: width, Height: height, Visuals: theme.For(cfg.Visuals.Dark)}
	return export.Write(cmd.OutOrStdout(), p, format, opts)
}

func runTrace(cmd *cobra.Command, args []string) error {
	pc, _, err := headlessPlot(cmd, args, traceFrames)
	if err != nil {
		return err
	}
	p := epicycle.New(pc.FrequencyRatio)
	p.SetTimeScale(pc.TimeScale)

	xs := make([]float64, 0, traceFrames)
	ys := make([]float64, 0, traceFrames)
	for i := 0; i < traceFrames; i++ {
		tip := p.Step(dt).Secondary
		xs = append(xs, tip.X)
		ys = append(ys, tip.Y)
	}

	graph := asciigraph.PlotMany([][]float64{xs, ys},
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.Caption(fmt.Sprintf("%s  tip x (red), y (blue)  t=%.2f", p.ID(), p.Time())),
	)
	fmt.Fprintln(cmd.OutOrStdout(), graph)
	return nil
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	pc, _, err := headlessPlot(cmd, args, samples)
	if err != nil {
		return err
	}
	if spacing <= 0 {
		return fmt.Errorf("spacing must be positive, got %v", spacing)
	}
	xs := analysis.SampleTip(pc.FrequencyRatio, samples, spacing)
	ratio, err := analysis.Ratio(xs, spacing)
	if err != nil {
		return err
	}

	ps := analysis.MagnitudeSpectrum(xs)
	// show up to twice the larger orbit frequency
	limit := math.Max(1, math.Abs(pc.FrequencyRatio)) * 2
	bins := len(ps)
	for bins > 2 && analysis.BinFrequency(bins-1, 2*len(ps), spacing) > limit {
		bins--
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "frequency analysis: %s\n\n", epicycle.New(pc.FrequencyRatio).ID())
	graph := asciigraph.Plot(ps[:bins],
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("magnitude spectrum of tip x, 0 to %.2f rad/unit", limit)),
	)
	fmt.Fprintln(out, graph)
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PEAK\tFREQUENCY\tMAGNITUDE")
	for i, p := range analysis.Peaks(ps, spacing, 2) {
		fmt.Fprintf(w, "%d\t%.4f\t%.1f\n", i+1, p.Frequency, p.Magnitude)
	}
	fmt.Fprintf(w, "ratio\t%.4f\t(configured %.5f)\n", ratio, pc.FrequencyRatio)
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if dump != "" {
		cfg := config.GetPreset(dump)
		if cfg == nil {
			return fmt.Errorf("%w: %s", config.ErrUnknownPreset, dump)
		}
		return config.Encode(out, cfg)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLEFT\tRIGHT")
	for _, name := range config.ListPresets() {
		r := config.Presets[name]
		fmt.Fprintf(w, "%s\t%.5f\t%.5f\n", name, r[0], r[1])
	}
	return w.Flush()
}
