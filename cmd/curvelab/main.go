package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/curvelab/internal/config"
	"github.com/san-kum/curvelab/internal/curve"
	"github.com/san-kum/curvelab/internal/export"
	"github.com/san-kum/curvelab/internal/geom"
	"github.com/san-kum/curvelab/internal/metrics"
	"github.com/san-kum/curvelab/internal/rig"
	"github.com/san-kum/curvelab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	stiffness  float64
	damping    float64
	frames     int
	dt         float64
	scriptName string
	emitCSV    bool
	emitJSON   bool
	braille    bool
	showPlot   bool
	outPath    string
	theme      string
)

// main registers commands and flags; the bare command launches the
// interactive view.
func main() {
	rootCmd := &cobra.Command{
		Use:   "curvelab",
		Short: "interactive spring-driven bezier curve",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunInteractive(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named spring preset")
	rootCmd.PersistentFlags().Float64Var(&stiffness, "stiffness", config.DefaultStiffness, "spring constant")
	rootCmd.PersistentFlags().Float64Var(&damping, "damping", config.DefaultDamping, "damping factor")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "color theme")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scripted pointer headlessly and report metrics",
		RunE:  runScripted,
	}
	runCmd.Flags().IntVar(&frames, "frames", 600, "number of frames")
	runCmd.Flags().Float64Var(&dt, "dt", 1.0, "timestep in frame units")
	runCmd.Flags().StringVar(&scriptName, "script", "step", "pointer script (step|sweep|circle|hold)")
	runCmd.Flags().BoolVar(&emitCSV, "csv", false, "dump per-frame samples as CSV to stdout")
	runCmd.Flags().BoolVar(&emitJSON, "json", false, "dump per-frame samples as JSON to stdout")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "plot handle displacement over time")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "render a settled frame as SVG",
		RunE:  exportSVG,
	}
	exportCmd.Flags().IntVar(&frames, "frames", 600, "settling frames before the snapshot")
	exportCmd.Flags().StringVar(&scriptName, "script", "hold", "pointer script (step|sweep|circle|hold)")
	exportCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")
	exportCmd.Flags().BoolVar(&braille, "braille", false, "render the terminal dot raster instead of vector paths")

	compareCmd := &cobra.Command{
		Use:   "compare [preset] [preset] ...",
		Short: "compare presets on the same step response",
		Args:  cobra.MinimumNArgs(1),
		RunE:  comparePresets,
	}
	compareCmd.Flags().IntVar(&frames, "frames", 600, "number of frames")
	compareCmd.Flags().Float64Var(&dt, "dt", 1.0, "timestep in frame units")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the integrator and sampler",
		RunE:  benchCore,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list spring presets",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Printf("  %-10s k=%.2f damping=%.2f\n", name, p.Spring.Stiffness, p.Spring.Damping)
			}
		},
	}

	rootCmd.AddCommand(runCmd, exportCmd, compareCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves preset, config file, and explicit flags, in
// ascending priority.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("stiffness") {
		cfg.Spring.Stiffness = stiffness
	}
	if cmd.Flags().Changed("damping") {
		cfg.Spring.Damping = damping
	}
	if theme != "" {
		cfg.Theme = theme
	}

	return cfg, nil
}

func buildScript(cfg *config.Config) (rig.Script, error) {
	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	center := geom.Vec{X: w / 2, Y: h / 2}

	switch scriptName {
	case "step":
		return rig.StepScript{
			From: center,
			To:   geom.Vec{X: w * 0.7, Y: h * 0.3},
			At:   0,
		}, nil
	case "sweep":
		return rig.SweepScript{
			From:   geom.Vec{X: w * 0.25, Y: h / 2},
			To:     geom.Vec{X: w * 0.75, Y: h / 2},
			Frames: frames / 2,
		}, nil
	case "circle":
		return rig.CircleScript{
			Center: center,
			Radius: h * 0.25,
			Period: 240,
		}, nil
	case "hold":
		return rig.HoldScript{At: center}, nil
	default:
		return nil, fmt.Errorf("unknown script: %s", scriptName)
	}
}

func runScripted(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	script, err := buildScript(cfg)
	if err != nil {
		return err
	}

	r := rig.NewTuned(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Spring.Stiffness, cfg.Spring.Damping)
	runner := rig.NewRunner(r, script)
	runner.AddMetric(metrics.NewSettling(0.5))
	runner.AddMetric(metrics.NewOvershoot())
	runner.AddMetric(metrics.NewPathLength())

	fmt.Printf("running %s script (%d frames, dt=%.2f, k=%.2f, damping=%.2f)...\n",
		scriptName, frames, dt, cfg.Spring.Stiffness, cfg.Spring.Damping)
	start := time.Now()

	result, err := runner.Run(context.Background(), rig.RunConfig{
		Frames:        frames,
		Dt:            dt,
		ValidateState: true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("frames: %d\n", len(result.Frames))
	for _, runErr := range result.Errors {
		fmt.Printf("error: %v\n", runErr)
	}

	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.4f\n", name, val)
	}

	if showPlot {
		plotDisplacement(result)
	}
	if emitCSV {
		return dumpCSV(result)
	}
	if emitJSON {
		return dumpJSON(result)
	}
	return nil
}

func plotDisplacement(result *rig.Result) {
	data := make([]float64, len(result.Frames))
	for i, f := range result.Frames {
		data[i] = f.C1.Displacement()
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("p1 displacement from target"),
	)
	fmt.Println()
	fmt.Println(graph)
}

func dumpCSV(result *rig.Result) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time", "pointer_x", "pointer_y", "p1_x", "p1_y", "p1_vx", "p1_vy", "p2_x", "p2_y", "p2_vx", "p2_vy"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, f := range result.Frames {
		row := []string{
			formatFloat(f.Time),
			formatFloat(f.Pointer.X), formatFloat(f.Pointer.Y),
			formatFloat(f.C1.Position.X), formatFloat(f.C1.Position.Y),
			formatFloat(f.C1.Velocity.X), formatFloat(f.C1.Velocity.Y),
			formatFloat(f.C2.Position.X), formatFloat(f.C2.Position.Y),
			formatFloat(f.C2.Velocity.X), formatFloat(f.C2.Velocity.Y),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func dumpJSON(result *rig.Result) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Metrics map[string]float64 `json:"metrics"`
		Frames  []rig.Frame        `json:"frames"`
	}{
		Metrics: result.Metrics,
		Frames:  result.Frames,
	})
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	script, err := buildScript(cfg)
	if err != nil {
		return err
	}

	r := rig.NewTuned(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Spring.Stiffness, cfg.Spring.Damping)
	runner := rig.NewRunner(r, script)
	err = runner.RunWithCallback(context.Background(), rig.RunConfig{
		Frames:        frames,
		Dt:            1,
		ValidateState: true,
	}, func(f rig.Frame) bool { return true })
	if err != nil {
		return err
	}

	var svg string
	if braille {
		svg = viz.BrailleSVG(r, cfg)
	} else {
		p0, p1, p2, p3 := r.Points()
		svg = export.CurveWithPalette(export.Scene{
			Width:    cfg.Canvas.Width,
			Height:   cfg.Canvas.Height,
			Path:     r.Path(cfg.Sampling.Resolution),
			Tangents: r.Tangents(cfg.Sampling.TangentCount, cfg.Sampling.TangentLength),
			Handles:  []geom.Vec{p1, p2},
			Anchors:  []geom.Vec{p0, p3},
		}, viz.GetTheme(cfg.Theme).Palette())
	}

	if outPath == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(outPath, []byte(svg), 0644)
}

func comparePresets(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("step response over %d frames (dt=%.2f)\n\n", frames, dt)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tK\tDAMPING\tSETTLE\tOVERSHOOT\tPATH")

	for _, name := range args {
		p := config.GetPreset(name)
		if p == nil {
			fmt.Fprintf(w, "%s\tunknown preset\n", name)
			continue
		}

		r := rig.NewTuned(cfg.Canvas.Width, cfg.Canvas.Height, p.Spring.Stiffness, p.Spring.Damping)
		center := r.Center()
		runner := rig.NewRunner(r, rig.StepScript{
			From: center,
			To:   geom.Vec{X: cfg.Canvas.Width * 0.7, Y: cfg.Canvas.Height * 0.3},
			At:   0,
		})
		settle := metrics.NewSettling(0.5)
		over := metrics.NewOvershoot()
		path := metrics.NewPathLength()
		runner.AddMetric(settle)
		runner.AddMetric(over)
		runner.AddMetric(path)

		if _, err := runner.Run(context.Background(), rig.RunConfig{Frames: frames, Dt: dt, ValidateState: true}); err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.0f\t%.1f%%\t%.0f\n",
			name, p.Spring.Stiffness, p.Spring.Damping,
			settle.Value(), over.Value()*100, path.Value())
	}

	return w.Flush()
}

func benchCore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	resolutions := []float64{0.05, 0.01, 0.002}
	const benchFrames = 100000

	fmt.Println("benchmarking step + sample")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RESOLUTION\tPOINTS\tFRAMES\tTIME\tFRAMES/SEC")

	for _, res := range resolutions {
		r := rig.NewTuned(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Spring.Stiffness, cfg.Spring.Damping)
		script := rig.CircleScript{Center: r.Center(), Radius: 150, Period: 240}

		start := time.Now()
		points := 0
		for i := 0; i < benchFrames; i++ {
			r.Step(script.Pointer(i), 1)
			points = len(r.Path(res))
			_ = r.Tangents(curve.DefaultTangentCount, curve.DefaultTangentLength)
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%.3f\t%d\t%d\t%v\t%.0f\n",
			res, points, benchFrames, elapsed.Round(time.Millisecond),
			float64(benchFrames)/elapsed.Seconds())
	}

	return w.Flush()
}
