package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hawkdove/camera"
	"github.com/pthm-cable/hawkdove/config"
	"github.com/pthm-cable/hawkdove/dynamics"
	"github.com/pthm-cable/hawkdove/telemetry"
	"github.com/pthm-cable/hawkdove/ui"
)

const (
	modelTwo   = "two"
	modelThree = "three"

	controlsWidth = 200
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	model := flag.String("model", modelTwo, "Game to simulate: two (Hawk-Dove) or three (Hawk-Dove-Bourgeois)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Log every generation via slog (headless only)")
	outputDir := flag.String("output-dir", "", "Output directory for the trajectory CSV and config snapshot")
	generations := flag.Int("generations", -1, "Override the configured number of generations (-1 = use config)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *generations >= 0 {
		cfg.TwoStrategy.Generations = *generations
		cfg.ThreeStrategy.Generations = *generations
	}

	start := time.Now()
	tr, err := simulate(cfg, *model)
	if err != nil {
		slog.Error("simulation failed", "model", *model, "error", err)
		os.Exit(1)
	}
	summary := telemetry.NewRunSummary(*model, tr, time.Since(start))
	slog.Info("simulation complete", "summary", summary)
	if !summary.Finite {
		slog.Warn("trajectory contains non-finite proportions; a denominator reached zero")
	}

	if err := writeOutput(cfg, *outputDir, tr); err != nil {
		slog.Error("failed to write output", "dir", *outputDir, "error", err)
		os.Exit(1)
	}

	if *headless {
		if *logStats {
			logGenerations(tr)
		}
		return
	}

	show(cfg, *model, tr)
}

// simulate runs the selected model with the configured parameters.
func simulate(cfg *config.Config, model string) (*dynamics.Trajectory, error) {
	switch model {
	case modelTwo:
		p := cfg.TwoStrategy.Params()
		slog.Info("starting simulation",
			"model", model,
			"hawk_proportion", p.HawkProportion,
			"generations", p.Generations,
			"initial_fitness", p.InitialFitness,
			"value", p.Value,
			"cost", p.Cost,
		)
		return p.Simulate()
	case modelThree:
		p := cfg.ThreeStrategy.Params()
		slog.Info("starting simulation",
			"model", model,
			"hawk_proportion", p.HawkProportion,
			"dove_proportion", p.DoveProportion,
			"generations", p.Generations,
			"initial_fitness", p.InitialFitness,
			"value", p.Value,
			"cost", p.Cost,
		)
		return p.Simulate()
	default:
		return nil, fmt.Errorf("unknown model %q (want %q or %q)", model, modelTwo, modelThree)
	}
}

// writeOutput saves the trajectory and config when an output dir is set.
func writeOutput(cfg *config.Config, dir string, tr *dynamics.Trajectory) error {
	om, err := telemetry.NewOutputManager(dir, cfg.Output)
	if err != nil {
		return err
	}
	if om == nil {
		return nil
	}
	if err := om.WriteConfig(cfg); err != nil {
		return err
	}
	if err := om.WriteTrajectory(tr); err != nil {
		return err
	}
	slog.Info("output written", "dir", om.Dir())
	return nil
}

// logGenerations emits one structured record per generation.
func logGenerations(tr *dynamics.Trajectory) {
	strategies := tr.Strategies()
	for g := 0; g < tr.Len(); g++ {
		props := tr.At(g)
		attrs := make([]any, 0, len(props)+1)
		attrs = append(attrs, "generation", g)
		for i, s := range strategies {
			attrs = append(attrs, s.String(), props[i])
		}
		slog.Info("generation", attrs...)
	}
}

// show opens a window and draws the trajectory until it is closed.
func show(cfg *config.Config, model string, tr *dynamics.Trajectory) {
	w, h := int32(cfg.Screen.Width), int32(cfg.Screen.Height)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(w, h, cfg.Chart.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	cam := camera.New(0, 0, 1, 1, tr.Generations(), cfg.Chart.MaxZoom)
	layout(cam, cfg, w, h)

	chart := ui.NewChart(cfg.Chart)
	hud := ui.NewHUD()
	controls := ui.NewControlsPanel(w-controlsWidth-10, int32(cfg.Chart.Margin), controlsWidth, tr.Strategies(), cfg.Chart.PanSpeed)
	hudData := ui.HUDData{Model: model, Generations: tr.Generations(), Finite: tr.Finite()}

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			w, h = int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
			layout(cam, cfg, w, h)
			controls.SetPosition(w-controlsWidth-10, int32(cfg.Chart.Margin))
		}
		controls.HandleInput(cam)

		rl.BeginDrawing()
		rl.ClearBackground(ui.DefaultTheme().Background)

		chart.Draw(tr, cam, controls.Visible())
		controls.Draw(cam)
		hudData.ScreenWidth, hudData.ScreenHeight = w, h
		hud.Draw(hudData, tr, cam)
		hud.DrawControls(w, h, "[Left/Right] Pan  [Wheel] Zoom  [R] Reset  [1-3] Toggle series  [H] Panel")

		rl.EndDrawing()
	}
}

// layout fits the plot area between the margins and the controls panel.
func layout(cam *camera.Camera, cfg *config.Config, w, h int32) {
	m := float32(cfg.Chart.Margin)
	left := m + 20
	right := m/2 + controlsWidth + 10
	bottom := m + 30
	cam.Resize(left, m, float32(w)-left-right, float32(h)-m-bottom)
}
