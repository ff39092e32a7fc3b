package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"ant-sim/sim"
	"ant-sim/ui"
)

func main() {
	defaults := sim.DefaultConfig()

	width := flag.Int("width", defaults.GridWidth, "Grid width in cells")
	height := flag.Int("height", defaults.GridHeight, "Grid height in cells")
	explorers := flag.Int("explorers", defaults.NumExplorers, "Number of explorer ants")
	fighters := flag.Int("fighters", defaults.NumFighters, "Number of fighter ants")
	pickers := flag.Int("pickers", defaults.NumPickers, "Number of picker ants")
	alpha := flag.Float64("alpha", defaults.Alpha, "Q-learning learning rate (0-1)")
	gamma := flag.Float64("gamma", defaults.Gamma, "Q-learning discount factor (0-1)")
	epsilon := flag.Float64("epsilon", defaults.Epsilon, "Epsilon-greedy exploration rate (0-1)")
	evaporation := flag.Float64("evaporation", defaults.PheromoneEvaporation, "Pheromone evaporation rate per tick (0-1)")
	nestCapacity := flag.Int("nest-capacity", defaults.NestCapacity, "Maximum number of active ants")
	maxTicks := flag.Int("max-ticks", defaults.MaxTicks, "Tick limit for headless runs")
	speed := flag.Int("speed", defaults.SimulationSpeed, "GUI tick interval in milliseconds")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time-based)")
	output := flag.String("output", "", "Write a JSON run report to this file")
	cli := flag.Bool("cli", false, "Run headless and print the termination tick")
	sweep := flag.Bool("sweep", false, "Run the parallel hyperparameter sweep")
	flag.Parse()

	cfg := defaults
	cfg.GridWidth = *width
	cfg.GridHeight = *height
	cfg.NumExplorers = *explorers
	cfg.NumFighters = *fighters
	cfg.NumPickers = *pickers
	cfg.Alpha = *alpha
	cfg.Gamma = *gamma
	cfg.Epsilon = *epsilon
	cfg.PheromoneEvaporation = *evaporation
	cfg.NestCapacity = *nestCapacity
	cfg.MaxTicks = *maxTicks
	cfg.SimulationSpeed = *speed
	cfg.Seed = *seed
	cfg.OutputFile = *output
	cfg.UseGUI = !*cli && !*sweep

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	switch {
	case *sweep:
		runSweep(cfg)
	case *cli:
		runHeadless(cfg)
	default:
		runGUI(cfg)
	}
}

// runHeadless drives one simulation to termination and prints the tick
// count, the metric the sweep driver optimizes.
func runHeadless(cfg sim.Config) {
	manager := sim.NewRandomManager(cfg, cfg.BuildAnts(), cfg.Seed)

	tick := 0
	for tick < cfg.MaxTicks {
		manager.Step()
		tick++
		if manager.IsFinished() {
			break
		}
	}
	fmt.Println(tick)

	if cfg.OutputFile != "" {
		report := NewRunReport(cfg, tick, manager)
		if err := report.Save(cfg.OutputFile); err != nil {
			fmt.Fprintf(os.Stderr, "error writing run report: %v\n", err)
		}
	}
}

// runGUI opens the raylib window and drives the simulation on a timer, with
// pause, history scrubbing, pheromone overlays and the map editor.
func runGUI(cfg sim.Config) {
	rl.InitWindow(1280, 800, "Ant Colony - Q-Learning")
	defer rl.CloseWindow()
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(60)

	manager := sim.NewRandomManager(cfg, cfg.BuildAnts(), cfg.Seed)
	renderer := ui.NewRenderer()
	editor := ui.NewEditor(cfg.GridWidth, cfg.GridHeight)

	paused := false
	editing := false
	showFood := false
	showNest := false
	speedMs := cfg.SimulationSpeed
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		if editing {
			editor.HandleInput(renderer)
			brush, erase := editor.Brush()
			hud := ui.HUD{Editing: true, EditorBrush: brush, EditorErase: erase, SpeedMs: speedMs}

			if rl.IsKeyPressed(rl.KeyE) {
				editing = false
			}
			if rl.IsKeyPressed(rl.KeyEnter) && editor.HasNest() {
				// Restart the simulation on the painted layout.
				manager = sim.NewManager(cfg, editor.Tiles(), cfg.BuildAnts(), cfg.Seed)
				editing = false
				paused = false
				lastUpdate = time.Now()
			}

			editor.Draw(renderer, hud)
			continue
		}

		switch {
		case rl.IsKeyPressed(rl.KeySpace):
			paused = !paused
		case rl.IsKeyPressed(rl.KeyF):
			showFood = !showFood
		case rl.IsKeyPressed(rl.KeyN):
			showNest = !showNest
		case rl.IsKeyPressed(rl.KeyE):
			editor.LoadGrid(&manager.Grid)
			editing = true
		case rl.IsKeyPressed(rl.KeyLeft):
			// Scrubbing pauses so the restored state stays visible.
			paused = true
			manager.RestoreSnapshot(manager.TickIndex() - 1)
		case rl.IsKeyPressed(rl.KeyRight):
			paused = true
			manager.RestoreSnapshot(manager.TickIndex() + 1)
		case rl.IsKeyPressed(rl.KeyMinus):
			speedMs += 10
		case rl.IsKeyPressed(rl.KeyEqual):
			if speedMs > 10 {
				speedMs -= 10
			}
		}

		if !paused && !manager.IsFinished() &&
			time.Since(lastUpdate) >= time.Duration(speedMs)*time.Millisecond {
			manager.Step()
			lastUpdate = time.Now()
		}

		renderer.Draw(manager, ui.HUD{
			Paused:      paused,
			ShowFoodMap: showFood,
			ShowNestMap: showNest,
			SpeedMs:     speedMs,
		})
	}
}
