package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"ant-sim/sim"
)

// Candidate hyperparameter values; the sweep runs their full cartesian
// product.
var (
	sweepAlphas   = []float64{0.1, 0.3, 0.5, 0.7, 0.9}
	sweepGammas   = []float64{0.8, 0.9, 0.95, 0.99}
	sweepEpsilons = []float64{0.01, 0.05, 0.1, 0.2}
)

// sweepMaxTicks bounds each sweep run so a configuration that never finds
// the food cannot hang the whole sweep.
const sweepMaxTicks = 100_000

type combo struct {
	alpha, gamma, epsilon float64
}

// runSweep fans the hyperparameter grid out over one worker goroutine per
// CPU core. Every run gets a fully independent manager with its own grid,
// ants, maps and random source; nothing is shared across runs.
func runSweep(cfg sim.Config) {
	start := time.Now()

	combos := make([]combo, 0, len(sweepAlphas)*len(sweepGammas)*len(sweepEpsilons))
	for _, a := range sweepAlphas {
		for _, g := range sweepGammas {
			for _, e := range sweepEpsilons {
				combos = append(combos, combo{alpha: a, gamma: g, epsilon: e})
			}
		}
	}

	workers := runtime.NumCPU()
	fmt.Printf("Sweeping %d parameter combinations on %d workers...\n", len(combos), workers)

	results := make([]SweepResult, len(combos))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = runSweepSimulation(cfg, combos[idx], cfg.Seed+uint64(idx))
			}
		}()
	}
	for i := range combos {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	elapsed := time.Since(start)

	// Fewer ticks to exhaust the food means a better configuration.
	sort.Slice(results, func(i, j int) bool {
		return results[i].Ticks < results[j].Ticks
	})

	fmt.Printf("Done in %s\n\n", elapsed.Round(time.Millisecond))
	best := results[0]
	fmt.Println("Best configuration:")
	fmt.Printf("  alpha   %v\n", best.Alpha)
	fmt.Printf("  gamma   %v\n", best.Gamma)
	fmt.Printf("  epsilon %v\n", best.Epsilon)
	fmt.Printf("  ticks   %d\n", best.Ticks)

	if cfg.OutputFile != "" {
		report := NewSweepReport(cfg, start, results)
		if err := report.Save(cfg.OutputFile); err != nil {
			fmt.Fprintf(os.Stderr, "error writing sweep report: %v\n", err)
		} else {
			fmt.Printf("Report written to %s (run %s)\n", cfg.OutputFile, report.RunID)
		}
	}
}

// runSweepSimulation runs one headless simulation to termination and
// reports how many ticks it needed.
func runSweepSimulation(base sim.Config, c combo, seed uint64) SweepResult {
	cfg := base
	cfg.Alpha = c.alpha
	cfg.Gamma = c.gamma
	cfg.Epsilon = c.epsilon
	if cfg.MaxTicks > sweepMaxTicks {
		cfg.MaxTicks = sweepMaxTicks
	}

	manager := sim.NewRandomManager(cfg, cfg.BuildAnts(), seed)

	tick := 0
	for tick < cfg.MaxTicks {
		manager.Step()
		tick++
		if manager.IsFinished() {
			break
		}
	}

	return SweepResult{
		Alpha:   c.alpha,
		Gamma:   c.gamma,
		Epsilon: c.epsilon,
		Ticks:   tick,
	}
}
