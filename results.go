package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"ant-sim/sim"
)

// SweepResult is the outcome of one sweep run: the hyperparameters and the
// tick count the simulation needed to exhaust the food.
type SweepResult struct {
	Alpha   float64 `json:"alpha"`
	Gamma   float64 `json:"gamma"`
	Epsilon float64 `json:"epsilon"`
	Ticks   int     `json:"ticks"`
}

// SweepReport is the JSON document a sweep writes when -output is given.
type SweepReport struct {
	RunID      string        `json:"run_id"`
	StartTime  time.Time     `json:"start_time"`
	EndTime    time.Time     `json:"end_time"`
	GridWidth  int           `json:"grid_width"`
	GridHeight int           `json:"grid_height"`
	Results    []SweepResult `json:"results"`
}

// NewSweepReport stamps the result set with a fresh run identifier.
func NewSweepReport(cfg sim.Config, start time.Time, results []SweepResult) SweepReport {
	return SweepReport{
		RunID:      uuid.New().String(),
		StartTime:  start,
		EndTime:    time.Now(),
		GridWidth:  cfg.GridWidth,
		GridHeight: cfg.GridHeight,
		Results:    results,
	}
}

// Save writes the report as indented JSON.
func (r SweepReport) Save(filename string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling sweep report: %v", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("error writing sweep report: %v", err)
	}
	return nil
}

// RunReport is the JSON document a single headless run writes.
type RunReport struct {
	RunID      string  `json:"run_id"`
	Ticks      int     `json:"ticks"`
	Finished   bool    `json:"finished"`
	StoredFood int     `json:"stored_food"`
	ActiveAnts int     `json:"active_ants"`
	Alpha      float64 `json:"alpha"`
	Gamma      float64 `json:"gamma"`
	Epsilon    float64 `json:"epsilon"`
	Seed       uint64  `json:"seed"`
}

// NewRunReport captures the outcome of a finished headless run.
func NewRunReport(cfg sim.Config, ticks int, m *sim.Manager) RunReport {
	return RunReport{
		RunID:      uuid.New().String(),
		Ticks:      ticks,
		Finished:   m.IsFinished(),
		StoredFood: m.Grid.StoredFood(),
		ActiveAnts: m.ActiveAnts(),
		Alpha:      cfg.Alpha,
		Gamma:      cfg.Gamma,
		Epsilon:    cfg.Epsilon,
		Seed:       cfg.Seed,
	}
}

// Save writes the report as indented JSON.
func (r RunReport) Save(filename string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling run report: %v", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("error writing run report: %v", err)
	}
	return nil
}
