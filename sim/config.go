package sim

import "fmt"

// Config is the validated simulation configuration produced by the CLI
// layer and consumed by the manager.
type Config struct {
	GridWidth  int
	GridHeight int

	NumExplorers int
	NumFighters  int
	NumPickers   int

	// Q-learning hyperparameters, all expected in [0, 1].
	Alpha   float64
	Gamma   float64
	Epsilon float64

	// MaxTicks is a safety bound enforced by the caller's loop, not by the
	// engine. SimulationSpeed is the GUI tick interval in milliseconds.
	MaxTicks        int
	SimulationSpeed int

	RewardFood    float64
	RewardNest    float64
	RewardDeath   float64
	RewardDefault float64

	// NestCapacity doubles as the global active-ant cap.
	NestCapacity         int
	PheromoneEvaporation float64

	Seed       uint64
	UseGUI     bool
	OutputFile string
}

// DefaultConfig returns the stock parameters.
func DefaultConfig() Config {
	return Config{
		GridWidth:  20,
		GridHeight: 20,

		NumExplorers: 2,
		NumFighters:  1,
		NumPickers:   3,

		Alpha:   0.1,
		Gamma:   0.99,
		Epsilon: 0.05,

		MaxTicks:        1_000_000_000,
		SimulationSpeed: 100,

		RewardFood:    1000.0,
		RewardNest:    1000.0,
		RewardDeath:   -100.0,
		RewardDefault: -1.0,

		NestCapacity:         100,
		PheromoneEvaporation: 0.01,

		UseGUI: true,
	}
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	if c.GridWidth <= 0 || c.GridHeight <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.GridWidth, c.GridHeight)
	}
	if c.Alpha < 0 || c.Alpha > 1 {
		return fmt.Errorf("alpha must be in [0, 1], got %v", c.Alpha)
	}
	if c.Gamma < 0 || c.Gamma > 1 {
		return fmt.Errorf("gamma must be in [0, 1], got %v", c.Gamma)
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("epsilon must be in [0, 1], got %v", c.Epsilon)
	}
	if c.PheromoneEvaporation < 0 || c.PheromoneEvaporation > 1 {
		return fmt.Errorf("evaporation rate must be in [0, 1], got %v", c.PheromoneEvaporation)
	}
	return nil
}

// BuildAnts creates the unspawned ant collection the configuration asks
// for: explorers first, then pickers, then fighters. Collection order is
// significant because the manager iterates ants in fixed order.
func (c Config) BuildAnts() []Ant {
	ants := make([]Ant, 0, c.NumExplorers+c.NumPickers+c.NumFighters)
	for i := 0; i < c.NumExplorers; i++ {
		ants = append(ants, NewAnt(AntExplorer))
	}
	for i := 0; i < c.NumPickers; i++ {
		ants = append(ants, NewAnt(AntPicker))
	}
	for i := 0; i < c.NumFighters; i++ {
		ants = append(ants, NewAnt(AntFighter))
	}
	return ants
}
