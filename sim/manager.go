package sim

import (
	"golang.org/x/exp/rand"
)

const (
	// maxAntsPerCell caps how many ants may share one cell.
	maxAntsPerCell = 10
	// minActiveExplorers is the spawn quota: explorers leave the nest first
	// until this many are on the map.
	minActiveExplorers = 3
	// spawnGraceCooldown delays a freshly spawned ant's first move.
	spawnGraceCooldown = 2
)

// Snapshot is an immutable deep copy of the full simulation state at one
// tick.
type Snapshot struct {
	Grid           Grid
	Ants           []Ant
	PheromonesFood PheromoneMap
	PheromonesNest PheromoneMap
}

// Manager owns the grid, the ant collection and both pheromone maps, runs
// the per-tick algorithm and keeps the branchable snapshot history. It is
// single-threaded: one Step call completes before the next may begin.
// Parallel throughput comes from running independent managers, never from
// sharing one.
type Manager struct {
	Grid           Grid
	Ants           []Ant
	PheromonesFood PheromoneMap
	PheromonesNest PheromoneMap

	Params QLearningParams
	Config Config

	rng       *rand.Rand
	history   []Snapshot
	tickIndex int
}

// NewManager builds a simulation over an explicit tile layout, e.g. an
// edited map. Ants start unspawned; the spawn policy releases them from the
// nest tick by tick.
func NewManager(cfg Config, tiles []Tile, ants []Ant, seed uint64) *Manager {
	grid := NewGridWithTiles(cfg.GridWidth, cfg.GridHeight, tiles)
	return newManager(cfg, grid, ants, seed)
}

// NewRandomManager builds a simulation over a procedurally generated map
// and places every ant at the nest immediately.
func NewRandomManager(cfg Config, ants []Ant, seed uint64) *Manager {
	rng := rand.New(rand.NewSource(seed))
	grid := NewRandomGrid(cfg.GridWidth, cfg.GridHeight, rng)

	for i := range ants {
		ants[i].SpawnAtNest(&grid)
	}

	m := &Manager{
		Grid:           grid,
		Ants:           ants,
		PheromonesFood: NewPheromoneMap(cfg.GridWidth, cfg.GridHeight),
		PheromonesNest: NewPheromoneMap(cfg.GridWidth, cfg.GridHeight),
		Params:         QLearningParams{Alpha: cfg.Alpha, Gamma: cfg.Gamma, Epsilon: cfg.Epsilon},
		Config:         cfg,
		rng:            rng,
	}
	m.saveSnapshot()
	return m
}

func newManager(cfg Config, grid Grid, ants []Ant, seed uint64) *Manager {
	m := &Manager{
		Grid:           grid,
		Ants:           ants,
		PheromonesFood: NewPheromoneMap(cfg.GridWidth, cfg.GridHeight),
		PheromonesNest: NewPheromoneMap(cfg.GridWidth, cfg.GridHeight),
		Params:         QLearningParams{Alpha: cfg.Alpha, Gamma: cfg.Gamma, Epsilon: cfg.Epsilon},
		Config:         cfg,
		rng:            rand.New(rand.NewSource(seed)),
	}
	m.saveSnapshot()
	return m
}

// Step advances the simulation one tick: sync parameters, spawn admission,
// one pass over the ants against the pre-tick pheromone values, batched
// pheromone update plus evaporation, then a history snapshot.
func (m *Manager) Step() {
	m.Params.Alpha = m.Config.Alpha
	m.Params.Gamma = m.Config.Gamma
	m.Params.Epsilon = m.Config.Epsilon

	width := m.Grid.Width
	height := m.Grid.Height

	// The density array is the only shared scratch state of the tick. It is
	// mutated as ants move, so ants earlier in collection order implicitly
	// win contested cells.
	density := m.computeAntDensity()

	m.manageSpawn(density)

	for i := range m.Ants {
		ant := &m.Ants[i]
		if ant.Position == nil {
			continue
		}
		if ant.Cooldown > 0 {
			ant.Cooldown--
			continue
		}
		ant.Cooldown = ant.MovementPeriod

		x, y := ant.Position.X, ant.Position.Y

		chosenAction, qCurr := m.chooseAction(x, y, ant.Mode)
		nx, ny := ant.TargetPosition(chosenAction)

		isOut := nx >= width || ny >= height
		moveAllowed := !isOut && m.Grid.IsWalkable(nx, ny)
		isLethal := false

		if !isOut {
			isLethal = m.Grid.IsLethal(nx, ny)
			if density[ny*width+nx] >= maxAntsPerCell {
				moveAllowed = false
			}
		}

		// Ants with vision see the danger and refuse to enter.
		if isLethal && ant.Scope > 0 {
			moveAllowed = false
		}

		reward := m.rewardFor(isLethal, ant.Mode, nx, ny)

		pmap := m.modeMap(ant.Mode)
		maxNextQ := 0.0
		if !isOut && !isLethal {
			maxNextQ = pmap.MaxQ(nx, ny)
		}

		delta := m.Params.ComputeDelta(qCurr, reward, maxNextQ)
		pmap.QueueUpdate(x, y, chosenAction, delta)

		if moveAllowed {
			if isLethal {
				if density[y*width+x] > 0 {
					density[y*width+x]--
				}
				ant.Position = nil
			} else {
				if density[y*width+x] > 0 {
					density[y*width+x]--
				}
				if density[ny*width+nx] < 255 {
					density[ny*width+nx]++
				}
				ant.MoveTo(nx, ny)
				m.handleInteractions(ant, nx, ny)
			}
		}
	}

	m.PheromonesFood.ApplyTick(m.Config.PheromoneEvaporation)
	m.PheromonesNest.ApplyTick(m.Config.PheromoneEvaporation)
	m.saveSnapshot()
}

// computeAntDensity counts positioned ants per cell, saturating at 255.
func (m *Manager) computeAntDensity() []uint8 {
	density := make([]uint8, m.Grid.Width*m.Grid.Height)
	for i := range m.Ants {
		if pos := m.Ants[i].Position; pos != nil {
			idx := pos.Y*m.Grid.Width + pos.X
			if density[idx] < 255 {
				density[idx]++
			}
		}
	}
	return density
}

// manageSpawn releases at most one inactive ant from the nest per tick.
// Spawning stops when the global active cap or the nest cell's density cap
// is reached. Explorers have priority until minActiveExplorers are out.
func (m *Manager) manageSpawn(density []uint8) {
	activeExplorers := 0
	activeTotal := 0
	for i := range m.Ants {
		if m.Ants[i].Position != nil {
			activeTotal++
			if m.Ants[i].Type == AntExplorer {
				activeExplorers++
			}
		}
	}
	if activeTotal >= m.Config.NestCapacity {
		return
	}

	nestX, nestY, ok := m.Grid.NestPosition()
	if !ok {
		return
	}
	if density[nestY*m.Grid.Width+nestX] >= maxAntsPerCell {
		return
	}

	needExplorer := activeExplorers < minActiveExplorers

	spawnIdx := -1
	for i := range m.Ants {
		if m.Ants[i].Position == nil && (!needExplorer || m.Ants[i].Type == AntExplorer) {
			spawnIdx = i
			break
		}
	}
	if spawnIdx < 0 && needExplorer {
		// No explorer left in reserve: release any inactive ant instead.
		for i := range m.Ants {
			if m.Ants[i].Position == nil {
				spawnIdx = i
				break
			}
		}
	}

	if spawnIdx >= 0 {
		ant := &m.Ants[spawnIdx]
		ant.Position = &Point{X: nestX, Y: nestY}
		ant.Mode = ModeFinding
		ant.CurrentCharge = 0
		ant.Cooldown = spawnGraceCooldown
	}
}

// chooseAction is the ε-greedy policy: with probability ε one of the four
// movement actions uniformly, otherwise the best learned action. It returns
// the action together with its current Q-value.
func (m *Manager) chooseAction(x, y int, mode AntMode) (Action, float64) {
	pmap := m.modeMap(mode)
	if m.rng.Float64() < m.Params.Epsilon {
		action := movementActions[m.rng.Intn(len(movementActions))]
		return action, pmap.Q(x, y, action)
	}
	best := pmap.BestAction(x, y, &m.Grid)
	return best, pmap.Q(x, y, best)
}

// modeMap picks the value table matching the behavioral state: the food map
// while searching, the nest map while carrying.
func (m *Manager) modeMap(mode AntMode) *PheromoneMap {
	if mode == ModeReturning {
		return &m.PheromonesNest
	}
	return &m.PheromonesFood
}

// rewardFor maps the destination tile to a reward.
func (m *Manager) rewardFor(isLethal bool, mode AntMode, nx, ny int) float64 {
	if isLethal {
		return m.Config.RewardDeath
	}
	switch {
	case mode == ModeFinding && m.Grid.HasFood(nx, ny):
		return m.Config.RewardFood
	case mode == ModeReturning && m.Grid.IsNest(nx, ny):
		return m.Config.RewardNest
	default:
		return m.Config.RewardDefault
	}
}

// handleInteractions resolves what happens when an ant enters (nx, ny):
// a pickup flips it to returning with a full charge, a deposit empties the
// charge into the nest stores. Both inject an immediate boost of half the
// food reward at the destination's Stay slot so trails form faster than the
// deferred Bellman updates alone would allow.
func (m *Manager) handleInteractions(ant *Ant, nx, ny int) {
	boost := m.Config.RewardFood * 0.5

	switch ant.Mode {
	case ModeFinding:
		if tile := m.Grid.At(nx, ny); tile != nil && tile.TakeFood() {
			ant.CurrentCharge = ant.MaximalCharge
			ant.Mode = ModeReturning
			m.PheromonesFood.QueueUpdate(nx, ny, ActionStay, boost)
		}
	case ModeReturning:
		if m.Grid.IsNest(nx, ny) {
			m.Grid.AddFoodToNest(ant.CurrentCharge)
			ant.CurrentCharge = 0
			ant.Mode = ModeFinding
			m.PheromonesNest.QueueUpdate(nx, ny, ActionStay, boost)
		}
	}
}

// IsFinished reports whether the simulation terminated: every ant is off
// the map, or the food is exhausted and no ant is still carrying a load
// home. Waiting for carriers means the last pickup's deposit is part of the
// run, so a finished run has every retrieved unit in the nest stores.
func (m *Manager) IsFinished() bool {
	allGone := true
	carrying := false
	for i := range m.Ants {
		if m.Ants[i].Position != nil {
			allGone = false
			if m.Ants[i].CurrentCharge > 0 {
				carrying = true
			}
		}
	}
	if allGone {
		return true
	}
	return !m.Grid.IsFoodRemaining() && !carrying
}

// saveSnapshot commits the current state to the history. Writing while the
// index is behind the tail discards the abandoned future first.
func (m *Manager) saveSnapshot() {
	if m.tickIndex < len(m.history)-1 {
		m.history = m.history[:m.tickIndex+1]
	}
	m.history = append(m.history, Snapshot{
		Grid:           m.Grid.Clone(),
		Ants:           cloneAnts(m.Ants),
		PheromonesFood: m.PheromonesFood.Clone(),
		PheromonesNest: m.PheromonesNest.Clone(),
	})
	m.tickIndex = len(m.history) - 1
}

// RestoreSnapshot replaces the live state with the snapshot at the given
// index. Out-of-range indices are a no-op.
func (m *Manager) RestoreSnapshot(index int) {
	if index < 0 || index >= len(m.history) {
		return
	}
	snap := &m.history[index]
	m.Grid = snap.Grid.Clone()
	m.Ants = cloneAnts(snap.Ants)
	m.PheromonesFood = snap.PheromonesFood.Clone()
	m.PheromonesNest = snap.PheromonesNest.Clone()
	m.tickIndex = index
}

// TickIndex is the position of the live state within the history.
func (m *Manager) TickIndex() int {
	return m.tickIndex
}

// HistoryLen is the number of committed snapshots, the initial state
// included.
func (m *Manager) HistoryLen() int {
	return len(m.history)
}

// ActiveAnts counts ants currently on the map.
func (m *Manager) ActiveAnts() int {
	n := 0
	for i := range m.Ants {
		if m.Ants[i].Position != nil {
			n++
		}
	}
	return n
}
