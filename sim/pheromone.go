package sim

// Action is one of the five choices available to an ant each tick.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionStay
)

const numActions = 5

// movementActions lists the four actions that change position. Stay is never
// chosen by the policy; it only serves as the enclosed-ant fallback and as
// the slot for interaction boosts.
var movementActions = [4]Action{ActionUp, ActionDown, ActionLeft, ActionRight}

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStay:
		return "Stay"
	default:
		return "Unknown"
	}
}

// Target returns the cell reached by taking the action from (x, y).
// Coordinates clamp at zero on the lower bound; upper-bound legality is the
// caller's responsibility.
func (a Action) Target(x, y int) (int, int) {
	switch a {
	case ActionUp:
		if y > 0 {
			return x, y - 1
		}
		return x, 0
	case ActionDown:
		return x, y + 1
	case ActionLeft:
		if x > 0 {
			return x - 1, y
		}
		return 0, y
	case ActionRight:
		return x + 1, y
	default:
		return x, y
	}
}

// outOfBoundsQ is returned for off-grid lookups: an unreachable-state
// penalty large enough that no learned value competes with it.
const outOfBoundsQ = -1000.0

// zeroSnapThreshold kills the long tail of evaporation: values this close to
// zero are snapped to exactly zero.
const zeroSnapThreshold = 0.001

// PheromoneMap is the per-cell, per-action learned value table. Updates are
// queued into a pending buffer during a tick and applied in one batch, so
// every ant in the same tick reads the same pre-tick values. Storage is one
// flat array indexed (y*width+x)*5+action.
type PheromoneMap struct {
	width   int
	height  int
	values  []float64
	pending []float64
}

// NewPheromoneMap builds a zeroed map for a width x height grid.
func NewPheromoneMap(width, height int) PheromoneMap {
	return PheromoneMap{
		width:   width,
		height:  height,
		values:  make([]float64, width*height*numActions),
		pending: make([]float64, width*height*numActions),
	}
}

func (p *PheromoneMap) index(x, y int, action Action) int {
	return (y*p.width+x)*numActions + int(action)
}

func (p *PheromoneMap) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// Q returns the stored value for (x, y, action), or the out-of-bounds
// penalty for off-grid coordinates.
func (p *PheromoneMap) Q(x, y int, action Action) float64 {
	if !p.inBounds(x, y) {
		return outOfBoundsQ
	}
	return p.values[p.index(x, y, action)]
}

// MaxQ returns the maximum value over the five action slots at (x, y), or
// 0.0 off-grid.
func (p *PheromoneMap) MaxQ(x, y int) float64 {
	if !p.inBounds(x, y) {
		return 0.0
	}
	base := p.index(x, y, ActionUp)
	max := p.values[base]
	for i := 1; i < numActions; i++ {
		if p.values[base+i] > max {
			max = p.values[base+i]
		}
	}
	return max
}

// BestAction returns the movement action with the highest value at (x, y),
// skipping actions whose destination is off-grid or not walkable. Ties break
// by first-seen order Up, Down, Left, Right. An ant enclosed on all four
// sides gets Stay.
func (p *PheromoneMap) BestAction(x, y int, grid *Grid) Action {
	best := ActionStay
	maxVal := 0.0
	found := false

	for _, action := range movementActions {
		nx, ny := action.Target(x, y)
		if nx >= p.width || ny >= p.height || !grid.IsWalkable(nx, ny) {
			continue
		}
		val := p.Q(x, y, action)
		if !found || val > maxVal {
			maxVal = val
			best = action
			found = true
		}
	}
	return best
}

// QueueUpdate accumulates an additive delta for (x, y, action) into the
// pending buffer without touching the visible table. Off-grid coordinates
// are dropped silently.
func (p *PheromoneMap) QueueUpdate(x, y int, action Action, delta float64) {
	if !p.inBounds(x, y) {
		return
	}
	p.pending[p.index(x, y, action)] += delta
}

// ApplyTick drains the pending buffer into the table, then evaporates every
// value by the given rate, snapping near-zero results to exactly zero.
func (p *PheromoneMap) ApplyTick(evaporationRate float64) {
	keep := 1.0 - evaporationRate
	for i := range p.values {
		p.values[i] += p.pending[i]
		p.pending[i] = 0

		p.values[i] *= keep
		if p.values[i] < zeroSnapThreshold && p.values[i] > -zeroSnapThreshold {
			p.values[i] = 0
		}
	}
}

// Clone returns an independent deep copy of the map, pending buffer
// included.
func (p *PheromoneMap) Clone() PheromoneMap {
	values := make([]float64, len(p.values))
	copy(values, p.values)
	pending := make([]float64, len(p.pending))
	copy(pending, p.pending)
	return PheromoneMap{width: p.width, height: p.height, values: values, pending: pending}
}
