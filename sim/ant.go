package sim

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// AntType fixes an ant's physical constants at construction.
type AntType int

const (
	AntExplorer AntType = iota
	AntFighter
	AntPicker
)

func (t AntType) String() string {
	switch t {
	case AntExplorer:
		return "Explorer"
	case AntFighter:
		return "Fighter"
	case AntPicker:
		return "Picker"
	default:
		return "Unknown"
	}
}

// AntMode is the behavioral state: searching for food or carrying it home.
type AntMode int

const (
	ModeFinding AntMode = iota
	ModeReturning
)

func (m AntMode) String() string {
	if m == ModeReturning {
		return "Returning"
	}
	return "Finding"
}

// Ant is one agent. A nil Position means the ant is either not yet spawned
// or dead; the two are not distinguished.
type Ant struct {
	Type           AntType
	MaximalCharge  int
	CurrentCharge  int
	MovementPeriod int
	Cooldown       int
	Scope          int
	Mode           AntMode
	Position       *Point
}

// NewAnt builds an unspawned ant of the given type. Explorers and fighters
// are fast and can see lethal tiles one cell ahead; pickers are slow, blind
// and carry ten times the charge.
func NewAnt(antType AntType) Ant {
	var maxCharge, period, scope int
	switch antType {
	case AntPicker:
		maxCharge, period, scope = 100, 10, 0
	default:
		maxCharge, period, scope = 10, 5, 1
	}
	return Ant{
		Type:           antType,
		MaximalCharge:  maxCharge,
		MovementPeriod: period,
		Scope:          scope,
		Mode:           ModeFinding,
	}
}

// TargetPosition computes the destination of taking the action from the
// ant's current cell, (0, 0) when the ant is off the map. Coordinates clamp
// at zero; the upper bound is checked by the manager against the grid.
func (a *Ant) TargetPosition(action Action) (int, int) {
	x, y := 0, 0
	if a.Position != nil {
		x, y = a.Position.X, a.Position.Y
	}
	return action.Target(x, y)
}

// MoveTo places the ant on (x, y).
func (a *Ant) MoveTo(x, y int) {
	a.Position = &Point{X: x, Y: y}
}

// SpawnAtNest places the ant on the grid's nest cell, if the grid has one.
func (a *Ant) SpawnAtNest(grid *Grid) {
	if x, y, ok := grid.NestPosition(); ok {
		a.Position = &Point{X: x, Y: y}
	}
}

// cloneAnts deep-copies an ant collection, including the optional positions.
func cloneAnts(ants []Ant) []Ant {
	out := make([]Ant, len(ants))
	copy(out, ants)
	for i := range out {
		if out[i].Position != nil {
			pos := *out[i].Position
			out[i].Position = &pos
		}
	}
	return out
}
