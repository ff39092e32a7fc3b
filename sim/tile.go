package sim

// TileKind identifies what occupies a grid cell.
type TileKind int

const (
	TileDefault TileKind = iota
	TileWall
	TileDeathZone
	TileFoodSource
	TileNest
)

func (k TileKind) String() string {
	switch k {
	case TileDefault:
		return "Default"
	case TileWall:
		return "Wall"
	case TileDeathZone:
		return "DeathZone"
	case TileFoodSource:
		return "FoodSource"
	case TileNest:
		return "Nest"
	default:
		return "Unknown"
	}
}

// Tile is one cell of the grid. FoodAmount is meaningful for TileFoodSource
// only; StoredFood and the capacity hints for TileNest only.
type Tile struct {
	X, Y int
	Kind TileKind

	FoodAmount int
	StoredFood int

	ExplorerCapacity int
	PickerCapacity   int
	FighterCapacity  int
}

// NewTile builds a tile of the given kind at (x, y).
func NewTile(x, y int, kind TileKind) Tile {
	return Tile{X: x, Y: y, Kind: kind}
}

// NewFoodTile builds a food source holding the given amount.
func NewFoodTile(x, y, amount int) Tile {
	return Tile{X: x, Y: y, Kind: TileFoodSource, FoodAmount: amount}
}

// NewNestTile builds an empty nest with per-type capacity hints.
func NewNestTile(x, y, explorerCap, pickerCap, fighterCap int) Tile {
	return Tile{
		X:                x,
		Y:                y,
		Kind:             TileNest,
		ExplorerCapacity: explorerCap,
		PickerCapacity:   pickerCap,
		FighterCapacity:  fighterCap,
	}
}

// IsWalkable reports whether an ant may stand on this tile.
func (t *Tile) IsWalkable() bool {
	return t.Kind != TileWall
}

// IsLethal reports whether entering this tile kills an ant.
func (t *Tile) IsLethal() bool {
	return t.Kind == TileDeathZone
}

// HasFood reports whether this tile is a food source with food left.
func (t *Tile) HasFood() bool {
	return t.Kind == TileFoodSource && t.FoodAmount > 0
}

// IsNest reports whether this tile is the colony nest.
func (t *Tile) IsNest() bool {
	return t.Kind == TileNest
}

// TakeFood removes one unit of food, saturating at zero. It reports whether
// a unit was actually taken.
func (t *Tile) TakeFood() bool {
	if t.Kind != TileFoodSource || t.FoodAmount <= 0 {
		return false
	}
	t.FoodAmount--
	return true
}

// DepositFood adds the given amount to the nest stores. Non-nest tiles
// ignore the deposit.
func (t *Tile) DepositFood(amount int) {
	if t.Kind == TileNest {
		t.StoredFood += amount
	}
}
