package sim

import (
	"golang.org/x/exp/rand"
)

// Grid is the static spatial environment: a row-major collection of tiles.
// The topology is fixed after construction; only nest stores and food
// amounts mutate in place.
type Grid struct {
	Width  int
	Height int
	tiles  []Tile
}

// NewGrid builds an empty grid of default tiles.
func NewGrid(width, height int) Grid {
	tiles := make([]Tile, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tiles = append(tiles, NewTile(x, y, TileDefault))
		}
	}
	return Grid{Width: width, Height: height, tiles: tiles}
}

// NewGridWithTiles builds a grid from an explicit tile list, e.g. an edited
// map. Tiles outside the grid bounds are dropped silently.
func NewGridWithTiles(width, height int, tiles []Tile) Grid {
	g := NewGrid(width, height)
	for _, tile := range tiles {
		if tile.X >= 0 && tile.X < width && tile.Y >= 0 && tile.Y < height {
			g.tiles[tile.Y*width+tile.X] = tile
		}
	}
	return g
}

// NewRandomGrid builds a procedural map: exactly one nest at a uniformly
// random cell, then food sources, walls and death zones placed by rejection
// sampling. If the retry budget runs out, fewer items than requested are
// placed.
func NewRandomGrid(width, height int, rng *rand.Rand) Grid {
	g := NewGrid(width, height)
	total := width * height

	foodCount := rng.Intn(3) + 1
	remainingAfterFood := total - foodCount
	wallCount := 0
	if remainingAfterFood > 0 {
		wallCount = rng.Intn(total/4 + 1)
	}
	remainingAfterWalls := remainingAfterFood - wallCount
	deathCount := 0
	if remainingAfterWalls > 0 {
		deathCount = rng.Intn(remainingAfterWalls/10 + 1)
	}

	nestX := 0
	nestY := 0
	if width > 0 {
		nestX = rng.Intn(width)
	}
	if height > 0 {
		nestY = rng.Intn(height)
	}
	nestIdx := nestY*width + nestX
	g.tiles[nestIdx] = NewNestTile(nestX, nestY, rng.Intn(10), rng.Intn(10), rng.Intn(10))

	g.placeItems(foodCount, nestIdx, TileFoodSource, rng)
	g.placeItems(wallCount, nestIdx, TileWall, rng)
	g.placeItems(deathCount, nestIdx, TileDeathZone, rng)

	return g
}

// placeItems scatters count tiles of the given kind on free cells. Each
// placement retries on occupied cells, bounded at 100 attempts per item so a
// crowded grid cannot loop forever.
func (g *Grid) placeItems(count, forbiddenIdx int, kind TileKind, rng *rand.Rand) {
	placed := 0
	attempts := 0
	for placed < count && attempts < count*100 {
		attempts++

		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		idx := y*g.Width + x

		if idx == forbiddenIdx {
			continue
		}
		if g.tiles[idx].Kind != TileDefault {
			continue
		}

		switch kind {
		case TileFoodSource:
			g.tiles[idx] = NewFoodTile(x, y, rng.Intn(9900)+100)
		default:
			g.tiles[idx] = NewTile(x, y, kind)
		}
		placed++
	}
}

// At returns the tile at (x, y), or nil when the coordinate is off-grid.
func (g *Grid) At(x, y int) *Tile {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	return &g.tiles[y*g.Width+x]
}

// Tiles exposes the backing tile slice for read-only consumers such as the
// renderer.
func (g *Grid) Tiles() []Tile {
	return g.tiles
}

// IsWalkable reports whether (x, y) can be entered. Off-grid is never
// walkable.
func (g *Grid) IsWalkable(x, y int) bool {
	t := g.At(x, y)
	return t != nil && t.IsWalkable()
}

// IsLethal reports whether (x, y) kills on entry. Off-grid is not lethal.
func (g *Grid) IsLethal(x, y int) bool {
	t := g.At(x, y)
	return t != nil && t.IsLethal()
}

// HasFood reports whether (x, y) is a food source with food left.
func (g *Grid) HasFood(x, y int) bool {
	t := g.At(x, y)
	return t != nil && t.HasFood()
}

// IsNest reports whether (x, y) is the nest.
func (g *Grid) IsNest(x, y int) bool {
	t := g.At(x, y)
	return t != nil && t.IsNest()
}

// NestPosition scans for the nest tile and returns its coordinate. With
// more than one nest on an edited map, the first one in row-major order
// wins.
func (g *Grid) NestPosition() (int, int, bool) {
	for i := range g.tiles {
		if g.tiles[i].IsNest() {
			return g.tiles[i].X, g.tiles[i].Y, true
		}
	}
	return 0, 0, false
}

// Nest returns the nest tile, or nil when the grid has none.
func (g *Grid) Nest() *Tile {
	x, y, ok := g.NestPosition()
	if !ok {
		return nil
	}
	return g.At(x, y)
}

// AddFoodToNest deposits the given amount into the nest stores. A grid
// without a nest is a broken construction contract, so this panics rather
// than returning an error.
func (g *Grid) AddFoodToNest(amount int) {
	nest := g.Nest()
	if nest == nil {
		panic("sim: grid has no nest")
	}
	nest.DepositFood(amount)
}

// StoredFood returns the amount of food deposited at the nest so far.
func (g *Grid) StoredFood() int {
	if nest := g.Nest(); nest != nil {
		return nest.StoredFood
	}
	return 0
}

// IsFoodRemaining reports whether any food source still holds food. This is
// the primary termination signal of the simulation.
func (g *Grid) IsFoodRemaining() bool {
	for i := range g.tiles {
		if g.tiles[i].Kind == TileFoodSource && g.tiles[i].FoodAmount > 0 {
			return true
		}
	}
	return false
}

// RemainingFood sums the food left across all sources.
func (g *Grid) RemainingFood() int {
	total := 0
	for i := range g.tiles {
		if g.tiles[i].Kind == TileFoodSource {
			total += g.tiles[i].FoodAmount
		}
	}
	return total
}

// Clone returns an independent deep copy of the grid.
func (g *Grid) Clone() Grid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return Grid{Width: g.Width, Height: g.Height, tiles: tiles}
}
