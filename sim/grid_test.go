package sim

import (
	"reflect"
	"testing"

	"golang.org/x/exp/rand"
)

func TestGridOutOfBoundsQueries(t *testing.T) {
	g := NewGrid(3, 3)
	for _, pos := range []Point{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 3}, {X: 7, Y: 7}} {
		if g.At(pos.X, pos.Y) != nil {
			t.Errorf("At(%d, %d) returned a tile off-grid", pos.X, pos.Y)
		}
		if g.IsWalkable(pos.X, pos.Y) {
			t.Errorf("IsWalkable(%d, %d) = true off-grid", pos.X, pos.Y)
		}
		if g.IsLethal(pos.X, pos.Y) || g.HasFood(pos.X, pos.Y) || g.IsNest(pos.X, pos.Y) {
			t.Errorf("off-grid query at (%d, %d) not false", pos.X, pos.Y)
		}
	}
}

func TestNewGridWithTilesDropsOutOfBounds(t *testing.T) {
	tiles := []Tile{
		NewNestTile(1, 1, 0, 0, 0),
		NewFoodTile(0, 0, 30),
		NewTile(5, 5, TileWall),   // off-grid, dropped
		NewTile(-1, 0, TileWall),  // off-grid, dropped
		NewTile(0, -1, TileWall),  // off-grid, dropped
	}
	g := NewGridWithTiles(2, 2, tiles)

	if !g.IsNest(1, 1) {
		t.Error("nest tile not placed")
	}
	if !g.HasFood(0, 0) {
		t.Error("food tile not placed")
	}
	for _, tile := range g.Tiles() {
		if tile.Kind == TileWall {
			t.Fatalf("out-of-bounds wall leaked onto the grid at (%d, %d)", tile.X, tile.Y)
		}
	}
}

func TestNestQueries(t *testing.T) {
	g := NewGridWithTiles(3, 3, []Tile{NewNestTile(2, 1, 0, 0, 0)})

	x, y, ok := g.NestPosition()
	if !ok || x != 2 || y != 1 {
		t.Fatalf("NestPosition = (%d, %d, %v), want (2, 1, true)", x, y, ok)
	}

	g.AddFoodToNest(42)
	if got := g.StoredFood(); got != 42 {
		t.Fatalf("StoredFood = %d, want 42", got)
	}

	empty := NewGrid(2, 2)
	if _, _, ok := empty.NestPosition(); ok {
		t.Fatal("NestPosition found a nest on an empty grid")
	}
	if empty.Nest() != nil {
		t.Fatal("Nest returned a tile on an empty grid")
	}
	if got := empty.StoredFood(); got != 0 {
		t.Fatalf("StoredFood without a nest = %d, want 0", got)
	}
}

func TestAddFoodToNestPanicsWithoutNest(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("AddFoodToNest on a nestless grid did not panic")
		}
	}()
	g := NewGrid(2, 2)
	g.AddFoodToNest(1)
}

func TestFoodAccounting(t *testing.T) {
	g := NewGridWithTiles(3, 1, []Tile{
		NewNestTile(0, 0, 0, 0, 0),
		NewFoodTile(1, 0, 3),
		NewFoodTile(2, 0, 2),
	})

	if !g.IsFoodRemaining() {
		t.Fatal("IsFoodRemaining = false with stocked sources")
	}
	if got := g.RemainingFood(); got != 5 {
		t.Fatalf("RemainingFood = %d, want 5", got)
	}

	for g.At(1, 0).TakeFood() {
	}
	for g.At(2, 0).TakeFood() {
	}
	if g.IsFoodRemaining() {
		t.Fatal("IsFoodRemaining = true after draining every source")
	}
	if got := g.RemainingFood(); got != 0 {
		t.Fatalf("RemainingFood = %d, want 0", got)
	}
}

func TestNewRandomGridProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := NewRandomGrid(10, 10, rng)

	nests, food, walls := 0, 0, 0
	for _, tile := range g.Tiles() {
		switch tile.Kind {
		case TileNest:
			nests++
		case TileFoodSource:
			food++
			if tile.FoodAmount < 100 || tile.FoodAmount > 9999 {
				t.Errorf("food amount %d outside [100, 9999]", tile.FoodAmount)
			}
		case TileWall:
			walls++
		}
	}

	if nests != 1 {
		t.Fatalf("generated %d nests, want exactly 1", nests)
	}
	if food < 1 || food > 3 {
		t.Fatalf("generated %d food sources, want 1..3", food)
	}
	if walls > 100/4 {
		t.Fatalf("generated %d walls, budget is %d", walls, 100/4)
	}
}

func TestNewRandomGridSeededDeterminism(t *testing.T) {
	a := NewRandomGrid(8, 8, rand.New(rand.NewSource(99)))
	b := NewRandomGrid(8, 8, rand.New(rand.NewSource(99)))
	if !reflect.DeepEqual(a.Tiles(), b.Tiles()) {
		t.Fatal("two grids from the same seed differ")
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGridWithTiles(2, 1, []Tile{
		NewNestTile(0, 0, 0, 0, 0),
		NewFoodTile(1, 0, 5),
	})
	clone := g.Clone()

	g.At(1, 0).TakeFood()
	g.AddFoodToNest(9)

	if got := clone.At(1, 0).FoodAmount; got != 5 {
		t.Errorf("clone food mutated with original: %d", got)
	}
	if got := clone.StoredFood(); got != 0 {
		t.Errorf("clone nest mutated with original: %d", got)
	}
}
