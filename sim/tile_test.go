package sim

import "testing"

func TestTilePredicates(t *testing.T) {
	cases := []struct {
		tile     Tile
		walkable bool
		lethal   bool
		hasFood  bool
		isNest   bool
	}{
		{NewTile(0, 0, TileDefault), true, false, false, false},
		{NewTile(0, 0, TileWall), false, false, false, false},
		{NewTile(0, 0, TileDeathZone), true, true, false, false},
		{NewFoodTile(0, 0, 50), true, false, true, false},
		{NewFoodTile(0, 0, 0), true, false, false, false},
		{NewNestTile(0, 0, 1, 2, 3), true, false, false, true},
	}
	for _, tc := range cases {
		if got := tc.tile.IsWalkable(); got != tc.walkable {
			t.Errorf("%v IsWalkable = %v, want %v", tc.tile.Kind, got, tc.walkable)
		}
		if got := tc.tile.IsLethal(); got != tc.lethal {
			t.Errorf("%v IsLethal = %v, want %v", tc.tile.Kind, got, tc.lethal)
		}
		if got := tc.tile.HasFood(); got != tc.hasFood {
			t.Errorf("%v HasFood = %v, want %v", tc.tile.Kind, got, tc.hasFood)
		}
		if got := tc.tile.IsNest(); got != tc.isNest {
			t.Errorf("%v IsNest = %v, want %v", tc.tile.Kind, got, tc.isNest)
		}
	}
}

func TestTakeFoodSaturates(t *testing.T) {
	tile := NewFoodTile(0, 0, 2)
	if !tile.TakeFood() || !tile.TakeFood() {
		t.Fatal("expected two successful takes")
	}
	if tile.FoodAmount != 0 {
		t.Fatalf("FoodAmount = %d, want 0", tile.FoodAmount)
	}
	if tile.TakeFood() {
		t.Fatal("take from empty source succeeded")
	}
	if tile.FoodAmount != 0 {
		t.Fatalf("FoodAmount went negative: %d", tile.FoodAmount)
	}

	wall := NewTile(0, 0, TileWall)
	if wall.TakeFood() {
		t.Fatal("take from non-food tile succeeded")
	}
}

func TestDepositFoodIgnoresNonNest(t *testing.T) {
	nest := NewNestTile(0, 0, 0, 0, 0)
	nest.DepositFood(10)
	nest.DepositFood(5)
	if nest.StoredFood != 15 {
		t.Fatalf("StoredFood = %d, want 15", nest.StoredFood)
	}

	plain := NewTile(0, 0, TileDefault)
	plain.DepositFood(10)
	if plain.StoredFood != 0 {
		t.Fatalf("non-nest tile accepted deposit: %d", plain.StoredFood)
	}
}
