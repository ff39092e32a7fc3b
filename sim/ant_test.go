package sim

import "testing"

func TestNewAntConstants(t *testing.T) {
	cases := []struct {
		antType   AntType
		maxCharge int
		period    int
		scope     int
	}{
		{AntExplorer, 10, 5, 1},
		{AntFighter, 10, 5, 1},
		{AntPicker, 100, 10, 0},
	}
	for _, tc := range cases {
		ant := NewAnt(tc.antType)
		if ant.MaximalCharge != tc.maxCharge || ant.MovementPeriod != tc.period || ant.Scope != tc.scope {
			t.Errorf("%v constants = (%d, %d, %d), want (%d, %d, %d)",
				tc.antType, ant.MaximalCharge, ant.MovementPeriod, ant.Scope,
				tc.maxCharge, tc.period, tc.scope)
		}
		if ant.Position != nil {
			t.Errorf("%v spawned with a position", tc.antType)
		}
		if ant.Mode != ModeFinding {
			t.Errorf("%v built in mode %v, want Finding", tc.antType, ant.Mode)
		}
		if ant.CurrentCharge != 0 {
			t.Errorf("%v built carrying %d", tc.antType, ant.CurrentCharge)
		}
	}
}

func TestTargetPosition(t *testing.T) {
	ant := NewAnt(AntExplorer)

	// Off-map ants compute from the origin.
	if x, y := ant.TargetPosition(ActionDown); x != 0 || y != 1 {
		t.Errorf("unspawned TargetPosition(Down) = (%d, %d), want (0, 1)", x, y)
	}

	ant.MoveTo(0, 0)
	if x, y := ant.TargetPosition(ActionUp); x != 0 || y != 0 {
		t.Errorf("TargetPosition(Up) at origin = (%d, %d), want clamp to (0, 0)", x, y)
	}
	if x, y := ant.TargetPosition(ActionLeft); x != 0 || y != 0 {
		t.Errorf("TargetPosition(Left) at origin = (%d, %d), want clamp to (0, 0)", x, y)
	}

	ant.MoveTo(2, 3)
	if x, y := ant.TargetPosition(ActionRight); x != 3 || y != 3 {
		t.Errorf("TargetPosition(Right) = (%d, %d), want (3, 3)", x, y)
	}
}

func TestSpawnAtNest(t *testing.T) {
	g := NewGridWithTiles(3, 3, []Tile{NewNestTile(1, 2, 0, 0, 0)})
	ant := NewAnt(AntPicker)
	ant.SpawnAtNest(&g)
	if ant.Position == nil || ant.Position.X != 1 || ant.Position.Y != 2 {
		t.Fatalf("SpawnAtNest placed ant at %v, want (1, 2)", ant.Position)
	}

	nestless := NewGrid(2, 2)
	other := NewAnt(AntPicker)
	other.SpawnAtNest(&nestless)
	if other.Position != nil {
		t.Fatal("SpawnAtNest placed an ant on a grid without a nest")
	}
}

func TestCloneAntsDeepCopiesPositions(t *testing.T) {
	ants := []Ant{NewAnt(AntExplorer)}
	ants[0].MoveTo(4, 4)

	clone := cloneAnts(ants)
	ants[0].Position.X = 9

	if clone[0].Position.X != 4 {
		t.Fatalf("clone position mutated with original: %d", clone[0].Position.X)
	}
}
