package sim

import "testing"

func TestActionTargetClampsAtZero(t *testing.T) {
	cases := []struct {
		action Action
		x, y   int
		wantX  int
		wantY  int
	}{
		{ActionUp, 3, 0, 3, 0},
		{ActionUp, 3, 2, 3, 1},
		{ActionDown, 3, 2, 3, 3},
		{ActionLeft, 0, 2, 0, 2},
		{ActionLeft, 4, 2, 3, 2},
		{ActionRight, 4, 2, 5, 2},
		{ActionStay, 4, 2, 4, 2},
	}
	for _, tc := range cases {
		gotX, gotY := tc.action.Target(tc.x, tc.y)
		if gotX != tc.wantX || gotY != tc.wantY {
			t.Errorf("%v.Target(%d, %d) = (%d, %d), want (%d, %d)",
				tc.action, tc.x, tc.y, gotX, gotY, tc.wantX, tc.wantY)
		}
	}
}

func TestQOutOfBoundsSentinel(t *testing.T) {
	p := NewPheromoneMap(3, 3)
	for _, pos := range []Point{{X: 3, Y: 0}, {X: 0, Y: 3}, {X: -1, Y: 0}, {X: 10, Y: 10}} {
		if got := p.Q(pos.X, pos.Y, ActionUp); got != outOfBoundsQ {
			t.Errorf("Q(%d, %d) = %v, want %v", pos.X, pos.Y, got, outOfBoundsQ)
		}
	}
	if got := p.MaxQ(5, 5); got != 0 {
		t.Errorf("MaxQ off-grid = %v, want 0", got)
	}
}

func TestQueueUpdateIsDeferred(t *testing.T) {
	p := NewPheromoneMap(4, 4)

	p.QueueUpdate(1, 2, ActionRight, 5)
	p.QueueUpdate(1, 2, ActionRight, 3)
	if got := p.Q(1, 2, ActionRight); got != 0 {
		t.Fatalf("value visible before ApplyTick: %v", got)
	}

	p.ApplyTick(0)
	if got := p.Q(1, 2, ActionRight); got != 8 {
		t.Fatalf("after ApplyTick Q = %v, want accumulated 8", got)
	}

	// The buffer must be drained: a second apply must not re-add.
	p.ApplyTick(0)
	if got := p.Q(1, 2, ActionRight); got != 8 {
		t.Fatalf("pending buffer not drained, Q = %v", got)
	}
}

func TestApplyTickEvaporation(t *testing.T) {
	p := NewPheromoneMap(2, 2)
	p.QueueUpdate(0, 0, ActionUp, 10)
	p.QueueUpdate(1, 1, ActionStay, -8)
	p.ApplyTick(0)

	p.ApplyTick(0.25)
	if got := p.Q(0, 0, ActionUp); got != 10*0.75 {
		t.Errorf("Q(0,0,Up) = %v, want %v", got, 10*0.75)
	}
	if got := p.Q(1, 1, ActionStay); got != -8*0.75 {
		t.Errorf("Q(1,1,Stay) = %v, want %v", got, -8*0.75)
	}
}

func TestApplyTickSnapsNearZero(t *testing.T) {
	p := NewPheromoneMap(2, 2)
	p.QueueUpdate(0, 0, ActionUp, 0.0015)
	p.QueueUpdate(0, 1, ActionDown, -0.0015)
	p.ApplyTick(0)

	if got := p.Q(0, 0, ActionUp); got != 0.0015 {
		t.Fatalf("value above threshold snapped: %v", got)
	}

	// Halving both drops them under the 0.001 threshold.
	p.ApplyTick(0.5)
	if got := p.Q(0, 0, ActionUp); got != 0 {
		t.Errorf("positive tail not snapped to zero: %v", got)
	}
	if got := p.Q(0, 1, ActionDown); got != 0 {
		t.Errorf("negative tail not snapped to zero: %v", got)
	}
}

func TestBestActionTieBreaksUp(t *testing.T) {
	grid := NewGrid(3, 3)
	p := NewPheromoneMap(3, 3)

	// All four neighbors walkable and all values equal: first-seen wins.
	if got := p.BestAction(1, 1, &grid); got != ActionUp {
		t.Fatalf("BestAction on all-equal values = %v, want Up", got)
	}
}

func TestBestActionPrefersHighestValue(t *testing.T) {
	grid := NewGrid(3, 3)
	p := NewPheromoneMap(3, 3)
	p.QueueUpdate(1, 1, ActionLeft, 4)
	p.QueueUpdate(1, 1, ActionDown, 2)
	p.ApplyTick(0)

	if got := p.BestAction(1, 1, &grid); got != ActionLeft {
		t.Fatalf("BestAction = %v, want Left", got)
	}
}

func TestBestActionSkipsWallsAndEdges(t *testing.T) {
	tiles := []Tile{NewTile(1, 0, TileWall)}
	grid := NewGridWithTiles(2, 1, tiles)
	p := NewPheromoneMap(2, 1)
	p.QueueUpdate(0, 0, ActionRight, 100)
	p.ApplyTick(0)

	// Right is a wall, Down is off-grid; Up clamps onto the own cell and
	// stays legal.
	if got := p.BestAction(0, 0, &grid); got != ActionUp {
		t.Fatalf("BestAction = %v, want Up", got)
	}
}

func TestBestActionEnclosedReturnsStay(t *testing.T) {
	tiles := []Tile{
		NewTile(1, 0, TileWall),
		NewTile(0, 1, TileWall),
		NewTile(2, 1, TileWall),
		NewTile(1, 2, TileWall),
	}
	grid := NewGridWithTiles(3, 3, tiles)
	p := NewPheromoneMap(3, 3)

	if got := p.BestAction(1, 1, &grid); got != ActionStay {
		t.Fatalf("BestAction for enclosed cell = %v, want Stay", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := NewPheromoneMap(2, 2)
	p.QueueUpdate(0, 0, ActionUp, 10)
	p.ApplyTick(0)

	clone := p.Clone()
	p.QueueUpdate(0, 0, ActionUp, 5)
	p.ApplyTick(0)

	if got := clone.Q(0, 0, ActionUp); got != 10 {
		t.Fatalf("clone mutated with original: %v", got)
	}
}
