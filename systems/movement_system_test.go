package systems

import (
	"testing"

	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
)

func TestDeltaFromDirection(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirNone, 0, 0},
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
		{DirUpLeft, -1, -1},
		{DirUpRight, 1, -1},
		{DirDownLeft, -1, 1},
		{DirDownRight, 1, 1},
	}
	for _, tt := range tests {
		dx, dy := DeltaFromDirection(tt.dir)
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("DeltaFromDirection(%d) = (%d,%d), want (%d,%d)", tt.dir, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestTryMovePlayerMoves(t *testing.T) {
	world, stores, _ := newTestWorld(t, 10, 10)
	player := addPlayer(world, stores, 3, 3, stats(30, 2, 5))
	vs, _ := stores.Viewsheds.Get(player)
	vs.Dirty = false

	var moves []PlayerMoveEvent
	world.GetEventManager().Subscribe(EventMovement, func(e ecs.Event) {
		moves = append(moves, e.(PlayerMoveEvent))
	})

	if got := TryMovePlayer(world, stores, 1, 1); got != MoveMoved {
		t.Fatalf("result = %v, want moved", got)
	}
	pos, _ := stores.Positions.Get(player)
	if pos.X != 4 || pos.Y != 4 {
		t.Errorf("player at (%d,%d), want (4,4)", pos.X, pos.Y)
	}
	if !vs.Dirty {
		t.Error("viewshed not dirtied")
	}
	if len(moves) != 1 || moves[0].From != (components.Point{X: 3, Y: 3}) || moves[0].To != (components.Point{X: 4, Y: 4}) {
		t.Errorf("move events = %+v", moves)
	}
}

func TestTryMovePlayerBlocked(t *testing.T) {
	world, stores, m := newTestWorld(t, 10, 10)
	player := addPlayer(world, stores, 3, 3, stats(30, 2, 5))
	m.SetTile(4, 3, components.TileWall)

	if got := TryMovePlayer(world, stores, 1, 0); got != MoveNone {
		t.Errorf("moving into a wall = %v", got)
	}
	// (0, 3) lies outside the playable range
	pos, _ := stores.Positions.Get(player)
	pos.X = 1
	if got := TryMovePlayer(world, stores, -1, 0); got != MoveNone {
		t.Errorf("moving off the edge = %v", got)
	}
	if pos.X != 1 || pos.Y != 3 {
		t.Errorf("player moved to (%d,%d)", pos.X, pos.Y)
	}
}

func TestTryMovePlayerAttacks(t *testing.T) {
	world, stores, _ := newTestWorld(t, 10, 10)
	player := addPlayer(world, stores, 3, 3, stats(30, 2, 5))
	goblin := addMonster(world, stores, "Goblin", 4, 3, stats(8, 1, 3))
	NewMapIndexingSystem(stores).Update(world)

	if got := TryMovePlayer(world, stores, 1, 0); got != MoveAttacked {
		t.Fatalf("result = %v, want attacked", got)
	}
	want, ok := stores.WantsToMelee.Get(player)
	if !ok || want.Target != goblin {
		t.Fatalf("melee intent = %+v", want)
	}
	pos, _ := stores.Positions.Get(player)
	if pos.X != 3 {
		t.Error("player moved onto the monster")
	}
}

func TestTryMovePlayerWithoutMap(t *testing.T) {
	world := ecs.NewWorld()
	stores := components.NewStores(world)
	if got := TryMovePlayer(world, stores, 1, 0); got != MoveNone {
		t.Errorf("result = %v without a map", got)
	}
}
