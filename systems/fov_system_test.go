package systems

import (
	"testing"

	"dungeon-crawl/components"

	"go.uber.org/zap/zaptest"
)

func TestComputeViewshedWallCastsShadow(t *testing.T) {
	_, _, m := newTestWorld(t, 7, 7)
	m.SetTile(2, 3, components.TileWall)

	vis := ComputeViewshed(components.Point{X: 1, Y: 3}, 8, m)
	if !vis.Has(components.Point{X: 1, Y: 3}) {
		t.Error("origin not visible")
	}
	if !vis.Has(components.Point{X: 2, Y: 3}) {
		t.Error("the wall itself should be visible")
	}
	if vis.Has(components.Point{X: 3, Y: 3}) {
		t.Error("tile behind the wall is visible")
	}
}

func TestComputeViewshedInteriorWallHidesTarget(t *testing.T) {
	tests := []struct {
		name                 string
		origin, wall, target components.Point
	}{
		{"horizontal", components.Point{X: 1, Y: 2}, components.Point{X: 2, Y: 2}, components.Point{X: 3, Y: 2}},
		{"vertical", components.Point{X: 2, Y: 1}, components.Point{X: 2, Y: 2}, components.Point{X: 2, Y: 3}},
		{"diagonal", components.Point{X: 1, Y: 1}, components.Point{X: 2, Y: 2}, components.Point{X: 3, Y: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := components.NewMapComponent(5, 5)
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					m.SetTile(x, y, components.TileFloor)
				}
			}
			m.SetTile(tt.wall.X, tt.wall.Y, components.TileWall)

			vis := ComputeViewshed(tt.origin, 8, m)
			if !vis.Has(tt.wall) {
				t.Error("wall between observer and target not visible")
			}
			if vis.Has(tt.target) {
				t.Errorf("target %v behind the wall is visible", tt.target)
			}
		})
	}
}

func TestComputeViewshedRespectsRadius(t *testing.T) {
	_, _, m := newTestWorld(t, 7, 7)

	vis := ComputeViewshed(components.Point{X: 3, Y: 3}, 2, m)
	if !vis.Has(components.Point{X: 5, Y: 3}) {
		t.Error("tile at exactly the radius should be visible")
	}
	if vis.Has(components.Point{X: 5, Y: 4}) {
		t.Error("tile beyond the radius is visible")
	}
	if vis.Size() != 13 {
		t.Errorf("visible tiles = %d, want 13", vis.Size())
	}
}

func TestComputeViewshedOpenRoomSeesEverything(t *testing.T) {
	_, _, m := newTestWorld(t, 7, 7)
	vis := ComputeViewshed(components.Point{X: 3, Y: 3}, 8, m)
	if vis.Size() != 49 {
		t.Errorf("visible tiles = %d, want 49", vis.Size())
	}
}

func TestComputeViewshedStaysInBounds(t *testing.T) {
	m := components.NewMapComponent(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			m.SetTile(x, y, components.TileFloor)
		}
	}
	vis := ComputeViewshed(components.Point{X: 0, Y: 0}, 8, m)
	vis.Each(func(p components.Point) {
		if !m.InBounds(p.X, p.Y) {
			t.Errorf("out of bounds tile %v in viewshed", p)
		}
	})
	if vis.Size() != 9 {
		t.Errorf("visible tiles = %d, want 9", vis.Size())
	}
}

func TestVisibilitySystemUpdatesOverlays(t *testing.T) {
	world, stores, m := newTestWorld(t, 20, 7)
	player := addPlayer(world, stores, 2, 3, stats(30, 2, 5))
	pvs, _ := stores.Viewsheds.Get(player)
	pvs.Range = 3
	monster := addMonster(world, stores, "Goblin", 10, 3, stats(8, 1, 3))
	mvs, _ := stores.Viewsheds.Get(monster)
	mvs.Range = 1

	sys := NewVisibilitySystem(stores, zaptest.NewLogger(t))
	sys.Update(world)

	if pvs.Dirty || mvs.Dirty {
		t.Fatal("viewsheds still dirty after update")
	}
	near := m.TileIndex(5, 3)
	if !m.Visible[near] || !m.Revealed[near] {
		t.Error("tile in the player's view not marked visible and revealed")
	}
	monsterTile := m.TileIndex(10, 3)
	if m.Visible[monsterTile] {
		t.Error("monster view leaked into the visible overlay")
	}
	if m.Revealed[monsterTile] {
		t.Error("monster view revealed a tile the player never saw")
	}

	pos, _ := stores.Positions.Get(player)
	pos.X = 15
	pvs.Dirty = true
	sys.Update(world)

	if m.Visible[near] {
		t.Error("stale tile still visible after the player moved")
	}
	if !m.Revealed[near] {
		t.Error("revealed flag was cleared")
	}
	if !m.Visible[m.TileIndex(15, 3)] {
		t.Error("player tile not visible")
	}
}

func TestVisibilitySystemSkipsCleanViewsheds(t *testing.T) {
	world, stores, m := newTestWorld(t, 10, 10)
	player := addPlayer(world, stores, 5, 5, stats(30, 2, 5))
	pvs, _ := stores.Viewsheds.Get(player)
	pvs.Dirty = false

	NewVisibilitySystem(stores, zaptest.NewLogger(t)).Update(world)

	if pvs.VisibleTiles.Size() != 0 {
		t.Error("clean viewshed was recomputed")
	}
	if m.Revealed[m.TileIndex(5, 5)] {
		t.Error("clean viewshed revealed tiles")
	}
}

func TestVisibilitySystemMonsterViewDoesNotReveal(t *testing.T) {
	world, stores, m := newTestWorld(t, 30, 7)
	for y := 1; y < 6; y++ {
		m.SetTile(10, y, components.TileWall)
	}
	addPlayer(world, stores, 2, 3, stats(30, 2, 5))
	orc := addMonster(world, stores, "Orc", 25, 3, stats(16, 1, 4))

	NewVisibilitySystem(stores, zaptest.NewLogger(t)).Update(world)

	ovs, _ := stores.Viewsheds.Get(orc)
	if !ovs.VisibleTiles.Has(components.Point{X: 24, Y: 3}) {
		t.Fatal("orc viewshed not computed")
	}
	for _, p := range []components.Point{{X: 25, Y: 3}, {X: 24, Y: 3}, {X: 20, Y: 2}} {
		idx := m.TileIndex(p.X, p.Y)
		if m.Revealed[idx] || m.Visible[idx] {
			t.Errorf("tile %v behind the wall: revealed=%v visible=%v", p, m.Revealed[idx], m.Visible[idx])
		}
	}
	if !m.Revealed[m.TileIndex(9, 3)] {
		t.Error("tile in the player's view not revealed")
	}
}
