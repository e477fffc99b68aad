package systems

import (
	"testing"

	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
)

// newTestWorld builds a w x h map with a solid border and open interior.
func newTestWorld(t *testing.T, w, h int) (*ecs.World, *components.Stores, *components.MapComponent) {
	t.Helper()
	world := ecs.NewWorld()
	stores := components.NewStores(world)
	m := components.NewMapComponent(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.SetTile(x, y, components.TileFloor)
		}
	}
	id := world.CreateEntity()
	stores.Maps.Set(id, m)
	world.TagEntity(id, components.TagMap)
	return world, stores, m
}

func addPlayer(world *ecs.World, stores *components.Stores, x, y int, stats components.CombatStatsComponent) ecs.EntityID {
	id := world.CreateEntity()
	stores.Positions.Set(id, &components.PositionComponent{X: x, Y: y})
	stores.Players.Set(id, &components.PlayerComponent{})
	stores.Names.Set(id, &components.NameComponent{Name: "Player"})
	stores.Viewsheds.Set(id, components.NewViewshedComponent(8))
	stores.CombatStats.Set(id, &stats)
	world.TagEntity(id, components.TagPlayer)
	return id
}

func addMonster(world *ecs.World, stores *components.Stores, name string, x, y int, stats components.CombatStatsComponent) ecs.EntityID {
	id := world.CreateEntity()
	stores.Positions.Set(id, &components.PositionComponent{X: x, Y: y})
	stores.Monsters.Set(id, &components.MonsterComponent{})
	stores.Names.Set(id, &components.NameComponent{Name: name})
	stores.Viewsheds.Set(id, components.NewViewshedComponent(8))
	stores.Blockers.Set(id, &components.BlocksTileComponent{})
	stores.CombatStats.Set(id, &stats)
	world.TagEntity(id, components.TagMonster)
	return id
}

func stats(hp, def, pow int) components.CombatStatsComponent {
	return components.CombatStatsComponent{MaxHP: hp, HP: hp, Defense: def, Power: pow}
}
