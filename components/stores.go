package components

import "dungeon-crawl/ecs"

// Tags the spawner attaches; singletons are looked up through them.
const (
	TagPlayer  = "player"
	TagMonster = "monster"
	TagMap     = "map"
	TagCamera  = "camera"
)

// Stores bundles the typed component tables shared by every system.
type Stores struct {
	world *ecs.World

	Positions    *ecs.Store[PositionComponent]
	Renderables  *ecs.Store[RenderableComponent]
	Players      *ecs.Store[PlayerComponent]
	Monsters     *ecs.Store[MonsterComponent]
	Names        *ecs.Store[NameComponent]
	Blockers     *ecs.Store[BlocksTileComponent]
	Viewsheds    *ecs.Store[ViewshedComponent]
	CombatStats  *ecs.Store[CombatStatsComponent]
	WantsToMelee *ecs.Store[WantsToMeleeComponent]
	Maps         *ecs.Store[MapComponent]
	TileMappings *ecs.Store[TileMappingComponent]
	Cameras      *ecs.Store[CameraComponent]
}

// NewStores creates every table and registers it with world so destroyed
// entities are purged from all of them.
func NewStores(world *ecs.World) *Stores {
	s := &Stores{
		world:        world,
		Positions:    ecs.NewStore[PositionComponent](),
		Renderables:  ecs.NewStore[RenderableComponent](),
		Players:      ecs.NewStore[PlayerComponent](),
		Monsters:     ecs.NewStore[MonsterComponent](),
		Names:        ecs.NewStore[NameComponent](),
		Blockers:     ecs.NewStore[BlocksTileComponent](),
		Viewsheds:    ecs.NewStore[ViewshedComponent](),
		CombatStats:  ecs.NewStore[CombatStatsComponent](),
		WantsToMelee: ecs.NewStore[WantsToMeleeComponent](),
		Maps:         ecs.NewStore[MapComponent](),
		TileMappings: ecs.NewStore[TileMappingComponent](),
		Cameras:      ecs.NewStore[CameraComponent](),
	}
	world.Register(s.Positions)
	world.Register(s.Renderables)
	world.Register(s.Players)
	world.Register(s.Monsters)
	world.Register(s.Names)
	world.Register(s.Blockers)
	world.Register(s.Viewsheds)
	world.Register(s.CombatStats)
	world.Register(s.WantsToMelee)
	world.Register(s.Maps)
	world.Register(s.TileMappings)
	world.Register(s.Cameras)
	return s
}

// NameOf returns the entity's display name, or "something" when it has none.
func (s *Stores) NameOf(id ecs.EntityID) string {
	if n, ok := s.Names.Get(id); ok {
		return n.Name
	}
	return "something"
}

// Player returns the entity tagged as the player, if one exists.
func (s *Stores) Player() (ecs.EntityID, bool) {
	return s.world.FirstWithTag(TagPlayer)
}

// Map returns the grid map of the entity tagged as the map.
func (s *Stores) Map() (*MapComponent, bool) {
	id, ok := s.world.FirstWithTag(TagMap)
	if !ok {
		return nil, false
	}
	return s.Maps.Get(id)
}
