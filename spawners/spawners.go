package spawners

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"dungeon-crawl/components"
	"dungeon-crawl/config"
	"dungeon-crawl/data"
	"dungeon-crawl/ecs"
	"dungeon-crawl/generation"
)

// EntitySpawner manages the creation of game entities
type EntitySpawner struct {
	world     *ecs.World
	stores    *components.Stores
	templates *data.EntityTemplateManager
	cfg       *config.Config
	rng       *rand.Rand
	log       *zap.Logger
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, stores *components.Stores, templates *data.EntityTemplateManager, cfg *config.Config, rng *rand.Rand, log *zap.Logger) *EntitySpawner {
	return &EntitySpawner{
		world:     world,
		stores:    stores,
		templates: templates,
		cfg:       cfg,
		rng:       rng,
		log:       log,
	}
}

// CreatePlayer creates a player entity at the given position. The player
// does not block its tile so monsters can path onto it.
func (s *EntitySpawner) CreatePlayer(x, y int) ecs.EntityID {
	id := s.world.CreateEntity()
	s.world.TagEntity(id, components.TagPlayer)

	s.stores.Positions.Set(id, &components.PositionComponent{X: x, Y: y})
	s.stores.Renderables.Set(id, components.NewRenderableComponent('@', color.RGBA{255, 255, 0, 255}))
	s.stores.Players.Set(id, &components.PlayerComponent{})
	s.stores.Names.Set(id, &components.NameComponent{Name: "Player"})
	s.stores.Viewsheds.Set(id, components.NewViewshedComponent(s.cfg.Player.ViewRange))
	s.stores.CombatStats.Set(id, &components.CombatStatsComponent{
		MaxHP:   s.cfg.Player.HP,
		HP:      s.cfg.Player.HP,
		Defense: s.cfg.Player.Defense,
		Power:   s.cfg.Player.Power,
	})

	s.log.Debug("player created", zap.Int("x", x), zap.Int("y", y))
	return id
}

// CreateMap registers the grid map and its tile appearance table.
func (s *EntitySpawner) CreateMap(m *components.MapComponent) ecs.EntityID {
	id := s.world.CreateEntity()
	s.world.TagEntity(id, components.TagMap)
	s.stores.Maps.Set(id, m)
	s.stores.TileMappings.Set(id, components.NewTileMappingComponent())
	return id
}

// CreateCamera creates a camera entity that follows the given target entity
func (s *EntitySpawner) CreateCamera(target ecs.EntityID) ecs.EntityID {
	id := s.world.CreateEntity()
	s.world.TagEntity(id, components.TagCamera)
	s.stores.Cameras.Set(id, components.NewCameraComponent(target))
	return id
}

// CreateMonster creates a monster from a template at the given position
func (s *EntitySpawner) CreateMonster(x, y int, templateID string) (ecs.EntityID, error) {
	template, ok := s.templates.GetTemplate(templateID)
	if !ok {
		return ecs.NoEntity, fmt.Errorf("no template found for monster type '%s'", templateID)
	}

	id := s.world.CreateEntity()
	s.world.TagEntity(id, components.TagMonster)

	s.stores.Positions.Set(id, &components.PositionComponent{X: x, Y: y})
	s.stores.Renderables.Set(id, components.NewRenderableComponent(template.Rune(), data.ParseHexColor(template.Color)))
	s.stores.Monsters.Set(id, &components.MonsterComponent{})
	s.stores.Names.Set(id, &components.NameComponent{Name: template.Name})
	s.stores.Viewsheds.Set(id, components.NewViewshedComponent(s.cfg.Spawn.MonsterViewRange))
	s.stores.CombatStats.Set(id, &components.CombatStatsComponent{
		MaxHP:   template.HP,
		HP:      template.HP,
		Defense: template.Defense,
		Power:   template.Power,
	})
	s.stores.Blockers.Set(id, &components.BlocksTileComponent{})

	s.log.Debug("monster created",
		zap.String("template", template.ID),
		zap.Int("x", x),
		zap.Int("y", y))
	return id, nil
}

// chooseMonsterTemplate picks a template id, weighted by SpawnWeight.
func (s *EntitySpawner) chooseMonsterTemplate() string {
	ids := s.templates.IDs()
	total := 0
	for _, id := range ids {
		t, _ := s.templates.GetTemplate(id)
		total += t.SpawnWeight
	}
	if total <= 0 {
		return ""
	}
	roll := s.rng.Intn(total)
	for _, id := range ids {
		t, _ := s.templates.GetTemplate(id)
		if roll < t.SpawnWeight {
			return id
		}
		roll -= t.SpawnWeight
	}
	return ids[len(ids)-1]
}

// occupied returns every tile currently holding an entity.
func (s *EntitySpawner) occupied(m *components.MapComponent) mapset.Set[int] {
	set := mapset.New[int]()
	s.stores.Positions.Each(func(_ ecs.EntityID, pos *components.PositionComponent) {
		if m.InBounds(pos.X, pos.Y) {
			set.Put(m.TileIndex(pos.X, pos.Y))
		}
	})
	return set
}

// SpawnRoom places one monster at the room centre.
func (s *EntitySpawner) SpawnRoom(room generation.Room, m *components.MapComponent) (ecs.EntityID, error) {
	c := room.Center()
	idx := m.TileIndex(c.X, c.Y)
	if m.Blocked[idx] || s.occupied(m).Has(idx) {
		return ecs.NoEntity, nil
	}
	return s.CreateMonster(c.X, c.Y, s.chooseMonsterTemplate())
}

// SpawnRegion fills a region with between zero and MaxMonstersPerRegion
// monsters on distinct free tiles. It returns how many were created.
func (s *EntitySpawner) SpawnRegion(region []int, m *components.MapComponent) (int, error) {
	maxMonsters := s.cfg.Spawn.MaxMonstersPerRegion
	if maxMonsters <= 0 || len(region) == 0 {
		return 0, nil
	}
	count := min(max(s.rng.Intn(maxMonsters+3)-2, 0), maxMonsters)
	if count == 0 {
		return 0, nil
	}

	taken := s.occupied(m)
	candidates := make([]int, 0, len(region))
	for _, idx := range region {
		if !m.Blocked[idx] && !taken.Has(idx) {
			candidates = append(candidates, idx)
		}
	}
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	spawned := 0
	for _, idx := range candidates[:min(count, len(candidates))] {
		x, y := m.XY(idx)
		if _, err := s.CreateMonster(x, y, s.chooseMonsterTemplate()); err != nil {
			return spawned, err
		}
		spawned++
	}
	return spawned, nil
}

// Populate spawns the monsters for a freshly generated level. Room maps get
// one monster per room centre, skipping the starting room, when the config
// asks for it; everything else fills the result's regions.
func (s *EntitySpawner) Populate(res *generation.Result) (int, error) {
	total := 0
	if s.cfg.Spawn.PerRoomCenter && len(res.Rooms) > 0 {
		for _, room := range res.Rooms[1:] {
			id, err := s.SpawnRoom(room, res.Map)
			if err != nil {
				return total, err
			}
			if !id.IsZero() {
				total++
			}
		}
	} else {
		for _, region := range res.Regions {
			n, err := s.SpawnRegion(region, res.Map)
			total += n
			if err != nil {
				return total, err
			}
		}
	}
	s.log.Info("monsters spawned",
		zap.String("kind", res.Kind.String()),
		zap.Int("count", total))
	return total, nil
}
