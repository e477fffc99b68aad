package systems

import (
	"math"

	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
	"dungeon-crawl/pathfinding"

	"go.uber.org/zap"
)

// MonsterAISystem decides what each monster does this tick. A monster next
// to the player queues an attack. One that can see the player takes a
// single step along the shortest path toward it.
type MonsterAISystem struct {
	stores *components.Stores
	msgs   *MessageLog
	log    *zap.Logger
}

// NewMonsterAISystem creates the monster AI pass.
func NewMonsterAISystem(stores *components.Stores, msgs *MessageLog, log *zap.Logger) *MonsterAISystem {
	return &MonsterAISystem{stores: stores, msgs: msgs, log: log}
}

func (s *MonsterAISystem) Phase() ecs.Phase { return ecs.PhaseAI }

func (s *MonsterAISystem) Update(world *ecs.World) {
	m, ok := s.stores.Map()
	if !ok {
		return
	}
	playerID, ok := s.stores.Player()
	if !ok {
		return
	}
	playerPos, ok := s.stores.Positions.Get(playerID)
	if !ok {
		return
	}
	target := playerPos.Point()
	targetIdx := m.TileIndex(target.X, target.Y)

	ecs.Each3(s.stores.Monsters, s.stores.Viewsheds, s.stores.Positions, func(id ecs.EntityID, mon *components.MonsterComponent, vs *components.ViewshedComponent, pos *components.PositionComponent) {
		if stats, ok := s.stores.CombatStats.Get(id); ok && !stats.Alive() {
			return
		}

		distance := math.Hypot(float64(pos.X-target.X), float64(pos.Y-target.Y))
		if distance < 1.5 {
			s.stores.WantsToMelee.Set(id, &components.WantsToMeleeComponent{Target: playerID})
			return
		}
		if !vs.CanSee(target) {
			return
		}

		if !mon.Alerted {
			mon.Alerted = true
			s.msgs.AddEnvironment("%s shouts insults", s.stores.NameOf(id))
		}

		from := m.TileIndex(pos.X, pos.Y)
		path := pathfinding.FindPath(from, targetIdx, m)
		if !path.Success || len(path.Steps) < 2 {
			return
		}
		next := path.Steps[1]
		m.Blocked[from] = false
		pos.X, pos.Y = m.XY(next)
		m.Blocked[next] = true
		vs.Dirty = true

		s.log.Debug("monster stepped toward player",
			zap.Uint64("entity", uint64(id)),
			zap.Int("x", pos.X),
			zap.Int("y", pos.Y),
			zap.Int("path_len", len(path.Steps)))
	})
}
