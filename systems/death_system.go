package systems

import (
	"dungeon-crawl/components"
	"dungeon-crawl/ecs"

	"go.uber.org/zap"
)

// DeathSystem removes monsters whose HP has run out. The player is never
// removed; its HP is pinned at zero and a single GameOverEvent is raised.
type DeathSystem struct {
	stores     *components.Stores
	msgs       *MessageLog
	log        *zap.Logger
	playerDead bool
}

// NewDeathSystem creates the death cleanup pass.
func NewDeathSystem(stores *components.Stores, msgs *MessageLog, log *zap.Logger) *DeathSystem {
	return &DeathSystem{stores: stores, msgs: msgs, log: log}
}

func (s *DeathSystem) Phase() ecs.Phase { return ecs.PhaseCleanup }

// PlayerDead reports whether the player has died.
func (s *DeathSystem) PlayerDead() bool {
	return s.playerDead
}

func (s *DeathSystem) Update(world *ecs.World) {
	s.stores.CombatStats.Each(func(id ecs.EntityID, stats *components.CombatStatsComponent) {
		if stats.Alive() {
			return
		}
		if s.stores.Players.Has(id) {
			stats.HP = 0
			if !s.playerDead {
				s.playerDead = true
				s.msgs.AddAlert("You are dead.")
				s.log.Info("player died")
				world.EmitEvent(GameOverEvent{PlayerID: id})
			}
			return
		}
		if world.PendingDestruction(id) {
			return
		}

		name := s.stores.NameOf(id)
		s.msgs.AddCombat("%s dies.", name)
		world.MarkForDestruction(id)
		world.EmitEvent(DeathEvent{EntityID: id, Name: name})
		s.log.Debug("entity died", zap.Uint64("entity", uint64(id)), zap.String("name", name))
	})
}
