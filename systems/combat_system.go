package systems

import (
	"dungeon-crawl/components"
	"dungeon-crawl/ecs"

	"go.uber.org/zap"
)

// ResolveMeleeIntent computes the damage of one blow. Damage never goes
// below zero; the defender's HP is reduced by the returned amount.
func ResolveMeleeIntent(attacker, defender *components.CombatStatsComponent) int {
	damage := max(0, attacker.Power-defender.Defense)
	defender.HP -= damage
	return damage
}

// MeleeCombatSystem resolves every queued attack in ascending attacker id
// order, then clears all intents.
type MeleeCombatSystem struct {
	stores *components.Stores
	msgs   *MessageLog
	log    *zap.Logger
}

// NewMeleeCombatSystem creates the melee pass.
func NewMeleeCombatSystem(stores *components.Stores, msgs *MessageLog, log *zap.Logger) *MeleeCombatSystem {
	return &MeleeCombatSystem{stores: stores, msgs: msgs, log: log}
}

func (s *MeleeCombatSystem) Phase() ecs.Phase { return ecs.PhaseMelee }

func (s *MeleeCombatSystem) Update(world *ecs.World) {
	ecs.Each2(s.stores.WantsToMelee, s.stores.CombatStats, func(id ecs.EntityID, want *components.WantsToMeleeComponent, stats *components.CombatStatsComponent) {
		if !stats.Alive() {
			return
		}
		targetStats, ok := s.stores.CombatStats.Get(want.Target)
		if !ok || !world.Alive(want.Target) || !targetStats.Alive() {
			return
		}

		attacker := s.stores.NameOf(id)
		defender := s.stores.NameOf(want.Target)
		damage := ResolveMeleeIntent(stats, targetStats)
		if damage == 0 {
			s.msgs.AddCombat("%s is unable to hurt %s.", attacker, defender)
		} else {
			s.msgs.AddCombat("%s hits %s, for %d hp.", attacker, defender, damage)
		}
		world.EmitEvent(CombatEvent{AttackerID: id, DefenderID: want.Target, Damage: damage, Lethal: !targetStats.Alive()})

		s.log.Debug("melee resolved",
			zap.String("attacker", attacker),
			zap.String("defender", defender),
			zap.Int("damage", damage),
			zap.Int("defender_hp", targetStats.HP))
	})

	for _, id := range s.stores.WantsToMelee.IDs() {
		s.stores.WantsToMelee.Remove(id)
	}
}
