package systems

import (
	"testing"

	"dungeon-crawl/components"
	"dungeon-crawl/ecs"

	"go.uber.org/zap/zaptest"
)

func TestResolveMeleeIntent(t *testing.T) {
	tests := []struct {
		name           string
		power, defense int
		wantDamage     int
		wantDefenderHP int
	}{
		{"power exceeds defense", 5, 2, 3, 7},
		{"defense exceeds power", 5, 9, 0, 10},
		{"equal", 4, 4, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attacker := stats(10, 0, tt.power)
			defender := stats(10, tt.defense, 0)
			got := ResolveMeleeIntent(&attacker, &defender)
			if got != tt.wantDamage {
				t.Errorf("damage = %d, want %d", got, tt.wantDamage)
			}
			if defender.HP != tt.wantDefenderHP {
				t.Errorf("defender HP = %d, want %d", defender.HP, tt.wantDefenderHP)
			}
		})
	}
}

func TestMeleeCombatSystemResolvesAndClears(t *testing.T) {
	world, stores, _ := newTestWorld(t, 10, 10)
	player := addPlayer(world, stores, 2, 2, stats(30, 2, 5))
	goblin := addMonster(world, stores, "Goblin", 3, 2, stats(8, 2, 3))
	orc := addMonster(world, stores, "Orc", 3, 3, stats(16, 1, 1))

	stores.WantsToMelee.Set(player, &components.WantsToMeleeComponent{Target: goblin})
	stores.WantsToMelee.Set(orc, &components.WantsToMeleeComponent{Target: player})

	var events []CombatEvent
	world.GetEventManager().Subscribe(EventCombat, func(e ecs.Event) {
		events = append(events, e.(CombatEvent))
	})

	msgs := NewMessageLog()
	NewMeleeCombatSystem(stores, msgs, zaptest.NewLogger(t)).Update(world)

	want := []string{
		"Player hits Goblin, for 3 hp.",
		"Orc is unable to hurt Player.",
	}
	got := msgs.Entries()
	if len(got) != len(want) {
		t.Fatalf("messages = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message %d = %q, want %q", i, got[i], want[i])
		}
	}
	gs, _ := stores.CombatStats.Get(goblin)
	if gs.HP != 5 {
		t.Errorf("goblin HP = %d, want 5", gs.HP)
	}
	if stores.WantsToMelee.Len() != 0 {
		t.Errorf("%d intents left after resolution", stores.WantsToMelee.Len())
	}
	if len(events) != 2 || events[0].Damage != 3 || events[1].Damage != 0 {
		t.Errorf("combat events = %+v", events)
	}
}

func TestMeleeCombatSkipsDeadTarget(t *testing.T) {
	world, stores, _ := newTestWorld(t, 10, 10)
	player := addPlayer(world, stores, 2, 2, stats(30, 2, 5))
	goblin := addMonster(world, stores, "Goblin", 3, 2, stats(8, 1, 3))
	gs, _ := stores.CombatStats.Get(goblin)
	gs.HP = 0
	stores.WantsToMelee.Set(player, &components.WantsToMeleeComponent{Target: goblin})

	msgs := NewMessageLog()
	NewMeleeCombatSystem(stores, msgs, zaptest.NewLogger(t)).Update(world)

	if msgs.Len() != 0 {
		t.Errorf("attack on a dead target was logged: %v", msgs.Entries())
	}
	if gs.HP != 0 {
		t.Errorf("dead target HP changed to %d", gs.HP)
	}
	if stores.WantsToMelee.Has(player) {
		t.Error("intent not cleared")
	}
}

func TestMeleeCombatIgnoresDestroyedTarget(t *testing.T) {
	world, stores, _ := newTestWorld(t, 10, 10)
	player := addPlayer(world, stores, 2, 2, stats(30, 2, 5))
	goblin := addMonster(world, stores, "Goblin", 3, 2, stats(8, 1, 3))
	world.MarkForDestruction(goblin)
	world.FlushDestroyQueue()
	stores.WantsToMelee.Set(player, &components.WantsToMeleeComponent{Target: goblin})

	msgs := NewMessageLog()
	NewMeleeCombatSystem(stores, msgs, zaptest.NewLogger(t)).Update(world)

	if msgs.Len() != 0 {
		t.Errorf("attack on a destroyed entity was logged: %v", msgs.Entries())
	}
}

func TestMeleeCombatFlagsLethalHit(t *testing.T) {
	world, stores, _ := newTestWorld(t, 10, 10)
	player := addPlayer(world, stores, 2, 2, stats(30, 2, 5))
	goblin := addMonster(world, stores, "Goblin", 3, 2, stats(3, 1, 3))
	stores.WantsToMelee.Set(player, &components.WantsToMeleeComponent{Target: goblin})

	var events []CombatEvent
	world.GetEventManager().Subscribe(EventCombat, func(e ecs.Event) {
		events = append(events, e.(CombatEvent))
	})
	NewMeleeCombatSystem(stores, NewMessageLog(), zaptest.NewLogger(t)).Update(world)

	if len(events) != 1 || !events[0].Lethal || events[0].Damage != 4 {
		t.Fatalf("combat events = %+v", events)
	}
	if !world.Alive(goblin) {
		t.Error("combat removed the target; removal belongs to cleanup")
	}
}
