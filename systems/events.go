package systems

import (
	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
)

const (
	EventMovement ecs.EventType = "movement"
	EventCombat   ecs.EventType = "combat"
	EventDeath    ecs.EventType = "death"
	EventGameOver ecs.EventType = "game_over"
)

// PlayerMoveEvent follows a successful player step.
type PlayerMoveEvent struct {
	EntityID ecs.EntityID
	From, To components.Point
}

func (PlayerMoveEvent) Type() ecs.EventType { return EventMovement }

// CombatEvent follows every resolved melee attack, including ones that did
// no damage. Lethal is set when the defender dropped below 1 HP; removal
// happens later, in the cleanup phase.
type CombatEvent struct {
	AttackerID ecs.EntityID
	DefenderID ecs.EntityID
	Damage     int
	Lethal     bool
}

func (CombatEvent) Type() ecs.EventType { return EventCombat }

// DeathEvent is raised when a monster is queued for removal.
type DeathEvent struct {
	EntityID ecs.EntityID
	Name     string
}

func (DeathEvent) Type() ecs.EventType { return EventDeath }

// GameOverEvent is raised once per run, when the player dies.
type GameOverEvent struct {
	PlayerID ecs.EntityID
}

func (GameOverEvent) Type() ecs.EventType { return EventGameOver }
