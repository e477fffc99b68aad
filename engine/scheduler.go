package engine

import (
	"fmt"

	"go.uber.org/zap"

	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
	"dungeon-crawl/systems"
)

// Scheduler drives the turn state machine. Each Advance performs at most one
// transition and runs the system pipeline when the state calls for it.
type Scheduler struct {
	world    *ecs.World
	stores   *components.Stores
	log      *zap.Logger
	pipeline *ecs.Runner
	cleanup  *ecs.Runner
	death    *systems.DeathSystem
	state    RunState
	turn     int
}

// NewScheduler wires the simulation systems in pipeline order.
func NewScheduler(world *ecs.World, stores *components.Stores, msgs *systems.MessageLog, log *zap.Logger) *Scheduler {
	pipeline := ecs.NewRunner()
	pipeline.Register(systems.NewVisibilitySystem(stores, log))
	pipeline.Register(systems.NewMonsterAISystem(stores, msgs, log))
	pipeline.Register(systems.NewMapIndexingSystem(stores))
	pipeline.Register(systems.NewMeleeCombatSystem(stores, msgs, log))

	death := systems.NewDeathSystem(stores, msgs, log)
	cleanup := ecs.NewRunner()
	cleanup.Register(death)

	for _, sys := range pipeline.Systems() {
		log.Debug("pipeline system", zap.String("system", fmt.Sprintf("%T", sys)), zap.Int("phase", int(sys.Phase())))
	}

	return &Scheduler{
		world:    world,
		stores:   stores,
		log:      log,
		pipeline: pipeline,
		cleanup:  cleanup,
		death:    death,
		state:    PreRun,
	}
}

// State returns the current run state.
func (s *Scheduler) State() RunState {
	return s.state
}

// Turn counts completed player actions.
func (s *Scheduler) Turn() int {
	return s.turn
}

// PlayerDead reports whether the player has died. Intents are ignored from
// then on.
func (s *Scheduler) PlayerDead() bool {
	return s.death.PlayerDead()
}

// Advance performs one scheduler step and returns the new state.
func (s *Scheduler) Advance(intent Intent) RunState {
	prev := s.state
	switch s.state {
	case PreRun:
		s.pipeline.Run(s.world)
		s.state = AwaitingInput
	case AwaitingInput:
		if s.acceptIntent(intent) {
			s.turn++
			s.state = PlayerTurn
		}
	case PlayerTurn:
		s.pipeline.Run(s.world)
		s.state = MonsterTurn
	case MonsterTurn:
		s.pipeline.Run(s.world)
		s.state = AwaitingInput
	}

	s.cleanup.Run(s.world)
	if n := s.world.FlushDestroyQueue(); n > 0 {
		s.log.Debug("entities removed", zap.Int("count", n))
	}

	if s.state != prev {
		s.log.Debug("run state changed",
			zap.Stringer("from", prev),
			zap.Stringer("to", s.state),
			zap.Int("turn", s.turn))
	}
	return s.state
}

// acceptIntent applies a player intent and reports whether it used the turn.
func (s *Scheduler) acceptIntent(intent Intent) bool {
	if intent == IntentNone || s.PlayerDead() {
		return false
	}
	if intent == IntentWait {
		return true
	}
	dx, dy := systems.DeltaFromDirection(intent.Direction())
	if dx == 0 && dy == 0 {
		return false
	}
	result := systems.TryMovePlayer(s.world, s.stores, dx, dy)
	s.log.Debug("player intent", zap.Stringer("intent", intent), zap.Stringer("result", result))
	return result != systems.MoveNone
}
