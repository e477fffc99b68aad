package engine

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"dungeon-crawl/components"
	"dungeon-crawl/config"
	"dungeon-crawl/data"
	"dungeon-crawl/ecs"
	"dungeon-crawl/generation"
	"dungeon-crawl/spawners"
	"dungeon-crawl/systems"
)

// Game is one running dungeon: the world, its level and the scheduler that
// advances it.
type Game struct {
	Config    *config.Config
	World     *ecs.World
	Stores    *components.Stores
	Messages  *systems.MessageLog
	Scheduler *Scheduler
	Camera    *systems.CameraSystem
	Level     *generation.Result
	Player    ecs.EntityID
	Seed      int64
	Kills     int
}

// NewGame generates a level from cfg and populates it. A zero seed is
// replaced by one taken from the clock; the seed used is logged so a run
// can be reproduced.
func NewGame(cfg *config.Config, log *zap.Logger) (*Game, error) {
	seed := ResolveSeed(cfg)
	log.Info("starting new game", zap.Int64("seed", seed))

	level, err := GenerateLevel(cfg, seed, log)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	templates, err := data.LoadTemplates(cfg.Spawn.Templates)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	world := ecs.NewWorld()
	stores := components.NewStores(world)
	msgs := systems.NewMessageLog()
	spawner := spawners.NewEntitySpawner(world, stores, templates, cfg, rand.New(rand.NewSource(seed^0x5eed)), log)

	spawner.CreateMap(level.Map)
	player := spawner.CreatePlayer(level.Start.X, level.Start.Y)
	spawner.CreateCamera(player)
	if _, err := spawner.Populate(level); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	msgs.Add("Welcome to %s", cfg.Window.Title)
	log.Info("level populated",
		zap.Stringer("kind", level.Kind),
		zap.Int("entities", world.EntityCount()),
		zap.Int("monsters", stores.Monsters.Len()))

	g := &Game{
		Config:    cfg,
		World:     world,
		Stores:    stores,
		Messages:  msgs,
		Scheduler: NewScheduler(world, stores, msgs, log),
		Camera:    systems.NewCameraSystem(stores, config.MapViewWidth, config.MapViewHeight),
		Level:     level,
		Player:    player,
		Seed:      seed,
	}
	g.Camera.Update(world)

	events := world.GetEventManager()
	events.Subscribe(systems.EventMovement, func(ecs.Event) {
		g.Camera.Update(g.World)
	})
	events.Subscribe(systems.EventDeath, func(e ecs.Event) {
		g.Kills++
		log.Debug("monster slain", zap.String("name", e.(systems.DeathEvent).Name), zap.Int("kills", g.Kills))
	})
	return g, nil
}

// ResolveSeed returns the configured seed, or a clock-derived one when the
// config leaves it at zero.
func ResolveSeed(cfg *config.Config) int64 {
	if cfg.Generation.Seed != 0 {
		return cfg.Generation.Seed
	}
	return time.Now().UnixNano()
}

// GenerateLevel builds the map for seed using the configured algorithm,
// retrying failed attempts.
func GenerateLevel(cfg *config.Config, seed int64, log *zap.Logger) (*generation.Result, error) {
	gen := generation.NewDungeonGenerator(log)
	gen.SetSeed(seed)
	kind, random, err := generation.ParseKind(cfg.Generation.Kind)
	if err != nil {
		return nil, err
	}
	if random {
		kind = gen.RandomKind()
	}
	return gen.GenerateWithRetry(kind, cfg.Map.Width, cfg.Map.Height, cfg.Generation.MaxAttempts)
}

// Advance steps the scheduler. The camera follows player movement events.
func (g *Game) Advance(intent Intent) RunState {
	return g.Scheduler.Advance(intent)
}
