package engine

import (
	"slices"
	"testing"

	"go.uber.org/zap/zaptest"

	"dungeon-crawl/components"
	"dungeon-crawl/config"
	"dungeon-crawl/systems"
)

func TestNewGameEveryKind(t *testing.T) {
	for _, kind := range []string{"rooms", "bsp", "cellular", "random"} {
		t.Run(kind, func(t *testing.T) {
			cfg := config.Default()
			cfg.Generation.Kind = kind
			cfg.Generation.Seed = 42

			g, err := NewGame(cfg, zaptest.NewLogger(t))
			if err != nil {
				t.Fatal(err)
			}
			if g.Seed != 42 {
				t.Errorf("seed = %d", g.Seed)
			}
			pos, ok := g.Stores.Positions.Get(g.Player)
			if !ok {
				t.Fatal("player has no position")
			}
			m, ok := g.Stores.Map()
			if !ok {
				t.Fatal("no map registered")
			}
			if m.TileAt(pos.X, pos.Y) != components.TileFloor {
				t.Errorf("player starts on %v", m.TileAt(pos.X, pos.Y))
			}
			if _, ok := g.World.FirstWithTag(components.TagCamera); !ok {
				t.Error("no camera")
			}
			// map, player and camera plus one entity per monster
			if want := 3 + g.Stores.Monsters.Len(); g.World.EntityCount() != want {
				t.Errorf("EntityCount = %d, want %d", g.World.EntityCount(), want)
			}
			if got := g.Messages.Entries(); len(got) == 0 || got[0] != "Welcome to Dungeon Crawl" {
				t.Errorf("messages = %v", got)
			}

			if got := g.Advance(IntentNone); got != AwaitingInput {
				t.Fatalf("first advance = %v", got)
			}
			if !m.Visible[m.TileIndex(pos.X, pos.Y)] {
				t.Error("player tile not visible after PreRun")
			}
		})
	}
}

func TestNewGameIsReproducible(t *testing.T) {
	cfg := config.Default()
	cfg.Generation.Seed = 1234

	a, err := NewGame(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGame(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	if a.Level.Kind != b.Level.Kind || !slices.Equal(a.Level.Map.Tiles, b.Level.Map.Tiles) {
		t.Error("same seed produced different maps")
	}
	if a.Stores.Monsters.Len() != b.Stores.Monsters.Len() {
		t.Errorf("monster counts differ: %d vs %d", a.Stores.Monsters.Len(), b.Stores.Monsters.Len())
	}
}

func TestNewGameBadTemplates(t *testing.T) {
	cfg := config.Default()
	cfg.Generation.Seed = 7
	cfg.Spawn.Templates = "does-not-exist.yaml"
	if _, err := NewGame(cfg, zaptest.NewLogger(t)); err == nil {
		t.Error("missing template file accepted")
	}
}

func TestGenerateLevelRejectsUnknownKind(t *testing.T) {
	cfg := config.Default()
	cfg.Generation.Kind = "maze"
	if _, err := GenerateLevel(cfg, 1, zaptest.NewLogger(t)); err == nil {
		t.Error("unknown kind accepted")
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := config.Default()
	cfg.Generation.Seed = 99
	if got := ResolveSeed(cfg); got != 99 {
		t.Errorf("ResolveSeed = %d, want 99", got)
	}
	cfg.Generation.Seed = 0
	if ResolveSeed(cfg) == 0 {
		t.Error("zero seed not replaced")
	}
}

func newRoomsGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Generation.Kind = "rooms"
	cfg.Generation.Seed = 42
	g, err := NewGame(cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGameCameraFollowsPlayerMoves(t *testing.T) {
	g := newRoomsGame(t)
	camID, ok := g.World.FirstWithTag(components.TagCamera)
	if !ok {
		t.Fatal("no camera")
	}
	cam, _ := g.Stores.Cameras.Get(camID)

	pos, _ := g.Stores.Positions.Get(g.Player)
	// an 80x50 map in a 50x40 view clamps the camera to [0,30] x [0,10]
	for _, tt := range []struct{ to, want components.Point }{
		{components.Point{X: 2, Y: 2}, components.Point{X: 0, Y: 0}},
		{components.Point{X: 70, Y: 45}, components.Point{X: 30, Y: 10}},
	} {
		from := pos.Point()
		pos.X, pos.Y = tt.to.X, tt.to.Y
		g.World.EmitEvent(systems.PlayerMoveEvent{EntityID: g.Player, From: from, To: tt.to})
		if cam.X != tt.want.X || cam.Y != tt.want.Y {
			t.Errorf("player at %v: camera at (%d,%d), want %v", tt.to, cam.X, cam.Y, tt.want)
		}
	}
}

func TestGameCountsKills(t *testing.T) {
	g := newRoomsGame(t)
	ids := g.Stores.Monsters.IDs()
	if len(ids) == 0 {
		t.Fatal("level has no monsters")
	}
	victim := ids[0]
	cs, _ := g.Stores.CombatStats.Get(victim)
	cs.HP = 0

	g.Advance(IntentNone)

	if g.Kills != 1 {
		t.Errorf("Kills = %d, want 1", g.Kills)
	}
	if g.World.Alive(victim) {
		t.Error("dead monster still in the world")
	}
}
