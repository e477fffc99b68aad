package spawners

import (
	"math/rand"
	"testing"

	"go.uber.org/zap/zaptest"

	"dungeon-crawl/components"
	"dungeon-crawl/config"
	"dungeon-crawl/data"
	"dungeon-crawl/ecs"
	"dungeon-crawl/generation"
)

func openMap(w, h int) *components.MapComponent {
	m := components.NewMapComponent(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.SetTile(x, y, components.TileFloor)
		}
	}
	return m
}

func newSpawner(t *testing.T, seed int64) (*EntitySpawner, *ecs.World, *components.Stores) {
	t.Helper()
	templates, err := data.DefaultTemplates()
	if err != nil {
		t.Fatal(err)
	}
	world := ecs.NewWorld()
	stores := components.NewStores(world)
	s := NewEntitySpawner(world, stores, templates, config.Default(), rand.New(rand.NewSource(seed)), zaptest.NewLogger(t))
	return s, world, stores
}

func TestCreatePlayer(t *testing.T) {
	s, world, stores := newSpawner(t, 1)
	id := s.CreatePlayer(3, 4)

	if !world.HasTag(id, components.TagPlayer) {
		t.Error("player not tagged")
	}
	pos, ok := stores.Positions.Get(id)
	if !ok || pos.X != 3 || pos.Y != 4 {
		t.Errorf("position = %+v", pos)
	}
	if stores.Blockers.Has(id) {
		t.Error("player must not block its tile")
	}
	cs, ok := stores.CombatStats.Get(id)
	if !ok || cs.HP != 30 || cs.MaxHP != 30 || cs.Defense != 2 || cs.Power != 5 {
		t.Errorf("combat stats = %+v", cs)
	}
	vs, ok := stores.Viewsheds.Get(id)
	if !ok || vs.Range != 8 || !vs.Dirty {
		t.Errorf("viewshed = %+v", vs)
	}
	if got := stores.NameOf(id); got != "Player" {
		t.Errorf("name = %q", got)
	}
}

func TestCreateMonster(t *testing.T) {
	s, world, stores := newSpawner(t, 1)
	id, err := s.CreateMonster(5, 6, "goblin")
	if err != nil {
		t.Fatal(err)
	}
	if !world.HasTag(id, components.TagMonster) || !stores.Monsters.Has(id) {
		t.Error("monster not marked")
	}
	if !stores.Blockers.Has(id) {
		t.Error("monster should block its tile")
	}
	cs, _ := stores.CombatStats.Get(id)
	if cs.HP != 8 || cs.Defense != 1 || cs.Power != 3 {
		t.Errorf("combat stats = %+v", cs)
	}
	r, _ := stores.Renderables.Get(id)
	if r.Char != 'g' {
		t.Errorf("glyph = %q", r.Char)
	}
	if stores.NameOf(id) != "Goblin" {
		t.Errorf("name = %q", stores.NameOf(id))
	}

	if _, err := s.CreateMonster(1, 1, "dragon"); err == nil {
		t.Error("unknown template accepted")
	}
}

func TestSpawnRegionPlacement(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		s, _, stores := newSpawner(t, seed)
		m := openMap(10, 10)
		player := s.CreatePlayer(2, 2)

		var region []int
		for idx, tile := range m.Tiles {
			if tile == components.TileFloor {
				region = append(region, idx)
			}
		}
		n, err := s.SpawnRegion(region, m)
		if err != nil {
			t.Fatal(err)
		}
		if n < 0 || n > 4 {
			t.Fatalf("seed %d: spawned %d, want 0..4", seed, n)
		}
		if stores.Monsters.Len() != n {
			t.Fatalf("seed %d: %d monsters exist, reported %d", seed, stores.Monsters.Len(), n)
		}

		seen := map[components.Point]bool{}
		stores.Positions.Each(func(id ecs.EntityID, pos *components.PositionComponent) {
			if id == player {
				return
			}
			p := pos.Point()
			if seen[p] {
				t.Errorf("seed %d: two monsters on %v", seed, p)
			}
			seen[p] = true
			if p == (components.Point{X: 2, Y: 2}) {
				t.Errorf("seed %d: monster placed on the player", seed)
			}
			if m.Blocked[m.TileIndex(p.X, p.Y)] {
				t.Errorf("seed %d: monster placed on a blocked tile", seed)
			}
		})
	}
}

func TestSpawnRegionSkipsBlockedTiles(t *testing.T) {
	s, _, stores := newSpawner(t, 3)
	m := components.NewMapComponent(5, 5)
	region := []int{m.TileIndex(1, 1), m.TileIndex(2, 2)}
	for i := 0; i < 20; i++ {
		if _, err := s.SpawnRegion(region, m); err != nil {
			t.Fatal(err)
		}
	}
	if stores.Monsters.Len() != 0 {
		t.Errorf("%d monsters spawned on walls", stores.Monsters.Len())
	}
}

func TestChooseMonsterTemplateIsWeighted(t *testing.T) {
	templates := data.NewEntityTemplateManager()
	err := templates.Parse([]byte(`
monsters:
  - {id: rat, name: Rat, glyph: r, color: "#888888", hp: 2, defense: 0, power: 1, spawn_weight: 1}
  - {id: bat, name: Bat, glyph: b, color: "#888888", hp: 2, defense: 0, power: 1, spawn_weight: 3}
`))
	if err != nil {
		t.Fatal(err)
	}
	world := ecs.NewWorld()
	s := NewEntitySpawner(world, components.NewStores(world), templates, config.Default(), rand.New(rand.NewSource(7)), zaptest.NewLogger(t))

	counts := map[string]int{}
	for i := 0; i < 4000; i++ {
		counts[s.chooseMonsterTemplate()]++
	}
	if counts["rat"]+counts["bat"] != 4000 {
		t.Fatalf("unexpected template ids: %v", counts)
	}
	if counts["bat"] < 2700 || counts["bat"] > 3300 {
		t.Errorf("bat chosen %d/4000 times, want about 3000", counts["bat"])
	}
}

func TestPopulateRoomCenters(t *testing.T) {
	s, _, stores := newSpawner(t, 5)
	m := components.NewMapComponent(40, 20)
	rooms := []generation.Room{
		generation.NewRoom(1, 1, 6, 6),
		generation.NewRoom(12, 1, 6, 6),
		generation.NewRoom(24, 8, 6, 6),
	}
	for _, r := range rooms {
		for _, idx := range r.Tiles(m) {
			x, y := m.XY(idx)
			m.SetTile(x, y, components.TileFloor)
		}
	}
	res := &generation.Result{Kind: generation.KindRoomsAndCorridors, Map: m, Start: rooms[0].Center(), Rooms: rooms}

	n, err := s.Populate(res)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || stores.Monsters.Len() != 2 {
		t.Fatalf("spawned %d, want one per room after the first", n)
	}
	want := map[components.Point]bool{rooms[1].Center(): true, rooms[2].Center(): true}
	stores.Monsters.Each(func(id ecs.EntityID, _ *components.MonsterComponent) {
		pos, _ := stores.Positions.Get(id)
		if !want[pos.Point()] {
			t.Errorf("monster at %v is not a room centre", pos.Point())
		}
	})
}
