package systems

import (
	"slices"
	"testing"

	"dungeon-crawl/ecs"
)

func TestMapIndexingSystem(t *testing.T) {
	world, stores, m := newTestWorld(t, 10, 10)
	player := addPlayer(world, stores, 2, 2, stats(30, 2, 5))
	goblin := addMonster(world, stores, "Goblin", 5, 5, stats(8, 1, 3))

	// stale flags from a previous tick must not survive
	m.Blocked[m.TileIndex(7, 7)] = true

	sys := NewMapIndexingSystem(stores)
	sys.Update(world)

	if m.Blocked[m.TileIndex(2, 2)] {
		t.Error("player tile blocked")
	}
	if !slices.Contains(m.Content[m.TileIndex(2, 2)], player) {
		t.Error("player missing from content index")
	}
	if !m.Blocked[m.TileIndex(5, 5)] {
		t.Error("monster tile not blocked")
	}
	if !slices.Contains(m.Content[m.TileIndex(5, 5)], goblin) {
		t.Error("monster missing from content index")
	}
	if m.Blocked[m.TileIndex(7, 7)] {
		t.Error("stale blocked flag survived reindex")
	}
	if !m.Blocked[m.TileIndex(0, 0)] {
		t.Error("wall not blocked")
	}

	blocked := slices.Clone(m.Blocked)
	content := make([][]ecs.EntityID, len(m.Content))
	for i, c := range m.Content {
		content[i] = slices.Clone(c)
	}
	sys.Update(world)
	if !slices.Equal(blocked, m.Blocked) {
		t.Error("second index pass changed blocked flags")
	}
	for i, c := range m.Content {
		if !slices.Equal(content[i], c) {
			t.Fatalf("content at %d changed: %v -> %v", i, content[i], c)
		}
	}
}
