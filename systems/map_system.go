package systems

import (
	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
)

// MapIndexingSystem rebuilds the map's blocked flags and per-tile content
// lists from scratch. Running it twice in a row yields the same index.
type MapIndexingSystem struct {
	stores *components.Stores
}

// NewMapIndexingSystem creates the indexing pass.
func NewMapIndexingSystem(stores *components.Stores) *MapIndexingSystem {
	return &MapIndexingSystem{stores: stores}
}

func (s *MapIndexingSystem) Phase() ecs.Phase { return ecs.PhaseIndex }

func (s *MapIndexingSystem) Update(world *ecs.World) {
	m, ok := s.stores.Map()
	if !ok {
		return
	}
	m.RebuildBlockedFromTiles()
	m.ClearContentIndex()

	s.stores.Positions.Each(func(id ecs.EntityID, pos *components.PositionComponent) {
		if !m.InBounds(pos.X, pos.Y) {
			return
		}
		idx := m.TileIndex(pos.X, pos.Y)
		if s.stores.Blockers.Has(id) {
			m.Blocked[idx] = true
		}
		m.Content[idx] = append(m.Content[idx], id)
	})
}
