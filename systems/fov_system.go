package systems

import (
	"dungeon-crawl/components"
	"dungeon-crawl/ecs"

	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"
)

// octant transforms for recursive shadowcasting
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeViewshed returns the in-bounds tiles visible from origin within
// radius. The origin is always included. Walls are visible but hide what
// lies behind them.
func ComputeViewshed(origin components.Point, radius int, m *components.MapComponent) mapset.Set[components.Point] {
	visible := mapset.New[components.Point]()
	if m.InBounds(origin.X, origin.Y) {
		visible.Put(origin)
	}
	if radius <= 0 {
		return visible
	}
	for i := 0; i < 8; i++ {
		castLight(m, origin.X, origin.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visible)
	}
	return visible
}

func castLight(m *components.MapComponent, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visible mapset.Set[components.Point]) {
	if start < end {
		return
	}
	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			x := cx + dx*xx + dy*xy
			y := cy + dx*yx + dy*yy
			if m.InBounds(x, y) && dx*dx+dy*dy <= radiusSq {
				visible.Put(components.Point{X: x, Y: y})
			}

			if blocked {
				if isBlocking(m, x, y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if isBlocking(m, x, y) && j < radius {
				blocked = true
				castLight(m, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// isBlocking treats anything off the grid as opaque.
func isBlocking(m *components.MapComponent, x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.IsOpaque(m.TileIndex(x, y))
}

// VisibilitySystem recomputes dirty viewsheds. The player's view reveals
// tiles and replaces the map's visible overlay; monster views feed their AI.
type VisibilitySystem struct {
	stores *components.Stores
	log    *zap.Logger
}

// NewVisibilitySystem creates the visibility pass.
func NewVisibilitySystem(stores *components.Stores, log *zap.Logger) *VisibilitySystem {
	return &VisibilitySystem{stores: stores, log: log}
}

func (s *VisibilitySystem) Phase() ecs.Phase { return ecs.PhaseVisibility }

func (s *VisibilitySystem) Update(world *ecs.World) {
	m, ok := s.stores.Map()
	if !ok {
		return
	}
	ecs.Each2(s.stores.Positions, s.stores.Viewsheds, func(id ecs.EntityID, pos *components.PositionComponent, vs *components.ViewshedComponent) {
		if !vs.Dirty {
			return
		}
		vs.Dirty = false
		vs.VisibleTiles = ComputeViewshed(pos.Point(), vs.Range, m)

		// Monster views only steer their own AI; the map overlays belong
		// to the player.
		if !s.stores.Players.Has(id) {
			return
		}
		clear(m.Visible)
		vs.VisibleTiles.Each(func(p components.Point) {
			idx := m.TileIndex(p.X, p.Y)
			m.Revealed[idx] = true
			m.Visible[idx] = true
		})
		s.log.Debug("player viewshed updated",
			zap.Int("x", pos.X),
			zap.Int("y", pos.Y),
			zap.Int("visible", vs.VisibleTiles.Size()))
	})
}
