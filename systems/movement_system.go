package systems

import (
	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
)

// Direction is one of the eight compass steps.
type Direction int

// Direction constants for movement
const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
	DirUpLeft
	DirUpRight
	DirDownLeft
	DirDownRight
)

// DeltaFromDirection converts a direction to an (x, y) step.
func DeltaFromDirection(dir Direction) (int, int) {
	switch dir {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUpLeft:
		return -1, -1
	case DirUpRight:
		return 1, -1
	case DirDownLeft:
		return -1, 1
	case DirDownRight:
		return 1, 1
	default:
		return 0, 0
	}
}

// MoveResult says what a player move attempt did.
type MoveResult int

const (
	MoveNone MoveResult = iota
	MoveMoved
	MoveAttacked
)

func (r MoveResult) String() string {
	switch r {
	case MoveMoved:
		return "moved"
	case MoveAttacked:
		return "attacked"
	default:
		return "none"
	}
}

// TryMovePlayer applies a step to every player entity. A fighting entity on
// the destination (by the content index) becomes a melee target instead of
// the player moving. Destinations outside [1, W-1] x [1, H-1] are ignored,
// as are blocked tiles.
func TryMovePlayer(world *ecs.World, stores *components.Stores, dx, dy int) MoveResult {
	m, ok := stores.Map()
	if !ok {
		return MoveNone
	}
	result := MoveNone

	ecs.Each2(stores.Players, stores.Positions, func(id ecs.EntityID, _ *components.PlayerComponent, pos *components.PositionComponent) {
		nx, ny := pos.X+dx, pos.Y+dy
		if nx < 1 || nx > m.Width-1 || ny < 1 || ny > m.Height-1 || !m.InBounds(nx, ny) {
			return
		}
		dest := m.TileIndex(nx, ny)

		for _, occupant := range m.Content[dest] {
			if occupant == id || world.HasTag(occupant, components.TagPlayer) {
				continue
			}
			if stores.CombatStats.Has(occupant) {
				stores.WantsToMelee.Set(id, &components.WantsToMeleeComponent{Target: occupant})
				result = MoveAttacked
				return
			}
		}

		if m.Blocked[dest] {
			return
		}
		from := components.Point{X: pos.X, Y: pos.Y}
		pos.X, pos.Y = nx, ny
		if vs, ok := stores.Viewsheds.Get(id); ok {
			vs.Dirty = true
		}
		result = MoveMoved
		world.EmitEvent(PlayerMoveEvent{EntityID: id, From: from, To: components.Point{X: nx, Y: ny}})
	})
	return result
}
