package components

import (
	"image/color"

	"dungeon-crawl/ecs"
	"github.com/zyedidia/generic/mapset"
)

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// PositionComponent stores entity position
type PositionComponent struct {
	X, Y int
}

// Point returns the position as a tile coordinate.
func (p *PositionComponent) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

// RenderableComponent stores rendering information
type RenderableComponent struct {
	Char rune        // Glyph drawn for the entity
	FG   color.Color // Foreground color
	BG   color.Color // Background color (optional)
}

// NewRenderableComponent creates a renderable component using a character code
func NewRenderableComponent(glyph rune, fg color.Color) *RenderableComponent {
	return &RenderableComponent{
		Char: glyph,
		FG:   fg,
		BG:   color.RGBA{0, 0, 0, 255},
	}
}

// PlayerComponent indicates that an entity is controlled by the player
type PlayerComponent struct{}

// MonsterComponent marks an entity driven by the monster AI.
type MonsterComponent struct {
	Alerted bool // set the first time the monster sees the player
}

// NameComponent stores the display name for entities
type NameComponent struct {
	Name string
}

// BlocksTileComponent marks an entity that occupies its tile for movement.
type BlocksTileComponent struct{}

// ViewshedComponent holds the tiles an entity can currently see.
// Dirty forces a recompute on the next visibility pass.
type ViewshedComponent struct {
	VisibleTiles mapset.Set[Point]
	Range        int
	Dirty        bool
}

// NewViewshedComponent creates a dirty, empty viewshed.
func NewViewshedComponent(viewRange int) *ViewshedComponent {
	return &ViewshedComponent{
		VisibleTiles: mapset.New[Point](),
		Range:        viewRange,
		Dirty:        true,
	}
}

// CanSee reports whether p is in the viewshed.
func (v *ViewshedComponent) CanSee(p Point) bool {
	return v.VisibleTiles.Has(p)
}

// CombatStatsComponent holds melee statistics.
type CombatStatsComponent struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
}

// Alive reports whether the entity still has hit points.
func (c *CombatStatsComponent) Alive() bool {
	return c.HP > 0
}

// WantsToMeleeComponent is a pending attack, resolved and removed by the
// melee pass of the same tick.
type WantsToMeleeComponent struct {
	Target ecs.EntityID
}

// CameraComponent tracks the viewport position for map scrolling
type CameraComponent struct {
	X, Y   int          // Top-left position of the camera in the world
	Target ecs.EntityID // Entity the camera follows (usually the player)
}

// NewCameraComponent creates a new camera component that follows the specified target
func NewCameraComponent(target ecs.EntityID) *CameraComponent {
	return &CameraComponent{Target: target}
}
