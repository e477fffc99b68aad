package components

import (
	"image/color"
	"math"

	"dungeon-crawl/ecs"
	"dungeon-crawl/pathfinding"
)

// TileType is the terrain of a single map cell.
type TileType int

// Tile types
const (
	TileWall TileType = iota
	TileFloor
)

func (t TileType) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	default:
		return "unknown"
	}
}

// MapComponent is the grid map. Every per-tile slice has Width*Height
// entries addressed by TileIndex. Blocked is true for every wall and, after
// indexing, for floor tiles holding a blocking entity. Revealed never goes
// back to false.
type MapComponent struct {
	Width    int
	Height   int
	Tiles    []TileType
	Blocked  []bool
	Revealed []bool
	Visible  []bool
	Content  [][]ecs.EntityID
}

// NewMapComponent creates a map of solid wall.
func NewMapComponent(width, height int) *MapComponent {
	n := width * height
	m := &MapComponent{
		Width:    width,
		Height:   height,
		Tiles:    make([]TileType, n),
		Blocked:  make([]bool, n),
		Revealed: make([]bool, n),
		Visible:  make([]bool, n),
		Content:  make([][]ecs.EntityID, n),
	}
	for i := range m.Tiles {
		m.Tiles[i] = TileWall
		m.Blocked[i] = true
	}
	return m
}

// TileIndex maps (x, y) to a slice index. Bounds are not checked.
func (m *MapComponent) TileIndex(x, y int) int {
	return y*m.Width + x
}

// XY is the inverse of TileIndex.
func (m *MapComponent) XY(idx int) (int, int) {
	return idx % m.Width, idx / m.Width
}

// InBounds reports whether (x, y) lies on the grid.
func (m *MapComponent) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// TileAt returns the tile at (x, y). Off-grid coordinates read as wall.
func (m *MapComponent) TileAt(x, y int) TileType {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[m.TileIndex(x, y)]
}

// SetTile sets the tile at (x, y) and keeps Blocked in step with it.
func (m *MapComponent) SetTile(x, y int, t TileType) {
	if !m.InBounds(x, y) {
		return
	}
	idx := m.TileIndex(x, y)
	m.Tiles[idx] = t
	m.Blocked[idx] = t == TileWall
}

// IsOpaque reports whether the tile blocks sight.
func (m *MapComponent) IsOpaque(idx int) bool {
	return m.Tiles[idx] == TileWall
}

// IsWall returns true if the tile at (x, y) is a wall or off the grid.
func (m *MapComponent) IsWall(x, y int) bool {
	return m.TileAt(x, y) == TileWall
}

// exitValid rejects border and off-grid tiles and anything blocked.
func (m *MapComponent) exitValid(x, y int) bool {
	if x < 1 || x >= m.Width-1 || y < 1 || y >= m.Height-1 {
		return false
	}
	return !m.Blocked[m.TileIndex(x, y)]
}

var exitDeltas = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// AvailableExits lists the walkable neighbours of idx. Orthogonal and
// diagonal steps both cost 1.0.
func (m *MapComponent) AvailableExits(idx int) []pathfinding.Exit {
	x, y := m.XY(idx)
	exits := make([]pathfinding.Exit, 0, 8)
	for _, d := range exitDeltas {
		nx, ny := x+d[0], y+d[1]
		if m.exitValid(nx, ny) {
			exits = append(exits, pathfinding.Exit{Index: m.TileIndex(nx, ny), Cost: 1.0})
		}
	}
	return exits
}

// Distance is the straight-line distance between two tile indices.
func (m *MapComponent) Distance(a, b int) float64 {
	ax, ay := m.XY(a)
	bx, by := m.XY(b)
	return math.Hypot(float64(ax-bx), float64(ay-by))
}

// RebuildBlockedFromTiles resets Blocked to exactly the wall tiles.
func (m *MapComponent) RebuildBlockedFromTiles() {
	for i, t := range m.Tiles {
		m.Blocked[i] = t == TileWall
	}
}

// ClearContentIndex empties every tile's content bucket.
func (m *MapComponent) ClearContentIndex() {
	for i := range m.Content {
		m.Content[i] = m.Content[i][:0]
	}
}

// FloorCount returns the number of floor tiles.
func (m *MapComponent) FloorCount() int {
	n := 0
	for _, t := range m.Tiles {
		if t == TileFloor {
			n++
		}
	}
	return n
}

// TileDefinition describes the visual appearance of a tile type
type TileDefinition struct {
	Glyph rune        // Character drawn for the tile
	FG    color.Color // Foreground color
	BG    color.Color // Background color (optional)
}

// NewTileDefinition creates a tile definition using a character code
func NewTileDefinition(glyph rune, fg color.Color) TileDefinition {
	return TileDefinition{Glyph: glyph, FG: fg}
}

// TileMappingComponent maps tile types to their visual representation
type TileMappingComponent struct {
	Definitions map[TileType]TileDefinition
}

// NewTileMappingComponent creates a default tile mapping
func NewTileMappingComponent() *TileMappingComponent {
	mapping := &TileMappingComponent{
		Definitions: make(map[TileType]TileDefinition),
	}
	mapping.Definitions[TileFloor] = NewTileDefinition('.', color.RGBA{128, 128, 128, 255})
	mapping.Definitions[TileWall] = NewTileDefinition('#', color.RGBA{0, 255, 0, 255})
	return mapping
}

// GetTileDefinition returns the visual definition for a given tile type
func (t *TileMappingComponent) GetTileDefinition(tileType TileType) TileDefinition {
	if def, exists := t.Definitions[tileType]; exists {
		return def
	}

	// Return a default if the tile type isn't defined
	return TileDefinition{
		Glyph: '?',
		FG:    color.RGBA{255, 0, 255, 255}, // Magenta for undefined tiles
	}
}
