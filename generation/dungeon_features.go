package generation

import (
	"dungeon-crawl/components"
)

// carveRoom turns the room interior into floor.
func (g *DungeonGenerator) carveRoom(mapComp *components.MapComponent, room Room) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			g.carve(mapComp, x, y)
		}
	}
}

// CreateCorridor joins two points with a horizontal and a vertical run,
// ordered by a coin flip.
func (g *DungeonGenerator) CreateCorridor(mapComp *components.MapComponent, x1, y1, x2, y2 int) {
	if g.rng.Intn(2) == 1 {
		g.createHorizontalCorridor(mapComp, x1, x2, y1)
		g.createVerticalCorridor(mapComp, y1, y2, x2)
	} else {
		g.createVerticalCorridor(mapComp, y1, y2, x1)
		g.createHorizontalCorridor(mapComp, x1, x2, y2)
	}
}

// createHorizontalCorridor creates a horizontal corridor from x1 to x2 at y
func (g *DungeonGenerator) createHorizontalCorridor(mapComp *components.MapComponent, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		g.carve(mapComp, x, y)
	}
}

// createVerticalCorridor creates a vertical corridor from y1 to y2 at x
func (g *DungeonGenerator) createVerticalCorridor(mapComp *components.MapComponent, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		g.carve(mapComp, x, y)
	}
}

// carve sets a floor tile, leaving the one-tile border solid.
func (g *DungeonGenerator) carve(mapComp *components.MapComponent, x, y int) {
	if x < 1 || x >= mapComp.Width-1 || y < 1 || y >= mapComp.Height-1 {
		return
	}
	mapComp.SetTile(x, y, components.TileFloor)
}

// reachableFrom flood fills 8-connected floor from (x, y).
func reachableFrom(mapComp *components.MapComponent, x, y int) []bool {
	seen := make([]bool, len(mapComp.Tiles))
	if mapComp.TileAt(x, y) != components.TileFloor {
		return seen
	}
	start := mapComp.TileIndex(x, y)
	seen[start] = true
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cx, cy := mapComp.XY(cur)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := cx+dx, cy+dy
				if (dx == 0 && dy == 0) || mapComp.TileAt(nx, ny) != components.TileFloor {
					continue
				}
				idx := mapComp.TileIndex(nx, ny)
				if !seen[idx] {
					seen[idx] = true
					queue = append(queue, idx)
				}
			}
		}
	}
	return seen
}

// fillUnreachable walls over every floor tile not connected to (x, y).
func fillUnreachable(mapComp *components.MapComponent, x, y int) int {
	seen := reachableFrom(mapComp, x, y)
	filled := 0
	for i, t := range mapComp.Tiles {
		if t == components.TileFloor && !seen[i] {
			sx, sy := mapComp.XY(i)
			mapComp.SetTile(sx, sy, components.TileWall)
			filled++
		}
	}
	return filled
}
