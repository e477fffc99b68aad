package generation

import (
	"math"
	"slices"

	"dungeon-crawl/components"

	"github.com/ojrac/opensimplex-go"
	"go.uber.org/zap"
)

const (
	caWallChance  = 55 // percent of interior tiles seeded as wall
	caIterations  = 15
	regionFreq    = 0.08
	regionBuckets = 16
)

// GenerateCellularDungeon grows a cave with cellular automata, starts the
// player left of the centre and clusters floor into noise regions.
func (g *DungeonGenerator) GenerateCellularDungeon(width, height int) (*Result, error) {
	mapComp := components.NewMapComponent(width, height)

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			if g.rng.Intn(100) < caWallChance {
				mapComp.SetTile(x, y, components.TileWall)
			} else {
				mapComp.SetTile(x, y, components.TileFloor)
			}
		}
	}

	for i := 0; i < caIterations; i++ {
		g.smooth(mapComp)
	}

	start, ok := findCaveStart(mapComp)
	if !ok {
		return nil, ErrNoStartingTile
	}

	if filled := fillUnreachable(mapComp, start.X, start.Y); filled > 0 {
		g.log.Debug("sealed unreachable cave pockets", zap.Int("tiles", filled))
	}

	return &Result{
		Map:     mapComp,
		Start:   start,
		Regions: g.noiseRegions(mapComp),
	}, nil
}

// smooth applies one automaton pass against a snapshot of the previous
// generation: a tile becomes wall with more than four wall neighbours or
// none at all.
func (g *DungeonGenerator) smooth(mapComp *components.MapComponent) {
	snapshot := slices.Clone(mapComp.Tiles)
	for y := 1; y < mapComp.Height-1; y++ {
		for x := 1; x < mapComp.Width-1; x++ {
			walls := countAdjacentWalls(snapshot, mapComp.Width, x, y)
			if walls > 4 || walls == 0 {
				mapComp.SetTile(x, y, components.TileWall)
			} else {
				mapComp.SetTile(x, y, components.TileFloor)
			}
		}
	}
}

// countAdjacentWalls counts wall tiles among the eight neighbours of an
// interior tile.
func countAdjacentWalls(tiles []components.TileType, width, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if tiles[(y+dy)*width+x+dx] == components.TileWall {
				count++
			}
		}
	}
	return count
}

// findCaveStart walks left from the centre of the map to the first floor.
func findCaveStart(mapComp *components.MapComponent) (components.Point, bool) {
	y := mapComp.Height / 2
	for x := mapComp.Width / 2; x >= 1; x-- {
		if mapComp.TileAt(x, y) == components.TileFloor {
			return components.Point{X: x, Y: y}, true
		}
	}
	return components.Point{}, false
}

// noiseRegions buckets floor tiles by quantized simplex noise. Regions come
// back ordered by bucket key.
func (g *DungeonGenerator) noiseRegions(mapComp *components.MapComponent) [][]int {
	noise := opensimplex.New(g.rng.Int63())
	buckets := make(map[int][]int)

	for y := 1; y < mapComp.Height-1; y++ {
		for x := 1; x < mapComp.Width-1; x++ {
			idx := mapComp.TileIndex(x, y)
			if mapComp.Tiles[idx] != components.TileFloor {
				continue
			}
			v := noise.Eval2(float64(x)*regionFreq, float64(y)*regionFreq)
			key := int(math.Floor((v + 1) / 2 * regionBuckets))
			key = min(max(key, 0), regionBuckets-1)
			buckets[key] = append(buckets[key], idx)
		}
	}

	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	regions := make([][]int, 0, len(keys))
	for _, k := range keys {
		regions = append(regions, buckets[k])
	}
	return regions
}
