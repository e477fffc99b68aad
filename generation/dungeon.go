package generation

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"dungeon-crawl/components"

	"go.uber.org/zap"
)

// Kind selects a map generation algorithm.
type Kind int

const (
	KindRoomsAndCorridors Kind = iota
	KindBSP
	KindCellularAutomata
)

func (k Kind) String() string {
	switch k {
	case KindRoomsAndCorridors:
		return "rooms"
	case KindBSP:
		return "bsp"
	case KindCellularAutomata:
		return "cellular"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Kinds lists every enabled generator.
func Kinds() []Kind {
	return []Kind{KindRoomsAndCorridors, KindBSP, KindCellularAutomata}
}

// ParseKind maps a config name to a Kind. "random" and "" set random.
func ParseKind(name string) (kind Kind, random bool, err error) {
	switch name {
	case "", "random":
		return 0, true, nil
	case "rooms":
		return KindRoomsAndCorridors, false, nil
	case "bsp":
		return KindBSP, false, nil
	case "cellular":
		return KindCellularAutomata, false, nil
	}
	return 0, false, fmt.Errorf("unknown generator %q", name)
}

// Generation errors. Every failure wraps ErrGeneration.
var (
	ErrGeneration       = errors.New("map generation failed")
	ErrNoRooms          = fmt.Errorf("%w: no room could be placed", ErrGeneration)
	ErrNoStartingTile   = fmt.Errorf("%w: no floor tile on the start row", ErrGeneration)
	ErrUnreachableStart = fmt.Errorf("%w: start has no walkable neighbour", ErrGeneration)
)

// Room is an axis-aligned rectangle. The carved floor is the interior
// (X1, X2] x (Y1, Y2].
type Room struct {
	X1, Y1, X2, Y2 int
}

// NewRoom creates a room from its corner and size.
func NewRoom(x, y, w, h int) Room {
	return Room{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Intersect reports whether two rooms overlap, touching edges included.
func (r Room) Intersect(o Room) bool {
	return r.X1 <= o.X2 && r.X2 >= o.X1 && r.Y1 <= o.Y2 && r.Y2 >= o.Y1
}

// Center returns the room's central tile.
func (r Room) Center() components.Point {
	return components.Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Tiles returns the indices of every carved tile of the room.
func (r Room) Tiles(m *components.MapComponent) []int {
	tiles := make([]int, 0, (r.X2-r.X1)*(r.Y2-r.Y1))
	for y := r.Y1 + 1; y <= r.Y2; y++ {
		for x := r.X1 + 1; x <= r.X2; x++ {
			if m.InBounds(x, y) {
				tiles = append(tiles, m.TileIndex(x, y))
			}
		}
	}
	return tiles
}

// Result is a finished map with where the player starts and where monsters
// may be placed. Rooms is empty for cave maps.
type Result struct {
	Kind    Kind
	Map     *components.MapComponent
	Start   components.Point
	Regions [][]int
	Rooms   []Room
}

// DungeonGenerator handles procedural generation of dungeon layouts
type DungeonGenerator struct {
	rng *rand.Rand
	log *zap.Logger
}

// NewDungeonGenerator creates a time-seeded generator.
func NewDungeonGenerator(log *zap.Logger) *DungeonGenerator {
	return &DungeonGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		log: log,
	}
}

// SetSeed allows setting a specific seed for reproducible dungeons
func (g *DungeonGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// RandomKind picks one of the enabled generators with equal weight.
func (g *DungeonGenerator) RandomKind() Kind {
	kinds := Kinds()
	return kinds[g.rng.Intn(len(kinds))]
}

// Generate builds a width x height map with the chosen algorithm.
func (g *DungeonGenerator) Generate(kind Kind, width, height int) (*Result, error) {
	var (
		res *Result
		err error
	)
	switch kind {
	case KindRoomsAndCorridors:
		res, err = g.GenerateRoomsAndCorridors(width, height)
	case KindBSP:
		res, err = g.GenerateBSPDungeon(width, height)
	case KindCellularAutomata:
		res, err = g.GenerateCellularDungeon(width, height)
	default:
		return nil, fmt.Errorf("generate: unknown kind %v", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", kind, err)
	}
	res.Kind = kind
	if err := validate(res); err != nil {
		return nil, fmt.Errorf("generate %s: %w", kind, err)
	}

	g.log.Info("map generated",
		zap.Stringer("kind", kind),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("floor", res.Map.FloorCount()),
		zap.Int("rooms", len(res.Rooms)),
		zap.Int("regions", len(res.Regions)),
	)
	return res, nil
}

// GenerateWithRetry calls Generate up to attempts times, returning the last
// error if every attempt fails with a generation error.
func (g *DungeonGenerator) GenerateWithRetry(kind Kind, width, height, attempts int) (*Result, error) {
	var lastErr error
	for i := 0; i < max(1, attempts); i++ {
		res, err := g.Generate(kind, width, height)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, ErrGeneration) {
			return nil, err
		}
		g.log.Warn("map generation attempt failed", zap.Int("attempt", i+1), zap.Error(err))
		lastErr = err
	}
	return nil, lastErr
}

func validate(res *Result) error {
	m := res.Map
	if !m.InBounds(res.Start.X, res.Start.Y) || m.TileAt(res.Start.X, res.Start.Y) != components.TileFloor {
		return fmt.Errorf("%w: start (%d,%d) is not floor", ErrGeneration, res.Start.X, res.Start.Y)
	}
	if len(m.AvailableExits(m.TileIndex(res.Start.X, res.Start.Y))) == 0 {
		return ErrUnreachableStart
	}
	return nil
}

const (
	maxRooms    = 30
	minRoomSize = 6
	maxRoomSize = 10
)

// GenerateRoomsAndCorridors places up to maxRooms non-overlapping rooms and
// joins each one to the previous with an L-shaped corridor.
func (g *DungeonGenerator) GenerateRoomsAndCorridors(width, height int) (*Result, error) {
	mapComp := components.NewMapComponent(width, height)
	var rooms []Room

	for i := 0; i < maxRooms; i++ {
		w := minRoomSize + g.rng.Intn(maxRoomSize-minRoomSize+1)
		h := minRoomSize + g.rng.Intn(maxRoomSize-minRoomSize+1)
		if width-w-1 < 1 || height-h-1 < 1 {
			continue
		}
		x := g.rng.Intn(width - w - 1)
		y := g.rng.Intn(height - h - 1)
		room := NewRoom(x, y, w, h)

		ok := true
		for _, other := range rooms {
			if room.Intersect(other) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		g.carveRoom(mapComp, room)
		if len(rooms) > 0 {
			prev := rooms[len(rooms)-1].Center()
			next := room.Center()
			g.CreateCorridor(mapComp, prev.X, prev.Y, next.X, next.Y)
		}
		rooms = append(rooms, room)
	}

	if len(rooms) == 0 {
		return nil, ErrNoRooms
	}
	return roomsResult(mapComp, rooms), nil
}

// roomsResult starts the player in the first room and offers every other
// room as a spawn region.
func roomsResult(mapComp *components.MapComponent, rooms []Room) *Result {
	res := &Result{
		Map:   mapComp,
		Start: rooms[0].Center(),
		Rooms: rooms,
	}
	for _, r := range rooms[1:] {
		res.Regions = append(res.Regions, r.Tiles(mapComp))
	}
	return res
}
