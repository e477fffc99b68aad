package generation

import (
	"dungeon-crawl/components"
)

const (
	bspMinLeaf  = 10
	bspMaxDepth = 6
)

// BSPNode represents a node in the binary space partitioning tree
type BSPNode struct {
	X, Y, Width, Height int
	Left, Right         *BSPNode
	Room                *Room
}

func (node *BSPNode) isLeaf() bool {
	return node.Left == nil && node.Right == nil
}

// GenerateBSPDungeon splits the map recursively, puts one room in each leaf
// and joins sibling subtrees with corridors.
func (g *DungeonGenerator) GenerateBSPDungeon(width, height int) (*Result, error) {
	mapComp := components.NewMapComponent(width, height)

	root := &BSPNode{Width: width, Height: height}
	g.splitNode(root, 0)
	g.createRoomsInLeaves(root)

	var rooms []Room
	collectRooms(root, &rooms)
	if len(rooms) == 0 {
		return nil, ErrNoRooms
	}
	for _, r := range rooms {
		g.carveRoom(mapComp, r)
	}
	g.connectRooms(root, mapComp)

	return roomsResult(mapComp, rooms), nil
}

// splitNode recursively splits a BSP node into two child nodes
func (g *DungeonGenerator) splitNode(node *BSPNode, depth int) {
	if depth >= bspMaxDepth {
		return
	}

	// Split across the longer side; near-square nodes pick at random.
	var horizontal bool
	switch {
	case float64(node.Width) > float64(node.Height)*1.25:
		horizontal = false
	case float64(node.Height) > float64(node.Width)*1.25:
		horizontal = true
	default:
		horizontal = g.rng.Intn(2) == 0
	}

	if (horizontal && node.Height < 2*bspMinLeaf) || (!horizontal && node.Width < 2*bspMinLeaf) {
		return
	}

	if horizontal {
		split := bspMinLeaf + g.rng.Intn(node.Height-2*bspMinLeaf+1)
		node.Left = &BSPNode{X: node.X, Y: node.Y, Width: node.Width, Height: split}
		node.Right = &BSPNode{X: node.X, Y: node.Y + split, Width: node.Width, Height: node.Height - split}
	} else {
		split := bspMinLeaf + g.rng.Intn(node.Width-2*bspMinLeaf+1)
		node.Left = &BSPNode{X: node.X, Y: node.Y, Width: split, Height: node.Height}
		node.Right = &BSPNode{X: node.X + split, Y: node.Y, Width: node.Width - split, Height: node.Height}
	}

	g.splitNode(node.Left, depth+1)
	g.splitNode(node.Right, depth+1)
}

// createRoomsInLeaves generates rooms in the leaf nodes of the BSP tree.
// A room stays at least one tile away from its leaf's far edges so rooms in
// neighbouring leaves never touch.
func (g *DungeonGenerator) createRoomsInLeaves(node *BSPNode) {
	if !node.isLeaf() {
		g.createRoomsInLeaves(node.Left)
		g.createRoomsInLeaves(node.Right)
		return
	}

	padLeft := 1 + g.rng.Intn(3)
	padTop := 1 + g.rng.Intn(3)
	padRight := 1 + g.rng.Intn(3)
	padBottom := 1 + g.rng.Intn(3)

	x1 := node.X + padLeft
	y1 := node.Y + padTop
	x2 := node.X + node.Width - 1 - padRight
	y2 := node.Y + node.Height - 1 - padBottom

	// Need at least a 3x3 interior.
	if x2-x1 < 3 || y2-y1 < 3 {
		return
	}
	node.Room = &Room{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// connectRooms joins a room from each half of every internal node.
func (g *DungeonGenerator) connectRooms(node *BSPNode, mapComp *components.MapComponent) {
	if node.isLeaf() {
		return
	}
	g.connectRooms(node.Left, mapComp)
	g.connectRooms(node.Right, mapComp)

	left := findRoom(node.Left)
	right := findRoom(node.Right)
	if left == nil || right == nil {
		return
	}
	a, b := left.Center(), right.Center()
	g.CreateCorridor(mapComp, a.X, a.Y, b.X, b.Y)
}

// findRoom finds a room in the subtree rooted at the given node
func findRoom(node *BSPNode) *Room {
	if node.Room != nil {
		return node.Room
	}
	if node.isLeaf() {
		return nil
	}
	if room := findRoom(node.Left); room != nil {
		return room
	}
	return findRoom(node.Right)
}

// collectRooms gathers leaf rooms left to right.
func collectRooms(node *BSPNode, rooms *[]Room) {
	if node.Room != nil {
		*rooms = append(*rooms, *node.Room)
	}
	if !node.isLeaf() {
		collectRooms(node.Left, rooms)
		collectRooms(node.Right, rooms)
	}
}
