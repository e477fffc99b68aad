// Package pathfinding implements A* search over any graph of integer tile
// indices.
package pathfinding

import (
	"github.com/zyedidia/generic/heap"
)

// MaxSteps bounds the number of nodes a single search may expand.
const MaxSteps = 65536

// Exit is a traversable edge to a neighbouring tile.
type Exit struct {
	Index int
	Cost  float64
}

// Graph is the view of a map the search needs.
type Graph interface {
	AvailableExits(idx int) []Exit
	Distance(a, b int) float64
}

// Path is the result of a search. Steps begins with the start tile, so a
// path with fewer than two steps does not move anyone.
type Path struct {
	Success bool
	Steps   []int
}

type node struct {
	idx int
	g   float64
	h   float64
	seq int
}

func (n node) f() float64 { return n.g + n.h }

func less(a, b node) bool {
	if a.f() != b.f() {
		return a.f() < b.f()
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// FindPath runs A* from start to goal using the graph's straight-line
// distance as the heuristic.
func FindPath(start, goal int, g Graph) Path {
	if start == goal {
		return Path{Success: true, Steps: []int{start}}
	}

	open := heap.New[node](less)
	cameFrom := make(map[int]int)
	gScore := map[int]float64{start: 0}
	closed := make(map[int]bool)

	seq := 0
	open.Push(node{idx: start, h: g.Distance(start, goal), seq: seq})

	for steps := 0; open.Size() > 0 && steps < MaxSteps; steps++ {
		current, _ := open.Pop()
		if closed[current.idx] {
			continue
		}
		if current.idx == goal {
			return Path{Success: true, Steps: reconstruct(cameFrom, start, goal)}
		}
		closed[current.idx] = true

		for _, exit := range g.AvailableExits(current.idx) {
			if closed[exit.Index] {
				continue
			}
			tentative := current.g + exit.Cost
			if best, seen := gScore[exit.Index]; seen && tentative >= best {
				continue
			}
			gScore[exit.Index] = tentative
			cameFrom[exit.Index] = current.idx
			seq++
			open.Push(node{idx: exit.Index, g: tentative, h: g.Distance(exit.Index, goal), seq: seq})
		}
	}

	return Path{Success: false}
}

func reconstruct(cameFrom map[int]int, start, goal int) []int {
	steps := []int{goal}
	for cur := goal; cur != start; {
		cur = cameFrom[cur]
		steps = append(steps, cur)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
