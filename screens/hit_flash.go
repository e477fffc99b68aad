package screens

import "dungeon-crawl/ecs"

// hitFlashFrames is how long a damaged entity's tile stays highlighted.
const hitFlashFrames = 12

// hitFlashes counts down the highlight left on entities that took damage.
type hitFlashes struct {
	frames map[ecs.EntityID]int
}

func newHitFlashes() *hitFlashes {
	return &hitFlashes{frames: make(map[ecs.EntityID]int)}
}

func (h *hitFlashes) hit(id ecs.EntityID) {
	h.frames[id] = hitFlashFrames
}

func (h *hitFlashes) forget(id ecs.EntityID) {
	delete(h.frames, id)
}

// tick advances every flash by one frame.
func (h *hitFlashes) tick() {
	for id, n := range h.frames {
		if n <= 1 {
			delete(h.frames, id)
			continue
		}
		h.frames[id] = n - 1
	}
}

func (h *hitFlashes) active(id ecs.EntityID) bool {
	return h.frames[id] > 0
}
