package ecs

// Each2 visits entities that hold both A and B, in ascending id order.
// The smaller store drives the walk.
func Each2[A, B any](sa *Store[A], sb *Store[B], fn func(EntityID, *A, *B)) {
	ids := sa.IDs()
	if sb.Len() < sa.Len() {
		ids = sb.IDs()
	}
	for _, id := range ids {
		a, ok := sa.data[id]
		if !ok {
			continue
		}
		b, ok := sb.data[id]
		if !ok {
			continue
		}
		fn(id, a, b)
	}
}

// Each3 visits entities that hold A, B and C, in ascending id order.
func Each3[A, B, C any](sa *Store[A], sb *Store[B], sc *Store[C], fn func(EntityID, *A, *B, *C)) {
	ids := sa.IDs()
	smallest := sa.Len()
	if sb.Len() < smallest {
		ids, smallest = sb.IDs(), sb.Len()
	}
	if sc.Len() < smallest {
		ids = sc.IDs()
	}
	for _, id := range ids {
		a, ok := sa.data[id]
		if !ok {
			continue
		}
		b, ok := sb.data[id]
		if !ok {
			continue
		}
		c, ok := sc.data[id]
		if !ok {
			continue
		}
		fn(id, a, b, c)
	}
}
