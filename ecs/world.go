package ecs

import "slices"

// World owns the entity pool, every registered component store, tag lookups,
// the event manager and a deferred destruction queue.
type World struct {
	pool         *EntityPool
	stores       []Removable
	entityTags   map[string]map[EntityID]bool
	tagsByEntity map[EntityID][]string
	eventManager *EventManager
	destroyQueue []EntityID
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		pool:         NewEntityPool(),
		stores:       make([]Removable, 0, 16),
		entityTags:   make(map[string]map[EntityID]bool),
		tagsByEntity: make(map[EntityID][]string),
		eventManager: NewEventManager(),
		destroyQueue: make([]EntityID, 0, 16),
	}
}

// Register adds a component store so destroyed entities are purged from it.
func (w *World) Register(store Removable) {
	w.stores = append(w.stores, store)
}

func (w *World) CreateEntity() EntityID {
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.pool.Count()
}

// TagEntity adds a tag to a live entity.
func (w *World) TagEntity(id EntityID, tag string) {
	if !w.Alive(id) {
		return
	}
	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}
	if w.entityTags[tag][id] {
		return
	}
	w.entityTags[tag][id] = true
	w.tagsByEntity[id] = append(w.tagsByEntity[id], tag)
}

// HasTag reports whether id carries tag.
func (w *World) HasTag(id EntityID, tag string) bool {
	return w.entityTags[tag][id]
}

// GetEntitiesWithTag returns all live entities with a tag in ascending id order.
func (w *World) GetEntitiesWithTag(tag string) []EntityID {
	ids := make([]EntityID, 0, len(w.entityTags[tag]))
	for id := range w.entityTags[tag] {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// FirstWithTag returns the lowest id carrying tag.
func (w *World) FirstWithTag(tag string) (EntityID, bool) {
	ids := w.GetEntitiesWithTag(tag)
	if len(ids) == 0 {
		return NoEntity, false
	}
	return ids[0], true
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

// MarkForDestruction queues an entity for removal at the next flush.
// Marking the same entity twice is harmless.
func (w *World) MarkForDestruction(id EntityID) {
	if slices.Contains(w.destroyQueue, id) {
		return
	}
	w.destroyQueue = append(w.destroyQueue, id)
}

// PendingDestruction reports whether id is queued for removal.
func (w *World) PendingDestruction(id EntityID) bool {
	return slices.Contains(w.destroyQueue, id)
}

// FlushDestroyQueue removes every queued entity from all stores and tags and
// recycles its id.
func (w *World) FlushDestroyQueue() int {
	n := 0
	for _, id := range w.destroyQueue {
		if !w.pool.Alive(id) {
			continue
		}
		for _, s := range w.stores {
			s.Remove(id)
		}
		for _, tag := range w.tagsByEntity[id] {
			delete(w.entityTags[tag], id)
			if len(w.entityTags[tag]) == 0 {
				delete(w.entityTags, tag)
			}
		}
		delete(w.tagsByEntity, id)
		w.pool.Destroy(id)
		n++
	}
	w.destroyQueue = w.destroyQueue[:0]
	return n
}
