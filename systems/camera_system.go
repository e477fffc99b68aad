package systems

import (
	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
)

// CameraSystem keeps each camera centred on its target, clamped so the
// viewport never scrolls past the map edge. It is not part of the turn
// pipeline; the owner runs it when the player moves.
type CameraSystem struct {
	stores        *components.Stores
	width, height int
}

// NewCameraSystem creates a camera system for a viewport of the given size
// in tiles.
func NewCameraSystem(stores *components.Stores, viewWidth, viewHeight int) *CameraSystem {
	return &CameraSystem{stores: stores, width: viewWidth, height: viewHeight}
}

// Update updates the camera position to follow the target entity
func (s *CameraSystem) Update(world *ecs.World) {
	m, ok := s.stores.Map()
	if !ok {
		return
	}
	s.stores.Cameras.Each(func(_ ecs.EntityID, camera *components.CameraComponent) {
		if camera.Target.IsZero() {
			return
		}
		pos, ok := s.stores.Positions.Get(camera.Target)
		if !ok {
			return
		}
		camera.X = clampAxis(pos.X-s.width/2, m.Width-s.width)
		camera.Y = clampAxis(pos.Y-s.height/2, m.Height-s.height)
	})
}

func clampAxis(ideal, limit int) int {
	if ideal > limit {
		ideal = limit
	}
	if ideal < 0 {
		ideal = 0
	}
	return ideal
}

// WorldToScreen converts world tile coordinates to viewport coordinates
func (s *CameraSystem) WorldToScreen(camera *components.CameraComponent, worldX, worldY int) (int, int) {
	if camera == nil {
		return worldX, worldY
	}
	return worldX - camera.X, worldY - camera.Y
}

// IsVisible checks if a world position falls inside the viewport
func (s *CameraSystem) IsVisible(camera *components.CameraComponent, worldX, worldY int) bool {
	sx, sy := s.WorldToScreen(camera, worldX, worldY)
	return sx >= 0 && sx < s.width && sy >= 0 && sy < s.height
}
