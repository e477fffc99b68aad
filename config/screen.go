package config

// Layout in tiles. The map view sits top left, the stats panel to its
// right and the message log along the bottom.
const (
	TileSize = 16

	MapViewWidth  = 50
	MapViewHeight = 40
	PanelWidth    = 14
	LogHeight     = 8

	ScreenWidth  = MapViewWidth + PanelWidth
	ScreenHeight = MapViewHeight + LogHeight

	// LogLines leaves one row for the separator above the log.
	LogLines = LogHeight - 1

	WindowWidth  = ScreenWidth * TileSize
	WindowHeight = ScreenHeight * TileSize
)

// GetScreenDimensions returns the logical screen size in pixels.
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}
