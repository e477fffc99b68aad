package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"dungeon-crawl/engine"
)

type keyBinding struct {
	key    ebiten.Key
	intent engine.Intent
}

// Checked in order; the first key pressed this frame wins.
var keyBindings = []keyBinding{
	// Arrow keys
	{ebiten.KeyArrowUp, engine.IntentNorth},
	{ebiten.KeyArrowDown, engine.IntentSouth},
	{ebiten.KeyArrowLeft, engine.IntentWest},
	{ebiten.KeyArrowRight, engine.IntentEast},

	// Vi keys
	{ebiten.KeyK, engine.IntentNorth},
	{ebiten.KeyJ, engine.IntentSouth},
	{ebiten.KeyH, engine.IntentWest},
	{ebiten.KeyL, engine.IntentEast},
	{ebiten.KeyY, engine.IntentNorthWest},
	{ebiten.KeyU, engine.IntentNorthEast},
	{ebiten.KeyB, engine.IntentSouthWest},
	{ebiten.KeyN, engine.IntentSouthEast},

	// Numpad
	{ebiten.KeyNumpad8, engine.IntentNorth},
	{ebiten.KeyNumpad2, engine.IntentSouth},
	{ebiten.KeyNumpad4, engine.IntentWest},
	{ebiten.KeyNumpad6, engine.IntentEast},
	{ebiten.KeyNumpad7, engine.IntentNorthWest},
	{ebiten.KeyNumpad9, engine.IntentNorthEast},
	{ebiten.KeyNumpad1, engine.IntentSouthWest},
	{ebiten.KeyNumpad3, engine.IntentSouthEast},

	// Wait
	{ebiten.KeyNumpad5, engine.IntentWait},
	{ebiten.KeyPeriod, engine.IntentWait},
}

// readIntent decodes at most one intent from this frame's key presses.
func readIntent() engine.Intent {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			return b.intent
		}
	}
	return engine.IntentNone
}
