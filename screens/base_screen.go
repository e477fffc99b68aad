package screens

import (
	"github.com/hajimehoshi/ebiten/v2"

	"dungeon-crawl/config"
)

// BaseScreen carries the shared fonts and a fixed logical resolution.
// Embedders override Update and Draw.
type BaseScreen struct {
	fonts *Fonts
}

func NewBaseScreen(fonts *Fonts) *BaseScreen {
	return &BaseScreen{fonts: fonts}
}

func (s *BaseScreen) Update() error { return nil }

func (s *BaseScreen) Draw(*ebiten.Image) {}

func (s *BaseScreen) Layout(int, int) (int, int) {
	return config.GetScreenDimensions()
}
