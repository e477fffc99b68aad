package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"dungeon-crawl/config"
	"dungeon-crawl/engine"
	"dungeon-crawl/screens"
)

// Game implements ebiten.Game interface.
type Game struct {
	cfg   *config.Config
	log   *zap.Logger
	fonts *screens.Fonts
	stack *screens.ScreenStack
}

// NewGame creates the host with the start menu showing.
func NewGame(cfg *config.Config, log *zap.Logger) (*Game, error) {
	fonts, err := screens.LoadFonts()
	if err != nil {
		return nil, err
	}
	stack := screens.NewScreenStack()
	stack.Push(screens.NewStartScreen(fonts, cfg.Window.Title))
	return &Game{cfg: cfg, log: log, fonts: fonts, stack: stack}, nil
}

// startRun generates a fresh dungeon and swaps it in as the only screen.
func (g *Game) startRun() error {
	run, err := engine.NewGame(g.cfg, g.log)
	if err != nil {
		return err
	}
	g.stack.Replace(screens.NewGameScreen(run, g.fonts, g.log))
	return nil
}

// Update updates the game state.
func (g *Game) Update() error {
	err := g.stack.Update()
	switch {
	case errors.Is(err, screens.ErrNewGame):
		return g.startRun()
	case errors.Is(err, screens.ErrQuit):
		g.log.Info("quit requested")
		return ebiten.Termination
	}
	return err
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.stack.Draw(screen)
	if g.log.Core().Enabled(zap.DebugLevel) {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
	}
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
