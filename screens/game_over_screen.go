package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverScreen is pushed over the dead player's map.
type GameOverScreen struct {
	*ModalScreen
}

func NewGameOverScreen(fonts *Fonts, turns, kills int) *GameOverScreen {
	summary := fmt.Sprintf("You survived %d turns.", turns)
	if turns == 1 {
		summary = "You survived a single turn."
	}
	lines := []string{summary, fmt.Sprintf("Monsters slain: %d", kills), "", "Enter: new game   Esc/Q: quit"}
	return &GameOverScreen{ModalScreen: NewModalScreen(fonts, "You are dead", lines, 420, 200)}
}

func (s *GameOverScreen) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return ErrNewGame
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ErrQuit
	}
	return nil
}
