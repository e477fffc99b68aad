package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type menuItem struct {
	label  string
	result error
}

var (
	colorTitle    = color.RGBA{255, 230, 150, 255}
	colorOption   = color.RGBA{200, 200, 200, 255}
	colorSelected = color.RGBA{255, 255, 255, 255}
	colorHint     = color.RGBA{120, 120, 120, 255}
)

// StartScreen is the title menu. Choosing an item returns its transition
// error to the stack owner.
type StartScreen struct {
	*BaseScreen
	title    string
	items    []menuItem
	selected int
}

func NewStartScreen(fonts *Fonts, title string) *StartScreen {
	return &StartScreen{
		BaseScreen: NewBaseScreen(fonts),
		title:      title,
		items: []menuItem{
			{"New Game", ErrNewGame},
			{"Quit", ErrQuit},
		},
	}
}

func (s *StartScreen) move(step int) {
	n := len(s.items)
	s.selected = (s.selected + step + n) % n
}

func (s *StartScreen) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyK):
		s.move(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyJ):
		s.move(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		return s.items[s.selected].result
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ErrQuit
	}
	return nil
}

func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	mid := float64(screen.Bounds().Dy()) / 2

	s.fonts.drawCentered(screen, s.title, mid-120, colorTitle, s.fonts.Title)

	const spacing = 30.0
	y := mid - float64(len(s.items))*spacing/2
	for i, item := range s.items {
		label, c := item.label, color.Color(colorOption)
		if i == s.selected {
			label, c = "> "+item.label+" <", colorSelected
		}
		s.fonts.drawCentered(screen, label, y+float64(i)*spacing, c, s.fonts.UI)
	}
	s.fonts.drawCentered(screen, "arrows or j/k to choose, enter to confirm", mid+120, colorHint, s.fonts.UI)
}
