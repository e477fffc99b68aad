package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ModalScreen represents a popup window that appears on top of other screens
type ModalScreen struct {
	*BaseScreen
	title      string
	lines      []string
	width      int
	height     int
	background color.Color
	textColor  color.Color
}

// NewModalScreen creates a new modal screen
func NewModalScreen(fonts *Fonts, title string, lines []string, width, height int) *ModalScreen {
	return &ModalScreen{
		BaseScreen: NewBaseScreen(fonts),
		title:      title,
		lines:      lines,
		width:      width,
		height:     height,
		background: color.RGBA{0, 0, 0, 220}, // Semi-transparent black
		textColor:  color.White,
	}
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	x, y := s.origin(screen)
	vector.DrawFilledRect(screen, x, y, float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, x, y, float32(s.width), float32(s.height), 2, s.textColor, false)

	s.fonts.drawCentered(screen, s.title, float64(y)+12, s.textColor, s.fonts.Title)
	lineY := float64(y) + 12 + s.fonts.Title.Size*1.5
	for _, line := range s.lines {
		s.fonts.drawCentered(screen, line, lineY, s.textColor, s.fonts.UI)
		lineY += s.fonts.UI.Size * 1.6
	}
}

// Overlay reports that the screen below stays visible.
func (s *ModalScreen) Overlay() bool { return true }

// origin returns the top-left corner that centres the modal.
func (s *ModalScreen) origin(screen *ebiten.Image) (float32, float32) {
	b := screen.Bounds()
	return float32(b.Dx()-s.width) / 2, float32(b.Dy()-s.height) / 2
}
