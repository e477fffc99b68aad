package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dungeon-crawl/systems"
)

// MessageHistoryScreen shows the whole message log in a scrollable window
type MessageHistoryScreen struct {
	*BaseScreen
	msgs         *systems.MessageLog
	scrollOffset int
	width        int
	height       int
	background   color.Color
	textColor    color.Color
}

// NewMessageHistoryScreen opens the history scrolled to the newest entries.
func NewMessageHistoryScreen(fonts *Fonts, msgs *systems.MessageLog) *MessageHistoryScreen {
	s := &MessageHistoryScreen{
		BaseScreen: NewBaseScreen(fonts),
		msgs:       msgs,
		width:      720,
		height:     520,
		background: color.RGBA{0, 0, 0, 255}, // Solid black
		textColor:  color.White,
	}
	s.scrollOffset = s.maxOffset()
	return s
}

const (
	historyTop        = 40
	historyLineHeight = 16
)

func (s *MessageHistoryScreen) Overlay() bool { return true }

func (s *MessageHistoryScreen) visibleLines() int {
	return (s.height - historyTop - 24) / historyLineHeight
}

func (s *MessageHistoryScreen) maxOffset() int {
	return max(0, s.msgs.Len()-s.visibleLines())
}

// Update handles input for the history screen
func (s *MessageHistoryScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && s.scrollOffset > 0 {
		s.scrollOffset--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && s.scrollOffset < s.maxOffset() {
		s.scrollOffset++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyM) {
		return ErrCloseScreen
	}
	return nil
}

// Draw renders the history window
func (s *MessageHistoryScreen) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	x := float32(b.Dx()-s.width) / 2
	y := float32(b.Dy()-s.height) / 2
	vector.DrawFilledRect(screen, x, y, float32(s.width), float32(s.height), s.background, false)
	vector.StrokeRect(screen, x, y, float32(s.width), float32(s.height), 2, s.textColor, false)

	s.fonts.drawCentered(screen, "MESSAGE LOG", float64(y)+10, s.textColor, s.fonts.UI)

	all := s.msgs.Recent(s.msgs.Len())
	maxLines := s.visibleLines()
	for i := 0; i < maxLines && s.scrollOffset+i < len(all); i++ {
		msg := all[s.scrollOffset+i]
		s.fonts.drawText(screen, msg.Text, float64(x)+10, float64(y)+historyTop+float64(i*historyLineHeight), msg.Color(), s.fonts.UI)
	}

	if len(all) > maxLines {
		track := float32(s.height - historyTop - 24)
		barH := float32(maxLines) / float32(len(all)) * track
		barY := y + historyTop + float32(s.scrollOffset)/float32(len(all))*track
		vector.DrawFilledRect(screen, x+float32(s.width)-10, barY, 5, barH, s.textColor, false)
	}

	s.fonts.drawText(screen, "Up/Down: scroll  Esc: close", float64(x)+10, float64(y)+float64(s.height)-20, s.textColor, s.fonts.UI)
}
