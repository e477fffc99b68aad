package screens

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// Returned from Update to ask the owner of the stack for a transition.
var (
	ErrCloseScreen = errors.New("close screen")
	ErrNewGame     = errors.New("new game")
	ErrQuit        = errors.New("quit")
)

// Screen is one layer of the UI.
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// Overlay is implemented by screens drawn on top of the screen below them
// rather than replacing it.
type Overlay interface {
	Overlay() bool
}

func isOverlay(s Screen) bool {
	o, ok := s.(Overlay)
	return ok && o.Overlay()
}

// ScreenStack routes input to the top screen only.
type ScreenStack struct {
	screens []Screen
}

func NewScreenStack() *ScreenStack {
	return &ScreenStack{}
}

func (s *ScreenStack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// Pop removes and returns the top screen, or nil when empty.
func (s *ScreenStack) Pop() Screen {
	top := s.Peek()
	if top != nil {
		s.screens = s.screens[:len(s.screens)-1]
	}
	return top
}

// Replace clears the stack and pushes screen.
func (s *ScreenStack) Replace(screen Screen) {
	clear(s.screens)
	s.screens = append(s.screens[:0], screen)
}

func (s *ScreenStack) Peek() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

func (s *ScreenStack) Len() int {
	return len(s.screens)
}

// Update runs the top screen. ErrCloseScreen pops it; any other error is
// handed to the caller.
func (s *ScreenStack) Update() error {
	top := s.Peek()
	if top == nil {
		return nil
	}
	err := top.Update()
	if errors.Is(err, ErrCloseScreen) {
		s.Pop()
		return nil
	}
	return err
}

// Draw paints from the highest full screen upwards; anything beneath it is
// hidden anyway.
func (s *ScreenStack) Draw(screen *ebiten.Image) {
	for _, scr := range s.screens[s.firstVisible():] {
		scr.Draw(screen)
	}
}

func (s *ScreenStack) firstVisible() int {
	for i := len(s.screens) - 1; i > 0; i-- {
		if !isOverlay(s.screens[i]) {
			return i
		}
	}
	return 0
}

func (s *ScreenStack) Layout(outsideWidth, outsideHeight int) (int, int) {
	if top := s.Peek(); top != nil {
		return top.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
