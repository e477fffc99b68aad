package systems

import "image/color"

// MessageType picks the log color of an entry.
type MessageType int

const (
	MessageTypeNormal MessageType = iota
	MessageTypeEnvironment
	MessageTypeCombat
	MessageTypeAlert
)

var messagePalette = [...]color.RGBA{
	MessageTypeNormal:      {200, 200, 200, 255},
	MessageTypeEnvironment: {218, 165, 32, 255}, // taunts and flavour
	MessageTypeCombat:      {255, 100, 100, 255},
	MessageTypeAlert:       {255, 255, 0, 255},
}

// ColoredMessage is one log entry.
type ColoredMessage struct {
	Text string
	Type MessageType
}

// Color returns the entry's draw color; unknown types draw as normal text.
func (cm ColoredMessage) Color() color.RGBA {
	if cm.Type < 0 || int(cm.Type) >= len(messagePalette) {
		return messagePalette[MessageTypeNormal]
	}
	return messagePalette[cm.Type]
}
