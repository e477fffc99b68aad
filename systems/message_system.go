package systems

import (
	"github.com/leonelquinteros/gotext"
)

// MessageLog is the ordered, player-facing game log. Oldest entries come
// first. Entries are formatted through gotext so a loaded locale can
// translate them.
type MessageLog struct {
	messages []ColoredMessage
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{}
}

// Add appends a normal message.
func (ml *MessageLog) Add(format string, args ...any) {
	ml.AddTyped(MessageTypeNormal, format, args...)
}

// AddCombat appends a combat message.
func (ml *MessageLog) AddCombat(format string, args ...any) {
	ml.AddTyped(MessageTypeCombat, format, args...)
}

// AddAlert appends an alert.
func (ml *MessageLog) AddAlert(format string, args ...any) {
	ml.AddTyped(MessageTypeAlert, format, args...)
}

// AddEnvironment appends descriptive text.
func (ml *MessageLog) AddEnvironment(format string, args ...any) {
	ml.AddTyped(MessageTypeEnvironment, format, args...)
}

// AddTyped appends a message of the given type.
func (ml *MessageLog) AddTyped(t MessageType, format string, args ...any) {
	ml.messages = append(ml.messages, ColoredMessage{
		Text: gotext.Get(format, args...),
		Type: t,
	})
}

// Len returns the number of messages logged.
func (ml *MessageLog) Len() int {
	return len(ml.messages)
}

// Entries returns every message text, newest last.
func (ml *MessageLog) Entries() []string {
	out := make([]string, len(ml.messages))
	for i, m := range ml.messages {
		out[i] = m.Text
	}
	return out
}

// Recent returns up to n of the newest messages, newest last.
func (ml *MessageLog) Recent(n int) []ColoredMessage {
	if n > len(ml.messages) {
		n = len(ml.messages)
	}
	if n <= 0 {
		return nil
	}
	out := make([]ColoredMessage, n)
	copy(out, ml.messages[len(ml.messages)-n:])
	return out
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.messages = nil
}
