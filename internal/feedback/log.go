// Package feedback holds the narration shown to the player: an append-only,
// ordered list of colored messages.
package feedback

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
)

// Message is one line of narration.
type Message struct {
	Text  string
	Color tcell.Color
}

// Log is the append-only message log. The zero value is ready to use.
type Log struct {
	messages []Message
	logger   *slog.Logger
}

// NewLog creates a Log that mirrors every message to logger at debug level.
// A nil logger disables mirroring.
func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

// Add appends a message.
func (l *Log) Add(text string, color tcell.Color) {
	l.messages = append(l.messages, Message{Text: text, Color: color})
	if l.logger != nil {
		l.logger.Debug("feedback", "text", text)
	}
}

// Len returns the number of messages written so far.
func (l *Log) Len() int { return len(l.messages) }

// Messages returns every message in the order written.
func (l *Log) Messages() []Message { return l.messages }

// Tail returns the last n messages (fewer if the log is shorter).
func (l *Log) Tail(n int) []Message {
	start := len(l.messages) - n
	if start < 0 {
		start = 0
	}
	return l.messages[start:]
}

// Last returns the most recent message and false when the log is empty.
func (l *Log) Last() (Message, bool) {
	if len(l.messages) == 0 {
		return Message{}, false
	}
	return l.messages[len(l.messages)-1], true
}
