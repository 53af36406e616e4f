package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Wrap word-wraps text to width columns. Words longer than width are broken.
// An empty text yields no lines.
func Wrap(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width <= 0 {
		return strings.Split(text, "\n")
	}
	return strings.Split(wrap.String(wordwrap.String(text, width), width), "\n")
}

// WrappedHeight returns how many lines text occupies when wrapped to width.
func WrappedHeight(text string, width int) int {
	return len(Wrap(text, width))
}

// Truncate clips s so that it fits in width display columns.
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}

func runeWidth(r rune) int {
	return runewidth.RuneWidth(r)
}
