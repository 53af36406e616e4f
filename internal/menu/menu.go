// Package menu presents a header and a letter-labeled list of options and
// waits for a single keystroke choosing one of them. It knows nothing about
// what the options mean.
package menu

import (
	"fmt"

	"glyph-delve/internal/render"

	"github.com/gdamore/tcell/v2"
)

// MaxOptions is the number of selectable letters, a through z.
const MaxOptions = 26

const (
	fgOpacity = 1.0
	bgOpacity = 0.7
)

var (
	headerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	optionStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// Label returns the letter label for option i: 'a' for 0, 'b' for 1.
func Label(i int) rune { return rune('a' + i) }

// Height returns the number of rows a menu needs: the header wrapped to
// width plus one row per option.
func Height(header string, options []string, width int) int {
	return render.WrappedHeight(header, width) + len(options)
}

// Build lays the menu out on an off-screen panel.
// Panics if there are more than MaxOptions options.
func Build(header string, options []string, width int) *render.Panel {
	if len(options) > MaxOptions {
		panic(fmt.Sprintf("menu: cannot have a menu with more than %d options (got %d)", MaxOptions, len(options)))
	}
	headerHeight := render.WrappedHeight(header, width)
	panel := render.NewPanel(width, headerHeight+len(options), optionStyle)

	panel.PrintRect(0, 0, width, headerHeight, header, headerStyle)
	for i, text := range options {
		panel.Print(0, headerHeight+i, fmt.Sprintf("(%c) %s", Label(i), text), optionStyle)
	}
	return panel
}

// Present draws the menu centered on con and blocks until a key is pressed.
// It returns the chosen option index, or false when the key does not select
// an option. Panics if there are more than MaxOptions options.
func Present(con render.Console, header string, options []string, width int) (int, bool) {
	panel := Build(header, options, width)

	draw := func() {
		sw, sh := con.Size()
		x := sw/2 - panel.Width/2
		y := sh/2 - panel.Height/2
		panel.Blit(con, x, y, fgOpacity, bgOpacity)
	}
	draw()

	ev := render.WaitForKeypress(con, draw)
	if ev == nil {
		return 0, false
	}
	return Resolve(ev, len(options))
}

// Resolve maps a key to an option index among n options. Only bare ASCII
// letters select, case-insensitively. Anything else is a cancellation: a
// letter held with Alt, Meta or Ctrl, a non-letter, or a letter past the
// last option.
func Resolve(ev *tcell.EventKey, n int) (int, bool) {
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}
	if ev.Modifiers()&(tcell.ModAlt|tcell.ModMeta|tcell.ModCtrl) != 0 {
		return 0, false
	}
	r := ev.Rune()
	switch {
	case r >= 'a' && r <= 'z':
	case r >= 'A' && r <= 'Z':
		r += 'a' - 'A'
	default:
		return 0, false
	}
	idx := int(r - 'a')
	if idx >= n {
		return 0, false
	}
	return idx, true
}
