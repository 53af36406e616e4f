package render

import "github.com/gdamore/tcell/v2"

// Console is the drawing surface and key source the game runs on.
// tcell.Screen satisfies it.
type Console interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	GetContent(x, y int) (primary rune, combining []rune, style tcell.Style, width int)
	Show()
	Sync()
	PollEvent() tcell.Event
}

// WaitForKeypress flushes the console and blocks until a key is pressed.
// redraw, when non-nil, is called after a resize so the caller can repaint.
// It returns nil if the console stops delivering events.
func WaitForKeypress(con Console, redraw func()) *tcell.EventKey {
	con.Show()
	for {
		switch ev := con.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			return ev
		case *tcell.EventResize:
			con.Sync()
			if redraw != nil {
				redraw()
			}
			con.Show()
		}
	}
}

// DrawText writes text at (x, y), advancing by each glyph's display width.
func DrawText(con Console, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		con.SetContent(x, y, ch, nil, style)
		x += max(1, runeWidth(ch))
	}
}
