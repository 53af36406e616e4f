package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// cell is one character position of a Panel.
type cell struct {
	ch    rune
	style tcell.Style
}

// Panel is an off-screen rectangle of cells that can be composited onto a
// Console with independent foreground and background opacity.
type Panel struct {
	Width, Height int
	cells         []cell
}

// NewPanel creates a panel filled with blanks in the given style.
func NewPanel(width, height int, style tcell.Style) *Panel {
	p := &Panel{Width: width, Height: height, cells: make([]cell, width*height)}
	for i := range p.cells {
		p.cells[i] = cell{ch: ' ', style: style}
	}
	return p
}

// Set writes one rune. Out-of-bounds writes are ignored.
func (p *Panel) Set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return
	}
	p.cells[y*p.Width+x] = cell{ch: ch, style: style}
}

// Get returns the rune and style at (x, y).
func (p *Panel) Get(x, y int) (rune, tcell.Style) {
	c := p.cells[y*p.Width+x]
	return c.ch, c.style
}

// Print writes text on one row starting at (x, y), clipped to the panel.
func (p *Panel) Print(x, y int, text string, style tcell.Style) {
	for _, ch := range Truncate(text, p.Width-x) {
		p.Set(x, y, ch, style)
		w := runeWidth(ch)
		if w == 2 {
			p.Set(x+1, y, ' ', style)
		}
		x += max(1, w)
	}
}

// PrintRect word-wraps text into the rectangle at (x, y) of the given width
// and height and returns the number of lines written.
func (p *Panel) PrintRect(x, y, width, height int, text string, style tcell.Style) int {
	lines := Wrap(text, width)
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		p.Print(x, y+i, line, style)
	}
	return len(lines)
}

// Blit composites the panel onto con with its top-left corner at (dx, dy).
// fgAlpha and bgAlpha are opacities in [0, 1]: 1 replaces what is underneath,
// 0 leaves it untouched.
func (p *Panel) Blit(con Console, dx, dy int, fgAlpha, bgAlpha float64) {
	cw, ch := con.Size()
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			sx, sy := dx+x, dy+y
			if sx < 0 || sy < 0 || sx >= cw || sy >= ch {
				continue
			}
			r, style := p.Get(x, y)
			_, _, under, _ := con.GetContent(sx, sy)
			pfg, pbg, attrs := style.Decompose()
			ufg, ubg, _ := under.Decompose()
			out := tcell.StyleDefault.
				Foreground(Blend(ufg, pfg, fgAlpha)).
				Background(Blend(ubg, pbg, bgAlpha)).
				Attributes(attrs)
			con.SetContent(sx, sy, r, nil, out)
		}
	}
}

// Blend mixes over onto base with the given opacity. Colors without an RGB
// value (tcell.ColorDefault) are treated as black.
func Blend(base, over tcell.Color, alpha float64) tcell.Color {
	switch {
	case alpha >= 1:
		return over
	case alpha <= 0:
		return base
	}
	mixed := toColorful(base).BlendRgb(toColorful(over), alpha).Clamped()
	r, g, b := mixed.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}
