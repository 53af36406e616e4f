package render

import (
	"fmt"
	"strings"

	"glyph-delve/internal/component"
	"glyph-delve/internal/ecs"
	"glyph-delve/internal/feedback"

	"github.com/gdamore/tcell/v2"
)

const hpBarWidth = 20

// drawHUD renders the HP bar and the newest feedback messages below the map.
func (r *Renderer) drawHUD(player *ecs.Object, log *feedback.Log) {
	w, _ := r.con.Size()
	top := r.camera.ViewHeight

	sep := tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	DrawText(r.con, 0, top, strings.Repeat("─", w), sep)

	if player != nil {
		if c := player.Get(component.CFighter); c != nil {
			r.drawHPBar(0, top+1, c.(component.Fighter))
		}
	}

	if log == nil {
		return
	}
	msgX := hpBarWidth + 2
	msgW := w - msgX
	if msgW <= 0 {
		return
	}
	rows := HUDHeight - 1
	var lines []feedback.Message
	for _, m := range log.Tail(rows) {
		for _, line := range Wrap(m.Text, msgW) {
			lines = append(lines, feedback.Message{Text: line, Color: m.Color})
		}
	}
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	for i, m := range lines {
		DrawText(r.con, msgX, top+1+i, m.Text, tcell.StyleDefault.Foreground(m.Color).Background(tcell.ColorBlack))
	}
}

// drawHPBar renders a filled bar with the numeric HP centered on it.
func (r *Renderer) drawHPBar(x, y int, f component.Fighter) {
	filled := 0
	if f.MaxHP > 0 {
		filled = max(0, f.HP) * hpBarWidth / f.MaxHP
	}
	full := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed)
	empty := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(64, 16, 16))

	label := fmt.Sprintf("HP: %d/%d", f.HP, f.MaxHP)
	start := (hpBarWidth - len(label)) / 2
	for i := 0; i < hpBarWidth; i++ {
		ch := ' '
		if i >= start && i-start < len(label) {
			ch = rune(label[i-start])
		}
		style := empty
		if i < filled {
			style = full
		}
		r.con.SetContent(x+i, y, ch, nil, style)
	}
}
