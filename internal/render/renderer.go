package render

import (
	"sort"

	"glyph-delve/assets"
	"glyph-delve/internal/component"
	"glyph-delve/internal/ecs"
	"glyph-delve/internal/feedback"
	"glyph-delve/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDHeight is the number of rows reserved below the map.
const HUDHeight = 6

var (
	wallStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(130, 110, 50)).Background(tcell.ColorBlack)
	floorStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(50, 50, 150)).Background(tcell.ColorBlack)
	// Explored but out of sight.
	darkWallStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 0, 100)).Background(tcell.ColorBlack)
	darkFloorStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(30, 30, 60)).Background(tcell.ColorBlack)
	blankStyle = tcell.StyleDefault.Background(tcell.ColorBlack)
)

// Renderer draws the dungeon, its objects and the HUD onto a Console.
type Renderer struct {
	con    Console
	camera Camera
}

// NewRenderer creates a Renderer sized to con.
func NewRenderer(con Console) *Renderer {
	r := &Renderer{con: con}
	r.Resize()
	return r
}

// Resize adapts the map view to the console's current size.
func (r *Renderer) Resize() {
	w, h := r.con.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(0, h-HUDHeight)
}

// Camera returns the current camera.
func (r *Renderer) Camera() Camera { return r.camera }

// DrawFrame paints the explored map, the objects in view and the HUD,
// centered on the player. It does not flush the console.
func (r *Renderer) DrawFrame(store *ecs.Store, gmap *gamemap.GameMap, log *feedback.Log) {
	r.clear()
	_, player := store.Player()
	if player != nil {
		if pos, ok := component.PositionOf(player); ok {
			r.camera.Center(pos.X, pos.Y)
		}
	}
	r.drawMap(gmap)
	r.drawObjects(store, gmap)
	r.drawHUD(player, log)
}

func (r *Renderer) clear() {
	w, h := r.con.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.con.SetContent(x, y, ' ', nil, blankStyle)
		}
	}
}

func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			sx, sy, ok := r.camera.ToScreen(x, y)
			if !ok {
				continue
			}
			tile := gmap.At(x, y)
			if !tile.Visible && !tile.Explored {
				continue
			}
			wall := tile.Kind == gamemap.TileWall
			switch {
			case wall && tile.Visible:
				r.putGlyph(sx, sy, assets.GlyphWall, wallStyle)
			case wall:
				r.putGlyph(sx, sy, assets.GlyphWall, darkWallStyle)
			case tile.Visible:
				r.putGlyph(sx, sy, assets.GlyphFloor, floorStyle)
			default:
				r.putGlyph(sx, sy, assets.GlyphFloor, darkFloorStyle)
			}
		}
	}
}

// drawObjects draws placed objects on visible tiles in ascending RenderOrder
// so the player ends up on top of anything it stands on.
func (r *Renderer) drawObjects(store *ecs.Store, gmap *gamemap.GameMap) {
	idx := store.Query(component.CRenderable, component.CPosition)
	sort.SliceStable(idx, func(i, j int) bool {
		a := store.At(idx[i]).Get(component.CRenderable).(component.Renderable)
		b := store.At(idx[j]).Get(component.CRenderable).(component.Renderable)
		return a.RenderOrder < b.RenderOrder
	})
	for _, i := range idx {
		o := store.At(i)
		pos, _ := component.PositionOf(o)
		if !gmap.InBounds(pos.X, pos.Y) || !gmap.At(pos.X, pos.Y).Visible {
			continue
		}
		sx, sy, ok := r.camera.ToScreen(pos.X, pos.Y)
		if !ok {
			continue
		}
		rend := o.Get(component.CRenderable).(component.Renderable)
		glyph := rend.Glyph
		if glyph == "" {
			glyph = assets.GlyphUnknown
		}
		r.putGlyph(sx, sy, glyph, tcell.StyleDefault.Foreground(rend.FGColor).Background(tcell.ColorBlack))
	}
}

// putGlyph draws a glyph (ASCII or multi-rune emoji) at (x, y), padding
// narrow glyphs to the two-column tile width.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.con.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) < 2 {
		r.con.SetContent(x+1, y, ' ', nil, style)
	}
}
