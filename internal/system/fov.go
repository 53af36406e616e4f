package system

import (
	"glyph-delve/internal/component"
	"glyph-delve/internal/ecs"
	"glyph-delve/internal/gamemap"
)

// octant transforms for recursive shadowcasting. A sweep offset (dx, dy)
// maps to the map as (cx + dx*xx + dy*xy, cy + dx*yx + dy*yy).
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// UpdateFOV recomputes which tiles the player sees. Every tile lit this turn
// is also marked explored; explored tiles stay explored.
func UpdateFOV(store *ecs.Store, gmap *gamemap.GameMap, radius int) {
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			gmap.At(x, y).Visible = false
		}
	}

	_, player := store.Player()
	if player == nil {
		return
	}
	pos, ok := component.PositionOf(player)
	if !ok {
		return
	}
	if gmap.InBounds(pos.X, pos.Y) {
		light(gmap, pos.X, pos.Y)
	}
	for _, m := range octants {
		castLight(gmap, pos.X, pos.Y, 1, 1.0, 0.0, radius, m[0], m[1], m[2], m[3])
	}
}

// Visible reports whether (x, y) is in the player's current field of view.
func Visible(gmap *gamemap.GameMap, x, y int) bool {
	return gmap.InBounds(x, y) && gmap.At(x, y).Visible
}

func light(gmap *gamemap.GameMap, x, y int) {
	t := gmap.At(x, y)
	t.Visible = true
	t.Explored = true
}

// castLight lights one octant row by row, recursing past each opaque run
// with a narrowed slope window.
func castLight(gmap *gamemap.GameMap, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			mx := cx + dx*xx + dy*xy
			my := cy + dx*yx + dy*yy
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if dx*dx+dy*dy < radiusSq && gmap.InBounds(mx, my) {
				light(gmap, mx, my)
			}

			opaque := !gmap.IsTransparent(mx, my)
			switch {
			case blocked && opaque:
				newStart = rSlope
			case blocked:
				blocked = false
				start = newStart
			case opaque && j < radius:
				blocked = true
				castLight(gmap, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
