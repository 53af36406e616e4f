package generate

import "glyph-delve/internal/gamemap"

// tunnel digs a passage between (x1,y1) and (x2,y2) in the configured style.
func tunnel(gmap *gamemap.GameMap, x1, y1, x2, y2 int, cfg *Config) {
	if cfg.TunnelStyle == TunnelZShaped {
		midY := (y1 + y2) / 2
		digV(gmap, y1, midY, x1)
		digH(gmap, x1, x2, midY)
		digV(gmap, midY, y2, x2)
		return
	}
	if cfg.Rand.Intn(2) == 0 {
		digH(gmap, x1, x2, y1)
		digV(gmap, y1, y2, x2)
	} else {
		digV(gmap, y1, y2, x1)
		digH(gmap, x1, x2, y2)
	}
}

func digH(gmap *gamemap.GameMap, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		if gmap.InBounds(x, y) {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
}

func digV(gmap *gamemap.GameMap, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		if gmap.InBounds(x, y) {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
}
