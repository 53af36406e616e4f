package generate

import (
	"math/rand"

	"glyph-delve/internal/gamemap"
)

// TunnelStyle selects the shape of the tunnels that join rooms.
type TunnelStyle uint8

const (
	TunnelLShaped TunnelStyle = iota
	TunnelZShaped
)

// MonsterSpawnEntry describes one kind of monster that may be placed.
type MonsterSpawnEntry struct {
	Glyph      string
	Name       string
	MaxHP      int
	Defense    int
	Power      int
	SightRange int
	Weight     int // relative spawn chance
}

// ItemSpawnEntry describes one kind of item that may be placed.
type ItemSpawnEntry struct {
	Glyph  string
	Name   string
	Kind   uint8 // same numeric values as component.ItemKind
	Weight int
}

// Config drives procedural generation of the dungeon.
type Config struct {
	MapWidth, MapHeight int
	MinLeafSize         int
	MaxLeafSize         int
	MinRoomSize         int
	RoomPadding         int
	TunnelStyle         TunnelStyle
	MaxMonstersPerRoom  int
	MaxItemsPerRoom     int
	MonsterTable        []MonsterSpawnEntry
	ItemTable           []ItemSpawnEntry
	Rand                *rand.Rand
}

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *gamemap.Rect
}

func (l *bspLeaf) leaf() bool { return l.left == nil && l.right == nil }

// split divides the leaf into two children, returning false when it is too
// small to hold two rooms.
func (l *bspLeaf) split(cfg *Config) bool {
	if !l.leaf() {
		return false
	}
	horizontal := cfg.Rand.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		horizontal = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		horizontal = true
	}

	extent := l.H
	if !horizontal {
		extent = l.W
	}
	lo := cfg.MinLeafSize
	hi := extent - cfg.MinLeafSize
	if lo >= hi {
		return false
	}
	at := lo + cfg.Rand.Intn(hi-lo+1)

	if horizontal {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: at}
		l.right = &bspLeaf{X: l.X, Y: l.Y + at, W: l.W, H: l.H - at}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: at, H: l.H}
		l.right = &bspLeaf{X: l.X + at, Y: l.Y, W: l.W - at, H: l.H}
	}
	return true
}

// carveRooms places one room in every terminal leaf.
func (l *bspLeaf) carveRooms(gmap *gamemap.GameMap, cfg *Config) {
	if !l.leaf() {
		if l.left != nil {
			l.left.carveRooms(gmap, cfg)
		}
		if l.right != nil {
			l.right.carveRooms(gmap, cfg)
		}
		return
	}

	pad := cfg.RoomPadding
	availW := max(l.W-2*pad, cfg.MinRoomSize)
	availH := max(l.H-2*pad, cfg.MinRoomSize)
	rw := min(cfg.MinRoomSize+cfg.Rand.Intn(max(1, availW-cfg.MinRoomSize+1)), l.W-2*pad)
	rh := min(cfg.MinRoomSize+cfg.Rand.Intn(max(1, availH-cfg.MinRoomSize+1)), l.H-2*pad)

	rx := max(1, l.X+pad+cfg.Rand.Intn(max(1, l.W-rw-2*pad+1)))
	ry := max(1, l.Y+pad+cfg.Rand.Intn(max(1, l.H-rh-2*pad+1)))
	// Keep a one-tile wall border around the map.
	rw = min(rw, gmap.Width-rx-1)
	rh = min(rh, gmap.Height-ry-1)
	if rw < 3 || rh < 3 {
		return
	}

	room := gamemap.Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	l.room = &room
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	gmap.Rooms = append(gmap.Rooms, room)
}

// anyRoom returns a room from this subtree, or nil when it has none.
func (l *bspLeaf) anyRoom() *gamemap.Rect {
	if l.room != nil {
		return l.room
	}
	for _, c := range []*bspLeaf{l.left, l.right} {
		if c == nil {
			continue
		}
		if r := c.anyRoom(); r != nil {
			return r
		}
	}
	return nil
}

// connect joins the two halves of every split with a tunnel, bottom-up.
func (l *bspLeaf) connect(gmap *gamemap.GameMap, cfg *Config) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connect(gmap, cfg)
	l.right.connect(gmap, cfg)

	a, b := l.left.anyRoom(), l.right.anyRoom()
	if a == nil || b == nil {
		return
	}
	ax, ay := a.Center()
	bx, by := b.Center()
	tunnel(gmap, ax, ay, bx, by, cfg)
}

// Generate builds a dungeon and returns it with the player start position,
// the center of the first room.
func Generate(cfg *Config) (*gamemap.GameMap, int, int) {
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	root := &bspLeaf{W: cfg.MapWidth, H: cfg.MapHeight}

	leaves := []*bspLeaf{root}
	for changed := true; changed; {
		changed = false
		var next []*bspLeaf
		for _, l := range leaves {
			if !l.leaf() {
				next = append(next, l.left, l.right)
				continue
			}
			if l.W > cfg.MaxLeafSize || l.H > cfg.MaxLeafSize || cfg.Rand.Float64() > 0.25 {
				if l.split(cfg) {
					next = append(next, l.left, l.right)
					changed = true
					continue
				}
			}
			next = append(next, l)
		}
		leaves = next
	}

	root.carveRooms(gmap, cfg)
	root.connect(gmap, cfg)

	px, py := 1, 1
	if len(gmap.Rooms) > 0 {
		px, py = gmap.Rooms[0].Center()
	}
	return gmap, px, py
}
