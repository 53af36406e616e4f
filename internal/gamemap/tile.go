package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
)

// Tile is one map cell and what the player knows about it.
type Tile struct {
	Kind        TileKind
	Walkable    bool
	Transparent bool
	Explored    bool // seen at least once
	Visible     bool // in the player's field of view this turn
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true, Transparent: true}
}
