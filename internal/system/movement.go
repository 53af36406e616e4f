package system

import (
	"glyph-delve/internal/component"
	"glyph-delve/internal/ecs"
	"glyph-delve/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall or out-of-bounds
	MoveAttack                    // bumped a blocking object
)

// TryMove attempts to move the object with handle id by (dx, dy) on gmap.
// Returns the outcome and, for MoveAttack, the handle of the bumped object.
func TryMove(store *ecs.Store, gmap *gamemap.GameMap, id ecs.EntityID, dx, dy int) (MoveResult, ecs.EntityID) {
	obj := store.Lookup(id)
	if obj == nil {
		return MoveBlocked, ecs.NilEntity
	}
	pos, ok := component.PositionOf(obj)
	if !ok {
		return MoveBlocked, ecs.NilEntity
	}
	nx, ny := pos.X+dx, pos.Y+dy

	// Check for blocking objects at destination.
	for _, i := range store.Query(component.CTagBlocking, component.CPosition) {
		other := store.At(i)
		if other.ID == id {
			continue
		}
		if p, _ := component.PositionOf(other); p.X == nx && p.Y == ny {
			return MoveAttack, other.ID
		}
	}

	if !gmap.IsWalkable(nx, ny) {
		return MoveBlocked, ecs.NilEntity
	}

	obj.Add(component.Position{X: nx, Y: ny})
	return MoveOK, ecs.NilEntity
}

// Blocked reports whether (x, y) is a wall or holds a blocking object.
func Blocked(store *ecs.Store, gmap *gamemap.GameMap, x, y int) bool {
	if !gmap.IsWalkable(x, y) {
		return true
	}
	for _, i := range store.Query(component.CTagBlocking, component.CPosition) {
		if p, _ := component.PositionOf(store.At(i)); p.X == x && p.Y == y {
			return true
		}
	}
	return false
}
