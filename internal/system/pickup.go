package system

import (
	"errors"
	"fmt"

	"glyph-delve/internal/component"
	"glyph-delve/internal/ecs"
	"glyph-delve/internal/feedback"
	"glyph-delve/internal/inventory"

	"github.com/gdamore/tcell/v2"
)

// ErrNotPickable is returned when Pickup is pointed at the player or at an
// object without an item tag.
var ErrNotPickable = errors.New("object cannot be picked up")

// ItemAt returns the store index of an item lying at (x, y).
func ItemAt(store *ecs.Store, x, y int) (int, bool) {
	for _, i := range store.Query(component.CItem, component.CPosition) {
		pos := store.At(i).Get(component.CPosition).(component.Position)
		if pos.X == x && pos.Y == y {
			return i, true
		}
	}
	return -1, false
}

// Pickup moves the object at store index idx into inv.
//
// When inv is full Pickup narrates it and returns inventory.ErrFull without
// changing anything. On success the object is swap-removed from
// the store, so any other store index held by the caller may now be stale.
func Pickup(store *ecs.Store, idx int, inv *inventory.Inventory, log *feedback.Log) error {
	obj := store.At(idx)
	if obj.ID == store.PlayerID() || !obj.Has(component.CItem) {
		return ErrNotPickable
	}
	name := component.NameOf(obj)

	if err := inv.Add(obj); err != nil {
		log.Add(fmt.Sprintf("Your inventory is full, cannot pick up %s.", name), tcell.ColorRed)
		return err
	}
	store.SwapRemove(idx)
	obj.Remove(component.CPosition)
	log.Add(fmt.Sprintf("You picked up a %s!", name), tcell.ColorGreen)
	return nil
}
