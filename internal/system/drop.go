package system

import (
	"fmt"

	"glyph-delve/internal/component"
	"glyph-delve/internal/ecs"
	"glyph-delve/internal/feedback"
	"glyph-delve/internal/inventory"

	"github.com/gdamore/tcell/v2"
)

// Drop takes the item at inventory index invIdx out of inv and places it in
// the store at the player's feet. It returns the item's new store index.
func Drop(invIdx int, inv *inventory.Inventory, store *ecs.Store, log *feedback.Log) int {
	obj := inv.RemoveAt(invIdx)
	if _, player := store.Player(); player != nil {
		if pos, ok := component.PositionOf(player); ok {
			obj.Add(pos)
		}
	}
	idx := store.Insert(obj)
	log.Add(fmt.Sprintf("You dropped a %s.", component.NameOf(obj)), tcell.ColorYellow)
	return idx
}
