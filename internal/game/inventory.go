package game

import (
	"glyph-delve/internal/component"
	"glyph-delve/internal/inventory"
	"glyph-delve/internal/system"
)

const (
	useHeader  = "Press the key next to an item to use it, or any other to cancel.\n"
	dropHeader = "Press the key next to an item to drop it, or any other to cancel.\n"
)

// useFromInventory opens the inventory menu and uses the chosen item.
// Only an item that was actually used up takes a turn.
func (g *Game) useFromInventory() bool {
	idx, ok := inventory.Menu(g.con, g.inv, useHeader, g.cfg.InventoryWidth)
	if !ok {
		return false
	}
	name := component.NameOf(g.inv.At(idx))
	result := g.dispatcher.Use(idx, g.inv, g.store, g.log)
	g.logger.Debug("use item", "item", name, "result", result.String())
	return result == system.UsedUp
}

// dropFromInventory opens the inventory menu and drops the chosen item at
// the player's feet.
func (g *Game) dropFromInventory() bool {
	idx, ok := inventory.Menu(g.con, g.inv, dropHeader, g.cfg.InventoryWidth)
	if !ok {
		return false
	}
	system.Drop(idx, g.inv, g.store, g.log)
	return true
}
