package inventory

import (
	"glyph-delve/internal/menu"
	"glyph-delve/internal/render"
)

// EmptyText is the single, unselectable line shown for an empty inventory.
const EmptyText = "Inventory is empty."

// Menu shows the inventory's item names in a selection menu and returns the
// chosen inventory index. An empty inventory never yields a selection.
func Menu(con render.Console, inv *Inventory, header string, width int) (int, bool) {
	if inv.Len() == 0 {
		menu.Present(con, header, []string{EmptyText}, width)
		return 0, false
	}
	return menu.Present(con, header, inv.Names(), width)
}
