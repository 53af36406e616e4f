package system

import (
	"glyph-delve/internal/component"
	"glyph-delve/internal/ecs"
	"glyph-delve/internal/feedback"

	"github.com/gdamore/tcell/v2"
)

// DefaultHealAmount is how many hit points a healing potion restores.
const DefaultHealAmount = 4

// HealEffect returns an effect that restores amount hit points to the player.
// Healing at full health is declined so the potion is not wasted.
func HealEffect(amount int) Effect {
	return func(_ int, store *ecs.Store, log *feedback.Log) UseResult {
		_, player := store.Player()
		if player == nil {
			return Cancelled
		}
		c := player.Get(component.CFighter)
		if c == nil {
			return Cancelled
		}
		f := c.(component.Fighter)
		if f.FullHealth() {
			log.Add("You are already at full health.", tcell.ColorRed)
			return Cancelled
		}
		log.Add("Your wounds start to feel better!", tcell.ColorViolet)
		player.Add(f.Heal(amount))
		return UsedUp
	}
}
