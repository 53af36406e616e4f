package system

import (
	"fmt"

	"glyph-delve/internal/component"
	"glyph-delve/internal/ecs"
	"glyph-delve/internal/feedback"
	"glyph-delve/internal/inventory"

	"github.com/gdamore/tcell/v2"
)

// UseResult is what an effect reports after an attempt to use an item.
type UseResult uint8

const (
	UsedUp    UseResult = iota // applied; the item is consumed
	Cancelled                  // declined; the item stays in the inventory
)

func (r UseResult) String() string {
	switch r {
	case UsedUp:
		return "used up"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("UseResult(%d)", uint8(r))
}

// Effect applies an item's behavior. invIdx is the item's inventory index,
// valid for the duration of the call.
type Effect func(invIdx int, store *ecs.Store, log *feedback.Log) UseResult

// Dispatcher maps item kinds to their effects.
type Dispatcher struct {
	effects map[component.ItemKind]Effect
}

// NewDispatcher returns a dispatcher with every built-in effect registered.
func NewDispatcher(healAmount int) *Dispatcher {
	d := &Dispatcher{effects: make(map[component.ItemKind]Effect)}
	d.Register(component.ItemHeal, HealEffect(healAmount))
	return d
}

// Register binds kind to effect, replacing any previous binding.
func (d *Dispatcher) Register(kind component.ItemKind, effect Effect) {
	d.effects[kind] = effect
}

// Effect returns the effect bound to kind.
func (d *Dispatcher) Effect(kind component.ItemKind) (Effect, bool) {
	e, ok := d.effects[kind]
	return e, ok
}

// Use applies the item at inventory index invIdx. A used-up item is removed
// from inv; a declined one stays where it is. Objects without an item tag
// (or with a kind nothing is registered for) are reported as unusable and
// yield Cancelled.
func (d *Dispatcher) Use(invIdx int, inv *inventory.Inventory, store *ecs.Store, log *feedback.Log) UseResult {
	obj := inv.At(invIdx)
	c := obj.Get(component.CItem)
	if c == nil {
		log.Add(fmt.Sprintf("The %s cannot be used.", component.NameOf(obj)), tcell.ColorWhite)
		return Cancelled
	}
	effect, ok := d.effects[c.(component.Item).Kind]
	if !ok {
		log.Add(fmt.Sprintf("The %s cannot be used.", component.NameOf(obj)), tcell.ColorWhite)
		return Cancelled
	}

	result := effect(invIdx, store, log)
	switch result {
	case UsedUp:
		inv.RemoveAt(invIdx)
	case Cancelled:
		log.Add("Cancelled", tcell.ColorWhite)
	}
	return result
}
