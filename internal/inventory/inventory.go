// Package inventory holds the objects the player carries.
package inventory

import (
	"errors"

	"glyph-delve/internal/component"
	"glyph-delve/internal/ecs"
)

// Capacity is one slot per selectable menu letter.
const Capacity = 26

// ErrFull is returned when adding to an inventory that has no free slot.
var ErrFull = errors.New("inventory is full")

// Inventory is an ordered, bounded list of carried objects. Order is the
// order of pickup and is kept stable by removals, so a menu index is an
// inventory index.
type Inventory struct {
	items    []*ecs.Object
	capacity int
}

// New returns an empty inventory with the standard capacity.
func New() *Inventory {
	return &Inventory{capacity: Capacity}
}

// Len returns the number of carried objects.
func (inv *Inventory) Len() int { return len(inv.items) }

// Capacity returns the maximum number of carried objects.
func (inv *Inventory) Capacity() int { return inv.capacity }

// Full reports whether another object would be rejected.
func (inv *Inventory) Full() bool { return len(inv.items) >= inv.capacity }

// At returns the object at index i. Panics if i is out of range.
func (inv *Inventory) At(i int) *ecs.Object { return inv.items[i] }

// Add appends o. It returns ErrFull, leaving the inventory unchanged, when
// there is no room.
func (inv *Inventory) Add(o *ecs.Object) error {
	if inv.Full() {
		return ErrFull
	}
	inv.items = append(inv.items, o)
	return nil
}

// RemoveAt removes and returns the object at index i, shifting later
// objects left by one.
func (inv *Inventory) RemoveAt(i int) *ecs.Object {
	o := inv.items[i]
	copy(inv.items[i:], inv.items[i+1:])
	inv.items[len(inv.items)-1] = nil
	inv.items = inv.items[:len(inv.items)-1]
	return o
}

// Names returns the display name of every object, in inventory order.
func (inv *Inventory) Names() []string {
	names := make([]string, len(inv.items))
	for i, o := range inv.items {
		names[i] = component.NameOf(o)
	}
	return names
}
