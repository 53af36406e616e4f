package component

import "glyph-delve/internal/ecs"

// ItemKind identifies what an item does when used. Effects are looked up by
// kind; the kind itself carries no data.
type ItemKind uint8

const (
	ItemHeal ItemKind = iota
)

func (k ItemKind) String() string {
	switch k {
	case ItemHeal:
		return "heal"
	}
	return "unknown"
}

// CItem marks an object as a pickable item.
const CItem ecs.ComponentType = 13

// Item is the item tag. Objects without it can sit in an inventory but
// cannot be used.
type Item struct {
	Kind ItemKind
}

func (Item) Type() ecs.ComponentType { return CItem }
