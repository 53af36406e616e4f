package factory

import (
	"glyph-delve/assets"
	"glyph-delve/internal/component"
	"glyph-delve/internal/ecs"
	"glyph-delve/internal/generate"

	"github.com/gdamore/tcell/v2"
)

// NewPlayer spawns the player at (x, y) and marks it as the store's player.
func NewPlayer(s *ecs.Store, x, y int) *ecs.Object {
	o := s.Spawn()
	o.Add(component.Position{X: x, Y: y})
	o.Add(component.Renderable{
		Glyph:       assets.GlyphPlayer,
		Name:        "player",
		FGColor:     tcell.ColorYellow,
		RenderOrder: 10,
	})
	o.Add(component.Fighter{
		HP:      assets.PlayerMaxHP,
		MaxHP:   assets.PlayerMaxHP,
		Defense: assets.PlayerDefense,
		Power:   assets.PlayerPower,
	})
	o.Add(component.TagPlayer{})
	o.Add(component.TagBlocking{})
	s.SetPlayer(o.ID)
	return o
}

// NewMonster spawns a monster from a spawn entry.
func NewMonster(s *ecs.Store, entry generate.MonsterSpawnEntry, x, y int) *ecs.Object {
	o := s.Spawn()
	o.Add(component.Position{X: x, Y: y})
	o.Add(component.Renderable{
		Glyph:       entry.Glyph,
		Name:        entry.Name,
		FGColor:     tcell.ColorRed,
		RenderOrder: 5,
	})
	o.Add(component.Fighter{
		HP:      entry.MaxHP,
		MaxHP:   entry.MaxHP,
		Defense: entry.Defense,
		Power:   entry.Power,
	})
	o.Add(component.AI{SightRange: entry.SightRange})
	o.Add(component.TagBlocking{})
	return o
}

// NewItem spawns an item from a spawn entry.
func NewItem(s *ecs.Store, entry generate.ItemSpawnEntry, x, y int) *ecs.Object {
	o := s.Spawn()
	o.Add(component.Position{X: x, Y: y})
	o.Add(component.Renderable{
		Glyph:       entry.Glyph,
		Name:        entry.Name,
		FGColor:     tcell.ColorGreen,
		RenderOrder: 2,
	})
	o.Add(component.Item{Kind: component.ItemKind(entry.Kind)})
	return o
}

// NewHealingPotion spawns a healing potion at (x, y).
func NewHealingPotion(s *ecs.Store, x, y int) *ecs.Object {
	return NewItem(s, generate.ItemSpawnEntry{
		Glyph: assets.GlyphPotion,
		Name:  "healing potion",
		Kind:  uint8(component.ItemHeal),
	}, x, y)
}

// Populate spawns every monster and item chosen by generate.Populate.
func Populate(s *ecs.Store, res generate.PopulateResult) {
	for _, m := range res.Monsters {
		NewMonster(s, m.Entry, m.X, m.Y)
	}
	for _, it := range res.Items {
		NewItem(s, it.Entry, it.X, it.Y)
	}
}
