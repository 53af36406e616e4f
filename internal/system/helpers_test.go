package system

import (
	"fmt"

	"glyph-delve/internal/component"
	"glyph-delve/internal/ecs"
	"glyph-delve/internal/feedback"
	"glyph-delve/internal/gamemap"
)

// openMap creates a w×h map that is entirely passable floor.
func openMap(w, h int) *gamemap.GameMap {
	gmap := gamemap.New(w, h)
	for y := range h {
		for x := range w {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	return gmap
}

// addPlayer spawns a player with the given hit points at (x, y).
func addPlayer(s *ecs.Store, x, y, hp, maxHP int) *ecs.Object {
	p := s.Spawn()
	p.Add(component.Position{X: x, Y: y})
	p.Add(component.Renderable{Glyph: "@", Name: "player"})
	p.Add(component.Fighter{HP: hp, MaxHP: maxHP, Defense: 1, Power: 3})
	p.Add(component.TagPlayer{})
	p.Add(component.TagBlocking{})
	s.SetPlayer(p.ID)
	return p
}

// addMonster spawns a chasing monster at (x, y).
func addMonster(s *ecs.Store, name string, x, y, sight int) *ecs.Object {
	m := s.Spawn()
	m.Add(component.Position{X: x, Y: y})
	m.Add(component.Renderable{Glyph: "o", Name: name})
	m.Add(component.Fighter{HP: 20, MaxHP: 20, Power: 4})
	m.Add(component.AI{SightRange: sight})
	m.Add(component.TagBlocking{})
	return m
}

// addPotion spawns a healing potion lying at (x, y).
func addPotion(s *ecs.Store, name string, x, y int) *ecs.Object {
	o := s.Spawn()
	o.Add(component.Position{X: x, Y: y})
	o.Add(component.Renderable{Glyph: "!", Name: name})
	o.Add(component.Item{Kind: component.ItemHeal})
	return o
}

// potion builds an unplaced healing potion, as found in an inventory.
func potion(name string) *ecs.Object {
	o := ecs.NewObject()
	o.Add(component.Renderable{Glyph: "!", Name: name})
	o.Add(component.Item{Kind: component.ItemHeal})
	return o
}

func potions(n int) []*ecs.Object {
	out := make([]*ecs.Object, n)
	for i := range out {
		out[i] = potion(fmt.Sprintf("potion %d", i))
	}
	return out
}

func hpOf(o *ecs.Object) int {
	return o.Get(component.CFighter).(component.Fighter).HP
}

func texts(log *feedback.Log) []string {
	var out []string
	for _, m := range log.Messages() {
		out = append(out, m.Text)
	}
	return out
}
