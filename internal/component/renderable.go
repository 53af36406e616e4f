package component

import (
	"glyph-delve/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 3

// Renderable holds everything needed to draw and name an object.
type Renderable struct {
	Glyph       string
	Name        string
	FGColor     tcell.Color
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }

// NameOf returns the display name of o, falling back to its glyph.
func NameOf(o *ecs.Object) string {
	c := o.Get(CRenderable)
	if c == nil {
		return "thing"
	}
	r := c.(Renderable)
	if r.Name == "" {
		return r.Glyph
	}
	return r.Name
}

// PositionOf returns o's position and whether it has one.
func PositionOf(o *ecs.Object) (Position, bool) {
	c := o.Get(CPosition)
	if c == nil {
		return Position{}, false
	}
	return c.(Position), true
}
