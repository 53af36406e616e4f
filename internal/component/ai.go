package component

import "glyph-delve/internal/ecs"

const CAI ecs.ComponentType = 5

// AI marks a monster that chases the player once it is within SightRange.
type AI struct {
	SightRange int
}

func (AI) Type() ecs.ComponentType { return CAI }
