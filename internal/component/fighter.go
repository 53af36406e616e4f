package component

import "glyph-delve/internal/ecs"

const CFighter ecs.ComponentType = 4

// Fighter is the combat state of anything that can take or deal damage.
type Fighter struct {
	HP, MaxHP int
	Defense   int
	Power     int
}

func (Fighter) Type() ecs.ComponentType { return CFighter }

// Heal returns f with HP raised by amount, never above MaxHP.
func (f Fighter) Heal(amount int) Fighter {
	f.HP += amount
	if f.HP > f.MaxHP {
		f.HP = f.MaxHP
	}
	return f
}

// FullHealth reports whether HP is at its maximum.
func (f Fighter) FullHealth() bool { return f.HP >= f.MaxHP }

// Dead reports whether HP has dropped to zero or below.
func (f Fighter) Dead() bool { return f.HP <= 0 }
