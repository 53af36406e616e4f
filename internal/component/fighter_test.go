package component

import (
	"testing"

	"glyph-delve/internal/ecs"

	"github.com/stretchr/testify/assert"
)

func TestFighterHeal(t *testing.T) {
	cases := []struct {
		name   string
		hp     int
		amount int
		want   int
	}{
		{"heals by amount", 10, 4, 14},
		{"clamps at max", 28, 4, 30},
		{"one below max ends exactly at max", 29, 4, 30},
		{"already full stays full", 30, 4, 30},
		{"zero amount is a no-op", 12, 0, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := Fighter{HP: tc.hp, MaxHP: 30}
			got := f.Heal(tc.amount)
			assert.Equal(t, tc.want, got.HP)
			assert.Equal(t, 30, got.MaxHP)
			assert.Equal(t, tc.hp, f.HP, "Heal must not mutate the receiver")
		})
	}
}

func TestFighterStates(t *testing.T) {
	assert.True(t, Fighter{HP: 5, MaxHP: 5}.FullHealth())
	assert.False(t, Fighter{HP: 4, MaxHP: 5}.FullHealth())
	assert.True(t, Fighter{HP: 0, MaxHP: 5}.Dead())
	assert.True(t, Fighter{HP: -2, MaxHP: 5}.Dead())
	assert.False(t, Fighter{HP: 1, MaxHP: 5}.Dead())
}

func TestNameOf(t *testing.T) {
	o := ecs.NewObject()
	assert.Equal(t, "thing", NameOf(o))

	o.Add(Renderable{Glyph: "🧪"})
	assert.Equal(t, "🧪", NameOf(o), "falls back to the glyph")

	o.Add(Renderable{Glyph: "🧪", Name: "healing potion"})
	assert.Equal(t, "healing potion", NameOf(o))
}

func TestItemKindString(t *testing.T) {
	assert.Equal(t, "heal", ItemHeal.String())
	assert.Equal(t, "unknown", ItemKind(200).String())
}
