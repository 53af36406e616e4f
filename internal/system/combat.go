package system

import (
	"math/rand"

	"glyph-delve/internal/component"
	"glyph-delve/internal/ecs"
)

// AttackResult holds the outcome of one attack.
type AttackResult struct {
	Damage int
	Killed bool
}

// Attack resolves one attack from attacker against defender.
// Damage formula: max(1, power-defense) + rand.Intn(3).
// A defender other than the player is removed from the store when its HP
// drops to ≤ 0; the player stays so the game can end the run.
func Attack(store *ecs.Store, rng *rand.Rand, attackerID, defenderID ecs.EntityID) AttackResult {
	attacker := store.Lookup(attackerID)
	defIdx, ok := store.IndexOf(defenderID)
	if attacker == nil || !ok {
		return AttackResult{}
	}
	defender := store.At(defIdx)

	atkComp := attacker.Get(component.CFighter)
	defComp := defender.Get(component.CFighter)
	if atkComp == nil || defComp == nil {
		return AttackResult{}
	}
	atk := atkComp.(component.Fighter)
	def := defComp.(component.Fighter)

	base := atk.Power - def.Defense
	if base < 1 {
		base = 1
	}
	dmg := base + rng.Intn(3)

	def.HP -= dmg
	defender.Add(def)

	result := AttackResult{Damage: dmg}
	if def.Dead() {
		result.Killed = true
		if defenderID != store.PlayerID() {
			store.SwapRemove(defIdx)
		}
	}
	return result
}
