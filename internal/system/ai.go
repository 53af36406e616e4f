package system

import (
	"math"
	"math/rand"

	"glyph-delve/internal/component"
	"glyph-delve/internal/ecs"
	"glyph-delve/internal/gamemap"
)

// HitResult describes one monster attack on the player.
type HitResult struct {
	Attacker string // display name of the monster
	Damage   int
	Killed   bool
}

// ProcessAI runs one turn for every AI-controlled object and returns the
// attacks made against the player.
//
// Monsters are visited by handle. A removal that reorders the store mid-turn
// neither skips nor repeats anyone.
func ProcessAI(store *ecs.Store, gmap *gamemap.GameMap, rng *rand.Rand) []HitResult {
	_, player := store.Player()
	if player == nil {
		return nil
	}
	if _, ok := component.PositionOf(player); !ok {
		return nil
	}

	var hits []HitResult
	for _, id := range store.Handles(component.CAI, component.CPosition) {
		monster := store.Lookup(id)
		if monster == nil {
			continue
		}
		playerPos, _ := component.PositionOf(player)
		if hit, attacked := chaseMove(store, gmap, rng, monster, playerPos); attacked {
			hits = append(hits, hit)
		}
	}
	return hits
}

// chaseMove steps monster toward the player, attacking when the step bumps
// into them.
func chaseMove(store *ecs.Store, gmap *gamemap.GameMap, rng *rand.Rand,
	monster *ecs.Object, playerPos component.Position) (HitResult, bool) {

	ai := monster.Get(component.CAI).(component.AI)
	pos, _ := component.PositionOf(monster)
	dx := playerPos.X - pos.X
	dy := playerPos.Y - pos.Y
	if math.Sqrt(float64(dx*dx+dy*dy)) > float64(ai.SightRange) {
		return HitResult{}, false
	}

	stepX, stepY := sign(dx), sign(dy)
	steps := [][2]int{{stepX, 0}, {0, stepY}}
	if abs(dy) > abs(dx) {
		steps[0], steps[1] = steps[1], steps[0]
	}
	for _, s := range steps {
		if s[0] == 0 && s[1] == 0 {
			continue
		}
		result, target := TryMove(store, gmap, monster.ID, s[0], s[1])
		switch result {
		case MoveOK:
			return HitResult{}, false
		case MoveAttack:
			if target != store.PlayerID() {
				continue
			}
			name := component.NameOf(monster)
			res := Attack(store, rng, monster.ID, target)
			return HitResult{Attacker: name, Damage: res.Damage, Killed: res.Killed}, true
		}
	}
	return HitResult{}, false
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
