package generate

import (
	"glyph-delve/internal/gamemap"
)

// MonsterSpawn is one monster to create at (X, Y).
type MonsterSpawn struct {
	Entry MonsterSpawnEntry
	X, Y  int
}

// ItemSpawn is one item to create at (X, Y).
type ItemSpawn struct {
	Entry ItemSpawnEntry
	X, Y  int
}

// PopulateResult lists the spawn points chosen by Populate.
type PopulateResult struct {
	Monsters []MonsterSpawn
	Items    []ItemSpawn
}

// Populate chooses monster and item spawn points. Monsters never appear in
// the first room (the player start); items may. No two spawns share a tile
// and nothing is placed on the player start.
func Populate(gmap *gamemap.GameMap, cfg *Config, startX, startY int) PopulateResult {
	var result PopulateResult
	occupied := map[[2]int]bool{{startX, startY}: true}

	for i, room := range gmap.Rooms {
		if i > 0 && len(cfg.MonsterTable) > 0 && cfg.MaxMonstersPerRoom > 0 {
			n := cfg.Rand.Intn(cfg.MaxMonstersPerRoom + 1)
			for range n {
				x, y, ok := pickFree(room, cfg, occupied)
				if !ok {
					break
				}
				entry := cfg.MonsterTable[weightedIndex(cfg, monsterWeights(cfg.MonsterTable))]
				result.Monsters = append(result.Monsters, MonsterSpawn{Entry: entry, X: x, Y: y})
			}
		}
		if len(cfg.ItemTable) > 0 && cfg.MaxItemsPerRoom > 0 {
			n := cfg.Rand.Intn(cfg.MaxItemsPerRoom + 1)
			for range n {
				x, y, ok := pickFree(room, cfg, occupied)
				if !ok {
					break
				}
				entry := cfg.ItemTable[weightedIndex(cfg, itemWeights(cfg.ItemTable))]
				result.Items = append(result.Items, ItemSpawn{Entry: entry, X: x, Y: y})
			}
		}
	}
	return result
}

func monsterWeights(table []MonsterSpawnEntry) []int {
	w := make([]int, len(table))
	for i, e := range table {
		w[i] = e.Weight
	}
	return w
}

func itemWeights(table []ItemSpawnEntry) []int {
	w := make([]int, len(table))
	for i, e := range table {
		w[i] = e.Weight
	}
	return w
}

// weightedIndex picks an index with probability proportional to its weight.
// Non-positive weights count as 1.
func weightedIndex(cfg *Config, weights []int) int {
	total := 0
	for _, w := range weights {
		total += max(1, w)
	}
	roll := cfg.Rand.Intn(total)
	for i, w := range weights {
		roll -= max(1, w)
		if roll < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// pickFree tries a few random tiles in room and claims the first free one.
func pickFree(room gamemap.Rect, cfg *Config, occupied map[[2]int]bool) (int, int, bool) {
	const attempts = 20
	for range attempts {
		x := room.X1 + cfg.Rand.Intn(room.X2-room.X1+1)
		y := room.Y1 + cfg.Rand.Intn(room.Y2-room.Y1+1)
		if !occupied[[2]int{x, y}] {
			occupied[[2]int{x, y}] = true
			return x, y, true
		}
	}
	return 0, 0, false
}
