package game

import "glyph-delve/internal/generate"

// testOrc returns a monster entry with the given HP and overwhelming power.
func testOrc(hp int) generate.MonsterSpawnEntry {
	return generate.MonsterSpawnEntry{Glyph: "o", Name: "orc", MaxHP: hp, Power: 50, SightRange: 8}
}
