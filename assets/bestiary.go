package assets

import "glyph-delve/internal/generate"

// Glyphs drawn on the map. Every glyph is a double-width emoji.
const (
	GlyphPlayer  = "🧙"
	GlyphOrc     = "👹"
	GlyphTroll   = "🧌"
	GlyphPotion  = "🧪"
	GlyphCorpse  = "💀"
	GlyphWall    = "🧱"
	GlyphFloor   = "·"
	GlyphUnknown = "❔"
)

// Player starting stats.
const (
	PlayerMaxHP   = 30
	PlayerDefense = 2
	PlayerPower   = 5
)

// MonsterTable lists the monsters that roam the dungeon.
var MonsterTable = []generate.MonsterSpawnEntry{
	{Glyph: GlyphOrc, Name: "orc", MaxHP: 10, Defense: 0, Power: 3, SightRange: 8, Weight: 80},
	{Glyph: GlyphTroll, Name: "troll", MaxHP: 16, Defense: 1, Power: 4, SightRange: 8, Weight: 20},
}

// ItemTable lists the items lying around the dungeon.
var ItemTable = []generate.ItemSpawnEntry{
	{Glyph: GlyphPotion, Name: "healing potion", Kind: 0, Weight: 1},
}
