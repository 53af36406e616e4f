package generate

import (
	"math/rand"
	"testing"

	"glyph-delve/internal/gamemap"

	"github.com/stretchr/testify/assert"
)

// makeRoomedMap builds a GameMap with the given number of 7x7 rooms.
func makeRoomedMap(rooms int) *gamemap.GameMap {
	gmap := gamemap.New(80, 40)
	for i := range rooms {
		x := 2 + i*10
		r := gamemap.Rect{X1: x, Y1: 2, X2: x + 6, Y2: 8}
		gmap.Rooms = append(gmap.Rooms, r)
		for y := r.Y1; y <= r.Y2; y++ {
			for rx := r.X1; rx <= r.X2; rx++ {
				gmap.Set(rx, y, gamemap.MakeFloor())
			}
		}
	}
	return gmap
}

func populateConfig(seed int64) *Config {
	return &Config{
		MaxMonstersPerRoom: 3,
		MaxItemsPerRoom:    2,
		MonsterTable: []MonsterSpawnEntry{
			{Glyph: "👹", Name: "orc", MaxHP: 10, Power: 3, Weight: 80},
			{Glyph: "🧌", Name: "troll", MaxHP: 16, Defense: 1, Power: 4, Weight: 20},
		},
		ItemTable: []ItemSpawnEntry{{Glyph: "🧪", Name: "healing potion", Weight: 1}},
		Rand:      rand.New(rand.NewSource(seed)),
	}
}

func TestPopulateSkipsStartRoomForMonsters(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		gmap := makeRoomedMap(4)
		sx, sy := gmap.Rooms[0].Center()
		res := Populate(gmap, populateConfig(seed), sx, sy)
		for _, m := range res.Monsters {
			assert.False(t, gmap.Rooms[0].Contains(m.X, m.Y),
				"seed=%d: monster %s spawned in the start room at (%d,%d)", seed, m.Entry.Name, m.X, m.Y)
		}
	}
}

func TestPopulateRespectsPerRoomLimits(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		gmap := makeRoomedMap(5)
		cfg := populateConfig(seed)
		res := Populate(gmap, cfg, 0, 0)
		for i, room := range gmap.Rooms {
			monsters, items := 0, 0
			for _, m := range res.Monsters {
				if room.Contains(m.X, m.Y) {
					monsters++
				}
			}
			for _, it := range res.Items {
				if room.Contains(it.X, it.Y) {
					items++
				}
			}
			assert.LessOrEqual(t, monsters, cfg.MaxMonstersPerRoom, "seed=%d room=%d", seed, i)
			assert.LessOrEqual(t, items, cfg.MaxItemsPerRoom, "seed=%d room=%d", seed, i)
		}
	}
}

func TestPopulateNoSharedTiles(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		gmap := makeRoomedMap(5)
		sx, sy := gmap.Rooms[0].Center()
		res := Populate(gmap, populateConfig(seed), sx, sy)

		seen := map[[2]int]bool{{sx, sy}: true}
		check := func(x, y int) {
			assert.False(t, seen[[2]int{x, y}], "seed=%d: tile (%d,%d) used twice", seed, x, y)
			seen[[2]int{x, y}] = true
		}
		for _, m := range res.Monsters {
			check(m.X, m.Y)
		}
		for _, it := range res.Items {
			check(it.X, it.Y)
		}
	}
}

func TestPopulateEmptyTables(t *testing.T) {
	gmap := makeRoomedMap(3)
	cfg := &Config{MaxMonstersPerRoom: 3, MaxItemsPerRoom: 2, Rand: rand.New(rand.NewSource(1))}
	res := Populate(gmap, cfg, 0, 0)
	assert.Empty(t, res.Monsters)
	assert.Empty(t, res.Items)
}

func TestWeightedIndex(t *testing.T) {
	cfg := &Config{Rand: rand.New(rand.NewSource(3))}
	counts := make([]int, 2)
	for range 1000 {
		counts[weightedIndex(cfg, []int{80, 20})]++
	}
	assert.Greater(t, counts[0], counts[1], "heavier entry is picked more often")
	assert.Equal(t, 0, weightedIndex(cfg, []int{0}))
}
