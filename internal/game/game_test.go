package game

import (
	"io"
	"log/slog"
	"testing"

	"glyph-delve/internal/component"
	"glyph-delve/internal/config"
	"glyph-delve/internal/factory"
	"glyph-delve/internal/gamemap"
	"glyph-delve/internal/inventory"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSimScreen creates an initialized simulation screen.
func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, ss.Init())
	t.Cleanup(ss.Fini)
	return ss
}

// newTestGame builds a game on an open 20×20 room with the player at (5,5)
// and no monsters.
func newTestGame(t *testing.T) (*Game, tcell.SimulationScreen) {
	t.Helper()
	ss := newSimScreen(t)
	cfg := config.Default()
	cfg.Seed = 1
	g := newGame(ss, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	g.gmap = gamemap.New(20, 20)
	for y := 1; y < 19; y++ {
		for x := 1; x < 19; x++ {
			g.gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	factory.NewPlayer(g.store, 5, 5)
	return g, ss
}

func (g *Game) playerFighter() component.Fighter {
	_, p := g.store.Player()
	return p.Get(component.CFighter).(component.Fighter)
}

func (g *Game) setPlayerHP(hp int) {
	_, p := g.store.Player()
	f := p.Get(component.CFighter).(component.Fighter)
	f.HP = hp
	p.Add(f)
}

func (g *Game) playerPos() component.Position {
	_, p := g.store.Player()
	pos, _ := component.PositionOf(p)
	return pos
}

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		name string
		key  tcell.Key
		r    rune
		want Action
	}{
		{"arrow up", tcell.KeyUp, 0, ActionMoveN},
		{"vi left", tcell.KeyRune, 'h', ActionMoveW},
		{"numpad diagonal", tcell.KeyRune, '9', ActionMoveNE},
		{"wait", tcell.KeyRune, '.', ActionWait},
		{"pickup g", tcell.KeyRune, 'g', ActionPickup},
		{"pickup comma", tcell.KeyRune, ',', ActionPickup},
		{"inventory", tcell.KeyRune, 'i', ActionInventory},
		{"drop", tcell.KeyRune, 'd', ActionDrop},
		{"quit", tcell.KeyEscape, 0, ActionQuit},
		{"unbound rune", tcell.KeyRune, 'x', ActionNone},
		{"unbound key", tcell.KeyTab, 0, ActionNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ss := newSimScreen(t)
			ss.InjectKey(tc.key, tc.r, tcell.ModNone)
			var ev *tcell.EventKey
			for ev == nil {
				ev, _ = ss.PollEvent().(*tcell.EventKey)
			}
			assert.Equal(t, tc.want, keyToAction(ev))
		})
	}
}

func TestMoveConsumesTurn(t *testing.T) {
	g, _ := newTestGame(t)
	assert.True(t, g.processAction(ActionMoveE))
	assert.Equal(t, component.Position{X: 6, Y: 5}, g.playerPos())
	assert.Equal(t, 1, g.turns)
}

func TestMoveIntoWallIsFree(t *testing.T) {
	g, _ := newTestGame(t)
	g.store.At(0).Add(component.Position{X: 1, Y: 1})
	assert.False(t, g.processAction(ActionMoveNW))
	assert.Zero(t, g.turns)
}

func TestPickupAction(t *testing.T) {
	g, _ := newTestGame(t)
	factory.NewHealingPotion(g.store, 5, 5)

	assert.True(t, g.processAction(ActionPickup))
	assert.Equal(t, []string{"healing potion"}, g.inv.Names())
	assert.Equal(t, 1, g.store.Len())

	before := g.log.Len()
	assert.False(t, g.processAction(ActionPickup), "nothing left to pick up")
	assert.Equal(t, before+1, g.log.Len())
}

func TestPickupWithFullInventoryIsFree(t *testing.T) {
	g, _ := newTestGame(t)
	for i := 0; i < inventory.Capacity; i++ {
		require.NoError(t, g.inv.Add(factory.NewHealingPotion(g.store, 0, 0)))
		g.store.SwapRemove(g.store.Len() - 1)
	}
	factory.NewHealingPotion(g.store, 5, 5)

	assert.False(t, g.processAction(ActionPickup))
	assert.Equal(t, 2, g.store.Len())
	msg, _ := g.log.Last()
	assert.Equal(t, "Your inventory is full, cannot pick up healing potion.", msg.Text)
}

func TestUseFromInventoryHeals(t *testing.T) {
	g, ss := newTestGame(t)
	require.NoError(t, g.inv.Add(factory.NewHealingPotion(g.store, 0, 0)))
	g.store.SwapRemove(1)
	g.setPlayerHP(10)

	ss.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	assert.True(t, g.processAction(ActionInventory))
	assert.Equal(t, 10+g.cfg.HealAmount, g.playerFighter().HP)
	assert.Zero(t, g.inv.Len())
}

func TestUseAtFullHealthKeepsPotionAndTurn(t *testing.T) {
	g, ss := newTestGame(t)
	require.NoError(t, g.inv.Add(factory.NewHealingPotion(g.store, 0, 0)))
	g.store.SwapRemove(1)

	ss.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	assert.False(t, g.processAction(ActionInventory))
	assert.Equal(t, 1, g.inv.Len())
	assert.Zero(t, g.turns)
	msg, _ := g.log.Last()
	assert.Equal(t, "Cancelled", msg.Text)
}

func TestInventoryCancelIsFree(t *testing.T) {
	g, ss := newTestGame(t)
	require.NoError(t, g.inv.Add(factory.NewHealingPotion(g.store, 0, 0)))
	g.store.SwapRemove(1)
	g.setPlayerHP(10)

	ss.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	assert.False(t, g.processAction(ActionInventory))
	assert.Equal(t, 1, g.inv.Len())
	assert.Equal(t, 10, g.playerFighter().HP)
}

func TestDropAction(t *testing.T) {
	g, ss := newTestGame(t)
	require.NoError(t, g.inv.Add(factory.NewHealingPotion(g.store, 0, 0)))
	g.store.SwapRemove(1)

	ss.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	assert.True(t, g.processAction(ActionDrop))
	assert.Zero(t, g.inv.Len())
	require.Equal(t, 2, g.store.Len())
	pos, ok := component.PositionOf(g.store.At(1))
	require.True(t, ok)
	assert.Equal(t, g.playerPos(), pos)
}

func TestBumpKillsMonster(t *testing.T) {
	g, _ := newTestGame(t)
	orc := factory.NewMonster(g.store, testOrc(1), 6, 5)

	assert.True(t, g.processAction(ActionMoveE))
	assert.Nil(t, g.store.Lookup(orc.ID))
	assert.Equal(t, component.Position{X: 5, Y: 5}, g.playerPos(), "attacking does not move")
	msg, _ := g.log.Last()
	assert.Equal(t, "The orc is dead!", msg.Text)
}

func TestPlayerDies(t *testing.T) {
	g, _ := newTestGame(t)
	g.setPlayerHP(1)
	factory.NewMonster(g.store, testOrc(10), 6, 5)

	g.processAction(ActionWait)
	assert.Equal(t, StateDead, g.state)
	_, p := g.store.Player()
	assert.NotNil(t, p, "the dead player stays in the store")
	msg, _ := g.log.Last()
	assert.Equal(t, "You died!", msg.Text)
}

func TestRunQuits(t *testing.T) {
	g, ss := newTestGame(t)
	ss.InjectKey(tcell.KeyRune, 'l', tcell.ModNone)
	ss.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	g.Run()
	assert.Equal(t, StateQuit, g.state)
	assert.Equal(t, 1, g.turns)
	assert.Equal(t, component.Position{X: 6, Y: 5}, g.playerPos())
}

func TestNewGeneratesPlayableDungeon(t *testing.T) {
	ss := newSimScreen(t)
	cfg := config.Default()
	cfg.Seed = 99
	g := New(ss, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, p := g.store.Player()
	require.NotNil(t, p)
	pos, _ := component.PositionOf(p)
	assert.True(t, g.gmap.IsWalkable(pos.X, pos.Y))
	for _, i := range g.store.Query(component.CAI) {
		mpos, _ := component.PositionOf(g.store.At(i))
		assert.False(t, g.gmap.Rooms[0].Contains(mpos.X, mpos.Y), "no monsters in the start room")
	}
	assert.Equal(t, 1, g.log.Len())
	assert.True(t, g.gmap.At(pos.X, pos.Y).Visible, "sight is computed before the first frame")
}

func TestSightFollowsThePlayer(t *testing.T) {
	g, _ := newTestGame(t)
	g.refreshFOV()
	require.True(t, g.gmap.At(5, 5).Visible)
	require.False(t, g.gmap.At(18, 5).Visible, "beyond the sight radius")

	for range 4 {
		require.True(t, g.processAction(ActionMoveE))
	}

	assert.True(t, g.gmap.At(18, 5).Visible)
	assert.True(t, g.gmap.At(5, 5).Explored, "the starting tile is remembered")
}
