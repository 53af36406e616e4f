// Package game runs the turn loop. Everything happens on one goroutine and
// the only blocking point is waiting for a key.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"glyph-delve/assets"
	"glyph-delve/internal/component"
	"glyph-delve/internal/config"
	"glyph-delve/internal/ecs"
	"glyph-delve/internal/factory"
	"glyph-delve/internal/feedback"
	"glyph-delve/internal/gamemap"
	"glyph-delve/internal/generate"
	"glyph-delve/internal/inventory"
	"glyph-delve/internal/render"
	"glyph-delve/internal/system"

	"github.com/gdamore/tcell/v2"
)

// State tracks the main state machine.
type State uint8

const (
	StatePlaying State = iota
	StateDead
	StateQuit
)

// Game is the top-level orchestrator.
type Game struct {
	con        render.Console
	cfg        *config.Config
	logger     *slog.Logger
	rng        *rand.Rand
	seed       int64
	store      *ecs.Store
	gmap       *gamemap.GameMap
	inv        *inventory.Inventory
	log        *feedback.Log
	dispatcher *system.Dispatcher
	renderer   *render.Renderer
	state      State
	turns      int
}

// New creates a game on con and generates the dungeon.
func New(con render.Console, cfg *config.Config, logger *slog.Logger) *Game {
	g := newGame(con, cfg, logger)
	g.generateWorld()
	return g
}

// newGame wires everything except the dungeon itself.
func newGame(con render.Console, cfg *config.Config, logger *slog.Logger) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		con:        con,
		cfg:        cfg,
		logger:     logger,
		rng:        rand.New(rand.NewSource(seed)),
		seed:       seed,
		store:      ecs.NewStore(),
		inv:        inventory.New(),
		log:        feedback.NewLog(logger),
		dispatcher: system.NewDispatcher(cfg.HealAmount),
		renderer:   render.NewRenderer(con),
	}
}

func (g *Game) generateWorld() {
	gcfg := &generate.Config{
		MapWidth:           g.cfg.MapWidth,
		MapHeight:          g.cfg.MapHeight,
		MinLeafSize:        8,
		MaxLeafSize:        20,
		MinRoomSize:        4,
		RoomPadding:        1,
		TunnelStyle:        generate.TunnelStyle(g.rng.Intn(2)),
		MaxMonstersPerRoom: g.cfg.MaxMonstersPerRoom,
		MaxItemsPerRoom:    g.cfg.MaxItemsPerRoom,
		MonsterTable:       assets.MonsterTable,
		ItemTable:          assets.ItemTable,
		Rand:               g.rng,
	}
	gmap, px, py := generate.Generate(gcfg)
	g.gmap = gmap
	factory.NewPlayer(g.store, px, py)
	factory.Populate(g.store, generate.Populate(gmap, gcfg, px, py))
	g.refreshFOV()

	g.logger.Info("dungeon generated",
		"seed", g.seed,
		"rooms", len(gmap.Rooms),
		"objects", g.store.Len(),
	)
	g.log.Add("Welcome, stranger! Prepare to perish in the Tombs of the Ancient Kings.", tcell.ColorRed)
}

// Run plays until the player quits or dies.
func (g *Game) Run() {
	for g.state == StatePlaying {
		g.draw()
		ev := render.WaitForKeypress(g.con, g.draw)
		if ev == nil {
			return
		}
		g.processAction(keyToAction(ev))
	}
	if g.state == StateDead {
		g.showDeathScreen()
	}
	g.logger.Info("run ended", "turns", g.turns, "dead", g.state == StateDead)
}

func (g *Game) draw() {
	g.renderer.Resize()
	g.renderer.DrawFrame(g.store, g.gmap, g.log)
}

// processAction handles one player action and lets the monsters act when it
// consumed a turn. It reports whether a turn was consumed.
func (g *Game) processAction(action Action) bool {
	turnUsed := false

	switch action {
	case ActionQuit:
		g.state = StateQuit
		return false
	case ActionWait:
		turnUsed = true
	case ActionPickup:
		turnUsed = g.tryPickup()
	case ActionInventory:
		turnUsed = g.useFromInventory()
	case ActionDrop:
		turnUsed = g.dropFromInventory()
	default:
		dx, dy := actionToDelta(action)
		if dx != 0 || dy != 0 {
			turnUsed = g.moveOrAttack(dx, dy)
		}
	}

	if turnUsed {
		g.turns++
		g.monstersAct()
		g.refreshFOV()
	}
	return turnUsed
}

func (g *Game) refreshFOV() {
	system.UpdateFOV(g.store, g.gmap, g.cfg.FOVRadius)
}

func (g *Game) moveOrAttack(dx, dy int) bool {
	result, target := system.TryMove(g.store, g.gmap, g.store.PlayerID(), dx, dy)
	switch result {
	case system.MoveOK:
		return true
	case system.MoveAttack:
		// Capture the name before Attack, which may remove the target.
		name := g.nameOf(target)
		res := system.Attack(g.store, g.rng, g.store.PlayerID(), target)
		if res.Killed {
			g.log.Add(fmt.Sprintf("The %s is dead!", name), tcell.ColorOrange)
		} else {
			g.log.Add(fmt.Sprintf("You hit the %s for %d hit points.", name, res.Damage), tcell.ColorWhite)
		}
		return true
	}
	return false
}

func (g *Game) monstersAct() {
	for _, h := range system.ProcessAI(g.store, g.gmap, g.rng) {
		g.log.Add(fmt.Sprintf("The %s hits you for %d hit points.", h.Attacker, h.Damage), tcell.ColorWhite)
		if h.Killed {
			g.log.Add("You died!", tcell.ColorRed)
			g.state = StateDead
			return
		}
	}
}

// tryPickup picks up the item under the player. Only a successful pickup
// takes a turn.
func (g *Game) tryPickup() bool {
	_, player := g.store.Player()
	pos, _ := component.PositionOf(player)
	idx, ok := system.ItemAt(g.store, pos.X, pos.Y)
	if !ok {
		g.log.Add("There is nothing here to pick up.", tcell.ColorGray)
		return false
	}
	if err := system.Pickup(g.store, idx, g.inv, g.log); err != nil {
		g.logger.Debug("pickup failed", "error", err)
		return false
	}
	return true
}

func (g *Game) nameOf(id ecs.EntityID) string {
	if o := g.store.Lookup(id); o != nil {
		return component.NameOf(o)
	}
	return "thing"
}

func (g *Game) showDeathScreen() {
	g.draw()
	w, h := g.con.Size()
	msg := "You died! Press any key to leave the dungeon."
	render.DrawText(g.con, max(0, w/2-len(msg)/2), h/2, msg,
		tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack))
	render.WaitForKeypress(g.con, nil)
}
