package balloons

import (
	"github.com/vovakirdan/balloon-drive/internal/config"
	"github.com/vovakirdan/balloon-drive/internal/core"
	"github.com/vovakirdan/balloon-drive/internal/loop"
)

// Game bundles the world with its loop clock and input controls.
// Hosts keep one Game per player for the lifetime of the program or session.
type Game struct {
	world    *World
	clock    *loop.Clock
	controls Controls
	cfg      config.Config
}

// New creates a game from a validated configuration.
func New(cfg config.Config) *Game {
	g := &Game{cfg: cfg}
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "balloons"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Balloon Drive"
}

// Reset restores the starting state and forgets accumulated time.
func (g *Game) Reset() {
	g.world = NewWorld(g.cfg)
	g.clock = loop.NewClock(g.cfg.Timestep(), g.cfg.FrameGate(), g.cfg.Loop.MaxCatchUp)
	g.controls = NewControls(&g.world.Car, g.cfg.Car.MoveSpeed)
}

// Frame runs one host callback: catch-up steps followed by a render.
// timestamp is in milliseconds since the host started the game.
func (g *Game) Frame(timestamp float64, r loop.Renderer) loop.FrameStats {
	return g.clock.Frame(timestamp, g.world, r)
}

// HandleKey applies a direction key event to the car.
func (g *Game) HandleKey(ev core.KeyEvent) {
	g.controls.Handle(ev)
}

// World returns the game state for read-only use by renderers.
func (g *Game) World() *World {
	return g.world
}

// Score returns the number of balloons caught so far.
func (g *Game) Score() int {
	return g.world.Score
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.Config {
	return g.cfg
}
