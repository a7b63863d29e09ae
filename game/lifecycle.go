package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/rockfield/components"
	"github.com/pthm-cable/rockfield/config"
	"github.com/pthm-cable/rockfield/renderer"
	"github.com/pthm-cable/rockfield/telemetry"
	"github.com/pthm-cable/rockfield/ui"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string  // "" = CSV output disabled
	Headless       bool
	StepsPerUpdate int
}

// Game wires the world to its collaborators: config, input polling,
// telemetry, and the wireframe renderer.
type Game struct {
	opts   Options
	params Params

	world     *World
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	wire      *renderer.Wireframe
	hud       *ui.HUD

	events    []KeyEvent
	boundKeys []components.Key

	paused         bool
	stepsPerUpdate int

	speedScratch []float64
}

// NewGameWithOptions builds a game from the loaded configuration.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}

	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}

	g := &Game{
		opts:           opts,
		params:         ParamsFromConfig(cfg),
		collector:      telemetry.NewCollector(statsWindow, cfg.Physics.TicksPerSecond),
		wire:           renderer.NewWireframe(),
		hud:            ui.NewHUD(),
		stepsPerUpdate: opts.StepsPerUpdate,
	}

	if err := g.buildWorld(cfg); err != nil {
		return nil, err
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}
	g.output = om
	if err := g.output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	return g, nil
}

// buildWorld creates a fresh world and spawns the initial roster:
// configured players plus the opening asteroids. Roster asteroids
// flagged enter_offscreen start non-wrapping until they have fully
// drifted into view.
func (g *Game) buildWorld(cfg *config.Config) error {
	g.world = NewWorld(g.params, g.opts.Seed, g.collector)

	bindings := make([]components.KeyBindings, 0, len(cfg.Players))
	for i, pc := range cfg.Players {
		b, err := BindingsFromConfig(pc.Keys.Fire, pc.Keys.Accelerate, pc.Keys.TurnLeft, pc.Keys.TurnRight)
		if err != nil {
			return fmt.Errorf("players[%d]: %w", i, err)
		}
		bindings = append(bindings, b)
		g.world.Add(NewPlayer(components.Vec2{X: pc.X, Y: pc.Y}, b))
	}
	g.collectBoundKeys(bindings)

	for _, ac := range cfg.Asteroid.Initial {
		wrap := components.WrapAlways
		if ac.EnterOffscreen {
			wrap = components.WrapOnceOnScreen
		}
		body := components.Body{
			Position: components.Vec2{X: ac.X, Y: ac.Y},
			Velocity: components.Vec2{X: ac.VelX, Y: ac.VelY},
		}
		g.world.Add(NewAsteroid(ac.Size, body, wrap, g.params, g.world.rng))
	}

	return nil
}

// Reset rebuilds the world with the original options, keeping the
// telemetry stream running.
func (g *Game) Reset() {
	if err := g.buildWorld(config.Cfg()); err != nil {
		// Bindings already resolved once; a failure here means the
		// config changed under us.
		slog.Error("failed to reset world", "error", err)
	}
	g.events = g.events[:0]
	g.paused = false
}

// Unload releases output resources.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// TickCount returns the current simulation tick.
func (g *Game) TickCount() int64 {
	return g.world.TickCount()
}
