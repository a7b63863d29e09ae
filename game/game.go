package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rockfield/components"
	"github.com/pthm-cable/rockfield/config"
	"github.com/pthm-cable/rockfield/ui"
)

// Update runs input polling plus one or more simulation steps. Called
// once per frame in graphical mode; the frame pacer is the tick clock.
func (g *Game) Update() {
	g.handleControlKeys()
	g.pollKeyEvents()

	if g.paused {
		g.events = g.events[:0]
		return
	}

	bounds := g.screenBounds()
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(bounds)
	}
}

// UpdateHeadless runs simulation steps without any input collaborator.
func (g *Game) UpdateHeadless() {
	bounds := components.Vec2{
		X: config.Cfg().Derived.ScreenW,
		Y: config.Cfg().Derived.ScreenH,
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(bounds)
	}
}

// step runs one world tick and flushes telemetry on window boundaries.
// Queued events feed the first tick of the batch only.
func (g *Game) step(bounds components.Vec2) {
	g.world.Tick(g.events, bounds)
	g.events = g.events[:0]

	if g.collector.ShouldFlush(g.world.TickCount()) {
		g.speedScratch = g.world.Speeds(g.speedScratch[:0])
		stats := g.collector.Flush(
			g.world.TickCount(),
			config.Cfg().Physics.TicksPerSecond,
			g.world.Counts(),
			g.speedScratch,
		)
		if g.opts.LogStats {
			stats.Log()
		}
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
	}
}

// screenBounds returns the current playfield extent. The window size is
// sampled every tick so wrap math follows resizes.
func (g *Game) screenBounds() components.Vec2 {
	if g.opts.Headless {
		return components.Vec2{
			X: config.Cfg().Derived.ScreenW,
			Y: config.Cfg().Derived.ScreenH,
		}
	}
	return components.Vec2{
		X: float64(rl.GetScreenWidth()),
		Y: float64(rl.GetScreenHeight()),
	}
}

// Draw renders the world and the HUD.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	bounds := g.screenBounds()
	g.wire.Draw(g.world.RenderStates(), bounds)

	counts := g.world.Counts()
	action := g.hud.Draw(ui.HUDData{
		Tick:           g.world.TickCount(),
		Asteroids:      counts.Asteroids,
		Bullets:        counts.Bullets,
		Debris:         counts.Debris,
		Players:        counts.Players,
		FPS:            rl.GetFPS(),
		Paused:         g.paused,
		StepsPerUpdate: g.stepsPerUpdate,
	})
	if action.TogglePause {
		g.paused = !g.paused
	}
	if action.Reset {
		g.Reset()
	}

	rl.EndDrawing()
}
