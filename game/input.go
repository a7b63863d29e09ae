package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rockfield/components"
)

// handleControlKeys processes keys that steer the loop rather than the
// simulation.
func (g *Game) handleControlKeys() {
	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}
}

// pollKeyEvents translates raylib key edges on the bound keys into the
// discrete events the world consumes.
func (g *Game) pollKeyEvents() {
	for _, k := range g.boundKeys {
		if rl.IsKeyPressed(int32(k)) {
			g.events = append(g.events, KeyEvent{Key: k, Down: true})
		}
		if rl.IsKeyReleased(int32(k)) {
			g.events = append(g.events, KeyEvent{Key: k, Down: false})
		}
	}
}

// collectBoundKeys gathers the distinct keys any player binds, so input
// polling only touches keys the simulation cares about.
func (g *Game) collectBoundKeys(bindings []components.KeyBindings) {
	seen := make(map[components.Key]bool)
	g.boundKeys = g.boundKeys[:0]
	for _, b := range bindings {
		for _, k := range [4]components.Key{b.Fire, b.Accelerate, b.TurnLeft, b.TurnRight} {
			if k == components.KeyNone || seen[k] {
				continue
			}
			seen[k] = true
			g.boundKeys = append(g.boundKeys, k)
		}
	}
}
