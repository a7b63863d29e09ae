package game

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/pthm-cable/rockfield/components"
	"github.com/pthm-cable/rockfield/systems"
	"github.com/pthm-cable/rockfield/telemetry"
)

// PlayerHitHandler receives player-involving collisions. What dies on a
// player hit is a game-rules decision the engine does not make; the
// default is to record the event and carry on.
type PlayerHitHandler func(a, b *Entity)

// World owns the live entity collection and runs one tick: input
// dispatch, per-entity stepping, collision resolution, render publish.
// Entity order carries no physical meaning but fixes the pairwise scan
// order, so resolution tie-breaks are deterministic.
type World struct {
	params    Params
	rng       *rand.Rand
	collector *telemetry.Collector

	entities []*Entity
	nextID   uint64
	tick     int64

	onPlayerHit PlayerHitHandler
}

// NewWorld creates an empty world. collector may be nil.
func NewWorld(params Params, seed int64, collector *telemetry.Collector) *World {
	return &World{
		params:    params,
		rng:       rand.New(rand.NewSource(seed)),
		collector: collector,
		nextID:    1,
	}
}

// SetPlayerHitHandler installs the extension-point hook for
// player-involving collisions.
func (w *World) SetPlayerHitHandler(h PlayerHitHandler) {
	w.onPlayerHit = h
}

// Add inserts an entity into the world, assigning its stable ID.
func (w *World) Add(e *Entity) *Entity {
	e.ID = w.nextID
	w.nextID++
	w.entities = append(w.entities, e)
	w.collector.RecordSpawn(e.Kind)
	return e
}

// Tick runs one full simulation step against the given screen bounds.
func (w *World) Tick(events []KeyEvent, bounds components.Vec2) {
	w.dispatchInput(events)
	w.stepEntities(bounds)
	w.resolveCollisions()
	w.tick++
}

// Tick number of the next step to run.
func (w *World) TickCount() int64 {
	return w.tick
}

// dispatchInput delivers every event to every live entity, then appends
// the spawned entities. New entities never see the same tick's events.
func (w *World) dispatchInput(events []KeyEvent) {
	var spawned []*Entity
	for _, ev := range events {
		for _, e := range w.entities {
			spawned = append(spawned, e.HandleEvent(ev, w.params)...)
		}
	}
	for _, e := range spawned {
		w.Add(e)
	}
}

// stepEntities advances every entity and removes the expired ones after
// the full pass.
func (w *World) stepEntities(bounds components.Vec2) {
	var expired []uint64
	for _, e := range w.entities {
		if e.Step(bounds, w.params.Tuning) {
			expired = append(expired, e.ID)
		}
	}
	w.removeByID(expired)
}

// resolveCollisions scans every unordered entity pair exactly once,
// accumulating removals and spawns as effects keyed by stable IDs, and
// applies them after the scan so iteration state stays valid.
func (w *World) resolveCollisions() {
	var removed map[uint64]bool
	var spawns []*Entity

	for i := 1; i < len(w.entities); i++ {
		for j := 0; j < i; j++ {
			a, b := w.entities[i], w.entities[j]
			if removed[a.ID] || removed[b.ID] {
				continue
			}
			if !systems.CollidesWith(a.Kind, b.Kind) {
				continue
			}
			w.collector.RecordPairCheck()
			if !systems.TrianglesCollide(a.WorldTriangles(), b.WorldTriangles()) {
				continue
			}
			w.collector.RecordCollision()

			if removed == nil {
				removed = make(map[uint64]bool)
			}
			switch {
			case a.Kind == components.KindBullet && b.Kind == components.KindAsteroid:
				spawns = w.resolveBulletAsteroid(a, b, removed, spawns)
			case a.Kind == components.KindAsteroid && b.Kind == components.KindBullet:
				spawns = w.resolveBulletAsteroid(b, a, removed, spawns)
			default:
				// One side is a player; the consequence is a rules
				// decision left to the hook.
				w.collector.RecordPlayerHit()
				slog.Debug("player collision unresolved",
					"a_id", a.ID, "a_kind", a.Kind.String(),
					"b_id", b.ID, "b_kind", b.Kind.String(),
				)
				if w.onPlayerHit != nil {
					w.onPlayerHit(a, b)
				}
			}
		}
	}

	if len(removed) > 0 {
		ids := make([]uint64, 0, len(removed))
		for id := range removed {
			ids = append(ids, id)
		}
		w.removeByID(ids)
	}
	for _, e := range spawns {
		w.Add(e)
	}
}

// resolveBulletAsteroid removes both entities, splits the asteroid into
// two smaller children when possible, and scatters debris.
func (w *World) resolveBulletAsteroid(bullet, asteroid *Entity, removed map[uint64]bool, spawns []*Entity) []*Entity {
	removed[bullet.ID] = true
	removed[asteroid.ID] = true

	if asteroid.Size > 1 {
		dir := bullet.Body.Velocity.Normalized()
		if dir == (components.Vec2{}) {
			dir = components.Heading(bullet.Body.Rotation)
		}
		perp := dir.Perp()
		for _, sign := range [2]float64{1, -1} {
			body := components.Body{
				Position: asteroid.Body.Position,
				Velocity: asteroid.Body.Velocity.Add(perp.Scale(sign * w.params.SplitImpulse)),
			}
			spawns = append(spawns, NewAsteroid(asteroid.Size-1, body, components.WrapAlways, w.params, w.rng))
		}
		w.collector.RecordSplit()
	}

	for i := 0; i < asteroid.Size*4-2; i++ {
		theta := w.rng.Float64() * 2 * math.Pi
		vel := asteroid.Body.Velocity.Add(components.Heading(theta).Scale(w.params.DebrisSpeed))
		spawns = append(spawns, NewDebris(asteroid.Body.Position, vel, w.params, w.rng))
	}

	return spawns
}

// removeByID drops the given entities from the live collection,
// preserving the order of the survivors.
func (w *World) removeByID(ids []uint64) {
	if len(ids) == 0 {
		return
	}
	drop := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := w.entities[:0]
	for _, e := range w.entities {
		if drop[e.ID] {
			w.collector.RecordRemoval(e.Kind)
			continue
		}
		kept = append(kept, e)
	}
	// Clear the tail so dropped entities are collectable.
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = kept
}

// RenderStates publishes every surviving entity's pose for the render
// collaborator.
func (w *World) RenderStates() []components.RenderState {
	out := make([]components.RenderState, 0, len(w.entities))
	for _, e := range w.entities {
		var verts []components.Vec2
		if e.Shape != nil {
			verts = e.Shape.Verts
		}
		out = append(out, components.RenderState{
			Position: e.Body.Position,
			Rotation: e.Body.Rotation,
			Verts:    verts,
			Wrap:     e.Wrap == components.WrapAlways,
		})
	}
	return out
}

// Counts returns the live entity counts by kind.
func (w *World) Counts() telemetry.KindCounts {
	var c telemetry.KindCounts
	for _, e := range w.entities {
		switch e.Kind {
		case components.KindAsteroid:
			c.Asteroids++
		case components.KindBullet:
			c.Bullets++
		case components.KindDebris:
			c.Debris++
		case components.KindPlayer:
			c.Players++
		}
	}
	return c
}

// Speeds appends every live entity's speed to dst for telemetry.
func (w *World) Speeds(dst []float64) []float64 {
	for _, e := range w.entities {
		dst = append(dst, e.Body.Velocity.Length())
	}
	return dst
}
