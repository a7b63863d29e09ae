// Package game owns the entity aggregate and the world tick loop.
package game

import "github.com/pthm-cable/rockfield/components"

// KeyEvent is one discrete input event delivered to the world. Down
// with Repeat set is an auto-repeat and is ignored by entities.
type KeyEvent struct {
	Key    components.Key
	Down   bool
	Repeat bool
}

// Entity aggregates kinematic state, an optional render shape, an
// optional collision hull, and the kind-specific variant payload. An
// entity may be visible but non-collidable, or the reverse.
type Entity struct {
	ID   uint64
	Body components.Body
	Wrap components.WrapBehavior

	Shape *components.Shape
	Hull  *components.Bounding

	Kind components.Kind

	// Variant payload, valid per Kind:
	Size     int                    // KindAsteroid: 1..3, halved outline per step down
	TTL      int                    // KindBullet, KindDebris: ticks remaining
	Bindings components.KeyBindings // KindPlayer
}

// HandleEvent reacts to one input event. Only players respond: key-down
// sets an intent or fires a bullet, key-up clears the matching intent.
// Returned entities are spawned by the world after the full dispatch.
func (e *Entity) HandleEvent(ev KeyEvent, p Params) []*Entity {
	if e.Kind != components.KindPlayer {
		return nil
	}

	b := e.Bindings
	if ev.Down {
		if ev.Repeat {
			return nil
		}
		switch {
		case keyMatches(ev.Key, b.Accelerate):
			e.Body.Accelerating = true
		case keyMatches(ev.Key, b.TurnLeft):
			e.Body.TurningLeft = true
		case keyMatches(ev.Key, b.TurnRight):
			e.Body.TurningRight = true
		case keyMatches(ev.Key, b.Fire):
			return []*Entity{NewBullet(e, p)}
		}
		return nil
	}

	switch {
	case keyMatches(ev.Key, b.Accelerate):
		e.Body.Accelerating = false
	case keyMatches(ev.Key, b.TurnLeft):
		e.Body.TurningLeft = false
	case keyMatches(ev.Key, b.TurnRight):
		e.Body.TurningRight = false
	}
	return nil
}

func keyMatches(k, binding components.Key) bool {
	return binding != components.KeyNone && k == binding
}

// Step advances the entity by one tick and reports whether it expired.
// TTL-bearing kinds are removed the tick their countdown would go
// negative: an entity created with TTL=T survives ticks 0..T-1.
func (e *Entity) Step(bounds components.Vec2, tun components.Tuning) (expired bool) {
	e.Body.Step(bounds, e.Wrap == components.WrapAlways, tun)

	if e.Wrap == components.WrapOnceOnScreen && e.fullyOnScreen(bounds) {
		e.Wrap = components.WrapAlways
	}

	switch e.Kind {
	case components.KindBullet, components.KindDebris:
		if e.TTL == 0 {
			return true
		}
		e.TTL--
	case components.KindAsteroid, components.KindPlayer:
	}
	return false
}

// fullyOnScreen reports whether the entity's world-space extent lies
// entirely within the screen rectangle. Entities without a hull reduce
// to their bare position.
func (e *Entity) fullyOnScreen(bounds components.Vec2) bool {
	box := components.AABB{Min: e.Body.Position, Max: e.Body.Position}
	if e.Hull != nil {
		box = e.Hull.Extent(e.Body.Rotation, e.Body.Position)
	}
	return box.Min.X >= 0 && box.Min.Y >= 0 && box.Max.X <= bounds.X && box.Max.Y <= bounds.Y
}

// WorldTriangles returns the entity's collision triangles for its
// current pose, or nil if it has no hull.
func (e *Entity) WorldTriangles() []components.Triangle {
	if e.Hull == nil {
		return nil
	}
	return e.Hull.WorldTriangles(e.Body.Rotation, e.Body.Position, nil)
}
