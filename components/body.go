package components

import "math"

// Tuning holds the per-tick physics constants a Body steps with.
type Tuning struct {
	Thrust   float64 // velocity gain per tick while accelerating
	TurnRate float64 // radians per tick while exactly one turn intent is held
	Drag     float64 // isotropic velocity damping factor per tick
}

// Body holds per-entity kinematic state. It is mutated once per tick by
// its owning entity and never shared.
type Body struct {
	Position Vec2
	Velocity Vec2
	// Rotation is in radians, clockwise from north, kept in [0, 2*pi).
	Rotation float64

	HasDrag      bool
	Accelerating bool
	TurningLeft  bool
	TurningRight bool
}

// Step advances the body by one tick. The update order is fixed:
// thrust, turn, drag, translate, wrap. Reordering changes trajectories.
func (b *Body) Step(bounds Vec2, wrap bool, tun Tuning) {
	if b.Accelerating {
		b.Velocity = b.Velocity.Add(Heading(b.Rotation).Scale(tun.Thrust))
	}

	switch {
	case b.TurningLeft && !b.TurningRight:
		b.Rotation = posMod(b.Rotation+tun.TurnRate, 2*math.Pi)
	case b.TurningRight && !b.TurningLeft:
		b.Rotation = posMod(b.Rotation-tun.TurnRate, 2*math.Pi)
	}

	if b.HasDrag {
		b.Velocity = b.Velocity.Scale(tun.Drag)
	}

	b.Position = b.Position.Add(b.Velocity)
	if wrap {
		b.Position.X = posMod(b.Position.X, bounds.X)
		b.Position.Y = posMod(b.Position.Y, bounds.Y)
	}
}

// WrapBehavior controls how an entity interacts with the playfield edges.
type WrapBehavior uint8

const (
	// WrapNever leaves the position unconstrained.
	WrapNever WrapBehavior = iota
	// WrapAlways reduces the position into the screen rectangle every tick.
	WrapAlways
	// WrapOnceOnScreen behaves like WrapNever until the entity's full
	// bounding extent first fits inside the screen, then permanently
	// becomes WrapAlways. The transition is one-way.
	WrapOnceOnScreen
)
