package game

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pthm-cable/rockfield/components"
)

// Fixed templates shared read-only across all instances. The bullet
// hull is an explicit two-triangle split of the quad: a fan anchored at
// the visual center would not cover the rectangle.
var (
	shipShape   = components.NewShape(components.ShipVerts)
	shipHull    = components.CyclicTriangles(components.ShipVerts)
	bulletShape = components.NewShape(components.BulletVerts)
	bulletHull  = components.ExplicitTriangles([]components.Triangle{
		{components.BulletVerts[0], components.BulletVerts[1], components.BulletVerts[2]},
		{components.BulletVerts[0], components.BulletVerts[2], components.BulletVerts[3]},
	})
)

// NewPlayer creates a drag-enabled ship at the given position.
func NewPlayer(position components.Vec2, bindings components.KeyBindings) *Entity {
	return &Entity{
		Body: components.Body{
			Position: position,
			HasDrag:  true,
		},
		Wrap:     components.WrapAlways,
		Shape:    &shipShape,
		Hull:     &shipHull,
		Kind:     components.KindPlayer,
		Bindings: bindings,
	}
}

// NewBullet creates a bullet ahead of the firer, inheriting its
// velocity plus muzzle speed along the firer's heading.
func NewBullet(firer *Entity, p Params) *Entity {
	dir := components.Heading(firer.Body.Rotation)
	return &Entity{
		Body: components.Body{
			Position: firer.Body.Position.Add(dir.Scale(p.BulletMuzzleOffset)),
			Velocity: firer.Body.Velocity.Add(dir.Scale(p.BulletSpeed)),
			Rotation: firer.Body.Rotation,
		},
		Wrap:  components.WrapAlways,
		Shape: &bulletShape,
		Hull:  &bulletHull,
		Kind:  components.KindBullet,
		TTL:   p.BulletTTL,
	}
}

// NewAsteroid creates an asteroid with a procedural outline for the
// given size. The same vertex loop backs both the render shape and the
// collision fan. Size outside 1..3 is a programmer error.
func NewAsteroid(size int, body components.Body, wrap components.WrapBehavior, p Params, rng *rand.Rand) *Entity {
	if size < 1 || size > 3 {
		panic(fmt.Sprintf("game: asteroid size must be in 1..3, got %d", size))
	}
	sp := p.AsteroidSizes[size-1]
	verts := components.RandomLoop(rng, sp.Verts, sp.MinRadius, sp.MaxRadius)
	shape := components.NewShape(verts)
	hull := components.CyclicTriangles(verts)
	return &Entity{
		Body:  body,
		Wrap:  wrap,
		Shape: &shape,
		Hull:  &hull,
		Kind:  components.KindAsteroid,
		Size:  size,
	}
}

// NewDebris creates a short-lived cosmetic sliver. Debris never
// collides, so it carries no hull.
func NewDebris(position, velocity components.Vec2, p Params, rng *rand.Rand) *Entity {
	verts := components.RandomLoop(rng, p.DebrisVerts, p.DebrisMinRadius, p.DebrisMaxRadius)
	shape := components.NewShape(verts)
	return &Entity{
		Body: components.Body{
			Position: position,
			Velocity: velocity,
			Rotation: rng.Float64() * 2 * math.Pi,
		},
		Wrap:  components.WrapAlways,
		Shape: &shape,
		Kind:  components.KindDebris,
		TTL:   p.DebrisTTL,
	}
}
