package components

import (
	"fmt"
	"math"
	"math/rand"
)

// Shape is an ordered, cyclic sequence of local-space vertex offsets
// forming a closed polygon loop. Fixed templates (ship, bullet) are
// shared read-only by every instance; procedurally generated loops
// (asteroid, debris) are owned by the entity that created them and
// never mutated after construction.
type Shape struct {
	Verts []Vec2
}

// NewShape wraps a vertex loop. Fewer than 3 vertices is a programmer
// error and panics.
func NewShape(verts []Vec2) Shape {
	if len(verts) < 3 {
		panic(fmt.Sprintf("components: shape needs at least 3 vertices, got %d", len(verts)))
	}
	return Shape{Verts: verts}
}

// Fixed vertex templates, shared read-only across all instances.
var (
	// ShipVerts outlines the classic arrowhead with a notched tail.
	ShipVerts = []Vec2{
		{X: 0, Y: -20},
		{X: 10, Y: 10},
		{X: 0, Y: 0},
		{X: -10, Y: 10},
	}

	// BulletVerts is a 2x6 quad, long axis along the heading.
	BulletVerts = []Vec2{
		{X: 1, Y: 3},
		{X: 1, Y: -3},
		{X: -1, Y: -3},
		{X: -1, Y: 3},
	}
)

// RandomLoop generates a procedural polygon loop: vertCount evenly
// spaced angular spokes, each with a radius drawn uniformly from
// [minDist, maxDist]. Used for asteroid and debris outlines.
func RandomLoop(rng *rand.Rand, vertCount int, minDist, maxDist float64) []Vec2 {
	if vertCount < 3 {
		panic(fmt.Sprintf("components: polygon loop needs at least 3 vertices, got %d", vertCount))
	}
	if minDist <= 0 || maxDist < minDist {
		panic(fmt.Sprintf("components: invalid loop radius range [%v, %v]", minDist, maxDist))
	}

	step := 2 * math.Pi / float64(vertCount)
	verts := make([]Vec2, vertCount)
	for i := range verts {
		r := minDist + rng.Float64()*(maxDist-minDist)
		verts[i] = Vec2{X: 0, Y: r}.Rotated(step * float64(i))
	}
	return verts
}
