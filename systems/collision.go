// Package systems contains the collision engine for the simulation.
package systems

import "github.com/pthm-cable/rockfield/components"

// CollidesWith reports whether two entity kinds can collide. The
// predicate is symmetric: debris is cosmetic and never collides, and
// asteroids and bullets pass through their own kind.
func CollidesWith(a, b components.Kind) bool {
	if a == components.KindDebris || b == components.KindDebris {
		return false
	}
	if a == b && (a == components.KindAsteroid || a == components.KindBullet) {
		return false
	}
	return true
}

// TrianglesCollide reports whether any triangle from a intersects any
// triangle from b. Candidate pairs are filtered by axis-aligned box
// overlap first; non-overlapping boxes cannot contain intersecting
// triangles, so the filter never discards a true contact. Survivors go
// through the exact separating-axis test.
func TrianglesCollide(a, b []components.Triangle) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	boundsB := components.TrianglesBounds(b)
	if !components.TrianglesBounds(a).Overlaps(boundsB) {
		return false
	}

	for i := range a {
		boxA := a[i].Bounds()
		if !boxA.Overlaps(boundsB) {
			continue
		}
		for j := range b {
			if !boxA.Overlaps(b[j].Bounds()) {
				continue
			}
			if trianglesIntersect(a[i], b[j]) {
				return true
			}
		}
	}
	return false
}

// trianglesIntersect is an exact separating-axis test over the edge
// normals of both triangles. Touching boundaries count as an
// intersection. Zero-length edges contribute no axis; if every edge of
// both triangles degenerates the hulls are points and the box overlap
// already established contact.
func trianglesIntersect(t1, t2 components.Triangle) bool {
	for _, t := range [2]components.Triangle{t1, t2} {
		for i := 0; i < 3; i++ {
			edge := t[(i+1)%3].Sub(t[i])
			if edge.X == 0 && edge.Y == 0 {
				continue
			}
			axis := edge.Perp()
			min1, max1 := project(t1, axis)
			min2, max2 := project(t2, axis)
			if max1 < min2 || max2 < min1 {
				return false
			}
		}
	}
	return true
}

// project returns the min and max of the triangle's vertices projected
// onto the axis.
func project(t components.Triangle, axis components.Vec2) (lo, hi float64) {
	lo = t[0].Dot(axis)
	hi = lo
	for _, p := range t[1:] {
		d := p.Dot(axis)
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}
