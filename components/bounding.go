package components

import "fmt"

// Triangle is three points in local or world space.
type Triangle [3]Vec2

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vec2
}

// Overlaps reports whether two boxes share any point. Touching edges
// count as overlap, so the broad phase never rejects a true contact.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y
}

// Bounds returns the triangle's axis-aligned bounding box. Degenerate
// triangles collapse to a point or segment box, which still compares
// correctly.
func (t Triangle) Bounds() AABB {
	box := AABB{Min: t[0], Max: t[0]}
	for _, p := range t[1:] {
		if p.X < box.Min.X {
			box.Min.X = p.X
		}
		if p.X > box.Max.X {
			box.Max.X = p.X
		}
		if p.Y < box.Min.Y {
			box.Min.Y = p.Y
		}
		if p.Y > box.Max.Y {
			box.Max.Y = p.Y
		}
	}
	return box
}

// TrianglesBounds returns the box enclosing all given triangles.
func TrianglesBounds(tris []Triangle) AABB {
	box := tris[0].Bounds()
	for _, t := range tris[1:] {
		b := t.Bounds()
		if b.Min.X < box.Min.X {
			box.Min.X = b.Min.X
		}
		if b.Max.X > box.Max.X {
			box.Max.X = b.Max.X
		}
		if b.Min.Y < box.Min.Y {
			box.Min.Y = b.Min.Y
		}
		if b.Max.Y > box.Max.Y {
			box.Max.Y = b.Max.Y
		}
	}
	return box
}

type boundingKind uint8

const (
	boundingCyclic boundingKind = iota
	boundingExplicit
)

// Bounding is an entity's collision hull: either a triangle fan
// implied by a cyclic vertex loop, or an explicit triangle list. The
// two variants share one operation, enumerating world-space triangles
// for the entity's current pose.
type Bounding struct {
	kind      boundingKind
	verts     []Vec2
	triangles []Triangle
}

// CyclicTriangles builds a hull that fans from the entity origin: one
// triangle per cyclic-adjacent vertex pair, anchored at the center.
func CyclicTriangles(verts []Vec2) Bounding {
	if len(verts) < 3 {
		panic(fmt.Sprintf("components: cyclic hull needs at least 3 vertices, got %d", len(verts)))
	}
	return Bounding{kind: boundingCyclic, verts: verts}
}

// ExplicitTriangles builds a hull from a literal triangle list with no
// shared apex. Used for rectangular hulls like bullets, which split
// into two triangles that do not meet at the visual center.
func ExplicitTriangles(tris []Triangle) Bounding {
	if len(tris) == 0 {
		panic("components: explicit hull needs at least one triangle")
	}
	return Bounding{kind: boundingExplicit, triangles: tris}
}

// WorldTriangles appends the hull's triangles, transformed by the given
// rotation and position, to dst and returns the extended slice.
func (b *Bounding) WorldTriangles(rotation float64, position Vec2, dst []Triangle) []Triangle {
	switch b.kind {
	case boundingCyclic:
		n := len(b.verts)
		for i := 0; i < n; i++ {
			p1 := b.verts[i].Rotated(rotation).Add(position)
			p2 := b.verts[(i+1)%n].Rotated(rotation).Add(position)
			dst = append(dst, Triangle{position, p1, p2})
		}
	case boundingExplicit:
		for _, t := range b.triangles {
			dst = append(dst, Triangle{
				t[0].Rotated(rotation).Add(position),
				t[1].Rotated(rotation).Add(position),
				t[2].Rotated(rotation).Add(position),
			})
		}
	}
	return dst
}

// Extent returns the world-space axis-aligned bounds of the hull for
// the given pose.
func (b *Bounding) Extent(rotation float64, position Vec2) AABB {
	return TrianglesBounds(b.WorldTriangles(rotation, position, nil))
}
