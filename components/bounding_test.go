package components

import (
	"math"
	"testing"
)

func TestAABBOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b AABB
		want bool
	}{
		{
			"clear overlap",
			AABB{Min: Vec2{0, 0}, Max: Vec2{10, 10}},
			AABB{Min: Vec2{5, 5}, Max: Vec2{15, 15}},
			true,
		},
		{
			"disjoint",
			AABB{Min: Vec2{0, 0}, Max: Vec2{10, 10}},
			AABB{Min: Vec2{11, 0}, Max: Vec2{20, 10}},
			false,
		},
		{
			"touching edge counts",
			AABB{Min: Vec2{0, 0}, Max: Vec2{10, 10}},
			AABB{Min: Vec2{10, 0}, Max: Vec2{20, 10}},
			true,
		},
		{
			"containment",
			AABB{Min: Vec2{0, 0}, Max: Vec2{10, 10}},
			AABB{Min: Vec2{2, 2}, Max: Vec2{3, 3}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps is not symmetric: reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCyclicTrianglesFan(t *testing.T) {
	verts := []Vec2{{0, -20}, {10, 10}, {0, 0}, {-10, 10}}
	hull := CyclicTriangles(verts)
	pos := Vec2{X: 400, Y: 300}

	tris := hull.WorldTriangles(0, pos, nil)
	if len(tris) != len(verts) {
		t.Fatalf("got %d triangles, want %d (one per cyclic edge)", len(tris), len(verts))
	}
	for i, tri := range tris {
		if tri[0] != pos {
			t.Errorf("triangle %d apex = %v, want fan anchor %v", i, tri[0], pos)
		}
	}

	// First triangle spans the first edge, translated.
	want1 := Vec2{X: 400, Y: 280}
	want2 := Vec2{X: 410, Y: 310}
	if tris[0][1] != want1 || tris[0][2] != want2 {
		t.Errorf("triangle 0 edge = %v, %v, want %v, %v", tris[0][1], tris[0][2], want1, want2)
	}
}

func TestExplicitTrianglesTransform(t *testing.T) {
	hull := ExplicitTriangles([]Triangle{
		{Vec2{1, 3}, Vec2{1, -3}, Vec2{-1, -3}},
	})
	pos := Vec2{X: 100, Y: 200}

	// Half turn flips both axes.
	tris := hull.WorldTriangles(math.Pi, pos, nil)
	if len(tris) != 1 {
		t.Fatalf("got %d triangles, want 1", len(tris))
	}
	want := Triangle{
		Vec2{X: 99, Y: 197},
		Vec2{X: 99, Y: 203},
		Vec2{X: 101, Y: 203},
	}
	for i := range want {
		if math.Abs(tris[0][i].X-want[i].X) > 1e-9 || math.Abs(tris[0][i].Y-want[i].Y) > 1e-9 {
			t.Errorf("vertex %d = %v, want %v", i, tris[0][i], want[i])
		}
	}
}

func TestExtent(t *testing.T) {
	verts := []Vec2{{0, -20}, {10, 10}, {0, 0}, {-10, 10}}
	hull := CyclicTriangles(verts)
	pos := Vec2{X: 400, Y: 300}

	box := hull.Extent(0, pos)
	want := AABB{Min: Vec2{X: 390, Y: 280}, Max: Vec2{X: 410, Y: 310}}
	if box != want {
		t.Errorf("Extent = %+v, want %+v", box, want)
	}
}

func TestBoundingPanics(t *testing.T) {
	t.Run("cyclic too few vertices", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		CyclicTriangles([]Vec2{{0, 0}, {1, 1}})
	})

	t.Run("explicit empty", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		ExplicitTriangles(nil)
	})
}

func TestTriangleBoundsDegenerate(t *testing.T) {
	p := Vec2{X: 5, Y: 7}
	tri := Triangle{p, p, p}
	box := tri.Bounds()
	if box.Min != p || box.Max != p {
		t.Errorf("point triangle bounds = %+v, want collapsed at %v", box, p)
	}
}
