package components

import (
	"math/rand"
	"testing"
)

func TestRandomLoop(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name  string
		count int
		min   float64
		max   float64
	}{
		{"small asteroid", 6, 20, 28},
		{"medium asteroid", 8, 30, 40},
		{"large asteroid", 14, 39, 50},
		{"debris sliver", 3, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verts := RandomLoop(rng, tt.count, tt.min, tt.max)
			if len(verts) != tt.count {
				t.Fatalf("got %d vertices, want %d", len(verts), tt.count)
			}
			for i, v := range verts {
				r := v.Length()
				if r < tt.min || r > tt.max {
					t.Errorf("vertex %d radius %v outside [%v, %v]", i, r, tt.min, tt.max)
				}
			}
		})
	}
}

func TestRandomLoopPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name  string
		count int
		min   float64
		max   float64
	}{
		{"too few vertices", 2, 1, 3},
		{"zero min radius", 3, 0, 3},
		{"inverted range", 3, 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			RandomLoop(rng, tt.count, tt.min, tt.max)
		})
	}
}

func TestNewShapePanicsOnDegenerate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for 2-vertex shape")
		}
	}()
	NewShape([]Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}})
}

func TestFixedTemplates(t *testing.T) {
	if len(ShipVerts) != 4 {
		t.Errorf("ship has %d vertices, want 4", len(ShipVerts))
	}
	if ShipVerts[0] != (Vec2{X: 0, Y: -20}) {
		t.Errorf("ship nose = %v, want (0, -20)", ShipVerts[0])
	}
	if len(BulletVerts) != 4 {
		t.Errorf("bullet has %d vertices, want 4", len(BulletVerts))
	}
}
