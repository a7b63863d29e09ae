package components

import (
	"math"
	"testing"
)

func TestHeading(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
		want     Vec2
	}{
		{"north at zero", 0, Vec2{X: 0, Y: -1}},
		{"west at quarter turn", math.Pi / 2, Vec2{X: -1, Y: 0}},
		{"south at half turn", math.Pi, Vec2{X: 0, Y: 1}},
		{"east at three quarters", 3 * math.Pi / 2, Vec2{X: 1, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Heading(tt.rotation)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("Heading(%v) = %v, want %v", tt.rotation, got, tt.want)
			}
		})
	}
}

func TestRotatedPreservesLength(t *testing.T) {
	v := Vec2{X: 3, Y: -4}
	for _, theta := range []float64{0, 0.3, math.Pi / 2, 2.1, 5.9} {
		got := v.Rotated(theta).Length()
		if math.Abs(got-5) > 1e-12 {
			t.Errorf("Rotated(%v) length = %v, want 5", theta, got)
		}
	}
}

func TestRotatedFullTurnIsIdentity(t *testing.T) {
	v := Vec2{X: 7, Y: 2}
	got := v.Rotated(2 * math.Pi)
	if math.Abs(got.X-v.X) > 1e-12 || math.Abs(got.Y-v.Y) > 1e-12 {
		t.Errorf("Rotated(2*pi) = %v, want %v", got, v)
	}
}

func TestPerp(t *testing.T) {
	v := Vec2{X: 0, Y: -1}
	got := v.Perp()
	if got != (Vec2{X: 1, Y: 0}) {
		t.Errorf("Perp of %v = %v, want (1, 0)", v, got)
	}
	if v.Dot(got) != 0 {
		t.Errorf("Perp should be orthogonal, dot = %v", v.Dot(got))
	}
}

func TestNormalizedZeroVector(t *testing.T) {
	if got := (Vec2{}).Normalized(); got != (Vec2{}) {
		t.Errorf("Normalized of zero = %v, want zero", got)
	}
}

func TestPosMod(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"inside range", 3, 8, 3},
		{"just over", 9, 8, 1},
		{"negative", -1, 8, 7},
		{"large negative", -1640, 800, 760},
		{"large positive", 1260, 600, 60},
		{"exactly zero", 0, 8, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := posMod(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("posMod(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got < 0 || got >= tt.b {
				t.Errorf("posMod(%v, %v) = %v, outside [0, %v)", tt.a, tt.b, got, tt.b)
			}
		})
	}
}
