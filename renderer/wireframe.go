package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rockfield/components"
)

// Wireframe draws entity outlines as closed polygon loops. Entities
// that wrap are drawn at every toroidal image that touches the screen,
// so a shape straddling an edge appears on both sides.
type Wireframe struct {
	color rl.Color
}

func NewWireframe() *Wireframe {
	return &Wireframe{color: rl.RayWhite}
}

// Draw renders every entity outline against the given screen bounds.
func (w *Wireframe) Draw(states []components.RenderState, bounds components.Vec2) {
	for _, s := range states {
		if len(s.Verts) < 2 {
			continue
		}
		w.drawOutline(s, bounds)
	}
}

func (w *Wireframe) drawOutline(s components.RenderState, bounds components.Vec2) {
	world := make([]components.Vec2, len(s.Verts))
	minV := components.Vec2{X: bounds.X, Y: bounds.Y}
	maxV := components.Vec2{}
	for i, v := range s.Verts {
		p := v.Rotated(s.Rotation).Add(s.Position)
		world[i] = p
		if p.X < minV.X {
			minV.X = p.X
		}
		if p.Y < minV.Y {
			minV.Y = p.Y
		}
		if p.X > maxV.X {
			maxV.X = p.X
		}
		if p.Y > maxV.Y {
			maxV.Y = p.Y
		}
	}

	if !s.Wrap {
		w.drawLoop(world, 0, 0)
		return
	}

	// Offsets in screen widths/heights at which an image of the shape
	// is visible. The base image is always drawn; a shifted copy is
	// added per axis the outline pokes past.
	dxs := []float64{0}
	dys := []float64{0}
	if minV.X < 0 {
		dxs = append(dxs, bounds.X)
	}
	if maxV.X > bounds.X {
		dxs = append(dxs, -bounds.X)
	}
	if minV.Y < 0 {
		dys = append(dys, bounds.Y)
	}
	if maxV.Y > bounds.Y {
		dys = append(dys, -bounds.Y)
	}

	for _, dx := range dxs {
		for _, dy := range dys {
			w.drawLoop(world, dx, dy)
		}
	}
}

func (w *Wireframe) drawLoop(world []components.Vec2, dx, dy float64) {
	for i := range world {
		a := world[i]
		b := world[(i+1)%len(world)]
		rl.DrawLineV(
			rl.NewVector2(float32(a.X+dx), float32(a.Y+dy)),
			rl.NewVector2(float32(b.X+dx), float32(b.Y+dy)),
			w.color,
		)
	}
}
