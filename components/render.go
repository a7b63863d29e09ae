package components

// RenderState is one entity's published pose for the render
// collaborator. Entities without a shape publish a nil vertex loop.
type RenderState struct {
	Position Vec2
	Rotation float64
	Verts    []Vec2 // cyclic local-space loop, nil for invisible entities
	Wrap     bool   // draw toroidal duplicates for boundary-crossing edges
}
