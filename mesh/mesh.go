// Package mesh generates the triangle geometry used to build clip masks
// and defines how that geometry is handed to a backend.
package mesh

import (
	"image/color"

	"github.com/gogpu/renderstate/geom"
)

// Vertex is a single mesh vertex.
type Vertex struct {
	Position geom.Vec2f
	Colour   color.RGBA
}

// Mesh is an indexed triangle list. Every three indices form one
// triangle.
type Mesh struct {
	Vertices []Vertex
	Indices  []int32
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

// Triangle returns the positions of the i-th triangle.
func (m *Mesh) Triangle(i int) (a, b, c geom.Vec2f) {
	idx := m.Indices[i*3 : i*3+3]
	return m.Vertices[idx[0]].Position, m.Vertices[idx[1]].Position, m.Vertices[idx[2]].Position
}

// ClipMaskOperation is the role a mesh plays when it is rendered into the
// clip mask.
type ClipMaskOperation uint8

const (
	// ClipMaskClip replaces the clip mask with the mesh shape.
	ClipMaskClip ClipMaskOperation = iota
	// ClipMaskClipIntersect intersects the existing clip mask with the
	// mesh shape.
	ClipMaskClipIntersect
	// ClipMaskClipOut removes the mesh shape from the existing clip mask.
	ClipMaskClipOut
)

var clipMaskOperationNames = [...]string{
	ClipMaskClip:          "Clip",
	ClipMaskClipIntersect: "ClipIntersect",
	ClipMaskClipOut:       "ClipOut",
}

// String returns the name of the operation.
func (op ClipMaskOperation) String() string {
	if int(op) < len(clipMaskOperationNames) {
		return clipMaskOperationNames[op]
	}
	return "Unknown"
}

// Renderer is implemented by backends that can render geometry into a
// clip mask. translation is added to every vertex position before the
// active transform is applied.
type Renderer interface {
	RenderToClipMask(op ClipMaskOperation, m *Mesh, translation geom.Vec2f)
}

// SetClipMask submits the mesh to r as clip-mask geometry placed at
// translation. A nil renderer ignores the call.
func (m *Mesh) SetClipMask(r Renderer, op ClipMaskOperation, translation geom.Vec2f) {
	if r == nil || m == nil {
		return
	}
	r.RenderToClipMask(op, m, translation)
}
