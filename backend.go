package renderstate

import (
	"github.com/gogpu/renderstate/element"
	"github.com/gogpu/renderstate/geom"
	"github.com/gogpu/renderstate/mesh"
)

// Backend is the graphics backend a Stack synchronizes. All calls are
// fire-and-forget; the only result consulted is the clip-mask capability
// returned by EnableClipMask.
//
// Backends that can render clip-mask geometry also implement
// [mesh.Renderer]; without it clip shapes are generated but dropped.
type Backend interface {
	// EnableScissorRegion turns rectangular scissoring on or off.
	EnableScissorRegion(enable bool)

	// SetScissorRegion sets the scissor rectangle in pixels.
	SetScissorRegion(x, y, width, height int)

	// EnableClipMask turns clip masking on or off. It returns true if the
	// backend supports stencil-based clip masks.
	EnableClipMask(enable bool) bool

	// SetTransform sets the active transform. nil means no transform.
	SetTransform(m *geom.Matrix4)
}

// ClipGeometry generates the mesh for one clip shape. [mesh.Tessellator]
// is the default implementation.
type ClipGeometry interface {
	Generate(box element.Box, radii element.CornerRadii, area element.Area) *mesh.Mesh
}
