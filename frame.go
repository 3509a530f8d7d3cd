package renderstate

import (
	"github.com/gogpu/renderstate/element"
	"github.com/gogpu/renderstate/geom"
)

// Frame is the render state active on entry to one nesting scope.
//
// A negative ScissorSize component means scissoring is disabled; use
// [NewFrame] for a clean frame rather than the zero value, whose
// zero-sized scissor region is active.
type Frame struct {
	ScissorOrigin geom.Vec2i
	ScissorSize   geom.Vec2i

	// Clips is the clip-mask chain, outermost first.
	Clips element.ClipList

	// Transform is the identity of the active transform source.
	Transform *element.Transform

	// matrix is the last matrix submitted while Transform was set.
	matrix geom.Matrix4
}

// noScissor is the ScissorSize sentinel for a disabled scissor region.
var noScissor = geom.V2i(-1, -1)

// NewFrame returns a frame with no scissor, no clip mask and no transform.
func NewFrame() Frame {
	return Frame{ScissorSize: noScissor, matrix: geom.Identity()}
}

// ScissorEnabled reports whether the frame has an active scissor region.
func (f Frame) ScissorEnabled() bool {
	return f.ScissorSize.X >= 0
}
