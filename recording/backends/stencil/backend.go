// Package stencil provides a GPU-style backend for the recording system
// that expresses clip state as WebGPU scissor rectangles and stencil
// pipeline states.
//
// The backend does not own a device. It translates each backend call
// into steps a render pass would execute: scissor rectangles, stencil
// clears, clip-geometry draws with a [hal.DepthStencilState], and
// stencil reference changes. Steps are recorded, and scissor and
// reference changes are forwarded to an optional [PassEncoder].
//
// Clip masks use the classic stencil counting scheme. ClipMaskClip
// clears the stencil buffer and writes 1 inside the shape; every
// ClipMaskClipIntersect increments pixels that match the current test
// value and advances the test value; ClipMaskClipOut zeroes the shape.
// Content is then drawn with stencil compare Equal against the test
// value.
package stencil

import (
	"fmt"
	"io"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/renderstate"
	"github.com/gogpu/renderstate/geom"
	"github.com/gogpu/renderstate/mesh"
	"github.com/gogpu/renderstate/recording"
)

func init() {
	recording.Register("stencil", func() renderstate.Backend {
		return NewBackend(nil)
	})
}

// PassEncoder is the subset of a render pass encoder the backend drives.
type PassEncoder interface {
	SetScissorRect(x, y, width, height uint32)
	SetStencilReference(reference uint32)
}

// StepKind identifies a render pass step.
type StepKind uint8

const (
	StepScissor          StepKind = iota // Set the scissor rectangle
	StepClearStencil                     // Clear the stencil buffer to zero
	StepDrawClip                         // Draw clip geometry into the stencil buffer
	StepStencilReference                 // Set the stencil reference for content
)

var stepKindNames = [...]string{
	StepScissor:          "Scissor",
	StepClearStencil:     "ClearStencil",
	StepDrawClip:         "DrawClip",
	StepStencilReference: "StencilReference",
}

func (k StepKind) String() string {
	if int(k) < len(stepKindNames) {
		return stepKindNames[k]
	}
	return "Unknown"
}

// Step is one recorded render pass step. Only the fields relevant to
// Kind are set.
type Step struct {
	Kind StepKind

	// StepScissor
	Rect [4]uint32

	// StepDrawClip
	State       hal.DepthStencilState
	Mesh        *mesh.Mesh
	Translation geom.Vec2f
	Transform   *geom.Matrix4

	// StepDrawClip and StepStencilReference
	Reference uint32
}

func (s Step) String() string {
	switch s.Kind {
	case StepScissor:
		return fmt.Sprintf("Scissor(%d, %d, %d, %d)", s.Rect[0], s.Rect[1], s.Rect[2], s.Rect[3])
	case StepDrawClip:
		return fmt.Sprintf("DrawClip(compare=%v pass=%v ref=%d triangles=%d)",
			s.State.StencilFront.Compare, s.State.StencilFront.PassOp, s.Reference, s.Mesh.TriangleCount())
	case StepStencilReference:
		return fmt.Sprintf("StencilReference(%d)", s.Reference)
	default:
		return s.Kind.String()
	}
}

// Backend translates render state into stencil render pass steps.
//
// Backend is not safe for concurrent use.
type Backend struct {
	pass   PassEncoder
	width  int
	height int

	steps []Step

	scissorEnabled bool
	scissor        [4]uint32

	maskEnabled bool
	testValue   uint32

	transform *geom.Matrix4
}

// Ensure Backend implements all required interfaces.
var (
	_ renderstate.Backend     = (*Backend)(nil)
	_ mesh.Renderer           = (*Backend)(nil)
	_ recording.Lifecycle     = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
)

// NewBackend creates a stencil backend. pass may be nil, in which case
// steps are only recorded.
func NewBackend(pass PassEncoder) *Backend {
	return &Backend{pass: pass}
}

// Begin resets the backend for a viewport of the given size.
func (b *Backend) Begin(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("stencil: invalid viewport %dx%d", width, height)
	}
	b.width = width
	b.height = height
	b.steps = b.steps[:0]
	b.scissorEnabled = false
	b.scissor = b.viewport()
	b.maskEnabled = false
	b.testValue = 0
	b.transform = nil
	renderstate.Logger().Debug("stencil: begin pass", "width", width, "height", height)
	return nil
}

// End finalizes the pass.
func (b *Backend) End() error {
	return nil
}

// Steps returns the recorded steps.
func (b *Backend) Steps() []Step {
	return b.steps
}

// TestValue returns the stencil value content is compared against.
func (b *Backend) TestValue() uint32 {
	return b.testValue
}

// ContentState returns the depth-stencil state content draws should use
// for the current clip mask.
func (b *Backend) ContentState() hal.DepthStencilState {
	if !b.maskEnabled {
		return depthStencil(gputypes.CompareFunctionAlways, hal.StencilOperationKeep, false)
	}
	return depthStencil(gputypes.CompareFunctionEqual, hal.StencilOperationKeep, false)
}

// EnableScissorRegion implements renderstate.Backend. WebGPU has no
// scissor toggle, so disabling sets the scissor to the full viewport.
func (b *Backend) EnableScissorRegion(enable bool) {
	b.scissorEnabled = enable
	if enable {
		b.setScissor(b.scissor)
	} else {
		b.setScissor(b.viewport())
	}
}

// SetScissorRegion implements renderstate.Backend. The rectangle is
// clamped to the viewport.
func (b *Backend) SetScissorRegion(x, y, width, height int) {
	b.scissor = b.clamp(x, y, width, height)
	if b.scissorEnabled {
		b.setScissor(b.scissor)
	}
}

// EnableClipMask implements renderstate.Backend. Stencil clip masks are
// always supported.
func (b *Backend) EnableClipMask(enable bool) bool {
	b.maskEnabled = enable
	return true
}

// SetTransform implements renderstate.Backend.
func (b *Backend) SetTransform(m *geom.Matrix4) {
	if m == nil {
		b.transform = nil
		return
	}
	v := *m
	b.transform = &v
}

// RenderToClipMask implements mesh.Renderer.
func (b *Backend) RenderToClipMask(op mesh.ClipMaskOperation, m *mesh.Mesh, translation geom.Vec2f) {
	if m == nil {
		return
	}

	var (
		state hal.DepthStencilState
		ref   uint32
	)
	switch op {
	case mesh.ClipMaskClip:
		b.steps = append(b.steps, Step{Kind: StepClearStencil})
		state = depthStencil(gputypes.CompareFunctionAlways, hal.StencilOperationReplace, true)
		ref = 1
		b.testValue = 1
	case mesh.ClipMaskClipIntersect:
		state = depthStencil(gputypes.CompareFunctionEqual, hal.StencilOperationIncrementClamp, true)
		ref = b.testValue
		b.testValue++
	case mesh.ClipMaskClipOut:
		state = depthStencil(gputypes.CompareFunctionAlways, hal.StencilOperationZero, true)
	default:
		renderstate.Logger().Debug("stencil: unknown clip mask operation", "op", op)
		return
	}

	b.steps = append(b.steps, Step{
		Kind:        StepDrawClip,
		State:       state,
		Mesh:        m,
		Translation: translation,
		Transform:   b.transform,
		Reference:   ref,
	})
	b.setReference(b.testValue)
}

// WriteTo writes one line per recorded step to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, s := range b.steps {
		k, err := fmt.Fprintln(w, s)
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func (b *Backend) setScissor(r [4]uint32) {
	b.steps = append(b.steps, Step{Kind: StepScissor, Rect: r})
	if b.pass != nil {
		b.pass.SetScissorRect(r[0], r[1], r[2], r[3])
	}
}

func (b *Backend) setReference(ref uint32) {
	b.steps = append(b.steps, Step{Kind: StepStencilReference, Reference: ref})
	if b.pass != nil {
		b.pass.SetStencilReference(ref)
	}
}

func (b *Backend) viewport() [4]uint32 {
	return [4]uint32{0, 0, uint32(b.width), uint32(b.height)} // #nosec G115 -- Begin rejects negative sizes
}

// clamp intersects the rectangle with the viewport. Empty results are
// returned as a zero-size rectangle at the clamped origin.
func (b *Backend) clamp(x, y, width, height int) [4]uint32 {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, b.width), min(y+height, b.height)
	x0, y0 = min(x0, b.width), min(y0, b.height)
	w, h := max(x1-x0, 0), max(y1-y0, 0)
	// #nosec G115 -- all values are clamped to [0, viewport]
	return [4]uint32{uint32(x0), uint32(y0), uint32(w), uint32(h)}
}

// depthStencil builds a stencil-only depth-stencil state using the same
// compare function and pass operation for both faces.
func depthStencil(compare gputypes.CompareFunction, pass hal.StencilOperation, writes bool) hal.DepthStencilState {
	face := hal.StencilFaceState{
		Compare:     compare,
		FailOp:      hal.StencilOperationKeep,
		DepthFailOp: hal.StencilOperationKeep,
		PassOp:      pass,
	}
	ds := hal.DepthStencilState{
		Format:            gputypes.TextureFormatDepth24PlusStencil8,
		DepthWriteEnabled: false,
		DepthCompare:      gputypes.CompareFunctionAlways,
		StencilFront:      face,
		StencilBack:       face,
		StencilReadMask:   0xFF,
		StencilWriteMask:  0xFF,
	}
	if !writes {
		ds.StencilWriteMask = 0
	}
	return ds
}
