package renderstate

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/renderstate/element"
	"github.com/gogpu/renderstate/geom"
	"github.com/gogpu/renderstate/mesh"
)

// Stack is the render state stack for one backend. It always holds at
// least one frame; the last frame is the current state.
//
// See the package documentation for the nesting discipline.
type Stack struct {
	backend      Backend
	clipRenderer mesh.Renderer // nil when the backend cannot draw clip geometry
	geometry     ClipGeometry
	onFault      func(error)
	logger       *slog.Logger

	frames           []Frame
	supportsClipMask bool
}

// NewStack creates a stack bound to backend, holding one clean frame.
// No backend commands are issued until the first mutation or BeginRender.
func NewStack(backend Backend, opts ...Option) *Stack {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	s := &Stack{
		backend:  backend,
		geometry: options.geometry,
		onFault:  options.onFault,
		logger:   options.logger,
		frames:   make([]Frame, 1, 16),
	}
	s.frames[0] = NewFrame()
	if r, ok := backend.(mesh.Renderer); ok {
		s.clipRenderer = r
	}
	return s
}

func (s *Stack) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return Logger()
}

func (s *Stack) fault(err error) {
	s.log().Error("renderstate: fault", "err", err, "depth", len(s.frames))
	s.onFault(err)
}

func (s *Stack) top() *Frame {
	return &s.frames[len(s.frames)-1]
}

// Backend returns the backend the stack synchronizes.
func (s *Stack) Backend() Backend {
	return s.backend
}

// Depth returns the number of frames on the stack. It is 1 outside of
// any Push/Pop pair.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Current returns a copy of the current frame.
func (s *Stack) Current() Frame {
	f := *s.top()
	f.Clips = f.Clips.Clone()
	return f
}

// SupportsClipMask reports the clip-mask capability the backend returned
// at the last BeginRender.
func (s *Stack) SupportsClipMask() bool {
	return s.supportsClipMask
}

// BeginRender starts a render pass. The stack must hold exactly one
// frame; otherwise an unbalanced-nesting fault is reported.
//
// The backend is resynchronized unconditionally: scissoring and clip
// masking are disabled and the transform is cleared, whatever the stack
// believes the backend state to be.
func (s *Stack) BeginRender() {
	if len(s.frames) != 1 {
		s.fault(fmt.Errorf("%w: BeginRender at depth %d", ErrUnbalancedNesting, len(s.frames)))
		s.frames = s.frames[:1]
	}

	s.backend.EnableScissorRegion(false)
	s.supportsClipMask = s.backend.EnableClipMask(false)
	s.backend.SetTransform(nil)

	s.frames[0] = NewFrame()
	s.log().Debug("renderstate: begin render", "clipMask", s.supportsClipMask)
}

// Reset returns the current frame to a clean state, issuing only the
// commands needed to get there.
func (s *Stack) Reset() {
	s.Set(NewFrame())
}

// EnableScissorRegion sets the scissor rectangle of the current frame.
// A negative size component is reported as a fault and ignored.
func (s *Stack) EnableScissorRegion(origin, size geom.Vec2i) {
	if size.X < 0 || size.Y < 0 {
		s.fault(fmt.Errorf("%w: %dx%d", ErrInvalidScissor, size.X, size.Y))
		return
	}

	f := s.top()
	enabled := f.ScissorEnabled()
	if !enabled {
		s.backend.EnableScissorRegion(true)
	}
	if !enabled || f.ScissorOrigin != origin || f.ScissorSize != size {
		f.ScissorOrigin = origin
		f.ScissorSize = size
		s.backend.SetScissorRegion(origin.X, origin.Y, size.X, size.Y)
	}
}

// DisableScissorRegion turns off scissoring for the current frame.
func (s *Stack) DisableScissorRegion() {
	f := s.top()
	if f.ScissorEnabled() {
		f.ScissorSize = noScissor
		s.backend.EnableScissorRegion(false)
	}
}

// ScissorState returns the current scissor rectangle. ok is false when
// scissoring is disabled.
func (s *Stack) ScissorState() (origin, size geom.Vec2i, ok bool) {
	f := s.top()
	if !f.ScissorEnabled() {
		return geom.Vec2i{}, geom.Vec2i{}, false
	}
	return f.ScissorOrigin, f.ScissorSize, true
}

// Transform returns the identity of the active transform source, or nil.
func (s *Stack) Transform() *element.Transform {
	return s.top().Transform
}

// SetTransform makes t the active transform source.
//
// Passing the active source again is free. A different source is only
// submitted when it, or the active one, is nil, or when the matrices
// differ; the active source is updated in every case.
func (s *Stack) SetTransform(t *element.Transform) {
	f := s.top()
	if f.Transform == t {
		return
	}

	if f.Transform == nil || t == nil || f.matrix != t.Matrix() {
		if t == nil {
			s.backend.SetTransform(nil)
		} else {
			f.matrix = t.Matrix()
			m := f.matrix
			s.backend.SetTransform(&m)
		}
	}
	f.Transform = t
}

// ApplyTransform makes e's transform source active. A nil element or an
// element without a transform clears the transform.
func (s *Stack) ApplyTransform(e element.Element) {
	var t *element.Transform
	if e != nil {
		t = e.Transform()
	}
	s.SetTransform(t)
}

// Push saves the current state. No backend commands are issued.
func (s *Stack) Push() {
	s.frames = append(s.frames, *s.top())
}

// Pop restores the state saved by the matching Push, issuing whatever
// commands are needed to undo changes made since. Popping the last
// frame is reported as an unbalanced-nesting fault.
func (s *Stack) Pop() {
	n := len(s.frames)
	if n < 2 {
		s.fault(fmt.Errorf("%w: Pop at depth %d", ErrUnbalancedNesting, n))
		return
	}
	s.Set(s.frames[n-2])
	s.frames = s.frames[:n-1]
}

// Set synchronizes the current frame with next. Each property is routed
// through its own setter, so only differing properties reach the backend.
func (s *Stack) Set(next Frame) {
	if next.ScissorEnabled() {
		s.EnableScissorRegion(next.ScissorOrigin, next.ScissorSize)
	} else {
		s.DisableScissorRegion()
	}

	s.SetClipMask(next.Clips)
	s.SetTransform(next.Transform)
}
