package recording

import (
	"github.com/gogpu/renderstate"
	"github.com/gogpu/renderstate/geom"
	"github.com/gogpu/renderstate/mesh"
)

// Recorder captures backend calls as commands.
// It implements renderstate.Backend and mesh.Renderer, so a Stack can
// drive it directly. Use FinishRecording to obtain an immutable
// Recording that can be replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	s := renderstate.NewStack(rec)
//	s.BeginRender()
//	s.EnableScissorRegion(geom.V2i(0, 0), geom.V2i(100, 50))
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	// reported by EnableClipMask
	clipMaskSupport bool
}

var (
	_ renderstate.Backend = (*Recorder)(nil)
	_ mesh.Renderer       = (*Recorder)(nil)
	_ Lifecycle           = (*Recorder)(nil)
)

// NewRecorder creates a new Recorder for the given viewport size.
// The Recorder reports clip-mask support; see SetClipMaskSupport.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:           width,
		height:          height,
		commands:        make([]Command, 0, 64),
		resources:       NewResourcePool(),
		clipMaskSupport: true,
	}
}

// SetClipMaskSupport sets the capability EnableClipMask reports. A
// recording made with support disabled models a backend without a
// stencil buffer.
func (r *Recorder) SetClipMaskSupport(ok bool) {
	r.clipMaskSupport = ok
}

// Width returns the viewport width.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the viewport height.
func (r *Recorder) Height() int {
	return r.height
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Begin implements Lifecycle. It resets the recorder to an empty
// recording of the given size.
func (r *Recorder) Begin(width, height int) error {
	r.width, r.height = width, height
	r.commands = r.commands[:0]
	r.resources = NewResourcePool()
	return nil
}

// End implements Lifecycle.
func (r *Recorder) End() error {
	return nil
}

// EnableScissorRegion implements renderstate.Backend.
func (r *Recorder) EnableScissorRegion(enable bool) {
	r.commands = append(r.commands, EnableScissorCommand{Enable: enable})
}

// SetScissorRegion implements renderstate.Backend.
func (r *Recorder) SetScissorRegion(x, y, width, height int) {
	r.commands = append(r.commands, SetScissorRegionCommand{X: x, Y: y, Width: width, Height: height})
}

// EnableClipMask implements renderstate.Backend.
func (r *Recorder) EnableClipMask(enable bool) bool {
	r.commands = append(r.commands, EnableClipMaskCommand{Enable: enable})
	return r.clipMaskSupport
}

// SetTransform implements renderstate.Backend. The matrix is copied.
func (r *Recorder) SetTransform(m *geom.Matrix4) {
	var cp *geom.Matrix4
	if m != nil {
		v := *m
		cp = &v
	}
	r.commands = append(r.commands, SetTransformCommand{Matrix: cp})
}

// RenderToClipMask implements mesh.Renderer. The mesh is cloned into
// the resource pool.
func (r *Recorder) RenderToClipMask(op mesh.ClipMaskOperation, m *mesh.Mesh, translation geom.Vec2f) {
	ref := r.resources.AddMesh(m)
	r.commands = append(r.commands, RenderToClipMaskCommand{Op: op, Mesh: ref, Translation: translation})
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Recording is an immutable container for recorded backend commands.
// It can be replayed to any renderstate.Backend.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the viewport width of the recording.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the viewport height of the recording.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Count returns the number of commands of the given type.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording to the given backend.
//
// If the backend implements Lifecycle, Begin is called with the
// recording's viewport first and End last. Clip geometry is forwarded
// only to backends that implement mesh.Renderer.
func (r *Recording) Playback(backend renderstate.Backend) error {
	lc, hasLifecycle := backend.(Lifecycle)
	if hasLifecycle {
		if err := lc.Begin(r.width, r.height); err != nil {
			return err
		}
	}
	renderer, _ := backend.(mesh.Renderer)

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case EnableScissorCommand:
			backend.EnableScissorRegion(c.Enable)
		case SetScissorRegionCommand:
			backend.SetScissorRegion(c.X, c.Y, c.Width, c.Height)
		case EnableClipMaskCommand:
			backend.EnableClipMask(c.Enable)
		case SetTransformCommand:
			backend.SetTransform(c.Matrix)
		case RenderToClipMaskCommand:
			r.resources.GetMesh(c.Mesh).SetClipMask(renderer, c.Op, c.Translation)
		}
	}

	if hasLifecycle {
		return lc.End()
	}
	return nil
}
