// Package renderstate tracks the scissor region, clip mask, and transform
// a graphics backend must apply while a tree of UI elements is rendered.
//
// # Overview
//
// A [Stack] holds one [Frame] per nesting scope. The element-tree walker
// pushes a frame before rendering a subtree, sets the scissor, clip mask
// and transform for the current element, and pops the frame once the
// subtree is done. Every setter compares the requested state with the
// current frame and only issues a [Backend] command when something
// actually changed, so re-asserting the same state is free.
//
// # Quick Start
//
//	s := renderstate.NewStack(backend)
//
//	s.BeginRender()
//	s.Push()
//	s.EnableScissorRegion(geom.V2i(0, 0), geom.V2i(100, 50))
//	s.ApplyTransform(elem)
//	// ... render elem and its children ...
//	s.Pop()
//
// # Transforms
//
// Transforms are identified by their source, a *element.Transform. Two
// calls with the same source never reach the backend; different sources
// are compared by matrix value before a new matrix is submitted.
//
// # Clip masks
//
// A clip mask is a chain of element shapes, outermost first. The first
// shape replaces the backend's clip mask and every following shape
// intersects it, so nested clips only ever narrow the visible region.
// Backends receive the shapes through the optional [mesh.Renderer]
// interface.
//
// # Errors
//
// Unbalanced Push/Pop and negative scissor sizes are programming errors.
// They are logged and then reported to the fault handler, which panics
// unless replaced with [WithFaultHandler].
//
// # Concurrency
//
// A Stack is not safe for concurrent use. One render pass is driven by
// one goroutine at a time.
package renderstate

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
