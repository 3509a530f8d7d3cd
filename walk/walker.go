// Package walk renders an element tree through a render state stack.
//
// The walker visits nodes depth-first. Each node gets its own frame:
// the stack is pushed, the node's inherited clipping and its transform
// are applied, the visit callback runs, children are rendered, and the
// frame is popped.
package walk

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/renderstate"
	"github.com/gogpu/renderstate/element"
)

// VisitFunc is called for every node with the node's state applied.
// Returning an error stops the walk.
type VisitFunc func(s *renderstate.Stack, n *element.Node) error

// Walker renders element trees through a Stack.
type Walker struct {
	stack *renderstate.Stack
	visit VisitFunc
	nodes int
}

// New returns a walker driving s. visit may be nil.
func New(s *renderstate.Stack, visit VisitFunc) *Walker {
	return &Walker{stack: s, visit: visit}
}

// Stack returns the stack the walker drives.
func (w *Walker) Stack() *renderstate.Stack {
	return w.stack
}

// Render starts a render pass and renders root and its descendants.
func (w *Walker) Render(root *element.Node) error {
	w.stack.BeginRender()
	w.nodes = 0
	if root == nil {
		return nil
	}

	err := w.render(root)
	if d := w.stack.Depth(); d != 1 {
		return fmt.Errorf("walk: %w: depth %d after render", renderstate.ErrUnbalancedNesting, d)
	}
	if err != nil {
		return err
	}
	renderstate.Logger().Debug("walk: rendered tree",
		slog.String("root", root.Name()),
		slog.Int("nodes", w.nodes),
		slog.Bool("clipMask", w.stack.SupportsClipMask()),
	)
	return nil
}

func (w *Walker) render(n *element.Node) error {
	s := w.stack
	s.Push()
	defer s.Pop()

	r := ClippingRegion(n, s.SupportsClipMask())
	if r.Scissor {
		s.EnableScissorRegion(r.ScissorOrigin, r.ScissorSize)
	} else {
		s.DisableScissorRegion()
	}
	s.SetClipMask(r.Clips)
	s.ApplyTransform(n)
	w.nodes++

	if w.visit != nil {
		if err := w.visit(s, n); err != nil {
			return fmt.Errorf("walk: visit %q: %w", n.Name(), err)
		}
	}
	for _, c := range n.Children() {
		if err := w.render(c); err != nil {
			return err
		}
	}
	return nil
}
