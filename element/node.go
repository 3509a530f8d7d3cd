package element

import "github.com/gogpu/renderstate/geom"

// Node is a simple element tree node implementing [Element].
//
// A node is positioned by the offset of its border box relative to its
// parent's border box. Transforms and clipping are per node: a clipping
// node restricts its descendants to its padding box.
//
// Node is not safe for concurrent use.
type Node struct {
	name     string
	parent   *Node
	children []*Node

	offset    geom.Vec2f
	box       Box
	computed  ComputedValues
	transform *Transform
	clipping  bool
}

// Ensure Node implements Element.
var _ Element = (*Node)(nil)

// NewNode creates a detached node with the given name and box.
func NewNode(name string, box Box) *Node {
	return &Node{name: name, box: box}
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in document order.
// The returned slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// AppendChild attaches child as the last child of n and returns child.
// A child that already has a parent is detached from it first.
func (n *Node) AppendChild(child *Node) *Node {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// SetOffset sets the border-box offset relative to the parent's border box.
func (n *Node) SetOffset(offset geom.Vec2f) { n.offset = offset }

// Offset returns the border-box offset relative to the parent.
func (n *Node) Offset() geom.Vec2f { return n.offset }

// SetBox replaces the node's layout box.
func (n *Node) SetBox(b Box) { n.box = b }

// Box implements Element.
func (n *Node) Box() Box { return n.box }

// SetBorderRadius sets the computed border radius.
func (n *Node) SetBorderRadius(r CornerRadii) { n.computed.BorderRadius = r }

// ComputedValues implements Element.
func (n *Node) ComputedValues() ComputedValues { return n.computed }

// SetTransform gives the node a new transform source with matrix m.
// Every call creates a new identity, even for an unchanged matrix.
func (n *Node) SetTransform(m geom.Matrix4) { n.transform = NewTransform(m) }

// ClearTransform removes the node's transform.
func (n *Node) ClearTransform() { n.transform = nil }

// ShareTransform makes n use the transform source t, typically one
// resolved by an ancestor. Nodes sharing a source share its identity.
func (n *Node) ShareTransform(t *Transform) { n.transform = t }

// Transform implements Element.
func (n *Node) Transform() *Transform { return n.transform }

// SetClipping enables or disables clipping of descendants to the
// node's padding box (CSS overflow other than visible).
func (n *Node) SetClipping(clip bool) { n.clipping = clip }

// Clipping reports whether the node clips its descendants.
func (n *Node) Clipping() bool { return n.clipping }

// AbsoluteOffset implements Element. The result is the untransformed
// layout position; transforms are applied by the backend.
func (n *Node) AbsoluteOffset(area Area) geom.Vec2f {
	var origin geom.Vec2f
	for p := n; p != nil; p = p.parent {
		origin = origin.Add(p.offset)
	}
	return origin.Add(n.box.Position(area))
}

// Walk calls fn for n and every descendant in depth-first pre-order.
// Walking stops early when fn returns false for a node; that node's
// descendants are skipped but siblings are still visited.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}
