package element

import "github.com/gogpu/renderstate/geom"

// Element is the element/geometry provider consulted while clip masks
// are applied. Implementations are read, never mutated, by the render
// state stack.
type Element interface {
	// Transform returns the element's transform source, or nil if the
	// element is not transformed.
	Transform() *Transform

	// Box returns the element's layout box.
	Box() Box

	// ComputedValues returns the element's resolved style values.
	ComputedValues() ComputedValues

	// AbsoluteOffset returns the absolute position of the top-left corner
	// of the given area.
	AbsoluteOffset(area Area) geom.Vec2f
}

// Transform is an immutable transform source. Its address is the
// identity token the render state stack compares before falling back to
// comparing matrices, so a Transform must never be modified after
// creation. To change an element's transform, create a new Transform.
type Transform struct {
	matrix geom.Matrix4
}

// NewTransform creates a transform source for the given matrix.
func NewTransform(m geom.Matrix4) *Transform {
	return &Transform{matrix: m}
}

// Matrix returns the transform matrix.
// A nil Transform yields the identity matrix.
func (t *Transform) Matrix() geom.Matrix4 {
	if t == nil {
		return geom.Identity()
	}
	return t.matrix
}

// Clip is one entry of a clip-mask chain: the element whose shape clips,
// and which of its areas is used.
type Clip struct {
	Element Element
	Area    Area
}

// ClipList is an ordered chain of clip shapes, outermost first. The
// effective clip region is the intersection of all entries.
type ClipList []Clip

// Equal reports whether l and other hold the same entries in the same
// order. Elements are compared by interface equality.
func (l ClipList) Equal(other ClipList) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the list that does not share backing storage.
// Cloning an empty list returns nil.
func (l ClipList) Clone() ClipList {
	if len(l) == 0 {
		return nil
	}
	out := make(ClipList, len(l))
	copy(out, l)
	return out
}
