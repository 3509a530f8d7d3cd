package walk

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/renderstate/element"
	"github.com/gogpu/renderstate/geom"
)

// ClipArea is the box area clipping ancestors clip their descendants to.
const ClipArea = element.AreaPadding

// Region is the clipping applied to one node by its ancestors.
type Region struct {
	// Scissor reports whether ScissorOrigin and ScissorSize are set.
	Scissor       bool
	ScissorOrigin geom.Vec2i
	ScissorSize   geom.Vec2i

	// Clips lists the ancestors that need a clip mask, outermost first.
	Clips element.ClipList
}

// ClippingRegion computes the clipping n inherits from its clipping
// ancestors. A node never clips itself.
//
// Ancestors with square corners and no transform contribute their
// padding box to the scissor rectangle. Ancestors with a transform or a
// border radius need a clip mask; when supportsStencil is false they
// fall back to their untransformed padding box as above.
func ClippingRegion(n *element.Node, supportsStencil bool) Region {
	var (
		r         Region
		lo, hi    geom.Vec2f
		innermost element.ClipList
	)
	for a := n.Parent(); a != nil; a = a.Parent() {
		if !a.Clipping() {
			continue
		}
		if supportsStencil && needsMask(a) {
			innermost = append(innermost, element.Clip{Element: a, Area: ClipArea})
			continue
		}

		p0 := a.AbsoluteOffset(ClipArea)
		p1 := p0.Add(a.Box().Size(ClipArea))
		if !r.Scissor {
			r.Scissor = true
			lo, hi = p0, p1
			continue
		}
		lo = geom.V2f(math32.Max(lo.X, p0.X), math32.Max(lo.Y, p0.Y))
		hi = geom.V2f(math32.Min(hi.X, p1.X), math32.Min(hi.Y, p1.Y))
	}

	if r.Scissor {
		x0, y0 := int(math32.Floor(lo.X)), int(math32.Floor(lo.Y))
		x1, y1 := int(math32.Ceil(hi.X)), int(math32.Ceil(hi.Y))
		r.ScissorOrigin = geom.V2i(x0, y0)
		r.ScissorSize = geom.V2i(max(x1-x0, 0), max(y1-y0, 0))
	}

	for i := len(innermost) - 1; i >= 0; i-- {
		r.Clips = append(r.Clips, innermost[i])
	}
	return r
}

func needsMask(n *element.Node) bool {
	return n.Transform() != nil || !n.ComputedValues().BorderRadius.IsZero()
}
