// Package element describes the element and geometry data the render
// state stack queries while it applies clip masks and transforms.
//
// The interfaces here are the boundary to a layout engine: the stack only
// reads boxes, border radii, offsets, and transform sources. [Node] is a
// minimal tree implementation of [Element] for hosts without their own
// element model.
package element

import "github.com/gogpu/renderstate/geom"

// Area selects one of the nested rectangles of a box.
type Area uint8

const (
	// AreaMargin is the outermost area, including margins.
	AreaMargin Area = iota
	// AreaBorder is the border box.
	AreaBorder
	// AreaPadding is the padding box, inside the border.
	AreaPadding
	// AreaContent is the content box, inside the padding.
	AreaContent
)

var areaNames = [...]string{
	AreaMargin:  "margin",
	AreaBorder:  "border",
	AreaPadding: "padding",
	AreaContent: "content",
}

// String returns the CSS-style name of the area.
func (a Area) String() string {
	if int(a) < len(areaNames) {
		return areaNames[a]
	}
	return "unknown"
}

// ParseArea returns the area for a name produced by Area.String.
func ParseArea(name string) (Area, bool) {
	for i, n := range areaNames {
		if n == name {
			return Area(i), true
		}
	}
	return AreaBorder, false
}

// Edge holds the widths of one box edge on each side.
type Edge struct {
	Top, Right, Bottom, Left float32
}

// Uniform returns an edge with the same width on every side.
func Uniform(w float32) Edge {
	return Edge{Top: w, Right: w, Bottom: w, Left: w}
}

// Box is a CSS-style box: a content size wrapped by padding, border,
// and margin edges.
type Box struct {
	Content geom.Vec2f
	Padding Edge
	Border  Edge
	Margin  Edge
}

// NewBox creates a box with the given content size and no edges.
func NewBox(width, height float32) Box {
	return Box{Content: geom.V2f(width, height)}
}

// edgesOutside returns the summed edges between the content box and the
// outer boundary of area.
func (b Box) edgesOutside(area Area) Edge {
	var e Edge
	add := func(o Edge) {
		e.Top += o.Top
		e.Right += o.Right
		e.Bottom += o.Bottom
		e.Left += o.Left
	}
	switch area {
	case AreaMargin:
		add(b.Margin)
		fallthrough
	case AreaBorder:
		add(b.Border)
		fallthrough
	case AreaPadding:
		add(b.Padding)
	}
	return e
}

// Size returns the size of the given area.
func (b Box) Size(area Area) geom.Vec2f {
	e := b.edgesOutside(area)
	return geom.V2f(b.Content.X+e.Left+e.Right, b.Content.Y+e.Top+e.Bottom)
}

// Position returns the top-left corner of the given area relative to
// the top-left corner of the border box. The margin area has a negative
// position.
func (b Box) Position(area Area) geom.Vec2f {
	switch area {
	case AreaMargin:
		return geom.V2f(-b.Margin.Left, -b.Margin.Top)
	case AreaPadding:
		return geom.V2f(b.Border.Left, b.Border.Top)
	case AreaContent:
		return geom.V2f(b.Border.Left+b.Padding.Left, b.Border.Top+b.Padding.Top)
	default:
		return geom.Vec2f{}
	}
}

// Inset returns the edge widths between the border box boundary and the
// boundary of area. It is zero for the border and margin areas.
func (b Box) Inset(area Area) Edge {
	switch area {
	case AreaPadding:
		return b.Border
	case AreaContent:
		return Edge{
			Top:    b.Border.Top + b.Padding.Top,
			Right:  b.Border.Right + b.Padding.Right,
			Bottom: b.Border.Bottom + b.Padding.Bottom,
			Left:   b.Border.Left + b.Padding.Left,
		}
	default:
		return Edge{}
	}
}

// CornerRadii are the computed border radii of a box, one per corner.
type CornerRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft float32
}

// UniformRadii returns radii with the same value at every corner.
func UniformRadii(r float32) CornerRadii {
	return CornerRadii{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// IsZero returns true if no corner is rounded.
func (c CornerRadii) IsZero() bool {
	return c.TopLeft <= 0 && c.TopRight <= 0 && c.BottomRight <= 0 && c.BottomLeft <= 0
}

// Vec4 returns the radii as a vector in top-left, top-right,
// bottom-right, bottom-left order.
func (c CornerRadii) Vec4() geom.Vec4f {
	return geom.Vec4f{X: c.TopLeft, Y: c.TopRight, Z: c.BottomRight, W: c.BottomLeft}
}

// ComputedValues are the resolved style values the render state reads.
type ComputedValues struct {
	BorderRadius CornerRadii
}
