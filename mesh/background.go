package mesh

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/gogpu/renderstate/element"
	"github.com/gogpu/renderstate/geom"
)

// maxCornerSegments bounds the number of segments used per rounded corner.
const maxCornerSegments = 16

// Opaque is the full-opacity colour used for clip-mask geometry.
var Opaque = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// GenerateBackground tessellates the given area of box as a filled,
// optionally rounded rectangle. Positions are relative to the top-left
// corner of the border box.
//
// For the padding and content areas each radius shrinks by the widest
// adjacent edge between the border box and the area, clamped at zero.
// Radii whose sum exceeds a side length are scaled down uniformly.
// An area with no extent produces an empty mesh.
func GenerateBackground(box element.Box, radii element.CornerRadii, colour color.RGBA, area element.Area) *Mesh {
	pos := box.Position(area)
	size := box.Size(area)
	m := &Mesh{}
	if size.X <= 0 || size.Y <= 0 {
		return m
	}

	r := fitRadii(innerRadii(radii, box.Inset(area)), size)

	// Corner arcs in clockwise order (Y down), each with its arc center
	// and starting angle. Every arc sweeps a quarter turn.
	corners := [4]struct {
		radius float32
		center geom.Vec2f
		start  float32
	}{
		{r.TopLeft, geom.V2f(pos.X+r.TopLeft, pos.Y+r.TopLeft), math32.Pi},
		{r.TopRight, geom.V2f(pos.X+size.X-r.TopRight, pos.Y+r.TopRight), 1.5 * math32.Pi},
		{r.BottomRight, geom.V2f(pos.X+size.X-r.BottomRight, pos.Y+size.Y-r.BottomRight), 0},
		{r.BottomLeft, geom.V2f(pos.X+r.BottomLeft, pos.Y+size.Y-r.BottomLeft), 0.5 * math32.Pi},
	}

	center := geom.V2f(pos.X+size.X*0.5, pos.Y+size.Y*0.5)
	m.Vertices = append(m.Vertices, Vertex{Position: center, Colour: colour})

	for _, c := range corners {
		if c.radius <= 0 {
			m.Vertices = append(m.Vertices, Vertex{Position: c.center, Colour: colour})
			continue
		}
		n := cornerSegments(c.radius)
		for i := 0; i <= n; i++ {
			a := c.start + 0.5*math32.Pi*float32(i)/float32(n)
			p := geom.V2f(c.center.X+c.radius*math32.Cos(a), c.center.Y+c.radius*math32.Sin(a))
			m.Vertices = append(m.Vertices, Vertex{Position: p, Colour: colour})
		}
	}

	ring := int32(len(m.Vertices) - 1)
	m.Indices = make([]int32, 0, ring*3)
	for i := int32(1); i <= ring; i++ {
		next := i + 1
		if next > ring {
			next = 1
		}
		m.Indices = append(m.Indices, 0, i, next)
	}
	return m
}

func cornerSegments(radius float32) int {
	n := int(math32.Ceil(radius * 0.5))
	if n < 1 {
		return 1
	}
	if n > maxCornerSegments {
		return maxCornerSegments
	}
	return n
}

func innerRadii(r element.CornerRadii, inset element.Edge) element.CornerRadii {
	shrink := func(radius, a, b float32) float32 {
		return math32.Max(0, radius-math32.Max(a, b))
	}
	return element.CornerRadii{
		TopLeft:     shrink(r.TopLeft, inset.Top, inset.Left),
		TopRight:    shrink(r.TopRight, inset.Top, inset.Right),
		BottomRight: shrink(r.BottomRight, inset.Bottom, inset.Right),
		BottomLeft:  shrink(r.BottomLeft, inset.Bottom, inset.Left),
	}
}

func fitRadii(r element.CornerRadii, size geom.Vec2f) element.CornerRadii {
	f := float32(1)
	fit := func(length, a, b float32) {
		if sum := a + b; sum > length {
			f = math32.Min(f, length/sum)
		}
	}
	fit(size.X, r.TopLeft, r.TopRight)
	fit(size.X, r.BottomLeft, r.BottomRight)
	fit(size.Y, r.TopLeft, r.BottomLeft)
	fit(size.Y, r.TopRight, r.BottomRight)
	if f == 1 {
		return r
	}
	return element.CornerRadii{
		TopLeft:     r.TopLeft * f,
		TopRight:    r.TopRight * f,
		BottomRight: r.BottomRight * f,
		BottomLeft:  r.BottomLeft * f,
	}
}

// Tessellator generates opaque clip-mask geometry.
type Tessellator struct{}

// Generate returns the clip shape for area of box with the given radii.
func (Tessellator) Generate(box element.Box, radii element.CornerRadii, area element.Area) *Mesh {
	return GenerateBackground(box, radii, Opaque, area)
}
