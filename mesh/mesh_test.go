package mesh

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/gogpu/renderstate/element"
	"github.com/gogpu/renderstate/geom"
)

// meshArea sums the absolute area of all triangles.
func meshArea(m *Mesh) float32 {
	var total float32
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		total += math32.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) * 0.5
	}
	return total
}

func TestGenerateBackgroundSquareCorners(t *testing.T) {
	m := GenerateBackground(element.NewBox(40, 20), element.CornerRadii{}, Opaque, element.AreaBorder)

	if got := len(m.Vertices); got != 5 {
		t.Errorf("vertices = %d, want 5 (center + 4 corners)", got)
	}
	if got := m.TriangleCount(); got != 4 {
		t.Errorf("triangles = %d, want 4", got)
	}
	if got := meshArea(m); math32.Abs(got-800) > 1e-3 {
		t.Errorf("area = %v, want 800", got)
	}
	for i, v := range m.Vertices {
		if v.Colour != Opaque {
			t.Errorf("vertex %d colour = %v, want opaque", i, v.Colour)
		}
	}
}

func TestGenerateBackgroundRoundedArea(t *testing.T) {
	const w, h, r = 100, 60, 10
	m := GenerateBackground(element.NewBox(w, h), element.UniformRadii(r), Opaque, element.AreaBorder)

	exact := float32(w*h) - (4-math32.Pi)*r*r
	got := meshArea(m)
	if got >= w*h {
		t.Errorf("rounded area %v not smaller than rectangle %v", got, w*h)
	}
	if math32.Abs(got-exact) > 10 {
		t.Errorf("rounded area = %v, want about %v", got, exact)
	}
}

func TestGenerateBackgroundPaddingArea(t *testing.T) {
	box := element.Box{
		Content: geom.V2f(50, 50),
		Border:  element.Uniform(4),
	}
	m := GenerateBackground(box, element.UniformRadii(4), Opaque, element.AreaPadding)

	// Radii shrink to zero, leaving a plain 50x50 square at (4, 4).
	if got := len(m.Vertices); got != 5 {
		t.Fatalf("vertices = %d, want 5", got)
	}
	if got := meshArea(m); math32.Abs(got-2500) > 1e-3 {
		t.Errorf("area = %v, want 2500", got)
	}
	if got, want := m.Vertices[1].Position, geom.V2f(4, 4); got != want {
		t.Errorf("top-left = %v, want %v", got, want)
	}
}

func TestGenerateBackgroundOversizedRadii(t *testing.T) {
	m := GenerateBackground(element.NewBox(20, 20), element.UniformRadii(100), Opaque, element.AreaBorder)
	for i, v := range m.Vertices {
		p := v.Position
		if p.X < -1e-4 || p.X > 20+1e-4 || p.Y < -1e-4 || p.Y > 20+1e-4 {
			t.Fatalf("vertex %d = %v outside the box", i, p)
		}
	}
	// Fully rounded square approximates a circle of radius 10.
	if got, want := meshArea(m), math32.Pi*100; math32.Abs(got-want) > 10 {
		t.Errorf("area = %v, want about %v", got, want)
	}
}

func TestGenerateBackgroundEmpty(t *testing.T) {
	m := GenerateBackground(element.NewBox(0, 10), element.CornerRadii{}, Opaque, element.AreaBorder)
	if m.TriangleCount() != 0 || len(m.Vertices) != 0 {
		t.Errorf("empty box produced %d vertices", len(m.Vertices))
	}
}

type mockRenderer struct {
	ops          []ClipMaskOperation
	translations []geom.Vec2f
}

func (r *mockRenderer) RenderToClipMask(op ClipMaskOperation, _ *Mesh, translation geom.Vec2f) {
	r.ops = append(r.ops, op)
	r.translations = append(r.translations, translation)
}

func TestSetClipMask(t *testing.T) {
	r := &mockRenderer{}
	m := Tessellator{}.Generate(element.NewBox(10, 10), element.CornerRadii{}, element.AreaBorder)

	m.SetClipMask(r, ClipMaskClipIntersect, geom.V2f(3, 4))
	if len(r.ops) != 1 || r.ops[0] != ClipMaskClipIntersect {
		t.Fatalf("ops = %v, want [ClipIntersect]", r.ops)
	}
	if r.translations[0] != geom.V2f(3, 4) {
		t.Errorf("translation = %v, want (3, 4)", r.translations[0])
	}

	// Nil renderer is ignored.
	m.SetClipMask(nil, ClipMaskClip, geom.Vec2f{})
}

func TestClipMaskOperationString(t *testing.T) {
	tests := []struct {
		op   ClipMaskOperation
		want string
	}{
		{ClipMaskClip, "Clip"},
		{ClipMaskClipIntersect, "ClipIntersect"},
		{ClipMaskClipOut, "ClipOut"},
		{ClipMaskOperation(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
