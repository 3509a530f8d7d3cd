package renderstate

import (
	"testing"

	"github.com/gogpu/renderstate/element"
	"github.com/gogpu/renderstate/geom"
	"github.com/gogpu/renderstate/mesh"
)

func clipNodes() (outer, inner *element.Node) {
	outer = element.NewNode("outer", element.NewBox(100, 100))
	outer.SetOffset(geom.V2f(10, 20))
	outer.SetTransform(geom.Translate(4, 4, 0))
	inner = outer.AppendChild(element.NewNode("inner", element.NewBox(50, 50)))
	inner.SetOffset(geom.V2f(5, 5))
	inner.SetBorderRadius(element.UniformRadii(8))
	return outer, inner
}

func TestSetClipMaskOrderAndRoles(t *testing.T) {
	b := &clipBackend{}
	g := &countingGeometry{}
	s := NewStack(b, WithClipGeometry(g))
	outer, inner := clipNodes()
	third := inner.AppendChild(element.NewNode("third", element.NewBox(10, 10)))

	active := translation(9, 9)
	s.SetTransform(active)
	b.reset()

	s.SetClipMask(element.ClipList{
		{Element: outer, Area: element.AreaPadding},
		{Element: inner, Area: element.AreaBorder},
		{Element: third, Area: element.AreaContent},
	})

	assertCalls(t, b.calls,
		"EnableClipMask(true)",
		"SetTransform(4,4)",
		"RenderToClipMask(Clip)",
		"SetTransform(nil)",
		"RenderToClipMask(ClipIntersect)",
		"RenderToClipMask(ClipIntersect)",
		"SetTransform(9,9)",
	)
	if g.calls != 3 {
		t.Errorf("geometry generated %d times, want 3", g.calls)
	}
	wantAreas := []element.Area{element.AreaPadding, element.AreaBorder, element.AreaContent}
	for i, a := range wantAreas {
		if g.areas[i] != a {
			t.Errorf("shape %d area = %v, want %v", i, g.areas[i], a)
		}
	}
	wantOffsets := []geom.Vec2f{geom.V2f(10, 20), geom.V2f(15, 25), geom.V2f(15, 25)}
	for i, o := range wantOffsets {
		if b.offsets[i] != o {
			t.Errorf("shape %d offset = %v, want %v", i, b.offsets[i], o)
		}
	}
	if s.Transform() != active {
		t.Error("clip application did not restore the active transform")
	}
}

func TestSetClipMaskRoleCounts(t *testing.T) {
	for n := 1; n <= 4; n++ {
		b := &clipBackend{}
		g := &countingGeometry{}
		s := NewStack(b, WithClipGeometry(g))

		var clips element.ClipList
		for i := 0; i < n; i++ {
			clips = append(clips, element.Clip{Element: element.NewNode("n", element.NewBox(5, 5)), Area: element.AreaBorder})
		}
		s.SetClipMask(clips)

		if got := b.count("EnableClipMask(true)"); got != 1 {
			t.Errorf("n=%d: enable commands = %d, want 1", n, got)
		}
		if g.calls != n {
			t.Errorf("n=%d: generations = %d, want %d", n, g.calls, n)
		}
		if got := b.count("RenderToClipMask(Clip)"); got != 1 {
			t.Errorf("n=%d: replace tags = %d, want 1", n, got)
		}
		if got := b.count("RenderToClipMask(ClipIntersect)"); got != n-1 {
			t.Errorf("n=%d: intersect tags = %d, want %d", n, got, n-1)
		}
	}
}

func TestSetClipMaskSameListIsNoop(t *testing.T) {
	b := &clipBackend{}
	g := &countingGeometry{}
	s := NewStack(b, WithClipGeometry(g))
	outer, _ := clipNodes()

	clips := element.ClipList{{Element: outer, Area: element.AreaBorder}}
	s.SetClipMask(clips)
	b.reset()
	g.calls = 0

	// A distinct slice with equal contents is still the same chain.
	s.SetClipMask(element.ClipList{{Element: outer, Area: element.AreaBorder}})
	if len(b.calls) != 0 || g.calls != 0 {
		t.Errorf("equal clip list issued %v and %d generations", b.calls, g.calls)
	}
}

func TestSetClipMaskEmptyAfterNonEmpty(t *testing.T) {
	b := &clipBackend{}
	g := &countingGeometry{}
	s := NewStack(b, WithClipGeometry(g))
	outer, inner := clipNodes()

	s.SetClipMask(element.ClipList{{Element: outer, Area: element.AreaBorder}, {Element: inner, Area: element.AreaBorder}})
	b.reset()
	g.calls = 0

	s.SetClipMask(nil)
	assertCalls(t, b.calls, "EnableClipMask(false)")
	if g.calls != 0 {
		t.Errorf("disabling the clip mask generated %d shapes", g.calls)
	}

	// Clearing an already empty mask does nothing.
	b.reset()
	s.SetClipMask(element.ClipList{})
	if len(b.calls) != 0 {
		t.Errorf("clearing an empty mask issued %v", b.calls)
	}
}

func TestSetClipMaskCopiesList(t *testing.T) {
	b := &clipBackend{}
	s := NewStack(b)
	outer, inner := clipNodes()

	clips := element.ClipList{{Element: outer, Area: element.AreaBorder}}
	s.SetClipMask(clips)
	clips[0].Element = inner
	b.reset()

	// The stored chain still holds outer, so setting inner is a change.
	s.SetClipMask(element.ClipList{{Element: inner, Area: element.AreaBorder}})
	if b.count("EnableClipMask(true)") != 1 {
		t.Errorf("calls = %v, want the mask to be rebuilt", b.calls)
	}
}

func TestSetClipMaskWithoutRenderer(t *testing.T) {
	b := &recordingBackend{}
	g := &countingGeometry{}
	s := NewStack(b, WithClipGeometry(g))
	outer, _ := clipNodes()

	s.SetClipMask(element.ClipList{{Element: outer, Area: element.AreaBorder}})
	assertCalls(t, b.calls, "EnableClipMask(true)", "SetTransform(4,4)", "SetTransform(nil)")
	if g.calls != 1 {
		t.Errorf("generations = %d, want 1", g.calls)
	}
}

func TestPopRestoresClipMask(t *testing.T) {
	b := &clipBackend{}
	s := NewStack(b)
	outer, inner := clipNodes()

	outerClip := element.ClipList{{Element: outer, Area: element.AreaPadding}}
	s.SetClipMask(outerClip)
	s.Push()
	s.SetClipMask(append(outerClip.Clone(), element.Clip{Element: inner, Area: element.AreaBorder}))
	b.reset()

	s.Pop()
	if got := b.count("RenderToClipMask(Clip)"); got != 1 {
		t.Errorf("replace tags on Pop = %d, want 1", got)
	}
	if got := b.count("RenderToClipMask(ClipIntersect)"); got != 0 {
		t.Errorf("intersect tags on Pop = %d, want 0", got)
	}
	if !s.Current().Clips.Equal(outerClip) {
		t.Error("Pop did not restore the outer clip chain")
	}
}

func TestDefaultClipGeometry(t *testing.T) {
	var got *mesh.Mesh
	b := &meshCapture{fn: func(m *mesh.Mesh) { got = m }}
	s := NewStack(b)
	s.SetClipMask(element.ClipList{{Element: element.NewNode("n", element.NewBox(10, 10)), Area: element.AreaBorder}})
	if got == nil || got.TriangleCount() == 0 {
		t.Fatal("default geometry produced no triangles")
	}
}

type meshCapture struct {
	recordingBackend
	fn func(*mesh.Mesh)
}

func (b *meshCapture) RenderToClipMask(_ mesh.ClipMaskOperation, m *mesh.Mesh, _ geom.Vec2f) {
	b.fn(m)
}
