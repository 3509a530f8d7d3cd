package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/gogpu/renderstate"
	"github.com/gogpu/renderstate/element"
	"github.com/gogpu/renderstate/geom"
	"github.com/gogpu/renderstate/mesh"
	"github.com/gogpu/renderstate/recording"
)

func TestBackendRegistration(t *testing.T) {
	if !recording.IsRegistered("raster") {
		t.Fatal("raster backend not registered")
	}

	backend, err := recording.NewBackend("raster")
	if err != nil {
		t.Fatalf("failed to create raster backend: %v", err)
	}
	if _, ok := backend.(*Backend); !ok {
		t.Fatalf("backend is %T, not *raster.Backend", backend)
	}
}

func TestBackendLifecycle(t *testing.T) {
	backend := NewBackend()

	if err := backend.Begin(100, 50); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if backend.Width() != 100 || backend.Height() != 50 {
		t.Errorf("size = %dx%d, want 100x50", backend.Width(), backend.Height())
	}
	if err := backend.End(); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	bounds := backend.Image().Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 50 {
		t.Errorf("Image bounds = %v, want 100x50", bounds)
	}
}

// newStack returns a stack over a fresh 100x100 raster backend.
func newStack(t *testing.T) (*renderstate.Stack, *Backend) {
	t.Helper()
	b := NewBackend()
	if err := b.Begin(100, 100); err != nil {
		t.Fatal(err)
	}
	s := renderstate.NewStack(b)
	s.BeginRender()
	return s, b
}

func square(name string, x, y, size float32) *element.Node {
	n := element.NewNode(name, element.NewBox(size, size))
	n.SetOffset(geom.V2f(x, y))
	return n
}

type probe struct {
	x, y    int
	visible bool
}

func checkCoverage(t *testing.T, b *Backend, probes []probe) {
	t.Helper()
	for _, p := range probes {
		c := b.Coverage(p.x, p.y)
		if p.visible && c < 250 {
			t.Errorf("Coverage(%d, %d) = %d, want visible", p.x, p.y, c)
		}
		if !p.visible && c != 0 {
			t.Errorf("Coverage(%d, %d) = %d, want hidden", p.x, p.y, c)
		}
	}
}

func TestBackendClipMaskDisabledShowsAll(t *testing.T) {
	_, b := newStack(t)
	checkCoverage(t, b, []probe{{0, 0, true}, {50, 50, true}, {99, 99, true}})
}

func TestBackendClip(t *testing.T) {
	s, b := newStack(t)
	s.SetClipMask(element.ClipList{{Element: square("a", 10, 10, 40), Area: element.AreaBorder}})

	checkCoverage(t, b, []probe{
		{20, 20, true},
		{48, 48, true},
		{5, 5, false},
		{60, 60, false},
	})
}

func TestBackendClipIntersect(t *testing.T) {
	s, b := newStack(t)
	outer := square("outer", 10, 10, 40)
	inner := square("inner", 20, 20, 40)
	outer.AppendChild(inner)

	s.SetClipMask(element.ClipList{
		{Element: outer, Area: element.AreaBorder},
		{Element: inner, Area: element.AreaBorder},
	})

	checkCoverage(t, b, []probe{
		{40, 40, true},
		{20, 20, false},
		{60, 60, false},
	})
}

func TestBackendClipOut(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(100, 100); err != nil {
		t.Fatal(err)
	}
	b.EnableClipMask(true)
	hole := mesh.Tessellator{}.Generate(element.NewBox(20, 20), element.CornerRadii{}, element.AreaBorder)
	b.RenderToClipMask(mesh.ClipMaskClipOut, hole, geom.V2f(40, 40))

	checkCoverage(t, b, []probe{
		{10, 10, true},
		{50, 50, false},
		{70, 70, true},
	})
}

func TestBackendClipTransform(t *testing.T) {
	s, b := newStack(t)
	a := square("a", 0, 0, 20)
	a.SetTransform(geom.Translate(50, 0, 0))

	s.SetClipMask(element.ClipList{{Element: a, Area: element.AreaBorder}})

	checkCoverage(t, b, []probe{
		{60, 10, true},
		{10, 10, false},
	})
	if s.Transform() != nil {
		t.Error("transform not restored after clip application")
	}
}

func TestBackendRoundedClip(t *testing.T) {
	s, b := newStack(t)
	a := square("a", 0, 0, 80)
	a.SetBorderRadius(element.UniformRadii(30))

	s.SetClipMask(element.ClipList{{Element: a, Area: element.AreaBorder}})

	checkCoverage(t, b, []probe{
		{40, 40, true},
		{1, 1, false},
		{78, 78, false},
	})
}

func TestBackendScissor(t *testing.T) {
	s, b := newStack(t)
	s.EnableScissorRegion(geom.V2i(0, 0), geom.V2i(10, 10))

	checkCoverage(t, b, []probe{
		{5, 5, true},
		{20, 20, false},
	})

	s.DisableScissorRegion()
	checkCoverage(t, b, []probe{{20, 20, true}})
}

func TestBackendScissorClampsToViewport(t *testing.T) {
	b := NewBackend()
	if err := b.Begin(10, 10); err != nil {
		t.Fatal(err)
	}
	b.EnableScissorRegion(true)
	b.SetScissorRegion(5, 5, 100, 100)

	checkCoverage(t, b, []probe{{9, 9, true}, {4, 4, false}, {50, 50, false}})
}

func TestBackendPopRestoresMask(t *testing.T) {
	s, b := newStack(t)
	s.Push()
	s.SetClipMask(element.ClipList{{Element: square("a", 10, 10, 40), Area: element.AreaBorder}})
	s.Pop()

	checkCoverage(t, b, []probe{{80, 80, true}})
}

func TestBackendPlaybackMatchesDirect(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	s := renderstate.NewStack(rec)
	s.BeginRender()
	s.SetClipMask(element.ClipList{{Element: square("a", 10, 10, 40), Area: element.AreaBorder}})

	replayed := NewBackend()
	if err := rec.FinishRecording().Playback(replayed); err != nil {
		t.Fatalf("Playback failed: %v", err)
	}

	directStack, direct := newStack(t)
	directStack.SetClipMask(element.ClipList{{Element: square("a", 10, 10, 40), Area: element.AreaBorder}})

	if !bytes.Equal(replayed.Mask().Pix, direct.Mask().Pix) {
		t.Error("replayed mask differs from direct rendering")
	}
}

func TestBackendWriteTo(t *testing.T) {
	s, b := newStack(t)
	s.SetClipMask(element.ClipList{{Element: square("a", 10, 10, 40), Area: element.AreaBorder}})

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, buffer has %d", n, buf.Len())
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 100 {
		t.Errorf("PNG width = %d, want 100", img.Bounds().Dx())
	}
}

func TestBackendIgnoresClipBeforeBegin(t *testing.T) {
	b := NewBackend()
	m := mesh.Tessellator{}.Generate(element.NewBox(5, 5), element.CornerRadii{}, element.AreaBorder)
	b.RenderToClipMask(mesh.ClipMaskClip, m, geom.Vec2f{})
	if b.Mask() != nil {
		t.Error("mask allocated without Begin")
	}
	if b.Coverage(0, 0) != 0 {
		t.Error("coverage before Begin should be 0")
	}
}
