// Package raster provides a software backend for the recording system.
// It keeps an 8-bit clip mask and a scissor rectangle and rasterizes
// clip geometry with golang.org/x/image/vector.
//
// The raster backend serves multiple purposes:
//   - Reference implementation for other backends
//   - Pixel-accurate comparison testing of clip output
//   - Visual inspection of clip state as a PNG
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/renderstate/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("raster")
//
//	// Or create directly
//	backend := raster.NewBackend()
//
//	// Playback recording
//	rec.Playback(backend)
//
//	// Get output
//	backend.SavePNG("clip.png")
//	img := backend.Image()
package raster

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/renderstate"
	"github.com/gogpu/renderstate/geom"
	"github.com/gogpu/renderstate/mesh"
	"github.com/gogpu/renderstate/recording"
)

func init() {
	recording.Register("raster", func() renderstate.Backend {
		return NewBackend()
	})
}

// Backend renders clip state to an alpha image.
// A pixel's visibility is its clip mask coverage when the mask is
// enabled, limited to the scissor rectangle when scissoring is enabled.
type Backend struct {
	width  int
	height int

	mask    *image.Alpha
	scratch *image.Alpha
	raster  *vector.Rasterizer

	maskEnabled    bool
	scissorEnabled bool
	scissor        image.Rectangle

	transform *geom.Matrix4
}

// Ensure Backend implements all required interfaces.
var (
	_ renderstate.Backend     = (*Backend)(nil)
	_ mesh.Renderer           = (*Backend)(nil)
	_ recording.Lifecycle     = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin initializes the backend for the given viewport. The clip mask
// starts fully covered.
func (b *Backend) Begin(width, height int) error {
	b.width = width
	b.height = height
	r := image.Rect(0, 0, width, height)
	b.mask = image.NewAlpha(r)
	fill(b.mask, 0xff)
	b.scratch = image.NewAlpha(r)
	b.raster = vector.NewRasterizer(width, height)
	b.maskEnabled = false
	b.scissorEnabled = false
	b.scissor = r
	b.transform = nil
	renderstate.Logger().Debug("raster: begin", "width", width, "height", height)
	return nil
}

// End finalizes the rendering.
// After End is called, output methods (WriteTo, SavePNG) can be used.
func (b *Backend) End() error {
	return nil
}

// EnableScissorRegion implements renderstate.Backend.
func (b *Backend) EnableScissorRegion(enable bool) {
	b.scissorEnabled = enable
}

// SetScissorRegion implements renderstate.Backend. The rectangle is
// clamped to the viewport.
func (b *Backend) SetScissorRegion(x, y, width, height int) {
	b.scissor = image.Rect(x, y, x+width, y+height).Intersect(b.bounds())
}

// EnableClipMask implements renderstate.Backend. The mask contents are
// kept across disable and enable.
func (b *Backend) EnableClipMask(enable bool) bool {
	b.maskEnabled = enable
	return true
}

// SetTransform implements renderstate.Backend.
func (b *Backend) SetTransform(m *geom.Matrix4) {
	if m == nil {
		b.transform = nil
		return
	}
	v := *m
	b.transform = &v
}

// RenderToClipMask implements mesh.Renderer. The mesh is translated,
// then transformed by the active transform, and combined into the mask.
func (b *Backend) RenderToClipMask(op mesh.ClipMaskOperation, m *mesh.Mesh, translation geom.Vec2f) {
	if b.mask == nil || m == nil {
		return
	}

	b.rasterize(m, translation)

	switch op {
	case mesh.ClipMaskClip:
		copy(b.mask.Pix, b.scratch.Pix)
	case mesh.ClipMaskClipIntersect:
		for i, s := range b.scratch.Pix {
			b.mask.Pix[i] = min(b.mask.Pix[i], s)
		}
	case mesh.ClipMaskClipOut:
		for i, s := range b.scratch.Pix {
			b.mask.Pix[i] = min(b.mask.Pix[i], 0xff-s)
		}
	}
}

func (b *Backend) rasterize(m *mesh.Mesh, translation geom.Vec2f) {
	fill(b.scratch, 0)
	b.raster.Reset(b.width, b.height)
	b.raster.DrawOp = draw.Src

	xf := geom.Identity()
	if b.transform != nil {
		xf = *b.transform
	}
	place := func(p geom.Vec2f) geom.Vec2f {
		return xf.TransformPoint(p.Add(translation))
	}

	for i := range m.TriangleCount() {
		p0, p1, p2 := m.Triangle(i)
		p0, p1, p2 = place(p0), place(p1), place(p2)
		b.raster.MoveTo(p0.X, p0.Y)
		b.raster.LineTo(p1.X, p1.Y)
		b.raster.LineTo(p2.X, p2.Y)
		b.raster.ClosePath()
	}
	b.raster.Draw(b.scratch, b.scratch.Bounds(), image.Opaque, image.Point{})
}

// Coverage returns the visibility of pixel (x, y) in [0, 255].
func (b *Backend) Coverage(x, y int) uint8 {
	if b.mask == nil || !image.Pt(x, y).In(b.bounds()) {
		return 0
	}
	if b.scissorEnabled && !image.Pt(x, y).In(b.scissor) {
		return 0
	}
	if !b.maskEnabled {
		return 0xff
	}
	return b.mask.AlphaAt(x, y).A
}

// Mask returns the clip mask contents, regardless of whether masking
// is enabled. It returns nil before Begin.
func (b *Backend) Mask() *image.Alpha {
	return b.mask
}

// Image returns the combined visibility of every pixel.
func (b *Backend) Image() image.Image {
	img := image.NewAlpha(b.bounds())
	for y := range b.height {
		for x := range b.width {
			img.Pix[img.PixOffset(x, y)] = b.Coverage(x, y)
		}
	}
	return img
}

// WriteTo encodes Image as PNG to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.Image())
	return cw.n, err
}

// SavePNG writes Image to a PNG file.
func (b *Backend) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided output location
	if err != nil {
		return err
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Width returns the viewport width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the viewport height.
func (b *Backend) Height() int {
	return b.height
}

func (b *Backend) bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

func fill(img *image.Alpha, v uint8) {
	for i := range img.Pix {
		img.Pix[i] = v
	}
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
