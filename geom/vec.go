// Package geom provides the small vector and matrix types shared by the
// render state stack, the element model, and the backends.
package geom

// Vec2i is a 2D integer vector. It is used for pixel-aligned scissor
// origins and sizes.
type Vec2i struct {
	X, Y int
}

// V2i is a convenience function to create a Vec2i.
func V2i(x, y int) Vec2i {
	return Vec2i{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2i) Add(w Vec2i) Vec2i {
	return Vec2i{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2i) Sub(w Vec2i) Vec2i {
	return Vec2i{X: v.X - w.X, Y: v.Y - w.Y}
}

// Vec2f is a 2D float32 vector used for layout positions and offsets.
type Vec2f struct {
	X, Y float32
}

// V2f is a convenience function to create a Vec2f.
func V2f(x, y float32) Vec2f {
	return Vec2f{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2f) Add(w Vec2f) Vec2f {
	return Vec2f{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2f) Sub(w Vec2f) Vec2f {
	return Vec2f{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2f) Mul(s float32) Vec2f {
	return Vec2f{X: v.X * s, Y: v.Y * s}
}

// Vec4f is a 4-component float32 vector. Border radii use it in
// top-left, top-right, bottom-right, bottom-left order.
type Vec4f struct {
	X, Y, Z, W float32
}
