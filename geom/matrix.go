package geom

import "github.com/chewxy/math32"

// Matrix4 is a 4x4 float32 transformation matrix stored in column-major
// order: element (row r, column c) lives at index c*4+r.
//
// This is the layout GPU backends expect, so a Matrix4 can be uploaded
// without transposition.
type Matrix4 [16]float32

// Identity returns the identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate creates a translation matrix.
func Translate(x, y, z float32) Matrix4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scale creates a scaling matrix.
func Scale(x, y, z float32) Matrix4 {
	m := Identity()
	m[0], m[5], m[10] = x, y, z
	return m
}

// RotateZ creates a rotation about the Z axis (angle in radians).
// With Y pointing down this rotates clockwise on screen.
func RotateZ(angle float32) Matrix4 {
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)
	m := Identity()
	m[0], m[1] = cos, sin
	m[4], m[5] = -sin, cos
	return m
}

// At returns the element at row r and column c.
func (m Matrix4) At(r, c int) float32 {
	return m[c*4+r]
}

// Multiply returns m * other. Applying the result to a point applies
// other first, then m.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var out Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * other[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// TransformPoint applies the matrix to the point (x, y, 0, 1) and
// returns the projected 2D result. A zero w component leaves the point
// unprojected.
func (m Matrix4) TransformPoint(p Vec2f) Vec2f {
	x := m[0]*p.X + m[4]*p.Y + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[13]
	w := m[3]*p.X + m[7]*p.Y + m[15]
	if w != 0 && w != 1 {
		x /= w
		y /= w
	}
	return Vec2f{X: x, Y: y}
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (m Matrix4) IsIdentity() bool {
	return m == Identity()
}

// Equal reports whether every element of m and other differs by at most
// epsilon.
func (m Matrix4) Equal(other Matrix4, epsilon float32) bool {
	for i := range m {
		if math32.Abs(m[i]-other[i]) > epsilon {
			return false
		}
	}
	return true
}
