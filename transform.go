package batch

import "github.com/go-gl/mathgl/mgl32"

// Transform maps vertex positions or texture coordinates. The batcher
// applies it to every vertex at emission time.
type Transform interface {
	TransformPoint(x, y, z float32) (float32, float32, float32)
}

// Matrix4 is a full 4x4 transform. Points are treated as (x, y, z, 1) and
// divided by w when the result is projective.
type Matrix4 struct {
	M mgl32.Mat4
}

// Identity4 returns the 4x4 identity transform.
func Identity4() Matrix4 {
	return Matrix4{M: mgl32.Ident4()}
}

// Translate4 returns a 3D translation.
func Translate4(x, y, z float32) Matrix4 {
	return Matrix4{M: mgl32.Translate3D(x, y, z)}
}

// Scale4 returns a 3D scale.
func Scale4(x, y, z float32) Matrix4 {
	return Matrix4{M: mgl32.Scale3D(x, y, z)}
}

// RotateZ4 returns a rotation about the Z axis (angle in radians).
func RotateZ4(angle float32) Matrix4 {
	return Matrix4{M: mgl32.HomogRotate3DZ(angle)}
}

// Ortho2D returns the orthographic projection mapping the rectangle
// [left,right] x [bottom,top] to clip space.
func Ortho2D(left, right, bottom, top float32) Matrix4 {
	return Matrix4{M: mgl32.Ortho2D(left, right, bottom, top)}
}

// Multiply returns m * other: other is applied first.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	return Matrix4{M: m.M.Mul4(other.M)}
}

// TransformPoint implements Transform.
func (m Matrix4) TransformPoint(x, y, z float32) (float32, float32, float32) {
	v := m.M.Mul4x1(mgl32.Vec4{x, y, z, 1})
	if w := v.W(); w != 0 && w != 1 {
		return v.X() / w, v.Y() / w, v.Z() / w
	}
	return v.X(), v.Y(), v.Z()
}

// Affine4 lifts a 2D affine Matrix into a Matrix4.
func Affine4(m Matrix) Matrix4 {
	// mgl32 matrices are column-major.
	return Matrix4{M: mgl32.Mat4{
		m.A, m.D, 0, 0,
		m.B, m.E, 0, 0,
		0, 0, 1, 0,
		m.C, m.F, 0, 1,
	}}
}
