// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is a 4x4 matrix stored in column-major order:
// element (row r, column c) is at index c*4+r.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4].
func Identity4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// SetIdentity sets m to the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the matrix product m * other,
// which applies other first when transforming vectors.
func (m *Matrix4) Mul(other *Matrix4) Matrix4 {
	var r Matrix4
	r.MulMatrices(m, other)
	return r
}

// MulMatrices sets m to the matrix product a * b.
// m may alias a or b.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	var r Matrix4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = a[row]*b[c*4] + a[4+row]*b[c*4+1] + a[8+row]*b[c*4+2] + a[12+row]*b[c*4+3]
		}
	}
	*m = r
}

// SetTransform sets m to the transform composed of the given
// position, rotation, and scale (scale applied first, then rotation,
// then translation).
func (m *Matrix4) SetTransform(pos Vector3, q Quat, scale Vector3) {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, xy, xz := q.X*x2, q.X*y2, q.X*z2
	yy, yz, zz := q.Y*y2, q.Y*z2, q.Z*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	m[0] = (1 - (yy + zz)) * scale.X
	m[1] = (xy + wz) * scale.X
	m[2] = (xz - wy) * scale.X
	m[3] = 0

	m[4] = (xy - wz) * scale.Y
	m[5] = (1 - (xx + zz)) * scale.Y
	m[6] = (yz + wx) * scale.Y
	m[7] = 0

	m[8] = (xz + wy) * scale.Z
	m[9] = (yz - wx) * scale.Z
	m[10] = (1 - (xx + yy)) * scale.Z
	m[11] = 0

	m[12] = pos.X
	m[13] = pos.Y
	m[14] = pos.Z
	m[15] = 1
}

// SetPerspective sets m to a perspective projection with the given
// vertical field of view in degrees, aspect ratio (width / height),
// and near and far clipping distances.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	f := 1 / Tan(DegToRad(fov)/2)
	*m = Matrix4{}
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = 2 * far * near / (near - far)
}

// SetOrthographic sets m to an orthographic projection of the box
// bounded by the given view-space planes.
func (m *Matrix4) SetOrthographic(left, right, top, bottom, near, far float32) {
	*m = Matrix4{}
	w := right - left
	h := top - bottom
	d := far - near
	m[0] = 2 / w
	m[5] = 2 / h
	m[10] = -2 / d
	m[12] = -(right + left) / w
	m[13] = -(top + bottom) / h
	m[14] = -(far + near) / d
	m[15] = 1
}

// SetLookAt sets m to the view matrix of an eye at the given position
// looking at target, with the given up direction. When up is parallel
// to the view direction, a perpendicular axis is substituted.
func (m *Matrix4) SetLookAt(eye, target, up Vector3) {
	z := eye.Sub(target)
	if z.LengthSquared() == 0 {
		z.Z = 1
	}
	z = z.Normal()
	x := up.Cross(z)
	if x.LengthSquared() == 0 {
		if Abs(up.Z) == 1 {
			z.X += 0.0001
		} else {
			z.Z += 0.0001
		}
		z = z.Normal()
		x = up.Cross(z)
	}
	x = x.Normal()
	y := z.Cross(x)

	m[0], m[4], m[8], m[12] = x.X, x.Y, x.Z, -x.Dot(eye)
	m[1], m[5], m[9], m[13] = y.X, y.Y, y.Z, -y.Dot(eye)
	m[2], m[6], m[10], m[14] = z.X, z.Y, z.Z, -z.Dot(eye)
	m[3], m[7], m[11], m[15] = 0, 0, 0, 1
}

// Row returns the first three elements of the given row.
func (m *Matrix4) Row(r int) Vector3 {
	return Vec3(m[r], m[4+r], m[8+r])
}

// Pos returns the translation part of m.
func (m *Matrix4) Pos() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// NormalMatrix returns the inverse transpose of the upper-left 3x3
// part of m, used to transform surface normals. A singular matrix
// yields the zero matrix.
func (m *Matrix4) NormalMatrix() Matrix3 {
	a := func(r, c int) float32 { return m[c*4+r] }
	c00 := a(1, 1)*a(2, 2) - a(1, 2)*a(2, 1)
	c01 := -(a(1, 0)*a(2, 2) - a(1, 2)*a(2, 0))
	c02 := a(1, 0)*a(2, 1) - a(1, 1)*a(2, 0)
	c10 := -(a(0, 1)*a(2, 2) - a(0, 2)*a(2, 1))
	c11 := a(0, 0)*a(2, 2) - a(0, 2)*a(2, 0)
	c12 := -(a(0, 0)*a(2, 1) - a(0, 1)*a(2, 0))
	c20 := a(0, 1)*a(1, 2) - a(0, 2)*a(1, 1)
	c21 := -(a(0, 0)*a(1, 2) - a(0, 2)*a(1, 0))
	c22 := a(0, 0)*a(1, 1) - a(0, 1)*a(1, 0)
	det := a(0, 0)*c00 + a(0, 1)*c01 + a(0, 2)*c02
	if det == 0 {
		return Matrix3{}
	}
	id := 1 / det
	// (row r, column c) = cofactor(r, c) / det, stored column-major
	return Matrix3{
		c00 * id, c10 * id, c20 * id,
		c01 * id, c11 * id, c21 * id,
		c02 * id, c12 * id, c22 * id,
	}
}

// Matrix3 is a 3x3 matrix stored in column-major order.
type Matrix3 [9]float32
