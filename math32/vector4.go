// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W components.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector3 returns the X, Y, Z components.
func (v Vector4) Vector3() Vector3 {
	return Vec3(v.X, v.Y, v.Z)
}

// MulMatrix4 returns v transformed by m.
func (v Vector4) MulMatrix4(m *Matrix4) Vector4 {
	return Vec4(
		m[0]*v.X+m[4]*v.Y+m[8]*v.Z+m[12]*v.W,
		m[1]*v.X+m[5]*v.Y+m[9]*v.Z+m[13]*v.W,
		m[2]*v.X+m[6]*v.Y+m[10]*v.Z+m[14]*v.W,
		m[3]*v.X+m[7]*v.Y+m[11]*v.Z+m[15]*v.W,
	)
}

// Lerp returns the linear interpolation between v and other by alpha.
func (v Vector4) Lerp(other Vector4, alpha float32) Vector4 {
	return Vec4(Lerp(v.X, other.X, alpha), Lerp(v.Y, other.Y, alpha),
		Lerp(v.Z, other.Z, alpha), Lerp(v.W, other.W, alpha))
}

// PerspectiveDivide returns X, Y, Z divided by W.
func (v Vector4) PerspectiveDivide() Vector3 {
	if v.W == 0 {
		return v.Vector3()
	}
	iw := 1 / v.W
	return Vec3(v.X*iw, v.Y*iw, v.Z*iw)
}
