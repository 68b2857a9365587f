// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Quat is a quaternion with X, Y, Z and W components,
// used to represent rotations.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuat returns a new quaternion from the given components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// QuatIdentity returns the identity (no rotation) quaternion.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// NewQuatAxisAngle returns a quaternion rotating by angle radians
// around the given axis, which does not need to be normalized.
func NewQuatAxisAngle(axis Vector3, angle float32) Quat {
	q := Quat{}
	q.SetFromAxisAngle(axis, angle)
	return q
}

// NewQuatEuler returns a quaternion from Euler angles in radians,
// applied in XYZ order.
func NewQuatEuler(euler Vector3) Quat {
	q := Quat{}
	q.SetFromEuler(euler)
	return q
}

// IsNil returns true if all components are zero,
// which is not a valid rotation.
func (q Quat) IsNil() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0
}

// SetIdentity sets q to the identity quaternion.
func (q *Quat) SetIdentity() {
	*q = QuatIdentity()
}

// SetFromAxisAngle sets q to a rotation of angle radians around axis.
func (q *Quat) SetFromAxisAngle(axis Vector3, angle float32) {
	n := axis.Normal()
	half := angle / 2
	s := Sin(half)
	q.X = n.X * s
	q.Y = n.Y * s
	q.Z = n.Z * s
	q.W = Cos(half)
}

// SetFromEuler sets q from Euler angles in radians, XYZ order.
func (q *Quat) SetFromEuler(euler Vector3) {
	c1, s1 := Cos(euler.X/2), Sin(euler.X/2)
	c2, s2 := Cos(euler.Y/2), Sin(euler.Y/2)
	c3, s3 := Cos(euler.Z/2), Sin(euler.Z/2)
	q.X = s1*c2*c3 + c1*s2*s3
	q.Y = c1*s2*c3 - s1*c2*s3
	q.Z = c1*c2*s3 + s1*s2*c3
	q.W = c1*c2*c3 - s1*s2*s3
}

// Mul returns the product q * other, which applies other first.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.X*other.W + q.W*other.X + q.Y*other.Z - q.Z*other.Y,
		Y: q.Y*other.W + q.W*other.Y + q.Z*other.X - q.X*other.Z,
		Z: q.Z*other.W + q.W*other.Z + q.X*other.Y - q.Y*other.X,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Dot returns the dot product of q and other.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Length returns the length of q.
func (q Quat) Length() float32 {
	return Sqrt(q.Dot(q))
}

// Normal returns q scaled to unit length; a zero quaternion
// yields the identity.
func (q Quat) Normal() Quat {
	l := q.Length()
	if l == 0 {
		return QuatIdentity()
	}
	il := 1 / l
	return Quat{q.X * il, q.Y * il, q.Z * il, q.W * il}
}

// Slerp returns the spherical linear interpolation between q and other by t.
func (q Quat) Slerp(other Quat, t float32) Quat {
	switch {
	case t <= 0:
		return q
	case t >= 1:
		return other
	}
	cosHalf := q.Dot(other)
	if cosHalf < 0 {
		other = Quat{-other.X, -other.Y, -other.Z, -other.W}
		cosHalf = -cosHalf
	}
	if cosHalf >= 1 {
		return q
	}
	sqrSin := 1 - cosHalf*cosHalf
	if sqrSin <= 1e-6 {
		s := 1 - t
		return Quat{
			s*q.X + t*other.X,
			s*q.Y + t*other.Y,
			s*q.Z + t*other.Z,
			s*q.W + t*other.W,
		}.Normal()
	}
	sinHalf := Sqrt(sqrSin)
	halfTheta := Atan2(sinHalf, cosHalf)
	ra := Sin((1-t)*halfTheta) / sinHalf
	rb := Sin(t*halfTheta) / sinHalf
	return Quat{
		q.X*ra + other.X*rb,
		q.Y*ra + other.Y*rb,
		q.Z*ra + other.Z*rb,
		q.W*ra + other.W*rb,
	}
}
