// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const StandardTol = 1.0e-5

func assertVector3(t *testing.T, want, got Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, StandardTol, "X of %v", got)
	assert.InDelta(t, want.Y, got.Y, StandardTol, "Y of %v", got)
	assert.InDelta(t, want.Z, got.Z, StandardTol, "Z of %v", got)
}

func TestMatrix4Mul(t *testing.T) {
	var tr, sc Matrix4
	tr.SetTransform(Vec3(1, 2, 3), QuatIdentity(), Vec3(1, 1, 1))
	sc.SetTransform(Vector3{}, QuatIdentity(), Vec3(2, 2, 2))

	p := Vec3(1, 1, 1)
	both := tr.Mul(&sc)
	assertVector3(t, Vec3(3, 4, 5), p.MulMatrix4(&both))

	id := Identity4()
	assert.Equal(t, tr, tr.Mul(id))
}

func TestPerspective(t *testing.T) {
	var m Matrix4
	m.SetPerspective(90, 2, 1, 10)

	near := Vec3(0, 0, -1).MulMatrix4AsVector4(&m, 1).PerspectiveDivide()
	far := Vec3(0, 0, -10).MulMatrix4AsVector4(&m, 1).PerspectiveDivide()
	assert.InDelta(t, -1, near.Z, StandardTol)
	assert.InDelta(t, 1, far.Z, StandardTol)

	// 90 degree fov: the top edge at distance d is at y = d
	top := Vec3(0, 3, -3).MulMatrix4AsVector4(&m, 1).PerspectiveDivide()
	assert.InDelta(t, 1, top.Y, StandardTol)
	// aspect 2: the right edge at distance d is at x = 2d
	right := Vec3(6, 0, -3).MulMatrix4AsVector4(&m, 1).PerspectiveDivide()
	assert.InDelta(t, 1, right.X, StandardTol)
}

func TestOrthographic(t *testing.T) {
	var m Matrix4
	m.SetOrthographic(-7, 7, 7, -7, 0.5, 15)
	assertVector3(t, Vec3(1, 1, -1), Vec3(7, 7, -0.5).MulMatrix4(&m))
	assertVector3(t, Vec3(-1, -1, 1), Vec3(-7, -7, -15).MulMatrix4(&m))
}

func TestLookAt(t *testing.T) {
	var m Matrix4
	eye := Vec3(-8, 4, 8)
	target := Vec3(0, 1, 0)
	m.SetLookAt(eye, target, Vec3(0, 1, 0))

	assertVector3(t, Vector3{}, eye.MulMatrix4(&m))
	dist := eye.DistanceTo(target)
	assertVector3(t, Vec3(0, 0, -dist), target.MulMatrix4(&m))

	// straight down: up is parallel to the view direction
	m.SetLookAt(Vec3(0, 10, 0), Vector3{}, Vec3(0, 1, 0))
	v := Vector3{}.MulMatrix4(&m)
	assert.InDelta(t, -10, v.Z, 1e-3)
	assert.False(t, IsNaN(m[0]))
}

func TestQuat(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(0, 1, 0), DegToRad(90))
	assertVector3(t, Vec3(0, 0, -1), Vec3(1, 0, 0).MulQuat(q))

	e := NewQuatEuler(Vec3(DegToRad(-90), 0, 0))
	assertVector3(t, Vec3(0, 0, -1), Vec3(0, 1, 0).MulQuat(e))
	// the floor plane normal (+Z) rotated -90 around X points up
	assertVector3(t, Vec3(0, 1, 0), Vec3(0, 0, 1).MulQuat(e))

	both := q.Mul(q)
	assertVector3(t, Vec3(-1, 0, 0), Vec3(1, 0, 0).MulQuat(both))

	half := QuatIdentity().Slerp(q, 0.5)
	s := Sqrt(2) / 2
	assertVector3(t, Vec3(s, 0, -s), Vec3(1, 0, 0).MulQuat(half))
	assert.InDelta(t, 1, half.Length(), StandardTol)
	assert.Equal(t, QuatIdentity(), QuatIdentity().Slerp(q, 0))
	assert.Equal(t, q, QuatIdentity().Slerp(q, 1))
}

func TestNormalMatrix(t *testing.T) {
	var m Matrix4
	m.SetTransform(Vec3(4, 5, 6), NewQuatAxisAngle(Vec3(1, 0, 0), DegToRad(-90)), Vec3(1, 1, 1))
	nm := m.NormalMatrix()
	assertVector3(t, Vec3(0, 1, 0), Vec3(0, 0, 1).MulMatrix3(&nm))

	// non-uniform scale keeps normals perpendicular to the surface
	m.SetTransform(Vector3{}, QuatIdentity(), Vec3(2, 1, 1))
	nm = m.NormalMatrix()
	n := Vec3(1, 1, 0).MulMatrix3(&nm).Normal()
	tangent := Vec3(-1, 1, 0).MulMatrix4AsVector4(&m, 0).Vector3()
	assert.InDelta(t, 0, n.Dot(tangent), StandardTol)

	var zero Matrix4
	assert.Equal(t, Matrix3{}, zero.NormalMatrix())
}
