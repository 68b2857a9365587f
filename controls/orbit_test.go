// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controls

import (
	"testing"

	"cogentcore.org/stage/math32"
	"cogentcore.org/stage/scene"
	"github.com/stretchr/testify/assert"
)

func newCamera() *scene.Camera {
	cam := &scene.Camera{}
	cam.Defaults()
	return cam
}

func TestOrbitDefaults(t *testing.T) {
	o := NewOrbit(newCamera())
	assert.False(t, o.EnableDamping)
	assert.Equal(t, float32(0.05), o.DampingFactor)
	assert.Equal(t, float32(1), o.RotateSpeed)
	assert.Equal(t, float32(1), o.PanSpeed)
	assert.Equal(t, float32(1), o.ZoomSpeed)
	assert.Equal(t, math32.Infinity, o.MaxDistance)
}

func TestOrbitRotate(t *testing.T) {
	cam := newCamera()
	o := NewOrbit(cam)
	assert.True(t, o.Update())
	assert.False(t, o.Update())

	o.Rotate(25, 0, 100)
	assert.True(t, o.Update())
	assert.InDelta(t, -10, cam.Pose.Pos.X, 1e-4)
	assert.InDelta(t, 0, cam.Pose.Pos.Z, 1e-4)
	assert.Equal(t, float32(0), o.Pending())

	// view matrix follows the camera
	v := math32.Vector3{}.MulMatrix4(&cam.ViewMatrix)
	assert.InDelta(t, -10, v.Z, 1e-4)
}

func TestOrbitDamping(t *testing.T) {
	cam := newCamera()
	o := NewOrbit(cam)
	o.EnableDamping = true
	o.Rotate(25, 0, 100)

	o.Update()
	first := math32.Atan2(cam.Pose.Pos.X, cam.Pose.Pos.Z)
	assert.InDelta(t, -math32.Pi/2*0.05, first, 1e-4)
	assert.Greater(t, o.Pending(), float32(0))

	for range 400 {
		o.Update()
	}
	assert.InDelta(t, -10, cam.Pose.Pos.X, 1e-3)
	assert.InDelta(t, 0, cam.Pose.Pos.Z, 1e-2)
	assert.Less(t, o.Pending(), float32(1e-6))
	assert.False(t, o.Update())
}

func TestOrbitPolarClamp(t *testing.T) {
	cam := newCamera()
	o := NewOrbit(cam)
	o.Rotate(0, 1000, 100)
	o.Update()
	assert.InDelta(t, 10, cam.Pose.Pos.Y, 1e-3)
	assert.False(t, math32.IsNaN(cam.ViewMatrix[0]))

	o.MinPolarAngle = math32.Pi / 4
	o.Update()
	assert.InDelta(t, 10*math32.Cos(math32.Pi/4), cam.Pose.Pos.Y, 1e-3)
}

func TestOrbitZoom(t *testing.T) {
	cam := newCamera()
	o := NewOrbit(cam)
	o.Zoom(1)
	o.Update()
	assert.InDelta(t, 9.5, cam.Pose.Pos.Length(), 1e-4)
	o.Zoom(-1)
	o.Update()
	assert.InDelta(t, 10, cam.Pose.Pos.Length(), 1e-4)

	o.MinDistance = 2
	o.Dolly(0.01)
	o.Update()
	assert.InDelta(t, 2, cam.Pose.Pos.Length(), 1e-4)
}

func TestOrbitPan(t *testing.T) {
	cam := newCamera()
	o := NewOrbit(cam)
	o.Update()
	o.Pan(10, 0, 100)
	o.Update()
	dist := 10 * math32.Tan(math32.DegToRad(75)/2)
	assert.InDelta(t, -2*10*dist/100, o.Target().X, 1e-4)
	assert.InDelta(t, o.Target().X, cam.Pose.Pos.X, 1e-4)
	assert.Equal(t, *o.Target(), cam.Target)

	o.Target().Set(0, 1, 0)
	o.Update()
	assert.Equal(t, math32.Vec3(0, 1, 0), cam.Target)
}

func TestOrbitIgnoresEmptyViewport(t *testing.T) {
	o := NewOrbit(newCamera())
	o.Rotate(10, 10, 0)
	o.Pan(10, 10, 0)
	assert.Equal(t, float32(0), o.Pending())
}
