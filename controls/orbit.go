// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package controls provides interactive camera controllers.
package controls

import (
	"cogentcore.org/stage/math32"
	"cogentcore.org/stage/scene"
)

const eps = 1e-6

// Orbit moves a [scene.Camera] around a target point. Input methods
// accumulate motion, and [Orbit.Update] applies it once per frame.
// With damping enabled, each update applies only a fraction of the
// pending motion, so the camera keeps gliding after input stops.
type Orbit struct {

	// Camera is the camera being controlled.
	Camera *scene.Camera

	// EnableDamping gives the camera inertia.
	EnableDamping bool

	// DampingFactor is the fraction of pending motion applied per update.
	DampingFactor float32

	// RotateSpeed, PanSpeed and ZoomSpeed scale the input deltas.
	RotateSpeed float32
	PanSpeed    float32
	ZoomSpeed   float32

	// MinDistance and MaxDistance bound the distance to the target.
	MinDistance float32
	MaxDistance float32

	// MinPolarAngle and MaxPolarAngle bound the angle from the +Y axis, in radians.
	MinPolarAngle float32
	MaxPolarAngle float32

	target math32.Vector3

	// pending spherical rotation, in radians
	deltaTheta float32
	deltaPhi   float32

	panOffset math32.Vector3
	scale     float32

	lastPos    math32.Vector3
	lastTarget math32.Vector3
}

// NewOrbit returns a new [Orbit] controlling the given camera, with
// the camera's current target.
func NewOrbit(cam *scene.Camera) *Orbit {
	o := &Orbit{Camera: cam}
	o.Defaults()
	o.target = cam.Target
	return o
}

// Defaults sets the default speeds and limits.
func (o *Orbit) Defaults() {
	o.DampingFactor = 0.05
	o.RotateSpeed = 1
	o.PanSpeed = 1
	o.ZoomSpeed = 1
	o.MinDistance = 0
	o.MaxDistance = math32.Infinity
	o.MinPolarAngle = 0
	o.MaxPolarAngle = math32.Pi
	o.scale = 1
}

// Target returns the point the camera orbits around.
// It may be modified directly; the change applies on the next update.
func (o *Orbit) Target() *math32.Vector3 {
	return &o.target
}

// SetTarget sets the point the camera orbits around.
func (o *Orbit) SetTarget(target math32.Vector3) {
	o.target = target
}

// Rotate orbits by a pointer drag of dx, dy pixels in a viewport of
// the given height; dragging the full height turns one revolution.
func (o *Orbit) Rotate(dx, dy float32, height int) {
	if height <= 0 {
		return
	}
	h := float32(height)
	o.deltaTheta -= 2 * math32.Pi * dx / h * o.RotateSpeed
	o.deltaPhi -= 2 * math32.Pi * dy / h * o.RotateSpeed
}

// Pan moves the target by a pointer drag of dx, dy pixels in a viewport
// of the given height, so that the point under the pointer follows it.
func (o *Orbit) Pan(dx, dy float32, height int) {
	if height <= 0 || o.Camera == nil {
		return
	}
	cam := o.Camera
	dist := cam.Pose.Pos.Sub(o.target).Length() * math32.Tan(math32.DegToRad(cam.FOV)/2)
	h := float32(height)
	left := cam.ViewMatrix.Row(0).MulScalar(-2 * dx * dist / h * o.PanSpeed)
	up := cam.ViewMatrix.Row(1).MulScalar(2 * dy * dist / h * o.PanSpeed)
	o.panOffset = o.panOffset.Add(left).Add(up)
}

// Zoom dollies toward the target for positive delta (one wheel notch
// or key press per unit) and away from it for negative delta.
func (o *Orbit) Zoom(delta float32) {
	switch {
	case delta > 0:
		o.Dolly(math32.Pow(0.95, o.ZoomSpeed*delta))
	case delta < 0:
		o.Dolly(1 / math32.Pow(0.95, -o.ZoomSpeed*delta))
	}
}

// Dolly multiplies the distance to the target by scale on the next update.
func (o *Orbit) Dolly(scale float32) {
	if scale <= 0 {
		return
	}
	o.scale *= scale
}

// Update applies pending motion to the camera position and view matrix
// and reports whether the camera moved.
func (o *Orbit) Update() bool {
	cam := o.Camera
	if cam == nil {
		return false
	}
	offset := cam.Pose.Pos.Sub(o.target)
	radius := offset.Length()
	theta := math32.Atan2(offset.X, offset.Z)
	phi := float32(0)
	if radius > 0 {
		phi = math32.Acos(math32.Clamp(offset.Y/radius, -1, 1))
	}

	factor := float32(1)
	if o.EnableDamping {
		factor = o.DampingFactor
	}
	theta += o.deltaTheta * factor
	phi += o.deltaPhi * factor
	phi = math32.Clamp(phi, o.MinPolarAngle, o.MaxPolarAngle)
	phi = math32.Clamp(phi, eps, math32.Pi-eps)

	radius = math32.Clamp(radius*o.scale, o.MinDistance, o.MaxDistance)
	radius = math32.Max(radius, eps)
	o.target.SetAdd(o.panOffset.MulScalar(factor))

	sinPhi := math32.Sin(phi)
	offset = math32.Vec3(radius*sinPhi*math32.Sin(theta), radius*math32.Cos(phi), radius*sinPhi*math32.Cos(theta))
	cam.Pose.Pos = o.target.Add(offset)
	cam.LookAt(o.target)

	if o.EnableDamping {
		o.deltaTheta *= 1 - factor
		o.deltaPhi *= 1 - factor
		o.panOffset = o.panOffset.MulScalar(1 - factor)
	} else {
		o.deltaTheta, o.deltaPhi = 0, 0
		o.panOffset = math32.Vector3{}
	}
	o.scale = 1

	moved := cam.Pose.Pos.Sub(o.lastPos).LengthSquared() > eps ||
		o.target.Sub(o.lastTarget).LengthSquared() > eps
	o.lastPos = cam.Pose.Pos
	o.lastTarget = o.target
	return moved
}

// Pending returns the magnitude of the motion not yet applied.
func (o *Orbit) Pending() float32 {
	return math32.Abs(o.deltaTheta) + math32.Abs(o.deltaPhi) + o.panOffset.Length() + math32.Abs(o.scale-1)
}
