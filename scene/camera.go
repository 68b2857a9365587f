// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/stage/math32"

// Camera defines the properties of a perspective camera.
// The projection matrix is only recomputed by
// [Camera.UpdateProjectionMatrix]; changing FOV, Aspect, Near or Far
// directly leaves it stale until then.
type Camera struct {

	// Pose holds the camera position. Its rotation is derived from Target.
	Pose Pose

	// Target is the location the camera points at.
	Target math32.Vector3

	// UpDir is the up direction of the camera.
	UpDir math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width / height).
	Aspect float32

	// Near is the near clipping distance.
	Near float32

	// Far is the far clipping distance.
	Far float32

	// ViewMatrix is the world to camera transform.
	ViewMatrix math32.Matrix4 `display:"-"`

	// ProjectionMatrix is the camera to clip space transform.
	ProjectionMatrix math32.Matrix4 `display:"-"`

	// projAspect is the aspect baked into ProjectionMatrix.
	projAspect float32

	projDirty bool
}

// Defaults sets the camera defaults: a 75 degree field of view
// looking at the origin from (0, 0, 10).
func (cm *Camera) Defaults() {
	cm.FOV = 75
	cm.Aspect = 1
	cm.Near = 0.1
	cm.Far = 100
	cm.UpDir = math32.Vec3(0, 1, 0)
	cm.Pose.Defaults()
	cm.Pose.Pos.Set(0, 0, 10)
	cm.LookAt(math32.Vector3{})
	cm.UpdateProjectionMatrix()
}

// SetAspect sets the aspect ratio and marks the projection as dirty.
func (cm *Camera) SetAspect(aspect float32) {
	cm.Aspect = aspect
	cm.projDirty = true
}

// ProjectionDirty returns whether the projection parameters have changed
// since the last [Camera.UpdateProjectionMatrix].
func (cm *Camera) ProjectionDirty() bool {
	return cm.projDirty
}

// ProjectionAspect returns the aspect ratio that ProjectionMatrix was built with.
func (cm *Camera) ProjectionAspect() float32 {
	return cm.projAspect
}

// UpdateProjectionMatrix recomputes the projection matrix from
// FOV, Aspect, Near and Far.
func (cm *Camera) UpdateProjectionMatrix() {
	cm.ProjectionMatrix.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	cm.projAspect = cm.Aspect
	cm.projDirty = false
}

// UpdateViewMatrix recomputes the view matrix from the position,
// Target and UpDir.
func (cm *Camera) UpdateViewMatrix() {
	if cm.UpDir.IsZero() {
		cm.UpDir = math32.Vec3(0, 1, 0)
	}
	cm.ViewMatrix.SetLookAt(cm.Pose.Pos, cm.Target, cm.UpDir)
}

// LookAt points the camera at the given target and updates the view matrix.
func (cm *Camera) LookAt(target math32.Vector3) {
	cm.Target = target
	cm.UpdateViewMatrix()
}

// ViewVector is the vector between the camera position and target.
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pose.Pos.Sub(cm.Target)
}

// ViewProjection returns ProjectionMatrix * ViewMatrix.
func (cm *Camera) ViewProjection() math32.Matrix4 {
	return cm.ProjectionMatrix.Mul(&cm.ViewMatrix)
}
