// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/stage/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFloorScene(t *testing.T) {
	sc, err := NewFloorScene(DefaultFloorOptions())
	require.NoError(t, err)

	floor, ok := sc.NodeByName(FloorName).(*Solid)
	require.True(t, ok)
	assert.Equal(t, uint8(0x44), floor.Material.Color.R)
	assert.Equal(t, float32(0.5), floor.Material.Roughness)
	assert.True(t, floor.ReceiveShadow)
	assert.False(t, floor.CastShadow)

	sc.UpdateWorldMatrices()
	nm := floor.Pose.WorldMatrix.NormalMatrix()
	up := floor.Mesh.Normals[0].MulMatrix3(&nm)
	assert.InDelta(t, 1, up.Y, 1e-5)
	corner := floor.Mesh.Vertices[2].MulMatrix4(&floor.Pose.WorldMatrix)
	assert.InDelta(t, 0, corner.Y, 1e-5)
	assert.InDelta(t, 25, math32.Abs(corner.X), 1e-5)

	assert.Equal(t, 2, sc.Lights.Len())
	assert.InDelta(t, 0.8, sc.Ambient().X, 1e-6)
	dls := sc.DirLights()
	require.Len(t, dls, 1)
	sun := dls[0]
	assert.True(t, sun.CastShadow)
	assert.Equal(t, 1024, sun.Shadow.MapSize)
	assert.Equal(t, float32(15), sun.Shadow.Far)
	assert.Equal(t, float32(-7), sun.Shadow.Left)
	assert.Equal(t, math32.Vec3(5, 5, 5), sun.Pos)

	cam := &sc.Camera
	assert.Equal(t, float32(75), cam.FOV)
	assert.Equal(t, math32.Vec3(-8, 4, 8), cam.Pose.Pos)
	assert.Equal(t, math32.Vec3(0, 1, 0), cam.Target)
	assert.Nil(t, sc.NodeByName(CrateName))
}

func TestFloorSceneProps(t *testing.T) {
	opts := DefaultFloorOptions()
	opts.Props = true
	sc, err := NewFloorScene(opts)
	require.NoError(t, err)

	crate, ok := sc.NodeByName(CrateName).(*Solid)
	require.True(t, ok)
	assert.True(t, crate.CastShadow)
	assert.Len(t, sc.Solids(), 2)

	props := sc.NodeByName(PropsName).(*Group)
	props.Pose.Pos.Set(1, 0, 0)
	sc.UpdateWorldMatrices()
	assert.Equal(t, math32.Vec3(1, 0.5, 0), crate.Pose.WorldMatrix.Pos())
}

func TestFloorSceneBadColor(t *testing.T) {
	opts := DefaultFloorOptions()
	opts.FloorColor = "#zz"
	_, err := NewFloorScene(opts)
	assert.Error(t, err)
}

func TestCameraProjection(t *testing.T) {
	var cam Camera
	cam.Defaults()
	assert.False(t, cam.ProjectionDirty())

	cam.SetAspect(16.0 / 9.0)
	assert.True(t, cam.ProjectionDirty())
	assert.Equal(t, float32(1), cam.ProjectionAspect())

	cam.UpdateProjectionMatrix()
	assert.False(t, cam.ProjectionDirty())
	assert.Equal(t, float32(16.0/9.0), cam.ProjectionAspect())
	f := 1 / math32.Tan(math32.DegToRad(75)/2)
	assert.InDelta(t, f*9/16, cam.ProjectionMatrix[0], 1e-5)
}

func TestShadowMatrix(t *testing.T) {
	sc := New()
	sun := NewDirLight(sc, SunName, White, 1)
	sun.Pos.Set(0, 10, 0.001)
	sun.Shadow.Near = 1
	sun.Shadow.Far = 20
	m := sun.ShadowMatrix()
	origin := math32.Vector3{}.MulMatrix4(&m)
	assert.InDelta(t, 0, origin.X, 1e-3)
	assert.InDelta(t, 0, origin.Y, 1e-3)
	assert.Greater(t, origin.Z, float32(-1))
	assert.Less(t, origin.Z, float32(1))
	assert.Same(t, sun, sc.Light(SunName))
	assert.Nil(t, sc.Light("none"))
}
