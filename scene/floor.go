// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/colors"
	"cogentcore.org/stage/math32"
)

// Names of the nodes and lights built by [NewFloorScene].
const (
	FloorName   = "floor"
	PropsName   = "props"
	CrateName   = "crate"
	AmbientName = "ambient"
	SunName     = "sun"
)

// FloorOptions configures [NewFloorScene].
type FloorOptions struct {

	// FloorSize is the width and depth of the floor plane.
	FloorSize float32 `default:"50"`

	// FloorColor is the hex color of the floor.
	FloorColor string `default:"#444444"`

	// ShadowMapSize is the shadow map resolution of the sun.
	ShadowMapSize int `default:"1024"`

	// Props adds a shadow-casting crate above the floor.
	Props bool
}

// DefaultFloorOptions returns the default [FloorOptions].
func DefaultFloorOptions() FloorOptions {
	return FloorOptions{FloorSize: 50, FloorColor: "#444444", ShadowMapSize: 1024}
}

// NewFloorScene builds the standard viewer scene: a large floor lit by an
// ambient light and a shadow-casting sun, seen from a camera at (-8, 4, 8)
// looking at (0, 1, 0).
func NewFloorScene(opts FloorOptions) (*Scene, error) {
	sc := New()

	floor := NewSolid(FloorName, NewPlane(FloorName, opts.FloorSize, opts.FloorSize))
	if err := floor.Material.SetColorHex(opts.FloorColor); err != nil {
		return nil, err
	}
	floor.Material.Metalness = 0
	floor.Material.Roughness = 0.5
	floor.ReceiveShadow = true
	floor.Pose.SetEulerRotationRad(-math32.Pi/2, 0, 0)
	sc.Add(floor)

	NewAmbientLight(sc, AmbientName, White, 0.8)

	sun := NewDirLight(sc, SunName, White, 0.6)
	sun.Pos.Set(5, 5, 5)
	sun.CastShadow = true
	sun.Shadow.MapSize = opts.ShadowMapSize
	sun.Shadow.Far = 15
	sun.Shadow.Left = -7
	sun.Shadow.Top = 7
	sun.Shadow.Right = 7
	sun.Shadow.Bottom = -7

	if opts.Props {
		props := NewGroup(PropsName)
		crate := NewSolid(CrateName, NewBox(CrateName, 1, 1, 1))
		crate.Material.Color = colors.FromRGB(176, 120, 64)
		crate.Material.Roughness = 0.7
		crate.CastShadow = true
		crate.ReceiveShadow = true
		crate.Pose.Pos.Set(0, 0.5, 0)
		props.Add(crate)
		sc.Add(props)
	}

	cam := &sc.Camera
	cam.FOV = 75
	cam.Near = 0.1
	cam.Far = 100
	cam.Pose.Pos.Set(-8, 4, 8)
	cam.LookAt(math32.Vec3(0, 1, 0))
	cam.UpdateProjectionMatrix()
	return sc, nil
}
