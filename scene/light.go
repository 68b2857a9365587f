// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/stage/math32"
)

// Light represents a light that illuminates a scene.
// These are stored on the [Scene] object and not within the node tree.
type Light interface {

	// AsLightBase returns the [LightBase] for this Light,
	// which provides the core functionality of a light.
	AsLightBase() *LightBase
}

// LightBase provides the core implementation of the [Light] interface.
type LightBase struct {

	// Name is the name of the light, which matters since lights are accessed by name.
	Name string

	// On is whether the light is turned on.
	On bool

	// Intensity is multiplied by the color.
	Intensity float32 `min:"0" step:"0.1"`

	// Color is the color of the light at full intensity.
	Color color.RGBA
}

func (lb *LightBase) AsLightBase() *LightBase {
	return lb
}

// Radiance returns the linear light color scaled by Intensity.
func (lb *LightBase) Radiance() math32.Vector3 {
	return math32.Vec3(float32(lb.Color.R)/255, float32(lb.Color.G)/255, float32(lb.Color.B)/255).MulScalar(lb.Intensity)
}

// AmbientLight provides uniform lighting from all directions.
type AmbientLight struct {
	LightBase
}

// NewAmbientLight adds an ambient light to the given scene.
func NewAmbientLight(sc *Scene, name string, clr color.RGBA, intensity float32) *AmbientLight {
	lt := &AmbientLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Intensity = intensity
	sc.AddLight(lt)
	return lt
}

// Shadow holds the shadow map parameters of a [DirLight].
// The shadow camera is orthographic, looking from the light
// position toward the origin.
type Shadow struct {

	// MapSize is the width and height of the depth map in texels.
	MapSize int

	Left   float32
	Right  float32
	Top    float32
	Bottom float32
	Near   float32
	Far    float32

	// Bias is subtracted from the receiver depth to avoid self-shadowing acne.
	Bias float32
}

// Defaults sets the default shadow camera.
func (sh *Shadow) Defaults() {
	sh.MapSize = 512
	sh.Left, sh.Right, sh.Top, sh.Bottom = -5, 5, 5, -5
	sh.Near = 0.5
	sh.Far = 500
	sh.Bias = 0.005
}

// DirLight is directional light, which is assumed to project light toward
// the origin based on its position, with no attenuation, like the Sun.
type DirLight struct {
	LightBase

	// Pos is the position of the light; it points at the origin,
	// so this determines its direction.
	Pos math32.Vector3

	// CastShadow is whether this light casts shadows.
	CastShadow bool

	// Shadow holds the shadow map parameters, used when CastShadow is set.
	Shadow Shadow
}

// NewDirLight adds a directional light to the given scene.
// By default it is located overhead and toward the default camera (0, 1, 1).
func NewDirLight(sc *Scene, name string, clr color.RGBA, intensity float32) *DirLight {
	lt := &DirLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Intensity = intensity
	lt.Pos.Set(0, 1, 1)
	lt.Shadow.Defaults()
	sc.AddLight(lt)
	return lt
}

// Direction returns the unit vector pointing from the surface toward the light.
func (dl *DirLight) Direction() math32.Vector3 {
	return dl.Pos.Normal()
}

// ShadowMatrix returns the view-projection matrix of the shadow camera.
func (dl *DirLight) ShadowMatrix() math32.Matrix4 {
	var view, proj math32.Matrix4
	view.SetLookAt(dl.Pos, math32.Vector3{}, math32.Vec3(0, 1, 0))
	sh := &dl.Shadow
	proj.SetOrthographic(sh.Left, sh.Right, sh.Top, sh.Bottom, sh.Near, sh.Far)
	return proj.Mul(&view)
}

// White is the default light color.
var White = colors.FromRGB(255, 255, 255)
