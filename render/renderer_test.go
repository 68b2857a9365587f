// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"cogentcore.org/stage/math32"
	"cogentcore.org/stage/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floorScene(t *testing.T, props bool) *scene.Scene {
	t.Helper()
	opts := scene.DefaultFloorOptions()
	opts.Props = props
	opts.ShadowMapSize = 256
	sc, err := scene.NewFloorScene(opts)
	require.NoError(t, err)
	return sc
}

func newRenderer(w, h int, sc *scene.Scene) *Renderer {
	r := New()
	r.SetSize(w, h)
	sc.Camera.SetAspect(float32(w) / float32(h))
	sc.Camera.UpdateProjectionMatrix()
	return r
}

// pixelAt returns the buffer pixel where the world point p appears.
func pixelAt(r *Renderer, cam *scene.Camera, p math32.Vector3) (int, int) {
	vp := cam.ViewProjection()
	ndc := p.MulMatrix4AsVector4(&vp, 1).PerspectiveDivide()
	bw, bh := r.BufferSize()
	return int((ndc.X*0.5 + 0.5) * float32(bw)), int((0.5 - ndc.Y*0.5) * float32(bh))
}

func TestBufferSize(t *testing.T) {
	r := New()
	r.SetSize(800, 600)
	r.SetPixelRatio(2)
	bw, bh := r.BufferSize()
	assert.Equal(t, 1600, bw)
	assert.Equal(t, 1200, bh)

	r.SetPixelRatio(1.5)
	r.SetSize(101, 33)
	bw, bh = r.BufferSize()
	assert.Equal(t, 152, bw)
	assert.Equal(t, 50, bh)

	r.SetPixelRatio(-1)
	assert.Equal(t, float32(1), r.PixelRatio())
	w, h := r.Size()
	assert.Equal(t, 101, w)
	assert.Equal(t, 33, h)
}

func TestRenderFloor(t *testing.T) {
	sc := floorScene(t, false)
	r := newRenderer(160, 120, sc)
	r.SetPixelRatio(2)
	require.NoError(t, r.Render(sc, &sc.Camera))
	assert.Equal(t, 1, r.Frames())

	img := r.Image()
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())

	// the top of the view is above the horizon
	assert.Equal(t, sc.Background.R, img.RGBAAt(2, 2).R)

	x, y := pixelAt(r, &sc.Camera, math32.Vec3(0, 0, 0))
	floor := img.RGBAAt(x, y)
	assert.Greater(t, floor.R, uint8(0x44))
	assert.Equal(t, floor.R, floor.G)
	assert.Equal(t, uint8(255), floor.A)
}

func TestRenderColorSpace(t *testing.T) {
	sc := floorScene(t, false)
	r := newRenderer(64, 48, sc)
	require.NoError(t, r.Render(sc, &sc.Camera))
	x, y := pixelAt(r, &sc.Camera, math32.Vec3(1, 0, 1))
	linear := r.Image().RGBAAt(x, y).R

	r.ColorSpace = SRGB
	require.NoError(t, r.Render(sc, &sc.Camera))
	assert.Greater(t, r.Image().RGBAAt(x, y).R, linear)
}

func TestRenderShadow(t *testing.T) {
	sc := floorScene(t, true)
	r := newRenderer(200, 150, sc)
	shadowed := math32.Vec3(-0.9, 0, -0.9)
	lit := math32.Vec3(0.9, 0, 0.9)

	for _, typ := range []ShadowType{ShadowBasic, ShadowPCF, ShadowPCFSoft} {
		r.Shadows = typ
		require.NoError(t, r.Render(sc, &sc.Camera))
		img := r.Image()
		sx, sy := pixelAt(r, &sc.Camera, shadowed)
		lx, ly := pixelAt(r, &sc.Camera, lit)
		inShadow := img.RGBAAt(sx, sy).R
		inLight := img.RGBAAt(lx, ly).R
		assert.Less(t, inShadow, inLight, typ.String())

		r.Shadows = ShadowOff
		require.NoError(t, r.Render(sc, &sc.Camera))
		assert.Greater(t, r.Image().RGBAAt(sx, sy).R, inShadow, typ.String())
	}

	sun := sc.Light(scene.SunName).(*scene.DirLight)
	sm := r.shadowMaps[sun]
	require.NotNil(t, sm)
	assert.Equal(t, 256, sm.size)
	assert.Equal(t, float32(0), sm.visibility(math32.Vec3(-0.9, 0, -0.9), ShadowBasic))
	assert.Equal(t, float32(1), sm.visibility(math32.Vec3(3, 0, 3), ShadowBasic))
	assert.Equal(t, float32(1), sm.visibility(math32.Vec3(40, 0, 0), ShadowPCFSoft))
}

func TestRenderWorkersAgree(t *testing.T) {
	sc := floorScene(t, true)
	r1 := newRenderer(96, 64, sc)
	r1.Workers = 1
	r4 := newRenderer(96, 64, sc)
	r4.Workers = 4
	require.NoError(t, r1.Render(sc, &sc.Camera))
	require.NoError(t, r4.Render(sc, &sc.Camera))
	assert.Equal(t, r1.Image().Pix, r4.Image().Pix)
}

func TestRenderNearClip(t *testing.T) {
	sc := floorScene(t, false)
	r := newRenderer(64, 48, sc)
	// looking along the floor from just above it: most floor triangles cross the near plane
	sc.Camera.Pose.Pos.Set(0, 0.5, 0)
	sc.Camera.LookAt(math32.Vec3(10, 0, 0))
	require.NoError(t, r.Render(sc, &sc.Camera))
	img := r.Image()
	bottom := img.RGBAAt(32, 47)
	assert.NotEqual(t, sc.Background.R, bottom.R)
}

func TestRenderErrors(t *testing.T) {
	sc := floorScene(t, false)
	r := newRenderer(32, 32, sc)

	bad := scene.NewSolid("bad", &scene.Mesh{Name: "bad", Vertices: make([]math32.Vector3, 3), Indices: []uint32{0, 1, 2}})
	sc.Add(bad)
	assert.Error(t, r.Render(sc, &sc.Camera))
	sc.Children = sc.Children[:1]

	r.SetSize(0, 10)
	require.NoError(t, r.Render(sc, &sc.Camera))
	assert.True(t, r.Image().Bounds().Empty())

	r.Release()
	assert.ErrorIs(t, r.Render(sc, &sc.Camera), ErrContextLost)
}

func TestThumbnail(t *testing.T) {
	sc := floorScene(t, false)
	r := newRenderer(200, 100, sc)
	assert.True(t, r.Thumbnail(10, 10).Bounds().Empty())
	require.NoError(t, r.Render(sc, &sc.Camera))
	th := r.Thumbnail(50, 50)
	assert.Equal(t, 50, th.Bounds().Dx())
	assert.Equal(t, 25, th.Bounds().Dy())
}

func TestEnums(t *testing.T) {
	var st ShadowType
	require.NoError(t, st.UnmarshalText([]byte("pcf-soft")))
	assert.Equal(t, ShadowPCFSoft, st)
	var cs ColorSpace
	require.NoError(t, cs.SetString("srgb"))
	assert.Equal(t, SRGB, cs)
	assert.Error(t, cs.SetString("p3"))
	assert.Equal(t, "linear-srgb", LinearSRGB.String())
}
