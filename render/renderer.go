// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides a software renderer for scenes,
// with directional light shadow maps.
package render

import (
	"errors"
	"fmt"
	"image"
	"runtime"

	"cogentcore.org/stage/math32"
	"cogentcore.org/stage/scene"
)

// ErrContextLost is returned by [Renderer.Render] after [Renderer.Release].
var ErrContextLost = errors.New("render: context lost")

// Renderer draws a [scene.Scene] through a [scene.Camera] into an RGBA image.
// The image has Size() * PixelRatio() pixels; callers present it scaled
// to the logical size.
type Renderer struct {

	// ColorSpace is the output color transform.
	ColorSpace ColorSpace

	// Shadows is the shadow filtering technique.
	Shadows ShadowType

	// Workers is the maximum number of goroutines used per pass;
	// zero means GOMAXPROCS.
	Workers int

	width, height int
	ratio         float32

	img   *image.RGBA
	depth []float32

	shadowMaps map[*scene.DirLight]*shadowMap

	frames   int
	released bool
}

// New returns a new [Renderer] with linear output and soft shadows.
func New() *Renderer {
	return &Renderer{
		ColorSpace: LinearSRGB,
		Shadows:    ShadowPCFSoft,
		ratio:      1,
		img:        image.NewRGBA(image.Rectangle{}),
		shadowMaps: map[*scene.DirLight]*shadowMap{},
	}
}

// SetSize sets the logical size of the drawing surface.
func (r *Renderer) SetSize(width, height int) {
	r.width = max(width, 0)
	r.height = max(height, 0)
}

// SetPixelRatio sets the number of buffer pixels per logical pixel.
// Non-positive values are treated as 1.
func (r *Renderer) SetPixelRatio(ratio float32) {
	if ratio <= 0 {
		ratio = 1
	}
	r.ratio = ratio
}

// Size returns the logical size.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// PixelRatio returns the pixel ratio.
func (r *Renderer) PixelRatio() float32 {
	return r.ratio
}

// BufferSize returns the size of the drawing buffer in pixels.
func (r *Renderer) BufferSize() (width, height int) {
	return int(math32.Round(float32(r.width) * r.ratio)), int(math32.Round(float32(r.height) * r.ratio))
}

// Image returns the most recently rendered image. It is reused by
// the next render of the same buffer size.
func (r *Renderer) Image() *image.RGBA {
	return r.img
}

// Frames returns the number of completed renders.
func (r *Renderer) Frames() int {
	return r.frames
}

// Release frees the buffers. Any later render fails with [ErrContextLost].
func (r *Renderer) Release() {
	r.released = true
	r.img = image.NewRGBA(image.Rectangle{})
	r.depth = nil
	clear(r.shadowMaps)
}

func (r *Renderer) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// transformSolid appends the vertices of the solid transformed to world
// space and then by vp.
func transformSolid(sd *scene.Solid, vp *math32.Matrix4, out []cvert) ([]cvert, error) {
	ms := sd.Mesh
	if len(ms.Normals) != len(ms.Vertices) {
		return out, fmt.Errorf("render: mesh %q has %d normals for %d vertices", ms.Name, len(ms.Normals), len(ms.Vertices))
	}
	for _, ix := range ms.Indices {
		if int(ix) >= len(ms.Vertices) {
			return out, fmt.Errorf("render: mesh %q index %d out of range", ms.Name, ix)
		}
	}
	world := &sd.Pose.WorldMatrix
	nm := world.NormalMatrix()
	for i, v := range ms.Vertices {
		wp := v.MulMatrix4(world)
		out = append(out, cvert{
			clip: wp.MulMatrix4AsVector4(vp, 1),
			pos:  wp,
			norm: ms.Normals[i].MulMatrix3(&nm).Normal(),
		})
	}
	return out, nil
}

// Render draws the scene as seen by the camera, using the camera's
// current view and projection matrices.
func (r *Renderer) Render(sc *scene.Scene, cam *scene.Camera) error {
	if r.released {
		return ErrContextLost
	}
	bw, bh := r.BufferSize()
	if r.img.Rect.Dx() != bw || r.img.Rect.Dy() != bh {
		r.img = image.NewRGBA(image.Rect(0, 0, bw, bh))
		r.depth = make([]float32, bw*bh)
	}
	if bw == 0 || bh == 0 {
		return nil
	}

	sc.UpdateWorldMatrices()
	solids := make([]*scene.Solid, 0, 8)
	var casters []*scene.Solid
	for _, sd := range sc.Solids() {
		if sd.Mesh == nil {
			continue
		}
		solids = append(solids, sd)
		if sd.CastShadow {
			casters = append(casters, sd)
		}
	}

	var lights []light
	for _, dl := range sc.DirLights() {
		lt := light{dir: dl.Direction(), radiance: dl.Radiance()}
		if dl.CastShadow && r.Shadows != ShadowOff {
			sm, err := r.renderShadowMap(dl, casters)
			if err != nil {
				return err
			}
			lt.shadow = sm
		}
		lights = append(lights, lt)
	}
	ambient := sc.Ambient()

	vp := cam.ViewProjection()
	var tris []tri
	var cv []cvert
	var poly [2][]cvert
	for _, sd := range solids {
		var err error
		cv, err = transformSolid(sd, &vp, cv[:0])
		if err != nil {
			return err
		}
		sf := newSurface(sd)
		ms := sd.Mesh
		for i := range ms.NumTriangles() {
			a, b, c := ms.Triangle(i)
			poly[0] = append(poly[0][:0], cv[a], cv[b], cv[c])
			poly[1] = clipNear(poly[0], poly[1])
			p := poly[1]
			for k := 1; k+1 < len(p); k++ {
				t := tri{v: [3]svert{toScreen(p[0], bw, bh), toScreen(p[k], bw, bh), toScreen(p[k+1], bw, bh)}, surf: sf}
				if setupTri(&t, bw, bh, sd.Material.CullBack) {
					tris = append(tris, t)
				}
			}
		}
	}

	bg := sc.Background
	eye := cam.Pose.Pos
	err := bands(bh, r.workers(), func(y0, y1 int) error {
		for y := y0; y < y1; y++ {
			row := r.img.Pix[y*r.img.Stride : y*r.img.Stride+bw*4]
			for x := 0; x < bw; x++ {
				row[x*4], row[x*4+1], row[x*4+2], row[x*4+3] = bg.R, bg.G, bg.B, 255
				r.depth[y*bw+x] = math32.Infinity
			}
		}
		for i := range tris {
			t := &tris[i]
			if t.maxY < y0 || t.minY >= y1 {
				continue
			}
			v0, v1, v2 := &t.v[0], &t.v[1], &t.v[2]
			t.raster(y0, y1, func(x, y int, b0, b1, b2 float32) {
				z := b0*v0.z + b1*v1.z + b2*v2.z
				if z < 0 || z > 1 {
					return
				}
				di := y*bw + x
				if z >= r.depth[di] {
					return
				}
				r.depth[di] = z
				iw := 1 / (b0*v0.iw + b1*v1.iw + b2*v2.iw)
				pos := v0.pos.MulScalar(b0).Add(v1.pos.MulScalar(b1)).Add(v2.pos.MulScalar(b2)).MulScalar(iw)
				n := v0.norm.MulScalar(b0).Add(v1.norm.MulScalar(b1)).Add(v2.norm.MulScalar(b2)).Normal()
				cr, cg, cb := r.encode(r.shade(t.surf, pos, n, eye, ambient, lights))
				pi := y*r.img.Stride + x*4
				r.img.Pix[pi], r.img.Pix[pi+1], r.img.Pix[pi+2] = cr, cg, cb
			})
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	r.frames++
	return nil
}
