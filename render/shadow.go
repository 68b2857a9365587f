// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/stage/math32"
	"cogentcore.org/stage/scene"
)

// shadowMap is the depth buffer of a directional light's shadow camera.
type shadowMap struct {
	size  int
	depth []float32
	mat   math32.Matrix4
	bias  float32
}

// resize reallocates the depth buffer if needed and clears it to the far plane.
func (sm *shadowMap) resize(size int) {
	if sm.size != size || len(sm.depth) != size*size {
		sm.size = size
		sm.depth = make([]float32, size*size)
	}
	for i := range sm.depth {
		sm.depth[i] = 1
	}
}

// renderShadowMap draws the shadow casters into the light's depth map.
func (r *Renderer) renderShadowMap(dl *scene.DirLight, casters []*scene.Solid) (*shadowMap, error) {
	sm := r.shadowMaps[dl]
	if sm == nil {
		sm = &shadowMap{}
		r.shadowMaps[dl] = sm
	}
	size := max(dl.Shadow.MapSize, 1)
	sm.resize(size)
	sm.mat = dl.ShadowMatrix()
	sm.bias = dl.Shadow.Bias

	var tris []tri
	var cv []cvert
	for _, sd := range casters {
		var err error
		cv, err = transformSolid(sd, &sm.mat, cv[:0])
		if err != nil {
			return nil, err
		}
		ms := sd.Mesh
		for i := range ms.NumTriangles() {
			a, b, c := ms.Triangle(i)
			t := tri{v: [3]svert{toScreen(cv[a], size, size), toScreen(cv[b], size, size), toScreen(cv[c], size, size)}}
			if setupTri(&t, size, size, false) {
				tris = append(tris, t)
			}
		}
	}
	err := bands(size, r.workers(), func(y0, y1 int) error {
		for i := range tris {
			t := &tris[i]
			if t.maxY < y0 || t.minY >= y1 {
				continue
			}
			t.raster(y0, y1, func(x, y int, b0, b1, b2 float32) {
				z := b0*t.v[0].z + b1*t.v[1].z + b2*t.v[2].z
				idx := y*size + x
				if z >= 0 && z < sm.depth[idx] {
					sm.depth[idx] = z
				}
			})
		}
		return nil
	})
	return sm, err
}

// compare returns 1 if depth d is lit at texel (x, y), else 0.
// Texels outside the map are lit.
func (sm *shadowMap) compare(x, y int, d float32) float32 {
	if x < 0 || y < 0 || x >= sm.size || y >= sm.size {
		return 1
	}
	if d <= sm.depth[y*sm.size+x] {
		return 1
	}
	return 0
}

// compareLerp bilinearly filters the comparisons of the four texels
// around texture coordinate (u, v).
func (sm *shadowMap) compareLerp(u, v, d float32) float32 {
	fx, fy := u-0.5, v-0.5
	x0, y0 := math32.Floor(fx), math32.Floor(fy)
	tx, ty := fx-x0, fy-y0
	ix, iy := int(x0), int(y0)
	a := math32.Lerp(sm.compare(ix, iy, d), sm.compare(ix+1, iy, d), tx)
	b := math32.Lerp(sm.compare(ix, iy+1, d), sm.compare(ix+1, iy+1, d), tx)
	return math32.Lerp(a, b, ty)
}

// visibility returns the fraction of light reaching world position pos,
// from 0 (fully shadowed) to 1.
func (sm *shadowMap) visibility(pos math32.Vector3, typ ShadowType) float32 {
	p := pos.MulMatrix4(&sm.mat)
	if p.X < -1 || p.X > 1 || p.Y < -1 || p.Y > 1 || p.Z > 1 {
		return 1
	}
	s := float32(sm.size)
	u := (p.X*0.5 + 0.5) * s
	v := (0.5 - p.Y*0.5) * s
	d := p.Z*0.5 + 0.5 - sm.bias
	switch typ {
	case ShadowBasic:
		return sm.compare(int(u), int(v), d)
	case ShadowPCF:
		var sum float32
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				sum += sm.compare(int(u)+dx, int(v)+dy, d)
			}
		}
		return sum / 9
	default:
		var sum float32
		for dy := float32(-1); dy <= 1; dy++ {
			for dx := float32(-1); dx <= 1; dx++ {
				sum += sm.compareLerp(u+dx, v+dy, d)
			}
		}
		return sum / 9
	}
}
