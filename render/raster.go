// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/stage/math32"
	"golang.org/x/sync/errgroup"
)

// cvert is a vertex in clip space with its world attributes.
type cvert struct {
	clip math32.Vector4
	pos  math32.Vector3
	norm math32.Vector3
}

func (a cvert) lerp(b cvert, t float32) cvert {
	return cvert{
		clip: a.clip.Lerp(b.clip, t),
		pos:  a.pos.Lerp(b.pos, t),
		norm: a.norm.Lerp(b.norm, t),
	}
}

// clipNear clips a convex polygon against the near plane (z >= -w)
// and returns the clipped polygon, which may be empty.
func clipNear(in []cvert, out []cvert) []cvert {
	out = out[:0]
	n := len(in)
	for i := range n {
		a, b := in[i], in[(i+1)%n]
		da, db := a.clip.Z+a.clip.W, b.clip.Z+b.clip.W
		if da >= 0 {
			out = append(out, a)
		}
		if (da >= 0) != (db >= 0) {
			out = append(out, a.lerp(b, da/(da-db)))
		}
	}
	return out
}

// svert is a vertex in screen space. pos and norm are premultiplied
// by iw for perspective-correct interpolation.
type svert struct {
	x, y, z float32
	iw      float32
	pos     math32.Vector3
	norm    math32.Vector3
}

// toScreen projects a clip space vertex into a width x height buffer,
// with y down and depth in [0, 1].
func toScreen(c cvert, width, height int) svert {
	iw := 1 / c.clip.W
	return svert{
		x:    (c.clip.X*iw*0.5 + 0.5) * float32(width),
		y:    (0.5 - c.clip.Y*iw*0.5) * float32(height),
		z:    c.clip.Z*iw*0.5 + 0.5,
		iw:   iw,
		pos:  c.pos.MulScalar(iw),
		norm: c.norm.MulScalar(iw),
	}
}

func edge(a, b *svert, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// tri is a screen space triangle with positive area, ready to rasterize.
type tri struct {
	v    [3]svert
	surf *surface

	minX, maxX int
	minY, maxY int
	invArea    float32
}

// setupTri orients and bounds the triangle. It returns false if the
// triangle is degenerate, culled, or off screen.
func setupTri(t *tri, width, height int, cullBack bool) bool {
	v := &t.v
	area := edge(&v[0], &v[1], v[2].x, v[2].y)
	if area == 0 {
		return false
	}
	// y is down in screen space, so front faces have negative area
	if area > 0 && cullBack {
		return false
	}
	if area < 0 {
		v[1], v[2] = v[2], v[1]
		area = -area
	}
	t.invArea = 1 / area
	lx := min(v[0].x, v[1].x, v[2].x)
	hx := max(v[0].x, v[1].x, v[2].x)
	ly := min(v[0].y, v[1].y, v[2].y)
	hy := max(v[0].y, v[1].y, v[2].y)
	t.minX = max(0, int(math32.Floor(lx)))
	t.maxX = min(width-1, int(math32.Ceil(hx)))
	t.minY = max(0, int(math32.Floor(ly)))
	t.maxY = min(height-1, int(math32.Ceil(hy)))
	return t.minX <= t.maxX && t.minY <= t.maxY
}

// raster calls fn with the barycentric weights of each pixel center
// covered by the triangle within rows [y0, y1).
func (t *tri) raster(y0, y1 int, fn func(x, y int, b0, b1, b2 float32)) {
	v0, v1, v2 := &t.v[0], &t.v[1], &t.v[2]
	ys, ye := max(y0, t.minY), min(y1-1, t.maxY)
	for y := ys; y <= ye; y++ {
		py := float32(y) + 0.5
		for x := t.minX; x <= t.maxX; x++ {
			px := float32(x) + 0.5
			w0 := edge(v1, v2, px, py)
			w1 := edge(v2, v0, px, py)
			w2 := edge(v0, v1, px, py)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			fn(x, y, w0*t.invArea, w1*t.invArea, w2*t.invArea)
		}
	}
}

// bands runs fn over horizontal bands covering rows [0, height),
// using at most workers goroutines. Each band owns its rows exclusively.
func bands(height, workers int, fn func(y0, y1 int) error) error {
	if height <= 0 {
		return nil
	}
	workers = max(workers, 1)
	n := min(height, workers*4)
	size := (height + n - 1) / n
	var g errgroup.Group
	g.SetLimit(workers)
	for y0 := 0; y0 < height; y0 += size {
		y1 := min(y0+size, height)
		g.Go(func() error { return fn(y0, y1) })
	}
	return g.Wait()
}
