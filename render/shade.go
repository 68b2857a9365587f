// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"

	"cogentcore.org/stage/math32"
	"cogentcore.org/stage/scene"
)

// surface holds the per-solid shading inputs.
type surface struct {
	diffuse   math32.Vector3
	specular  math32.Vector3
	shininess float32
	receive   bool
}

func newSurface(sd *scene.Solid) *surface {
	mt := &sd.Material
	base := linearColor(mt.Color)
	metal := math32.Clamp(mt.Metalness, 0, 1)
	rough := math32.Clamp(mt.Roughness, 0.04, 1)
	r4 := rough * rough * rough * rough
	return &surface{
		diffuse:   base.MulScalar(1 - metal),
		specular:  math32.Vector3Scalar(0.04).Lerp(base, metal),
		shininess: math32.Clamp(2/r4-2, 0, 2048),
		receive:   sd.ReceiveShadow,
	}
}

// light is a directional light prepared for shading.
type light struct {
	dir      math32.Vector3
	radiance math32.Vector3
	shadow   *shadowMap
}

// linearColor returns the color components in [0, 1] without any
// transfer function.
func linearColor(c color.RGBA) math32.Vector3 {
	return math32.Vec3(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
}

// shade returns the linear color of a surface point with unit normal n,
// seen from eye.
func (r *Renderer) shade(sf *surface, pos, n, eye math32.Vector3, ambient math32.Vector3, lights []light) math32.Vector3 {
	out := ambient.Mul(sf.diffuse)
	view := eye.Sub(pos).Normal()
	for i := range lights {
		lt := &lights[i]
		ndl := n.Dot(lt.dir)
		if ndl <= 0 {
			continue
		}
		vis := float32(1)
		if lt.shadow != nil && sf.receive {
			vis = lt.shadow.visibility(pos, r.Shadows)
			if vis == 0 {
				continue
			}
		}
		half := lt.dir.Add(view).Normal()
		spec := math32.Pow(math32.Max(n.Dot(half), 0), sf.shininess) * (sf.shininess + 2) / 8
		brdf := sf.diffuse.Add(sf.specular.MulScalar(spec))
		out = out.Add(brdf.Mul(lt.radiance).MulScalar(ndl * vis))
	}
	return out
}

// encode converts a linear color to 8 bits in the output color space.
func (r *Renderer) encode(c math32.Vector3) (uint8, uint8, uint8) {
	f := func(v float32) uint8 {
		v = math32.Clamp(v, 0, 1)
		if r.ColorSpace == SRGB {
			if v <= 0.0031308 {
				v *= 12.92
			} else {
				v = 1.055*math32.Pow(v, 1/2.4) - 0.055
			}
		}
		return uint8(v*255 + 0.5)
	}
	return f(c.X), f(c.Y), f(c.Z)
}
