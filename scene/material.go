// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/colors"
)

// Material describes the surface properties of a [Solid] using the
// standard metalness / roughness model.
type Material struct {

	// Color is the base color of the surface.
	Color color.RGBA

	// Metalness is how metallic the surface is, from 0 (dielectric) to 1 (metal).
	// Metals reflect little diffuse light.
	Metalness float32 `min:"0" max:"1"`

	// Roughness is how rough the surface is, from 0 (mirror-like) to 1 (fully diffuse).
	Roughness float32 `min:"0" max:"1"`

	// CullBack indicates to cull the back-facing surfaces.
	CullBack bool
}

// Defaults sets default surface parameters.
func (mt *Material) Defaults() {
	mt.Color = colors.FromRGB(255, 255, 255)
	mt.Metalness = 0
	mt.Roughness = 1
	mt.CullBack = true
}

// NewMaterial returns a default material with the given color.
func NewMaterial(clr color.RGBA) Material {
	mt := Material{}
	mt.Defaults()
	mt.Color = clr
	return mt
}

// SetColorHex sets the color from a hex string such as "#444444".
func (mt *Material) SetColorHex(hex string) error {
	clr, err := colors.FromHex(hex)
	if err != nil {
		return fmt.Errorf("material color %q: %w", hex, err)
	}
	mt.Color = clr
	return nil
}
