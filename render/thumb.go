// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"

	"golang.org/x/image/draw"
)

// Thumbnail returns the current image scaled to fit within
// width x height, preserving its aspect ratio.
func (r *Renderer) Thumbnail(width, height int) *image.RGBA {
	src := r.img.Bounds()
	if src.Empty() || width <= 0 || height <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	sx := float64(width) / float64(src.Dx())
	sy := float64(height) / float64(src.Dy())
	s := min(sx, sy)
	tw := max(int(float64(src.Dx())*s+0.5), 1)
	th := max(int(float64(src.Dy())*s+0.5), 1)
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), r.img, src, draw.Src, nil)
	return dst
}
