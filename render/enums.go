// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

//go:generate core generate

// ColorSpace is the transform applied to linear shading results
// before they are written to the image.
type ColorSpace int32 //enums:enum -transform kebab

const (
	// LinearSRGB writes linear values as-is.
	LinearSRGB ColorSpace = iota

	// SRGB applies the sRGB transfer function.
	SRGB
)

// ShadowType is the shadow map filtering technique.
type ShadowType int32 //enums:enum -trim-prefix Shadow -transform kebab

const (
	// ShadowOff disables shadows.
	ShadowOff ShadowType = iota

	// ShadowBasic takes one unfiltered sample, giving hard edges.
	ShadowBasic

	// ShadowPCF averages a 3x3 block of samples.
	ShadowPCF

	// ShadowPCFSoft averages a 3x3 block of bilinearly filtered samples.
	ShadowPCFSoft
)
