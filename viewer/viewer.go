// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer provides the frame loop and viewport synchronization
// of a real-time scene viewer. A [FrameDriver] advances the clock,
// animation and controls and renders exactly once per host frame, and a
// [ResizeReactor] keeps the camera projection and render target
// consistent with the viewport.
package viewer

import (
	"errors"

	"cogentcore.org/stage/math32"
	"cogentcore.org/stage/scene"
)

// MaxPixelRatio is the largest pixel ratio used for rendering,
// whatever the device reports.
const MaxPixelRatio = 2

// ErrNoViewport is returned when the host has no usable viewport at startup.
var ErrNoViewport = errors.New("viewer: host has no viewport")

// RenderTarget draws a scene through a camera into a surface.
type RenderTarget interface {
	Render(sc *scene.Scene, cam *scene.Camera) error
	SetSize(width, height int)
	SetPixelRatio(ratio float32)
}

// Controller is an interactive camera controller, updated once per frame.
type Controller interface {

	// Update applies pending input and damping to the camera and
	// reports whether it moved.
	Update() bool

	// Target returns the point the camera looks at.
	Target() *math32.Vector3
}

// Mixer is an animation mixer advanced by the frame delta in seconds.
type Mixer interface {
	Update(dt float32) error
}

// Host provides the display-synchronized frame primitive and the
// viewport of the surface being drawn.
type Host interface {

	// RequestFrame registers fn to be called once, at the next frame.
	RequestFrame(fn func())

	// Viewport returns the current logical size and device pixel ratio.
	Viewport() (width, height int, devicePixelRatio float32)

	// OnViewportChanged registers fn to be called when the viewport changes.
	OnViewportChanged(fn func(width, height int))
}

// ViewportSize is the size of the drawing surface.
type ViewportSize struct {
	Width  int
	Height int

	// PixelRatio is the device pixel ratio clamped by [ClampPixelRatio].
	PixelRatio float32
}

// Valid returns whether the size has a positive area.
func (vs ViewportSize) Valid() bool {
	return vs.Width > 0 && vs.Height > 0
}

// Aspect returns width / height.
func (vs ViewportSize) Aspect() float32 {
	return float32(vs.Width) / float32(vs.Height)
}

// ClampPixelRatio limits a device pixel ratio to [MaxPixelRatio].
// Non-positive ratios are treated as 1.
func ClampPixelRatio(dpr float32) float32 {
	if dpr <= 0 {
		return 1
	}
	return min(dpr, MaxPixelRatio)
}

// MixerSlot holds an optional [Mixer]. The zero value is empty.
type MixerSlot struct {
	mixer Mixer
}

// NoMixer returns an empty [MixerSlot].
func NoMixer() MixerSlot {
	return MixerSlot{}
}

// WithMixer returns a [MixerSlot] holding m; a nil m gives an empty slot.
func WithMixer(m Mixer) MixerSlot {
	return MixerSlot{mixer: m}
}

// Get returns the mixer and whether there is one.
func (ms MixerSlot) Get() (Mixer, bool) {
	return ms.mixer, ms.mixer != nil
}
