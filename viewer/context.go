// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"errors"
	"fmt"
	"log/slog"

	"cogentcore.org/stage/clock"
	"cogentcore.org/stage/scene"
)

// Context holds everything a frame touches. Its methods must only be
// called from the host's frame goroutine.
type Context struct {
	Scene    *scene.Scene
	Camera   *scene.Camera
	Controls Controller
	Target   RenderTarget
	Mixer    MixerSlot
	Clock    *clock.Clock
	Host     Host

	// Viewport is the most recently applied viewport.
	Viewport ViewportSize

	// Delta is the clamped delta of the most recent tick, in seconds.
	Delta float64
}

// Init checks the context and applies the host's initial viewport.
// A nil Camera uses the scene camera and a nil Clock uses the
// monotonic clock.
func (c *Context) Init() error {
	if c.Scene == nil || c.Target == nil || c.Host == nil {
		return errors.New("viewer: context needs a scene, render target and host")
	}
	if c.Camera == nil {
		c.Camera = &c.Scene.Camera
	}
	if c.Clock == nil {
		c.Clock = clock.New(nil)
	}
	c.OnViewportChanged()
	if !c.Viewport.Valid() {
		w, h, _ := c.Host.Viewport()
		return fmt.Errorf("%w: %dx%d", ErrNoViewport, w, h)
	}
	return nil
}

// OnFrameTick runs one frame: it advances the clock, the mixer if
// present, and the controls, then renders once. An error means the
// frame loop must stop.
func (c *Context) OnFrameTick() error {
	c.Delta = c.Clock.Tick()
	if m, ok := c.Mixer.Get(); ok {
		if err := m.Update(float32(c.Delta)); err != nil {
			return fmt.Errorf("mixer update: %w", err)
		}
	}
	if c.Controls != nil {
		c.Controls.Update()
	}
	if err := c.Target.Render(c.Scene, c.Camera); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// OnViewportChanged re-reads the host viewport and applies it to the
// camera projection and the render target, in that order. Sizes with
// no area are ignored, keeping the previous state.
func (c *Context) OnViewportChanged() {
	w, h, dpr := c.Host.Viewport()
	vs := ViewportSize{Width: w, Height: h, PixelRatio: ClampPixelRatio(dpr)}
	if !vs.Valid() {
		slog.Debug("ignoring empty viewport", "width", w, "height", h)
		return
	}
	c.Viewport = vs
	c.Camera.SetAspect(vs.Aspect())
	c.Camera.UpdateProjectionMatrix()
	c.Target.SetSize(vs.Width, vs.Height)
	c.Target.SetPixelRatio(vs.PixelRatio)
}
