// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host provides the event loop shared by the concrete hosts
// (window, terminal and headless). The loop serializes frame callbacks,
// viewport notifications and input on the goroutine that calls
// [Loop.Frame].
package host

import (
	"sync"
)

// Input receives pointer and key input translated by a host.
// Motion is in logical pixels of a viewport of the given height.
type Input interface {
	Rotate(dx, dy float32, height int)
	Pan(dx, dy float32, height int)
	Zoom(delta float32)
}

// Loop is a cooperative event queue. All methods may be called from
// any goroutine; callbacks only run inside [Loop.Frame].
type Loop struct {
	mu sync.Mutex

	width, height int
	dpr           float32

	// resized is set while a viewport notification is pending.
	resized bool

	posted    []func()
	callbacks []func()
	onSize    []func(width, height int)

	frames int
}

// NewLoop returns a new [Loop] with the given initial viewport.
func NewLoop(width, height int, dpr float32) *Loop {
	return &Loop{width: width, height: height, dpr: dpr}
}

// RequestFrame registers fn to be called once, at the next frame.
// A callback registered during a frame runs at the following one.
func (lp *Loop) RequestFrame(fn func()) {
	lp.mu.Lock()
	lp.callbacks = append(lp.callbacks, fn)
	lp.mu.Unlock()
}

// Viewport returns the current logical size and device pixel ratio.
func (lp *Loop) Viewport() (width, height int, devicePixelRatio float32) {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	return lp.width, lp.height, lp.dpr
}

// OnViewportChanged registers fn to be called at the start of the next
// frame after the viewport changes. Multiple changes between two frames
// produce a single call with the latest size.
func (lp *Loop) OnViewportChanged(fn func(width, height int)) {
	lp.mu.Lock()
	lp.onSize = append(lp.onSize, fn)
	lp.mu.Unlock()
}

// SetViewport records a new viewport and, if it differs from the
// current one, queues a viewport notification.
func (lp *Loop) SetViewport(width, height int, dpr float32) {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	if width == lp.width && height == lp.height && dpr == lp.dpr {
		return
	}
	lp.width, lp.height, lp.dpr = width, height, dpr
	lp.resized = true
}

// NotifyViewportChanged queues a viewport notification without
// changing the recorded viewport.
func (lp *Loop) NotifyViewportChanged() {
	lp.mu.Lock()
	lp.resized = true
	lp.mu.Unlock()
}

// Post queues fn to run at the start of the next frame, before any
// viewport notification and frame callback.
func (lp *Loop) Post(fn func()) {
	lp.mu.Lock()
	lp.posted = append(lp.posted, fn)
	lp.mu.Unlock()
}

// Frame runs one frame: posted functions, then a pending viewport
// notification, then each frame callback registered before Frame was
// called, exactly once.
func (lp *Loop) Frame() {
	lp.mu.Lock()
	posted := lp.posted
	lp.posted = nil
	lp.mu.Unlock()
	for _, fn := range posted {
		fn()
	}

	lp.mu.Lock()
	resized := lp.resized
	lp.resized = false
	w, h := lp.width, lp.height
	onSize := lp.onSize
	lp.mu.Unlock()
	if resized {
		for _, fn := range onSize {
			fn(w, h)
		}
	}

	lp.mu.Lock()
	cbs := lp.callbacks
	lp.callbacks = nil
	lp.frames++
	lp.mu.Unlock()
	for _, fn := range cbs {
		fn()
	}
}

// Scheduled returns the number of frame callbacks waiting for the next frame.
func (lp *Loop) Scheduled() int {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	return len(lp.callbacks)
}

// Idle returns whether no frame callback or posted function is waiting.
func (lp *Loop) Idle() bool {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	return len(lp.callbacks) == 0 && len(lp.posted) == 0
}

// Frames returns the number of frames run.
func (lp *Loop) Frames() int {
	lp.mu.Lock()
	defer lp.mu.Unlock()
	return lp.frames
}
