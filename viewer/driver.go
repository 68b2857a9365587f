// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// FrameDriver runs [Context.OnFrameTick] once per host frame,
// re-registering itself after every successful tick.
type FrameDriver struct {
	ctx *Context

	frames  atomic.Int64
	started atomic.Bool
	stopped atomic.Bool

	once sync.Once
	done chan struct{}
	err  error
}

// NewFrameDriver returns a new [FrameDriver] for the given context.
func NewFrameDriver(c *Context) *FrameDriver {
	return &FrameDriver{ctx: c, done: make(chan struct{})}
}

// Start registers the first tick with the host. Later calls do nothing.
func (d *FrameDriver) Start() {
	if d.started.Swap(true) {
		return
	}
	d.ctx.Host.RequestFrame(d.tick)
}

func (d *FrameDriver) tick() {
	if d.stopped.Load() {
		return
	}
	if err := d.ctx.OnFrameTick(); err != nil {
		slog.Error("frame loop stopped", "frame", d.frames.Load(), "err", err)
		d.finish(err)
		return
	}
	d.frames.Add(1)
	if d.stopped.Load() {
		return
	}
	d.ctx.Host.RequestFrame(d.tick)
}

func (d *FrameDriver) finish(err error) {
	d.once.Do(func() {
		d.stopped.Store(true)
		d.err = err
		close(d.done)
	})
}

// Stop stops re-registering ticks. A tick already registered with
// the host does nothing when it runs.
func (d *FrameDriver) Stop() {
	d.finish(nil)
}

// Done is closed when the driver stops, either by [FrameDriver.Stop]
// or because a tick failed.
func (d *FrameDriver) Done() <-chan struct{} {
	return d.done
}

// Err returns the error that stopped the driver, if any.
// It is only meaningful after Done is closed.
func (d *FrameDriver) Err() error {
	select {
	case <-d.done:
		return d.err
	default:
		return nil
	}
}

// Frames returns the number of completed ticks.
func (d *FrameDriver) Frames() int {
	return int(d.frames.Load())
}

// Running returns whether the driver has started and not stopped.
func (d *FrameDriver) Running() bool {
	return d.started.Load() && !d.stopped.Load()
}
