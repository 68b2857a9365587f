// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package headless provides a host without a display, driven by a
// ticker. It is used for tests, benchmarks and offscreen snapshots.
package headless

import (
	"context"
	"time"

	"cogentcore.org/stage/host"
)

// Config configures a headless [Host].
type Config struct {
	Width  int `default:"640"`
	Height int `default:"480"`

	// PixelRatio is the simulated device pixel ratio.
	PixelRatio float32 `default:"1"`

	// Rate is the interval between frames; zero runs frames back to back.
	Rate time.Duration

	// Frames is the number of frames to run; zero means no limit.
	Frames int
}

// Host runs a [host.Loop] from a ticker.
type Host struct {
	*host.Loop
	cfg Config
}

// New returns a new headless [Host].
func New(cfg Config) *Host {
	if cfg.PixelRatio <= 0 {
		cfg.PixelRatio = 1
	}
	return &Host{Loop: host.NewLoop(cfg.Width, cfg.Height, cfg.PixelRatio), cfg: cfg}
}

// Resize simulates a change of the surface size and pixel ratio.
func (h *Host) Resize(width, height int, dpr float32) {
	h.SetViewport(width, height, dpr)
}

// Step runs one frame and returns true when no frame callback remains registered.
func (h *Host) Step() bool {
	h.Frame()
	return h.Idle()
}

// Run delivers frames until ctx is done, the frame limit is reached,
// or no frame callback is registered.
func (h *Host) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if h.cfg.Rate > 0 {
		ticker := time.NewTicker(h.cfg.Rate)
		defer ticker.Stop()
		tick = ticker.C
	}
	for n := 0; h.cfg.Frames <= 0 || n < h.cfg.Frames; n++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if h.Step() {
			return nil
		}
	}
	return nil
}
