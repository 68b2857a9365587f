// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !nowindow

package app

import (
	"context"

	"cogentcore.org/stage/config"
	"cogentcore.org/stage/host/window"
)

// newWindow builds a viewer on a desktop window host.
func newWindow(cfg *config.Config) (*App, func(context.Context) error, error) {
	h := window.New(window.Config(cfg.Window))
	a, err := New(cfg, h, nil)
	if err != nil {
		return nil, nil, err
	}
	h.Input = a.Orbit
	h.Present = a.Image
	return a, h.Run, nil
}
