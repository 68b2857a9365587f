// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build nowindow

package app

import (
	"context"

	"cogentcore.org/stage/config"
)

func newWindow(cfg *config.Config) (*App, func(context.Context) error, error) {
	return nil, nil, ErrNoWindow
}
