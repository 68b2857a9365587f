// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build nowindow

package app

import (
	"context"
	"testing"

	"cogentcore.org/stage/config"
	"github.com/stretchr/testify/assert"
)

func TestRunWithoutWindow(t *testing.T) {
	cfg := testConfig()
	cfg.Host = config.HostWindow
	assert.ErrorIs(t, Run(context.Background(), cfg, Options{}), ErrNoWindow)
}
