// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"context"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	h := New(Config{Title: "t", Width: 320, Height: 200})
	w, ht, dpr := h.Viewport()
	assert.Equal(t, 320, w)
	assert.Equal(t, 200, ht)
	assert.Equal(t, float32(1), dpr)
	assert.True(t, h.Idle())
}

func TestUpdateCancelled(t *testing.T) {
	h := New(Config{Width: 32, Height: 32})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h.ctx = ctx
	n := 0
	h.RequestFrame(func() { n++ })

	g := &game{h: h}
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Equal(t, 0, n)
	assert.Equal(t, 1, h.Scheduled())
}

func TestDrawWithoutPresent(t *testing.T) {
	h := New(Config{Width: 32, Height: 32})
	g := &game{h: h}
	g.Draw(nil)
	assert.Nil(t, h.buf)
}
