// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package term

import (
	"context"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordInput struct {
	rotates, pans int
	zoom          float32
	lastDX        float32
	height        int
}

func (ri *recordInput) Rotate(dx, dy float32, height int) {
	ri.rotates++
	ri.lastDX = dx
	ri.height = height
}

func (ri *recordInput) Pan(dx, dy float32, height int) { ri.pans++ }

func (ri *recordInput) Zoom(delta float32) { ri.zoom += delta }

func newHost(t *testing.T) (*Host, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	h, err := NewWithScreen(s, Config{Rate: time.Millisecond})
	require.NoError(t, err)
	s.SetSize(20, 10)
	h.HandleEvent(tcell.NewEventResize(20, 10))
	return h, s
}

func TestResizeDoublesRows(t *testing.T) {
	h, _ := newHost(t)
	var got [2]int
	h.OnViewportChanged(func(w, ht int) { got = [2]int{w, ht} })
	h.Frame()
	assert.Equal(t, [2]int{20, 20}, got)
	w, ht, dpr := h.Viewport()
	assert.Equal(t, 20, w)
	assert.Equal(t, 20, ht)
	assert.Equal(t, float32(1), dpr)
}

func TestDrawHalfBlocks(t *testing.T) {
	h, s := newHost(t)
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	for y := range 20 {
		for x := range 20 {
			if y%2 == 0 {
				img.SetRGBA(x, y, red)
			} else {
				img.SetRGBA(x, y, blue)
			}
		}
	}
	h.Present = func() *image.RGBA { return img }
	h.Draw()

	mainc, _, style, _ := s.GetContent(3, 4)
	assert.Equal(t, '▀', mainc)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bg)
}

func TestKeys(t *testing.T) {
	h, _ := newHost(t)
	in := &recordInput{}
	h.Input = in

	assert.True(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.True(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift)))
	assert.True(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone)))
	assert.Equal(t, 0, in.rotates, "input is queued until the next frame")
	h.Frame()
	assert.Equal(t, 1, in.rotates)
	assert.Equal(t, float32(-4), in.lastDX)
	assert.Equal(t, 20, in.height)
	assert.Equal(t, 1, in.pans)
	assert.Equal(t, float32(1), in.zoom)

	assert.False(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestMouseDrag(t *testing.T) {
	h, _ := newHost(t)
	in := &recordInput{}
	h.Input = in
	h.HandleEvent(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(8, 5, tcell.Button1, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(8, 5, tcell.WheelDown, tcell.ModNone))
	h.Frame()
	assert.Equal(t, 1, in.rotates)
	assert.Equal(t, float32(3), in.lastDX)
	assert.Equal(t, float32(-1), in.zoom)
}

func TestRunStopsWhenIdle(t *testing.T) {
	h, _ := newHost(t)
	n := 0
	var tick func()
	tick = func() {
		n++
		if n < 3 {
			h.RequestFrame(tick)
		}
	}
	h.RequestFrame(tick)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, h.Run(ctx))
	assert.Equal(t, 3, n)
}
