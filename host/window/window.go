// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window provides a desktop window host on ebiten,
// with frames synchronized to the display refresh rate.
package window

import (
	"context"
	"image"

	"cogentcore.org/stage/host"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config configures a window [Host].
type Config struct {
	Title  string `default:"stage"`
	Width  int    `default:"1280"`
	Height int    `default:"720"`
}

// Host runs a [host.Loop] in an ebiten window. The viewport is the
// window's logical size and the monitor's device scale factor.
type Host struct {
	*host.Loop

	// Input receives mouse drags and wheel motion. It may be nil.
	Input host.Input

	// Present returns the image to draw after each frame. It may be nil.
	Present func() *image.RGBA

	cfg Config
	ctx context.Context

	buf          *ebiten.Image
	cursorX      int
	cursorY      int
	screenHeight int
}

// New returns a new window [Host]. The window opens in [Host.Run].
func New(cfg Config) *Host {
	return &Host{Loop: host.NewLoop(cfg.Width, cfg.Height, 1), cfg: cfg}
}

// Run opens the window and delivers frames until ctx is done, the
// window is closed, or no frame callback is registered.
// It must be called from the main goroutine.
func (h *Host) Run(ctx context.Context) error {
	h.ctx = ctx
	ebiten.SetWindowTitle(h.cfg.Title)
	ebiten.SetWindowSize(h.cfg.Width, h.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetVsyncEnabled(true)
	return ebiten.RunGame(&game{h: h})
}

type game struct {
	h *Host
}

func (g *game) Update() error {
	h := g.h
	if h.ctx != nil && h.ctx.Err() != nil {
		return ebiten.Termination
	}
	h.pollInput()
	h.Frame()
	if h.Idle() {
		return ebiten.Termination
	}
	return nil
}

func (h *Host) pollInput() {
	x, y := ebiten.CursorPosition()
	dx, dy := float32(x-h.cursorX), float32(y-h.cursorY)
	h.cursorX, h.cursorY = x, y
	in := h.Input
	if in == nil {
		return
	}
	ht := h.screenHeight
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) && !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	switch {
	case dx == 0 && dy == 0:
	case right || (left && shift):
		h.Post(func() { in.Pan(dx, dy, ht) })
	case left:
		h.Post(func() { in.Rotate(dx, dy, ht) })
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		h.Post(func() { in.Zoom(float32(wy)) })
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	h := g.h
	if h.Present == nil {
		return
	}
	img := h.Present()
	if img == nil || img.Bounds().Empty() {
		return
	}
	w, ht := img.Bounds().Dx(), img.Bounds().Dy()
	if h.buf == nil || h.buf.Bounds().Dx() != w || h.buf.Bounds().Dy() != ht {
		if h.buf != nil {
			h.buf.Deallocate()
		}
		h.buf = ebiten.NewImage(w, ht)
	}
	h.buf.WritePixels(img.Pix)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(w), float64(sh)/float64(ht))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(h.buf, op)
}

// Layout records the window size as the viewport and uses a screen
// of device pixels.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := 1.0
	if m := ebiten.Monitor(); m != nil {
		s = m.DeviceScaleFactor()
	}
	g.h.SetViewport(outsideWidth, outsideHeight, float32(s))
	sw, sh := int(float64(outsideWidth)*s), int(float64(outsideHeight)*s)
	g.h.screenHeight = sh
	return max(sw, 1), max(sh, 1)
}
