// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package term provides a terminal host that draws frames with
// half-block characters, two pixels per cell.
package term

import (
	"context"
	"fmt"
	"image"
	"time"

	"cogentcore.org/stage/host"
	"github.com/gdamore/tcell/v2"
)

// Config configures a terminal [Host].
type Config struct {

	// Rate is the interval between frames.
	Rate time.Duration `default:"33ms"`
}

// Host runs a [host.Loop] on a tcell screen. The viewport is the
// terminal size with each row counting as two pixels.
type Host struct {
	*host.Loop

	// Input receives arrow keys, +/- and mouse drags. It may be nil.
	Input host.Input

	// Present returns the image to draw after each frame. It may be nil.
	Present func() *image.RGBA

	screen tcell.Screen
	rate   time.Duration

	mouseX, mouseY int
	buttons        tcell.ButtonMask
}

// New returns a new [Host] on the current terminal.
func New(cfg Config) (*Host, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return NewWithScreen(s, cfg)
}

// NewWithScreen returns a new [Host] on the given screen, which it initializes.
func NewWithScreen(s tcell.Screen, cfg Config) (*Host, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	s.EnableMouse()
	s.HideCursor()
	w, h := s.Size()
	rate := cfg.Rate
	if rate <= 0 {
		rate = 33 * time.Millisecond
	}
	return &Host{Loop: host.NewLoop(w, h*2, 1), screen: s, rate: rate}, nil
}

// Screen returns the tcell screen.
func (h *Host) Screen() tcell.Screen {
	return h.screen
}

// Run delivers frames until ctx is done, the user quits, or no frame
// callback is registered. It finalizes the screen before returning.
func (h *Host) Run(ctx context.Context) error {
	defer h.screen.Fini()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(h.rate)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !h.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if h.Step() {
				return nil
			}
		}
	}
}

// Step runs one frame and draws it. It returns true when no frame
// callback remains registered.
func (h *Host) Step() bool {
	h.Frame()
	h.Draw()
	return h.Idle()
}

// HandleEvent translates a tcell event into loop input. It returns
// false when the user asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, ht := ev.Size()
		h.SetViewport(w, ht*2, 1)
		h.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	}
	return true
}

func (h *Host) height() int {
	_, ht, _ := h.Viewport()
	return ht
}

func (h *Host) handleKey(ev *tcell.EventKey) {
	in := h.Input
	if in == nil {
		return
	}
	const step = 4
	ht := h.height()
	pan := ev.Modifiers()&tcell.ModShift != 0
	move := func(dx, dy float32) {
		h.Post(func() {
			if pan {
				in.Pan(dx, dy, ht)
			} else {
				in.Rotate(dx, dy, ht)
			}
		})
	}
	switch ev.Key() {
	case tcell.KeyLeft:
		move(-step, 0)
	case tcell.KeyRight:
		move(step, 0)
	case tcell.KeyUp:
		move(0, -step)
	case tcell.KeyDown:
		move(0, step)
	case tcell.KeyRune:
		switch ev.Rune() {
		case '+', '=':
			h.Post(func() { in.Zoom(1) })
		case '-', '_':
			h.Post(func() { in.Zoom(-1) })
		}
	}
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	y *= 2
	btn := ev.Buttons()
	dx, dy := float32(x-h.mouseX), float32(y-h.mouseY)
	in := h.Input
	ht := h.height()
	if in != nil {
		switch {
		case btn&tcell.WheelUp != 0:
			h.Post(func() { in.Zoom(1) })
		case btn&tcell.WheelDown != 0:
			h.Post(func() { in.Zoom(-1) })
		case btn&tcell.Button1 != 0 && h.buttons&tcell.Button1 != 0:
			h.Post(func() { in.Rotate(dx, dy, ht) })
		case btn&(tcell.Button2|tcell.Button3) != 0 && h.buttons&(tcell.Button2|tcell.Button3) != 0:
			h.Post(func() { in.Pan(dx, dy, ht) })
		}
	}
	h.mouseX, h.mouseY = x, y
	h.buttons = btn
}

// Draw paints the presented image on the screen, scaled to fit,
// using the upper half block with the top pixel as foreground and
// the bottom pixel as background.
func (h *Host) Draw() {
	if h.Present == nil {
		return
	}
	img := h.Present()
	if img == nil || img.Bounds().Empty() {
		return
	}
	cols, rows := h.screen.Size()
	b := img.Bounds()
	px := func(cx, py int) tcell.Color {
		sx := b.Min.X + cx*b.Dx()/cols
		sy := b.Min.Y + py*b.Dy()/(rows*2)
		c := img.RGBAAt(sx, sy)
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	for cy := range rows {
		for cx := range cols {
			st := tcell.StyleDefault.Foreground(px(cx, cy*2)).Background(px(cx, cy*2+1))
			h.screen.SetContent(cx, cy, '▀', nil, st)
		}
	}
	h.screen.Show()
}
