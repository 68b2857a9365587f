// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app assembles the floor scene viewer from a [config.Config]:
// the scene, renderer, orbit controls, optional animation mixer, and
// the frame driver and resize reactor running them on a host.
package app

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/stage/anim"
	"cogentcore.org/stage/clock"
	"cogentcore.org/stage/config"
	"cogentcore.org/stage/controls"
	"cogentcore.org/stage/host/headless"
	"cogentcore.org/stage/host/term"
	"cogentcore.org/stage/render"
	"cogentcore.org/stage/scene"
	"cogentcore.org/stage/viewer"
)

// App is a running viewer.
type App struct {
	Scene    *scene.Scene
	Renderer *render.Renderer
	Orbit    *controls.Orbit

	// Mixer is nil when no animation is configured.
	Mixer *anim.Mixer

	Context *viewer.Context
	Driver  *viewer.FrameDriver
	Reactor *viewer.ResizeReactor
}

// New builds a viewer for cfg on the given host. A nil src uses the
// monotonic clock. The frame loop does not run until [App.Start].
func New(cfg *config.Config, h viewer.Host, src clock.Source) (*App, error) {
	opts := cfg.Scene
	if cfg.Animation.Demo {
		opts.Props = true
	}
	sc, err := scene.NewFloorScene(opts)
	if err != nil {
		return nil, err
	}

	a := &App{Scene: sc, Renderer: render.New()}
	a.Renderer.ColorSpace = cfg.Render.ColorSpace
	a.Renderer.Shadows = cfg.Render.Shadows
	a.Renderer.Workers = cfg.Render.Workers

	a.Orbit = controls.NewOrbit(&sc.Camera)
	a.Orbit.EnableDamping = cfg.Controls.Damping
	a.Orbit.DampingFactor = cfg.Controls.DampingFactor

	slot := viewer.NoMixer()
	if cfg.Animation.HasMixer() {
		if err := a.initMixer(&cfg.Animation); err != nil {
			return nil, err
		}
		slot = viewer.WithMixer(a.Mixer)
	}

	a.Context = &viewer.Context{
		Scene:    sc,
		Camera:   &sc.Camera,
		Controls: a.Orbit,
		Target:   a.Renderer,
		Mixer:    slot,
		Clock:    clock.New(src),
		Host:     h,
	}
	if err := a.Context.Init(); err != nil {
		return nil, err
	}
	a.Reactor = viewer.NewResizeReactor(a.Context)
	a.Reactor.Attach()
	a.Driver = viewer.NewFrameDriver(a.Context)
	return a, nil
}

func (a *App) initMixer(cfg *config.Animation) error {
	var clips []*anim.Clip
	if cfg.Demo {
		clips = append(clips, anim.DemoClip())
	}
	if cfg.Clips != "" {
		f, err := os.Open(cfg.Clips)
		if err != nil {
			return fmt.Errorf("animation clips: %w", err)
		}
		loaded, err := anim.LoadClips(f)
		errors.Log(f.Close())
		if err != nil {
			return fmt.Errorf("animation clips %s: %w", cfg.Clips, err)
		}
		clips = append(clips, loaded...)
	}
	a.Mixer = anim.NewMixer(a.Scene)
	for _, cl := range clips {
		ac, err := a.Mixer.ClipAction(cl)
		if err != nil {
			return err
		}
		ac.Play()
		slog.Debug("playing clip", "clip", cl.Name, "duration", cl.Duration)
	}
	return nil
}

// Start schedules the first frame.
func (a *App) Start() {
	a.Driver.Start()
}

// Stop stops the frame loop after the current frame.
func (a *App) Stop() {
	a.Driver.Stop()
}

// Err returns the error that stopped the frame loop, if any.
func (a *App) Err() error {
	return a.Driver.Err()
}

// Image returns the most recently rendered frame.
func (a *App) Image() *image.RGBA {
	return a.Renderer.Image()
}

// WriteSnapshot encodes the most recent frame to w as PNG, scaled
// to fit within size x size when size is positive.
func (a *App) WriteSnapshot(w io.Writer, size int) error {
	img := a.Renderer.Image()
	if size > 0 {
		img = a.Renderer.Thumbnail(size, size)
	}
	if img.Bounds().Empty() {
		return fmt.Errorf("snapshot: no frame has been rendered")
	}
	return png.Encode(w, img)
}

// SaveSnapshot writes the most recent frame to a PNG file.
func (a *App) SaveSnapshot(path string, size int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := a.WriteSnapshot(f, size); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ErrNoWindow is returned by [Run] for [config.HostWindow] when the
// binary is built with the nowindow tag.
var ErrNoWindow = errors.New("window host not built in (nowindow tag)")

// Options are the per-run settings that are not part of [config.Config].
type Options struct {

	// Snapshot is the path of a PNG file to write the last frame to.
	Snapshot string

	// ThumbnailSize scales the snapshot to fit this size when positive.
	ThumbnailSize int
}

// Run runs the viewer on the host selected by cfg until ctx is done,
// the user closes the host, or the frame loop fails.
// The window host must be run from the main goroutine.
func Run(ctx context.Context, cfg *config.Config, opts Options) error {
	var a *App
	var run func(context.Context) error
	var err error
	switch cfg.Host {
	case config.HostHeadless:
		h := headless.New(cfg.Headless)
		if a, err = New(cfg, h, nil); err != nil {
			return err
		}
		run = h.Run
	case config.HostTerminal:
		h, herr := term.New(cfg.Terminal)
		if herr != nil {
			return herr
		}
		if a, err = New(cfg, h, nil); err != nil {
			h.Screen().Fini()
			return err
		}
		h.Input = a.Orbit
		h.Present = a.Image
		run = h.Run
	case config.HostWindow:
		if a, run, err = newWindow(cfg); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown host %v", cfg.Host)
	}
	defer a.Renderer.Release()

	slog.Info("starting", "host", cfg.Host, "mixer", a.Mixer != nil)
	a.Start()
	runErr := run(ctx)
	a.Stop()
	slog.Info("stopped", "frames", a.Driver.Frames())
	if err := a.Err(); err != nil {
		return err
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) && !errors.Is(runErr, context.DeadlineExceeded) {
		return runErr
	}
	if opts.Snapshot != "" {
		return a.SaveSnapshot(opts.Snapshot, opts.ThumbnailSize)
	}
	return nil
}
