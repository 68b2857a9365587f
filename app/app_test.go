// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/stage/anim"
	"cogentcore.org/stage/clock"
	"cogentcore.org/stage/config"
	"cogentcore.org/stage/host/headless"
	"cogentcore.org/stage/scene"
	"cogentcore.org/stage/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := config.New()
	cfg.Host = config.HostHeadless
	cfg.Headless.Width = 64
	cfg.Headless.Height = 48
	cfg.Scene.ShadowMapSize = 64
	cfg.Render.Workers = 2
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config, elapsed ...float64) (*App, *headless.Host) {
	t.Helper()
	h := headless.New(cfg.Headless)
	a, err := New(cfg, h, clock.NewSequence(elapsed...))
	require.NoError(t, err)
	return a, h
}

func TestNew(t *testing.T) {
	a, h := newTestApp(t, testConfig(), 0)
	assert.Nil(t, a.Mixer)
	w, ht := a.Renderer.Size()
	assert.Equal(t, 64, w)
	assert.Equal(t, 48, ht)
	assert.Equal(t, float32(64)/48, a.Scene.Camera.Aspect)
	assert.True(t, a.Orbit.EnableDamping)
	assert.Equal(t, 0, h.Scheduled(), "no frame before Start")
}

func TestFrames(t *testing.T) {
	a, h := newTestApp(t, testConfig(), 0, 0.016, 0.033)
	a.Start()
	for range 3 {
		assert.False(t, h.Step())
	}
	assert.Equal(t, 3, a.Driver.Frames())
	assert.Equal(t, 3, a.Renderer.Frames())
	assert.Equal(t, 64, a.Image().Bounds().Dx())
	assert.Equal(t, 48, a.Image().Bounds().Dy())
	assert.NoError(t, a.Err())

	a.Stop()
	assert.True(t, h.Step())
	assert.Equal(t, 3, a.Driver.Frames())
}

func TestResize(t *testing.T) {
	a, h := newTestApp(t, testConfig(), 0)
	a.Start()
	h.Step()
	h.Resize(128, 64, 3)
	h.Step()
	assert.Equal(t, float32(2), a.Scene.Camera.Aspect)
	assert.Equal(t, float32(viewer.MaxPixelRatio), a.Renderer.PixelRatio())
	assert.Equal(t, 256, a.Image().Bounds().Dx())
	assert.Equal(t, 128, a.Image().Bounds().Dy())
	assert.Equal(t, 1, a.Reactor.Handled())
}

func crateY(a *App) float32 {
	return a.Scene.NodeByName(scene.CrateName).AsNodeBase().Pose.Pos.Y
}

func TestDemoAnimation(t *testing.T) {
	cfg := testConfig()
	cfg.Animation.Demo = true
	a, h := newTestApp(t, cfg, 0, 1)
	require.NotNil(t, a.Mixer)
	require.Len(t, a.Mixer.Actions(), 1)
	assert.True(t, a.Mixer.Actions()[0].IsRunning())

	a.Start()
	h.Step()
	assert.InDelta(t, 0.5, crateY(a), 1e-5)
	h.Step()
	assert.InDelta(t, 1.5, crateY(a), 1e-5)
	assert.InDelta(t, 1.0, a.Mixer.Time, 1e-9)
}

func writeClips(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clips.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestClipsFile(t *testing.T) {
	cfg := testConfig()
	cfg.Scene.Props = true
	cfg.Animation.Clips = writeClips(t, `
clips:
  - name: lift
    tracks:
      - node: crate
        property: position
        times: [0, 2]
        values: [0, 0.5, 0, 0, 2.5, 0]
`)
	a, h := newTestApp(t, cfg, 0, 1)
	require.Len(t, a.Mixer.Actions(), 1)
	assert.Equal(t, float32(2), a.Mixer.Actions()[0].Clip.Duration)
	a.Start()
	h.Step()
	h.Step()
	assert.InDelta(t, 1.5, crateY(a), 1e-5)
}

func TestNewErrors(t *testing.T) {
	cfg := testConfig()
	cfg.Animation.Clips = writeClips(t, `
clips:
  - name: lift
    tracks:
      - node: crate
        property: position
        times: [0]
        values: [0, 1, 0]
`)
	_, err := New(cfg, headless.New(cfg.Headless), nil)
	assert.ErrorIs(t, err, anim.ErrNoNode, "no props in the scene")

	cfg.Animation.Clips = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = New(cfg, headless.New(cfg.Headless), nil)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Scene.FloorColor = "not a color"
	_, err = New(cfg, headless.New(cfg.Headless), nil)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Headless.Width = 0
	_, err = New(cfg, headless.New(cfg.Headless), nil)
	assert.ErrorIs(t, err, viewer.ErrNoViewport)
}

func TestSnapshot(t *testing.T) {
	a, h := newTestApp(t, testConfig(), 0)
	var buf bytes.Buffer
	assert.Error(t, a.WriteSnapshot(&buf, 0), "nothing rendered yet")

	a.Start()
	h.Step()
	require.NoError(t, a.WriteSnapshot(&buf, 0))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())

	buf.Reset()
	require.NoError(t, a.WriteSnapshot(&buf, 16))
	img, err = png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 12, img.Bounds().Dy())
}

func TestRunHeadless(t *testing.T) {
	cfg := testConfig()
	cfg.Headless.Frames = 2
	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, Run(context.Background(), cfg, Options{Snapshot: path}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestRunCancelled(t *testing.T) {
	cfg := testConfig()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, Run(ctx, cfg, Options{}))
}
