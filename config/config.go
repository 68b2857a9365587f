// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs of the stage
// viewer, their defaults, and loading from TOML files.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/stage/host/headless"
	"cogentcore.org/stage/host/term"
	"cogentcore.org/stage/render"
	"cogentcore.org/stage/scene"
	"github.com/pelletier/go-toml/v2"
)

// Config is the main config struct that contains all of the
// configuration options for the viewer.
type Config struct {

	// Host is the platform host to run on.
	Host HostKind `default:"window"`

	// Window configures the desktop window host.
	Window Window

	// Terminal configures the terminal host.
	Terminal term.Config

	// Headless configures the offscreen host.
	Headless headless.Config

	Render Render

	// Scene configures the floor scene.
	Scene scene.FloorOptions

	Controls Controls

	Animation Animation

	Log Log
}

// Window configures the desktop window host. It converts
// directly to a window.Config.
type Window struct {
	Title  string `default:"stage"`
	Width  int    `default:"1280"`
	Height int    `default:"720"`
}

// Render configures the renderer.
type Render struct {

	// ColorSpace is the output color space.
	ColorSpace render.ColorSpace `default:"linear-srgb"`

	// Shadows is the shadow filtering technique.
	Shadows render.ShadowType `default:"pcf-soft"`

	// Workers is the number of goroutines rasterizing a frame;
	// zero uses one per CPU.
	Workers int
}

// Controls configures the orbit controller.
type Controls struct {

	// Damping enables inertial damping of camera motion.
	Damping bool `default:"true"`

	// DampingFactor is the fraction of the remaining motion
	// applied per frame.
	DampingFactor float32 `default:"0.05"`
}

// Animation configures the optional animation mixer.
// The mixer is created only when Demo is set or Clips is non-empty.
type Animation struct {

	// Demo plays the built-in crate animation; it implies Scene.Props.
	Demo bool

	// Clips is the path of a YAML file of animation clips to play.
	Clips string
}

// HasMixer returns whether an animation mixer is configured.
func (a *Animation) HasMixer() bool {
	return a.Demo || a.Clips != ""
}

// Log configures logging.
type Log struct {

	// Level is the minimum level of messages shown;
	// the zero value is [slog.LevelInfo].
	Level slog.Level

	// File is the path of a file to log to instead of stderr.
	// The terminal host always logs to a file, stage.log by default.
	File string
}

// New returns a new [Config] with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Defaults sets all fields from their `default:` tags.
func (c *Config) Defaults() {
	SetFromDefaults(c)
}

// Open returns the defaults overridden by the TOML file at path.
// Unknown keys are an error.
func Open(path string) (*Config, error) {
	c := New()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(c); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to the TOML file at path.
func (c *Config) Save(path string) error {
	b, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}

// Validate returns an error describing every invalid field.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	check(c.Host >= 0 && c.Host < HostKindN, "invalid host %v", c.Host)
	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	check(c.Headless.Width > 0 && c.Headless.Height > 0, "headless size %dx%d must be positive", c.Headless.Width, c.Headless.Height)
	check(c.Headless.PixelRatio > 0, "headless pixel ratio %g must be positive", c.Headless.PixelRatio)
	check(c.Headless.Frames >= 0, "headless frames %d must not be negative", c.Headless.Frames)
	check(c.Terminal.Rate >= 0, "terminal rate %v must not be negative", c.Terminal.Rate)
	check(c.Render.Workers >= 0, "render workers %d must not be negative", c.Render.Workers)
	check(c.Scene.FloorSize > 0, "floor size %g must be positive", c.Scene.FloorSize)
	check(c.Scene.ShadowMapSize > 0, "shadow map size %d must be positive", c.Scene.ShadowMapSize)
	check(c.Controls.DampingFactor > 0 && c.Controls.DampingFactor <= 1, "damping factor %g must be in (0, 1]", c.Controls.DampingFactor)
	return errors.Join(errs...)
}
