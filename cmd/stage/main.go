// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command stage views a shadowed floor scene in a desktop window,
// a terminal, or offscreen, with orbit controls and optional
// keyframe animation.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cogentcore.org/stage/app"
	"cogentcore.org/stage/config"
	"cogentcore.org/stage/logx"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(&flags{}).Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	config    string
	host      config.HostKind
	frames    int
	width     int
	height    int
	snapshot  string
	thumbnail int
	props     bool
	demo      bool
	clips     string
	shadows   string
	logFile   string

	vv, v, q bool
}

func newRootCmd(f *flags) *cobra.Command {
	root := &cobra.Command{
		Use:          "stage",
		Short:        "View a shadowed floor scene",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}
	fs := root.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "TOML config file")
	fs.VarP(&f.host, "host", "H", "host to run on: window, terminal or headless")
	fs.IntVar(&f.frames, "frames", 0, "number of frames to run on the headless host (0 for no limit)")
	fs.IntVar(&f.width, "width", 0, "width of the window or headless surface")
	fs.IntVar(&f.height, "height", 0, "height of the window or headless surface")
	fs.StringVar(&f.snapshot, "snapshot", "", "write the last frame to this PNG file")
	fs.IntVar(&f.thumbnail, "thumbnail", 0, "scale the snapshot to fit this size")
	fs.BoolVar(&f.props, "props", false, "add a shadow-casting crate")
	fs.BoolVar(&f.demo, "demo", false, "animate the crate")
	fs.StringVar(&f.clips, "clips", "", "YAML file of animation clips to play")
	fs.StringVar(&f.shadows, "shadows", "", "shadow filtering: off, basic, pcf or pcf-soft")
	fs.StringVar(&f.logFile, "log-file", "", "log to this file instead of stderr")
	pf := root.PersistentFlags()
	pf.BoolVar(&f.vv, "vv", false, "enable debug logging")
	pf.BoolVarP(&f.v, "verbose", "v", false, "enable verbose logging")
	pf.BoolVarP(&f.q, "quiet", "q", false, "only log errors")

	root.AddCommand(newInitCmd())
	return root
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [file]",
		Short: "Write the default config to a TOML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "stage.toml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.New().Save(path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	}
}

// loadConfig returns the config file, if any, overridden by the
// flags that were set.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg := config.New()
	if f.config != "" {
		var err error
		if cfg, err = config.Open(f.config); err != nil {
			return nil, err
		}
	}
	fs := cmd.Flags()
	if fs.Changed("host") {
		cfg.Host = f.host
	}
	if fs.Changed("frames") {
		cfg.Headless.Frames = f.frames
	}
	if fs.Changed("width") {
		cfg.Window.Width = f.width
		cfg.Headless.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Window.Height = f.height
		cfg.Headless.Height = f.height
	}
	if fs.Changed("props") {
		cfg.Scene.Props = f.props
	}
	if fs.Changed("demo") {
		cfg.Animation.Demo = f.demo
	}
	if fs.Changed("clips") {
		cfg.Animation.Clips = f.clips
	}
	if fs.Changed("shadows") {
		if err := cfg.Render.Shadows.SetString(f.shadows); err != nil {
			return nil, err
		}
	}
	if fs.Changed("log-file") {
		cfg.Log.File = f.logFile
	}
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	logx.UserLevel = cfg.Log.Level
	logx.UserLevel = logx.LevelFromFlags(f.vv, f.v, f.q)
	logFile := cfg.Log.File
	if logFile == "" && cfg.Host == config.HostTerminal {
		logFile = "stage.log"
	}
	if logFile != "" {
		lf, err := logx.OpenFile(logFile)
		if err != nil {
			return err
		}
		defer lf.Close()
	} else {
		logx.SetDefaultLogger(os.Stderr)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Run(ctx, cfg, app.Options{Snapshot: f.snapshot, ThumbnailSize: f.thumbnail})
}
