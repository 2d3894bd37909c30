// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"
)

// config is the file format of --config. Flags override it.
type config struct {
	// Samples is the preferred sample count; unset prefers the most.
	Samples *uint8 `toml:",omitempty"`
	Width   int
	Height  int
	// EGL disables the Xlib error hooks, which selects EGL on X11.
	EGL   bool
	VSync *bool `toml:",omitempty"`
	Debug bool
	// Capture is the path of an image file to write a cleared frame
	// to.
	Capture string `toml:",omitempty"`
}

func defaultConfig() config {
	return config{Width: 640, Height: 480}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("couldn't read config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%s: unknown config keys %v", path, undecoded)
	}
	return cfg, nil
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(ctx *cli.Context, cfg *config) error {
	if ctx.IsSet(samplesFlag.Name) {
		n := ctx.Uint(samplesFlag.Name)
		if n > 255 {
			return fmt.Errorf("invalid sample count %d", n)
		}
		s := uint8(n)
		cfg.Samples = &s
	}
	if ctx.IsSet(widthFlag.Name) {
		cfg.Width = ctx.Int(widthFlag.Name)
	}
	if ctx.IsSet(heightFlag.Name) {
		cfg.Height = ctx.Int(heightFlag.Name)
	}
	if ctx.IsSet(eglFlag.Name) {
		cfg.EGL = ctx.Bool(eglFlag.Name)
	}
	if ctx.IsSet(vsyncFlag.Name) {
		v := ctx.Bool(vsyncFlag.Name)
		cfg.VSync = &v
	}
	if ctx.IsSet(debugFlag.Name) {
		cfg.Debug = ctx.Bool(debugFlag.Name)
	}
	if ctx.IsSet(captureFlag.Name) {
		cfg.Capture = ctx.String(captureFlag.Name)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	return nil
}

func writeConfig(w io.Writer, cfg *config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
