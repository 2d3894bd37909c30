// SPDX-License-Identifier: Unlicense OR MIT

// Command ezglinfo acquires an OpenGL context for a window and reports
// the selected configuration and the GL implementation.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slog"

	"github.com/ezgl/ezgl"
	"github.com/ezgl/ezgl/ezglfw"
	"github.com/ezgl/ezgl/gl"
	"github.com/ezgl/ezgl/platform"
)

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	samplesFlag = &cli.UintFlag{
		Name:  "samples",
		Usage: "preferred number of samples per pixel (default: most available)",
	}
	widthFlag = &cli.IntFlag{
		Name:  "width",
		Usage: "window width",
		Value: 640,
	}
	heightFlag = &cli.IntFlag{
		Name:  "height",
		Usage: "window height",
		Value: 480,
	}
	eglFlag = &cli.BoolFlag{
		Name:  "egl",
		Usage: "use EGL on X11 instead of trying GLX first",
	}
	vsyncFlag = &cli.BoolFlag{
		Name:  "vsync",
		Usage: "set the swap interval to 1, or 0 with --vsync=false",
	}
	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "log acquisition steps and GL debug messages",
	}
	captureFlag = &cli.StringFlag{
		Name:  "capture",
		Usage: "write a cleared frame to `FILE` (.png, .bmp or .tiff)",
	}
)

var flags = []cli.Flag{
	configFlag,
	samplesFlag,
	widthFlag,
	heightFlag,
	eglFlag,
	vsyncFlag,
	debugFlag,
	captureFlag,
}

func main() {
	// Required by the OpenGL threading model.
	runtime.LockOSThread()

	app := &cli.App{
		Name:   "ezglinfo",
		Usage:  "report the OpenGL context acquired for a window",
		Flags:  flags,
		Action: run,
		Commands: []*cli.Command{
			{
				Name:   "dumpconfig",
				Usage:  "print the effective configuration as TOML",
				Flags:  flags,
				Action: dumpConfig,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func effectiveConfig(ctx *cli.Context) (config, error) {
	cfg, err := loadConfig(ctx.String(configFlag.Name))
	if err != nil {
		return cfg, err
	}
	return cfg, applyFlags(ctx, &cfg)
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := effectiveConfig(ctx)
	if err != nil {
		return err
	}
	return writeConfig(os.Stdout, &cfg)
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func run(ctx *cli.Context) error {
	cfg, err := effectiveConfig(ctx)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Debug)

	if err := glfw.Init(); err != nil {
		return err
	}
	defer glfw.Terminate()
	ezglfw.Hints()
	if cfg.Capture == "" {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, "ezglinfo", nil, nil)
	if err != nil {
		return err
	}
	defer window.Destroy()

	opts := []ezgl.Option{
		ezgl.WithLogger(logger),
		ezgl.WithDebugCallback(platform.NewDebugLogger(logger)),
	}
	if cfg.EGL {
		opts = append(opts, ezgl.WithErrorHooks(platform.NoErrorHooks{}))
	}
	if cfg.VSync != nil {
		opts = append(opts, ezgl.WithVSync(*cfg.VSync))
	}
	glctx, err := ezglfw.New(window, cfg.Samples, opts...)
	if err != nil {
		return err
	}
	defer glctx.Release()
	if cfg.Debug {
		glctx.Enable(gl.DEBUG_OUTPUT)
		glctx.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	}

	i := configInfo(glctx.DisplayName(), glctx.Config(), glctx.Platform(), glctx.Surface())
	displayInfo(glctx.Display(), &i)
	glInfo(glctx.Functions, &i)
	if err := i.write(os.Stdout); err != nil {
		return err
	}

	if cfg.Capture == "" {
		return nil
	}
	width, height := window.GetFramebufferSize()
	glctx.Viewport(0, 0, width, height)
	glctx.ClearColor(0.1, 0.2, 0.3, 1.0)
	glctx.Clear(gl.COLOR_BUFFER_BIT)
	img, err := readFrame(glctx.Functions, width, height)
	if err != nil {
		return err
	}
	if err := writeImage(cfg.Capture, img); err != nil {
		return err
	}
	logger.Info("captured frame", "path", cfg.Capture, "width", width, "height", height)
	return glctx.SwapBuffers()
}
