// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ezgl/ezgl/gl"
	"github.com/ezgl/ezgl/platform"
)

// info is the report printed for an acquired context.
type info struct {
	Display string
	// DisplayVersion, DisplayVendor and ClientAPIs are reported by EGL
	// displays only.
	DisplayVersion string
	DisplayVendor  string
	ClientAPIs     []string
	API            platform.API
	Samples        uint8
	Alpha          uint8
	SRGB           bool
	SurfaceTypes   platform.SurfaceTypes
	Visual         uintptr
	Width          uint32
	Height         uint32

	Vendor     string
	Renderer   string
	Version    string
	GLSL       string
	Extensions int
	Debug      bool
}

// eglDisplay is implemented by EGL displays.
type eglDisplay interface {
	Version() (major, minor int)
	Vendor() string
	ClientAPIs() []string
}

func displayInfo(d platform.Display, i *info) {
	ed, ok := d.(eglDisplay)
	if !ok {
		return
	}
	major, minor := ed.Version()
	i.DisplayVersion = fmt.Sprintf("%d.%d", major, minor)
	i.DisplayVendor = ed.Vendor()
	i.ClientAPIs = ed.ClientAPIs()
}

func glInfo(f *gl.Functions, i *info) {
	i.Vendor = f.GetString(gl.VENDOR)
	i.Renderer = f.GetString(gl.RENDERER)
	i.Version = f.GetString(gl.VERSION)
	i.GLSL = f.GetString(gl.SHADING_LANGUAGE_VERSION)
	i.Extensions = len(f.Extensions())
	i.Debug = f.DebugSupported()
}

func configInfo(display string, c platform.Config, ctx platform.Context, s platform.Surface) info {
	w, h := s.Size()
	return info{
		Display:      display,
		API:          ctx.API(),
		Samples:      c.NumSamples(),
		Alpha:        c.AlphaSize(),
		SRGB:         c.SRGBCapable(),
		SurfaceTypes: c.SurfaceTypes(),
		Visual:       c.NativeVisual(),
		Width:        w,
		Height:       h,
	}
}

func (i info) write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprintf(tw, "display:\t%s\n", i.Display)
	if i.DisplayVersion != "" {
		fmt.Fprintf(tw, "display version:\t%s\n", i.DisplayVersion)
		fmt.Fprintf(tw, "display vendor:\t%s\n", i.DisplayVendor)
		fmt.Fprintf(tw, "client apis:\t%s\n", strings.Join(i.ClientAPIs, " "))
	}
	fmt.Fprintf(tw, "api:\t%s\n", i.API)
	fmt.Fprintf(tw, "samples:\t%d\n", i.Samples)
	fmt.Fprintf(tw, "alpha:\t%d\n", i.Alpha)
	fmt.Fprintf(tw, "srgb:\t%v\n", i.SRGB)
	fmt.Fprintf(tw, "surface types:\t%s\n", i.SurfaceTypes)
	fmt.Fprintf(tw, "visual:\t0x%x\n", i.Visual)
	fmt.Fprintf(tw, "surface size:\t%dx%d\n", i.Width, i.Height)
	fmt.Fprintf(tw, "vendor:\t%s\n", i.Vendor)
	fmt.Fprintf(tw, "renderer:\t%s\n", i.Renderer)
	fmt.Fprintf(tw, "version:\t%s\n", i.Version)
	fmt.Fprintf(tw, "glsl:\t%s\n", i.GLSL)
	fmt.Fprintf(tw, "extensions:\t%d\n", i.Extensions)
	fmt.Fprintf(tw, "debug output:\t%v\n", i.Debug)
	return tw.Flush()
}
