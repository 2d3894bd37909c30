// SPDX-License-Identifier: Unlicense OR MIT

// Package ezglfw acquires ezgl contexts for GLFW windows.
//
// Windows must be created without a GLFW context:
//
//	ezglfw.Hints()
//	win, err := glfw.CreateWindow(800, 600, "ezgl", nil, nil)
//	...
//	ctx, err := ezglfw.New(win, nil)
package ezglfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/ezgl/ezgl"
	"github.com/ezgl/ezgl/platform"
)

// Hints sets the window hints required by New. Call it after glfw.Init
// and before glfw.CreateWindow.
func Hints() {
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
}

// Window adapts a GLFW window to platform.Window.
type Window struct {
	*glfw.Window
}

var _ platform.Window = Window{}

func (w Window) DisplayHandle() (platform.DisplayHandle, error) {
	if w.Window == nil {
		return nil, platform.ErrHandleUnavailable
	}
	return displayHandle()
}

func (w Window) WindowHandle() (platform.WindowHandle, error) {
	if w.Window == nil {
		return nil, platform.ErrHandleUnavailable
	}
	return windowHandle(w.Window)
}

// New acquires a context for win sized to its framebuffer. A nil
// prefer selects the configuration with the most samples. On X11 the
// Xlib error hooks are supplied so GLX can be used; opts may override
// them.
func New(win *glfw.Window, prefer *uint8, opts ...ezgl.Option) (*ezgl.Context, error) {
	if win == nil {
		_, _, err := platform.ResolveHandles(Window{})
		return nil, err
	}
	width, height := win.GetFramebufferSize()
	return ezgl.New(Window{win}, uint32(width), uint32(height), options(prefer, opts)...)
}

func options(prefer *uint8, opts []ezgl.Option) []ezgl.Option {
	all := []ezgl.Option{ezgl.WithErrorHooks(errorHooks())}
	if prefer != nil {
		all = append(all, ezgl.WithSamples(*prefer))
	}
	return append(all, opts...)
}
