// SPDX-License-Identifier: Unlicense OR MIT

package ezgl

import (
	"github.com/ezgl/ezgl/gl"
	"github.com/ezgl/ezgl/platform"
)

// Context is an OpenGL context current on the surface of a window. The
// embedded Functions are the GL entry points of the context.
type Context struct {
	*gl.Functions
	acq *platform.Acquisition
}

// New acquires a context for win. The width and height are the
// current window size in pixels and must be non-zero.
//
// The calling goroutine must be locked to its OS thread, and the
// context must only be used from that thread.
func New(win platform.Window, width, height uint32, opts ...Option) (*Context, error) {
	o := newOptions(opts)
	dh, wh, err := platform.ResolveHandles(win)
	if err != nil {
		return nil, err
	}
	d, err := platform.OpenDisplay(dh, wh, o.hooks, openers(o.hooks)...)
	if err != nil {
		return nil, err
	}
	f := new(gl.Functions)
	acq, err := platform.Acquire(d, f, platform.Request{
		Window:        wh,
		Width:         width,
		Height:        height,
		Samples:       o.samples,
		DebugCallback: o.debug,
		SwapInterval:  o.interval,
		Logger:        o.log,
	})
	if err != nil {
		return nil, err
	}
	return &Context{Functions: f, acq: acq}, nil
}

// NewWithDebugCallback is like New with the debug message callback cb.
func NewWithDebugCallback(win platform.Window, width, height uint32, cb platform.DebugCallback, opts ...Option) (*Context, error) {
	return New(win, width, height, append(opts, WithDebugCallback(cb))...)
}

// Resize resizes the surface. It does nothing if width or height is
// zero. The GL viewport is left to the caller.
func (c *Context) Resize(width, height uint32) {
	c.acq.Resize(width, height)
}

// SwapBuffers presents the back buffer.
func (c *Context) SwapBuffers() error {
	return c.acq.SwapBuffers()
}

// Release destroys the surface and context and closes the display.
func (c *Context) Release() {
	c.acq.Release()
}

// Config returns the selected configuration.
func (c *Context) Config() platform.Config {
	return c.acq.Config()
}

// Surface returns the window surface.
func (c *Context) Surface() platform.Surface {
	return c.acq.Surface()
}

// Platform returns the underlying rendering context.
func (c *Context) Platform() platform.Context {
	return c.acq.Context()
}

// Display returns the display connection, or nil after Release.
func (c *Context) Display() platform.Display {
	return c.acq.Display()
}

// DisplayName names the display API in use, such as "EGL" or "GLX".
func (c *Context) DisplayName() string {
	if d := c.acq.Display(); d != nil {
		return d.Name()
	}
	return ""
}
