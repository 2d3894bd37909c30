// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"golang.org/x/exp/slog"
)

// Request holds the parameters of Acquire.
type Request struct {
	Window WindowHandle
	// Width and Height are the initial surface size, usually the
	// current size of the window.
	Width, Height uint32
	// Samples is the preferred sample count. Nil prefers the most
	// samples.
	Samples *uint8
	// DebugCallback receives driver debug messages. Nil selects
	// DefaultDebugCallback.
	DebugCallback DebugCallback
	// SwapInterval is applied after the context is made current. Nil
	// keeps the driver default.
	SwapInterval *int
	Logger       *slog.Logger
}

// Acquisition is a context made current on a window surface. It owns
// the display, surface and context until Release.
type Acquisition struct {
	display Display
	config  Config
	surface Surface
	context Context
	log     *slog.Logger
}

// Acquire selects a configuration of d, creates a window surface and a
// context, makes the context current, loads the entry points through
// loader and installs the debug callback.
//
// Acquire takes ownership of d: it is released when Acquire fails or
// when the returned Acquisition is released.
func Acquire(d Display, loader Loader, req Request) (*Acquisition, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}
	a := &Acquisition{display: d, log: log}
	if err := a.acquire(loader, req); err != nil {
		a.Release()
		return nil, err
	}
	return a, nil
}

func (a *Acquisition) acquire(loader Loader, req Request) error {
	d := a.display
	configs, err := d.FindConfigs(WindowConfigTemplate(req.Window))
	if err != nil {
		return PlatformError("find configs", err)
	}
	cfg, err := SelectConfig(configs, req.Samples)
	if err != nil {
		return PlatformError("find configs", err)
	}
	a.config = cfg
	a.log.Debug("selected config", "display", d.Name(), "candidates", len(configs),
		"samples", cfg.NumSamples(), "alpha", cfg.AlphaSize(), "srgb", cfg.SRGBCapable())

	if req.Width == 0 || req.Height == 0 {
		return PlatformError("create surface", ErrZeroSize)
	}
	surf, err := d.CreateWindowSurface(cfg, WindowSurfaceAttributes(req.Window, req.Width, req.Height))
	if err != nil {
		return PlatformError("create surface", err)
	}
	a.surface = surf

	ctx, err := d.CreateContext(cfg, DefaultContextAttributes(req.Window))
	if err != nil {
		a.log.Debug("default context failed, falling back to OpenGL ES", "display", d.Name(), "err", err)
		ctx, err = d.CreateContext(cfg, FallbackContextAttributes(req.Window))
		if err != nil {
			return PlatformError("create context", err)
		}
	}
	a.context = ctx

	if err := ctx.MakeCurrent(surf); err != nil {
		return PlatformError("make current", err)
	}
	if req.SwapInterval != nil {
		if err := surf.SetSwapInterval(ctx, *req.SwapInterval); err != nil {
			return PlatformError("swap interval", err)
		}
	}
	if err := loader.Load(d.GetProcAddress); err != nil {
		return PlatformError("load entry points", err)
	}
	cb := req.DebugCallback
	if cb == nil {
		cb = DefaultDebugCallback
	}
	loader.SetDebugCallback(cb)
	a.log.Debug("context acquired", "display", d.Name(), "api", ctx.API())
	return nil
}

// Config returns the selected configuration.
func (a *Acquisition) Config() Config {
	return a.config
}

// Surface returns the window surface, or nil after Release.
func (a *Acquisition) Surface() Surface {
	return a.surface
}

// Context returns the rendering context, or nil after Release.
func (a *Acquisition) Context() Context {
	return a.context
}

// Display returns the display connection, or nil after Release.
func (a *Acquisition) Display() Display {
	return a.display
}

// Resize resizes the surface. It does nothing if width or height is
// zero, which happens while windows are minimized. The GL viewport is
// not changed.
func (a *Acquisition) Resize(width, height uint32) {
	if width == 0 || height == 0 || a.surface == nil {
		return
	}
	a.surface.Resize(a.context, width, height)
}

// SwapBuffers presents the back buffer.
func (a *Acquisition) SwapBuffers() error {
	if a.surface == nil || a.context == nil {
		return PlatformError("swap buffers", ErrReleased)
	}
	return PlatformError("swap buffers", a.surface.SwapBuffers(a.context))
}

// Release detaches and destroys the context, destroys the surface and
// terminates the display. Release is safe to call more than once.
func (a *Acquisition) Release() {
	if a.context != nil {
		if err := a.context.ReleaseCurrent(); err != nil {
			a.log.Debug("release current failed", "err", err)
		}
	}
	if a.surface != nil {
		a.surface.Release()
		a.surface = nil
	}
	if a.context != nil {
		a.context.Release()
		a.context = nil
	}
	if a.display != nil {
		a.display.Release()
		a.display = nil
	}
}
