// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"errors"
	"unsafe"
)

// Display is a connection to a display API such as EGL or GLX.
type Display interface {
	// Name identifies the display API, for example "EGL".
	Name() string
	// FindConfigs enumerates the configurations matching t.
	FindConfigs(t ConfigTemplate) ([]Config, error)
	CreateWindowSurface(c Config, attrs SurfaceAttributes) (Surface, error)
	CreateContext(c Config, attrs ContextAttributes) (Context, error)
	// GetProcAddress resolves a client API entry point, returning nil
	// if it is not available.
	GetProcAddress(name string) unsafe.Pointer
	// Release terminates the display connection. Surfaces and contexts
	// must be released first.
	Release()
}

// Surface is a presentable drawable bound to a window.
type Surface interface {
	// Size returns the current surface size in pixels.
	Size() (width, height uint32)
	// Resize resizes the surface in place. Both dimensions are
	// non-zero.
	Resize(ctx Context, width, height uint32)
	SwapBuffers(ctx Context) error
	SetSwapInterval(ctx Context, interval int) error
	Release()
}

// Context is a rendering context created from a Display.
type Context interface {
	// API is the client API the context was created for.
	API() API
	MakeCurrent(s Surface) error
	// ReleaseCurrent detaches the context from the calling thread.
	ReleaseCurrent() error
	Release()
}

// Loader loads the GL entry-point table of the current context.
type Loader interface {
	Load(getProcAddress func(name string) unsafe.Pointer) error
	// SetDebugCallback installs cb as the driver debug message
	// callback of the current context.
	SetDebugCallback(cb DebugCallback)
}

// Opener connects to one display API for a pair of handles. It
// returns ErrUnsupported if the API cannot serve the handles.
type Opener struct {
	Name string
	Open func(dh DisplayHandle, wh WindowHandle, hooks ErrorHookRegistrar) (Display, error)
}

// OpenDisplay tries openers in order and returns the first display
// that opens. The failures of all openers are reported if none does;
// the result is a KindHandle Error if any opener failed to use the
// handles.
func OpenDisplay(dh DisplayHandle, wh WindowHandle, hooks ErrorHookRegistrar, openers ...Opener) (Display, error) {
	if hooks == nil {
		hooks = NoErrorHooks{}
	}
	if len(openers) == 0 {
		return nil, PlatformError("open display", ErrUnsupported)
	}
	var errs []error
	kind := KindPlatform
	for _, o := range openers {
		d, err := o.Open(dh, wh, hooks)
		if err == nil {
			return d, nil
		}
		if kindOf(err) == KindHandle {
			kind = KindHandle
		}
		errs = append(errs, &Error{Kind: kindOf(err), Op: "open " + o.Name, Err: err})
	}
	return nil, &Error{Kind: kind, Op: "open display", Err: errors.Join(errs...)}
}
