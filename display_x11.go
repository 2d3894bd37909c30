// SPDX-License-Identifier: Unlicense OR MIT

//go:build ((linux && !android) || freebsd || openbsd) && !nox11

package ezgl

import (
	"unsafe"

	"github.com/ezgl/ezgl/internal/glx"
	"github.com/ezgl/ezgl/platform"
)

// XlibErrorHooks returns the process wide Xlib error hook registrar.
// The first hook registration installs an Xlib error handler that
// forwards unhandled errors to the handler it replaced.
func XlibErrorHooks() platform.ErrorHookRegistrar {
	return glx.ErrorHooks()
}

func x11Openers() []platform.Opener {
	return []platform.Opener{glx.Opener}
}

// XlibWindowVisual returns the visual id of the X window win on the
// Xlib connection dpy, or 0 if it cannot be determined.
func XlibWindowVisual(dpy unsafe.Pointer, win uintptr) uintptr {
	return glx.WindowVisual(dpy, win)
}
