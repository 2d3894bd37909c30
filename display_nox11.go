// SPDX-License-Identifier: Unlicense OR MIT

//go:build !((linux && !android) || freebsd || openbsd) || nox11

package ezgl

import (
	"unsafe"

	"github.com/ezgl/ezgl/platform"
)

// XlibErrorHooks returns a registrar that drops hooks, as Xlib is not
// available.
func XlibErrorHooks() platform.ErrorHookRegistrar {
	return platform.NoErrorHooks{}
}

func x11Openers() []platform.Opener {
	return nil
}

// XlibWindowVisual returns 0, as Xlib is not available.
func XlibWindowVisual(dpy unsafe.Pointer, win uintptr) uintptr {
	return 0
}
