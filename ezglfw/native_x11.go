// SPDX-License-Identifier: Unlicense OR MIT

//go:build (linux && !android && !wayland) || freebsd || openbsd

package ezglfw

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/ezgl/ezgl"
	"github.com/ezgl/ezgl/platform"
)

func displayHandle() (platform.DisplayHandle, error) {
	dpy := unsafe.Pointer(glfw.GetX11Display())
	if dpy == nil {
		return nil, platform.ErrHandleUnavailable
	}
	return platform.XlibDisplayHandle{Display: dpy}, nil
}

func windowHandle(w *glfw.Window) (platform.WindowHandle, error) {
	xw := uintptr(w.GetX11Window())
	if xw == 0 {
		return nil, platform.ErrHandleUnavailable
	}
	visual := ezgl.XlibWindowVisual(unsafe.Pointer(glfw.GetX11Display()), xw)
	return platform.XlibWindowHandle{Window: xw, VisualID: visual}, nil
}

func errorHooks() platform.ErrorHookRegistrar {
	return ezgl.XlibErrorHooks()
}
