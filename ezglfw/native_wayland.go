// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux && !android && wayland

package ezglfw

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/ezgl/ezgl/platform"
)

func displayHandle() (platform.DisplayHandle, error) {
	dpy := unsafe.Pointer(glfw.GetWaylandDisplay())
	if dpy == nil {
		return nil, platform.ErrHandleUnavailable
	}
	return platform.WaylandDisplayHandle{Display: dpy}, nil
}

func windowHandle(w *glfw.Window) (platform.WindowHandle, error) {
	surf := unsafe.Pointer(w.GetWaylandWindow())
	if surf == nil {
		return nil, platform.ErrHandleUnavailable
	}
	return platform.WaylandWindowHandle{Surface: surf}, nil
}

func errorHooks() platform.ErrorHookRegistrar {
	return platform.NoErrorHooks{}
}
