// SPDX-License-Identifier: Unlicense OR MIT

//go:build ((linux && !android) || freebsd) && !nowayland

package egl

/*
#cgo linux pkg-config: wayland-egl
#cgo freebsd LDFLAGS: -lwayland-egl

#include <wayland-egl.h>
*/
import "C"

import (
	"errors"
	"unsafe"

	"github.com/ezgl/ezgl/platform"
)

// waylandWindow is the wl_egl_window EGL renders to for a wl_surface.
type waylandWindow struct {
	win *C.struct_wl_egl_window
}

func newWaylandWindow(surf unsafe.Pointer, width, height uint32) (*waylandWindow, error) {
	if surf == nil {
		return nil, platform.ErrHandleUnavailable
	}
	win := C.wl_egl_window_create((*C.struct_wl_surface)(surf), C.int(width), C.int(height))
	if win == nil {
		return nil, errors.New("wayland: wl_egl_window_create failed")
	}
	return &waylandWindow{win: win}, nil
}

func (w *waylandWindow) native() uintptr {
	return uintptr(unsafe.Pointer(w.win))
}

func (w *waylandWindow) resize(width, height uint32) {
	C.wl_egl_window_resize(w.win, C.int(width), C.int(height), 0, 0)
}

func (w *waylandWindow) destroy() {
	C.wl_egl_window_destroy(w.win)
	w.win = nil
}
