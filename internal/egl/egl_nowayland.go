// SPDX-License-Identifier: Unlicense OR MIT

//go:build ((linux && !android) || freebsd || openbsd) && (nowayland || openbsd)

package egl

import (
	"unsafe"

	"github.com/ezgl/ezgl/platform"
)

type waylandWindow struct{}

func newWaylandWindow(surf unsafe.Pointer, width, height uint32) (*waylandWindow, error) {
	return nil, platform.ErrHandleNotSupported
}

func (w *waylandWindow) native() uintptr { return 0 }

func (w *waylandWindow) resize(width, height uint32) {}

func (w *waylandWindow) destroy() {}
