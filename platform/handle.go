// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"errors"
	"unsafe"
)

// DisplayHandle identifies the native display connection a window
// belongs to. The concrete types below are the only implementations.
type DisplayHandle interface {
	implementsDisplayHandle()
}

// WindowHandle identifies a native window.
type WindowHandle interface {
	implementsWindowHandle()
}

// HasDisplayHandle is implemented by host windows that can report
// their display connection.
type HasDisplayHandle interface {
	DisplayHandle() (DisplayHandle, error)
}

// HasWindowHandle is implemented by host windows that can report
// their native window.
type HasWindowHandle interface {
	WindowHandle() (WindowHandle, error)
}

// Window is a host window usable for acquisition.
type Window interface {
	HasDisplayHandle
	HasWindowHandle
}

// XlibDisplayHandle is an Xlib Display connection.
type XlibDisplayHandle struct {
	// Display is the *Display pointer. Nil selects the default display.
	Display unsafe.Pointer
	Screen  int
}

// XlibWindowHandle is an X11 Window id.
type XlibWindowHandle struct {
	Window uintptr
	// VisualID is the visual the window was created with, or 0 if
	// unknown.
	VisualID uintptr
}

// WaylandDisplayHandle is a wl_display.
type WaylandDisplayHandle struct {
	Display unsafe.Pointer
}

// WaylandWindowHandle is the wl_surface backing a window.
type WaylandWindowHandle struct {
	Surface unsafe.Pointer
}

// WindowsDisplayHandle is the Windows desktop. It carries no data.
type WindowsDisplayHandle struct{}

// Win32WindowHandle is a HWND and the module instance owning it.
type Win32WindowHandle struct {
	HWND      uintptr
	HINSTANCE uintptr
}

func (XlibDisplayHandle) implementsDisplayHandle()    {}
func (WaylandDisplayHandle) implementsDisplayHandle() {}
func (WindowsDisplayHandle) implementsDisplayHandle() {}

func (XlibWindowHandle) implementsWindowHandle()    {}
func (WaylandWindowHandle) implementsWindowHandle() {}
func (Win32WindowHandle) implementsWindowHandle()   {}

// ErrHandleUnavailable is reported by host windows whose native
// handles are not available yet, or not any more.
var ErrHandleUnavailable = errors.New("native handle unavailable")

// ErrHandleNotSupported is reported for handle types the current
// platform cannot use.
var ErrHandleNotSupported = errors.New("native handle type not supported")

// ResolveHandles reads the display and window handles of w. Failures
// are reported as KindHandle errors.
func ResolveHandles(w Window) (DisplayHandle, WindowHandle, error) {
	dh, err := w.DisplayHandle()
	if err != nil {
		return nil, nil, handleError("display handle", err)
	}
	if dh == nil {
		return nil, nil, handleError("display handle", ErrHandleUnavailable)
	}
	wh, err := w.WindowHandle()
	if err != nil {
		return nil, nil, handleError("window handle", err)
	}
	if wh == nil {
		return nil, nil, handleError("window handle", ErrHandleUnavailable)
	}
	return dh, wh, nil
}

// Handles is a Window made from a fixed pair of handles.
type Handles struct {
	Display DisplayHandle
	Window  WindowHandle
}

func (h Handles) DisplayHandle() (DisplayHandle, error) {
	if h.Display == nil {
		return nil, ErrHandleUnavailable
	}
	return h.Display, nil
}

func (h Handles) WindowHandle() (WindowHandle, error) {
	if h.Window == nil {
		return nil, ErrHandleUnavailable
	}
	return h.Window, nil
}
