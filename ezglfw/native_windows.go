// SPDX-License-Identifier: Unlicense OR MIT

package ezglfw

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/ezgl/ezgl/platform"
)

func displayHandle() (platform.DisplayHandle, error) {
	return platform.WindowsDisplayHandle{}, nil
}

func windowHandle(w *glfw.Window) (platform.WindowHandle, error) {
	hwnd := uintptr(unsafe.Pointer(w.GetWin32Window()))
	if hwnd == 0 {
		return nil, platform.ErrHandleUnavailable
	}
	return platform.Win32WindowHandle{HWND: hwnd}, nil
}

func errorHooks() platform.ErrorHookRegistrar {
	return platform.NoErrorHooks{}
}
