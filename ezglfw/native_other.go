// SPDX-License-Identifier: Unlicense OR MIT

//go:build !((linux && !android) || freebsd || openbsd || windows)

package ezglfw

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/ezgl/ezgl/platform"
)

func displayHandle() (platform.DisplayHandle, error) {
	return nil, platform.ErrHandleNotSupported
}

func windowHandle(w *glfw.Window) (platform.WindowHandle, error) {
	return nil, platform.ErrHandleNotSupported
}

func errorHooks() platform.ErrorHookRegistrar {
	return platform.NoErrorHooks{}
}
