// SPDX-License-Identifier: Unlicense OR MIT

//go:build (linux && !android) || freebsd || openbsd

package egl

/*
#cgo linux pkg-config: egl
#cgo linux LDFLAGS: -ldl
#cgo freebsd openbsd LDFLAGS: -lEGL
#cgo freebsd CFLAGS: -I/usr/local/include
#cgo freebsd LDFLAGS: -L/usr/local/lib
#cgo openbsd CFLAGS: -I/usr/X11R6/include
#cgo openbsd LDFLAGS: -L/usr/X11R6/lib
#cgo CFLAGS: -DEGL_NO_X11

#include <stdlib.h>
#include <dlfcn.h>
#include <EGL/egl.h>
#include <EGL/eglext.h>

static void *ezgl_eglGetProcAddress(const char *name) {
	static void *self;
	void *p = (void *)eglGetProcAddress(name);
	if (p != NULL) {
		return p;
	}
	// Core entry points of the client libraries linked into the process.
	if (self == NULL) {
		self = dlopen(NULL, RTLD_NOW);
	}
	if (self == NULL) {
		return NULL;
	}
	return dlsym(self, name);
}
*/
import "C"

import (
	"unsafe"

	"github.com/ezgl/ezgl/platform"
)

type (
	_EGLint           = C.EGLint
	_EGLenum          = C.EGLenum
	_EGLDisplay       = C.EGLDisplay
	_EGLConfig        = C.EGLConfig
	_EGLContext       = C.EGLContext
	_EGLSurface       = C.EGLSurface
	nativeDisplayType = C.EGLNativeDisplayType
	nativeWindowType  = C.EGLNativeWindowType
)

func loadEGL() error {
	return nil
}

func nativeDisplay(dh platform.DisplayHandle) (nativeDisplayType, error) {
	switch h := dh.(type) {
	case platform.XlibDisplayHandle:
		// A nil Display selects EGL_DEFAULT_DISPLAY.
		return nativeDisplayType(h.Display), nil
	case platform.WaylandDisplayHandle:
		if h.Display == nil {
			return nil, platform.ErrHandleUnavailable
		}
		return nativeDisplayType(h.Display), nil
	default:
		return nil, platform.ErrHandleNotSupported
	}
}

func nativeWindow(wh platform.WindowHandle, width, height uint32) (nativeWindowType, *waylandWindow, error) {
	switch h := wh.(type) {
	case platform.XlibWindowHandle:
		if h.Window == 0 {
			return 0, nil, platform.ErrHandleUnavailable
		}
		return nativeWindowType(h.Window), nil, nil
	case platform.WaylandWindowHandle:
		wl, err := newWaylandWindow(h.Surface, width, height)
		if err != nil {
			return 0, nil, err
		}
		return nativeWindowType(wl.native()), wl, nil
	default:
		return 0, nil, platform.ErrHandleNotSupported
	}
}

func eglChooseConfig(disp _EGLDisplay, attribs []_EGLint, configs []_EGLConfig) (int, bool) {
	var cfgs *C.EGLConfig
	if len(configs) > 0 {
		cfgs = &configs[0]
	}
	var n C.EGLint
	if C.eglChooseConfig(disp, &attribs[0], cfgs, C.EGLint(len(configs)), &n) != C.EGL_TRUE {
		return 0, false
	}
	return int(n), true
}

func eglBindAPI(api _EGLenum) bool {
	return C.eglBindAPI(api) == C.EGL_TRUE
}

func eglCreateContext(disp _EGLDisplay, cfg _EGLConfig, shareCtx _EGLContext, attribs []_EGLint) _EGLContext {
	return C.eglCreateContext(disp, cfg, shareCtx, &attribs[0])
}

func eglDestroySurface(disp _EGLDisplay, surf _EGLSurface) bool {
	return C.eglDestroySurface(disp, surf) == C.EGL_TRUE
}

func eglDestroyContext(disp _EGLDisplay, ctx _EGLContext) bool {
	return C.eglDestroyContext(disp, ctx) == C.EGL_TRUE
}

func eglGetConfigAttrib(disp _EGLDisplay, cfg _EGLConfig, attr _EGLint) (_EGLint, bool) {
	var val _EGLint
	ret := C.eglGetConfigAttrib(disp, cfg, attr, &val)
	return val, ret == C.EGL_TRUE
}

func eglGetError() Error {
	return Error(C.eglGetError())
}

func eglInitialize(disp _EGLDisplay) (_EGLint, _EGLint, bool) {
	var maj, min _EGLint
	ret := C.eglInitialize(disp, &maj, &min)
	return maj, min, ret == C.EGL_TRUE
}

func eglMakeCurrent(disp _EGLDisplay, draw, read _EGLSurface, ctx _EGLContext) bool {
	return C.eglMakeCurrent(disp, draw, read, ctx) == C.EGL_TRUE
}

func eglReleaseThread() bool {
	return C.eglReleaseThread() == C.EGL_TRUE
}

func eglSwapBuffers(disp _EGLDisplay, surf _EGLSurface) bool {
	return C.eglSwapBuffers(disp, surf) == C.EGL_TRUE
}

func eglSwapInterval(disp _EGLDisplay, interval _EGLint) bool {
	return C.eglSwapInterval(disp, interval) == C.EGL_TRUE
}

func eglTerminate(disp _EGLDisplay) bool {
	return C.eglTerminate(disp) == C.EGL_TRUE
}

func eglQueryString(disp _EGLDisplay, name _EGLint) string {
	return C.GoString(C.eglQueryString(disp, name))
}

func eglGetDisplay(disp nativeDisplayType) _EGLDisplay {
	return C.eglGetDisplay(disp)
}

func eglCreateWindowSurface(disp _EGLDisplay, conf _EGLConfig, win nativeWindowType, attribs []_EGLint) _EGLSurface {
	return C.eglCreateWindowSurface(disp, conf, win, &attribs[0])
}

func eglGetProcAddress(name string) unsafe.Pointer {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.ezgl_eglGetProcAddress(cname)
}
