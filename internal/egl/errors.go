// SPDX-License-Identifier: Unlicense OR MIT

//go:build (linux && !android) || freebsd || openbsd || windows

package egl

import (
	"fmt"

	"github.com/ezgl/ezgl/platform"
)

// Error is an eglGetError code.
type Error int32

const (
	errSuccess           Error = 0x3000
	errNotInitialized    Error = 0x3001
	errBadAccess         Error = 0x3002
	errBadAlloc          Error = 0x3003
	errBadAttribute      Error = 0x3004
	errBadConfig         Error = 0x3005
	errBadContext        Error = 0x3006
	errBadCurrentSurface Error = 0x3007
	errBadDisplay        Error = 0x3008
	errBadMatch          Error = 0x3009
	errBadNativePixmap   Error = 0x300a
	errBadNativeWindow   Error = 0x300b
	errBadParameter      Error = 0x300c
	errBadSurface        Error = 0x300d
	errContextLost       Error = 0x300e
)

func (e Error) Error() string {
	var name string
	switch e {
	case errSuccess:
		name = "EGL_SUCCESS"
	case errNotInitialized:
		name = "EGL_NOT_INITIALIZED"
	case errBadAccess:
		name = "EGL_BAD_ACCESS"
	case errBadAlloc:
		name = "EGL_BAD_ALLOC"
	case errBadAttribute:
		name = "EGL_BAD_ATTRIBUTE"
	case errBadConfig:
		name = "EGL_BAD_CONFIG"
	case errBadContext:
		name = "EGL_BAD_CONTEXT"
	case errBadCurrentSurface:
		name = "EGL_BAD_CURRENT_SURFACE"
	case errBadDisplay:
		name = "EGL_BAD_DISPLAY"
	case errBadMatch:
		name = "EGL_BAD_MATCH"
	case errBadNativePixmap:
		name = "EGL_BAD_NATIVE_PIXMAP"
	case errBadNativeWindow:
		name = "EGL_BAD_NATIVE_WINDOW"
	case errBadParameter:
		name = "EGL_BAD_PARAMETER"
	case errBadSurface:
		name = "EGL_BAD_SURFACE"
	case errContextLost:
		name = "EGL_CONTEXT_LOST"
	default:
		return fmt.Sprintf("unknown EGL error 0x%x", int32(e))
	}
	return fmt.Sprintf("%s (0x%x)", name, int32(e))
}

// Is maps EGL_CONTEXT_LOST to platform.ErrContextLost.
func (e Error) Is(target error) bool {
	return e == errContextLost && target == platform.ErrContextLost
}
