// SPDX-License-Identifier: Unlicense OR MIT

package platform

import "fmt"

// API is a set of client rendering APIs.
type API uint8

const (
	APIOpenGL API = 1 << iota
	APIGLES
)

func (a API) String() string {
	switch a {
	case 0:
		return "none"
	case APIOpenGL:
		return "OpenGL"
	case APIGLES:
		return "OpenGL ES"
	case APIOpenGL | APIGLES:
		return "OpenGL|OpenGL ES"
	default:
		return fmt.Sprintf("API(%d)", uint8(a))
	}
}

// Version is a major.minor API version. The zero Version lets the
// display pick.
type Version struct {
	Major, Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ContextAttributes describe a context creation request.
type ContextAttributes struct {
	// API is the requested client API. Zero requests the display's
	// default, desktop OpenGL where available.
	API     API
	Version Version
	// Debug requests a debug context.
	Debug bool
	// Window is the window the context will be current on, if known.
	Window WindowHandle
}

// DefaultContextAttributes returns the first attempt of acquisition.
func DefaultContextAttributes(win WindowHandle) ContextAttributes {
	return ContextAttributes{Window: win}
}

// FallbackContextAttributes returns the GL ES request tried when the
// default attempt fails.
func FallbackContextAttributes(win WindowHandle) ContextAttributes {
	return ContextAttributes{API: APIGLES, Window: win}
}

// SurfaceAttributes describe a window surface creation request.
type SurfaceAttributes struct {
	// SRGB requests an sRGB capable framebuffer where supported.
	SRGB          bool
	Window        WindowHandle
	Width, Height uint32
}

// WindowSurfaceAttributes returns sRGB window surface attributes of
// the given size.
func WindowSurfaceAttributes(win WindowHandle, width, height uint32) SurfaceAttributes {
	return SurfaceAttributes{
		SRGB:   true,
		Window: win,
		Width:  width,
		Height: height,
	}
}
