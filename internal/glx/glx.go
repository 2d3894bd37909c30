// SPDX-License-Identifier: Unlicense OR MIT

//go:build ((linux && !android) || freebsd || openbsd) && !nox11

// Package glx implements platform.Display on top of GLX.
package glx

/*
#cgo linux pkg-config: x11 gl
#cgo freebsd openbsd LDFLAGS: -lX11 -lGL
#cgo freebsd CFLAGS: -I/usr/local/include
#cgo freebsd LDFLAGS: -L/usr/local/lib
#cgo openbsd CFLAGS: -I/usr/X11R6/include
#cgo openbsd LDFLAGS: -L/usr/X11R6/lib

#include <stdlib.h>
#include <X11/Xlib.h>
#include <GL/glx.h>

typedef GLXContext (*ezgl_createContextAttribsProc)(Display *, GLXFBConfig, GLXContext, Bool, const int *);
typedef void (*ezgl_swapIntervalProc)(Display *, GLXDrawable, int);

extern int ezglXErrorHandler(Display *dpy, XErrorEvent *ev);

int ezgl_callErrorHandler(XErrorHandler h, Display *dpy, XErrorEvent *ev) {
	return h(dpy, ev);
}

XErrorHandler ezgl_setErrorHandler(void) {
	return XSetErrorHandler(ezglXErrorHandler);
}

static void *ezgl_glXGetProcAddress(const char *name) {
	return (void *)glXGetProcAddressARB((const GLubyte *)name);
}

static GLXContext ezgl_glXCreateContextAttribs(void *fn, Display *dpy, GLXFBConfig cfg, const int *attribs) {
	return ((ezgl_createContextAttribsProc)fn)(dpy, cfg, NULL, True, attribs);
}

static void ezgl_glXSwapInterval(void *fn, Display *dpy, GLXDrawable d, int interval) {
	((ezgl_swapIntervalProc)fn)(dpy, d, interval);
}

static unsigned char ezgl_errorCode(XErrorEvent *ev) {
	return ev->error_code;
}

static unsigned char ezgl_requestCode(XErrorEvent *ev) {
	return ev->request_code;
}

static unsigned char ezgl_minorCode(XErrorEvent *ev) {
	return ev->minor_code;
}
*/
import "C"

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unsafe"

	"github.com/ezgl/ezgl/platform"
)

// Opener opens GLX displays.
var Opener = platform.Opener{Name: "GLX", Open: Open}

const (
	_GLX_CONTEXT_MAJOR_VERSION_ARB    = 0x2091
	_GLX_CONTEXT_MINOR_VERSION_ARB    = 0x2092
	_GLX_CONTEXT_FLAGS_ARB            = 0x2094
	_GLX_CONTEXT_PROFILE_MASK_ARB     = 0x9126
	_GLX_CONTEXT_DEBUG_BIT_ARB        = 0x0001
	_GLX_CONTEXT_ES2_PROFILE_BIT_EXT  = 0x0004
	_GLX_FRAMEBUFFER_SRGB_CAPABLE_ARB = 0x20b2
	_GLX_SAMPLES                      = 100001
)

type Display struct {
	dpy    *C.Display
	screen C.int
	// owned reports whether the connection was opened by Open.
	owned bool
	exts  []string

	createContextAttribs unsafe.Pointer
	swapInterval         unsafe.Pointer

	trap       errorTrap
	unregister func()
}

// errorTrap records the first X error reported while it is active.
type errorTrap struct {
	mu     sync.Mutex
	active bool
	err    *Error
}

func (t *errorTrap) begin() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = true
	t.err = nil
}

// record keeps err if the trap is active and reports whether it did.
func (t *errorTrap) record(err *Error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.active {
		return false
	}
	if t.err == nil {
		t.err = err
	}
	return true
}

// end deactivates the trap and returns the recorded error.
func (t *errorTrap) end() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = false
	if t.err != nil {
		return t.err
	}
	return nil
}

type config struct {
	cfg     C.GLXFBConfig
	samples uint8
	alpha   uint8
	types   platform.SurfaceTypes
	apis    platform.API
	visual  uintptr
	srgb    bool
}

type surface struct {
	d             *Display
	win           C.GLXWindow
	width, height uint32
}

type context struct {
	d   *Display
	ctx C.GLXContext
	api platform.API
}

// Open connects to the X display of dh and checks for GLX 1.3. X
// errors raised while creating contexts are captured through hooks
// instead of reaching the default Xlib handler, which exits.
func Open(dh platform.DisplayHandle, wh platform.WindowHandle, hooks platform.ErrorHookRegistrar) (platform.Display, error) {
	xh, ok := dh.(platform.XlibDisplayHandle)
	if !ok {
		return nil, platform.ErrHandleNotSupported
	}
	if !hooks.Enabled() {
		return nil, errors.New("glx: error hooks required")
	}
	d := &Display{
		dpy:    (*C.Display)(xh.Display),
		screen: C.int(xh.Screen),
	}
	if d.dpy == nil {
		d.dpy = C.XOpenDisplay(nil)
		if d.dpy == nil {
			return nil, errors.New("glx: XOpenDisplay failed")
		}
		d.owned = true
		d.screen = C.XDefaultScreen(d.dpy)
	}
	var major, minor C.int
	if C.glXQueryVersion(d.dpy, &major, &minor) == 0 {
		d.Release()
		return nil, errors.New("glx: glXQueryVersion failed")
	}
	if major < 1 || (major == 1 && minor < 3) {
		d.Release()
		return nil, fmt.Errorf("glx: version %d.%d is older than 1.3", major, minor)
	}
	d.exts = strings.Fields(C.GoString(C.glXQueryExtensionsString(d.dpy, d.screen)))
	if d.hasExtension("GLX_ARB_create_context") {
		d.createContextAttribs = d.GetProcAddress("glXCreateContextAttribsARB")
	}
	if d.hasExtension("GLX_EXT_swap_control") {
		d.swapInterval = d.GetProcAddress("glXSwapIntervalEXT")
	}
	d.unregister = hooks.RegisterErrorHook(d.trapError)
	return d, nil
}

func (d *Display) Name() string {
	return "GLX"
}

func (d *Display) hasExtension(ext string) bool {
	for _, e := range d.exts {
		if e == ext {
			return true
		}
	}
	return false
}

// trapError is the error hook of d.
func (d *Display) trapError(dpy, event unsafe.Pointer) bool {
	if dpy == nil || dpy != unsafe.Pointer(d.dpy) {
		return false
	}
	ev := (*C.XErrorEvent)(event)
	return d.trap.record(&Error{
		Code:    uint8(C.ezgl_errorCode(ev)),
		Request: uint8(C.ezgl_requestCode(ev)),
		Minor:   uint8(C.ezgl_minorCode(ev)),
	})
}

// trapped runs f and returns the first X error it raised.
func (d *Display) trapped(f func()) error {
	d.trap.begin()
	f()
	C.XSync(d.dpy, C.False)
	return d.trap.end()
}

func (d *Display) FindConfigs(t platform.ConfigTemplate) ([]platform.Config, error) {
	attribs := []C.int{
		C.GLX_X_RENDERABLE, C.True,
		C.GLX_RENDER_TYPE, C.GLX_RGBA_BIT,
		C.GLX_DOUBLEBUFFER, C.True,
		C.GLX_ALPHA_SIZE, C.int(t.AlphaSize),
		C.GLX_DRAWABLE_TYPE, C.int(drawableBits(t.SurfaceTypes)),
		C.None,
	}
	var n C.int
	cfgs := C.glXChooseFBConfig(d.dpy, d.screen, &attribs[0], &n)
	if cfgs == nil || n == 0 {
		return nil, nil
	}
	defer C.XFree(unsafe.Pointer(cfgs))

	if xw, ok := t.Window.(platform.XlibWindowHandle); ok && xw.VisualID == 0 {
		xw.VisualID = WindowVisual(unsafe.Pointer(d.dpy), xw.Window)
		t.Window = xw
	}
	var res []platform.Config
	for _, cfg := range unsafe.Slice(cfgs, int(n)) {
		c := d.describe(cfg)
		if !t.Match(c) {
			continue
		}
		res = append(res, c)
	}
	return res, nil
}

// WindowVisual returns the visual id of the X window win on the
// connection dpy, or 0 if it cannot be determined.
func WindowVisual(dpy unsafe.Pointer, win uintptr) uintptr {
	if dpy == nil || win == 0 {
		return 0
	}
	var attrs C.XWindowAttributes
	if C.XGetWindowAttributes((*C.Display)(dpy), C.Window(win), &attrs) == 0 || attrs.visual == nil {
		return 0
	}
	return uintptr(C.XVisualIDFromVisual(attrs.visual))
}

func (d *Display) describe(cfg C.GLXFBConfig) *config {
	attr := func(name C.int) C.int {
		var v C.int
		if C.glXGetFBConfigAttrib(d.dpy, cfg, name, &v) != C.Success {
			return 0
		}
		return v
	}
	c := &config{
		cfg:     cfg,
		samples: uint8(attr(_GLX_SAMPLES)),
		alpha:   uint8(attr(C.GLX_ALPHA_SIZE)),
		visual:  uintptr(attr(C.GLX_VISUAL_ID)),
		apis:    platform.APIOpenGL,
	}
	if d.hasExtension("GLX_ARB_framebuffer_sRGB") || d.hasExtension("GLX_EXT_framebuffer_sRGB") {
		c.srgb = attr(_GLX_FRAMEBUFFER_SRGB_CAPABLE_ARB) != 0
	}
	if d.createContextAttribs != nil && d.hasExtension("GLX_EXT_create_context_es2_profile") {
		c.apis |= platform.APIGLES
	}
	types := attr(C.GLX_DRAWABLE_TYPE)
	if types&C.GLX_WINDOW_BIT != 0 {
		c.types |= platform.SurfaceWindow
	}
	if types&C.GLX_PBUFFER_BIT != 0 {
		c.types |= platform.SurfacePbuffer
	}
	if types&C.GLX_PIXMAP_BIT != 0 {
		c.types |= platform.SurfacePixmap
	}
	return c
}

func (d *Display) CreateWindowSurface(c platform.Config, attrs platform.SurfaceAttributes) (platform.Surface, error) {
	cfg, ok := c.(*config)
	if !ok {
		return nil, errors.New("glx: foreign config")
	}
	xw, ok := attrs.Window.(platform.XlibWindowHandle)
	if !ok {
		return nil, platform.ErrHandleNotSupported
	}
	if xw.Window == 0 {
		return nil, platform.ErrHandleUnavailable
	}
	if attrs.Width == 0 || attrs.Height == 0 {
		return nil, platform.ErrZeroSize
	}
	// sRGB is a property of the config under GLX; attrs.SRGB needs no
	// surface attribute.
	var win C.GLXWindow
	err := d.trapped(func() {
		win = C.glXCreateWindow(d.dpy, cfg.cfg, C.Window(xw.Window), nil)
	})
	if err == nil && win == 0 {
		err = errors.New("glXCreateWindow returned no window")
	}
	if err != nil {
		return nil, fmt.Errorf("glXCreateWindow failed: %w", err)
	}
	return &surface{d: d, win: win, width: attrs.Width, height: attrs.Height}, nil
}

func (d *Display) CreateContext(c platform.Config, attrs platform.ContextAttributes) (platform.Context, error) {
	cfg, ok := c.(*config)
	if !ok {
		return nil, errors.New("glx: foreign config")
	}
	api := attrs.API
	if api == 0 {
		api = platform.APIOpenGL
	}
	if cfg.apis&api == 0 {
		return nil, fmt.Errorf("glx: config does not support %v", api)
	}
	var ctx C.GLXContext
	var err error
	if d.createContextAttribs == nil {
		if api != platform.APIOpenGL || attrs.Version.Major != 0 || attrs.Debug {
			return nil, errors.New("glx: GLX_ARB_create_context not supported")
		}
		err = d.trapped(func() {
			ctx = C.glXCreateNewContext(d.dpy, cfg.cfg, C.GLX_RGBA_TYPE, nil, C.True)
		})
	} else {
		ctxAttribs := contextAttribs(api, attrs)
		err = d.trapped(func() {
			ctx = C.ezgl_glXCreateContextAttribs(d.createContextAttribs, d.dpy, cfg.cfg, &ctxAttribs[0])
		})
	}
	if err == nil && ctx == nil {
		err = errors.New("no context returned")
	}
	if err != nil {
		if ctx != nil {
			C.glXDestroyContext(d.dpy, ctx)
		}
		return nil, fmt.Errorf("glXCreateContext(%v) failed: %w", api, err)
	}
	return &context{d: d, ctx: ctx, api: api}, nil
}

func contextAttribs(api platform.API, attrs platform.ContextAttributes) []C.int {
	var a []C.int
	major, minor := attrs.Version.Major, attrs.Version.Minor
	if api == platform.APIGLES {
		if major == 0 {
			major, minor = 2, 0
		}
		a = append(a, _GLX_CONTEXT_PROFILE_MASK_ARB, _GLX_CONTEXT_ES2_PROFILE_BIT_EXT)
	}
	if major != 0 {
		a = append(a,
			_GLX_CONTEXT_MAJOR_VERSION_ARB, C.int(major),
			_GLX_CONTEXT_MINOR_VERSION_ARB, C.int(minor),
		)
	}
	if attrs.Debug {
		a = append(a, _GLX_CONTEXT_FLAGS_ARB, _GLX_CONTEXT_DEBUG_BIT_ARB)
	}
	return append(a, C.None)
}

func (d *Display) GetProcAddress(name string) unsafe.Pointer {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.ezgl_glXGetProcAddress(cname)
}

// Release removes the error hook of the display and closes the X
// connection if Open opened it.
func (d *Display) Release() {
	if d.dpy == nil {
		return
	}
	if d.unregister != nil {
		d.unregister()
		d.unregister = nil
	}
	d.trap.end()
	if d.owned {
		C.XCloseDisplay(d.dpy)
	}
	d.dpy = nil
}

func (s *surface) Size() (uint32, uint32) {
	return s.width, s.height
}

// Resize records the new size. The GLX window follows the size of the
// X window.
func (s *surface) Resize(ctx platform.Context, width, height uint32) {
	s.width, s.height = width, height
}

func (s *surface) SwapBuffers(ctx platform.Context) error {
	if s.win == 0 {
		return platform.ErrReleased
	}
	err := s.d.trapped(func() {
		C.glXSwapBuffers(s.d.dpy, C.GLXDrawable(s.win))
	})
	if err != nil {
		return fmt.Errorf("glXSwapBuffers failed: %w", err)
	}
	return nil
}

func (s *surface) SetSwapInterval(ctx platform.Context, interval int) error {
	if s.d.swapInterval == nil {
		return errors.New("glx: GLX_EXT_swap_control not supported")
	}
	return s.d.trapped(func() {
		C.ezgl_glXSwapInterval(s.d.swapInterval, s.d.dpy, C.GLXDrawable(s.win), C.int(interval))
	})
}

func (s *surface) Release() {
	if s.win == 0 {
		return
	}
	C.glXDestroyWindow(s.d.dpy, s.win)
	s.win = 0
}

func (c *context) API() platform.API {
	return c.api
}

func (c *context) MakeCurrent(s platform.Surface) error {
	surf, ok := s.(*surface)
	if !ok {
		return errors.New("glx: foreign surface")
	}
	if C.glXMakeContextCurrent(c.d.dpy, C.GLXDrawable(surf.win), C.GLXDrawable(surf.win), c.ctx) == 0 {
		return errors.New("glXMakeContextCurrent failed")
	}
	return nil
}

func (c *context) ReleaseCurrent() error {
	if C.glXMakeContextCurrent(c.d.dpy, C.None, C.None, nil) == 0 {
		return errors.New("glXMakeContextCurrent failed")
	}
	return nil
}

func (c *context) Release() {
	if c.ctx == nil {
		return
	}
	C.glXDestroyContext(c.d.dpy, c.ctx)
	c.ctx = nil
}

func (c *config) NumSamples() uint8                   { return c.samples }
func (c *config) AlphaSize() uint8                    { return c.alpha }
func (c *config) SRGBCapable() bool                   { return c.srgb }
func (c *config) SurfaceTypes() platform.SurfaceTypes { return c.types }
func (c *config) APIs() platform.API                  { return c.apis }
func (c *config) NativeVisual() uintptr               { return c.visual }

func drawableBits(t platform.SurfaceTypes) int {
	var bits int
	if t&platform.SurfaceWindow != 0 {
		bits |= C.GLX_WINDOW_BIT
	}
	if t&platform.SurfacePbuffer != 0 {
		bits |= C.GLX_PBUFFER_BIT
	}
	if t&platform.SurfacePixmap != 0 {
		bits |= C.GLX_PIXMAP_BIT
	}
	return bits
}
