// SPDX-License-Identifier: Unlicense OR MIT

//go:build (linux && !android) || freebsd || openbsd || windows

// Package egl implements platform.Display on top of EGL.
package egl

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/ezgl/ezgl/platform"
)

// Opener opens EGL displays.
var Opener = platform.Opener{Name: "EGL", Open: Open}

type Display struct {
	disp         _EGLDisplay
	major, minor int
	exts         []string
	// srgb reports EGL_KHR_gl_colorspace or EGL 1.5.
	srgb bool
}

type config struct {
	cfg     _EGLConfig
	samples uint8
	alpha   uint8
	types   platform.SurfaceTypes
	apis    platform.API
	visual  uintptr
	srgb    bool
}

type surface struct {
	d             *Display
	surf          _EGLSurface
	wl            *waylandWindow
	width, height uint32
}

type context struct {
	d   *Display
	ctx _EGLContext
	api platform.API
}

var (
	nilEGLDisplay _EGLDisplay
	nilEGLSurface _EGLSurface
	nilEGLContext _EGLContext
)

const (
	_EGL_ALPHA_SIZE             = 0x3021
	_EGL_CONFIG_CAVEAT          = 0x3027
	_EGL_SAMPLES                = 0x3031
	_EGL_SURFACE_TYPE           = 0x3033
	_EGL_NONE                   = 0x3038
	_EGL_NATIVE_VISUAL_ID       = 0x302e
	_EGL_RENDERABLE_TYPE        = 0x3040
	_EGL_VENDOR                 = 0x3053
	_EGL_EXTENSIONS             = 0x3055
	_EGL_CLIENT_APIS            = 0x308d
	_EGL_CONTEXT_CLIENT_VERSION = 0x3098
	_EGL_CONTEXT_MAJOR_VERSION  = 0x3098
	_EGL_CONTEXT_MINOR_VERSION  = 0x30fb
	_EGL_CONTEXT_OPENGL_DEBUG   = 0x31b0
	_EGL_GL_COLORSPACE_KHR      = 0x309d
	_EGL_GL_COLORSPACE_SRGB_KHR = 0x3089
	_EGL_OPENGL_ES_API          = 0x30a0
	_EGL_OPENGL_API             = 0x30a2
	_EGL_PBUFFER_BIT            = 0x0001
	_EGL_PIXMAP_BIT             = 0x0002
	_EGL_WINDOW_BIT             = 0x0004
	_EGL_OPENGL_ES2_BIT         = 0x0004
	_EGL_OPENGL_BIT             = 0x0008
	_EGL_OPENGL_ES3_BIT         = 0x0040
	_EGL_DONT_CARE              = -1

	_EGL_KHR_create_context = "EGL_KHR_create_context"
	_EGL_KHR_gl_colorspace  = "EGL_KHR_gl_colorspace"
)

// Open connects to the EGL display of dh. The error hooks are unused;
// EGL reports errors through eglGetError.
func Open(dh platform.DisplayHandle, wh platform.WindowHandle, hooks platform.ErrorHookRegistrar) (platform.Display, error) {
	if err := loadEGL(); err != nil {
		return nil, err
	}
	native, err := nativeDisplay(dh)
	if err != nil {
		return nil, err
	}
	disp := eglGetDisplay(native)
	if disp == nilEGLDisplay {
		return nil, fmt.Errorf("eglGetDisplay failed: %w", eglGetError())
	}
	major, minor, ok := eglInitialize(disp)
	if !ok {
		return nil, fmt.Errorf("eglInitialize failed: %w", eglGetError())
	}
	exts := strings.Split(eglQueryString(disp, _EGL_EXTENSIONS), " ")
	d := &Display{
		disp:  disp,
		major: int(major),
		minor: int(minor),
		exts:  exts,
		srgb:  major > 1 || minor >= 5 || hasExtension(exts, _EGL_KHR_gl_colorspace),
	}
	return d, nil
}

func (d *Display) Name() string {
	return "EGL"
}

// Version returns the EGL version the display was initialized with.
func (d *Display) Version() (major, minor int) {
	return d.major, d.minor
}

// Vendor returns the EGL vendor string.
func (d *Display) Vendor() string {
	return eglQueryString(d.disp, _EGL_VENDOR)
}

// ClientAPIs lists the client APIs the display supports.
func (d *Display) ClientAPIs() []string {
	return strings.Fields(eglQueryString(d.disp, _EGL_CLIENT_APIS))
}

func (d *Display) FindConfigs(t platform.ConfigTemplate) ([]platform.Config, error) {
	attribs := []_EGLint{
		_EGL_ALPHA_SIZE, _EGLint(t.AlphaSize),
		_EGL_SURFACE_TYPE, _EGLint(surfaceBits(t.SurfaceTypes)),
		_EGL_CONFIG_CAVEAT, _EGL_DONT_CARE,
		_EGL_NONE,
	}
	n, ok := eglChooseConfig(d.disp, attribs, nil)
	if !ok {
		return nil, fmt.Errorf("eglChooseConfig failed: %w", eglGetError())
	}
	if n == 0 {
		return nil, nil
	}
	cfgs := make([]_EGLConfig, n)
	n, ok = eglChooseConfig(d.disp, attribs, cfgs)
	if !ok {
		return nil, fmt.Errorf("eglChooseConfig failed: %w", eglGetError())
	}
	var res []platform.Config
	for _, cfg := range cfgs[:n] {
		c, err := d.describe(cfg)
		if err != nil {
			return nil, err
		}
		if c.apis == 0 || !t.Match(c) {
			continue
		}
		res = append(res, c)
	}
	return res, nil
}

func (d *Display) describe(cfg _EGLConfig) (*config, error) {
	attr := func(name _EGLint) (_EGLint, error) {
		v, ok := eglGetConfigAttrib(d.disp, cfg, name)
		if !ok {
			return 0, fmt.Errorf("eglGetConfigAttrib(0x%x) failed: %w", name, eglGetError())
		}
		return v, nil
	}
	var vals [5]_EGLint
	for i, name := range []_EGLint{_EGL_SAMPLES, _EGL_ALPHA_SIZE, _EGL_SURFACE_TYPE, _EGL_RENDERABLE_TYPE, _EGL_NATIVE_VISUAL_ID} {
		v, err := attr(name)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	c := &config{
		cfg:     cfg,
		samples: uint8(vals[0]),
		alpha:   uint8(vals[1]),
		visual:  uintptr(vals[4]),
		srgb:    d.srgb,
	}
	surf := vals[2]
	if surf&_EGL_WINDOW_BIT != 0 {
		c.types |= platform.SurfaceWindow
	}
	if surf&_EGL_PBUFFER_BIT != 0 {
		c.types |= platform.SurfacePbuffer
	}
	if surf&_EGL_PIXMAP_BIT != 0 {
		c.types |= platform.SurfacePixmap
	}
	rend := vals[3]
	if rend&_EGL_OPENGL_BIT != 0 {
		c.apis |= platform.APIOpenGL
	}
	if rend&(_EGL_OPENGL_ES2_BIT|_EGL_OPENGL_ES3_BIT) != 0 {
		c.apis |= platform.APIGLES
	}
	return c, nil
}

func (d *Display) CreateWindowSurface(c platform.Config, attrs platform.SurfaceAttributes) (platform.Surface, error) {
	cfg, ok := c.(*config)
	if !ok {
		return nil, errors.New("egl: foreign config")
	}
	if attrs.Width == 0 || attrs.Height == 0 {
		return nil, platform.ErrZeroSize
	}
	win, wl, err := nativeWindow(attrs.Window, attrs.Width, attrs.Height)
	if err != nil {
		return nil, err
	}
	srgb := attrs.SRGB && cfg.srgb
	var surfAttribs []_EGLint
	if srgb {
		surfAttribs = append(surfAttribs, _EGL_GL_COLORSPACE_KHR, _EGL_GL_COLORSPACE_SRGB_KHR)
	}
	surfAttribs = append(surfAttribs, _EGL_NONE)
	eglSurf := eglCreateWindowSurface(d.disp, cfg.cfg, win, surfAttribs)
	if eglSurf == nilEGLSurface && srgb {
		// Try again without sRGB.
		eglSurf = eglCreateWindowSurface(d.disp, cfg.cfg, win, []_EGLint{_EGL_NONE})
	}
	if eglSurf == nilEGLSurface {
		err := eglGetError()
		if wl != nil {
			wl.destroy()
		}
		return nil, fmt.Errorf("eglCreateWindowSurface failed (sRGB=%v): %w", attrs.SRGB, err)
	}
	return &surface{
		d:      d,
		surf:   eglSurf,
		wl:     wl,
		width:  attrs.Width,
		height: attrs.Height,
	}, nil
}

func (d *Display) CreateContext(c platform.Config, attrs platform.ContextAttributes) (platform.Context, error) {
	cfg, ok := c.(*config)
	if !ok {
		return nil, errors.New("egl: foreign config")
	}
	api := attrs.API
	if api == 0 {
		api = platform.APIOpenGL
	}
	if cfg.apis&api == 0 {
		return nil, fmt.Errorf("egl: config does not support %v", api)
	}
	if !eglBindAPI(eglAPI(api)) {
		return nil, fmt.Errorf("eglBindAPI(%v) failed: %w", api, eglGetError())
	}
	createCtx := d.major > 1 || d.minor >= 5 || hasExtension(d.exts, _EGL_KHR_create_context)
	ctxAttribs := contextAttribs(api, attrs, createCtx)
	eglCtx := eglCreateContext(d.disp, cfg.cfg, nilEGLContext, ctxAttribs)
	if eglCtx == nilEGLContext {
		return nil, fmt.Errorf("eglCreateContext(%v) failed: %w", api, eglGetError())
	}
	return &context{d: d, ctx: eglCtx, api: api}, nil
}

// GetProcAddress resolves name with eglGetProcAddress. Before EGL 1.5,
// core entry points may not resolve that way and are looked up in the
// loaded client libraries instead.
func (d *Display) GetProcAddress(name string) unsafe.Pointer {
	return eglGetProcAddress(name)
}

func (d *Display) Release() {
	if d.disp == nilEGLDisplay {
		return
	}
	eglTerminate(d.disp)
	eglReleaseThread()
	d.disp = nilEGLDisplay
}

func (s *surface) Size() (uint32, uint32) {
	return s.width, s.height
}

func (s *surface) Resize(ctx platform.Context, width, height uint32) {
	s.width, s.height = width, height
	if s.wl != nil {
		s.wl.resize(width, height)
	}
}

func (s *surface) SwapBuffers(ctx platform.Context) error {
	if s.surf == nilEGLSurface {
		return platform.ErrReleased
	}
	if !eglSwapBuffers(s.d.disp, s.surf) {
		return fmt.Errorf("eglSwapBuffers failed: %w", eglGetError())
	}
	return nil
}

func (s *surface) SetSwapInterval(ctx platform.Context, interval int) error {
	if !eglSwapInterval(s.d.disp, _EGLint(interval)) {
		return fmt.Errorf("eglSwapInterval failed: %w", eglGetError())
	}
	return nil
}

func (s *surface) Release() {
	if s.surf == nilEGLSurface {
		return
	}
	eglDestroySurface(s.d.disp, s.surf)
	s.surf = nilEGLSurface
	if s.wl != nil {
		s.wl.destroy()
		s.wl = nil
	}
}

func (c *context) API() platform.API {
	return c.api
}

func (c *context) MakeCurrent(s platform.Surface) error {
	surf, ok := s.(*surface)
	if !ok {
		return errors.New("egl: foreign surface")
	}
	// The context is made current for the bound API.
	if !eglBindAPI(eglAPI(c.api)) {
		return fmt.Errorf("eglBindAPI failed: %w", eglGetError())
	}
	if !eglMakeCurrent(c.d.disp, surf.surf, surf.surf, c.ctx) {
		return fmt.Errorf("eglMakeCurrent failed: %w", eglGetError())
	}
	return nil
}

func (c *context) ReleaseCurrent() error {
	if !eglMakeCurrent(c.d.disp, nilEGLSurface, nilEGLSurface, nilEGLContext) {
		return fmt.Errorf("eglMakeCurrent failed: %w", eglGetError())
	}
	return nil
}

func (c *context) Release() {
	if c.ctx == nilEGLContext {
		return
	}
	eglDestroyContext(c.d.disp, c.ctx)
	c.ctx = nilEGLContext
}

func (c *config) NumSamples() uint8                   { return c.samples }
func (c *config) AlphaSize() uint8                    { return c.alpha }
func (c *config) SRGBCapable() bool                   { return c.srgb }
func (c *config) SurfaceTypes() platform.SurfaceTypes { return c.types }
func (c *config) APIs() platform.API                  { return c.apis }
func (c *config) NativeVisual() uintptr               { return c.visual }

// contextAttribs builds the eglCreateContext attribute list. Without
// createCtx (EGL_KHR_create_context or EGL 1.5) only the GL ES major
// version can be requested.
func contextAttribs(api platform.API, attrs platform.ContextAttributes, createCtx bool) []_EGLint {
	var a []_EGLint
	switch api {
	case platform.APIGLES:
		major := attrs.Version.Major
		if major == 0 {
			major = 2
		}
		a = append(a, _EGL_CONTEXT_CLIENT_VERSION, _EGLint(major))
		if createCtx && attrs.Version.Major != 0 {
			a = append(a, _EGL_CONTEXT_MINOR_VERSION, _EGLint(attrs.Version.Minor))
		}
	default:
		if createCtx && attrs.Version.Major != 0 {
			a = append(a,
				_EGL_CONTEXT_MAJOR_VERSION, _EGLint(attrs.Version.Major),
				_EGL_CONTEXT_MINOR_VERSION, _EGLint(attrs.Version.Minor),
			)
		}
	}
	if attrs.Debug && createCtx {
		a = append(a, _EGL_CONTEXT_OPENGL_DEBUG, 1)
	}
	return append(a, _EGL_NONE)
}

func eglAPI(api platform.API) _EGLenum {
	if api == platform.APIGLES {
		return _EGL_OPENGL_ES_API
	}
	return _EGL_OPENGL_API
}

func surfaceBits(t platform.SurfaceTypes) int {
	var bits int
	if t&platform.SurfaceWindow != 0 {
		bits |= _EGL_WINDOW_BIT
	}
	if t&platform.SurfacePbuffer != 0 {
		bits |= _EGL_PBUFFER_BIT
	}
	if t&platform.SurfacePixmap != 0 {
		bits |= _EGL_PIXMAP_BIT
	}
	return bits
}

func hasExtension(exts []string, ext string) bool {
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
