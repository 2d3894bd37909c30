// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"errors"
	"unsafe"
)

type fakeConfig struct {
	samples uint8
	alpha   uint8
	types   SurfaceTypes
	id      int
}

func (c *fakeConfig) NumSamples() uint8          { return c.samples }
func (c *fakeConfig) AlphaSize() uint8           { return c.alpha }
func (c *fakeConfig) SRGBCapable() bool          { return true }
func (c *fakeConfig) SurfaceTypes() SurfaceTypes { return c.types }
func (c *fakeConfig) APIs() API                  { return APIOpenGL | APIGLES }
func (c *fakeConfig) NativeVisual() uintptr      { return uintptr(c.id) }

func configsWithSamples(samples ...uint8) []Config {
	var cfgs []Config
	for i, s := range samples {
		cfgs = append(cfgs, &fakeConfig{samples: s, alpha: 8, types: SurfaceWindow, id: i})
	}
	return cfgs
}

// fakeDisplay records the calls made by Acquire.
type fakeDisplay struct {
	configs    []Config
	findErr    error
	surfaceErr error
	// contextErrs holds the result of successive CreateContext calls.
	contextErrs []error
	currentErr  error

	template  ConfigTemplate
	surfAttrs SurfaceAttributes
	ctxAttrs  []ContextAttributes
	surface   *fakeSurface
	contexts  []*fakeContext
	events    []string
	lookups   []string
}

func (d *fakeDisplay) Name() string { return "fake" }

func (d *fakeDisplay) FindConfigs(t ConfigTemplate) ([]Config, error) {
	d.template = t
	if d.findErr != nil {
		return nil, d.findErr
	}
	var matches []Config
	for _, c := range d.configs {
		if t.Match(c) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

func (d *fakeDisplay) CreateWindowSurface(c Config, attrs SurfaceAttributes) (Surface, error) {
	d.surfAttrs = attrs
	if d.surfaceErr != nil {
		return nil, d.surfaceErr
	}
	d.surface = &fakeSurface{d: d, width: attrs.Width, height: attrs.Height}
	return d.surface, nil
}

func (d *fakeDisplay) CreateContext(c Config, attrs ContextAttributes) (Context, error) {
	n := len(d.ctxAttrs)
	d.ctxAttrs = append(d.ctxAttrs, attrs)
	if n < len(d.contextErrs) && d.contextErrs[n] != nil {
		return nil, d.contextErrs[n]
	}
	api := attrs.API
	if api == 0 {
		api = APIOpenGL
	}
	ctx := &fakeContext{d: d, api: api, currentErr: d.currentErr}
	d.contexts = append(d.contexts, ctx)
	return ctx, nil
}

func (d *fakeDisplay) GetProcAddress(name string) unsafe.Pointer {
	d.lookups = append(d.lookups, name)
	return unsafe.Pointer(d)
}

func (d *fakeDisplay) Release() {
	d.events = append(d.events, "display release")
}

type fakeSurface struct {
	d             *fakeDisplay
	width, height uint32
	swapErr       error
	swaps         int
	interval      int
}

func (s *fakeSurface) Size() (uint32, uint32) { return s.width, s.height }

func (s *fakeSurface) Resize(ctx Context, width, height uint32) {
	s.width, s.height = width, height
}

func (s *fakeSurface) SwapBuffers(ctx Context) error {
	if s.swapErr != nil {
		return s.swapErr
	}
	s.swaps++
	return nil
}

func (s *fakeSurface) SetSwapInterval(ctx Context, interval int) error {
	s.interval = interval
	return nil
}

func (s *fakeSurface) Release() {
	s.d.events = append(s.d.events, "surface release")
}

type fakeContext struct {
	d          *fakeDisplay
	api        API
	current    Surface
	currentErr error
}

func (c *fakeContext) API() API { return c.api }

func (c *fakeContext) MakeCurrent(s Surface) error {
	if c.currentErr != nil {
		return c.currentErr
	}
	c.current = s
	return nil
}

func (c *fakeContext) ReleaseCurrent() error {
	c.current = nil
	c.d.events = append(c.d.events, "release current")
	return nil
}

func (c *fakeContext) Release() {
	c.d.events = append(c.d.events, "context release")
}

type fakeLoader struct {
	loadErr  error
	symbols  []string
	callback DebugCallback
}

func (l *fakeLoader) Load(getProcAddress func(name string) unsafe.Pointer) error {
	if l.loadErr != nil {
		return l.loadErr
	}
	for _, s := range []string{"glClear", "glViewport"} {
		if getProcAddress(s) == nil {
			return errors.New(s)
		}
		l.symbols = append(l.symbols, s)
	}
	return nil
}

func (l *fakeLoader) SetDebugCallback(cb DebugCallback) {
	l.callback = cb
}
