// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

var testWindow = XlibWindowHandle{Window: 42}

func newRequest() Request {
	var buf bytes.Buffer
	return Request{
		Window: testWindow,
		Width:  640,
		Height: 480,
		Logger: slog.New(slog.NewTextHandler(&buf, nil)),
	}
}

func TestAcquire(t *testing.T) {
	d := &fakeDisplay{configs: configsWithSamples(0, 2, 4, 8)}
	l := new(fakeLoader)
	a, err := Acquire(d, l, newRequest())
	require.NoError(t, err)
	defer a.Release()

	assert.Equal(t, WindowConfigTemplate(testWindow), d.template)
	assert.Equal(t, uint8(8), a.Config().NumSamples())
	assert.Equal(t, SurfaceAttributes{SRGB: true, Window: testWindow, Width: 640, Height: 480}, d.surfAttrs)

	// The default attempt succeeded; GLES was never requested.
	require.Len(t, d.ctxAttrs, 1)
	assert.Equal(t, DefaultContextAttributes(testWindow), d.ctxAttrs[0])
	assert.Equal(t, APIOpenGL, a.Context().API())

	// The context is current on the surface.
	require.Len(t, d.contexts, 1)
	assert.Same(t, a.Surface(), d.contexts[0].current)

	assert.Equal(t, []string{"glClear", "glViewport"}, d.lookups)
	assert.NotNil(t, l.callback)
}

func TestAcquirePreferredSamples(t *testing.T) {
	d := &fakeDisplay{configs: configsWithSamples(0, 2, 4, 8)}
	req := newRequest()
	req.Samples = Samples(4)
	a, err := Acquire(d, new(fakeLoader), req)
	require.NoError(t, err)
	defer a.Release()
	assert.Equal(t, uint8(4), a.Config().NumSamples())
}

func TestAcquireWindowVisual(t *testing.T) {
	d := &fakeDisplay{configs: configsWithSamples(0, 2, 4, 8)}
	req := newRequest()
	req.Window = XlibWindowHandle{Window: 42, VisualID: 1}
	a, err := Acquire(d, new(fakeLoader), req)
	require.NoError(t, err)
	defer a.Release()
	// Only the configuration using the window's visual is a candidate.
	assert.Equal(t, uintptr(1), a.Config().NativeVisual())
	assert.Equal(t, uint8(2), a.Config().NumSamples())
}

func TestAcquireFallsBackToGLES(t *testing.T) {
	d := &fakeDisplay{
		configs:     configsWithSamples(0),
		contextErrs: []error{errors.New("no desktop GL")},
	}
	a, err := Acquire(d, new(fakeLoader), newRequest())
	require.NoError(t, err)
	defer a.Release()

	require.Len(t, d.ctxAttrs, 2)
	assert.Equal(t, FallbackContextAttributes(testWindow), d.ctxAttrs[1])
	assert.Equal(t, APIGLES, a.Context().API())
}

func TestAcquireFallbackFailure(t *testing.T) {
	glesErr := errors.New("no GLES")
	d := &fakeDisplay{
		configs:     configsWithSamples(0),
		contextErrs: []error{errors.New("no desktop GL"), glesErr, nil},
	}
	_, err := Acquire(d, new(fakeLoader), newRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, glesErr)
	assert.True(t, IsPlatformError(err))
	// Exactly one fallback attempt.
	assert.Len(t, d.ctxAttrs, 2)
	// The surface and display created before the failure are released.
	assert.Equal(t, []string{"surface release", "display release"}, d.events)
}

func TestAcquireNoConfigs(t *testing.T) {
	d := &fakeDisplay{configs: []Config{&fakeConfig{alpha: 0, types: SurfaceWindow}}}
	var a *Acquisition
	var err error
	require.NotPanics(t, func() {
		a, err = Acquire(d, new(fakeLoader), newRequest())
	})
	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrNoConfigs)
	assert.True(t, IsPlatformError(err))
	assert.Equal(t, []string{"display release"}, d.events)
}

func TestAcquireErrors(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name    string
		display *fakeDisplay
		loader  *fakeLoader
		op      string
	}{
		{"find", &fakeDisplay{findErr: boom}, new(fakeLoader), "find configs"},
		{"surface", &fakeDisplay{configs: configsWithSamples(0), surfaceErr: boom}, new(fakeLoader), "create surface"},
		{"current", &fakeDisplay{configs: configsWithSamples(0), currentErr: boom}, new(fakeLoader), "make current"},
		{"load", &fakeDisplay{configs: configsWithSamples(0)}, &fakeLoader{loadErr: boom}, "load entry points"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Acquire(tt.display, tt.loader, newRequest())
			var perr *Error
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, KindPlatform, perr.Kind)
			assert.Equal(t, tt.op, perr.Op)
			assert.ErrorIs(t, err, boom)
			assert.Contains(t, tt.display.events, "display release")
		})
	}
}

func TestAcquireZeroSize(t *testing.T) {
	d := &fakeDisplay{configs: configsWithSamples(0)}
	req := newRequest()
	req.Height = 0
	_, err := Acquire(d, new(fakeLoader), req)
	assert.ErrorIs(t, err, ErrZeroSize)
	assert.Nil(t, d.surface)
}

func TestAcquireDebugCallback(t *testing.T) {
	var got []DebugMessage
	req := newRequest()
	req.DebugCallback = func(m DebugMessage) { got = append(got, m) }
	l := new(fakeLoader)
	a, err := Acquire(&fakeDisplay{configs: configsWithSamples(0)}, l, req)
	require.NoError(t, err)
	defer a.Release()

	l.callback(DebugMessage{Text: "hello"})
	require.Len(t, got, 1)
	assert.Equal(t, "hello", got[0].Text)
}

func TestAcquireSwapInterval(t *testing.T) {
	d := &fakeDisplay{configs: configsWithSamples(0)}
	req := newRequest()
	interval := 1
	req.SwapInterval = &interval
	a, err := Acquire(d, new(fakeLoader), req)
	require.NoError(t, err)
	defer a.Release()
	assert.Equal(t, 1, d.surface.interval)
}

func TestResize(t *testing.T) {
	d := &fakeDisplay{configs: configsWithSamples(0)}
	a, err := Acquire(d, new(fakeLoader), newRequest())
	require.NoError(t, err)
	defer a.Release()

	sizes := [][2]uint32{{1, 1}, {800, 600}, {4096, 16}}
	for _, sz := range sizes {
		a.Resize(sz[0], sz[1])
		w, h := a.Surface().Size()
		assert.Equal(t, sz, [2]uint32{w, h})
	}

	a.Resize(0, 100)
	a.Resize(100, 0)
	a.Resize(0, 0)
	w, h := a.Surface().Size()
	assert.Equal(t, [2]uint32{4096, 16}, [2]uint32{w, h})
}

func TestSwapBuffers(t *testing.T) {
	d := &fakeDisplay{configs: configsWithSamples(0)}
	a, err := Acquire(d, new(fakeLoader), newRequest())
	require.NoError(t, err)

	require.NoError(t, a.SwapBuffers())
	assert.Equal(t, 1, d.surface.swaps)

	lost := errors.New("context lost")
	d.surface.swapErr = lost
	err = a.SwapBuffers()
	assert.ErrorIs(t, err, lost)
	assert.True(t, IsPlatformError(err))

	a.Release()
	assert.ErrorIs(t, a.SwapBuffers(), ErrReleased)
}

func TestRelease(t *testing.T) {
	d := &fakeDisplay{configs: configsWithSamples(0)}
	a, err := Acquire(d, new(fakeLoader), newRequest())
	require.NoError(t, err)

	a.Release()
	a.Release()
	assert.Equal(t, []string{"release current", "surface release", "context release", "display release"}, d.events)
	assert.Nil(t, a.Surface())
	assert.Nil(t, a.Context())
	assert.Nil(t, a.Display())

	// Resizing a released acquisition is ignored.
	a.Resize(10, 10)
}

func TestOpenDisplay(t *testing.T) {
	first := errors.New("no GLX")
	var gotHooks ErrorHookRegistrar
	d := &fakeDisplay{}
	openers := []Opener{
		{Name: "GLX", Open: func(DisplayHandle, WindowHandle, ErrorHookRegistrar) (Display, error) {
			return nil, first
		}},
		{Name: "EGL", Open: func(_ DisplayHandle, _ WindowHandle, hooks ErrorHookRegistrar) (Display, error) {
			gotHooks = hooks
			return d, nil
		}},
	}
	got, err := OpenDisplay(XlibDisplayHandle{}, testWindow, nil, openers...)
	require.NoError(t, err)
	assert.Same(t, d, got)
	assert.Equal(t, NoErrorHooks{}, gotHooks)

	_, err = OpenDisplay(XlibDisplayHandle{}, testWindow, nil, openers[0])
	assert.ErrorIs(t, err, first)
	assert.Contains(t, err.Error(), "open GLX")

	_, err = OpenDisplay(XlibDisplayHandle{}, testWindow, nil)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestResolveHandles(t *testing.T) {
	dh, wh, err := ResolveHandles(Handles{Display: XlibDisplayHandle{}, Window: testWindow})
	require.NoError(t, err)
	assert.Equal(t, XlibDisplayHandle{}, dh)
	assert.Equal(t, testWindow, wh)

	_, _, err = ResolveHandles(Handles{Display: XlibDisplayHandle{}})
	assert.True(t, IsHandleError(err))
	assert.False(t, IsPlatformError(err))
	assert.ErrorIs(t, err, ErrHandleUnavailable)
}

func TestAcquireHandleErrors(t *testing.T) {
	for _, cause := range []error{ErrHandleUnavailable, ErrHandleNotSupported} {
		d := &fakeDisplay{configs: configsWithSamples(0), surfaceErr: fmt.Errorf("window: %w", cause)}
		_, err := Acquire(d, new(fakeLoader), newRequest())
		var perr *Error
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, KindHandle, perr.Kind)
		assert.Equal(t, "create surface", perr.Op)
		assert.True(t, IsHandleError(err))
		assert.False(t, IsPlatformError(err))
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, []string{"display release"}, d.events)
	}
}

func TestOpenDisplayHandleErrors(t *testing.T) {
	platformErr := func(DisplayHandle, WindowHandle, ErrorHookRegistrar) (Display, error) {
		return nil, errors.New("no GLX")
	}
	handleErr := func(DisplayHandle, WindowHandle, ErrorHookRegistrar) (Display, error) {
		return nil, ErrHandleUnavailable
	}

	_, err := OpenDisplay(WaylandDisplayHandle{}, WaylandWindowHandle{}, nil, Opener{Name: "EGL", Open: handleErr})
	assert.True(t, IsHandleError(err))
	assert.False(t, IsPlatformError(err))
	assert.ErrorIs(t, err, ErrHandleUnavailable)

	_, err = OpenDisplay(XlibDisplayHandle{}, testWindow, nil,
		Opener{Name: "GLX", Open: platformErr}, Opener{Name: "EGL", Open: handleErr})
	assert.True(t, IsHandleError(err))
	assert.Contains(t, err.Error(), "no GLX")

	_, err = OpenDisplay(XlibDisplayHandle{}, testWindow, nil, Opener{Name: "GLX", Open: platformErr})
	assert.True(t, IsPlatformError(err))
	assert.False(t, IsHandleError(err))
}
