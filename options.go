// SPDX-License-Identifier: Unlicense OR MIT

package ezgl

import (
	"golang.org/x/exp/slog"

	"github.com/ezgl/ezgl/platform"
)

// Option configures New.
type Option func(o *options)

type options struct {
	samples  *uint8
	hooks    platform.ErrorHookRegistrar
	debug    platform.DebugCallback
	log      *slog.Logger
	interval *int
}

// WithSamples prefers configurations with n samples per pixel. Without
// it, the configuration with the most samples is chosen.
func WithSamples(n uint8) Option {
	return func(o *options) {
		o.samples = platform.Samples(n)
	}
}

// WithErrorHooks supplies the windowing system error hook registrar.
// On X11, passing XlibErrorHooks enables GLX.
func WithErrorHooks(r platform.ErrorHookRegistrar) Option {
	return func(o *options) {
		o.hooks = r
	}
}

// WithDebugCallback replaces the default debug message callback, which
// prints to standard output.
func WithDebugCallback(cb platform.DebugCallback) Option {
	return func(o *options) {
		o.debug = cb
	}
}

// WithLogger sets the logger for acquisition diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithVSync sets the swap interval to 1 when enabled and 0 otherwise.
// Without it, the driver default applies.
func WithVSync(enable bool) Option {
	return func(o *options) {
		interval := 0
		if enable {
			interval = 1
		}
		o.interval = &interval
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.hooks == nil {
		o.hooks = platform.NoErrorHooks{}
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	return o
}
