// SPDX-License-Identifier: Unlicense OR MIT

package platform

import "unsafe"

// ErrorHook sees native windowing system errors before the host does.
// For Xlib, display is the *Display and event the *XErrorEvent. The
// hook returns true when it handled the error.
type ErrorHook func(display, event unsafe.Pointer) bool

// ErrorHookRegistrar installs error hooks. Only the Xlib windowing
// system has one; elsewhere NoErrorHooks is used.
type ErrorHookRegistrar interface {
	// RegisterErrorHook adds hook and returns a function that removes
	// it again.
	RegisterErrorHook(hook ErrorHook) (unregister func())
	// Enabled reports whether registered hooks will ever run.
	Enabled() bool
}

// NoErrorHooks is the registrar for platforms without native error
// hooks. Registered hooks are dropped.
type NoErrorHooks struct{}

func (NoErrorHooks) RegisterErrorHook(ErrorHook) func() { return func() {} }

func (NoErrorHooks) Enabled() bool { return false }
