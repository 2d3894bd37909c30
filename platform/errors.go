// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind uint8

const (
	// KindPlatform covers failures of the windowing system or driver:
	// display, surface and context creation, make-current and swap.
	KindPlatform Kind = iota
	// KindHandle covers failures to obtain native display or window
	// handles from the host window.
	KindHandle
)

func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindHandle:
		return "handle"
	default:
		return "unknown"
	}
}

// Error is the error type returned by acquisition and by the
// operations on an acquired context.
type Error struct {
	Kind Kind
	// Op names the failed operation, for example "create context".
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	// ErrNoConfigs is reported when a display enumerates no
	// configuration matching the template.
	ErrNoConfigs = errors.New("no matching configurations")
	// ErrZeroSize is reported when a surface is requested with a zero
	// width or height.
	ErrZeroSize = errors.New("surface size must be non-zero")
	// ErrUnsupported is reported when no display API is available for
	// the handles or the operating system.
	ErrUnsupported = errors.New("no supported display API")
	// ErrReleased is reported by operations on a released context.
	ErrReleased = errors.New("context released")
	// ErrContextLost matches driver errors after which the context
	// must be recreated, such as EGL_CONTEXT_LOST after a power
	// management event.
	ErrContextLost = errors.New("context lost")
)

// PlatformError wraps err as an Error for op. Errors matching
// ErrHandleUnavailable or ErrHandleNotSupported are KindHandle, all
// others KindPlatform. It returns nil if err is nil and err itself if
// it already is an Error.
func PlatformError(op string, err error) error {
	if err == nil {
		return nil
	}
	var perr *Error
	if errors.As(err, &perr) {
		return err
	}
	return &Error{Kind: kindOf(err), Op: op, Err: err}
}

func kindOf(err error) Kind {
	if errors.Is(err, ErrHandleUnavailable) || errors.Is(err, ErrHandleNotSupported) {
		return KindHandle
	}
	return KindPlatform
}

func handleError(op string, err error) error {
	return &Error{Kind: KindHandle, Op: op, Err: err}
}

// IsHandleError reports whether err is a KindHandle Error.
func IsHandleError(err error) bool {
	var perr *Error
	return errors.As(err, &perr) && perr.Kind == KindHandle
}

// IsPlatformError reports whether err is a KindPlatform Error.
func IsPlatformError(err error) bool {
	var perr *Error
	return errors.As(err, &perr) && perr.Kind == KindPlatform
}
