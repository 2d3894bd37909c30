// SPDX-License-Identifier: Unlicense OR MIT

//go:build !((linux && !android) || freebsd || openbsd || windows)

package ezgl

import "github.com/ezgl/ezgl/platform"

// openers returns no display APIs; New reports ErrUnsupported.
func openers(hooks platform.ErrorHookRegistrar) []platform.Opener {
	return nil
}
