// SPDX-License-Identifier: Unlicense OR MIT

//go:build (linux && !android) || freebsd || openbsd

package ezgl

import (
	"github.com/ezgl/ezgl/internal/egl"
	"github.com/ezgl/ezgl/platform"
)

// openers prefers GLX when the caller supplies error hooks; creating
// GLX contexts without them may terminate the process.
func openers(hooks platform.ErrorHookRegistrar) []platform.Opener {
	if hooks.Enabled() {
		return append(x11Openers(), egl.Opener)
	}
	return []platform.Opener{egl.Opener}
}
