// SPDX-License-Identifier: Unlicense OR MIT

package ezgl

import (
	"github.com/ezgl/ezgl/internal/egl"
	"github.com/ezgl/ezgl/platform"
)

func openers(hooks platform.ErrorHookRegistrar) []platform.Opener {
	return []platform.Opener{egl.Opener}
}
