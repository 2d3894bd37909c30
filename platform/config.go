// SPDX-License-Identifier: Unlicense OR MIT

package platform

import "strings"

// SurfaceTypes is a set of drawable kinds a configuration supports.
type SurfaceTypes uint8

const (
	SurfaceWindow SurfaceTypes = 1 << iota
	SurfacePbuffer
	SurfacePixmap
)

func (s SurfaceTypes) String() string {
	var parts []string
	if s&SurfaceWindow != 0 {
		parts = append(parts, "window")
	}
	if s&SurfacePbuffer != 0 {
		parts = append(parts, "pbuffer")
	}
	if s&SurfacePixmap != 0 {
		parts = append(parts, "pixmap")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Config describes one framebuffer configuration enumerated by a
// Display. Configurations are immutable.
type Config interface {
	// NumSamples is the number of samples per pixel, 0 when the
	// configuration is not multisampled.
	NumSamples() uint8
	AlphaSize() uint8
	SRGBCapable() bool
	SurfaceTypes() SurfaceTypes
	// APIs is the set of client APIs contexts can be created for.
	APIs() API
	// NativeVisual is the native visual id, or 0.
	NativeVisual() uintptr
}

// ConfigTemplate filters the configurations a Display enumerates.
type ConfigTemplate struct {
	AlphaSize    uint8
	SurfaceTypes SurfaceTypes
	// Window restricts the configurations to the ones compatible with
	// the native window. Nil allows any.
	Window WindowHandle
}

// WindowConfigTemplate returns the template used for acquisition:
// at least 8 bits of alpha, compatible with win and supporting window
// surfaces.
func WindowConfigTemplate(win WindowHandle) ConfigTemplate {
	return ConfigTemplate{
		AlphaSize:    8,
		SurfaceTypes: SurfaceWindow,
		Window:       win,
	}
}

// Match reports whether c satisfies the size and surface type
// requirements of t and, for an X11 window with a known visual, uses
// that visual. Displays fill in the visual of windows that lack one.
func (t ConfigTemplate) Match(c Config) bool {
	if c.AlphaSize() < t.AlphaSize {
		return false
	}
	if xw, ok := t.Window.(XlibWindowHandle); ok && xw.VisualID != 0 && c.NativeVisual() != xw.VisualID {
		return false
	}
	return c.SurfaceTypes()&t.SurfaceTypes == t.SurfaceTypes
}

// SelectConfig picks one configuration from configs, in enumeration
// order. With a nil prefer, the configuration with the most samples
// wins and ties keep the first seen. With a preference, the first
// configuration with exactly *prefer samples wins, falling back to the
// most samples when none matches.
func SelectConfig(configs []Config, prefer *uint8) (Config, error) {
	if len(configs) == 0 {
		return nil, ErrNoConfigs
	}
	if prefer != nil {
		for _, c := range configs {
			if c.NumSamples() == *prefer {
				return c, nil
			}
		}
	}
	best := configs[0]
	for _, c := range configs[1:] {
		if c.NumSamples() > best.NumSamples() {
			best = c
		}
	}
	return best, nil
}

// Samples returns a pointer to n, for use as a sample preference.
func Samples(n uint8) *uint8 {
	return &n
}
