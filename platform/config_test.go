// SPDX-License-Identifier: Unlicense OR MIT

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectConfig(t *testing.T) {
	tests := []struct {
		name    string
		samples []uint8
		prefer  *uint8
		want    int
	}{
		{"max without preference", []uint8{0, 2, 4, 8}, nil, 3},
		{"exact preference", []uint8{0, 2, 4, 8}, Samples(4), 2},
		{"missing preference falls back to max", []uint8{0, 2, 4, 8}, Samples(16), 3},
		{"preference of zero", []uint8{4, 0, 8}, Samples(0), 1},
		{"first max wins ties", []uint8{4, 8, 2, 8}, nil, 1},
		{"first exact match wins", []uint8{4, 2, 4}, Samples(4), 0},
		{"single config", []uint8{0}, Samples(8), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgs := configsWithSamples(tt.samples...)
			got, err := SelectConfig(cfgs, tt.prefer)
			require.NoError(t, err)
			assert.Same(t, cfgs[tt.want], got)
		})
	}
}

func TestSelectConfigEmpty(t *testing.T) {
	_, err := SelectConfig(nil, nil)
	assert.ErrorIs(t, err, ErrNoConfigs)
	_, err = SelectConfig(nil, Samples(4))
	assert.ErrorIs(t, err, ErrNoConfigs)
}

func TestConfigTemplateMatch(t *testing.T) {
	tmpl := WindowConfigTemplate(XlibWindowHandle{Window: 1})
	assert.Equal(t, uint8(8), tmpl.AlphaSize)
	assert.Equal(t, SurfaceWindow, tmpl.SurfaceTypes)

	assert.True(t, tmpl.Match(&fakeConfig{alpha: 8, types: SurfaceWindow | SurfacePbuffer}))
	assert.False(t, tmpl.Match(&fakeConfig{alpha: 0, types: SurfaceWindow}))
	assert.False(t, tmpl.Match(&fakeConfig{alpha: 8, types: SurfacePbuffer}))
}

func TestConfigTemplateMatchVisual(t *testing.T) {
	tmpl := WindowConfigTemplate(XlibWindowHandle{Window: 1, VisualID: 0x21})
	assert.True(t, tmpl.Match(&fakeConfig{alpha: 8, types: SurfaceWindow, id: 0x21}))
	assert.False(t, tmpl.Match(&fakeConfig{alpha: 8, types: SurfaceWindow, id: 0x22}))

	// An unknown visual matches any configuration.
	tmpl = WindowConfigTemplate(XlibWindowHandle{Window: 1})
	assert.True(t, tmpl.Match(&fakeConfig{alpha: 8, types: SurfaceWindow, id: 0x22}))
	tmpl = WindowConfigTemplate(WaylandWindowHandle{})
	assert.True(t, tmpl.Match(&fakeConfig{alpha: 8, types: SurfaceWindow, id: 0x22}))
}

func TestSurfaceTypesString(t *testing.T) {
	assert.Equal(t, "none", SurfaceTypes(0).String())
	assert.Equal(t, "window|pixmap", (SurfaceWindow | SurfacePixmap).String())
}
