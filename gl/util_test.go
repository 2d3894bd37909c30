// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGLVersion(t *testing.T) {
	tests := []struct {
		in   string
		want [2]int
	}{
		{"4.6 (Core Profile) Mesa 23.1.4", [2]int{4, 6}},
		{"3.3.0 NVIDIA 535.104.05", [2]int{3, 3}},
		{"OpenGL ES 3.2 Mesa 23.1.4", [2]int{3, 2}},
		{"OpenGL ES 2.0 (ANGLE 2.1.0)", [2]int{2, 0}},
	}
	for _, tt := range tests {
		got, err := ParseGLVersion(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	_, err := ParseGLVersion("garbage")
	assert.Error(t, err)
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "INVALID_OPERATION", ErrorString(INVALID_OPERATION))
	assert.Equal(t, "NO_ERROR", ErrorString(NO_ERROR))
	assert.Equal(t, "0x1234", ErrorString(0x1234))
}

func TestObjectValid(t *testing.T) {
	assert.False(t, Program{}.Valid())
	assert.True(t, Program{V: 3}.Valid())
	assert.False(t, Uniform{V: -1}.Valid())
	assert.True(t, Uniform{V: 0}.Valid())
	assert.False(t, Framebuffer{}.Valid())
}
