// SPDX-License-Identifier: Unlicense OR MIT

//go:build ((linux && !android) || freebsd || openbsd) && !nox11

package glx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezgl/ezgl/platform"
)

func TestErrorTrap(t *testing.T) {
	var trap errorTrap
	badDrawable := &Error{Code: 9, Request: 152, Minor: 11}

	// Errors outside begin/end are left to other handlers.
	assert.False(t, trap.record(badDrawable))

	trap.begin()
	assert.True(t, trap.record(badDrawable))
	assert.True(t, trap.record(&Error{Code: 8}))
	err := trap.end()
	var xerr *Error
	require.ErrorAs(t, err, &xerr)
	assert.Same(t, badDrawable, xerr)
	assert.False(t, trap.record(badDrawable))

	trap.begin()
	assert.NoError(t, trap.end())
}

func TestTrapErrorForeignDisplay(t *testing.T) {
	d := new(Display)
	d.trap.begin()
	assert.False(t, d.trapError(nil, nil))
	assert.NoError(t, d.trap.end())
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "X BadDrawable (request 152.11)", (&Error{Code: 9, Request: 152, Minor: 11}).Error())
	assert.Equal(t, "X error 170 (request 152.5)", (&Error{Code: 170, Request: 152, Minor: 5}).Error())
}

func ints[T ~int32](a []T) []int {
	var res []int
	for _, v := range a {
		res = append(res, int(v))
	}
	return res
}

func TestContextAttribs(t *testing.T) {
	tests := []struct {
		name  string
		api   platform.API
		attrs platform.ContextAttributes
		want  []int
	}{
		{"default", platform.APIOpenGL, platform.ContextAttributes{}, []int{0}},
		{"gl version", platform.APIOpenGL, platform.ContextAttributes{Version: platform.Version{Major: 3, Minor: 3}},
			[]int{_GLX_CONTEXT_MAJOR_VERSION_ARB, 3, _GLX_CONTEXT_MINOR_VERSION_ARB, 3, 0}},
		{"gles default", platform.APIGLES, platform.ContextAttributes{API: platform.APIGLES},
			[]int{_GLX_CONTEXT_PROFILE_MASK_ARB, _GLX_CONTEXT_ES2_PROFILE_BIT_EXT,
				_GLX_CONTEXT_MAJOR_VERSION_ARB, 2, _GLX_CONTEXT_MINOR_VERSION_ARB, 0, 0}},
		{"gles 3.1", platform.APIGLES, platform.ContextAttributes{API: platform.APIGLES, Version: platform.Version{Major: 3, Minor: 1}},
			[]int{_GLX_CONTEXT_PROFILE_MASK_ARB, _GLX_CONTEXT_ES2_PROFILE_BIT_EXT,
				_GLX_CONTEXT_MAJOR_VERSION_ARB, 3, _GLX_CONTEXT_MINOR_VERSION_ARB, 1, 0}},
		{"debug", platform.APIOpenGL, platform.ContextAttributes{Debug: true},
			[]int{_GLX_CONTEXT_FLAGS_ARB, _GLX_CONTEXT_DEBUG_BIT_ARB, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ints(contextAttribs(tt.api, tt.attrs)))
		})
	}
}
