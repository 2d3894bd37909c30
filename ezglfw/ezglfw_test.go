// SPDX-License-Identifier: Unlicense OR MIT

package ezglfw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezgl/ezgl"
	"github.com/ezgl/ezgl/platform"
)

func TestNilWindowHandles(t *testing.T) {
	_, err := Window{}.DisplayHandle()
	assert.ErrorIs(t, err, platform.ErrHandleUnavailable)
	_, err = Window{}.WindowHandle()
	assert.ErrorIs(t, err, platform.ErrHandleUnavailable)

	_, _, err = platform.ResolveHandles(Window{})
	assert.True(t, platform.IsHandleError(err))
}

func TestNewNilWindow(t *testing.T) {
	var ctx *ezgl.Context
	var err error
	require.NotPanics(t, func() {
		ctx, err = New(nil, nil)
	})
	assert.Nil(t, ctx)
	assert.True(t, platform.IsHandleError(err))
	assert.ErrorIs(t, err, platform.ErrHandleUnavailable)
}

func TestOptions(t *testing.T) {
	assert.Len(t, options(nil, nil), 1)
	assert.Len(t, options(platform.Samples(4), nil), 2)
	assert.Len(t, options(platform.Samples(4), []ezgl.Option{ezgl.WithVSync(true)}), 3)
}
