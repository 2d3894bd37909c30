// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	for y := 0; y < 3; y++ {
		img.SetRGBA(0, y, color.RGBA{R: uint8(y * 100), A: 255})
		img.SetRGBA(1, y, color.RGBA{G: uint8(y * 100), A: 255})
	}
	return img
}

func TestFlipY(t *testing.T) {
	img := testImage()
	flipY(img)
	assert.Equal(t, color.RGBA{R: 200, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 100, A: 255}, img.RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(0, 2))
	assert.Equal(t, color.RGBA{G: 200, A: 255}, img.RGBAAt(1, 0))
}

func TestReadFrameEmpty(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {0, 480}, {640, 0}} {
		img, err := readFrame(nil, size[0], size[1])
		assert.Nil(t, img)
		assert.ErrorContains(t, err, "cannot capture", size)
	}
}

func TestEncodeImage(t *testing.T) {
	for _, path := range []string{"frame.png", "frame.BMP", "frame.tiff", "frame.tif"} {
		var buf bytes.Buffer
		require.NoError(t, encodeImage(&buf, path, testImage()), path)
		img, _, err := image.Decode(&buf)
		require.NoError(t, err, path)
		assert.Equal(t, image.Rect(0, 0, 2, 3), img.Bounds(), path)
		r, g, _, _ := img.At(1, 2).RGBA()
		assert.Equal(t, uint32(0), r, path)
		assert.Equal(t, uint32(200*0x101), g, path)
	}
	assert.Error(t, encodeImage(new(bytes.Buffer), "frame.jpg", testImage()))
}

func TestWriteImageUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.gif")
	assert.Error(t, writeImage(path, testImage()))
	assert.NoFileExists(t, path)
}
