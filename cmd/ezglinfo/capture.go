// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ezgl/ezgl/gl"
)

// readFrame reads the back buffer of the current context.
func readFrame(f *gl.Functions, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("cannot capture a %dx%d framebuffer", width, height)
	}
	img := image.NewRGBA(image.Rectangle{Max: image.Point{X: width, Y: height}})
	f.PixelStorei(gl.PACK_ALIGNMENT, 1)
	f.ReadPixels(0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, img.Pix)
	if glErr := f.GetError(); glErr != gl.NO_ERROR {
		return nil, fmt.Errorf("glReadPixels failed: %s", gl.ErrorString(glErr))
	}
	flipY(img)
	return img, nil
}

// flipY flips img in y-direction. OpenGL's origin is in the lower
// left corner.
func flipY(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]uint8, img.Stride)
	for y := 0; y < h/2; y++ {
		y1 := h - y - 1
		dest := img.PixOffset(0, y1)
		src := img.PixOffset(0, y)
		copy(row, img.Pix[dest:])
		copy(img.Pix[dest:], img.Pix[src:src+len(row)])
		copy(img.Pix[src:], row)
	}
}

func encodeImage(w io.Writer, path string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}
}

func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeImage(f, path, img); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
