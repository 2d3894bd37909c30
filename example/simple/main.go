// SPDX-License-Identifier: Unlicense OR MIT

// Command simple clears a window to a color that follows the cursor.
package main

import (
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/ezgl/ezgl"
	"github.com/ezgl/ezgl/ezglfw"
	"github.com/ezgl/ezgl/gl"
)

func main() {
	// Required by the OpenGL threading model.
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()
	ezglfw.Hints()

	window, err := glfw.CreateWindow(800, 600, "ezgl", nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer window.Destroy()

	ctx, err := ezglfw.New(window, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer ctx.Release()

	ctx.ClearColor(0.1, 0.2, 0.3, 1.0)
	registerCallbacks(window, ctx)
	for !window.ShouldClose() {
		ctx.Clear(gl.COLOR_BUFFER_BIT)
		if err := ctx.SwapBuffers(); err != nil {
			log.Fatal(err)
		}
		glfw.WaitEvents()
	}
}

func registerCallbacks(window *glfw.Window, ctx *ezgl.Context) {
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		ctx.Resize(uint32(width), uint32(height))
		ctx.Viewport(0, 0, width, height)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		width, height := w.GetSize()
		if width == 0 || height == 0 {
			return
		}
		ctx.ClearColor(float32(xpos)/float32(width), float32(ypos)/float32(height), 0.3, 1.0)
	})
}
