// SPDX-License-Identifier: Unlicense OR MIT

/*
Package ezgl creates an OpenGL context for an existing window.

New chooses a display API for the window handles, selects the
configuration with the most samples per pixel (or the preferred count
given by WithSamples), creates a window surface and a desktop OpenGL
context, falling back to OpenGL ES, makes it current and loads the GL
entry points:

	runtime.LockOSThread()
	ctx, err := ezgl.New(win, width, height)
	if err != nil {
		log.Fatal(err)
	}
	defer ctx.Release()
	ctx.ClearColor(0.1, 0.2, 0.3, 1.0)
	ctx.Clear(gl.COLOR_BUFFER_BIT)
	ctx.SwapBuffers()

On X11, EGL is used unless an error hook registrar is supplied with
WithErrorHooks(ezgl.XlibErrorHooks()), in which case GLX is tried first.
Windows uses EGL through ANGLE's libEGL.dll.

Package ezglfw acquires contexts for GLFW windows.
*/
package ezgl
