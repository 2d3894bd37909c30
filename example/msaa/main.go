// SPDX-License-Identifier: Unlicense OR MIT

// Command msaa draws a triangle into a multisampled framebuffer and
// resolves it to the window.
package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/ezgl/ezgl"
	"github.com/ezgl/ezgl/ezglfw"
	"github.com/ezgl/ezgl/gl"
	"github.com/ezgl/ezgl/platform"
)

const samples = 4

const vertSrc = `#version 330 core

const vec2 positions[3] = vec2[3](
	vec2(0.0, 0.5),
	vec2(-0.5, -0.5),
	vec2(0.5, -0.5)
);

const vec3 colors[3] = vec3[3](
	vec3(1.0, 0.0, 0.0),
	vec3(0.0, 1.0, 0.0),
	vec3(0.0, 0.0, 1.0)
);

out vec3 vColor;

void main() {
	vColor = colors[gl_VertexID];
	gl_Position = vec4(positions[gl_VertexID], 0.0, 1.0);
}
`

const fragSrc = `#version 330 core

in vec3 vColor;
out vec4 fragColor;

void main() {
	fragColor = vec4(vColor, 1.0);
}
`

// target is a multisampled framebuffer with a texture color attachment.
type target struct {
	fbo           gl.Framebuffer
	tex           gl.Texture
	width, height int
}

func main() {
	// Required by the OpenGL threading model.
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()
	ezglfw.Hints()

	window, err := glfw.CreateWindow(800, 600, "ezgl msaa", nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer window.Destroy()

	ctx, err := ezglfw.New(window, platform.Samples(samples))
	if err != nil {
		log.Fatal(err)
	}
	defer ctx.Release()

	ctx.ClearColor(0.1, 0.2, 0.3, 1.0)
	ctx.Enable(gl.MULTISAMPLE)

	width, height := window.GetFramebufferSize()
	t := &target{fbo: ctx.CreateFramebuffer()}
	if err := t.resize(ctx, width, height); err != nil {
		log.Fatal(err)
	}
	defer t.release(ctx)

	prog, err := gl.CreateProgram(ctx.Functions, vertSrc, fragSrc, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer ctx.DeleteProgram(prog)
	ctx.UseProgram(prog)
	// Core profiles draw only with a vertex array bound.
	vao := ctx.CreateVertexArray()
	defer ctx.DeleteVertexArray(vao)
	ctx.BindVertexArray(vao)

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		ctx.Resize(uint32(width), uint32(height))
		ctx.Viewport(0, 0, width, height)
		if err := t.resize(ctx, width, height); err != nil {
			log.Print(err)
		}
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if t.width == 0 || t.height == 0 {
			return
		}
		ctx.ClearColor(float32(xpos)/float32(t.width), float32(ypos)/float32(t.height), 0.3, 1.0)
	})

	for !window.ShouldClose() {
		draw(ctx, t)
		if err := ctx.SwapBuffers(); err != nil {
			log.Fatal(err)
		}
		glfw.WaitEvents()
	}
}

func draw(ctx *ezgl.Context, t *target) {
	ctx.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	ctx.Clear(gl.COLOR_BUFFER_BIT)
	ctx.DrawArrays(gl.TRIANGLES, 0, 3)

	ctx.BindFramebuffer(gl.READ_FRAMEBUFFER, t.fbo)
	ctx.BindFramebuffer(gl.DRAW_FRAMEBUFFER, gl.Framebuffer{})
	ctx.BlitFramebuffer(0, 0, t.width, t.height, 0, 0, t.width, t.height, gl.COLOR_BUFFER_BIT, gl.NEAREST)
}

// resize replaces the color attachment with one of the new size.
func (t *target) resize(ctx *ezgl.Context, width, height int) error {
	if width == 0 || height == 0 {
		return nil
	}
	ctx.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	tex := ctx.CreateTexture()
	ctx.BindTexture(gl.TEXTURE_2D_MULTISAMPLE, tex)
	ctx.TexImage2DMultisample(gl.TEXTURE_2D_MULTISAMPLE, samples, gl.RGBA8, width, height, true)
	ctx.BindTexture(gl.TEXTURE_2D_MULTISAMPLE, gl.Texture{})
	ctx.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D_MULTISAMPLE, tex, 0)
	defer ctx.BindFramebuffer(gl.FRAMEBUFFER, gl.Framebuffer{})
	if st := ctx.CheckFramebufferStatus(gl.FRAMEBUFFER); st != gl.FRAMEBUFFER_COMPLETE {
		ctx.DeleteTexture(tex)
		return fmt.Errorf("msaa: framebuffer incomplete: 0x%x", uint(st))
	}
	if t.tex.V != 0 {
		ctx.DeleteTexture(t.tex)
	}
	t.tex = tex
	t.width, t.height = width, height
	return nil
}

func (t *target) release(ctx *ezgl.Context) {
	ctx.DeleteTexture(t.tex)
	ctx.DeleteFramebuffer(t.fbo)
}
