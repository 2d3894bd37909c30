// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	gogl "github.com/go-gl/gl/all-core/gl"

	"github.com/ezgl/ezgl/platform"
)

// Functions is the GL entry-point table. The underlying function
// pointers are process global; a Functions is only valid while the
// context it was loaded for is current.
type Functions struct {
	loaded bool
	es     bool
	ver    [2]int
	exts   []string
	// debug reports whether glDebugMessageCallback is available.
	debug bool
}

// Load resolves the entry points with getProcAddress. The context must
// be current.
func (f *Functions) Load(getProcAddress func(name string) unsafe.Pointer) error {
	if getProcAddress == nil {
		return errors.New("gl: nil proc address function")
	}
	if err := gogl.InitWithProcAddrFunc(getProcAddress); err != nil {
		return fmt.Errorf("gl: failed to load entry points: %w", err)
	}
	glVer := f.GetString(VERSION)
	ver, err := ParseGLVersion(glVer)
	if err != nil {
		return err
	}
	f.ver = ver
	f.es = strings.HasPrefix(glVer, "OpenGL ES")
	f.exts = f.loadExtensions()
	switch {
	case f.es:
		f.debug = ver[0] > 3 || (ver[0] == 3 && ver[1] >= 2)
	default:
		f.debug = ver[0] > 4 || (ver[0] == 4 && ver[1] >= 3) || f.HasExtension("GL_KHR_debug")
	}
	f.loaded = true
	return nil
}

func (f *Functions) loadExtensions() []string {
	if f.ver[0] >= 3 {
		n := f.GetInteger(NUM_EXTENSIONS)
		exts := make([]string, 0, n)
		for i := 0; i < n; i++ {
			exts = append(exts, gogl.GoStr(gogl.GetStringi(EXTENSIONS, uint32(i))))
		}
		return exts
	}
	return strings.Fields(f.GetString(EXTENSIONS))
}

// Version returns the major and minor GL version of the context.
func (f *Functions) Version() (major, minor int) {
	return f.ver[0], f.ver[1]
}

// ES reports whether the context is an OpenGL ES context.
func (f *Functions) ES() bool {
	return f.es
}

// Extensions lists the extensions of the context.
func (f *Functions) Extensions() []string {
	return f.exts
}

func (f *Functions) HasExtension(ext string) bool {
	for _, e := range f.exts {
		if e == ext {
			return true
		}
	}
	return false
}

// SetDebugCallback installs cb as the debug message callback. It does
// nothing if the context lacks debug output support. The caller enables
// DEBUG_OUTPUT.
func (f *Functions) SetDebugCallback(cb platform.DebugCallback) {
	if !f.loaded || !f.debug || cb == nil {
		return
	}
	gogl.DebugMessageCallback(func(source, typ, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		cb(platform.DebugMessage{
			Source:   platform.DebugSource(source),
			Type:     platform.DebugType(typ),
			ID:       id,
			Severity: platform.DebugSeverity(severity),
			Text:     message,
		})
	}, nil)
}

// DebugSupported reports whether SetDebugCallback has an effect.
func (f *Functions) DebugSupported() bool {
	return f.debug
}

func (f *Functions) ActiveTexture(t Enum) {
	gogl.ActiveTexture(uint32(t))
}

func (f *Functions) AttachShader(p Program, s Shader) {
	gogl.AttachShader(uint32(p.V), uint32(s.V))
}

func (f *Functions) BindAttribLocation(p Program, a Attrib, name string) {
	gogl.BindAttribLocation(uint32(p.V), uint32(a), gogl.Str(name+"\x00"))
}

func (f *Functions) BindBuffer(target Enum, b Buffer) {
	gogl.BindBuffer(uint32(target), uint32(b.V))
}

func (f *Functions) BindFramebuffer(target Enum, fb Framebuffer) {
	gogl.BindFramebuffer(uint32(target), uint32(fb.V))
}

func (f *Functions) BindRenderbuffer(target Enum, rb Renderbuffer) {
	gogl.BindRenderbuffer(uint32(target), uint32(rb.V))
}

func (f *Functions) BindTexture(target Enum, t Texture) {
	gogl.BindTexture(uint32(target), uint32(t.V))
}

func (f *Functions) BindVertexArray(a VertexArray) {
	gogl.BindVertexArray(uint32(a.V))
}

func (f *Functions) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask Enum, filter Enum) {
	gogl.BlitFramebuffer(int32(sx0), int32(sy0), int32(sx1), int32(sy1), int32(dx0), int32(dy0), int32(dx1), int32(dy1), uint32(mask), uint32(filter))
}

func (f *Functions) BufferData(target Enum, data []byte, usage Enum) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = gogl.Ptr(&data[0])
	}
	gogl.BufferData(uint32(target), len(data), p, uint32(usage))
}

func (f *Functions) CheckFramebufferStatus(target Enum) Enum {
	return Enum(gogl.CheckFramebufferStatus(uint32(target)))
}

func (f *Functions) Clear(mask Enum) {
	gogl.Clear(uint32(mask))
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	gogl.ClearColor(red, green, blue, alpha)
}

func (f *Functions) CompileShader(s Shader) {
	gogl.CompileShader(uint32(s.V))
}

func (f *Functions) CreateBuffer() Buffer {
	var b uint32
	gogl.GenBuffers(1, &b)
	return Buffer{uint(b)}
}

func (f *Functions) CreateFramebuffer() Framebuffer {
	var fb uint32
	gogl.GenFramebuffers(1, &fb)
	return Framebuffer{uint(fb)}
}

func (f *Functions) CreateProgram() Program {
	return Program{uint(gogl.CreateProgram())}
}

func (f *Functions) CreateRenderbuffer() Renderbuffer {
	var rb uint32
	gogl.GenRenderbuffers(1, &rb)
	return Renderbuffer{uint(rb)}
}

func (f *Functions) CreateShader(ty Enum) Shader {
	return Shader{uint(gogl.CreateShader(uint32(ty)))}
}

func (f *Functions) CreateTexture() Texture {
	var t uint32
	gogl.GenTextures(1, &t)
	return Texture{uint(t)}
}

func (f *Functions) CreateVertexArray() VertexArray {
	var a uint32
	gogl.GenVertexArrays(1, &a)
	return VertexArray{uint(a)}
}

func (f *Functions) DeleteBuffer(b Buffer) {
	v := uint32(b.V)
	gogl.DeleteBuffers(1, &v)
}

func (f *Functions) DeleteFramebuffer(fb Framebuffer) {
	v := uint32(fb.V)
	gogl.DeleteFramebuffers(1, &v)
}

func (f *Functions) DeleteProgram(p Program) {
	gogl.DeleteProgram(uint32(p.V))
}

func (f *Functions) DeleteRenderbuffer(rb Renderbuffer) {
	v := uint32(rb.V)
	gogl.DeleteRenderbuffers(1, &v)
}

func (f *Functions) DeleteShader(s Shader) {
	gogl.DeleteShader(uint32(s.V))
}

func (f *Functions) DeleteTexture(t Texture) {
	v := uint32(t.V)
	gogl.DeleteTextures(1, &v)
}

func (f *Functions) DeleteVertexArray(a VertexArray) {
	v := uint32(a.V)
	gogl.DeleteVertexArrays(1, &v)
}

func (f *Functions) Disable(cap Enum) {
	gogl.Disable(uint32(cap))
}

func (f *Functions) DrawArrays(mode Enum, first, count int) {
	gogl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (f *Functions) Enable(cap Enum) {
	gogl.Enable(uint32(cap))
}

func (f *Functions) EnableVertexAttribArray(a Attrib) {
	gogl.EnableVertexAttribArray(uint32(a))
}

func (f *Functions) Finish() {
	gogl.Finish()
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, renderbuffertarget Enum, rb Renderbuffer) {
	gogl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(renderbuffertarget), uint32(rb.V))
}

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int) {
	gogl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), uint32(t.V), int32(level))
}

func (f *Functions) GetError() Enum {
	return Enum(gogl.GetError())
}

func (f *Functions) GetInteger(pname Enum) int {
	var v int32
	gogl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetProgrami(p Program, pname Enum) int {
	var v int32
	gogl.GetProgramiv(uint32(p.V), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetProgramInfoLog(p Program) string {
	n := f.GetProgrami(p, INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	gogl.GetProgramInfoLog(uint32(p.V), int32(n), nil, &buf[0])
	return string(buf[:len(buf)-1])
}

func (f *Functions) GetShaderi(s Shader, pname Enum) int {
	var v int32
	gogl.GetShaderiv(uint32(s.V), uint32(pname), &v)
	return int(v)
}

func (f *Functions) GetShaderInfoLog(s Shader) string {
	n := f.GetShaderi(s, INFO_LOG_LENGTH)
	if n == 0 {
		return ""
	}
	buf := make([]byte, n)
	gogl.GetShaderInfoLog(uint32(s.V), int32(n), nil, &buf[0])
	return string(buf[:len(buf)-1])
}

func (f *Functions) GetString(pname Enum) string {
	return gogl.GoStr(gogl.GetString(uint32(pname)))
}

func (f *Functions) GetUniformLocation(p Program, name string) Uniform {
	return Uniform{int(gogl.GetUniformLocation(uint32(p.V), gogl.Str(name+"\x00")))}
}

func (f *Functions) LinkProgram(p Program) {
	gogl.LinkProgram(uint32(p.V))
}

func (f *Functions) PixelStorei(pname Enum, param int) {
	gogl.PixelStorei(uint32(pname), int32(param))
}

// ReadPixels reads RGBA pixels into data, which must hold
// width*height*4 bytes.
// ReadPixels does nothing if data is empty.
func (f *Functions) ReadPixels(x, y, width, height int, format, ty Enum, data []byte) {
	if len(data) == 0 {
		return
	}
	gogl.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), gogl.Ptr(&data[0]))
}

func (f *Functions) RenderbufferStorageMultisample(target Enum, samples int, format Enum, width, height int) {
	gogl.RenderbufferStorageMultisample(uint32(target), int32(samples), uint32(format), int32(width), int32(height))
}

func (f *Functions) ShaderSource(s Shader, src string) {
	csrc, free := gogl.Strs(src + "\x00")
	defer free()
	gogl.ShaderSource(uint32(s.V), 1, csrc, nil)
}

func (f *Functions) TexImage2DMultisample(target Enum, samples int, format Enum, width, height int, fixedLocations bool) {
	gogl.TexImage2DMultisample(uint32(target), int32(samples), uint32(format), int32(width), int32(height), fixedLocations)
}

func (f *Functions) Uniform1f(dst Uniform, v float32) {
	gogl.Uniform1f(int32(dst.V), v)
}

func (f *Functions) Uniform2f(dst Uniform, v0, v1 float32) {
	gogl.Uniform2f(int32(dst.V), v0, v1)
}

func (f *Functions) UseProgram(p Program) {
	gogl.UseProgram(uint32(p.V))
}

func (f *Functions) VertexAttribPointer(dst Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	gogl.VertexAttribPointer(uint32(dst), int32(size), uint32(ty), normalized, int32(stride), gogl.PtrOffset(offset))
}

func (f *Functions) Viewport(x, y, width, height int) {
	gogl.Viewport(int32(x), int32(y), int32(width), int32(height))
}
