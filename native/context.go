package native

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/seqsense/glutil"
)

type Shader uint32
type Program uint32

// Context implements glutil.Context on the OpenGL context of a GLFW window.
// It must be current on the calling thread.
type Context struct {
	window *glfw.Window
	major  int
}

func (c *Context) Window() *glfw.Window {
	return c.window
}

// Destroy destroys the window and its context.
func (c *Context) Destroy() {
	c.window.Destroy()
}

// GetExtension returns the GL extension name backing a WebGL extension.
func (c *Context) GetExtension(name string) (glutil.Extension, bool) {
	n, ok := lookupExtension(name, c.major, glfw.ExtensionSupported)
	if !ok {
		return nil, false
	}
	return n, true
}

func (c *Context) Enable(cp glutil.Capability) {
	switch cp {
	case glutil.Blend:
		gl.Enable(gl.BLEND)
	}
}

func (c *Context) BlendEquation(eq glutil.BlendEquation) {
	switch eq {
	case glutil.FuncAdd:
		gl.BlendEquation(gl.FUNC_ADD)
	}
}

func blendFactor(f glutil.BlendFactor) uint32 {
	switch f {
	case glutil.SrcAlpha:
		return gl.SRC_ALPHA
	case glutil.OneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	}
	return gl.ONE
}

func (c *Context) BlendFunc(src, dst glutil.BlendFactor) {
	gl.BlendFunc(blendFactor(src), blendFactor(dst))
}

func (c *Context) CreateShader(t glutil.ShaderType) glutil.Shader {
	switch t {
	case glutil.FragmentShader:
		return Shader(gl.CreateShader(gl.FRAGMENT_SHADER))
	default:
		return Shader(gl.CreateShader(gl.VERTEX_SHADER))
	}
}

func (c *Context) ShaderSource(s glutil.Shader, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(s.(Shader)), 1, csources, nil)
	free()
}

func (c *Context) CompileShader(s glutil.Shader) {
	gl.CompileShader(uint32(s.(Shader)))
}

func (c *Context) ShaderCompiled(s glutil.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s.(Shader)), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ShaderInfoLog(s glutil.Shader) string {
	var logLength int32
	gl.GetShaderiv(uint32(s.(Shader)), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(uint32(s.(Shader)), logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) CreateProgram() glutil.Program {
	return Program(gl.CreateProgram())
}

func (c *Context) AttachShader(p glutil.Program, s glutil.Shader) {
	gl.AttachShader(uint32(p.(Program)), uint32(s.(Shader)))
}

func (c *Context) LinkProgram(p glutil.Program) {
	gl.LinkProgram(uint32(p.(Program)))
}

func (c *Context) ProgramLinked(p glutil.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p.(Program)), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ProgramInfoLog(p glutil.Program) string {
	var logLength int32
	gl.GetProgramiv(uint32(p.(Program)), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(uint32(p.(Program)), logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// UseProgram accepts a Program or a raw uint32 program name.
// Any other handle type panics.
func (c *Context) UseProgram(p glutil.Program) {
	switch v := p.(type) {
	case Program:
		gl.UseProgram(uint32(v))
	case uint32:
		gl.UseProgram(v)
	default:
		panic(fmt.Sprintf("native: unsupported program handle %T", p))
	}
}

func (c *Context) CurrentProgram() glutil.Program {
	var p int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &p)
	if p == 0 {
		return nil
	}
	return Program(p)
}

// IsContextLost always reports false; a desktop context is not lost without
// robustness extensions.
func (c *Context) IsContextLost() bool {
	return false
}
