package gl

import (
	"fmt"
	"syscall/js"

	"github.com/seqsense/glutil"
	webgl "github.com/seqsense/webgl-go"
)

// Context implements glutil.Context on a WebGL2 context.
type Context struct {
	gl *webgl.WebGL

	Canvas webgl.Canvas
}

// WebGL returns the underlying context for rendering calls.
func (c *Context) WebGL() *webgl.WebGL {
	return c.gl
}

func (c *Context) GetExtension(name string) (glutil.Extension, bool) {
	if coreExtensions[name] {
		return nil, true
	}
	ext, ok := c.gl.GetExtension(name)
	if !ok {
		return nil, false
	}
	return ext, true
}

func (c *Context) Enable(cp glutil.Capability) {
	switch cp {
	case glutil.Blend:
		c.gl.Enable(c.gl.BLEND)
	}
}

func (c *Context) BlendEquation(eq glutil.BlendEquation) {
	switch eq {
	case glutil.FuncAdd:
		c.gl.JS().Call("blendEquation", c.gl.JS().Get("FUNC_ADD"))
	}
}

func (c *Context) blendFactor(f glutil.BlendFactor) webgl.BlendFactor {
	switch f {
	case glutil.SrcAlpha:
		return c.gl.SRC_ALPHA
	case glutil.OneMinusSrcAlpha:
		return c.gl.ONE_MINUS_SRC_ALPHA
	}
	return c.gl.ONE
}

func (c *Context) BlendFunc(src, dst glutil.BlendFactor) {
	c.gl.BlendFunc(c.blendFactor(src), c.blendFactor(dst))
}

func (c *Context) CreateShader(t glutil.ShaderType) glutil.Shader {
	switch t {
	case glutil.FragmentShader:
		return c.gl.CreateShader(c.gl.FRAGMENT_SHADER)
	default:
		return c.gl.CreateShader(c.gl.VERTEX_SHADER)
	}
}

func (c *Context) ShaderSource(s glutil.Shader, src string) {
	c.gl.ShaderSource(s.(webgl.Shader), src)
}

func (c *Context) CompileShader(s glutil.Shader) {
	c.gl.CompileShader(s.(webgl.Shader))
}

func (c *Context) ShaderCompiled(s glutil.Shader) bool {
	return c.gl.GetShaderParameter(s.(webgl.Shader), c.gl.COMPILE_STATUS).(bool)
}

func (c *Context) ShaderInfoLog(s glutil.Shader) string {
	return c.gl.GetShaderInfoLog(s.(webgl.Shader))
}

func (c *Context) CreateProgram() glutil.Program {
	return c.gl.CreateProgram()
}

func (c *Context) AttachShader(p glutil.Program, s glutil.Shader) {
	c.gl.AttachShader(p.(webgl.Program), s.(webgl.Shader))
}

func (c *Context) LinkProgram(p glutil.Program) {
	c.gl.LinkProgram(p.(webgl.Program))
}

func (c *Context) ProgramLinked(p glutil.Program) bool {
	return c.gl.GetProgramParameter(p.(webgl.Program), c.gl.LINK_STATUS).(bool)
}

func (c *Context) ProgramInfoLog(p glutil.Program) string {
	return c.gl.GetProgramInfoLog(p.(webgl.Program))
}

// UseProgram accepts a webgl.Program or a WebGLProgram js.Value.
// Any other handle type panics.
func (c *Context) UseProgram(p glutil.Program) {
	switch v := p.(type) {
	case webgl.Program:
		c.gl.UseProgram(v)
	case js.Value:
		c.gl.UseProgram(webgl.Program(v))
	default:
		panic(fmt.Sprintf("gl: unsupported program handle %T", p))
	}
}

func (c *Context) CurrentProgram() glutil.Program {
	v := c.gl.GetParameter(c.gl.JS().Get("CURRENT_PROGRAM").Int())
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return webgl.Program(v)
}

func (c *Context) IsContextLost() bool {
	return c.gl.IsContextLost()
}
