package glutil

// Surface is a drawing target a context is bound to, e.g. a canvas element.
type Surface interface{}

// Shader is a backend shader object.
type Shader interface{}

// Program is a backend program object. A nil Program means no program.
type Program interface{}

// Extension is the capability object returned when an extension is enabled.
type Extension interface{}

type ShaderType int

const (
	VertexShader ShaderType = iota
	FragmentShader
)

func (t ShaderType) String() string {
	switch t {
	case VertexShader:
		return "VERTEX_SHADER"
	case FragmentShader:
		return "FRAGMENT_SHADER"
	default:
		return "UNKNOWN_SHADER"
	}
}

type Capability int

const (
	Blend Capability = iota
)

type BlendEquation int

const (
	FuncAdd BlendEquation = iota
)

type BlendFactor int

const (
	SrcAlpha BlendFactor = iota
	OneMinusSrcAlpha
)

// Names of the floating-point texture extensions enabled by Provision.
const (
	ExtTextureFloat           = "OES_texture_float"
	ExtTextureFloatLinear     = "OES_texture_float_linear"
	ExtTextureHalfFloat       = "OES_texture_half_float"
	ExtTextureHalfFloatLinear = "OES_texture_half_float_linear"
)

// Platform creates surfaces and contexts.
type Platform interface {
	// NewSurface creates a default drawing surface. Zero width or height
	// leaves the backend default.
	NewSurface(width, height int) (Surface, error)
	// NewContext creates a rendering context on the surface.
	NewContext(s Surface, attrs Attributes) (Context, error)
}

// Context is a rendering context. Calls are expected from a single goroutine,
// as the underlying graphics APIs require.
type Context interface {
	GetExtension(name string) (Extension, bool)

	Enable(c Capability)
	BlendEquation(eq BlendEquation)
	BlendFunc(src, dst BlendFactor)

	CreateShader(t ShaderType) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	UseProgram(p Program)
	CurrentProgram() Program

	IsContextLost() bool
}
