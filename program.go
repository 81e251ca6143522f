package glutil

import (
	"fmt"
)

// Source selects what Build does. It is one of Current, Use or Shaders.
type Source interface {
	source()
}

type currentSource struct{}

type programSource struct {
	p Program
}

type shaderSource struct {
	vertex, fragment string
}

func (currentSource) source() {}
func (programSource) source() {}
func (shaderSource) source()  {}

// Current makes Build return the program currently in use.
func Current() Source {
	return currentSource{}
}

// Use makes Build activate an existing program. p must be a program handle
// of the context's backend; backends panic on other handle types.
func Use(p Program) Source {
	return programSource{p: p}
}

// Shaders makes Build compile and link a new program.
func Shaders(vertex, fragment string) Source {
	return shaderSource{vertex: vertex, fragment: fragment}
}

// Build returns a program according to src and leaves it in use on ctx.
// A nil src is the same as Current().
//
// Every Shaders call creates a new program, even for sources seen before.
// Programs made current before are left allocated.
func Build(ctx Context, src Source) (Program, error) {
	if ctx == nil {
		return nil, fmt.Errorf("%w: context is not provided", ErrInvalidArgument)
	}

	switch s := src.(type) {
	case nil, currentSource:
		return ctx.CurrentProgram(), nil
	case programSource:
		if s.p == nil {
			return ctx.CurrentProgram(), nil
		}
		ctx.UseProgram(s.p)
		return s.p, nil
	case shaderSource:
		switch {
		case s.vertex == "" && s.fragment == "":
			return ctx.CurrentProgram(), nil
		case s.vertex == "" || s.fragment == "":
			return nil, fmt.Errorf("%w: vertex/fragment source is not provided", ErrInvalidArgument)
		}
		return buildProgram(ctx, s.vertex, s.fragment)
	default:
		return nil, fmt.Errorf("%w: unknown source %T", ErrInvalidArgument, src)
	}
}

func buildProgram(ctx Context, vsSrc, fsSrc string) (Program, error) {
	vs, err := compileShader(ctx, VertexShader, vsSrc)
	if err != nil {
		return nil, err
	}
	fs, err := compileShader(ctx, FragmentShader, fsSrc)
	if err != nil {
		return nil, err
	}

	program := ctx.CreateProgram()
	ctx.AttachShader(program, vs)
	ctx.AttachShader(program, fs)
	ctx.LinkProgram(program)
	if !ctx.ProgramLinked(program) {
		if ctx.IsContextLost() {
			return nil, ErrContextLost
		}
		return nil, &LinkError{Log: ctx.ProgramInfoLog(program)}
	}

	ctx.UseProgram(program)
	return program, nil
}

func compileShader(ctx Context, t ShaderType, src string) (Shader, error) {
	s := ctx.CreateShader(t)
	ctx.ShaderSource(s, src)
	ctx.CompileShader(s)
	if !ctx.ShaderCompiled(s) {
		if ctx.IsContextLost() {
			return nil, ErrContextLost
		}
		return nil, &CompileError{Type: t, Log: ctx.ShaderInfoLog(s)}
	}
	return s, nil
}
