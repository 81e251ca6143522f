package glutil

import (
	"strings"
)

// dummyPlatform records surfaces and contexts for testing.
// A non-nil surfaceErr or contextErr makes the matching call fail.
type dummyPlatform struct {
	extensions map[string]bool
	surfaceErr error
	contextErr error
	surfaces   []*dummySurface
	contexts   []*dummyContext
}

type dummySurface struct {
	width, height int
}

func newDummyPlatform(exts ...string) *dummyPlatform {
	p := &dummyPlatform{extensions: make(map[string]bool)}
	for _, e := range exts {
		p.extensions[e] = true
	}
	return p
}

func (p *dummyPlatform) NewSurface(width, height int) (Surface, error) {
	if p.surfaceErr != nil {
		return nil, p.surfaceErr
	}
	s := &dummySurface{width: width, height: height}
	p.surfaces = append(p.surfaces, s)
	return s, nil
}

func (p *dummyPlatform) NewContext(s Surface, attrs Attributes) (Context, error) {
	if p.contextErr != nil {
		return nil, p.contextErr
	}
	c := &dummyContext{
		surface:    s,
		attrs:      attrs,
		extensions: p.extensions,
		enabled:    make(map[Capability]bool),
		blendEq:    -1,
		blendSrc:   -1,
		blendDst:   -1,
	}
	p.contexts = append(p.contexts, c)
	return c, nil
}

type dummyShader struct {
	typ      ShaderType
	src      string
	compiled bool
	log      string
}

type dummyProgram struct {
	shaders []*dummyShader
	linked  bool
	log     string
}

// dummyContext compiles sources containing "error" into failing shaders and
// fails to link when linkError is set.
type dummyContext struct {
	surface    Surface
	attrs      Attributes
	extensions map[string]bool
	requested  []string

	enabled            map[Capability]bool
	blendEq            BlendEquation
	blendSrc, blendDst BlendFactor

	current   Program
	useCalls  int
	shaders   []*dummyShader
	programs  []*dummyProgram
	linkError string
	lost      bool
}

func (c *dummyContext) GetExtension(name string) (Extension, bool) {
	c.requested = append(c.requested, name)
	if !c.extensions[name] {
		return nil, false
	}
	return name, true
}

func (c *dummyContext) Enable(cp Capability) { c.enabled[cp] = true }

func (c *dummyContext) BlendEquation(eq BlendEquation) { c.blendEq = eq }

func (c *dummyContext) BlendFunc(src, dst BlendFactor) {
	c.blendSrc, c.blendDst = src, dst
}

func (c *dummyContext) CreateShader(t ShaderType) Shader {
	s := &dummyShader{typ: t}
	c.shaders = append(c.shaders, s)
	return s
}

func (c *dummyContext) ShaderSource(s Shader, src string) { s.(*dummyShader).src = src }

func (c *dummyContext) CompileShader(s Shader) {
	sh := s.(*dummyShader)
	if c.lost {
		return
	}
	if strings.Contains(sh.src, "error") {
		sh.log = "ERROR: 0:1: " + sh.typ.String() + " syntax error"
		return
	}
	sh.compiled = true
}

func (c *dummyContext) ShaderCompiled(s Shader) bool { return s.(*dummyShader).compiled }

func (c *dummyContext) ShaderInfoLog(s Shader) string { return s.(*dummyShader).log }

func (c *dummyContext) CreateProgram() Program {
	p := &dummyProgram{}
	c.programs = append(c.programs, p)
	return p
}

func (c *dummyContext) AttachShader(p Program, s Shader) {
	pp := p.(*dummyProgram)
	pp.shaders = append(pp.shaders, s.(*dummyShader))
}

func (c *dummyContext) LinkProgram(p Program) {
	pp := p.(*dummyProgram)
	if c.lost {
		return
	}
	if c.linkError != "" {
		pp.log = c.linkError
		return
	}
	pp.linked = len(pp.shaders) == 2
}

func (c *dummyContext) ProgramLinked(p Program) bool { return p.(*dummyProgram).linked }

func (c *dummyContext) ProgramInfoLog(p Program) string { return p.(*dummyProgram).log }

func (c *dummyContext) UseProgram(p Program) {
	c.current = p
	c.useCalls++
}

func (c *dummyContext) CurrentProgram() Program { return c.current }

func (c *dummyContext) IsContextLost() bool { return c.lost }
