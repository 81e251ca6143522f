package glutil

import (
	"errors"
	"strings"
	"testing"
)

const (
	testVertexSource = `
	attribute vec4 aVertexPosition;
	void main(void) {
		gl_Position = aVertexPosition;
	}
`
	testFragmentSource = `
	void main(void) {
		gl_FragColor = vec4(1.0, 1.0, 1.0, 1.0);
	}
`
	testBrokenSource = `syntax error`
)

func newTestContext() *dummyContext {
	return &dummyContext{enabled: make(map[Capability]bool)}
}

func TestBuild_NoContext(t *testing.T) {
	if _, err := Build(nil, Shaders(testVertexSource, testFragmentSource)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected error: %v, got: %v", ErrInvalidArgument, err)
	}
}

func TestBuild_Current(t *testing.T) {
	current := &dummyProgram{}
	for name, src := range map[string]Source{
		"Nil":          nil,
		"Current":      Current(),
		"EmptySources": Shaders("", ""),
		"NilProgram":   Use(nil),
	} {
		src := src
		t.Run(name, func(t *testing.T) {
			ctx := newTestContext()
			ctx.current = current

			p, err := Build(ctx, src)
			if err != nil {
				t.Fatal(err)
			}
			if p != current {
				t.Errorf("Current program must be returned, expected: %p, got: %v", current, p)
			}
			if ctx.useCalls != 0 || len(ctx.shaders) != 0 || len(ctx.programs) != 0 {
				t.Error("Backend state must not be changed")
			}
		})
	}
}

func TestBuild_Use(t *testing.T) {
	ctx := newTestContext()
	ctx.current = &dummyProgram{}
	existing := &dummyProgram{linked: true}

	p, err := Build(ctx, Use(existing))
	if err != nil {
		t.Fatal(err)
	}
	if p != existing {
		t.Errorf("Given program must be returned, expected: %p, got: %v", existing, p)
	}
	if ctx.current != existing {
		t.Errorf("Given program must be in use, got: %v", ctx.current)
	}
	if len(ctx.shaders) != 0 || len(ctx.programs) != 0 {
		t.Error("Nothing must be compiled")
	}
}

func TestBuild_PartialSources(t *testing.T) {
	for name, src := range map[string]Source{
		"VertexOnly":   Shaders(testVertexSource, ""),
		"FragmentOnly": Shaders("", testFragmentSource),
	} {
		src := src
		t.Run(name, func(t *testing.T) {
			ctx := newTestContext()
			if _, err := Build(ctx, src); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Expected error: %v, got: %v", ErrInvalidArgument, err)
			}
			if len(ctx.shaders) != 0 || ctx.useCalls != 0 {
				t.Error("Backend must not be touched")
			}
		})
	}
}

func TestBuild_CompileError(t *testing.T) {
	testCases := map[string]struct {
		vs, fs string
		typ    ShaderType
	}{
		"Vertex":   {testBrokenSource, testFragmentSource, VertexShader},
		"Fragment": {testVertexSource, testBrokenSource, FragmentShader},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			ctx := newTestContext()
			p, err := Build(ctx, Shaders(tt.vs, tt.fs))
			if p != nil {
				t.Errorf("Program must not be returned, got: %v", p)
			}
			var ce *CompileError
			if !errors.As(err, &ce) {
				t.Fatalf("Expected CompileError, got: %v", err)
			}
			if ce.Type != tt.typ {
				t.Errorf("Expected shader type: %v, got: %v", tt.typ, ce.Type)
			}
			expectedLog := "ERROR: 0:1: " + tt.typ.String() + " syntax error"
			if ce.Log != expectedLog {
				t.Errorf("Expected log: %q, got: %q", expectedLog, ce.Log)
			}
			if !strings.Contains(err.Error(), expectedLog) {
				t.Errorf("Error message must contain the log, got: %q", err.Error())
			}
			if len(ctx.programs) != 0 || ctx.useCalls != 0 {
				t.Error("Program must not be created")
			}
		})
	}
}

func TestBuild_LinkError(t *testing.T) {
	ctx := newTestContext()
	ctx.linkError = "ERROR: Varying vColor not written"

	_, err := Build(ctx, Shaders(testVertexSource, testFragmentSource))
	var le *LinkError
	if !errors.As(err, &le) {
		t.Fatalf("Expected LinkError, got: %v", err)
	}
	if le.Log != ctx.linkError {
		t.Errorf("Expected log: %q, got: %q", ctx.linkError, le.Log)
	}
	if ctx.useCalls != 0 {
		t.Error("Program must not be used")
	}
}

func TestBuild_ContextLost(t *testing.T) {
	ctx := newTestContext()
	ctx.lost = true

	if _, err := Build(ctx, Shaders(testVertexSource, testFragmentSource)); err != ErrContextLost {
		t.Errorf("Expected error: %v, got: %v", ErrContextLost, err)
	}
}

func TestBuild_Shaders(t *testing.T) {
	ctx := newTestContext()

	p0, err := Build(ctx, Shaders(testVertexSource, testFragmentSource))
	if err != nil {
		t.Fatal(err)
	}
	if ctx.current != p0 {
		t.Error("Built program must be in use")
	}
	pp0 := p0.(*dummyProgram)
	if len(pp0.shaders) != 2 ||
		pp0.shaders[0].typ != VertexShader || pp0.shaders[0].src != testVertexSource ||
		pp0.shaders[1].typ != FragmentShader || pp0.shaders[1].src != testFragmentSource {
		t.Error("Vertex and fragment shaders must be attached")
	}

	p1, err := Build(ctx, Shaders(testVertexSource, testFragmentSource))
	if err != nil {
		t.Fatal(err)
	}
	if p0 == p1 {
		t.Error("Each build must create a new program")
	}
	if ctx.current != p1 {
		t.Error("Latest program must be in use")
	}
	if len(ctx.shaders) != 4 || len(ctx.programs) != 2 {
		t.Errorf("Shaders must be compiled for each build, got %d shaders, %d programs",
			len(ctx.shaders), len(ctx.programs))
	}
}
