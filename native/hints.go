package native

import (
	"github.com/seqsense/glutil"
)

// Window hint values derived from context attributes.
const (
	samplesAntialias = 4
	alphaBits        = 8
	depthBits        = 24
	stencilBits      = 8
)

type hints struct {
	Samples, AlphaBits, DepthBits, StencilBits int
}

// windowHints maps attributes to framebuffer hints. PremultipliedAlpha and
// PreserveDrawingBuffer have no GLFW counterpart.
func windowHints(a glutil.Attributes) hints {
	var h hints
	if a.Antialias {
		h.Samples = samplesAntialias
	}
	if a.Alpha {
		h.AlphaBits = alphaBits
	}
	if a.Depth {
		h.DepthBits = depthBits
	}
	if a.Stencil {
		h.StencilBits = stencilBits
	}
	return h
}

// extensionNames lists GL extension strings providing each WebGL extension.
var extensionNames = map[string][]string{
	glutil.ExtTextureFloat:           {"GL_ARB_texture_float", "GL_OES_texture_float"},
	glutil.ExtTextureFloatLinear:     {"GL_OES_texture_float_linear"},
	glutil.ExtTextureHalfFloat:       {"GL_ARB_half_float_pixel", "GL_OES_texture_half_float"},
	glutil.ExtTextureHalfFloatLinear: {"GL_OES_texture_half_float_linear"},
}

// lookupExtension resolves a WebGL extension name. On OpenGL 3.0 and later
// float textures and their linear filtering are core.
func lookupExtension(name string, major int, supported func(string) bool) (string, bool) {
	names, ok := extensionNames[name]
	if !ok {
		return "", false
	}
	if major >= 3 {
		return name, true
	}
	for _, n := range names {
		if supported(n) {
			return n, true
		}
	}
	return "", false
}
