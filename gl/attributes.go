package gl

import (
	"github.com/seqsense/glutil"
)

// Default canvas size used by browsers.
const (
	DefaultWidth  = 300
	DefaultHeight = 150
)

// contextAttributes converts attributes to a WebGLContextAttributes dictionary.
func contextAttributes(a glutil.Attributes) map[string]interface{} {
	return map[string]interface{}{
		"antialias":             a.Antialias,
		"alpha":                 a.Alpha,
		"premultipliedAlpha":    a.PremultipliedAlpha,
		"preserveDrawingBuffer": a.PreserveDrawingBuffer,
		"depth":                 a.Depth,
		"stencil":               a.Stencil,
	}
}

// coreExtensions are extensions promoted to WebGL2 core.
// getExtension returns null for them on a WebGL2 context.
var coreExtensions = map[string]bool{
	glutil.ExtTextureFloat:           true,
	glutil.ExtTextureHalfFloat:       true,
	glutil.ExtTextureHalfFloatLinear: true,
}

func surfaceSize(width, height int) (int, int) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}
