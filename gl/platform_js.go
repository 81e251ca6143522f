package gl

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/seqsense/glutil"
	webgl "github.com/seqsense/webgl-go"
)

var errNotCanvas = errors.New("surface is not a canvas")

// Platform creates canvases and WebGL2 contexts.
type Platform struct{}

func NewPlatform() *Platform {
	return &Platform{}
}

// NewSurface creates a detached canvas of the given size, or the browser
// default size.
func (*Platform) NewSurface(width, height int) (glutil.Surface, error) {
	width, height = surfaceSize(width, height)
	c := webgl.Canvas(js.Global().Get("document").Call("createElement", "canvas"))
	c.SetWidth(width)
	c.SetHeight(height)
	return c, nil
}

// NewContext creates a WebGL2 context on a webgl.Canvas or a canvas js.Value.
// Width and height, when set, resize the canvas.
//
// A canvas returns the context it already has regardless of attributes.
func (*Platform) NewContext(s glutil.Surface, attrs glutil.Attributes) (glutil.Context, error) {
	var canvas webgl.Canvas
	switch v := s.(type) {
	case webgl.Canvas:
		canvas = v
	case js.Value:
		canvas = webgl.Canvas(v)
	default:
		return nil, fmt.Errorf("%w: %T", errNotCanvas, s)
	}
	if attrs.Width > 0 {
		canvas.SetWidth(attrs.Width)
	}
	if attrs.Height > 0 {
		canvas.SetHeight(attrs.Height)
	}

	if js.Value(canvas).Call("getContext", "webgl2", contextAttributes(attrs)).IsNull() {
		return nil, errors.New("WebGL2 is not supported")
	}
	gl, err := webgl.New(js.Value(canvas))
	if err != nil {
		return nil, err
	}
	return &Context{gl: gl, Canvas: gl.Canvas}, nil
}
