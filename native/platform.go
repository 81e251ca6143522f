package native

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/seqsense/glutil"
)

// Default surface size, the same as a browser canvas.
const (
	DefaultWidth  = 300
	DefaultHeight = 150
)

var errNotSurface = errors.New("surface is not a GLFW window")

var initGL = gl.Init

// Init initializes GLFW. Must be called from the main goroutine, which stays
// locked to its OS thread.
func Init() error {
	runtime.LockOSThread()
	return glfw.Init()
}

// Terminate shuts down GLFW. Must be called from the main goroutine.
func Terminate() {
	glfw.Terminate()
}

// Surface describes a window created together with its context, since GLFW
// takes framebuffer attributes at window creation.
type Surface struct {
	Width, Height int
	Title         string
	Visible       bool
}

// Platform creates GLFW windows with OpenGL 4.1 core contexts.
type Platform struct {
	Title   string
	Visible bool
}

func NewPlatform(title string, visible bool) *Platform {
	return &Platform{Title: title, Visible: visible}
}

func (p *Platform) NewSurface(width, height int) (glutil.Surface, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Surface{
		Width:   width,
		Height:  height,
		Title:   p.Title,
		Visible: p.Visible,
	}, nil
}

// NewContext creates a window for a *Surface, or takes the context of an
// existing *glfw.Window, and makes it current on the calling thread.
func (p *Platform) NewContext(s glutil.Surface, attrs glutil.Attributes) (glutil.Context, error) {
	var win *glfw.Window
	var created bool
	switch v := s.(type) {
	case *Surface:
		var err error
		if win, err = createWindow(v, attrs); err != nil {
			return nil, err
		}
		created = true
	case *glfw.Window:
		win = v
		if attrs.Width > 0 && attrs.Height > 0 {
			win.SetSize(attrs.Width, attrs.Height)
		}
	default:
		return nil, fmt.Errorf("%w: %T", errNotSurface, s)
	}

	win.MakeContextCurrent()
	if err := initGL(); err != nil {
		if created {
			win.Destroy()
		}
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	return &Context{
		window: win,
		major:  win.GetAttrib(glfw.ContextVersionMajor),
	}, nil
}

func createWindow(s *Surface, attrs glutil.Attributes) (*glfw.Window, error) {
	width, height := s.Width, s.Height
	if attrs.Width > 0 {
		width = attrs.Width
	}
	if attrs.Height > 0 {
		height = attrs.Height
	}

	h := windowHints(attrs)
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, h.Samples)
	glfw.WindowHint(glfw.AlphaBits, h.AlphaBits)
	glfw.WindowHint(glfw.DepthBits, h.DepthBits)
	glfw.WindowHint(glfw.StencilBits, h.StencilBits)
	if s.Visible {
		glfw.WindowHint(glfw.Visible, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(width, height, s.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	return win, nil
}
