package glutil

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUnsupportedFeature = errors.New("unsupported feature")
	ErrContextLost        = errors.New("WebGL context lost")
)

var errFloatNotSupported = fmt.Errorf("%w: floats not supported", ErrUnsupportedFeature)

// CompileError is returned when a shader stage fails to compile.
// Log is the backend info log as reported.
type CompileError struct {
	Type ShaderType
	Log  string
}

func (e *CompileError) Error() string {
	return "compile failed (" + e.Type.String() + "): " + e.Log
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "link failed: " + e.Log
}
