package scene

import (
	"errors"
	"fmt"
)

// Compile failures. Each is fatal for the scene being compiled; match them
// with errors.Is.
var (
	ErrMissingResource   = errors.New("missing resource")
	ErrDuplicateResource = errors.New("duplicate resource")
	ErrEmptyTemplate     = errors.New("empty template reference")
	ErrInvalidParticlefx = errors.New("invalid particlefx reference")
	ErrCyclicTemplate    = errors.New("cyclic template reference")
)

// CompileError reports a compile failure in the scene at Path.
type CompileError struct {
	Path string
	Name string
	Err  error
	Msg  string
}

// NewCompileError builds a CompileError with a formatted message.
func NewCompileError(path string, err error, name string, format string, args ...any) *CompileError {
	return &CompileError{
		Path: path,
		Name: name,
		Err:  err,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func (e *CompileError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %s", e.Err, e.Msg)
	}
	return fmt.Sprintf("%s: %v: %s", e.Path, e.Err, e.Msg)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
