package render

import (
	"errors"
	"fmt"
)

// ErrRenderUnavailable matches every *UnavailableError.
var ErrRenderUnavailable = errors.New("render unavailable")

// UnavailableError means a backend is missing, unreachable or timed out.
// Callers should offer the printable page instead of a PDF.
type UnavailableError struct {
	Engine Engine
	Err    error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s renderer unavailable: %v", e.Engine, e.Err)
	}
	return fmt.Sprintf("%s renderer unavailable", e.Engine)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

func (e *UnavailableError) Is(target error) bool { return target == ErrRenderUnavailable }

// CompileError means the backend ran but rejected the generated document.
// Retrying will not help.
type CompileError struct {
	Engine Engine
	Output string
	Err    error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s compile failed: %v", e.Engine, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }
