// Package utils holds small helpers shared by the denovo reader packages.
package utils

import "fmt"

// Error carries the file and stage a read failure happened in.
type Error struct {
	Path    string // Source file, empty when unknown.
	Context string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Context, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Context, e.Cause)
}

// Unwrap provides compatibility with errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WrapError creates a contextual error. A nil cause yields nil.
func WrapError(context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{
		Context: context,
		Cause:   cause,
	}
}

// WrapPathError is WrapError with the offending file attached.
func WrapPathError(path, context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{
		Path:    path,
		Context: context,
		Cause:   cause,
	}
}
