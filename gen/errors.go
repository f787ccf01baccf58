// Package gen implements the entity-to-artifact generation engine: pure
// renderers, the full-generation orchestrator, the incremental generator and
// the seed-data machinery.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrValidation indicates malformed caller input.
	ErrValidation = errors.New("mycodegent: invalid input")
	// ErrProjectNotFound indicates an absent incremental target directory.
	ErrProjectNotFound = errors.New("mycodegent: project not found")
	// ErrRender indicates a renderer met a model it cannot safely render.
	ErrRender = errors.New("mycodegent: render failed")
	// ErrWrite indicates a failure reported by the FileWriter collaborator.
	ErrWrite = errors.New("mycodegent: write failed")
)

// ValidationError reports malformed input. It is always surfaced before any
// rendering or I/O begins and names the offending entity when there is one.
type ValidationError struct {
	Entity  string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("mycodegent: validation error")
	if e.Entity != "" {
		b.WriteString(" on entity ")
		b.WriteString(e.Entity)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the validation sentinel.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError creates a ValidationError.
func NewValidationError(entity, field, message string) *ValidationError {
	return &ValidationError{Entity: entity, Field: field, Message: message}
}

// ProjectNotFoundError reports an incremental run against a directory that
// does not exist. No fallback is attempted.
type ProjectNotFoundError struct {
	Path string
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("mycodegent: project path not found: %s", e.Path)
}

// Is reports whether the target matches the project-not-found sentinel.
func (e *ProjectNotFoundError) Is(target error) bool { return target == ErrProjectNotFound }

// NewProjectNotFoundError creates a ProjectNotFoundError.
func NewProjectNotFoundError(path string) *ProjectNotFoundError {
	return &ProjectNotFoundError{Path: path}
}

// RenderError reports an inconsistent model a renderer cannot safely render,
// such as a relationship referencing an entity name absent from the supplied
// set. Full-generation mode aborts the whole run on the first RenderError.
type RenderError struct {
	Entity   string
	Artifact string
	Message  string
	Cause    error
}

func (e *RenderError) Error() string {
	var b strings.Builder
	b.WriteString("mycodegent: render error")
	if e.Entity != "" {
		b.WriteString(" on entity ")
		b.WriteString(e.Entity)
	}
	if e.Artifact != "" {
		b.WriteString(" artifact ")
		b.WriteString(e.Artifact)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *RenderError) Unwrap() error { return e.Cause }

// Is reports whether the target matches the render sentinel.
func (e *RenderError) Is(target error) bool { return target == ErrRender }

// NewRenderError creates a RenderError.
func NewRenderError(entity, artifact, message string, cause error) *RenderError {
	return &RenderError{Entity: entity, Artifact: artifact, Message: message, Cause: cause}
}

// WriteError wraps a failure from the FileWriter collaborator. The engine
// never retries; the caller owns retry policy.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("mycodegent: write error on %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error { return e.Cause }

// Is reports whether the target matches the write sentinel.
func (e *WriteError) Is(target error) bool { return target == ErrWrite }

// NewWriteError creates a WriteError.
func NewWriteError(path string, cause error) *WriteError {
	return &WriteError{Path: path, Cause: cause}
}

// IsInputError reports whether the error is the caller's fault: malformed
// input or a model the renderers reject. Transports use this to pick a
// status code.
func IsInputError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrRender)
}
