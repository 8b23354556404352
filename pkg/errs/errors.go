// Package errs defines the error taxonomy shared by every core package:
// graph, types, properties, views, community, and triangles all return
// errors wrapping one of the sentinels below so callers can branch with
// errors.Is regardless of which package raised the failure.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors. See spec §7 for the taxonomy these correspond to.
var (
	// ErrInvalidArgument indicates a parameter out of range, an unknown
	// algorithm selector, a malformed plan, or a bad k for k-Truss.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound indicates a property or type name does not exist.
	ErrNotFound = errors.New("not found")
	// ErrTypeError indicates a requested view type does not match a column's logical type.
	ErrTypeError = errors.New("type error")
	// ErrAssertionFailed indicates an invariant was violated at runtime; treated as a bug.
	ErrAssertionFailed = errors.New("assertion failed")
	// ErrOutOfMemory indicates an allocation failed.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrAlreadyExists indicates a property name collision in strict (non-upsert) mode.
	ErrAlreadyExists = errors.New("already exists")
)

// CoreError carries structured context about a failure: which operation,
// which entity kind, and what the underlying sentinel was.
type CoreError struct {
	Op      string // operation that failed, e.g. "AddProperties", "BuildView"
	Entity  string // entity kind, e.g. "property", "type", "view", "node"
	Name    string // name/key involved, if any
	Cause   error  // one of the sentinels above, or a wrapped error
	Context string // free-form extra detail
}

// Error implements the error interface.
func (e *CoreError) Error() string {
	switch {
	case e.Name != "" && e.Context != "":
		return fmt.Sprintf("%s %s %q (%s): %v", e.Op, e.Entity, e.Name, e.Context, e.Cause)
	case e.Name != "":
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.Name, e.Cause)
	case e.Context != "":
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.Context, e.Cause)
	default:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
	}
}

// Unwrap returns the underlying cause for error-chain support.
func (e *CoreError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error's cause.
func (e *CoreError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// Builder provides a fluent interface for constructing CoreErrors.
type Builder struct {
	err *CoreError
}

// New starts a Builder for operation op.
func New(op string) *Builder {
	return &Builder{err: &CoreError{Op: op}}
}

// Entity sets the entity kind.
func (b *Builder) Entity(entity string) *Builder {
	b.err.Entity = entity
	return b
}

// Name sets the name/key involved.
func (b *Builder) Name(name string) *Builder {
	b.err.Name = name
	return b
}

// Context sets free-form extra detail.
func (b *Builder) Context(ctx string) *Builder {
	b.err.Context = ctx
	return b
}

// Cause sets the underlying cause and returns the finished error.
func (b *Builder) Cause(cause error) *CoreError {
	b.err.Cause = cause
	return b.err
}

// NotFound builds a CoreError wrapping ErrNotFound.
func NotFound(op, entity, name string) *CoreError {
	return New(op).Entity(entity).Name(name).Cause(ErrNotFound)
}

// InvalidArgument builds a CoreError wrapping ErrInvalidArgument.
func InvalidArgument(op, context string) *CoreError {
	return New(op).Entity("argument").Context(context).Cause(ErrInvalidArgument)
}

// TypeMismatch builds a CoreError wrapping ErrTypeError.
func TypeMismatch(op, entity, name, context string) *CoreError {
	return New(op).Entity(entity).Name(name).Context(context).Cause(ErrTypeError)
}

// AlreadyExists builds a CoreError wrapping ErrAlreadyExists.
func AlreadyExists(op, entity, name string) *CoreError {
	return New(op).Entity(entity).Name(name).Cause(ErrAlreadyExists)
}

// Assertion builds a CoreError wrapping ErrAssertionFailed.
func Assertion(op, context string) *CoreError {
	return New(op).Entity("invariant").Context(context).Cause(ErrAssertionFailed)
}
