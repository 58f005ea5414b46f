// Package errors provides structured error handling for the wml runtime.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of a runtime error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindDuplicateID indicates an identifier collision within one render pass.
	KindDuplicateID
	// KindNotRendered indicates an invalidation of a view that was never rendered.
	KindNotRendered
	// KindNotAttached indicates an invalidation of a tree with no host parent.
	KindNotAttached
	// KindTypeMismatch indicates a value that cannot be normalized into content.
	KindTypeMismatch
	// KindAdoption indicates a child value an element cannot adopt.
	KindAdoption
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindDuplicateID:
		return "duplicate-id"
	case KindNotRendered:
		return "not-rendered"
	case KindNotAttached:
		return "not-attached"
	case KindTypeMismatch:
		return "type-mismatch"
	case KindAdoption:
		return "adoption"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ViewError represents a structured error in the wml runtime.
type ViewError struct {
	// Op is the operation that failed (e.g., "core.View.Register").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Detail carries the offending identifier, tag, or type name, if any.
	Detail string
	// Err is the underlying error, if any.
	Err error
}

func (e *ViewError) Error() string {
	if e.Detail != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s [%s] %s: %v", e.Op, e.Kind, e.Detail, e.Err)
		}
		return fmt.Sprintf("%s [%s]: %s", e.Op, e.Kind, e.Detail)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s [%s]", e.Op, e.Kind)
}

func (e *ViewError) Unwrap() error {
	return e.Err
}

// New constructs a ViewError for the given operation and kind.
func New(op string, kind Kind, detail string) *ViewError {
	return &ViewError{Op: op, Kind: kind, Detail: detail}
}

// Wrap constructs a ViewError around an underlying error.
func Wrap(op string, kind Kind, err error) *ViewError {
	return &ViewError{Op: op, Kind: kind, Err: err}
}

// KindOf extracts the Kind from an error chain.
// Returns KindUnknown for nil and for errors that are not ViewErrors.
func KindOf(err error) Kind {
	for err != nil {
		if ve, ok := err.(*ViewError); ok {
			return ve.Kind
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return KindUnknown
		}
		err = unwrapper.Unwrap()
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "dom.MemoryHost.Fire").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported by asynchronous surfaces of the runtime.
// Core render/invalidate errors are returned to callers directly and never
// routed through a Handler.
type Handler interface {
	// HandleError is called when an error is reported.
	HandleError(err *ViewError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
