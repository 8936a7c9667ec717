// Package errors provides structured error types for the frond framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindParsing indicates a tree-manifest parsing failure.
	KindParsing
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindParsing:
		return "parsing"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the frond framework.
type Error struct {
	// Op is the operation that failed (e.g., "treespec.Parse").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// RenderError reports a fatal render-contract violation: a component was
// asked to render before its base was wired through Init. It is carried as a
// panic value rather than returned, since the update protocol has no error
// path and the fault is unrecoverable by design.
type RenderError struct {
	// Component is the key of the offending node, if known.
	Component string
	// Op is the operation that required a renderer (e.g., "component.ForceUpdate").
	Op string
	// Timestamp is when the fault occurred.
	Timestamp time.Time
}

func (e *RenderError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s: component %q has no renderer (Init never called)", e.Op, e.Component)
	}
	return fmt.Sprintf("%s: component has no renderer (Init never called)", e.Op)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
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
