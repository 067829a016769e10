// Package errors provides structured error handling for the headless
// widget states. Widget code never returns errors to the view layer;
// misuse is reported here and routed through a configurable policy so
// that development builds fail loudly while production builds degrade
// to no-ops.
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
	// KindConfig indicates a programmer mistake in widget configuration,
	// such as a selection value whose shape does not match the configured
	// selection mode.
	KindConfig
	// KindState indicates an internal state invariant violation, such as
	// a stored selection whose shape no longer matches the configured
	// mode.
	KindState
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindState:
		return "state"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in a widget state.
type Error struct {
	// Op is the operation that failed (e.g., "calendar.HandleCellClick").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "calendar.HandleKey").
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

// Config returns a KindConfig error for op.
func Config(op string, format string, args ...any) *Error {
	return &Error{
		Op:        op,
		Kind:      KindConfig,
		Err:       fmt.Errorf(format, args...),
		Timestamp: time.Now(),
	}
}

// State returns a KindState error for op.
func State(op string, format string, args ...any) *Error {
	return &Error{
		Op:        op,
		Kind:      KindState,
		Err:       fmt.Errorf(format, args...),
		Timestamp: time.Now(),
	}
}
