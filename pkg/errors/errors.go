// Package errors provides structured error handling for the latch engine.
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
	// KindResolve indicates a marker element named an unregistered widget type.
	KindResolve
	// KindParams indicates a params attribute that is missing or undecodable.
	KindParams
	// KindHook indicates a widget constructor or hook failure.
	KindHook
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindResolve:
		return "resolve"
	case KindParams:
		return "params"
	case KindHook:
		return "hook"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// LatchError represents a structured error in the latch engine.
type LatchError struct {
	// Op is the operation that failed (e.g., "cell.reload").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Widget is the widget type name, if applicable.
	Widget string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LatchError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LatchError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "app.refresh").
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

// UnknownWidgetError reports a marker element naming a widget type absent from
// the registry. It is fatal to the reconciliation pass that encountered it.
type UnknownWidgetError struct {
	// Name is the unresolved widget type name.
	Name string
	// Marker is the marker attribute the name was read from.
	Marker string
}

func (e *UnknownWidgetError) Error() string {
	if e.Marker != "" {
		return fmt.Sprintf("unknown widget type %q (marker %s)", e.Name, e.Marker)
	}
	return fmt.Sprintf("unknown widget type %q", e.Name)
}

// ParamsError reports a params attribute that is missing or does not decode.
// It is fatal to the reconciliation pass that encountered it.
type ParamsError struct {
	// Name is the widget type name of the offending element.
	Name string
	// Attr is the params attribute name.
	Attr string
	// Err is the decode error, or ErrMissingParams when the attribute is absent.
	Err error
}

func (e *ParamsError) Error() string {
	return fmt.Sprintf("invalid params for widget %q (%s): %v", e.Name, e.Attr, e.Err)
}

func (e *ParamsError) Unwrap() error {
	return e.Err
}

// Sentinel errors for reconciliation contract violations.
var (
	// ErrMissingParams indicates a marker element carrying no params attribute.
	ErrMissingParams = fmt.Errorf("params attribute missing")

	// ErrReentrantReload indicates a reconciliation pass requested from within
	// a widget hook while another pass is still running.
	ErrReentrantReload = fmt.Errorf("reconciliation pass already in progress")
)

// Handler receives errors reported by the latch engine.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *LatchError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
