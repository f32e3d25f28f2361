// Package errors provides structured error handling for the maplibre bridge.
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
	// KindPlatform indicates a platform channel or native bridge error.
	KindPlatform
	// KindParsing indicates an event or query payload parsing failure.
	KindParsing
	// KindColor indicates an unparseable color value.
	KindColor
	// KindExpression indicates a malformed style expression.
	KindExpression
	// KindStyle indicates a style entity serialization problem.
	KindStyle
	// KindListener indicates a failure inside an application event listener.
	KindListener
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindParsing:
		return "parsing"
	case KindColor:
		return "color"
	case KindExpression:
		return "expression"
	case KindStyle:
		return "style"
	case KindListener:
		return "listener"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// BridgeError represents a structured error in the maplibre bridge.
type BridgeError struct {
	// Op is the operation that failed (e.g., "style.AddLayer").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Channel is the platform channel name, if applicable.
	Channel string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BridgeError) Error() string {
	if e.Channel != "" {
		return fmt.Sprintf("%s [%s] channel=%s: %v", e.Op, e.Kind, e.Channel, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BridgeError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "events.dispatchMapClick").
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

// ParseError represents a failure to parse bridge payload data.
type ParseError struct {
	// Channel is the platform channel that received the payload.
	Channel string
	// DataType is the expected type name.
	DataType string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from channel %s: got %T", e.DataType, e.Channel, e.Got)
}

// ListenerError represents a failure inside an application event listener.
// Listener failures are always contained at the dispatch hub: they are
// reported here and never propagated to sibling listeners or the native
// caller.
type ListenerError struct {
	// Event is the event kind being dispatched (e.g., "onMapClick").
	Event string
	// Recovered is the panic value caught at the hub boundary.
	Recovered any
	// StackTrace contains the call stack at the time of the failure.
	StackTrace string
	// Timestamp is when the failure occurred.
	Timestamp time.Time
}

func (e *ListenerError) Error() string {
	return fmt.Sprintf("listener for %s failed: %v", e.Event, e.Recovered)
}

// ErrorHandler receives errors reported by the maplibre bridge.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *BridgeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleListenerError is called when an application listener fails
	// during event dispatch.
	HandleListenerError(err *ListenerError)
}
