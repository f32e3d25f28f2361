package errors

import (
	"os"

	"github.com/charmbracelet/log"
)

// LogHandler is an ErrorHandler that writes through a charmbracelet logger.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool

	logger *log.Logger
}

// NewLogHandler creates a LogHandler writing to stderr.
func NewLogHandler(verbose bool) *LogHandler {
	return &LogHandler{
		Verbose: verbose,
		logger:  log.NewWithOptions(os.Stderr, log.Options{Prefix: "maplibre"}),
	}
}

// HandleError logs a BridgeError.
func (h *LogHandler) HandleError(err *BridgeError) {
	if err == nil {
		return
	}
	kv := []any{"op", err.Op, "kind", err.Kind.String()}
	if err.Channel != "" {
		kv = append(kv, "channel", err.Channel)
	}
	if h.Verbose && err.StackTrace != "" {
		kv = append(kv, "stack", err.StackTrace)
	}
	h.logger.Error(err.Err.Error(), kv...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	kv := []any{"op", err.Op}
	if h.Verbose && err.StackTrace != "" {
		kv = append(kv, "stack", err.StackTrace)
	}
	h.logger.Error("panic recovered", append(kv, "value", err.Value)...)
}

// HandleListenerError logs a ListenerError.
func (h *LogHandler) HandleListenerError(err *ListenerError) {
	if err == nil {
		return
	}
	kv := []any{"event", err.Event, "value", err.Recovered}
	if h.Verbose && err.StackTrace != "" {
		kv = append(kv, "stack", err.StackTrace)
	}
	h.logger.Error("listener failed", kv...)
}
