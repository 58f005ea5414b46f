package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandleError logs a ViewError to stderr.
func (h *LogHandler) HandleError(err *ViewError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[wml error] %s [%s]", err.Op, err.Kind)
		if err.Detail != "" {
			fmt.Fprintf(os.Stderr, " detail=%s", err.Detail)
		}
		fmt.Fprintf(os.Stderr, ": %v\n", err.Err)
	} else {
		fmt.Fprintf(os.Stderr, "[wml error] %s: %v\n", err.Op, err)
	}
}

// HandlePanic logs a PanicError to stderr.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(os.Stderr, "[wml panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(os.Stderr, "[wml panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}
