package fault

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// captureStack records the current call stack. The capture rides on
// github.com/pkg/errors so frame formatting matches the platform's other
// error output.
func captureStack() error {
	return pkgerrors.New("")
}

// stackTracer is the interface pkg/errors exposes on its captures.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Stack returns the stack captured at construction or at the most recent
// Chain, formatted one frame per line, or "" when no capture is available.
// A missing capture degrades silently; it is never an error.
func (e *Base) Stack() string {
	t, ok := e.trace.(stackTracer)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%+v", t.StackTrace())
}

// StackTrace exposes the raw pkg/errors frames for callers that format
// stacks themselves, or nil when no capture is available.
func (e *Base) StackTrace() pkgerrors.StackTrace {
	t, ok := e.trace.(stackTracer)
	if !ok {
		return nil
	}
	return t.StackTrace()
}
