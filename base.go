package fault

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Base is the concrete error entity. Kinds embed it by value so that
// Chain's shallow copy duplicates the whole instance, Base fields
// included.
//
// Every field except context is immutable after construction. The context
// is replaceable through SetContext and is always held by reference, so
// external mutation of an attached map is visible through Context.
type Base struct {
	errorType string
	message   string
	code      string
	severity  Severity
	timestamp time.Time
	context   Context
	causeNote string
	cause     any
	trace     error
}

// Error renders "<errorType>: <message>", appending the JSON-encoded
// context when one or more entries are present. The causal link and the
// stack never appear in the string form; both have dedicated accessors.
func (e *Base) Error() string {
	return display(e)
}

// display builds the string form through the interface so that kinds
// overriding Message keep their formatting.
func display(err Error) string {
	s := err.ErrorType() + ": " + err.Message()
	ctx := err.Context()
	if len(ctx) == 0 {
		return s
	}
	encoded, jsonErr := json.Marshal(ctx)
	if jsonErr != nil {
		// Context that cannot render (cycles, functions, channels) is
		// omitted rather than failing the string form.
		return s
	}
	return s + " " + string(encoded)
}

// ErrorType returns the kind tag set at construction.
func (e *Base) ErrorType() string { return e.errorType }

// Message returns the stored message verbatim.
func (e *Base) Message() string { return e.message }

// Code returns the machine-readable identifier, or "" when unset.
func (e *Base) Code() string { return e.code }

// Severity returns the stored severity verbatim, valid or not.
func (e *Base) Severity() Severity { return e.severity }

// Timestamp returns the stored timestamp; the zero time means unset.
func (e *Base) Timestamp() time.Time { return e.timestamp }

// Context returns the live context map. The map is shared, not copied;
// mutations on either side are visible to both.
func (e *Base) Context() Context { return e.context }

// SetContext replaces the stored context wholesale. Passing nil clears it.
// The replacement is attached by reference like any other context.
func (e *Base) SetContext(ctx Context) { e.context = ctx }

// CauseNote returns the legacy string cause note from the options bag.
func (e *Base) CauseNote() string { return e.causeNote }

// Cause returns the causal link set by Chain. The link is stored verbatim:
// it may be another Error, a plain error, a string, a map, nil, or the
// error itself. No cycle detection is performed anywhere in this package.
func (e *Base) Cause() any { return e.cause }

// Unwrap exposes the causal link to errors.Is and errors.As when the link
// is a non-nil error. Self-referential and cyclic links are returned as
// stored; traversal safety belongs to the caller.
func (e *Base) Unwrap() error {
	if cause, ok := e.cause.(error); ok {
		return cause
	}
	return nil
}

// relink overwrites the causal link and recaptures the stack, mirroring
// what re-invoking the constructor would do.
func (e *Base) relink(cause any) {
	e.cause = cause
	e.trace = captureStack()
}

// format renders the fmt verbs through the interface so that kinds
// overriding Message keep their formatting. %v and %s print Error(); %+v
// appends the stack when one was captured.
func format(err Error, s fmt.State, verb rune) {
	switch verb {
	case 'v':
		io.WriteString(s, err.Error())
		if s.Flag('+') {
			if st := err.Stack(); st != "" {
				io.WriteString(s, st)
			}
		}
	case 's':
		io.WriteString(s, err.Error())
	case 'q':
		fmt.Fprintf(s, "%q", err.Error())
	}
}

// Format implements fmt.Formatter.
func (e *Base) Format(s fmt.State, verb rune) {
	format(e, s, verb)
}
