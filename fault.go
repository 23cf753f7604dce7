package fault

import "time"

// Error is the structured error contract implemented by Base and by every
// concrete kind that embeds it.
//
// Error is sealed: it includes an unexported method, so only types
// embedding Base can satisfy it. The seal is what lets Chain guarantee
// that a rebuilt instance keeps its concrete type and accessor overrides.
type Error interface {
	error

	// ErrorType returns the tag identifying the concrete error kind.
	ErrorType() string

	// Message returns the human-readable description. Kinds may override
	// this accessor to apply custom formatting; Chain, NewDocument, and
	// NewProblem all honor the override.
	Message() string

	// Code returns the machine-readable identifier, or "" when unset.
	Code() string

	// Severity returns the stored severity verbatim, valid or not.
	Severity() Severity

	// Timestamp returns the stored timestamp; the zero time means unset.
	Timestamp() time.Time

	// Context returns the live context map, shared with internal state.
	Context() Context

	// SetContext replaces the stored context wholesale.
	SetContext(ctx Context)

	// CauseNote returns the legacy string cause note from the options
	// bag. It is unrelated to the causal link set by Chain.
	CauseNote() string

	// Cause returns the causal link set by Chain, or nil.
	Cause() any

	// Unwrap returns the causal link when it is a non-nil error, making
	// chains traversable by errors.Is and errors.As.
	Unwrap() error

	// Stack returns the formatted capture from construction time, or ""
	// when no capture is available.
	Stack() string

	// relink seals the interface and lets Chain overwrite the causal link
	// on a rebuilt copy.
	relink(cause any)
}
