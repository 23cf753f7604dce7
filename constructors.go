package fault

import "fmt"

// New constructs a Base error with the given kind tag and message.
//
// Both strings are stored verbatim: empty tags, empty messages, control
// characters, and emoji are all accepted. Nothing is validated and nothing
// is defaulted; options left unset stay unset on the entity.
//
// Example:
//
//	err := fault.New("DatabaseError", "connection refused",
//	    fault.WithCode("DB_CONN"),
//	    fault.WithSeverity(fault.SeverityError))
func New(errorType, message string, opts ...Option) *Base {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}
	return fromOptions(errorType, message, o)
}

// Newf constructs a Base error with a formatted message.
//
// Example:
//
//	err := fault.Newf("ValidationError", "name too long: %d characters (max %d)", len(name), maxLen)
func Newf(errorType, format string, args ...any) *Base {
	return New(errorType, fmt.Sprintf(format, args...))
}

// NewWithContext constructs a Base error carrying only a context. This is
// the explicit form of the legacy bare-context call style; the map is
// attached by reference and every other option stays unset.
func NewWithContext(errorType, message string, ctx Context) *Base {
	return fromOptions(errorType, message, Options{Context: ctx})
}

// NewWithOptions constructs a Base error from a loosely shaped options
// value: an Options bag, a structured map, a bare context map, or nil.
// See NormalizeOptions for the disambiguation rules. Construction never
// fails; malformed input degrades to unset fields.
func NewWithOptions(errorType, message string, options any) *Base {
	return fromOptions(errorType, message, NormalizeOptions(options))
}

// fromOptions assembles the entity and captures the stack.
func fromOptions(errorType, message string, o Options) *Base {
	return &Base{
		errorType: errorType,
		message:   message,
		code:      o.Code,
		severity:  o.Severity,
		timestamp: o.Timestamp,
		context:   o.Context,
		causeNote: o.Cause,
		trace:     captureStack(),
	}
}
