package fault

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Kind tags used by this package. Tags are plain strings; downstream
// packages define their own alongside these.
const (
	TypeValidation     = "ValidationError"
	TypeDatabase       = "DatabaseError"
	TypeTimeout        = "TimeoutError"
	TypeInvalidContext = "InvalidContextError"
	TypeRegistry       = "RegistryError"
	TypeUnknownCode    = "UnknownCodeError"
)

// ValidationError reports rejected input. Field names the offending input
// field.
type ValidationError struct {
	Base

	Field string
}

// NewValidation constructs a ValidationError for field.
func NewValidation(field, message string, opts ...Option) *ValidationError {
	return &ValidationError{
		Base:  *New(TypeValidation, message, opts...),
		Field: field,
	}
}

// DatabaseError reports a failed storage operation.
type DatabaseError struct {
	Base

	Operation string
}

// NewDatabase constructs a DatabaseError for the named operation.
func NewDatabase(operation, message string, opts ...Option) *DatabaseError {
	return &DatabaseError{
		Base:      *New(TypeDatabase, message, opts...),
		Operation: operation,
	}
}

// TimeoutError reports an operation that exceeded its deadline. Its
// Message accessor appends the limit; Chain preserves the override on
// rebuilt copies.
type TimeoutError struct {
	Base

	Limit time.Duration
}

// NewTimeout constructs a TimeoutError with the exceeded limit.
func NewTimeout(message string, limit time.Duration, opts ...Option) *TimeoutError {
	return &TimeoutError{
		Base:  *New(TypeTimeout, message, opts...),
		Limit: limit,
	}
}

// Message appends the exceeded limit to the stored message.
func (e *TimeoutError) Message() string {
	if e.Limit <= 0 {
		return e.Base.Message()
	}
	return fmt.Sprintf("%s (limit %s)", e.Base.Message(), e.Limit)
}

// Error keeps the string form aligned with the overridden Message.
func (e *TimeoutError) Error() string {
	return display(e)
}

// MarshalJSON keeps the wire form aligned with the overridden Message.
func (e *TimeoutError) MarshalJSON() ([]byte, error) {
	return json.Marshal(NewDocument(e))
}

// LogValue keeps the log form aligned with the overridden Message.
func (e *TimeoutError) LogValue() slog.Value {
	return logValue(e)
}

// Format keeps the fmt verbs aligned with the overridden Message.
func (e *TimeoutError) Format(s fmt.State, verb rune) {
	format(e, s, verb)
}
