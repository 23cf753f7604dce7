package fault

import "log/slog"

// Level maps a severity onto the slog scale. Fatal shares LevelError
// because slog defines no higher built-in level; unknown and unset
// severities also map to LevelError, the same default SeverityOf applies
// to unclassified failures.
func (s Severity) Level() slog.Level {
	switch s {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// logValue reads through the interface so kinds that override Message
// log the same text they display.
func logValue(err Error) slog.Value {
	attrs := make([]slog.Attr, 0, 7)
	attrs = append(attrs,
		slog.String("errorType", err.ErrorType()),
		slog.String("message", err.Message()),
	)
	if code := err.Code(); code != "" {
		attrs = append(attrs, slog.String("code", code))
	}
	if sev := err.Severity(); sev != "" {
		attrs = append(attrs, slog.String("severity", string(sev)))
	}
	if ts := err.Timestamp(); !ts.IsZero() {
		attrs = append(attrs, slog.Time("timestamp", ts))
	}
	if ctx := err.Context(); len(ctx) > 0 {
		attrs = append(attrs, slog.Any("context", ctx))
	}
	if cause := err.Unwrap(); cause != nil {
		attrs = append(attrs, slog.String("cause", cause.Error()))
	}
	return slog.GroupValue(attrs...)
}

// LogValue renders the error as a structured group so slog handlers emit
// its fields without custom marshalling. The causal link contributes its
// message when it is an error; the stack stays out, matching the wire
// shape.
func (e *Base) LogValue() slog.Value {
	return logValue(e)
}
