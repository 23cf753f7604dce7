package fault

// Severity classifies how serious an error is.
//
// The vocabulary is closed and wire-stable: exactly four lowercase tokens,
// declared in conventional criticality order (no ordering operation is
// defined). Constructors store severities verbatim without validating them;
// callers opt in to validation through IsValid or IsValidSeverity.
type Severity string

const (
	// SeverityFatal indicates an unrecoverable failure; the surrounding
	// process or request cannot continue.
	SeverityFatal Severity = "fatal"

	// SeverityError indicates an operation failed.
	SeverityError Severity = "error"

	// SeverityWarning indicates a degraded but survivable condition.
	SeverityWarning Severity = "warning"

	// SeverityInfo indicates a non-failure diagnostic.
	SeverityInfo Severity = "info"
)

// severities is the authoritative membership set. The validator consults
// only this set; nothing else defines what a severity is.
var severities = map[Severity]struct{}{
	SeverityFatal:   {},
	SeverityError:   {},
	SeverityWarning: {},
	SeverityInfo:    {},
}

// IsValid reports whether s is one of the four defined tokens. Membership
// is exact: no trimming, no case folding.
func (s Severity) IsValid() bool {
	_, ok := severities[s]
	return ok
}

// String returns the wire token.
func (s Severity) String() string {
	return string(s)
}

// IsValidSeverity reports whether v is a valid severity token.
//
// Only string-typed values can be valid. Numbers (including NaN and the
// infinities), booleans, maps, slices, structs, and nil all report false,
// as do strings that differ from a token in case or whitespace. Never
// panics.
func IsValidSeverity(v any) bool {
	switch s := v.(type) {
	case Severity:
		return s.IsValid()
	case string:
		return Severity(s).IsValid()
	default:
		return false
	}
}
