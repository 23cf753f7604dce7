package fault

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target. This is a
// convenience wrapper around the standard library errors.Is.
//
// Example:
//
//	var ErrQuotaExceeded = fault.New("QuotaError", "quota exceeded")
//	if fault.Is(err, ErrQuotaExceeded) {
//	    // Handle quota case
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target. This is a
// convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var verr *fault.ValidationError
//	if fault.As(err, &verr) {
//	    field := verr.Field
//	}
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// TypeOf extracts the kind tag from the outermost structured error in the
// chain. Returns "" if err is nil or no structured error is present.
func TypeOf(err error) string {
	if err == nil {
		return ""
	}
	var fe Error
	if stderrors.As(err, &fe) {
		return fe.ErrorType()
	}
	return ""
}

// CodeOf extracts the code from the outermost structured error in the
// chain. Returns "" if err is nil, no structured error is present, or the
// code is unset.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	var fe Error
	if stderrors.As(err, &fe) {
		return fe.Code()
	}
	return ""
}

// SeverityOf extracts the severity from the outermost structured error in
// the chain. Nil and foreign errors report SeverityError, the conservative
// default for unclassified failures; a structured error's severity is
// returned verbatim, even when unset.
func SeverityOf(err error) Severity {
	if err == nil {
		return SeverityError
	}
	var fe Error
	if stderrors.As(err, &fe) {
		return fe.Severity()
	}
	return SeverityError
}
