package fault

import "reflect"

// Chain returns a new error of the exact same concrete type as err, with
// every field carried over and the causal link set to cause. The original
// is left untouched.
//
// The copy is shallow: the context map is shared by reference, matching
// the entity's context contract. The stack is recaptured so the new
// instance records where the chaining happened.
//
// cause may be anything: another Error, a plain error, a string, a map,
// nil, or err itself. The value is stored verbatim, never rejected and
// never normalized. Cyclic chains are permitted and never detected;
// traversal safety belongs to the caller. Each instance keeps only its own
// causal link, so chaining any number of times builds a linked sequence of
// instances, not an accumulated list on one.
//
// Example:
//
//	invalid := fault.NewValidation("email", "malformed address")
//	chained := fault.Chain(invalid, io.ErrUnexpectedEOF)
//	// chained is a *ValidationError; invalid.Cause() is still nil
func Chain[E any, P interface {
	*E
	Error
}](err P, cause any) P {
	if err == nil {
		var zero P
		return zero
	}
	copied := *err
	next := P(&copied)
	next.relink(cause)
	return next
}

// ChainAny is the dynamic form of Chain for call sites holding an Error
// interface value. The concrete type is recovered through reflection, so
// the result's runtime type equals the input's and accessor overrides
// survive. Returns nil for nil.
func ChainAny(err Error, cause any) Error {
	if err == nil {
		return nil
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		// Error implementations are pointer-backed; a nil pointer cannot
		// be rebuilt and is returned as stored.
		return err
	}
	copied := reflect.New(rv.Type().Elem())
	copied.Elem().Set(rv.Elem())
	next := copied.Interface().(Error)
	next.relink(cause)
	return next
}
