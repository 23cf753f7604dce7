// Package fault provides a structured error representation shared by
// independently authored error kinds.
//
// The package standardizes four pieces of bookkeeping that error types
// otherwise reimplement: a kind tag, an optional code/severity/timestamp
// triple, an attached context map, and a causal link to the failure that
// produced the error. Concrete kinds embed Base and get construction,
// accessors, serialization, and non-mutating chaining for free. It remains
// fully compatible with the standard library (errors.Is, errors.As,
// errors.Unwrap).
//
// # Features
//
//   - Kind tags and machine-readable codes for consistent identification
//   - A closed, wire-stable severity vocabulary with an opt-in validator
//   - Context metadata attached by reference, never copied
//   - Non-mutating Chain producing a causally linked copy of the same
//     concrete type
//   - Stable string and JSON forms with absent fields omitted, never null
//   - Stack captures that degrade to "" instead of failing
//   - A definition registry with a YAML loader, RFC 7807 rendering, and
//     log/slog support
//
// # Design Principles
//
//   - Construction never fails: malformed options degrade to unset fields
//   - Validation is explicit: severities and contexts are stored verbatim
//     and checked only when the caller asks
//   - Copies are shallow and contexts are shared; mutation visibility is
//     part of the contract
//   - Chains are permissive: any value can be a cause, cycles included,
//     and nothing in this package tries to detect them
//
// # Quick Start
//
// Creating errors:
//
//	// Tag and message only
//	err := fault.New("DatabaseError", "connection refused")
//
//	// With options
//	err := fault.New("DatabaseError", "connection refused",
//	    fault.WithCode("DB_CONN"),
//	    fault.WithSeverity(fault.SeverityError),
//	    fault.WithContext(fault.Context{"host": "db-1"}))
//
// Chaining a lower-level failure:
//
//	result, ioErr := store.Get(key)
//	if ioErr != nil {
//	    return fault.Chain(errLookupFailed, ioErr)
//	}
//
// Chain returns a new instance of the same concrete type with the causal
// link set; the original error is untouched. The link is reachable through
// Cause and, when it is an error, through Unwrap.
//
// Serializing:
//
//	err.Error()               // DatabaseError: connection refused {"host":"db-1"}
//	data, _ := json.Marshal(err) // {"errorType":"DatabaseError","message":...}
//
// Validating severities:
//
//	if !fault.IsValidSeverity(input) {
//	    // reject
//	}
//
// # The Options Heuristic
//
// NewWithOptions accepts the historical loosely shaped third argument: a
// structured bag or a bare context map. A map carrying at least one of the
// recognized keys (code, severity, timestamp, context, cause) is read as a
// structured bag; any other map becomes the context wholesale. A bare
// context that legitimately uses a recognized key is therefore
// misinterpreted; that ambiguity is inherent to the compatibility path.
// New with functional options and NewWithContext are the explicit,
// ambiguity-free forms.
//
// # Context Sharing
//
// Contexts are attached, returned, and copied across Chain by reference.
// Mutating a map after attaching it changes what every error holding that
// map reports. Callers needing isolation copy before attaching; nothing in
// this package clones a context.
//
// # Chaining and Cycles
//
// A cause may be another structured error, a plain error, a string, a map,
// nil, or the error itself. Values are stored verbatim. Each instance
// holds only its own link, so long chains are sequences of instances, and
// cyclic chains are representable. Traversal (errors.Is, manual walks) is
// the caller's responsibility in the cyclic case.
//
// # Definition Registry
//
// Services that share an error vocabulary register Definitions (code,
// kind tag, severity, default message) and construct occurrences by code:
//
//	reg := fault.NewRegistry()
//	_ = reg.LoadYAMLFile("errors.yaml")
//	err, _ := reg.New("DB_CONN", fault.WithContext(fault.Context{"host": host}))
//
// The registry is also the opt-in validation surface: definitions with
// invalid severities or duplicate codes are rejected at registration.
//
// # RFC 7807 and Logging
//
// NewProblem renders any error as an RFC 7807 problem document, carrying
// code, severity, timestamp, and context as extension members. Base
// implements slog.LogValuer, and Severity.Level maps the vocabulary onto
// slog levels, so errors log as structured groups under any handler. The
// package itself never logs.
//
// # Standard Library Compatibility
//
// Errors constructed here work with errors.Is, errors.As, and
// errors.Unwrap. The package re-exports Is and As so call sites need a
// single import, and TypeOf, CodeOf, and SeverityOf extract fields from
// mixed chains.
package fault
