package fault

import (
	"fmt"
	"reflect"
)

// Context carries auxiliary diagnostic data on an error.
//
// Context is an open map: no schema, no value constraints. Errors hold
// their context by reference and never copy it, so a caller that mutates a
// map after attaching it changes what the error reports. That sharing is
// the contract, not an accident; callers needing isolation copy before
// attaching.
type Context map[string]any

// Set stores value under key and returns the context for call chaining. A
// nil receiver allocates a fresh map, so callers must keep the return value.
func (c Context) Set(key string, value any) Context {
	if c == nil {
		c = make(Context)
	}
	c[key] = value
	return c
}

// Get returns the value stored under key, or nil.
func (c Context) Get(key string) any {
	return c[key]
}

// GetString returns the string stored under key, or "" when the key is
// absent or holds a non-string.
func (c Context) GetString(key string) string {
	s, _ := c[key].(string)
	return s
}

// Merge copies every entry of other into c, overwriting existing keys, and
// returns c. A nil receiver allocates a fresh map, so callers must keep the
// return value.
func (c Context) Merge(other Context) Context {
	if c == nil {
		c = make(Context, len(other))
	}
	for k, v := range other {
		c[k] = v
	}
	return c
}

// ValidateContext reports whether v can serve as an error context.
//
// nil and any string-keyed map pass. Everything else yields a descriptive
// InvalidContextError. Constructors never call this: like severity
// validation, context validation is an explicit caller opt-in.
func ValidateContext(v any) error {
	switch v.(type) {
	case nil, Context, map[string]any:
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		return nil
	}
	return New(TypeInvalidContext,
		fmt.Sprintf("context must be a string-keyed map, got %T", v),
		WithSeverity(SeverityError))
}
