package fault

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Options is the structured bag accepted at construction. Every field is
// independently optional; the zero value means unset, and unset fields
// stay unset on the entity (nothing is defaulted).
type Options struct {
	// Code is a machine-readable identifier.
	Code string `mapstructure:"code"`

	// Severity is stored verbatim, valid or not.
	Severity Severity `mapstructure:"severity"`

	// Timestamp marks when the condition occurred.
	Timestamp time.Time `mapstructure:"timestamp"`

	// Context is attached by reference, never copied.
	Context Context `mapstructure:"context"`

	// Cause is the legacy string note slot kept for compatibility with
	// older call sites. It is unrelated to the causal link set by Chain
	// and never appears in serialized output.
	Cause string `mapstructure:"cause"`
}

// Option mutates an Options during construction.
type Option func(*Options)

// WithCode sets the machine-readable identifier.
func WithCode(code string) Option {
	return func(o *Options) { o.Code = code }
}

// WithSeverity sets the severity. The value is stored verbatim; callers
// wanting validation use IsValidSeverity first.
func WithSeverity(s Severity) Option {
	return func(o *Options) { o.Severity = s }
}

// WithTimestamp sets the timestamp.
func WithTimestamp(ts time.Time) Option {
	return func(o *Options) { o.Timestamp = ts }
}

// WithContext attaches a context map by reference.
func WithContext(ctx Context) Option {
	return func(o *Options) { o.Context = ctx }
}

// WithCauseNote sets the legacy cause note.
func WithCauseNote(note string) Option {
	return func(o *Options) { o.Cause = note }
}

// optionKeys are the recognized structured-bag keys. A dynamic map
// carrying at least one of them is decoded as Options; otherwise the
// whole map is treated as a bare context.
var optionKeys = map[string]struct{}{
	"code":      {},
	"severity":  {},
	"timestamp": {},
	"context":   {},
	"cause":     {},
}

// NormalizeOptions converts a loosely shaped options value into Options.
//
// Accepted shapes:
//   - nil: zero Options.
//   - Options or *Options: passed through (nil pointer yields zero).
//   - a string-keyed map containing at least one recognized key ("code",
//     "severity", "timestamp", "context", "cause"): decoded as a
//     structured bag. Extraction is per field; a field that fails to
//     decode stays unset while the rest of the bag still applies. A
//     "context" entry keeps its map identity.
//   - any other string-keyed map: the whole map becomes the Context.
//     Context and map[string]any keep their identity; other map types
//     (map[string]string and friends) are converted entry by entry, since
//     identity cannot survive the type change.
//   - anything else: zero Options.
//
// The recognized-key check is the documented compatibility trade-off: a
// bare context that legitimately uses one of the five reserved keys is
// read as a structured bag. Call sites wanting no ambiguity use New with
// functional options or NewWithContext.
//
// NormalizeOptions never panics and never returns an error.
func NormalizeOptions(v any) Options {
	switch val := v.(type) {
	case nil:
		return Options{}
	case Options:
		return val
	case *Options:
		if val == nil {
			return Options{}
		}
		return *val
	case Context:
		return normalizeMap(val)
	case map[string]any:
		return normalizeMap(val)
	}
	if m := stringKeyedMap(v); m != nil {
		return normalizeMap(m)
	}
	return Options{}
}

// stringKeyedMap converts any string-keyed map into a map[string]any, or
// returns nil when v is not one.
func stringKeyedMap(v any) map[string]any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m
}

func normalizeMap(m map[string]any) Options {
	structured := false
	for k := range m {
		if _, ok := optionKeys[k]; ok {
			structured = true
			break
		}
	}
	if !structured {
		return Options{Context: m}
	}

	var opts Options
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &opts,
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err == nil {
		// A decode error means some field held an incompatible value;
		// that field stays unset and the rest of the bag still applies.
		_ = decoder.Decode(m)
	}
	if ctx := contextValue(m["context"]); ctx != nil {
		// The decoder rebuilds maps entry by entry; restore the original
		// so context identity survives normalization.
		opts.Context = ctx
	}
	return opts
}

// contextValue recovers the caller's map when its type allows sharing.
func contextValue(v any) Context {
	switch ctx := v.(type) {
	case Context:
		return ctx
	case map[string]any:
		return ctx
	}
	return nil
}
