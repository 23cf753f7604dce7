package fault

import (
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Definition is a reusable error template: a stable code bound to a kind
// tag, a severity, and a default message.
type Definition struct {
	ErrorType string   `yaml:"errorType"`
	Code      string   `yaml:"code"`
	Severity  Severity `yaml:"severity"`
	Message   string   `yaml:"message"`
}

// Registry holds definitions keyed by code, letting services construct
// consistent errors from a shared vocabulary. Unlike the error entity, a
// registry is shared infrastructure and locks around its map.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Register adds a definition. The code must be non-empty and unused, and
// the severity must be a valid token. Constructors never validate; the
// registry is the package's opt-in validation surface, so malformed
// definitions are rejected here instead.
func (r *Registry) Register(def Definition) error {
	if def.Code == "" {
		return New(TypeRegistry, "definition code must not be empty")
	}
	if !def.Severity.IsValid() {
		return Newf(TypeRegistry, "definition %s has invalid severity %q", def.Code, def.Severity)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[def.Code]; exists {
		return Newf(TypeRegistry, "definition %s already registered", def.Code)
	}
	r.defs[def.Code] = def
	return nil
}

// MustRegister panics when Register rejects the definition. Intended for
// package-level vocabularies assembled at init time.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Lookup returns the definition registered under code.
func (r *Registry) Lookup(code string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[code]
	return def, ok
}

// New constructs an error from the definition registered under code.
// Options apply on top of the definition, so call sites can attach a
// context or a timestamp per occurrence. Unknown codes yield an
// UnknownCodeError.
func (r *Registry) New(code string, opts ...Option) (*Base, error) {
	def, ok := r.Lookup(code)
	if !ok {
		return nil, Newf(TypeUnknownCode, "no definition registered for code %s", code)
	}
	combined := append([]Option{WithCode(def.Code), WithSeverity(def.Severity)}, opts...)
	return New(def.ErrorType, def.Message, combined...), nil
}

// LoadYAML registers every definition in data, a YAML list of definitions.
// Registration stops at the first rejected definition.
func (r *Registry) LoadYAML(data []byte) error {
	var defs []Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return Chain(New(TypeRegistry, "parsing definitions"), err)
	}
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// LoadYAMLFile reads path and registers the definitions it contains.
func (r *Registry) LoadYAMLFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return Chain(Newf(TypeRegistry, "reading definitions from %s", path), err)
	}
	return r.LoadYAML(data)
}
