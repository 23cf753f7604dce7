package fault

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Problem is an RFC 7807 problem document.
//
// Extensions carry the structured error surface (code, severity,
// timestamp, context) without widening the five standard members;
// MarshalJSON folds them into the top-level object.
type Problem struct {
	Type       string         `json:"type,omitempty"`
	Title      string         `json:"title,omitempty"`
	Status     int            `json:"status,omitempty"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Extensions map[string]any `json:"-"`
}

// ProblemOption configures a Problem.
type ProblemOption func(*Problem)

// WithProblemType sets the type URI.
func WithProblemType(uri string) ProblemOption {
	return func(p *Problem) { p.Type = uri }
}

// WithStatus sets the HTTP status member.
func WithStatus(status int) ProblemOption {
	return func(p *Problem) { p.Status = status }
}

// WithInstance overrides the generated instance URI.
func WithInstance(uri string) ProblemOption {
	return func(p *Problem) { p.Instance = uri }
}

// WithExtension adds an extension member.
func WithExtension(key string, value any) ProblemOption {
	return func(p *Problem) {
		if p.Extensions == nil {
			p.Extensions = make(map[string]any)
		}
		p.Extensions[key] = value
	}
}

// NewProblem renders err as a problem document. Structured errors
// contribute their kind tag as the title, their message as the detail, and
// code, severity, timestamp, and context as extension members. Every
// problem receives a fresh urn:uuid instance so separate occurrences stay
// distinguishable. Returns nil for nil.
func NewProblem(err error, opts ...ProblemOption) *Problem {
	if err == nil {
		return nil
	}

	p := &Problem{
		Type:       "about:blank",
		Title:      "Error",
		Detail:     err.Error(),
		Instance:   "urn:uuid:" + uuid.NewString(),
		Extensions: make(map[string]any),
	}

	var fe Error
	if As(err, &fe) {
		p.Title = fe.ErrorType()
		p.Detail = fe.Message()
		if code := fe.Code(); code != "" {
			p.Extensions["code"] = code
		}
		if sev := fe.Severity(); sev != "" {
			p.Extensions["severity"] = sev
		}
		if ts := fe.Timestamp(); !ts.IsZero() {
			p.Extensions["timestamp"] = ts.UTC().Format(timestampLayout)
		}
		if ctx := fe.Context(); len(ctx) > 0 {
			p.Extensions["context"] = ctx
		}
	}

	for _, apply := range opts {
		apply(p)
	}
	return p
}

// MarshalJSON folds Extensions into the top-level object.
func (p *Problem) MarshalJSON() ([]byte, error) {
	type alias Problem

	base, err := json.Marshal((*alias)(p))
	if err != nil {
		return nil, err
	}
	merged := make(map[string]any)
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range p.Extensions {
		merged[k] = v
	}
	return json.Marshal(merged)
}
