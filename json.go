package fault

import "encoding/json"

// timestampLayout renders timestamps as ISO-8601 UTC with millisecond
// precision, e.g. "2025-08-29T21:42:00.000Z".
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Document is the wire shape for structured errors.
//
// ErrorType and Message are always present. Every other field is omitted
// entirely when unset; an absent field never renders as null. The causal
// link, the legacy cause note, and the stack are intentionally excluded:
// chains may reference internal errors, file paths, or other detail that
// does not belong on the wire.
type Document struct {
	// ErrorType is the kind tag.
	ErrorType string `json:"errorType"`

	// Message is the human-readable description.
	Message string `json:"message"`

	// Code is the machine-readable identifier. Omitted when unset.
	Code string `json:"code,omitempty"`

	// Severity is the stored severity token, valid or not. Omitted when
	// unset.
	Severity Severity `json:"severity,omitempty"`

	// Timestamp is ISO-8601 UTC with milliseconds. Omitted when unset.
	Timestamp string `json:"timestamp,omitempty"`

	// Context is the attached metadata, shared with the error rather than
	// copied. Omitted when empty.
	Context Context `json:"context,omitempty"`
}

// NewDocument flattens err into its wire shape. Reads go through the
// interface, so kinds that override Message keep their formatting.
func NewDocument(err Error) Document {
	doc := Document{
		ErrorType: err.ErrorType(),
		Message:   err.Message(),
		Code:      err.Code(),
		Severity:  err.Severity(),
		Context:   err.Context(),
	}
	if ts := err.Timestamp(); !ts.IsZero() {
		doc.Timestamp = ts.UTC().Format(timestampLayout)
	}
	return doc
}

// MarshalJSON implements json.Marshaler through the Document shape.
// Context values the encoder cannot render (cycles, functions) surface as
// a marshalling error here; the string form omits them instead.
func (e *Base) MarshalJSON() ([]byte, error) {
	return json.Marshal(NewDocument(e))
}

// ToJSON serializes any error. Structured errors render their Document;
// plain errors render a Document carrying only the message, under the
// generic "Error" tag. Returns nil for nil.
func ToJSON(err error) ([]byte, error) {
	if err == nil {
		return nil, nil
	}
	var fe Error
	if As(err, &fe) {
		return json.Marshal(NewDocument(fe))
	}
	return json.Marshal(Document{ErrorType: "Error", Message: err.Error()})
}
