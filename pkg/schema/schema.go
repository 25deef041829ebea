// Package schema declares the management screens: which fields an entity
// exposes, how drafts are seeded and validated, and how list/item bodies
// decode. One generic controller + workflow pair consumes these; nothing
// per-entity exists outside this package.
package schema

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lexhub-io/lexadmin/pkg/types/v1"
)

type FieldType string

const (
	FieldText    FieldType = "text"
	FieldDate    FieldType = "date"
	FieldNumber  FieldType = "number"
	FieldDecimal FieldType = "decimal"
	FieldSelect  FieldType = "select"
	FieldBool    FieldType = "bool"
)

type Option struct {
	Label string
	Value string
}

type Field struct {
	Key      string
	Label    string
	Type     FieldType
	Required bool
	Default  string
	Options  []Option

	// Numeric bounds, inclusive. Nil means unbounded.
	Min *int
	Max *int

	Placeholder string
}

// NextOption cycles forward through a select field's options, wrapping at
// the end. Unknown current values land on the first option.
func (f *Field) NextOption(current string) string {
	if len(f.Options) == 0 {
		return current
	}
	for i, o := range f.Options {
		if o.Value == current {
			return f.Options[(i+1)%len(f.Options)].Value
		}
	}
	return f.Options[0].Value
}

// Filter is a list-level constraint the screen offers, serialized straight
// into the query string under Key.
type Filter struct {
	Key     string
	Label   string
	Options []Option
}

type Schema struct {
	// Resource is the plural slug and the key of the list envelope, e.g.
	// "banks" in {"banks": [...], "total": n, "total_pages": m}.
	Resource string
	Singular string
	Title    string
	Icon     string

	// Path is the collection endpoint; StatsPath, when set, feeds the
	// analytics cards.
	Path      string
	StatsPath string

	Fields  []Field
	Filters []Filter

	ParseList func([]byte) ([]v1.Record, v1.ListMeta, error)
	ParseItem func([]byte) (v1.Record, error)
}

func (s *Schema) Field(key string) *Field {
	for i := range s.Fields {
		if s.Fields[i].Key == key {
			return &s.Fields[i]
		}
	}
	return nil
}

// NewDraft seeds a create-mode draft: every field at its declared default,
// otherwise empty string (bools default to "false").
func (s *Schema) NewDraft() map[string]string {
	draft := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		switch {
		case f.Default != "":
			draft[f.Key] = f.Default
		case f.Type == FieldBool:
			draft[f.Key] = "false"
		default:
			draft[f.Key] = ""
		}
	}
	return draft
}

// DraftFrom seeds an edit-mode draft from a selected record. Records
// already normalize their own fields (dates to YYYY-MM-DD, nulls to empty
// strings); fields the record does not carry fall back to empty.
func (s *Schema) DraftFrom(rec v1.Record) map[string]string {
	fields := rec.Fields()
	draft := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		draft[f.Key] = fields[f.Key]
	}
	return draft
}

// ValidationError is a client-side rejection; it never reaches the network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate applies the declared required/type/range checks to a draft.
// The first failure wins; the caller surfaces it and suppresses the call.
func (s *Schema) Validate(draft map[string]string) error {
	for _, f := range s.Fields {
		value := draft[f.Key]
		if value == "" {
			if f.Required {
				return &ValidationError{Field: f.Key, Message: fmt.Sprintf("%s is required", f.Label)}
			}
			continue
		}

		switch f.Type {
		case FieldNumber:
			n, err := strconv.Atoi(value)
			if err != nil {
				return &ValidationError{Field: f.Key, Message: fmt.Sprintf("%s must be a number", f.Label)}
			}
			if f.Min != nil && n < *f.Min {
				return &ValidationError{Field: f.Key, Message: fmt.Sprintf("%s must be at least %d", f.Label, *f.Min)}
			}
			if f.Max != nil && n > *f.Max {
				return &ValidationError{Field: f.Key, Message: fmt.Sprintf("%s must be at most %d", f.Label, *f.Max)}
			}
		case FieldDecimal:
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return &ValidationError{Field: f.Key, Message: fmt.Sprintf("%s must be a number", f.Label)}
			}
			if f.Min != nil && n < float64(*f.Min) {
				return &ValidationError{Field: f.Key, Message: fmt.Sprintf("%s must be at least %d", f.Label, *f.Min)}
			}
			if f.Max != nil && n > float64(*f.Max) {
				return &ValidationError{Field: f.Key, Message: fmt.Sprintf("%s must be at most %d", f.Label, *f.Max)}
			}
		case FieldDate:
			if _, err := time.Parse("2006-01-02", value); err != nil {
				return &ValidationError{Field: f.Key, Message: fmt.Sprintf("%s must be a date (YYYY-MM-DD)", f.Label)}
			}
		case FieldBool:
			if value != "true" && value != "false" {
				return &ValidationError{Field: f.Key, Message: fmt.Sprintf("%s must be true or false", f.Label)}
			}
		case FieldSelect:
			if len(f.Options) > 0 && !hasOption(f.Options, value) {
				return &ValidationError{Field: f.Key, Message: fmt.Sprintf("%s has no option %q", f.Label, value)}
			}
		}
	}
	return nil
}

// Body coerces a validated draft into the JSON body the platform expects:
// numbers as numbers, bools as bools, everything else as strings. Empty
// optional fields are omitted entirely.
func (s *Schema) Body(draft map[string]string) (map[string]interface{}, error) {
	if err := s.Validate(draft); err != nil {
		return nil, err
	}

	body := make(map[string]interface{}, len(s.Fields))
	for _, f := range s.Fields {
		value := draft[f.Key]
		if value == "" {
			continue
		}
		switch f.Type {
		case FieldNumber:
			n, _ := strconv.Atoi(value)
			body[f.Key] = n
		case FieldDecimal:
			n, _ := strconv.ParseFloat(value, 64)
			body[f.Key] = n
		case FieldBool:
			body[f.Key] = value == "true"
		default:
			body[f.Key] = value
		}
	}
	return body, nil
}

func hasOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}
