// Package apperr defines the error taxonomy shared by the service and HTTP layers.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies a failure by what the caller has to do about it.
type Kind int

const (
	// KindInternal is an unexpected fault; never produced for business conditions.
	KindInternal Kind = iota
	// KindValidation means the request is missing, malformed or out of range.
	KindValidation
	// KindNotFound means a referenced entity, grant or relation does not exist.
	KindNotFound
	// KindConflict is a uniqueness violation or a delete blocked by dependent records.
	KindConflict
	// KindUnavailable means the store could not complete; the whole request may be retried.
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// FieldError names one violated constraint.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error is the structured error returned by the core.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		if e.Err != nil {
			return e.Message + ": " + e.Err.Error()
		}
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

func (e *Error) Unwrap() error { return e.Err }

// Details groups field reasons by field name, in the order they were found.
func (e *Error) Details() map[string][]string {
	if len(e.Fields) == 0 {
		return nil
	}
	out := make(map[string][]string, len(e.Fields))
	for _, f := range e.Fields {
		out[f.Field] = append(out[f.Field], f.Reason)
	}
	return out
}

// Validation returns a validation error listing every field error.
func Validation(fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

// Invalid is shorthand for a single-field validation error.
func Invalid(field, reason string) *Error {
	return Validation(FieldError{Field: field, Reason: reason})
}

// NotFound reports a missing resource, e.g. NotFound("Company").
func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Unavailable wraps a store failure. The message never carries driver detail.
func Unavailable(err error) *Error {
	return &Error{Kind: KindUnavailable, Message: "store unavailable", Err: err}
}

// KindOf returns the Kind of err, or KindInternal if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err is an *Error of kind k.
func Is(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}

// Collector accumulates field errors across several checks.
type Collector struct {
	fields []FieldError
}

func (c *Collector) Add(field, reason string) {
	c.fields = append(c.fields, FieldError{Field: field, Reason: reason})
}

// Merge appends the field errors of err when it is a validation error.
// Other errors are ignored; callers check them separately.
func (c *Collector) Merge(err error) {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindValidation {
		c.fields = append(c.fields, e.Fields...)
	}
}

func (c *Collector) Empty() bool { return len(c.fields) == 0 }

// Err returns nil when nothing was collected.
func (c *Collector) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return Validation(c.fields...)
}

// SortedFields returns the field names of e in lexical order.
func (e *Error) SortedFields() []string {
	seen := make(map[string]bool)
	var names []string
	for _, f := range e.Fields {
		if !seen[f.Field] {
			seen[f.Field] = true
			names = append(names, f.Field)
		}
	}
	sort.Strings(names)
	return names
}
