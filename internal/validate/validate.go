// Package validate turns candidate payloads into normalized entities, reporting
// every violated constraint at once. It performs no I/O: reference existence is
// checked by the service inside the write transaction.
package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/crucial707/hci-inventory/internal/apperr"
	"github.com/go-playground/validator/v10"
)

const (
	maxNameLen        = 255
	maxDescriptionLen = 1000
)

var v = validator.New(validator.WithRequiredStructEnabled())

// check runs a validator tag chain against a single value and records the
// first failing rule under field.
func check(c *apperr.Collector, field string, value any, tag string) {
	err := v.Var(value, tag)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.Add(field, "is invalid")
		return
	}
	for _, fe := range verrs {
		c.Add(field, reason(fe))
	}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be " + fe.Param() + " characters or less"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "uuid":
		return "must be a valid UUID"
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// oneOf builds a validator oneof tag from an enum value list.
func oneOf[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, s := range vals {
		parts[i] = string(s)
	}
	return "oneof=" + strings.Join(parts, " ")
}

func maxLen(n int) string { return fmt.Sprintf("max=%d", n) }

// ID validates a path or body identifier.
func ID(field, value string) error {
	var c apperr.Collector
	check(&c, field, value, "required,uuid")
	return c.Err()
}

// trimOptional trims s and maps an empty result to nil.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func checkOptionalID(c *apperr.Collector, field string, s *string) {
	if s != nil {
		check(c, field, *s, "uuid")
	}
}

// metadataObject reports whether raw is absent or a JSON object.
func metadataObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return true
	}
	var m map[string]any
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return false
	}
	return m != nil
}

func noFields() error {
	return apperr.Invalid("_root", "at least one field must be provided")
}
