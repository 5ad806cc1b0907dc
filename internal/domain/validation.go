package domain

import (
	"fmt"
	"strings"
)

// FieldError describes a single failed validation on a named form field.
type FieldError struct {
	Field   string // Form field the error is scoped to
	Message string // Human-readable reason, shown next to the field
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates the field errors of one submission. Validators
// are applied independently per field and never short-circuit across fields,
// so a submission can carry several field errors at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Error())
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// ByField returns the first error message recorded for the given field,
// or the empty string if the field validated cleanly.
func (e *ValidationError) ByField(field string) string {
	for _, fe := range e.Fields {
		if fe.Field == field {
			return fe.Message
		}
	}

	return ""
}
