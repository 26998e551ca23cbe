package validation

import (
	"errors"
	"sort"
	"strings"
)

// ErrInvalid is matched by every *Error.
var ErrInvalid = errors.New("validation failed")

// Errors maps a form field to its messages, in the order they were found.
type Errors map[string][]string

// Add appends a message for field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Has reports whether field already failed.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// Err returns nil when no field failed.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return &Error{Fields: e}
}

// Error carries every failed field of one submission.
type Error struct {
	Fields Errors
}

func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

func (e *Error) Is(target error) bool { return target == ErrInvalid }

// FieldsOf extracts the field map from err, nil if err is not a validation error.
func FieldsOf(err error) Errors {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
