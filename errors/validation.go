package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies the kind of a simple type failure.
type ErrorCode string

const (
	// ErrTypeMismatch indicates the value is not of the simple type's base kind.
	ErrTypeMismatch ErrorCode = "oxml-type-mismatch"
	// ErrConstraintViolation indicates the value has the right kind but is outside
	// the allowed value space, or its lexical form could not be parsed.
	ErrConstraintViolation ErrorCode = "oxml-constraint-violation"
	// ErrRequiredAttributeMissing indicates a required attribute was not present.
	ErrRequiredAttributeMissing ErrorCode = "oxml-required-attribute-missing"
)

// Validation describes a simple type failure with its code, the simple type
// name, and optional actual/expected context.
//
//nolint:errname // public API name mirrors the schema term.
type Validation struct {
	Err      error
	Code     string
	Type     string
	Message  string
	Actual   string
	Expected []string
}

// Error formats the validation for display, including code, type, and context.
func (v *Validation) Error() string {
	if v == nil {
		return "validation <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", v.Code, v.Message))
	if v.Type != "" {
		b.WriteString(fmt.Sprintf(" for %s", v.Type))
	}
	if len(v.Expected) > 0 {
		b.WriteString(fmt.Sprintf(" (expected: %s)", strings.Join(v.Expected, ", ")))
	}
	if v.Actual != "" {
		b.WriteString(fmt.Sprintf(" (actual: %s)", v.Actual))
	}
	if v.Err != nil {
		b.WriteString(": ")
		b.WriteString(v.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause, if any.
func (v *Validation) Unwrap() error {
	if v == nil {
		return nil
	}
	return v.Err
}

// NewValidation builds a Validation for the named simple type.
func NewValidation(code ErrorCode, typeName, msg string) *Validation {
	return &Validation{Code: string(code), Type: typeName, Message: msg}
}

// NewValidationf formats a message and builds a Validation.
func NewValidationf(code ErrorCode, typeName, format string, args ...any) *Validation {
	return NewValidation(code, typeName, fmt.Sprintf(format, args...))
}

// AsValidation extracts the first Validation in err's chain.
func AsValidation(err error) (*Validation, bool) {
	if err == nil {
		return nil, false
	}
	var v *Validation
	if errors.As(err, &v) && v != nil {
		return v, true
	}
	return nil, false
}

// Is reports whether err carries a Validation with the given code.
func Is(err error, code ErrorCode) bool {
	v, ok := AsValidation(err)
	return ok && v.Code == string(code)
}
