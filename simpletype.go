package oxml

import (
	"fmt"
	"math"
	"reflect"

	"github.com/jacoelho/oxml/errors"
	"github.com/jacoelho/oxml/internal/num"
)

// SimpleType is the contract every simple type converter satisfies.
// T is the Go type FromXML produces.
type SimpleType[T any] interface {
	// Name returns the schema name of the simple type.
	Name() string
	// FromXML parses an attribute value. The result is not range checked.
	FromXML(raw string) (T, error)
	// ToXML validates value and formats it as attribute text.
	ToXML(value any) (string, error)
	// Validate checks value's base kind and value space.
	Validate(value any) error
}

func typeMismatch(typeName, want string, value any) error {
	return &errors.Validation{
		Code:    string(errors.ErrTypeMismatch),
		Type:    typeName,
		Message: "value must be " + want,
		Actual:  describeKind(value),
	}
}

func describeKind(value any) string {
	if value == nil {
		return "<nil>"
	}
	return reflect.TypeOf(value).String()
}

// asString reports the string held by value when its kind is string.
func asString(typeName string, value any) (string, error) {
	if value != nil {
		if rv := reflect.ValueOf(value); rv.Kind() == reflect.String {
			return rv.String(), nil
		}
	}
	return "", typeMismatch(typeName, "a string", value)
}

// asInt reports the integer held by value when its kind is a Go integer.
func asInt(typeName string, value any) (int64, error) {
	if value == nil {
		return 0, typeMismatch(typeName, "an integer", value)
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, &errors.Validation{
				Code:    string(errors.ErrConstraintViolation),
				Type:    typeName,
				Message: "value exceeds the integer value space",
				Actual:  fmt.Sprintf("%d", u),
			}
		}
		return int64(u), nil
	default:
		return 0, typeMismatch(typeName, "an integer", value)
	}
}

func parseFailure(typeName, what, raw string, err *num.ParseError) error {
	return &errors.Validation{
		Code:    string(errors.ErrConstraintViolation),
		Type:    typeName,
		Message: "invalid " + what + " literal",
		Actual:  fmt.Sprintf("%q", raw),
		Err:     err,
	}
}
