package oxml

import (
	"fmt"
	"strings"

	"github.com/jacoelho/oxml/errors"
)

// stringType is the shared behaviour of the string family: identity parse
// and format, string base kind.
type stringType struct {
	name   string
	check  func(name, s string) error
	format func(s string) string
}

// Name returns the schema name of the type.
func (t stringType) Name() string { return t.name }

// FromXML returns raw unchanged.
func (t stringType) FromXML(raw string) (string, error) { return raw, nil }

// Validate checks that value is a string satisfying the type's constraint.
func (t stringType) Validate(value any) error {
	s, err := asString(t.name, value)
	if err != nil {
		return err
	}
	if t.check != nil {
		return t.check(t.name, s)
	}
	return nil
}

// ToXML validates value and returns its attribute text.
func (t stringType) ToXML(value any) (string, error) {
	if err := t.Validate(value); err != nil {
		return "", err
	}
	s, _ := asString(t.name, value)
	if t.format != nil {
		return t.format(s), nil
	}
	return s, nil
}

var (
	// XsdString is xsd:string, any string value.
	XsdString SimpleType[string] = stringType{name: "xsd:string"}

	// HexColorRGB is ST_HexColorRGB, a six digit hexadecimal RGB value such as
	// "3C2F80". Output is uppercased; input case is preserved.
	HexColorRGB SimpleType[string] = stringType{
		name:   "ST_HexColorRGB",
		check:  checkHexColorRGB,
		format: strings.ToUpper,
	}
)

func checkHexColorRGB(name, s string) error {
	if len(s) != 6 {
		return &errors.Validation{
			Code:     string(errors.ErrConstraintViolation),
			Type:     name,
			Message:  "RGB string must be six characters long",
			Actual:   fmt.Sprintf("%q", s),
			Expected: []string{"6 characters"},
		}
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return &errors.Validation{
				Code:    string(errors.ErrConstraintViolation),
				Type:    name,
				Message: "RGB string must be valid hex string",
				Actual:  fmt.Sprintf("%q", s),
			}
		}
	}
	return nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
