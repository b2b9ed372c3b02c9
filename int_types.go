package oxml

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jacoelho/oxml/errors"
	"github.com/jacoelho/oxml/internal/num"
)

// intRange is an inclusive bound on an integer value space.
type intRange struct {
	min, max int64
}

// intType is the shared behaviour of the integer family: decimal parse and
// format, integer base kind, optional inclusive range.
type intType struct {
	name  string
	rng   *intRange
	parse func(name, raw string) (int64, error)
}

// Name returns the schema name of the type.
func (t intType) Name() string { return t.name }

// FromXML parses raw as decimal integer text.
func (t intType) FromXML(raw string) (int64, error) {
	if t.parse != nil {
		return t.parse(t.name, raw)
	}
	return parseDecimal(t.name, raw)
}

// Validate checks that value is an integer inside the type's range.
func (t intType) Validate(value any) error {
	_, err := t.checked(value)
	return err
}

// ToXML validates value and formats it as decimal text.
func (t intType) ToXML(value any) (string, error) {
	n, err := t.checked(value)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n, 10), nil
}

func (t intType) checked(value any) (int64, error) {
	n, err := asInt(t.name, value)
	if err != nil {
		return 0, err
	}
	if t.rng != nil && (n < t.rng.min || n > t.rng.max) {
		return 0, &errors.Validation{
			Code:     string(errors.ErrConstraintViolation),
			Type:     t.name,
			Message:  fmt.Sprintf("value must be in range %d to %d inclusive", t.rng.min, t.rng.max),
			Actual:   strconv.FormatInt(n, 10),
			Expected: []string{strconv.FormatInt(t.rng.min, 10), strconv.FormatInt(t.rng.max, 10)},
		}
	}
	return n, nil
}

func parseDecimal(name, raw string) (int64, error) {
	n, perr := num.ParseInt(raw)
	if perr != nil {
		return 0, parseFailure(name, "integer", raw, perr)
	}
	return n, nil
}

// parsePercentage accepts either bare integer text in thousandths of a
// percent, or float text with a '%' suffix which is scaled by 1000 and
// rounded half to even.
func parsePercentage(name, raw string) (int64, error) {
	if !strings.Contains(raw, "%") {
		return parseDecimal(name, raw)
	}
	lexical := num.TrimXMLWhitespace(raw)
	lexical = strings.TrimSuffix(lexical, "%")
	f, perr := num.ParseFloat(lexical)
	if perr != nil {
		return 0, parseFailure(name, "percentage", raw, perr)
	}
	scaled := math.RoundToEven(f * 1000)
	if scaled < math.MinInt64 || scaled >= math.MaxInt64 {
		return 0, parseFailure(name, "percentage", raw, &num.ParseError{Kind: num.ParseOverflow})
	}
	return int64(scaled), nil
}

// emuType is an integer-family type whose parsed values are lengths in EMU.
type emuType struct {
	intType
}

// FromXML parses raw as decimal text and tags it as an Emu length.
func (t emuType) FromXML(raw string) (Emu, error) {
	n, err := t.intType.FromXML(raw)
	if err != nil {
		return 0, err
	}
	return Emu(n), nil
}

const (
	// MinSlideSize is the smallest slide dimension, one inch.
	MinSlideSize Emu = 914400
	// MaxSlideSize is the largest slide dimension, 56 inches.
	MaxSlideSize Emu = 51206400
)

var (
	// XsdUnsignedInt is xsd:unsignedInt, 0 to 4294967295 inclusive.
	XsdUnsignedInt SimpleType[int64] = intType{
		name: "xsd:unsignedInt",
		rng:  &intRange{min: 0, max: math.MaxUint32},
	}

	// Coordinate32 is ST_Coordinate32. Any integer is accepted.
	Coordinate32 SimpleType[int64] = intType{name: "ST_Coordinate32"}

	// Percentage is ST_Percentage, in thousandths of a percent: "50000" and
	// "50%" both parse to 50000.
	Percentage SimpleType[int64] = intType{name: "ST_Percentage", parse: parsePercentage}

	// SlideID is ST_SlideId, 256 to 2147483647 inclusive.
	SlideID SimpleType[int64] = intType{
		name: "ST_SlideId",
		rng:  &intRange{min: 256, max: math.MaxInt32},
	}

	// SlideSizeCoordinate is ST_SlideSizeCoordinate, a slide dimension in EMU
	// between 1 and 56 inches inclusive.
	SlideSizeCoordinate SimpleType[Emu] = emuType{intType{
		name: "ST_SlideSizeCoordinate",
		rng:  &intRange{min: int64(MinSlideSize), max: int64(MaxSlideSize)},
	}}
)
