package oxml

import (
	"reflect"
	"slices"
)

// Kind is the base kind of a simple type family.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInteger
)

// String returns a stable label for the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	default:
		return "unknown"
	}
}

// Converter is the untyped view of a SimpleType, for callers that select the
// simple type by schema name at runtime.
type Converter interface {
	Name() string
	// Kind reports whether the type belongs to the string or integer family.
	Kind() Kind
	// FromXMLValue parses raw and returns the typed value as any.
	FromXMLValue(raw string) (any, error)
	ToXML(value any) (string, error)
	Validate(value any) error
}

type converter[T any] struct {
	SimpleType[T]
}

func (c converter[T]) Kind() Kind {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.String:
		return KindString
	case reflect.Int64:
		return KindInteger
	default:
		return 0
	}
}

func (c converter[T]) FromXMLValue(raw string) (any, error) {
	v, err := c.FromXML(raw)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Untyped returns the Converter view of st.
func Untyped[T any](st SimpleType[T]) Converter {
	return converter[T]{st}
}

var registry = func() map[string]Converter {
	all := []Converter{
		Untyped(XsdString),
		Untyped(XsdUnsignedInt),
		Untyped(Coordinate32),
		Untyped(HexColorRGB),
		Untyped(Percentage),
		Untyped(SlideID),
		Untyped(SlideSizeCoordinate),
	}
	m := make(map[string]Converter, len(all))
	for _, c := range all {
		m[c.Name()] = c
	}
	return m
}()

// Lookup returns the converter registered under a schema name such as
// "xsd:unsignedInt" or "ST_SlideId".
func Lookup(name string) (Converter, bool) {
	c, ok := registry[name]
	return c, ok
}

// Names returns the registered schema names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
