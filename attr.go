package oxml

import (
	"encoding/xml"
	"fmt"

	"github.com/jacoelho/oxml/errors"
)

// MarshalAttr validates v with st and returns it as an attribute named name.
func MarshalAttr[T any](st SimpleType[T], name xml.Name, v any) (xml.Attr, error) {
	s, err := st.ToXML(v)
	if err != nil {
		return xml.Attr{}, fmt.Errorf("attribute %s: %w", name.Local, err)
	}
	return xml.Attr{Name: name, Value: s}, nil
}

// UnmarshalAttr parses the value of attr with st.
func UnmarshalAttr[T any](st SimpleType[T], attr xml.Attr) (T, error) {
	v, err := st.FromXML(attr.Value)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("attribute %s: %w", attr.Name.Local, err)
	}
	return v, nil
}

// LookupAttr returns the first attribute whose local name is local.
func LookupAttr(attrs []xml.Attr, local string) (xml.Attr, bool) {
	for _, a := range attrs {
		if a.Name.Local == local {
			return a, true
		}
	}
	return xml.Attr{}, false
}

// OptionalAttr parses the attribute named local, or returns def when it is absent.
func OptionalAttr[T any](st SimpleType[T], attrs []xml.Attr, local string, def T) (T, error) {
	a, ok := LookupAttr(attrs, local)
	if !ok {
		return def, nil
	}
	return UnmarshalAttr(st, a)
}

// RequiredAttr parses the attribute named local, failing when it is absent.
func RequiredAttr[T any](st SimpleType[T], attrs []xml.Attr, local string) (T, error) {
	a, ok := LookupAttr(attrs, local)
	if !ok {
		var zero T
		return zero, &errors.Validation{
			Code:    string(errors.ErrRequiredAttributeMissing),
			Type:    st.Name(),
			Message: fmt.Sprintf("required attribute %q not present", local),
		}
	}
	return UnmarshalAttr(st, a)
}
