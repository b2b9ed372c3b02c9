// Package oxml converts presentation-document attribute values between their
// XML lexical form and typed Go values.
//
// Each simple type is a stateless converter exposing three operations:
// FromXML parses attribute text, Validate checks a Go value against the
// type's base kind and value space, and ToXML validates then formats. ToXML
// never emits text for a value that failed validation.
//
// Failures are *errors.Validation values carrying either
// errors.ErrTypeMismatch or errors.ErrConstraintViolation.
//
// All converters are immutable and safe for concurrent use.
package oxml
