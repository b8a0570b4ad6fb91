package graph

import "errors"

var (
	// ErrUnknownVertex is returned when a vertex id is not part of the graph
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrDuplicateVertex is returned when the vertex stream repeats an id
	ErrDuplicateVertex = errors.New("duplicate vertex")

	// ErrPropertyArity is returned when a record carries a different number of
	// property tokens than the graph declares
	ErrPropertyArity = errors.New("property arity mismatch")

	// ErrUnsupportedPropertyType is returned for property types other than integer and real
	ErrUnsupportedPropertyType = errors.New("unsupported property type")

	// ErrInvalidValue is returned when a property token cannot be parsed as its declared type
	ErrInvalidValue = errors.New("invalid property value")

	// ErrOutOfRange is returned by property accessors for a neighbor or property
	// index the vertex does not have
	ErrOutOfRange = errors.New("index out of range")
)
