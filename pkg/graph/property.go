package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// PropertyType is the declared type of a vertex or edge property
type PropertyType int

const (
	Integer PropertyType = iota + 1
	Real
)

func (t PropertyType) String() string {
	switch t {
	case Integer:
		return "int"
	case Real:
		return "real"
	default:
		return fmt.Sprintf("PropertyType(%d)", int(t))
	}
}

// ParsePropertyType maps a type name from a graph descriptor to a PropertyType.
// Accepted names are int, integer, long, real, double and float (case-insensitive).
func ParsePropertyType(name string) (PropertyType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "int", "integer", "long":
		return Integer, nil
	case "real", "double", "float":
		return Real, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedPropertyType, name)
	}
}

// ParsePropertyTypes parses a list of type names, e.g. from configuration
func ParsePropertyTypes(names []string) ([]PropertyType, error) {
	types := make([]PropertyType, 0, len(names))
	for _, name := range names {
		t, err := ParsePropertyType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// Value is a typed property value
type Value struct {
	typ PropertyType
	i   int64
	f   float64
}

// IntValue creates an Integer value
func IntValue(v int64) Value { return Value{typ: Integer, i: v} }

// RealValue creates a Real value
func RealValue(v float64) Value { return Value{typ: Real, f: v} }

// Type returns the declared type of the value
func (v Value) Type() PropertyType { return v.typ }

// Int returns the value as an integer. Real values are truncated.
func (v Value) Int() int64 {
	if v.typ == Real {
		return int64(v.f)
	}
	return v.i
}

// Float returns the value as a real number
func (v Value) Float() float64 {
	if v.typ == Integer {
		return float64(v.i)
	}
	return v.f
}

func (v Value) String() string {
	if v.typ == Real {
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	return strconv.FormatInt(v.i, 10)
}

// parseValues parses one record's property tokens against the declared types
func parseValues(types []PropertyType, tokens []string) ([]Value, error) {
	if len(tokens) != len(types) {
		return nil, fmt.Errorf("%w: got %d values, expected %d", ErrPropertyArity, len(tokens), len(types))
	}
	if len(types) == 0 {
		return nil, nil
	}

	values := make([]Value, len(types))
	for i, t := range types {
		switch t {
		case Integer:
			n, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, tokens[i])
			}
			values[i] = IntValue(n)
		case Real:
			f, err := strconv.ParseFloat(tokens[i], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a real", ErrInvalidValue, tokens[i])
			}
			values[i] = RealValue(f)
		default:
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedPropertyType, t)
		}
	}
	return values, nil
}

func validateTypes(types []PropertyType) error {
	for _, t := range types {
		if t != Integer && t != Real {
			return fmt.Errorf("%w: %v", ErrUnsupportedPropertyType, t)
		}
	}
	return nil
}
