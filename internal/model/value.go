package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValueKind tags the shape of a decoded property value.
type ValueKind int

const (
	ValueAbsent ValueKind = iota
	ValueScalar
	ValueNumbers
	ValueName
	ValueNames
	ValueUnresolved
)

// PropertyValue is the decoded form of one property reply. It holds no
// reference to the connection it came from.
type PropertyValue struct {
	Kind    ValueKind
	numbers []uint32
	names   []string
}

// Absent is the value of a property with an empty payload.
func Absent() PropertyValue {
	return PropertyValue{Kind: ValueAbsent}
}

// Scalar wraps a single number.
func Scalar(n uint32) PropertyValue {
	return PropertyValue{Kind: ValueScalar, numbers: []uint32{n}}
}

// NumberList wraps a decoded numeric sequence. A one-element sequence
// collapses to a Scalar.
func NumberList(ns []uint32) PropertyValue {
	if len(ns) == 1 {
		return Scalar(ns[0])
	}
	return PropertyValue{Kind: ValueNumbers, numbers: ns}
}

// Name wraps a single string.
func Name(s string) PropertyValue {
	return PropertyValue{Kind: ValueName, names: []string{s}}
}

// NameList wraps resolved atom names or split strings. A one-element list
// collapses to a Name.
func NameList(names []string) PropertyValue {
	if len(names) == 1 {
		return Name(names[0])
	}
	return PropertyValue{Kind: ValueNames, names: names}
}

// Unresolved is the placeholder for a payload whose type has no decoder,
// e.g. "<FOO>" or "<binary>".
func Unresolved(marker string) PropertyValue {
	return PropertyValue{Kind: ValueUnresolved, names: []string{marker}}
}

// IsAbsent reports whether the property carried no payload.
func (v PropertyValue) IsAbsent() bool {
	return v.Kind == ValueAbsent
}

// Uint returns the scalar value. ok is false for any other kind.
func (v PropertyValue) Uint() (n uint32, ok bool) {
	if v.Kind != ValueScalar {
		return 0, false
	}
	return v.numbers[0], true
}

// Numbers returns a copy of the numeric payload (scalar or sequence).
func (v PropertyValue) Numbers() []uint32 {
	return append([]uint32(nil), v.numbers...)
}

// Names returns a copy of the string payload (name, names or marker).
func (v PropertyValue) Names() []string {
	return append([]string(nil), v.names...)
}

func (v PropertyValue) String() string {
	switch v.Kind {
	case ValueScalar:
		return strconv.FormatUint(uint64(v.numbers[0]), 10)
	case ValueNumbers:
		parts := make([]string, len(v.numbers))
		for i, n := range v.numbers {
			parts[i] = strconv.FormatUint(uint64(n), 10)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case ValueName, ValueUnresolved:
		return v.names[0]
	case ValueNames:
		return fmt.Sprint(v.names)
	default:
		return "<empty>"
	}
}

// plain returns the value as a yaml/json friendly Go value.
func (v PropertyValue) plain() interface{} {
	switch v.Kind {
	case ValueScalar:
		return v.numbers[0]
	case ValueNumbers:
		return v.numbers
	case ValueName, ValueUnresolved:
		return v.names[0]
	case ValueNames:
		return v.names
	default:
		return nil
	}
}

// MarshalYAML implements yaml.Marshaler.
func (v PropertyValue) MarshalYAML() (interface{}, error) {
	return v.plain(), nil
}

// MarshalJSON implements json.Marshaler.
func (v PropertyValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.plain())
}
