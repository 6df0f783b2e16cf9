package values

import (
	"fmt"
	"strings"
)

// Shape describes how many raw tokens a node takes, and how they
// are collected into its value.
type Shape int

const (
	// Switch nodes take no value. Their value is true once used.
	Switch Shape = iota

	// Single nodes take exactly one value.
	Single

	// CommonArray nodes take any number of values, kept as given.
	CommonArray

	// UniqueArray nodes take any number of values, without duplicates.
	UniqueArray

	// NamedValues nodes take key/value pairs.
	NamedValues
)

var shapeNames = [...]string{
	Switch:      "switch",
	Single:      "single",
	CommonArray: "common-array",
	UniqueArray: "unique-array",
	NamedValues: "named-values",
}

func (s Shape) String() string {
	if !s.Valid() {
		return fmt.Sprintf("shape(%d)", int(s))
	}

	return shapeNames[s]
}

// Valid reports whether s is one of the five value shapes.
func (s Shape) Valid() bool {
	return s >= Switch && s <= NamedValues
}

// IsArray reports whether the shape collects a list of values.
func (s Shape) IsArray() bool {
	return s == CommonArray || s == UniqueArray
}

// Placeholder returns the value synopsis used in help for this shape.
func (s Shape) Placeholder(required bool) string {
	var text string

	switch s {
	case Single:
		text = "<value>"
	case CommonArray, UniqueArray:
		text = "<value>..."
	case NamedValues:
		text = "<key> <value>..."
	default:
		return ""
	}

	if required {
		return text
	}

	return "[" + text + "]"
}

// ParseShape returns the shape named s, as printed by Shape.String.
func ParseShape(s string) (Shape, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for shape, shapeName := range shapeNames {
		if shapeName == name {
			return Shape(shape), nil
		}
	}

	return Switch, fmt.Errorf("unknown value shape %q", s)
}
