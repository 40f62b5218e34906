package console

import (
	"fmt"
	"strings"
)

// TargetType selects the primitive a prompted line is parsed into.
type TargetType int

const (
	Int32 TargetType = iota + 1
	Int64
	Int16
	Float64
	Float32
	Decimal
	Char
	Bool
	Text
)

var typeNames = map[TargetType]string{
	Int32:   "int32",
	Int64:   "int64",
	Int16:   "int16",
	Float64: "float64",
	Float32: "float32",
	Decimal: "decimal",
	Char:    "char",
	Bool:    "bool",
	Text:    "string",
}

// aliases accepted by ParseTargetType in addition to the display names.
var typeAliases = map[string]TargetType{
	"int":     Int32,
	"integer": Int32,
	"long":    Int64,
	"short":   Int16,
	"double":  Float64,
	"real":    Float64,
	"float":   Float32,
	"single":  Float32,
	"rune":    Char,
	"boolean": Bool,
	"text":    Text,
}

// TargetTypes returns every supported type in declaration order.
func TargetTypes() []TargetType {
	return []TargetType{Int32, Int64, Int16, Float64, Float32, Decimal, Char, Bool, Text}
}

// String returns the display name used in overflow messages.
func (t TargetType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TargetType(%d)", int(t))
}

// Ordered reports whether values of t can be bounds-checked.
func (t TargetType) Ordered() bool {
	switch t {
	case Int32, Int64, Int16, Float64, Float32, Decimal, Char:
		return true
	}
	return false
}

// ParseTargetType resolves a type name such as "int", "double" or "bool".
// Matching is case-insensitive.
func ParseTargetType(name string) (TargetType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if t, ok := typeAliases[name]; ok {
		return t, nil
	}
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}
