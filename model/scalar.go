package model

import (
	"strings"
	"unicode"
)

// ScalarType is the type of a caller-supplied argument.
type ScalarType int

const (
	TypeObject ScalarType = iota
	TypeByte
	TypeInt
	TypeUInt
	TypeLong
	TypeULong
	TypeString
	TypeDouble
	TypeChar
	TypeDecimal
)

var scalarNames = map[ScalarType]string{
	TypeObject:  "object",
	TypeByte:    "byte",
	TypeInt:     "int",
	TypeUInt:    "uint",
	TypeLong:    "long",
	TypeULong:   "ulong",
	TypeString:  "string",
	TypeDouble:  "double",
	TypeChar:    "char",
	TypeDecimal: "decimal",
}

// scalarAliases maps lower-cased type tokens to scalar types.
var scalarAliases = map[string]ScalarType{
	"object":  TypeObject,
	"byte":    TypeByte,
	"int":     TypeInt,
	"int32":   TypeInt,
	"uint":    TypeUInt,
	"uint32":  TypeUInt,
	"long":    TypeLong,
	"int64":   TypeLong,
	"ulong":   TypeULong,
	"uint64":  TypeULong,
	"string":  TypeString,
	"double":  TypeDouble,
	"float64": TypeDouble,
	"char":    TypeChar,
	"decimal": TypeDecimal,
}

func (t ScalarType) String() string {
	if name, ok := scalarNames[t]; ok {
		return name
	}
	return "object"
}

// ParseScalarType resolves a type token case-insensitively.
func ParseScalarType(s string) (ScalarType, bool) {
	t, ok := scalarAliases[strings.ToLower(strings.TrimSpace(s))]
	return t, ok
}

// IsInteger reports whether the type holds whole numbers.
func (t ScalarType) IsInteger() bool {
	switch t {
	case TypeByte, TypeInt, TypeUInt, TypeLong, TypeULong:
		return true
	}
	return false
}

// IsNumeric reports whether the type can drive pluralization.
func (t ScalarType) IsNumeric() bool {
	return t.IsInteger() || t == TypeDouble || t == TypeDecimal
}

// MarshalText renders the type by name for YAML and JSON output.
func (t ScalarType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// IsIdentifier reports whether s can name a generated member: a letter or
// underscore followed by letters, digits or underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
