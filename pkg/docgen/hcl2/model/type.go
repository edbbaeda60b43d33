package model

import (
	"fmt"
	"strings"
)

// Type represents the type of a resource attribute as named by its kind_of. Types created by this package are
// identical if they are equal values. String returns the Ruby spelling of the type.
type Type interface {
	String() string

	isType()
}

type primitiveType int

const (
	stringType     primitiveType = 1
	integerType    primitiveType = 2
	floatType      primitiveType = 3
	numericType    primitiveType = 4
	trueClassType  primitiveType = 5
	falseClassType primitiveType = 6
	symbolType     primitiveType = 7
	anyType        primitiveType = 8
)

func (t primitiveType) String() string {
	switch t {
	case stringType:
		return "String"
	case integerType:
		return "Integer"
	case floatType:
		return "Float"
	case numericType:
		return "Numeric"
	case trueClassType:
		return "TrueClass"
	case falseClassType:
		return "FalseClass"
	case symbolType:
		return "Symbol"
	case anyType:
		return "Object"
	default:
		panic("unknown primitive type")
	}
}

func (primitiveType) isType() {}

// IsPrimitiveType returns true if the given Type is a primitive type.
func IsPrimitiveType(t Type) bool {
	_, ok := t.(primitiveType)
	return ok
}

var (
	// StringType represents Ruby strings.
	StringType Type = stringType
	// IntegerType represents Ruby integers.
	IntegerType Type = integerType
	// FloatType represents Ruby floats.
	FloatType Type = floatType
	// NumericType represents any Ruby number.
	NumericType Type = numericType
	// TrueClassType represents Ruby's true.
	TrueClassType Type = trueClassType
	// FalseClassType represents Ruby's false.
	FalseClassType Type = falseClassType
	// SymbolType represents Ruby symbols.
	SymbolType Type = symbolType
	// AnyType represents the complete set of values. It is the type of attributes without a kind_of.
	AnyType Type = anyType
)

// HashType represents Ruby hashes.
type HashType struct{}

func (*HashType) String() string {
	return "Hash"
}

func (*HashType) isType() {}

// ArrayType represents Ruby arrays.
type ArrayType struct{}

func (*ArrayType) String() string {
	return "Array"
}

func (*ArrayType) isType() {}

var (
	hashType  = &HashType{}
	arrayType = &ArrayType{}
)

// UnionType represents values that may be any one of a specified set of types, e.g. kind_of [TrueClass, FalseClass].
type UnionType struct {
	// ElementTypes are the allowable types for the union type.
	ElementTypes []Type
}

func (t *UnionType) String() string {
	elements := make([]string, len(t.ElementTypes))
	for i, e := range t.ElementTypes {
		elements[i] = e.String()
	}
	return strings.Join(elements, ", ")
}

func (*UnionType) isType() {}

// TokenType represents a class that chefdoc does not know about, named by its token.
type TokenType struct {
	// Token is the class name.
	Token string
}

func (t *TokenType) String() string {
	return t.Token
}

func (*TokenType) isType() {}

var typeNames = map[string]Type{
	"String":     StringType,
	"Integer":    IntegerType,
	"Fixnum":     IntegerType,
	"Float":      FloatType,
	"Numeric":    NumericType,
	"TrueClass":  TrueClassType,
	"FalseClass": FalseClassType,
	"Symbol":     SymbolType,
	"Object":     AnyType,
	"Hash":       hashType,
	"Array":      arrayType,
}

// ParseTypeName returns the type named by a kind_of class name.
func ParseTypeName(name string) Type {
	if t, ok := typeNames[name]; ok {
		return t
	}
	return &TokenType{Token: name}
}

// NewUnionType returns the union of the given types. Duplicates are removed, and a union of a single type is that
// type.
func NewUnionType(types ...Type) Type {
	var elements []Type
	seen := map[string]bool{}
	for _, t := range types {
		if u, ok := t.(*UnionType); ok {
			for _, e := range u.ElementTypes {
				if !seen[e.String()] {
					seen[e.String()] = true
					elements = append(elements, e)
				}
			}
			continue
		}
		if !seen[t.String()] {
			seen[t.String()] = true
			elements = append(elements, t)
		}
	}

	switch len(elements) {
	case 0:
		return AnyType
	case 1:
		return elements[0]
	default:
		return &UnionType{ElementTypes: elements}
	}
}

// IsBooleanType returns true if t accepts exactly true and false.
func IsBooleanType(t Type) bool {
	u, ok := t.(*UnionType)
	if !ok || len(u.ElementTypes) != 2 {
		return false
	}
	s := fmt.Sprintf("%v", u)
	return s == "TrueClass, FalseClass" || s == "FalseClass, TrueClass"
}
