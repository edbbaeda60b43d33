package model

import (
	"github.com/zclconf/go-cty/cty"
)

// AttributeObject represents an attribute of a lightweight resource.
type AttributeObject struct {
	object

	Description string

	// Type is the type named by the attribute's kind_of.
	Type Type
	// Default is the attribute's default value. It is null if the attribute has no default.
	Default cty.Value
	// EqualTo lists the values the attribute is restricted to, if any.
	EqualTo []cty.Value
	// Regex is the pattern the attribute's value must match, if any.
	Regex string

	Required      bool
	NameAttribute bool
}

func NewAttributeObject(namespace Object, name string) *AttributeObject {
	return &AttributeObject{
		object:  newObject(KindAttribute, namespace, name),
		Type:    AnyType,
		Default: cty.NullVal(cty.DynamicPseudoType),
	}
}

// HasDefault returns true if the attribute declares a non-null default.
func (a *AttributeObject) HasDefault() bool {
	return !a.Default.IsNull()
}
