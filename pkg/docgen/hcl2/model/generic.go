package model

import (
	"github.com/zclconf/go-cty/cty"
)

// GenericObject represents an object of a kind registered by the host without a dedicated factory. Its attributes
// are kept as static values.
type GenericObject struct {
	object

	Attributes map[string]cty.Value
}

func NewGenericObject(kind Kind, namespace Object, name string) *GenericObject {
	return &GenericObject{
		object:     newObject(kind, namespace, name),
		Attributes: map[string]cty.Value{},
	}
}
