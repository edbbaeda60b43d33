package model

import (
	"github.com/pulumi/chefdoc/pkg/util/contract"
)

// ProviderObject represents a lightweight provider.
type ProviderObject struct {
	object

	tree NodeTree

	Description string
	// ResourceName names the resource the provider implements. If it is empty, the provider implements the resource
	// with the same name.
	ResourceName    string
	WhyRunSupported bool

	// Resource is the resource the provider implements, once linked.
	Resource *ResourceObject
}

func NewProviderObject(tree NodeTree, namespace Object, name string) *ProviderObject {
	contract.Assert(tree != nil)
	return &ProviderObject{
		object: newObject(KindProvider, namespace, name),
		tree:   tree,
	}
}

// ImplementedResource returns the name of the resource the provider implements.
func (p *ProviderObject) ImplementedResource() string {
	if p.ResourceName != "" {
		return p.ResourceName
	}
	return p.name
}

// Actions returns the actions implemented by the provider.
func (p *ProviderObject) Actions() []*ActionObject {
	return actionsOf(p.tree, p)
}
