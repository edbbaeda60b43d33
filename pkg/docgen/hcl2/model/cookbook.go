package model

import (
	"github.com/blang/semver"

	"github.com/pulumi/chefdoc/pkg/util/contract"
)

// CookbookObject represents a cookbook and the metadata from its metadata.hcl.
type CookbookObject struct {
	object

	tree NodeTree

	Version     *semver.Version
	Description string
	Maintainer  string
	License     string
	Depends     []string
}

func NewCookbookObject(tree NodeTree, namespace Object, name string) *CookbookObject {
	contract.Assert(tree != nil)
	return &CookbookObject{
		object: newObject(KindCookbook, namespace, name),
		tree:   tree,
	}
}

// Resources returns the lightweight resources declared by the cookbook.
func (c *CookbookObject) Resources() []*ResourceObject {
	children := ChildrenOfKind(c.tree, c, KindResource)
	resources := make([]*ResourceObject, len(children))
	for i, child := range children {
		r, ok := child.(*ResourceObject)
		contract.Assertf(ok, "resource %q has unexpected type %T", child.Path(), child)
		resources[i] = r
	}
	return resources
}

// Providers returns the lightweight providers declared by the cookbook.
func (c *CookbookObject) Providers() []*ProviderObject {
	children := ChildrenOfKind(c.tree, c, KindProvider)
	providers := make([]*ProviderObject, len(children))
	for i, child := range children {
		p, ok := child.(*ProviderObject)
		contract.Assertf(ok, "provider %q has unexpected type %T", child.Path(), child)
		providers[i] = p
	}
	return providers
}

// Resource returns the named resource, if the cookbook declares it.
func (c *CookbookObject) Resource(name string) (*ResourceObject, bool) {
	for _, r := range c.Resources() {
		if r.name == name {
			return r, true
		}
	}
	return nil, false
}
