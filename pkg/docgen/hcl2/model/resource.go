package model

import (
	"github.com/pulumi/chefdoc/pkg/util/contract"
)

// ImplicitAction is the action every Chef resource supports without declaring it.
const ImplicitAction = "nothing"

// ResourceObject represents a lightweight resource.
type ResourceObject struct {
	object

	tree NodeTree

	// Description is the resource's documentation.
	Description string
	// DefaultActionName is the action named by the resource's default_action, if any.
	DefaultActionName string

	providers []*ProviderObject
}

// NewResourceObject creates a lightweight resource named name within namespace. The caller is responsible for
// registering the resource with the tree.
func NewResourceObject(tree NodeTree, namespace Object, name string) *ResourceObject {
	contract.Assert(tree != nil)
	return &ResourceObject{
		object: newObject(KindResource, namespace, name),
		tree:   tree,
	}
}

// LongName returns the class name of the lightweight resource, e.g. "Chef::Apache2::WebApp" for web_app in the
// apache2 cookbook.
func (r *ResourceObject) LongName() string {
	return DisplayName(r.name, namespacePath(r))
}

// Attributes returns the attributes defined in the lightweight resource.
func (r *ResourceObject) Attributes() []*AttributeObject {
	children := ChildrenOfKind(r.tree, r, KindAttribute)
	attributes := make([]*AttributeObject, len(children))
	for i, child := range children {
		attr, ok := child.(*AttributeObject)
		contract.Assertf(ok, "attribute %q of resource %q has unexpected type %T", child.Name(), r.name, child)
		attributes[i] = attr
	}
	return attributes
}

// Actions returns the actions supported by the lightweight resource.
func (r *ResourceObject) Actions() []*ActionObject {
	return actionsOf(r.tree, r)
}

// Action returns the named action, if the resource declares it.
func (r *ResourceObject) Action(name string) (*ActionObject, bool) {
	for _, action := range r.Actions() {
		if action.name == name {
			return action, true
		}
	}
	return nil, false
}

// DefaultAction returns the name of the action Chef runs when none is given: the explicit default_action, else the
// first action marked as the default, else the first action, else "nothing".
func (r *ResourceObject) DefaultAction() string {
	if r.DefaultActionName != "" {
		return r.DefaultActionName
	}

	actions := r.Actions()
	for _, action := range actions {
		if action.Default {
			return action.name
		}
	}
	if len(actions) > 0 {
		return actions[0].name
	}
	return ImplicitAction
}

// Providers returns the providers that implement the lightweight resource.
func (r *ResourceObject) Providers() []*ProviderObject {
	return r.providers
}

// AddProvider records that p implements the resource.
func (r *ResourceObject) AddProvider(p *ProviderObject) {
	for _, existing := range r.providers {
		if existing == p {
			return
		}
	}
	r.providers = append(r.providers, p)
	p.Resource = r
}

func actionsOf(tree NodeTree, o Object) []*ActionObject {
	children := ChildrenOfKind(tree, o, KindAction)
	actions := make([]*ActionObject, len(children))
	for i, child := range children {
		action, ok := child.(*ActionObject)
		contract.Assertf(ok, "action %q of %q has unexpected type %T", child.Name(), o.Path(), child)
		actions[i] = action
	}
	return actions
}

// DSLName returns the name recipes use to refer to the lightweight resource: the cookbook name and the resource name
// joined by an underscore, or just the cookbook name for a resource named "default".
func (r *ResourceObject) DSLName() string {
	ns := r.Namespace()
	if ns == nil || ns.Kind() != KindCookbook {
		return r.name
	}
	if r.name == "default" {
		return ns.Name()
	}
	return ns.Name() + "_" + r.name
}

// NameAttribute returns the attribute that defaults to the resource's name, if any.
func (r *ResourceObject) NameAttribute() (*AttributeObject, bool) {
	for _, attr := range r.Attributes() {
		if attr.NameAttribute {
			return attr, true
		}
	}
	return nil, false
}
