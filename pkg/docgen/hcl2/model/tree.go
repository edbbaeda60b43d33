package model

import (
	"github.com/pkg/errors"

	"github.com/pulumi/chefdoc/pkg/util/contract"
)

// RootName is the name of the root of every documentation tree.
const RootName = "chef"

// Tree is an in-memory documentation tree. Children are kept in registration order. A Tree is not safe for
// concurrent mutation; callers must not register objects while queries are in flight.
type Tree struct {
	root       *NamespaceObject
	children   map[Object][]Object
	registered map[Object]bool
}

// NewTree creates a tree that contains only the chef root namespace.
func NewTree() *Tree {
	root := NewNamespaceObject(KindChef, nil, RootName)
	return &Tree{
		root:       root,
		children:   map[Object][]Object{},
		registered: map[Object]bool{root: true},
	}
}

// Root returns the root of the tree.
func (t *Tree) Root() Object {
	return t.root
}

// Register adds an object beneath its namespace. The namespace must already be part of the tree, and no sibling of
// the same kind may share the new object's name. Objects of different kinds may share a name, as a resource and the
// provider that implements it usually do.
func (t *Tree) Register(o Object) error {
	contract.Assert(o != nil)

	ns := o.Namespace()
	if ns == nil {
		return errors.Errorf("cannot register %s %q without a namespace", o.Kind(), o.Name())
	}
	if !t.registered[ns] {
		return errors.Errorf("namespace %q of %s %q is not registered", ns.Path(), o.Kind(), o.Name())
	}
	if t.registered[o] {
		return errors.Errorf("%s %q is already registered", o.Kind(), o.Path())
	}

	for _, sibling := range t.children[ns] {
		if sibling.Kind() == o.Kind() && sibling.Name() == o.Name() {
			return errors.Errorf("%s %q already declared", o.Kind(), o.Path())
		}
	}

	t.registered[o] = true
	t.children[ns] = append(t.children[ns], o)
	return nil
}

// Lookup returns the object of the given kind registered at the given path.
func (t *Tree) Lookup(kind Kind, path string) (Object, bool) {
	for _, o := range t.All(kind) {
		if o.Path() == path {
			return o, true
		}
	}
	return nil, false
}

// ChildrenOf returns the direct children of o in registration order.
func (t *Tree) ChildrenOf(o Object) []Object {
	children := t.children[o]
	if len(children) == 0 {
		return nil
	}
	result := make([]Object, len(children))
	copy(result, children)
	return result
}

// KindOf returns the kind of o.
func (t *Tree) KindOf(o Object) Kind {
	return o.Kind()
}

// All returns every object of the given kind in depth-first registration order.
func (t *Tree) All(kind Kind) []Object {
	var result []Object
	var visit func(o Object)
	visit = func(o Object) {
		if o.Kind() == kind {
			result = append(result, o)
		}
		for _, child := range t.children[o] {
			visit(child)
		}
	}
	visit(t.root)
	return result
}
