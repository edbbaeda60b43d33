package model

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// Object is a node in a documentation tree.
type Object interface {
	// Name returns the object's name within its namespace.
	Name() string
	// Kind returns the object's kind discriminator.
	Kind() Kind
	// Namespace returns the object's enclosing namespace, or nil for the tree root.
	Namespace() Object
	// Path returns the ScopeSeparator-joined names of the object and its enclosing namespaces.
	Path() string
	// SyntaxNode returns the block that declared the object, if any.
	SyntaxNode() hclsyntax.Node
}

// NodeTree is the read-only view of a documentation tree that objects use to find their children.
type NodeTree interface {
	// ChildrenOf returns the direct children of the given object in declaration order.
	ChildrenOf(o Object) []Object
	// KindOf returns the kind of the given object.
	KindOf(o Object) Kind
}

type declared interface {
	setSyntax(block *hclsyntax.Block)
}

type object struct {
	name      string
	kind      Kind
	namespace Object

	Syntax *hclsyntax.Block
}

func newObject(kind Kind, namespace Object, name string) object {
	return object{name: name, kind: kind, namespace: namespace}
}

func (o *object) Name() string {
	return o.name
}

func (o *object) Kind() Kind {
	return o.kind
}

func (o *object) Namespace() Object {
	return o.namespace
}

func (o *object) Path() string {
	if o.namespace == nil {
		return o.name
	}
	return o.namespace.Path() + ScopeSeparator + o.name
}

func (o *object) SyntaxNode() hclsyntax.Node {
	if o.Syntax == nil {
		return nil
	}
	return o.Syntax
}

func (o *object) setSyntax(block *hclsyntax.Block) {
	o.Syntax = block
}

// declRange returns the range of the object's declaration, or an empty range if it was not declared in source.
func declRange(o Object) hcl.Range {
	if n := o.SyntaxNode(); n != nil {
		if block, ok := n.(*hclsyntax.Block); ok {
			return block.DefRange()
		}
		return n.Range()
	}
	return hcl.Range{}
}

// namespacePath returns the namespace path of an object as a single scope-qualified element.
func namespacePath(o Object) []string {
	ns := o.Namespace()
	if ns == nil {
		return nil
	}
	return []string{ns.Path()}
}

// NamespaceObject is a plain namespace, such as the root of a tree.
type NamespaceObject struct {
	object
}

// NewNamespaceObject creates a namespace of the given kind.
func NewNamespaceObject(kind Kind, namespace Object, name string) *NamespaceObject {
	return &NamespaceObject{object: newObject(kind, namespace, name)}
}
