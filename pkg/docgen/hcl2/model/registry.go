package model

import (
	"sort"

	"github.com/pkg/errors"
)

// Factory creates an object of a registered kind.
type Factory func(tree NodeTree, namespace Object, name string) Object

type registration struct {
	parent  Kind
	keyword string
}

// Registry maps the keywords that may appear beneath an object of a given kind to the kind of object they declare,
// and kinds to the factories that create their objects. Kinds without a factory are bound to GenericObjects.
type Registry struct {
	kinds     map[registration]Kind
	factories map[Kind]Factory
}

// NewRegistry returns a registry that recognizes the built-in lightweight resource and provider keywords.
func NewRegistry() *Registry {
	r := &Registry{
		kinds:     map[registration]Kind{},
		factories: map[Kind]Factory{},
	}

	r.mustRegister(KindChef, "resource", KindResource)
	r.mustRegister(KindChef, "provider", KindProvider)
	r.mustRegister(KindResource, "attribute", KindAttribute)
	r.mustRegister(KindResource, "action", KindAction)
	r.mustRegister(KindProvider, "action", KindAction)

	r.RegisterFactory(KindCookbook, func(tree NodeTree, namespace Object, name string) Object {
		return NewCookbookObject(tree, namespace, name)
	})
	r.RegisterFactory(KindResource, func(tree NodeTree, namespace Object, name string) Object {
		return NewResourceObject(tree, namespace, name)
	})
	r.RegisterFactory(KindProvider, func(tree NodeTree, namespace Object, name string) Object {
		return NewProviderObject(tree, namespace, name)
	})
	r.RegisterFactory(KindAttribute, func(_ NodeTree, namespace Object, name string) Object {
		return NewAttributeObject(namespace, name)
	})
	r.RegisterFactory(KindAction, func(_ NodeTree, namespace Object, name string) Object {
		return NewActionObject(namespace, name)
	})

	return r
}

func (r *Registry) mustRegister(parent Kind, keyword string, kind Kind) {
	if err := r.Register(parent, keyword, kind); err != nil {
		panic(err)
	}
}

// Register records that keyword declares an object of the given kind when it appears beneath an object of the
// parent kind. Re-registering the same triple is a no-op; rebinding a keyword to a different kind is an error, as is
// declaring the chef root or a cookbook.
func (r *Registry) Register(parent Kind, keyword string, kind Kind) error {
	if keyword == "" {
		return errors.New("keywords must not be empty")
	}
	if kind == "" {
		return errors.Errorf("keyword %q must declare a kind", keyword)
	}
	if kind == KindChef || kind == KindCookbook {
		return errors.Errorf("keyword %q cannot declare a %s; %s objects are not declared in source", keyword, kind,
			kind)
	}

	key := registration{parent: parent, keyword: keyword}
	if existing, ok := r.kinds[key]; ok && existing != kind {
		return errors.Errorf("keyword %q beneath %s already declares a %s", keyword, parent, existing)
	}
	r.kinds[key] = kind
	return nil
}

// RegisterFactory sets the factory used to create objects of the given kind.
func (r *Registry) RegisterFactory(kind Kind, factory Factory) {
	r.factories[kind] = factory
}

// Lookup returns the kind declared by keyword beneath an object of the parent kind.
func (r *Registry) Lookup(parent Kind, keyword string) (Kind, bool) {
	kind, ok := r.kinds[registration{parent: parent, keyword: keyword}]
	return kind, ok
}

// Keywords returns the sorted keywords that may appear beneath an object of the parent kind.
func (r *Registry) Keywords(parent Kind) []string {
	var keywords []string
	for key := range r.kinds {
		if key.parent == parent {
			keywords = append(keywords, key.keyword)
		}
	}
	sort.Strings(keywords)
	return keywords
}

// New creates an object of the given kind.
func (r *Registry) New(kind Kind, tree NodeTree, namespace Object, name string) Object {
	if factory, ok := r.factories[kind]; ok {
		return factory(tree, namespace, name)
	}
	return NewGenericObject(kind, namespace, name)
}
