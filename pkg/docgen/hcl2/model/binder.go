package model

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/pulumi/chefdoc/pkg/docgen/hcl2/syntax"
	"github.com/pulumi/chefdoc/pkg/util/contract"
	"github.com/pulumi/chefdoc/pkg/util/logging"
)

type binder struct {
	registry  *Registry
	tree      *Tree
	cookbook  *CookbookObject
	shorthand map[*ResourceObject]*shorthandActions
}

// shorthandActions are the actions a resource lists in its actions attribute that are not also declared as blocks.
// They are declared at the attribute's position among the resource's nested blocks.
type shorthandActions struct {
	attr  *hclsyntax.Attribute
	names []string
}

// BindCookbook declares the cookbook named name in tree and binds the given source files into it. Diagnostics
// describe problems in the sources; the error is non-nil only if the cookbook itself could not be declared.
func BindCookbook(name string, files []*syntax.File, registry *Registry, tree *Tree) (*CookbookObject,
	hcl.Diagnostics, error) {

	contract.Assert(tree != nil)
	if registry == nil {
		registry = NewRegistry()
	}

	cookbook, ok := registry.New(KindCookbook, tree, tree.Root(), name).(*CookbookObject)
	contract.Assertf(ok, "cookbook factory must create *CookbookObject")
	if err := tree.Register(cookbook); err != nil {
		return nil, nil, err
	}

	b := &binder{
		registry:  registry,
		tree:      tree,
		cookbook:  cookbook,
		shorthand: map[*ResourceObject]*shorthandActions{},
	}

	var diagnostics hcl.Diagnostics

	// Bind files in name order so that declaration order, and thus page contents, are deterministic.
	files = append([]*syntax.File(nil), files...)
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	for _, f := range files {
		logging.V(5).Infof("binding %s into cookbook %s", f.Name, name)
		if f.IsMetadata() {
			diagnostics = append(diagnostics, b.bindMetadata(f)...)
		} else {
			diagnostics = append(diagnostics, b.declareFile(f)...)
		}
	}

	// Providers may be declared before the resources they implement, so link them once everything is declared.
	diagnostics = append(diagnostics, b.linkProviders()...)

	return cookbook, diagnostics, nil
}

func (b *binder) declareFile(file *syntax.File) hcl.Diagnostics {
	var diagnostics hcl.Diagnostics

	for _, attr := range sourceOrderAttributes(file.Body.Attributes) {
		diagnostics = append(diagnostics, unsupportedAttribute(attr, KindChef))
	}

	// The top-level scope of a source file is the chef DSL; the objects it declares belong to the cookbook.
	for _, block := range sourceOrderBlocks(file.Body.Blocks) {
		diagnostics = append(diagnostics, b.declareBlock(b.cookbook, KindChef, block)...)
	}
	return diagnostics
}

// declareBlock declares the object described by block beneath namespace, binds its body, and then declares its
// nested blocks. scope is the kind against which the block's keyword is resolved.
func (b *binder) declareBlock(namespace Object, scope Kind, block *hclsyntax.Block) hcl.Diagnostics {
	kind, ok := b.registry.Lookup(scope, block.Type)
	if !ok {
		return hcl.Diagnostics{unknownKeyword(block, scope, b.registry.Keywords(scope))}
	}
	if len(block.Labels) != 1 {
		return hcl.Diagnostics{labelsErrorf(block, "%s blocks must have exactly one label", block.Type)}
	}

	name := block.Labels[0]
	if name == "" {
		return hcl.Diagnostics{labelsErrorf(block, "%s names must not be empty", block.Type)}
	}

	obj := b.registry.New(kind, b.tree, namespace, name)
	if !bindable(obj) {
		return hcl.Diagnostics{errorf(block.DefRange(), "%s blocks declare %s objects, which cannot be bound from source",
			block.Type, kind)}
	}
	if d, ok := obj.(declared); ok {
		d.setSyntax(block)
	}
	if err := b.tree.Register(obj); err != nil {
		return hcl.Diagnostics{errorf(block.DefRange(), "%v", err)}
	}
	logging.V(7).Infof("declared %s %s", kind, obj.Path())

	diagnostics := b.bindNode(obj, block)
	for _, nested := range sourceOrderBlocks(block.Body.Blocks) {
		diagnostics = append(diagnostics, b.declareShorthandActions(obj, nested.Range().Start.Byte)...)
		diagnostics = append(diagnostics, b.declareBlock(obj, kind, nested)...)
	}
	diagnostics = append(diagnostics, b.declareShorthandActions(obj, -1)...)
	diagnostics = append(diagnostics, b.checkNode(obj)...)
	return diagnostics
}

// declareShorthandActions declares the pending shorthand actions of obj if its actions attribute starts before the
// given source offset. An offset of -1 declares them regardless of position.
func (b *binder) declareShorthandActions(obj Object, before int) hcl.Diagnostics {
	r, ok := obj.(*ResourceObject)
	if !ok {
		return nil
	}
	pending, ok := b.shorthand[r]
	if !ok || (before >= 0 && pending.attr.Range().Start.Byte > before) {
		return nil
	}
	delete(b.shorthand, r)

	var diagnostics hcl.Diagnostics
	for _, name := range pending.names {
		if err := b.tree.Register(NewActionObject(r, name)); err != nil {
			diagnostics = append(diagnostics, errorf(pending.attr.Expr.Range(), "%v", err))
		}
	}
	return diagnostics
}

func (b *binder) linkProviders() hcl.Diagnostics {
	var diagnostics hcl.Diagnostics
	for _, p := range b.cookbook.Providers() {
		name := p.ImplementedResource()
		r, ok := b.cookbook.Resource(name)
		if !ok {
			logging.Warningf("provider %s implements unknown resource %q", p.Path(), name)
			diagnostics = append(diagnostics, warningf(declRange(p),
				"provider %q implements resource %q, which is not declared in cookbook %q", p.Name(), name,
				b.cookbook.Name()))
			continue
		}
		r.AddProvider(p)
	}
	return diagnostics
}
