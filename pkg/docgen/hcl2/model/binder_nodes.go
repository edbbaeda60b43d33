package model

import (
	"github.com/blang/semver"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/pulumi/chefdoc/pkg/docgen/hcl2/syntax"
	"github.com/pulumi/chefdoc/pkg/util/contract"
)

type metadataDecl struct {
	Name        *string  `hcl:"name,optional"`
	Version     *string  `hcl:"version,optional"`
	Description *string  `hcl:"description,optional"`
	Maintainer  *string  `hcl:"maintainer,optional"`
	License     *string  `hcl:"license,optional"`
	Depends     []string `hcl:"depends,optional"`
}

func (b *binder) bindMetadata(file *syntax.File) hcl.Diagnostics {
	var decl metadataDecl
	diagnostics := gohcl.DecodeBody(file.Body, nil, &decl)
	if diagnostics.HasErrors() {
		return diagnostics
	}

	c := b.cookbook
	if decl.Name != nil && *decl.Name != c.Name() {
		attr := file.Body.Attributes["name"]
		diagnostics = append(diagnostics, warningf(attr.Expr.Range(),
			"metadata names cookbook %q, but it is being documented as %q", *decl.Name, c.Name()))
	}
	if decl.Version != nil {
		v, err := semver.ParseTolerant(*decl.Version)
		if err != nil {
			attr := file.Body.Attributes["version"]
			diagnostics = append(diagnostics, errorf(attr.Expr.Range(), "invalid cookbook version %q: %v",
				*decl.Version, err))
		} else {
			c.Version = &v
		}
	}
	if decl.Description != nil {
		c.Description = *decl.Description
	}
	if decl.Maintainer != nil {
		c.Maintainer = *decl.Maintainer
	}
	if decl.License != nil {
		c.License = *decl.License
	}
	c.Depends = decl.Depends
	return diagnostics
}

// bindable returns true if bindNode knows how to bind the given object.
func bindable(obj Object) bool {
	switch obj.(type) {
	case *ResourceObject, *AttributeObject, *ActionObject, *ProviderObject, *GenericObject:
		return true
	default:
		return false
	}
}

func (b *binder) bindNode(obj Object, block *hclsyntax.Block) hcl.Diagnostics {
	switch obj := obj.(type) {
	case *ResourceObject:
		return b.bindResource(obj, block)
	case *AttributeObject:
		return b.bindAttribute(obj, block)
	case *ActionObject:
		return b.bindAction(obj, block)
	case *ProviderObject:
		return b.bindProvider(obj, block)
	case *GenericObject:
		return b.bindGeneric(obj, block)
	default:
		contract.Failf("unexpected object of type %T (%v)", obj, block.DefRange())
		return nil
	}
}

func (b *binder) bindResource(node *ResourceObject, block *hclsyntax.Block) hcl.Diagnostics {
	var diagnostics hcl.Diagnostics

	// Names of actions declared with blocks; these take precedence over the actions shorthand.
	blockActions := stringSet{}
	for _, nested := range block.Body.Blocks {
		if kind, ok := b.registry.Lookup(KindResource, nested.Type); ok && kind == KindAction && len(nested.Labels) == 1 {
			blockActions.add(nested.Labels[0])
		}
	}

	for _, attr := range sourceOrderAttributes(block.Body.Attributes) {
		var diags hcl.Diagnostics
		switch attr.Name {
		case "description":
			node.Description, diags = bindString(attr)
		case "default_action":
			var names []string
			names, diags = bindNames(attr)
			if len(names) > 1 {
				diags = append(diags, errorf(attr.Expr.Range(), "default_action must name a single action"))
			} else if len(names) == 1 {
				node.DefaultActionName = names[0]
			}
		case "actions":
			var names []string
			names, diags = bindNames(attr)
			pending := &shorthandActions{attr: attr}
			for _, name := range names {
				if !blockActions.has(name) {
					pending.names = append(pending.names, name)
				}
			}
			b.shorthand[node] = pending
		default:
			diags = hcl.Diagnostics{unsupportedAttribute(attr, KindResource)}
		}
		diagnostics = append(diagnostics, diags...)
	}
	return diagnostics
}

func (b *binder) bindAttribute(node *AttributeObject, block *hclsyntax.Block) hcl.Diagnostics {
	var diagnostics hcl.Diagnostics
	for _, attr := range sourceOrderAttributes(block.Body.Attributes) {
		var diags hcl.Diagnostics
		switch attr.Name {
		case "description":
			node.Description, diags = bindString(attr)
		case "kind_of":
			var names []string
			names, diags = bindNames(attr)
			types := make([]Type, len(names))
			for i, name := range names {
				types[i] = ParseTypeName(name)
			}
			node.Type = NewUnionType(types...)
		case "default":
			node.Default, diags = bindValue(attr)
		case "equal_to":
			node.EqualTo, diags = bindValues(attr)
		case "regex":
			node.Regex, diags = bindString(attr)
		case "required":
			node.Required, diags = bindBool(attr)
		case "name_attribute":
			node.NameAttribute, diags = bindBool(attr)
		default:
			diags = hcl.Diagnostics{unsupportedAttribute(attr, KindAttribute)}
		}
		diagnostics = append(diagnostics, diags...)
	}
	return diagnostics
}

func (b *binder) bindAction(node *ActionObject, block *hclsyntax.Block) hcl.Diagnostics {
	var diagnostics hcl.Diagnostics
	for _, attr := range sourceOrderAttributes(block.Body.Attributes) {
		var diags hcl.Diagnostics
		switch attr.Name {
		case "description":
			node.Description, diags = bindString(attr)
		case "default":
			node.Default, diags = bindBool(attr)
		default:
			diags = hcl.Diagnostics{unsupportedAttribute(attr, KindAction)}
		}
		diagnostics = append(diagnostics, diags...)
	}
	return diagnostics
}

func (b *binder) bindProvider(node *ProviderObject, block *hclsyntax.Block) hcl.Diagnostics {
	var diagnostics hcl.Diagnostics
	for _, attr := range sourceOrderAttributes(block.Body.Attributes) {
		var diags hcl.Diagnostics
		switch attr.Name {
		case "description":
			node.Description, diags = bindString(attr)
		case "resource":
			var names []string
			names, diags = bindNames(attr)
			if len(names) > 1 {
				diags = append(diags, errorf(attr.Expr.Range(), "a provider implements a single resource"))
			} else if len(names) == 1 {
				node.ResourceName = names[0]
			}
		case "whyrun_supported":
			node.WhyRunSupported, diags = bindBool(attr)
		default:
			diags = hcl.Diagnostics{unsupportedAttribute(attr, KindProvider)}
		}
		diagnostics = append(diagnostics, diags...)
	}
	return diagnostics
}

func (b *binder) bindGeneric(node *GenericObject, block *hclsyntax.Block) hcl.Diagnostics {
	var diagnostics hcl.Diagnostics
	for _, attr := range sourceOrderAttributes(block.Body.Attributes) {
		val, diags := bindValue(attr)
		node.Attributes[attr.Name] = val
		diagnostics = append(diagnostics, diags...)
	}
	return diagnostics
}

// checkNode validates an object once its nested blocks have been declared.
func (b *binder) checkNode(obj Object) hcl.Diagnostics {
	r, ok := obj.(*ResourceObject)
	if !ok || r.DefaultActionName == "" || r.DefaultActionName == ImplicitAction {
		return nil
	}
	if _, ok := r.Action(r.DefaultActionName); ok {
		return nil
	}

	subject := declRange(r)
	if r.Syntax != nil {
		if attr, ok := r.Syntax.Body.Attributes["default_action"]; ok {
			subject = attr.Expr.Range()
		}
	}
	return hcl.Diagnostics{errorf(subject, "default action %q is not an action of resource %q",
		r.DefaultActionName, r.Name())}
}
