package model

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// bindValue evaluates an attribute as a static value. Documentation is generated without evaluating the cookbook, so
// references to variables or functions are errors. The result is null if evaluation fails.
func bindValue(attr *hclsyntax.Attribute) (cty.Value, hcl.Diagnostics) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() || !val.IsWhollyKnown() {
		return cty.NullVal(cty.DynamicPseudoType), diags
	}
	return val, diags
}

func bindString(attr *hclsyntax.Attribute) (string, hcl.Diagnostics) {
	val, diags := bindValue(attr)
	if diags.HasErrors() || val.IsNull() {
		return "", diags
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", append(diags, errorf(attr.Expr.Range(), "%s must be a string: %v", attr.Name, err))
	}
	return str.AsString(), diags
}

func bindBool(attr *hclsyntax.Attribute) (bool, hcl.Diagnostics) {
	val, diags := bindValue(attr)
	if diags.HasErrors() || val.IsNull() {
		return false, diags
	}

	b, err := convert.Convert(val, cty.Bool)
	if err != nil {
		return false, append(diags, errorf(attr.Expr.Range(), "%s must be a boolean: %v", attr.Name, err))
	}
	return b.True(), diags
}

// bindValues evaluates an attribute whose value is either a single value or a list of values.
func bindValues(attr *hclsyntax.Attribute) ([]cty.Value, hcl.Diagnostics) {
	val, diags := bindValue(attr)
	if diags.HasErrors() || val.IsNull() {
		return nil, diags
	}

	t := val.Type()
	if !t.IsTupleType() && !t.IsListType() && !t.IsSetType() {
		return []cty.Value{val}, diags
	}

	var values []cty.Value
	for it := val.ElementIterator(); it.Next(); {
		_, v := it.Element()
		values = append(values, v)
	}
	return values, diags
}

// bindNames evaluates an attribute that names one or more things, such as kind_of or default_action. Names may be
// written as bare keywords (String, create) or as strings, either alone or in a list.
func bindNames(attr *hclsyntax.Attribute) ([]string, hcl.Diagnostics) {
	if _, isTuple := attr.Expr.(*hclsyntax.TupleConsExpr); !isTuple {
		name, diags := bindName(attr.Name, attr.Expr)
		if name == "" {
			return nil, diags
		}
		return []string{name}, diags
	}

	exprs, diags := hcl.ExprList(attr.Expr)
	if diags.HasErrors() {
		return nil, diags
	}
	var names []string
	for _, expr := range exprs {
		name, nameDiags := bindName(attr.Name, expr)
		diags = append(diags, nameDiags...)
		if name != "" {
			names = append(names, name)
		}
	}
	return names, diags
}

func bindName(attrName string, expr hcl.Expression) (string, hcl.Diagnostics) {
	if keyword := hcl.ExprAsKeyword(expr); keyword != "" {
		return keyword, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() || !val.IsKnown() || !val.Type().Equals(cty.String) {
		return "", append(diags, errorf(expr.Range(), "%s must be a name or a string", attrName))
	}
	return val.AsString(), diags
}
