package model

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pulumi/chefdoc/pkg/util/contract"
)

// ScopeSeparator separates the components of a namespace path.
const ScopeSeparator = "::"

// Capitalize uppercases the first character of s and leaves the remainder untouched. Mixed-case input such as
// "myThing" becomes "MyThing", not "Mything".
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}

// SplitNamespace flattens a namespace path whose elements may themselves be scope-qualified ("chef::apache2") into
// its component scope names. Empty components are dropped.
func SplitNamespace(path []string) []string {
	var scopes []string
	for _, element := range path {
		for _, scope := range strings.Split(element, ScopeSeparator) {
			if scope != "" {
				scopes = append(scopes, scope)
			}
		}
	}
	return scopes
}

// DisplayName derives the compound display name for a lightweight resource, e.g. "my_resource" in
// ["cookbook", "chef"] becomes "Cookbook::Chef::MyResource". The result is recomputed from its inputs on every call.
func DisplayName(identifier string, namespace []string) string {
	contract.Assertf(identifier != "", "lightweight resource identifiers must not be empty")

	name := className(identifier)

	scopes := SplitNamespace(namespace)
	if len(scopes) == 0 {
		return name
	}
	for i, scope := range scopes {
		scopes[i] = Capitalize(scope)
	}
	return strings.Join(scopes, ScopeSeparator) + ScopeSeparator + name
}

func className(identifier string) string {
	if !strings.Contains(identifier, "_") {
		return Capitalize(identifier)
	}

	var name strings.Builder
	for _, segment := range strings.Split(identifier, "_") {
		name.WriteString(Capitalize(segment))
	}
	return name.String()
}

// ChildrenOfKind returns the direct children of node whose kind is kind, in the order the tree stores them.
func ChildrenOfKind(tree NodeTree, node Object, kind Kind) []Object {
	var children []Object
	for _, child := range tree.ChildrenOf(node) {
		if tree.KindOf(child) == kind {
			children = append(children, child)
		}
	}
	return children
}
