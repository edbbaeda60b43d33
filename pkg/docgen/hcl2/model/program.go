package model

import (
	"io"
	"sort"

	"github.com/hashicorp/hcl/v2"

	"github.com/pulumi/chefdoc/pkg/docgen/hcl2/syntax"
)

// Program is the documentation tree for a set of cookbooks.
type Program struct {
	Tree      *Tree
	Cookbooks []*CookbookObject

	files []*syntax.File
}

// BindProgram binds the source files of each named cookbook into a single documentation tree. Cookbooks are bound in
// name order.
func BindProgram(sources map[string][]*syntax.File, registry *Registry) (*Program, hcl.Diagnostics, error) {
	if registry == nil {
		registry = NewRegistry()
	}

	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	p := &Program{Tree: NewTree()}

	var diagnostics hcl.Diagnostics
	for _, name := range names {
		files := sources[name]
		p.files = append(p.files, files...)

		cookbook, diags, err := BindCookbook(name, files, registry, p.Tree)
		if err != nil {
			return nil, nil, err
		}
		diagnostics = append(diagnostics, diags...)
		p.Cookbooks = append(p.Cookbooks, cookbook)
	}

	return p, diagnostics, nil
}

// Resources returns every lightweight resource in the program in cookbook order.
func (p *Program) Resources() []*ResourceObject {
	var resources []*ResourceObject
	for _, c := range p.Cookbooks {
		resources = append(resources, c.Resources()...)
	}
	return resources
}

func (p *Program) NewDiagnosticWriter(w io.Writer, width uint, color bool) hcl.DiagnosticWriter {
	return syntax.NewDiagnosticWriter(w, p.files, width, color)
}
