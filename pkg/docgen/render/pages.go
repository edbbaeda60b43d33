package render

import (
	"bytes"
	"path"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"

	"github.com/pulumi/chefdoc/pkg/docgen/hcl2/model"
)

const (
	// IndexPage is the name of the machine-readable index of all cookbooks.
	IndexPage = "index.yaml"
	// cookbookPage is the name of each cookbook's index page.
	cookbookPage = "README.md"
)

var funcs = template.FuncMap{
	"cell": tableCell,
}

var (
	resourceTemplate = template.Must(template.New("resource").Funcs(funcs).Parse(resourcePageTemplate))
	cookbookTemplate = template.Must(template.New("cookbook").Funcs(funcs).Parse(cookbookPageTemplate))
)

type resourceView struct {
	LongName      string
	DSLName       string
	Cookbook      string
	Description   string
	DefaultAction string
	NameExample   string
	Usage         []string
	Actions       []actionView
	Attributes    []attributeView
	Providers     []providerView
}

type actionView struct {
	Name        string
	Description string
	Default     bool
}

type attributeView struct {
	Name    string
	Type    string
	Default string
	Notes   string
}

type providerView struct {
	Path        string
	Description string
}

type cookbookView struct {
	Name        string
	Description string
	Version     string
	Maintainer  string
	License     string
	Depends     []string
	Resources   []cookbookResourceView
}

type cookbookResourceView struct {
	DSLName  string
	LongName string
	Page     string
}

// ResourcePagePath returns the path of a resource's page relative to the output directory.
func ResourcePagePath(r *model.ResourceObject) string {
	return path.Join(cookbookName(r), r.Name()+".md")
}

// CookbookPagePath returns the path of a cookbook's page relative to the output directory.
func CookbookPagePath(c *model.CookbookObject) string {
	return path.Join(c.Name(), cookbookPage)
}

func cookbookName(r *model.ResourceObject) string {
	if ns := r.Namespace(); ns != nil {
		return ns.Name()
	}
	return ""
}

// ResourcePage renders the Markdown page of a lightweight resource.
func ResourcePage(r *model.ResourceObject) ([]byte, error) {
	view := resourceView{
		LongName:      r.LongName(),
		DSLName:       r.DSLName(),
		Cookbook:      cookbookName(r),
		Description:   r.Description,
		DefaultAction: r.DefaultAction(),
		NameExample:   "name",
	}

	defaultAction := r.DefaultAction()
	for _, action := range r.Actions() {
		view.Actions = append(view.Actions, actionView{
			Name:        action.Name(),
			Description: action.Description,
			Default:     action.Name() == defaultAction,
		})
	}

	for _, attr := range r.Attributes() {
		av := attributeView{
			Name:  attr.Name(),
			Type:  attr.Type.String(),
			Notes: attributeNotes(attr),
		}
		if attr.HasDefault() {
			av.Default = FormatValue(attr.Default)
			if !attr.NameAttribute {
				view.Usage = append(view.Usage, attr.Name()+" "+av.Default)
			}
		}
		if attr.NameAttribute {
			view.NameExample = attr.Name()
		}
		view.Attributes = append(view.Attributes, av)
	}

	for _, p := range r.Providers() {
		view.Providers = append(view.Providers, providerView{Path: p.Path(), Description: p.Description})
	}

	return execute(resourceTemplate, view)
}

func attributeNotes(attr *model.AttributeObject) string {
	var notes []string
	if attr.NameAttribute {
		notes = append(notes, "**Name attribute.**")
	}
	if attr.Required {
		notes = append(notes, "**Required.**")
	}
	if len(attr.EqualTo) > 0 {
		notes = append(notes, "One of "+formatValues(attr.EqualTo)+".")
	}
	if attr.Regex != "" {
		notes = append(notes, "Must match `/"+attr.Regex+"/`.")
	}
	if attr.Description != "" {
		notes = append(notes, attr.Description)
	}
	return strings.Join(notes, " ")
}

func formatValues(values []cty.Value) string {
	formatted := make([]string, len(values))
	for i, v := range values {
		formatted[i] = "`" + FormatValue(v) + "`"
	}
	return strings.Join(formatted, ", ")
}

// CookbookPage renders the Markdown index page of a cookbook.
func CookbookPage(c *model.CookbookObject) ([]byte, error) {
	view := cookbookView{
		Name:        c.Name(),
		Description: c.Description,
		Maintainer:  c.Maintainer,
		License:     c.License,
		Depends:     c.Depends,
	}
	if c.Version != nil {
		view.Version = c.Version.String()
	}
	for _, r := range c.Resources() {
		view.Resources = append(view.Resources, cookbookResourceView{
			DSLName:  r.DSLName(),
			LongName: r.LongName(),
			Page:     path.Base(ResourcePagePath(r)),
		})
	}

	return execute(cookbookTemplate, view)
}

// Pages renders every page of a program, keyed by path relative to the output directory. It is an error for two
// pages to share a path, as a resource named README would with its cookbook's page.
func Pages(p *model.Program) (map[string][]byte, error) {
	pages := map[string][]byte{}
	owners := map[string]string{}
	add := func(path, owner string, page []byte) error {
		if existing, ok := owners[path]; ok {
			return errors.Errorf("%s and %s would both be written to %s", existing, owner, path)
		}
		owners[path] = owner
		pages[path] = page
		return nil
	}

	for _, c := range p.Cookbooks {
		page, err := CookbookPage(c)
		if err != nil {
			return nil, errors.Wrapf(err, "rendering cookbook %s", c.Name())
		}
		if err := add(CookbookPagePath(c), "cookbook "+c.Name(), page); err != nil {
			return nil, err
		}

		for _, r := range c.Resources() {
			page, err := ResourcePage(r)
			if err != nil {
				return nil, errors.Wrapf(err, "rendering resource %s", r.Path())
			}
			if err := add(ResourcePagePath(r), "resource "+r.Path(), page); err != nil {
				return nil, err
			}
		}
	}

	index, err := Index(p.Cookbooks)
	if err != nil {
		return nil, err
	}
	if err := add(IndexPage, "the index", index); err != nil {
		return nil, err
	}
	return pages, nil
}

func execute(t *template.Template, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "executing %s template", t.Name())
	}
	return buf.Bytes(), nil
}

// tableCell makes s safe to use in a Markdown table cell.
func tableCell(s string) string {
	s = strings.Replace(s, "|", `\|`, -1)
	return strings.Join(strings.Fields(strings.Replace(s, "\n", " ", -1)), " ")
}
