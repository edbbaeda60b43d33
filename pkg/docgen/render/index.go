package render

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/pulumi/chefdoc/pkg/docgen/hcl2/model"
)

type indexDoc struct {
	Cookbooks []indexCookbook `yaml:"cookbooks"`
}

type indexCookbook struct {
	Name      string          `yaml:"name"`
	Version   string          `yaml:"version,omitempty"`
	Page      string          `yaml:"page"`
	Resources []indexResource `yaml:"resources,omitempty"`
}

type indexResource struct {
	Name          string   `yaml:"name"`
	LongName      string   `yaml:"long_name"`
	DSLName       string   `yaml:"dsl_name"`
	Page          string   `yaml:"page"`
	DefaultAction string   `yaml:"default_action"`
	Attributes    []string `yaml:"attributes,omitempty"`
	Actions       []string `yaml:"actions,omitempty"`
	Providers     []string `yaml:"providers,omitempty"`
}

// Index renders a YAML index of the given cookbooks and their lightweight resources.
func Index(cookbooks []*model.CookbookObject) ([]byte, error) {
	doc := indexDoc{Cookbooks: []indexCookbook{}}
	for _, c := range cookbooks {
		ic := indexCookbook{Name: c.Name(), Page: CookbookPagePath(c)}
		if c.Version != nil {
			ic.Version = c.Version.String()
		}

		for _, r := range c.Resources() {
			ir := indexResource{
				Name:          r.Name(),
				LongName:      r.LongName(),
				DSLName:       r.DSLName(),
				Page:          ResourcePagePath(r),
				DefaultAction: r.DefaultAction(),
			}
			for _, attr := range r.Attributes() {
				ir.Attributes = append(ir.Attributes, attr.Name())
			}
			for _, action := range r.Actions() {
				ir.Actions = append(ir.Actions, action.Name())
			}
			for _, p := range r.Providers() {
				ir.Providers = append(ir.Providers, p.Path())
			}
			ic.Resources = append(ic.Resources, ir)
		}
		doc.Cookbooks = append(doc.Cookbooks, ic)
	}

	bytes, err := yaml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling index")
	}
	return bytes, nil
}
