package model

import (
	"sort"
	"strings"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/pulumi/chefdoc/pkg/docgen/hcl2/syntax"
)

const siteResource = `
resource "site" {
  description    = "Manages an apache2 virtual host."
  default_action = "enable"

  attribute "name" {
    kind_of        = String
    name_attribute = true
  }

  action "enable" {
    description = "Enables the site."
  }

  attribute "port" {
    kind_of = "Integer"
    default = 80
  }

  attribute "enabled" {
    kind_of = [TrueClass, FalseClass]
    default = true
  }

  attribute "protocol" {
    equal_to    = ["http", "https"]
    default     = "http"
    required    = true
    regex       = "^https?$"
    description = "The protocol to serve."
  }

  action "disable" {}
}
`

const siteProvider = `
provider "site" {
  description      = "Manages sites with a2ensite."
  whyrun_supported = true

  action "enable" {}
  action "disable" {}
}
`

const metadata = `
name        = "apache2"
version     = "1.2"
description = "Installs and configures apache2."
maintainer  = "Opscode, Inc."
license     = "Apache 2.0"
depends     = ["logrotate", "iptables"]
`

func parseFiles(t *testing.T, sources map[string]string) []*syntax.File {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	parser := syntax.NewParser()
	for _, name := range names {
		require.NoError(t, parser.ParseFile(strings.NewReader(sources[name]), name))
	}
	require.False(t, parser.Diagnostics().HasErrors(), "%v", parser.Diagnostics())
	return parser.Files
}

func bindSources(t *testing.T, registry *Registry, sources map[string]string) (*CookbookObject, hcl.Diagnostics) {
	cookbook, diags, err := BindCookbook("apache2", parseFiles(t, sources), registry, NewTree())
	require.NoError(t, err)
	return cookbook, diags
}

func diagnosticSummaries(diags hcl.Diagnostics) []string {
	summaries := make([]string, len(diags))
	for i, d := range diags {
		summaries[i] = d.Summary
	}
	return summaries
}

func TestBindCookbook(t *testing.T) {
	cookbook, diags := bindSources(t, nil, map[string]string{
		"apache2/metadata.hcl":       metadata,
		"apache2/resources/site.hcl": siteResource,
		"apache2/providers/site.hcl": siteProvider,
	})
	require.Empty(t, diags)

	assert.Equal(t, "1.2.0", cookbook.Version.String())
	assert.Equal(t, "Installs and configures apache2.", cookbook.Description)
	assert.Equal(t, "Opscode, Inc.", cookbook.Maintainer)
	assert.Equal(t, "Apache 2.0", cookbook.License)
	assert.Equal(t, []string{"logrotate", "iptables"}, cookbook.Depends)

	resources := cookbook.Resources()
	require.Len(t, resources, 1)
	site := resources[0]
	assert.Equal(t, "Chef::Apache2::Site", site.LongName())
	assert.Equal(t, "Manages an apache2 virtual host.", site.Description)
	assert.Equal(t, "enable", site.DefaultAction())
	assert.NotNil(t, site.SyntaxNode())

	attributes := site.Attributes()
	require.Len(t, attributes, 4)
	var names []string
	for _, attr := range attributes {
		names = append(names, attr.Name())
	}
	assert.Equal(t, []string{"name", "port", "enabled", "protocol"}, names)

	name, port, enabled, protocol := attributes[0], attributes[1], attributes[2], attributes[3]
	assert.Equal(t, StringType, name.Type)
	assert.True(t, name.NameAttribute)
	assert.False(t, name.HasDefault())

	assert.Equal(t, IntegerType, port.Type)
	assert.True(t, port.HasDefault())
	assert.True(t, port.Default.Equals(cty.NumberIntVal(80)).True())

	assert.True(t, IsBooleanType(enabled.Type))
	assert.True(t, enabled.Default.RawEquals(cty.True))

	assert.Equal(t, AnyType, protocol.Type)
	assert.True(t, protocol.Required)
	assert.Equal(t, "^https?$", protocol.Regex)
	assert.Equal(t, "The protocol to serve.", protocol.Description)
	require.Len(t, protocol.EqualTo, 2)
	assert.Equal(t, "https", protocol.EqualTo[1].AsString())

	actions := site.Actions()
	require.Len(t, actions, 2)
	assert.Equal(t, "enable", actions[0].Name())
	assert.Equal(t, "Enables the site.", actions[0].Description)
	assert.Equal(t, "disable", actions[1].Name())

	providers := site.Providers()
	require.Len(t, providers, 1)
	assert.Equal(t, "Manages sites with a2ensite.", providers[0].Description)
	assert.True(t, providers[0].WhyRunSupported)
	assert.Len(t, providers[0].Actions(), 2)
	assert.Same(t, site, providers[0].Resource)
}

func TestBindUnknownKeyword(t *testing.T) {
	cookbook, diags := bindSources(t, nil, map[string]string{
		"resources/site.hcl": `
resource "site" {
  atribute "name" {}
}

definition "vhost" {}
`,
	})
	require.Len(t, diags, 2)
	assert.Equal(t, `unsupported block type "atribute" in resource scope`, diags[0].Summary)
	assert.Contains(t, diags[0].Detail, `did you mean "attribute"?`)
	assert.Equal(t, `unsupported block type "definition" in chef scope`, diags[1].Summary)
	assert.NotContains(t, diags[1].Detail, "did you mean")

	resources := cookbook.Resources()
	require.Len(t, resources, 1)
	assert.Empty(t, resources[0].Attributes())
}

func TestBindLabelsAndDuplicates(t *testing.T) {
	_, diags := bindSources(t, nil, map[string]string{
		"resources/a.hcl": `
resource "site" {}
resource "site" {}
resource {}
resource "a" "b" {}
`,
	})
	assert.Equal(t, []string{
		`resource "chef::apache2::site" already declared`,
		"resource blocks must have exactly one label",
		"resource blocks must have exactly one label",
	}, diagnosticSummaries(diags))
}

func TestBindUnsupportedAttributes(t *testing.T) {
	_, diags := bindSources(t, nil, map[string]string{
		"resources/site.hcl": `
top = 1

resource "site" {
  colour = "blue"

  attribute "name" {
    kind = String
  }

  action "enable" {
    default = "yes please"
  }
}
`,
	})
	require.Len(t, diags, 4)
	assert.Equal(t, []string{
		`unsupported attribute "top" in chef block`,
		`unsupported attribute "colour" in resource block`,
		`unsupported attribute "kind" in attribute block`,
	}, diagnosticSummaries(diags[:3]))
	assert.Equal(t, hcl.DiagError, diags[3].Severity)
}

func TestBindStaticValuesOnly(t *testing.T) {
	cookbook, diags := bindSources(t, nil, map[string]string{
		"resources/site.hcl": `
resource "site" {
  attribute "port" {
    default = var.port
  }
}
`,
	})
	assert.True(t, diags.HasErrors())

	site, ok := cookbook.Resource("site")
	require.True(t, ok)
	require.Len(t, site.Attributes(), 1)
	assert.False(t, site.Attributes()[0].HasDefault())
}

func TestBindActionsShorthand(t *testing.T) {
	cookbook, diags := bindSources(t, nil, map[string]string{
		"resources/site.hcl": `
resource "site" {
  actions        = [enable, "disable", reload]
  default_action = reload

  action "disable" {
    description = "Disables the site."
  }
}
`,
	})
	require.Empty(t, diags)

	site, ok := cookbook.Resource("site")
	require.True(t, ok)
	var names []string
	for _, action := range site.Actions() {
		names = append(names, action.Name())
	}
	assert.Equal(t, []string{"enable", "reload", "disable"}, names)
	assert.Equal(t, "reload", site.DefaultAction())

	disable, ok := site.Action("disable")
	require.True(t, ok)
	assert.Equal(t, "Disables the site.", disable.Description)
}

func TestBindUnknownDefaultAction(t *testing.T) {
	_, diags := bindSources(t, nil, map[string]string{
		"resources/site.hcl": `
resource "site" {
  default_action = "restart"
  action "enable" {}
}

resource "noop" {
  default_action = nothing
}
`,
	})
	assert.Equal(t, []string{`default action "restart" is not an action of resource "site"`},
		diagnosticSummaries(diags))
}

func TestBindProviderLinking(t *testing.T) {
	cookbook, diags := bindSources(t, nil, map[string]string{
		"providers/a2.hcl": `
provider "a2" {
  resource = site
}

provider "orphan" {}
`,
		"resources/site.hcl": `resource "site" {}`,
	})
	require.Len(t, diags, 1)
	assert.Equal(t, hcl.DiagWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Summary, `provider "orphan" implements resource "orphan"`)

	site, ok := cookbook.Resource("site")
	require.True(t, ok)
	require.Len(t, site.Providers(), 1)
	assert.Equal(t, "a2", site.Providers()[0].Name())
}

func TestBindMetadataProblems(t *testing.T) {
	cookbook, diags := bindSources(t, nil, map[string]string{
		"metadata.hcl": `
name    = "httpd"
version = "one point two"
`,
	})
	require.Len(t, diags, 2)
	assert.Equal(t, hcl.DiagWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Summary, `metadata names cookbook "httpd"`)
	assert.Equal(t, hcl.DiagError, diags[1].Severity)
	assert.Contains(t, diags[1].Summary, `invalid cookbook version "one point two"`)
	assert.Nil(t, cookbook.Version)
}

func TestBindRegisteredKinds(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(KindResource, "notifies", "notification"))

	cookbook, diags := bindSources(t, registry, map[string]string{
		"resources/site.hcl": `
resource "site" {
  attribute "name" {}

  notifies "restart" {
    resource = "service[apache2]"
    timing   = "delayed"
  }

  action "enable" {}
}
`,
	})
	require.Empty(t, diags)

	site, ok := cookbook.Resource("site")
	require.True(t, ok)
	assert.Len(t, site.Attributes(), 1)
	assert.Len(t, site.Actions(), 1)

	notifications := ChildrenOfKind(cookbook.tree, site, "notification")
	require.Len(t, notifications, 1)
	notification, ok := notifications[0].(*GenericObject)
	require.True(t, ok)
	assert.Equal(t, "restart", notification.Name())
	assert.Equal(t, "delayed", notification.Attributes["timing"].AsString())
}

func TestBindDuplicateCookbook(t *testing.T) {
	tree := NewTree()
	_, _, err := BindCookbook("apache2", nil, nil, tree)
	require.NoError(t, err)
	_, _, err = BindCookbook("apache2", nil, nil, tree)
	assert.Error(t, err)
}

func TestBindProgram(t *testing.T) {
	apache := parseFiles(t, map[string]string{"apache2/resources/site.hcl": `resource "site" {}`})
	mysql := parseFiles(t, map[string]string{"mysql/resources/database.hcl": `resource "database" {}`})

	program, diags, err := BindProgram(map[string][]*syntax.File{
		"mysql":   mysql,
		"apache2": apache,
	}, nil)
	require.NoError(t, err)
	require.Empty(t, diags)

	require.Len(t, program.Cookbooks, 2)
	assert.Equal(t, "apache2", program.Cookbooks[0].Name())
	assert.Equal(t, "mysql", program.Cookbooks[1].Name())

	var longNames []string
	for _, r := range program.Resources() {
		longNames = append(longNames, r.LongName())
	}
	assert.Equal(t, []string{"Chef::Apache2::Site", "Chef::Mysql::Database"}, longNames)
}

func TestBindActionsInSourceOrder(t *testing.T) {
	cookbook, diags := bindSources(t, nil, map[string]string{
		"resources/site.hcl": `
resource "site" {
  action "first" {}

  actions = [second, third]

  action "fourth" {}
}

resource "trailing" {
  action "enable" {}
  actions = [disable]
}
`,
	})
	require.Empty(t, diags)

	actionNames := func(name string) []string {
		r, ok := cookbook.Resource(name)
		require.True(t, ok)
		var names []string
		for _, action := range r.Actions() {
			names = append(names, action.Name())
		}
		return names
	}
	assert.Equal(t, []string{"first", "second", "third", "fourth"}, actionNames("site"))
	assert.Equal(t, []string{"enable", "disable"}, actionNames("trailing"))

	trailing, _ := cookbook.Resource("trailing")
	assert.Equal(t, "enable", trailing.DefaultAction())
}

func TestBindUnbindableKinds(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(KindResource, "scope", "scope"))
	registry.RegisterFactory("scope", func(_ NodeTree, namespace Object, name string) Object {
		return NewNamespaceObject("scope", namespace, name)
	})

	cookbook, diags := bindSources(t, registry, map[string]string{
		"resources/site.hcl": `
resource "site" {
  scope "inner" {}
  action "enable" {}
}
`,
	})
	require.Len(t, diags, 1)
	assert.Equal(t, "scope blocks declare scope objects, which cannot be bound from source", diags[0].Summary)

	site, ok := cookbook.Resource("site")
	require.True(t, ok)
	assert.Empty(t, ChildrenOfKind(cookbook.tree, site, "scope"))
	assert.Len(t, site.Actions(), 1)
}
