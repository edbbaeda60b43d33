package render

// resourcePageTemplate renders the page of a single lightweight resource.
const resourcePageTemplate = `# {{.LongName}}
{{with .Description}}
{{.}}
{{end}}
Defined in cookbook ` + "`{{.Cookbook}}`" + `. Recipes use it as ` + "`{{.DSLName}}`" + `.

## Usage

` + "```ruby" + `
{{.DSLName}} "{{.NameExample}}" do
{{- range .Usage}}
  {{.}}
{{- end}}
  action :{{.DefaultAction}}
end
` + "```" + `

## Actions
{{if .Actions}}
| Action | Description |
| --- | --- |
{{- range .Actions}}
| ` + "`:{{.Name}}`" + `{{if .Default}} _(default)_{{end}} | {{cell .Description}} |
{{- end}}
{{else}}
This resource declares no actions; its default action is ` + "`:{{.DefaultAction}}`" + `.
{{end}}
## Attributes
{{if .Attributes}}
| Attribute | Type | Default | Description |
| --- | --- | --- | --- |
{{- range .Attributes}}
| ` + "`{{.Name}}`" + ` | {{cell .Type}} | {{if .Default}}` + "`{{cell .Default}}`" + `{{end}} | {{cell .Notes}} |
{{- end}}
{{else}}
This resource declares no attributes.
{{end}}
{{- if .Providers}}
## Providers
{{range .Providers}}
- ` + "`{{.Path}}`" + `{{with .Description}}: {{.}}{{end}}
{{- end}}
{{end}}`

// cookbookPageTemplate renders the index page of a cookbook.
const cookbookPageTemplate = `# {{.Name}}
{{with .Description}}
{{.}}
{{end}}
{{- if or .Version .Maintainer .License}}
| | |
| --- | --- |
{{- with .Version}}
| Version | {{.}} |
{{- end}}
{{- with .Maintainer}}
| Maintainer | {{cell .}} |
{{- end}}
{{- with .License}}
| License | {{cell .}} |
{{- end}}
{{end}}
{{- with .Depends}}
## Dependencies
{{range .}}
- ` + "`{{.}}`" + `
{{- end}}
{{end}}
## Resources
{{if .Resources}}
| Resource | Class |
| --- | --- |
{{- range .Resources}}
| [` + "`{{.DSLName}}`" + `]({{.Page}}) | ` + "`{{.LongName}}`" + ` |
{{- end}}
{{else}}
This cookbook declares no lightweight resources.
{{end}}`
