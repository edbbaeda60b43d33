package syntax

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCookbook(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for name, contents := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, ioutil.WriteFile(path, []byte(contents), 0644))
	}
	return dir
}

func TestCookbookSources(t *testing.T) {
	dir := writeCookbook(t, map[string]string{
		"metadata.hcl":           `name = "apache2"`,
		"resources/site.hcl":     `resource "site" {}`,
		"resources/module.hcl":   `resource "module" {}`,
		"resources/README.md":    "# resources",
		"providers/site.hcl":     `provider "site" {}`,
		"recipes/default.hcl":    `resource "ignored" {}`,
		"resources/nested/x.hcl": `resource "x" {}`,
	})

	paths, err := CookbookSources(dir)
	require.NoError(t, err)

	var rel []string
	for _, p := range paths {
		r, err := filepath.Rel(dir, p)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	assert.Equal(t, []string{
		"metadata.hcl",
		"resources/module.hcl",
		"resources/site.hcl",
		"providers/site.hcl",
	}, rel)
}

func TestCookbookSourcesWithoutMetadata(t *testing.T) {
	dir := writeCookbook(t, map[string]string{"providers/site.hcl": `provider "site" {}`})

	paths, err := CookbookSources(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "providers", "site.hcl")}, paths)
}

func TestCookbookSourcesErrors(t *testing.T) {
	dir := writeCookbook(t, map[string]string{"metadata.hcl": ""})

	_, err := CookbookSources(filepath.Join(dir, "missing"))
	assert.Error(t, err)

	_, err = CookbookSources(filepath.Join(dir, "metadata.hcl"))
	assert.EqualError(t, err, "cookbook "+filepath.Join(dir, "metadata.hcl")+" is not a directory")
}

func TestParseCookbook(t *testing.T) {
	dir := writeCookbook(t, map[string]string{
		"metadata.hcl":       `name = "apache2"`,
		"resources/site.hcl": "resource \"site\" {\n  attribute \"port\" {}\n}\n",
	})

	parser := NewParser()
	require.NoError(t, parser.ParseCookbook(dir))
	assert.Empty(t, parser.Diagnostics())

	require.Len(t, parser.Files, 2)
	assert.True(t, parser.Files[0].IsMetadata())
	assert.False(t, parser.Files[1].IsMetadata())

	body := parser.Files[1].Body
	require.Len(t, body.Blocks, 1)
	assert.Equal(t, "resource", body.Blocks[0].Type)
	assert.Equal(t, []string{"site"}, body.Blocks[0].Labels)
	assert.Equal(t, 1, body.Blocks[0].TypeRange.Start.Line)
}

func TestParseErrors(t *testing.T) {
	parser := NewParser()
	require.NoError(t, parser.ParseFile(strings.NewReader("resource \"site\" {\n  attribute =\n}\n"), "site.hcl"))
	require.True(t, parser.Diagnostics().HasErrors())

	var buf bytes.Buffer
	w := parser.NewDiagnosticWriter(&buf, 0, false)
	require.NoError(t, w.WriteDiagnostics(parser.Diagnostics()))
	assert.Contains(t, buf.String(), "site.hcl")
}
