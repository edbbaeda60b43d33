package render

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readPage(t *testing.T, dir, name string) string {
	b, err := ioutil.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	require.NoError(t, err)
	return string(b)
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "doc")
	w := NewWriter(dir)

	pages := map[string][]byte{
		"index.yaml":      []byte("cookbooks: []\n"),
		"apache2/site.md": []byte("# Chef::Apache2::Site\n"),
	}
	summary, err := w.Write(pages)
	require.NoError(t, err)
	assert.Equal(t, &Summary{Written: 2, Bytes: 36}, summary)
	assert.Equal(t, "# Chef::Apache2::Site\n", readPage(t, dir, "apache2/site.md"))

	pages["apache2/site.md"] = []byte("# Chef::Apache2::Site\n\nUpdated.\n")
	summary, err = w.Write(pages)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Written)
	assert.Equal(t, 1, summary.Unchanged)
	assert.Equal(t, "# Chef::Apache2::Site\n\nUpdated.\n", readPage(t, dir, "apache2/site.md"))
}

func TestWriteAggregatesErrors(t *testing.T) {
	dir := t.TempDir()
	// A file where a directory is needed makes every page beneath it unwritable.
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "apache2"), nil, 0644))

	summary, err := NewWriter(dir).Write(map[string][]byte{
		"apache2/site.md":   []byte("site"),
		"apache2/module.md": []byte("module"),
		"index.yaml":        []byte("index"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 errors occurred")
	assert.Equal(t, 1, summary.Written)
}

func TestWriteLocked(t *testing.T) {
	dir := t.TempDir()
	lock := flock.New(filepath.Join(dir, LockFileName))
	locked, err := lock.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer func() { assert.NoError(t, lock.Unlock()) }()

	_, err = NewWriter(dir).Write(map[string][]byte{"index.yaml": nil})
	assert.EqualError(t, err, dir+" is being written by another chefdoc process")
	_, statErr := os.Stat(filepath.Join(dir, "index.yaml"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	pages := map[string][]byte{
		"a.md": []byte("one\ntwo\nthree\n"),
		"b.md": []byte("same\n"),
	}
	_, err := w.Write(pages)
	require.NoError(t, err)

	differences, err := w.Check(pages)
	require.NoError(t, err)
	assert.Empty(t, differences)

	pages["a.md"] = []byte("one\n2\nthree\n")
	pages["c.md"] = []byte("new\n")
	differences, err = w.Check(pages)
	require.NoError(t, err)
	assert.Equal(t, []Difference{
		{Page: "a.md", Diff: " one\n-two\n+2\n three\n"},
		{Page: "c.md", Missing: true},
	}, differences)
}

func TestLineDiff(t *testing.T) {
	assert.Equal(t, " a\n b\n", LineDiff("a\nb\n", "a\nb\n"))
	assert.Equal(t, "+a\n", LineDiff("", "a\n"))
	assert.Equal(t, "-a\n", LineDiff("a\n", ""))
	assert.Equal(t, " a\n-b\n+c\n", LineDiff("a\nb", "a\nc"))
}
