package render

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/pulumi/chefdoc/pkg/util/contract"
	"github.com/pulumi/chefdoc/pkg/util/logging"
)

// LockFileName is the name of the advisory lock file chefdoc holds in an output directory while writing to it.
const LockFileName = ".chefdoc.lock"

// Writer writes rendered pages to an output directory.
type Writer struct {
	Dir string
}

// Summary describes the outcome of a Write.
type Summary struct {
	Written   int
	Unchanged int
	Bytes     uint64
}

// Difference describes a page whose contents on disk do not match its rendered contents.
type Difference struct {
	Page    string
	Missing bool
	Diff    string
}

// NewWriter returns a writer for the given output directory.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// Write writes every page beneath the output directory, leaving pages whose contents are unchanged untouched. Pages
// that cannot be written do not stop the others from being written; their errors are aggregated.
func (w *Writer) Write(pages map[string][]byte) (*Summary, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "creating output directory %s", w.Dir)
	}

	unlock, err := w.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	summary := &Summary{}
	var result error
	for _, name := range sortedPages(pages) {
		contents := pages[name]
		path := w.path(name)

		if existing, err := ioutil.ReadFile(path); err == nil && bytes.Equal(existing, contents) {
			logging.V(5).Infof("%s is up to date", path)
			summary.Unchanged++
			continue
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			logging.Errorf("creating directory for %s: %v", path, err)
			result = multierror.Append(result, errors.Wrapf(err, "creating directory for %s", name))
			continue
		}
		if err := ioutil.WriteFile(path, contents, 0644); err != nil {
			logging.Errorf("writing %s: %v", path, err)
			result = multierror.Append(result, errors.Wrapf(err, "writing %s", name))
			continue
		}
		logging.V(3).Infof("wrote %s (%d bytes)", path, len(contents))
		summary.Written++
		summary.Bytes += uint64(len(contents))
	}
	return summary, result
}

// Check compares every page with its contents on disk and returns the pages that are missing or stale.
func (w *Writer) Check(pages map[string][]byte) ([]Difference, error) {
	var differences []Difference
	for _, name := range sortedPages(pages) {
		existing, err := ioutil.ReadFile(w.path(name))
		switch {
		case os.IsNotExist(err):
			differences = append(differences, Difference{Page: name, Missing: true})
		case err != nil:
			return nil, errors.Wrapf(err, "reading %s", name)
		case !bytes.Equal(existing, pages[name]):
			differences = append(differences, Difference{
				Page: name,
				Diff: LineDiff(string(existing), string(pages[name])),
			})
		}
	}
	return differences, nil
}

func (w *Writer) path(name string) string {
	return filepath.Join(w.Dir, filepath.FromSlash(name))
}

func (w *Writer) lock() (func(), error) {
	lock := flock.New(filepath.Join(w.Dir, LockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, "locking %s", w.Dir)
	}
	if !locked {
		return nil, errors.Errorf("%s is being written by another chefdoc process", w.Dir)
	}
	return func() {
		contract.IgnoreError(lock.Unlock())
	}, nil
}

func sortedPages(pages map[string][]byte) []string {
	names := make([]string, 0, len(pages))
	for name := range pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LineDiff returns a line-oriented diff from before to after. Removed lines are prefixed with "-", added lines with "+",
// and unchanged lines with a space.
func LineDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				out.WriteString("\n")
			}
		}
	}
	return out.String()
}
