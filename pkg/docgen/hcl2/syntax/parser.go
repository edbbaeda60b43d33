package syntax

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/pkg/errors"

	"github.com/pulumi/chefdoc/pkg/util/contract"
)

// MetadataFileName is the name of the file that carries a cookbook's metadata.
const MetadataFileName = "metadata.hcl"

// cookbookSourceDirs are the cookbook subdirectories that may hold LWRP sources.
var cookbookSourceDirs = []string{"resources", "providers"}

type File struct {
	Name  string
	Body  *hclsyntax.Body
	Bytes []byte
}

// IsMetadata returns true if the file is a cookbook's metadata file.
func (f *File) IsMetadata() bool {
	return filepath.Base(f.Name) == MetadataFileName
}

type Parser struct {
	Files []*File

	diagnostics hcl.Diagnostics
}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) ParseFile(r io.Reader, filename string) error {
	src, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}

	hclFile, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	p.diagnostics = append(p.diagnostics, diags...)
	if hclFile == nil {
		return nil
	}

	body, ok := hclFile.Body.(*hclsyntax.Body)
	if !ok {
		return errors.Errorf("%s: unexpected body of type %T", filename, hclFile.Body)
	}
	p.Files = append(p.Files, &File{
		Name:  filename,
		Body:  body,
		Bytes: hclFile.Bytes,
	})
	return nil
}

// ParseCookbook parses the metadata and LWRP sources of the cookbook rooted at dir. Sources are read from
// metadata.hcl and from the *.hcl files directly beneath resources/ and providers/.
func (p *Parser) ParseCookbook(dir string) error {
	paths, err := CookbookSources(dir)
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := p.parsePath(path); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parsePath(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer contract.IgnoreClose(f)

	return errors.Wrapf(p.ParseFile(f, path), "parsing %s", path)
}

// CookbookSources returns the sorted list of source files that belong to the cookbook rooted at dir.
func CookbookSources(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading cookbook %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("cookbook %s is not a directory", dir)
	}

	var paths []string
	metadata := filepath.Join(dir, MetadataFileName)
	if _, err := os.Stat(metadata); err == nil {
		paths = append(paths, metadata)
	}
	for _, sub := range cookbookSourceDirs {
		matches, err := filepath.Glob(filepath.Join(dir, sub, "*.hcl"))
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}

func (p *Parser) Diagnostics() hcl.Diagnostics {
	return p.diagnostics
}

func (p *Parser) NewDiagnosticWriter(w io.Writer, width uint, color bool) hcl.DiagnosticWriter {
	return NewDiagnosticWriter(w, p.Files, width, color)
}

func NewDiagnosticWriter(w io.Writer, files []*File, width uint, color bool) hcl.DiagnosticWriter {
	fileMap := map[string]*hcl.File{}
	for _, f := range files {
		fileMap[f.Name] = &hcl.File{Body: f.Body, Bytes: f.Bytes}
	}
	return hcl.NewDiagnosticTextWriter(w, fileMap, width, color)
}
