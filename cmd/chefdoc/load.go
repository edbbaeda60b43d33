// Copyright 2016-2018, Pulumi Corporation.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/hashicorp/hcl/v2"
	"github.com/pkg/errors"

	"github.com/pulumi/chefdoc/pkg/docgen/config"
	"github.com/pulumi/chefdoc/pkg/docgen/hcl2/model"
	"github.com/pulumi/chefdoc/pkg/docgen/hcl2/syntax"
	"github.com/pulumi/chefdoc/pkg/docgen/render"
	"github.com/pulumi/chefdoc/pkg/util/contract"
	"github.com/pulumi/chefdoc/pkg/util/logging"
)

// docgenOptions are the options shared by the commands that render documentation.
type docgenOptions struct {
	configPath *string
	output     string
}

// docgenRun is a fully resolved documentation run.
type docgenRun struct {
	config    *config.Config
	registry  *model.Registry
	cookbooks []string
	output    string
}

// resolve combines the configuration file with the command line. Cookbook directories given as arguments take
// precedence over those in the configuration file, as does --output.
func (opts *docgenOptions) resolve(args []string) (*docgenRun, error) {
	cfg, err := config.Load(*opts.configPath)
	if err != nil {
		return nil, err
	}
	registry, err := cfg.Registry()
	if err != nil {
		return nil, err
	}

	cookbooks := args
	if len(cookbooks) == 0 {
		cookbooks = cfg.Cookbooks
	}
	if len(cookbooks) == 0 {
		return nil, errors.New("no cookbooks to document; pass cookbook directories or list them in " +
			config.DefaultFileName)
	}

	output := opts.output
	if output == "" {
		output = cfg.OutputDir()
	}

	return &docgenRun{config: cfg, registry: registry, cookbooks: cookbooks, output: output}, nil
}

// render parses and binds the run's cookbooks and renders their pages. Diagnostics are printed to stderr.
func (run *docgenRun) render() (map[string][]byte, error) {
	program, err := run.bind()
	if err != nil {
		return nil, err
	}
	return render.Pages(program)
}

func (run *docgenRun) bind() (*model.Program, error) {
	sources := map[string][]*syntax.File{}
	var files []*syntax.File
	var diags hcl.Diagnostics
	for _, dir := range run.cookbooks {
		name := filepath.Base(filepath.Clean(dir))
		if _, ok := sources[name]; ok {
			return nil, errors.Errorf("cookbook %q was given more than once", name)
		}

		parser := syntax.NewParser()
		if err := parser.ParseCookbook(dir); err != nil {
			return nil, err
		}
		logging.V(3).Infof("parsed %d files from cookbook %s", len(parser.Files), dir)

		sources[name] = parser.Files
		files = append(files, parser.Files...)
		diags = append(diags, parser.Diagnostics()...)
	}
	if diags.HasErrors() {
		run.printDiagnostics(files, diags)
		return nil, errors.New("failed to parse cookbooks")
	}

	program, bindDiags, err := model.BindProgram(sources, run.registry)
	if err != nil {
		return nil, err
	}
	diags = append(diags, bindDiags...)
	run.printDiagnostics(files, diags)
	if diags.HasErrors() {
		return nil, errors.New("failed to bind cookbooks")
	}
	return program, nil
}

func (run *docgenRun) printDiagnostics(files []*syntax.File, diags hcl.Diagnostics) {
	if len(diags) == 0 {
		return
	}
	writer := syntax.NewDiagnosticWriter(os.Stderr, files, run.config.Width, !color.NoColor)
	contract.IgnoreError(writer.WriteDiagnostics(diags))
}
