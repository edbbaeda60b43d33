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
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pulumi/chefdoc/pkg/docgen/render"
	"github.com/pulumi/chefdoc/pkg/util/cmdutil"
)

func newGenerateCmd(configPath *string) *cobra.Command {
	opts := &docgenOptions{configPath: configPath}

	cmd := &cobra.Command{
		Use:   "generate [cookbook-dir...]",
		Short: "Generate documentation for one or more cookbooks",
		Long: "Generate documentation for one or more cookbooks.\n" +
			"\n" +
			"Pages whose contents have not changed are left untouched.",
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			run, err := opts.resolve(args)
			if err != nil {
				return err
			}
			return run.generate()
		}),
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "",
		"The directory to write documentation to (default \"doc\")")

	return cmd
}

func (run *docgenRun) generate() error {
	pages, err := run.render()
	if err != nil {
		return err
	}

	summary, err := render.NewWriter(run.output).Write(pages)
	if summary != nil {
		fmt.Printf("%s %d %s (%s) to %s, %d unchanged\n", color.GreenString("Wrote"), summary.Written,
			plural(summary.Written, "page"), humanize.Bytes(summary.Bytes), run.output, summary.Unchanged)
	}
	return err
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
