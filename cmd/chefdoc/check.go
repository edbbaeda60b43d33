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
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pulumi/chefdoc/pkg/docgen/render"
	"github.com/pulumi/chefdoc/pkg/util/cmdutil"
)

func newCheckCmd(configPath *string) *cobra.Command {
	opts := &docgenOptions{configPath: configPath}

	cmd := &cobra.Command{
		Use:   "check [cookbook-dir...]",
		Short: "Check that generated documentation is up to date",
		Long: "Check that generated documentation is up to date.\n" +
			"\n" +
			"Prints a diff for every stale page and exits with a non-zero status if any page is missing or stale.",
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			run, err := opts.resolve(args)
			if err != nil {
				return err
			}

			pages, err := run.render()
			if err != nil {
				return err
			}

			differences, err := render.NewWriter(run.output).Check(pages)
			if err != nil {
				return err
			}
			for _, d := range differences {
				if d.Missing {
					fmt.Printf("%s %s\n", color.YellowString("missing"), d.Page)
					continue
				}
				fmt.Printf("%s %s\n%s", color.YellowString("stale"), d.Page, colorizeDiff(d.Diff))
			}
			if len(differences) > 0 {
				return errors.Errorf("%d %s out of date; run 'chefdoc generate' to update them",
					len(differences), plural(len(differences), "page"))
			}

			fmt.Printf("%s documentation in %s is up to date\n", color.GreenString("ok"), run.output)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "",
		"The directory containing the documentation to check (default \"doc\")")

	return cmd
}

func colorizeDiff(diff string) string {
	var out strings.Builder
	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			line = color.GreenString("%s", line)
		case strings.HasPrefix(line, "-"):
			line = color.RedString("%s", line)
		}
		out.WriteString(line)
	}
	return out.String()
}
