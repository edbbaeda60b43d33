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
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pulumi/chefdoc/pkg/util/cmdutil"
	"github.com/pulumi/chefdoc/pkg/util/logging"
)

// NewChefdocCmd creates a new chefdoc command.
func NewChefdocCmd() *cobra.Command {
	var verbose int
	var logToStderr bool
	var colorMode string
	var configPath string

	cmd := &cobra.Command{
		Use:   "chefdoc",
		Short: "Generate reference documentation for Chef lightweight resources",
		Long: "Generate reference documentation for Chef lightweight resources.\n" +
			"\n" +
			"chefdoc reads the resources and providers declared by one or more cookbooks and writes a\n" +
			"Markdown page for every lightweight resource, a README for every cookbook, and a YAML index.\n" +
			"\n" +
			"A cookbook is a directory containing an optional metadata.hcl, resources/*.hcl, and\n" +
			"providers/*.hcl. Settings may be kept in a .chefdoc.yaml file in the working directory.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.InitLogging(logToStderr, verbose)
			return setColorMode(colorMode)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Flush()
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Use the given configuration file instead of ./.chefdoc.yaml")
	cmd.PersistentFlags().IntVarP(&verbose, "verbose", "v", 0,
		"Enable verbose logging (e.g., v=3); anything >3 is very verbose")
	cmd.PersistentFlags().BoolVar(&logToStderr, "logtostderr", false,
		"Log to stderr instead of to files")
	cmd.PersistentFlags().StringVar(&colorMode, "color", "auto",
		"Colorize output. Choices are: always, never, auto")

	cmd.AddCommand(newGenerateCmd(&configPath))
	cmd.AddCommand(newCheckCmd(&configPath))
	cmd.AddCommand(newWatchCmd(&configPath))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func setColorMode(mode string) error {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
	default:
		return cmdutil.UnsupportedChoice("color", mode, "always", "never", "auto")
	}
	return nil
}
