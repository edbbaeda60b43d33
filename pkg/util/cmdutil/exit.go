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

package cmdutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pulumi/chefdoc/pkg/util/contract"
	"github.com/pulumi/chefdoc/pkg/util/logging"
)

// ExitCode is returned to the shell when a command fails.
const ExitCode = 255

// RunFunc wraps an error-returning run func with standard error handling.
func RunFunc(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := run(cmd, args); err != nil {
			Exit(err)
		}
	}
}

// Exit exits with a given error.
func Exit(err error) {
	ExitError(err.Error())
}

// ExitError issues an error and exits with a standard error exit code.
func ExitError(msg string) {
	contract.Assert(msg != "")
	logging.V(3).Infof("exiting: %s", msg)
	fmt.Fprintln(os.Stderr, color.RedString("error: ")+msg)
	logging.Flush()
	os.Exit(ExitCode)
}

// UnsupportedChoice returns an error describing an unsupported value for a flag with a fixed set of choices.
func UnsupportedChoice(flag, value string, choices ...string) error {
	return errors.Errorf("unsupported --%s value %q; choices are: %s", flag, value, strings.Join(choices, ", "))
}
