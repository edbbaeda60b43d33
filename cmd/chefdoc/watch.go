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
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/rjeczalik/notify"
	"github.com/spf13/cobra"

	"github.com/pulumi/chefdoc/pkg/util/cmdutil"
	"github.com/pulumi/chefdoc/pkg/util/logging"
)

// watchSettle is how long the watcher waits for further changes before regenerating.
const watchSettle = 250 * time.Millisecond

func newWatchCmd(configPath *string) *cobra.Command {
	opts := &docgenOptions{configPath: configPath}

	cmd := &cobra.Command{
		Use:   "watch [cookbook-dir...]",
		Short: "Regenerate documentation whenever a cookbook changes",
		Long: "Regenerate documentation whenever a cookbook changes.\n" +
			"\n" +
			"Documentation is generated once at startup and again after every change to a cookbook's sources.\n" +
			"Errors are reported but do not stop the watcher. Press Ctrl-C to exit.",
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			run, err := opts.resolve(args)
			if err != nil {
				return err
			}

			interrupts := make(chan os.Signal, 1)
			signal.Notify(interrupts, os.Interrupt)
			defer signal.Stop(interrupts)

			return run.watch(interrupts)
		}),
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "",
		"The directory to write documentation to (default \"doc\")")

	return cmd
}

// watch regenerates the run's documentation once, then again whenever an .hcl file beneath one of its cookbooks
// changes. Bursts of changes are coalesced. watch returns when a value is received from stop.
func (run *docgenRun) watch(stop <-chan os.Signal) error {
	events := make(chan notify.EventInfo, 16)
	for _, dir := range run.cookbooks {
		if err := notify.Watch(filepath.Join(dir, "..."), events, notify.Create, notify.Write, notify.Remove,
			notify.Rename); err != nil {
			notify.Stop(events)
			return errors.Wrapf(err, "watching %s", dir)
		}
	}
	defer notify.Stop(events)

	run.regenerate()

	var settle <-chan time.Time
	var changed string
	for {
		select {
		case ev := <-events:
			if filepath.Ext(ev.Path()) != ".hcl" {
				continue
			}
			logging.V(5).Infof("%s: %v", ev.Path(), ev.Event())
			changed = ev.Path()
			settle = time.After(watchSettle)
		case <-settle:
			settle = nil
			logging.Infof("regenerating documentation after a change to %s", changed)
			run.regenerate()
		case <-stop:
			return nil
		}
	}
}

func (run *docgenRun) regenerate() {
	fmt.Printf("%s %s\n", color.CyanString("Generating"), time.Now().Format(time.Kitchen))
	if err := run.generate(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
	}
}
