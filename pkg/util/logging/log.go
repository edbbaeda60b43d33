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

// Package logging wraps glog so that the rest of chefdoc can log without caring about flag plumbing.
//
// Verbosity levels follow the usual convention: 3 for per-operation details, 5 for per-object tracing, and 7 or
// above for anything that would be too noisy for day-to-day debugging.
package logging

import (
	"flag"
	"strconv"
	"sync"

	"github.com/golang/glog"

	"github.com/pulumi/chefdoc/pkg/util/contract"
)

// Verbose is the result of V; it is true when the requested level is enabled.
type Verbose = glog.Verbose

var (
	LogToStderr = false // true if logging is being redirected to stderr.
	Verbosity   = 0     // >0 if verbose logging is enabled at a particular level.

	initOnce sync.Once
)

// V returns a Verbose guard for the given level.
func V(level glog.Level) Verbose {
	return glog.V(level)
}

// Infof logs at the info level.
func Infof(msg string, args ...interface{}) {
	glog.Infof(msg, args...)
}

// Warningf logs at the warning level.
func Warningf(msg string, args ...interface{}) {
	glog.Warningf(msg, args...)
}

// Errorf logs at the error level.
func Errorf(msg string, args ...interface{}) {
	glog.Errorf(msg, args...)
}

// Flush flushes any pending log records.
func Flush() {
	glog.Flush()
}

// InitLogging ensures the logging library has been initialized with the given settings.
func InitLogging(logToStderr bool, verbose int) {
	// Remember the settings in case someone inquires.
	LogToStderr = logToStderr
	Verbosity = verbose

	initOnce.Do(func() {
		// glog registers its flags on the default flag set; make sure they have been parsed so that it does not
		// complain about logging before flag.Parse.
		if !flag.Parsed() {
			err := flag.CommandLine.Parse([]string{})
			contract.AssertNoError(err)
		}
	})

	if logToStderr {
		err := flag.Lookup("logtostderr").Value.Set("true")
		contract.AssertNoError(err)
	}
	if verbose > 0 {
		err := flag.Lookup("v").Value.Set(strconv.Itoa(verbose))
		contract.AssertNoError(err)
	}
}
