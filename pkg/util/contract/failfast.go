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

package contract

import (
	"fmt"

	"github.com/golang/glog"
)

// Failf unconditionally abandons the process, formatting and logging the given message.
func Failf(msg string, args ...interface{}) {
	failfast(fmt.Sprintf("A failure has occurred: %v", fmt.Sprintf(msg, args...)))
}

// failfast logs and panics the process in a way that is friendly to debugging.
func failfast(msg string) {
	v := fmt.Sprintf("fatal: %v", msg)
	glog.Error(v)
	glog.Flush()
	panic(v)
}

func glogV(level glog.Level, msg string, args ...interface{}) {
	glog.V(level).Infof(msg, args...)
}
