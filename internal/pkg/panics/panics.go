// Copyright 2021 Comcast Cable Communications Management, LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package panics

import (
	"fmt"
	"runtime/debug"
)

const maxStackTraceSize = 8192

// PanicError carries a recovered panic value and the stack that raised it.
type PanicError struct {
	msg        string
	stackTrace string
}

func (pe *PanicError) Error() string {
	return pe.msg
}

func (pe *PanicError) StackTrace() string {
	return pe.stackTrace
}

func ToError(p interface{}) *PanicError {
	var msg string
	switch t := p.(type) {
	case string:
		msg = t
	case error:
		msg = t.Error()
	default:
		msg = fmt.Sprintf("%+v", p)
	}

	stackTrace := string(debug.Stack())
	if len(stackTrace) > maxStackTraceSize {
		stackTrace = stackTrace[:maxStackTraceSize]
	}
	return &PanicError{msg: msg, stackTrace: stackTrace}
}
