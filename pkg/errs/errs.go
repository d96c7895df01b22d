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

package errs

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

/*
String renders an error message in the house style:

  * The error name comes first
  * Values follow in parenthesis, sorted by key
  * A wrapped error is appended after a ": "

*/
func String(name string, values map[string]interface{}, wrapped error) string {
	parts := make([]string, 0, 2)

	if name != "" {
		parts = append(parts, name)
	}

	if len(values) > 0 {
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		kv := make([]string, 0, len(keys))
		for _, k := range keys {
			kv = append(kv, fmt.Sprintf("%s=%v", k, values[k]))
		}
		parts = append(parts, "("+strings.Join(kv, " ")+")")
	}

	msg := strings.Join(parts, " ")
	if wrapped == nil {
		if msg == "" {
			return "unspecified error"
		}
		return msg
	}

	if msg == "" {
		return wrapped.Error()
	}
	return msg + ": " + wrapped.Error()
}

// Type returns the dynamic type of err, which lets tests compare error
// kinds without caring about their content.
func Type(err error) string {
	if err == nil {
		return "<nil>"
	}

	return reflect.TypeOf(err).String()
}
