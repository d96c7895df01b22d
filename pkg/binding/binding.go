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

package binding

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var typePattern = regexp.MustCompile(`^[a-z0-9]([-a-z0-9.]*[a-z0-9])?$`)

// Get returns the secret value stored under key. The second return value
// reports whether the key was present at all.
func (b Binding) Get(key string) (string, bool) {
	if b.Secret == nil {
		return "", false
	}
	v, ok := b.Secret[key]
	return v, ok
}

// Validate will ensure that:
//   * The .Name is set
//   * The .Type is set and is a lower case token such as "configserver-git-auth"
func (b Binding) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Name, validation.Required),
		validation.Field(&b.Type,
			validation.Required,
			validation.Match(typePattern),
		),
	)
}

func (b Binding) copy() Binding {
	out := b
	if b.Secret != nil {
		out.Secret = make(map[string]string, len(b.Secret))
		for k, v := range b.Secret {
			out.Secret[k] = v
		}
	}
	return out
}
