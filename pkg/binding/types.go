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

// Bindings is the set of bindings discovered for the running process.
// Implementations must return bindings in a stable iteration order.
type Bindings interface {
	// FilterBindings returns every binding whose Type equals bindingType,
	// in iteration order. It returns an empty slice when none match.
	FilterBindings(bindingType string) []Binding

	// All returns every binding in iteration order.
	All() []Binding
}

// Binding is an externally provisioned secret record, identified by its
// Type and carrying the secret key/value data.
type Binding struct {
	Name     string            `json:"name" yaml:"name"`
	Type     string            `json:"type" yaml:"type"`
	Provider string            `json:"provider,omitempty" yaml:"provider,omitempty"`
	Secret   map[string]string `json:"secret,omitempty" yaml:"secret,omitempty"`
}

// Manifest is the document form of a binding set.
type Manifest struct {
	Bindings []Binding `json:"bindings" yaml:"bindings"`
}

var _ Bindings = (*Set)(nil)

// Set is an ordered, in-memory Bindings implementation.
type Set struct {
	bindings []Binding
}

// === Errors =========================================================

// InvalidBindingError is returned when a binding record fails validation.
type InvalidBindingError struct {
	Index int
	Name  string
	Err   error
}

// InvalidManifestError is returned when a manifest document cannot be
// parsed or does not conform to the manifest schema.
type InvalidManifestError struct {
	Err error
}

// ReadManifestError is returned when a manifest file cannot be read.
type ReadManifestError struct {
	Path string
	Err  error
}
