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

package properties

// Properties is the mutable property mapping handed to processors. Keys are
// dotted configuration keys such as "encrypt.key". A key holding a nil value
// was written without a value and is kept distinct from a missing key.
type Properties map[string]interface{}

// Format names a rendering of a property mapping.
type Format string

const (
	FormatYAML       Format = "yaml"
	FormatJSON       Format = "json"
	FormatProperties Format = "properties"
)

// UnsupportedFormatError is returned by Write and Read for unknown formats.
type UnsupportedFormatError struct {
	Format string
}

// WriteError wraps failures while rendering properties.
type WriteError struct {
	Format Format
	Err    error
}

// ReadError wraps failures while parsing a property document.
type ReadError struct {
	Format Format
	Err    error
}
