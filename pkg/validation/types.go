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

package validation

import "github.com/xeipuuv/gojsonschema"

// Validator is implemented by anything able to check itself.
type Validator interface {
	Validate() error
}

// Schema validates documents against a JSON schema.
type Schema struct {
	schema   string
	compiled *gojsonschema.Schema
}

// Errors collects every schema violation found in a document.
type Errors struct {
	Errs []error
}

// InvalidSchemaError is returned when the schema itself cannot be compiled.
type InvalidSchemaError struct {
	Err error
}

// ProcessingError is returned when a document cannot be loaded for
// validation, for example because it is not valid JSON.
type ProcessingError struct {
	Err error
}
