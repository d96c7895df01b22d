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

import (
	"errors"

	"github.com/xeipuuv/gojsonschema"
)

// NewSchema compiles schema, which may be any JSON schema document.
func NewSchema(schema string) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		return nil, &InvalidSchemaError{Err: err}
	}
	return &Schema{
		schema:   schema,
		compiled: compiled,
	}, nil
}

func (s *Schema) Schema() string {
	return s.schema
}

// Validate checks data against the schema. Strings and byte slices are
// treated as JSON documents; anything else is marshalled first.
func (s *Schema) Validate(data interface{}) error {
	var doc gojsonschema.JSONLoader

	switch d := data.(type) {
	case string:
		doc = gojsonschema.NewStringLoader(d)
	case []byte:
		doc = gojsonschema.NewBytesLoader(d)
	default:
		doc = gojsonschema.NewGoLoader(d)
	}

	result, err := s.compiled.Validate(doc)
	if err != nil {
		return &ProcessingError{Err: err}
	}

	if !result.Valid() {
		errs := make([]error, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			errs = append(errs, errors.New(e.String()))
		}
		return &Errors{Errs: errs}
	}

	return nil
}
