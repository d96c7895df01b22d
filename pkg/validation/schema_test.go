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

package validation_test

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/sebdah/goldie/v2"
	"github.com/xyloman/configserver-on-tap/pkg/errs"
	"github.com/xyloman/configserver-on-tap/pkg/validation"
)

const personSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"age":  {"type": "integer", "minimum": 0}
	}
}`

func TestSchemaValidate(t *testing.T) {
	testCases := []struct {
		name        string
		data        interface{}
		expectedErr error
	}{
		{name: "string-valid", data: `{"name": "joe", "age": 3}`},
		{name: "bytes-valid", data: []byte(`{"name": "joe"}`)},
		{name: "go-valid", data: map[string]interface{}{"name": "joe"}},
		{name: "missing-name", data: `{"age": 3}`, expectedErr: &validation.Errors{}},
		{name: "negative-age", data: map[string]interface{}{"name": "joe", "age": -1}, expectedErr: &validation.Errors{}},
		{name: "not-json", data: `{"name": `, expectedErr: &validation.ProcessingError{}},
	}

	s, err := validation.NewSchema(personSchema)
	if err != nil {
		t.Fatalf("could not compile schema: %s", err)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewWithT(t)
			err := s.Validate(tc.data)
			if tc.expectedErr == nil {
				a.Expect(err).To(BeNil())
			} else {
				a.Expect(errs.Type(err)).To(Equal(errs.Type(tc.expectedErr)))
			}
		})
	}
}

func TestSchemaKeepsSource(t *testing.T) {
	a := NewWithT(t)
	s, err := validation.NewSchema(personSchema)
	a.Expect(err).To(BeNil())
	a.Expect(s.Schema()).To(Equal(personSchema))
}

func TestInvalidSchema(t *testing.T) {
	a := NewWithT(t)
	_, err := validation.NewSchema(`{"type": 12}`)
	a.Expect(errs.Type(err)).To(Equal(errs.Type(&validation.InvalidSchemaError{})))
}

func TestErrorMessages(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{name: "Errors", err: &validation.Errors{Errs: []error{
			fmt.Errorf("wrapped 1 error"),
			fmt.Errorf("wrapped 2 error"),
		}}},
		{name: "ProcessingError", err: &validation.ProcessingError{Err: fmt.Errorf("wrapped error")}},
		{name: "InvalidSchemaError", err: &validation.InvalidSchemaError{Err: fmt.Errorf("wrapped error")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := goldie.New(t)
			g.Assert(t, tc.name, []byte(fmt.Sprint(tc.err)))
			g.Assert(t, tc.name+"_unwrapped", []byte(fmt.Sprint(errors.Unwrap(tc.err))))
		})
	}
}
