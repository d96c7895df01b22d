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
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strconv"

	"github.com/ghodss/yaml"
	goyaml "github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/xyloman/configserver-on-tap/pkg/validation"
)

// ManifestSchema is the JSON schema every manifest document must satisfy.
// Secret values are scalars and are kept exactly as written in the source
// document, so 0123 stays 0123 and yes stays yes.
const ManifestSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["bindings"],
	"additionalProperties": false,
	"properties": {
		"bindings": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "type"],
				"additionalProperties": false,
				"properties": {
					"name":     {"type": "string"},
					"type":     {"type": "string"},
					"provider": {"type": "string"},
					"secret": {
						"type": "object",
						"additionalProperties": {"type": ["string", "number", "boolean"]}
					}
				}
			}
		}
	}
}`

var _ validation.Validator = Binding{}

var manifestSchema *validation.Schema

func init() {
	s, err := validation.NewSchema(ManifestSchema)
	if err != nil {
		panic(fmt.Errorf("binding manifest schema does not compile: %w", err))
	}
	manifestSchema = s
}

type rawBinding struct {
	Name     string                 `json:"name"`
	Type     string                 `json:"type"`
	Provider string                 `json:"provider"`
	Secret   map[string]interface{} `json:"secret"`
}

type rawManifest struct {
	Bindings []rawBinding `json:"bindings"`
}

// LoadManifest parses a YAML or JSON manifest, validates it and returns the
// bindings it declares in document order.
func LoadManifest(data []byte) (*Set, error) {
	doc, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, &InvalidManifestError{Err: err}
	}

	err = manifestSchema.Validate(doc)
	if err != nil {
		return nil, &InvalidManifestError{Err: err}
	}

	source, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, &InvalidManifestError{Err: err}
	}

	var raw rawManifest
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	err = dec.Decode(&raw)
	if err != nil {
		return nil, &InvalidManifestError{Err: err}
	}

	bindings := make([]Binding, 0, len(raw.Bindings))
	for i, rb := range raw.Bindings {
		b := Binding{
			Name:     rb.Name,
			Type:     rb.Type,
			Provider: rb.Provider,
		}
		if rb.Secret != nil {
			b.Secret = sourceSecret(source, i)
			if b.Secret == nil {
				b.Secret = make(map[string]string, len(rb.Secret))
				for k, v := range rb.Secret {
					b.Secret[k] = scalarString(v)
				}
			}
		}

		err = b.Validate()
		if err != nil {
			return nil, &InvalidBindingError{Index: i, Name: b.Name, Err: err}
		}
		bindings = append(bindings, b)
	}

	return NewSet(bindings...), nil
}

// LoadManifestFile reads and parses the manifest stored at path.
func LoadManifestFile(path string) (*Set, error) {
	data, err := ioutil.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, &ReadManifestError{Path: path, Err: err}
	}
	return LoadManifest(data)
}

// sourceSecret returns the secret of binding i with every key and value
// taken from the scalar text of the document. It returns nil when an entry
// is not a plain or quoted scalar, such as an alias.
func sourceSecret(f *ast.File, i int) map[string]string {
	path := (&goyaml.PathBuilder{}).Root().Child("bindings").Index(uint(i)).Child("secret").Build()
	node, err := path.FilterFile(f)
	if err != nil || node == nil {
		return nil
	}
	m, ok := node.(ast.MapNode)
	if !ok {
		return nil
	}

	secret := map[string]string{}
	iter := m.MapRange()
	for iter.Next() {
		k, ok := scalarText(iter.Key())
		if !ok {
			return nil
		}
		v, ok := scalarText(iter.Value())
		if !ok {
			return nil
		}
		secret[k] = v
	}
	return secret
}

func scalarText(node ast.Node) (string, bool) {
	switch n := node.(type) {
	case *ast.AnchorNode:
		return scalarText(n.Value)
	case *ast.StringNode:
		return n.Value, true
	case *ast.LiteralNode:
		return n.Value.Value, true
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode:
		return n.GetToken().Value, true
	}
	return "", false
}

func scalarString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
