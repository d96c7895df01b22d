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

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"path/filepath"
	"strings"

	ghodss "github.com/ghodss/yaml"
	javaprops "github.com/magiconair/properties"
	"github.com/xyloman/configserver-on-tap/pkg/config"
)

// ParseFormat maps a user supplied name onto a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "properties", "props":
		return FormatProperties, nil
	}
	f, err := config.ParseFormat(name)
	if err != nil {
		return "", &UnsupportedFormatError{Format: name}
	}
	return Format(f), nil
}

// Write renders p to w. YAML and JSON keep nil values as null; the
// .properties rendering has no null and omits them. Keys are flat and sorted
// in every format.
func (p Properties) Write(w io.Writer, format Format) error {
	var (
		out []byte
		err error
	)

	switch format {
	case FormatYAML:
		out, err = ghodss.Marshal(map[string]interface{}(p))
	case FormatJSON:
		out, err = json.MarshalIndent(map[string]interface{}(p), "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case FormatProperties:
		out, err = p.javaProperties()
	default:
		return &UnsupportedFormatError{Format: string(format)}
	}
	if err != nil {
		return &WriteError{Format: format, Err: err}
	}

	_, err = w.Write(out)
	if err != nil {
		return &WriteError{Format: format, Err: err}
	}
	return nil
}

func (p Properties) javaProperties() ([]byte, error) {
	jp := javaprops.NewProperties()
	jp.DisableExpansion = true
	for _, k := range p.Keys() {
		v := p[k]
		if v == nil {
			continue
		}
		_, _, err := jp.Set(k, fmt.Sprint(v))
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	_, err := jp.Write(&buf, javaprops.UTF8)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Read parses a property document in the given format. YAML and JSON
// documents must be flat maps; nested maps are flattened into dotted keys.
func Read(data []byte, format Format) (Properties, error) {
	switch format {
	case FormatYAML, FormatJSON:
		var doc map[string]interface{}
		err := config.Unmarshal(config.Format(format), data, &doc)
		if err != nil {
			return nil, &ReadError{Format: format, Err: err}
		}
		out := Properties{}
		flatten("", doc, out)
		return out, nil
	case FormatProperties:
		jp, err := javaprops.Load(data, javaprops.UTF8)
		if err != nil {
			return nil, &ReadError{Format: format, Err: err}
		}
		out := Properties{}
		for _, k := range jp.Keys() {
			out[k] = jp.GetString(k, "")
		}
		return out, nil
	}
	return nil, &UnsupportedFormatError{Format: string(format)}
}

// ReadFile reads a property document from path. The format follows the file
// extension.
func ReadFile(path string) (Properties, error) {
	format, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, err
	}
	data, err := ioutil.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, &ReadError{Format: format, Err: err}
	}
	return Read(data, format)
}

func flatten(prefix string, in map[string]interface{}, out Properties) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch t := v.(type) {
		case map[string]interface{}:
			flatten(key, t, out)
		case map[interface{}]interface{}:
			m := make(map[string]interface{}, len(t))
			for mk, mv := range t {
				m[fmt.Sprint(mk)] = mv
			}
			flatten(key, m, out)
		default:
			out[key] = v
		}
	}
}
