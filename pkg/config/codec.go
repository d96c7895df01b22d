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

package config

import (
	"encoding/json"
	"strings"

	"github.com/goccy/go-yaml"
)

// ParseFormat maps a user supplied format name onto a Format.
// "yml" is accepted as an alias of yaml.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", &UnsupportedFormatError{Format: name}
}

// Unmarshal decodes data in the given format into target.
func Unmarshal(format Format, data []byte, target interface{}) error {
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, target)
	case FormatJSON:
		err = json.Unmarshal(data, target)
	default:
		return &UnsupportedFormatError{Format: string(format)}
	}
	if err != nil {
		return &DataParseError{Format: format, Err: err}
	}
	return nil
}
