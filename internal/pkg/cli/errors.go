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

package cli

import (
	"strings"

	"github.com/xyloman/configserver-on-tap/pkg/errs"
)

func (e *EmptyCmdArgumentError) Error() string {
	return errs.String("EmptyCmdArgumentError", nil, nil)
}

func (e *NoDefaultSetError) Error() string {
	return errs.String("NoDefaultSetError", map[string]interface{}{"name": e.Name}, nil)
}

func (e *UnsupportedArgTypeError) Error() string {
	return errs.String(
		"UnsupportedArgTypeError",
		map[string]interface{}{"name": e.Name, "type": e.Type},
		nil,
	)
}

func (e *ConfigNotSupportedProtocolError) Error() string {
	return errs.String(
		"ConfigNotSupportedProtocolError",
		map[string]interface{}{"protocol": e.Protocol},
		nil,
	)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func (e *ConfigError) Error() string {
	msg := errs.String("ConfigError", map[string]interface{}{"path": e.Path}, e.Err)
	// viper errors may span lines
	return strings.Replace(msg, "\n", " ", -1)
}
