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

import "github.com/xyloman/configserver-on-tap/pkg/errs"

func (e *UnsupportedFormatError) Error() string {
	return errs.String(
		"UnsupportedFormatError",
		map[string]interface{}{"format": e.Format},
		nil,
	)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func (e *WriteError) Error() string {
	return errs.String(
		"WriteError",
		map[string]interface{}{"format": e.Format},
		e.Err,
	)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func (e *ReadError) Error() string {
	return errs.String(
		"ReadError",
		map[string]interface{}{"format": e.Format},
		e.Err,
	)
}
