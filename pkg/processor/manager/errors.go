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

package manager

import "github.com/xyloman/configserver-on-tap/pkg/errs"

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

func (e *InvalidArgumentError) Error() string {
	return errs.String("InvalidArgumentError", nil, e.Err)
}

func (e *NilProcessorError) Error() string {
	return "NilProcessorError"
}

func (e *AlreadyRegisteredError) Error() string {
	return errs.String(
		"AlreadyRegisteredError",
		map[string]interface{}{"name": e.Name},
		nil,
	)
}

func (e *NotFoundError) Error() string {
	return errs.String(
		"NotFoundError",
		map[string]interface{}{"name": e.Name},
		nil,
	)
}

func (e *ProcessorPanicError) Unwrap() error {
	return e.Err
}

func (e *ProcessorPanicError) Error() string {
	return errs.String(
		"ProcessorPanicError",
		map[string]interface{}{"name": e.Name},
		e.Err,
	)
}
