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

package app

import "github.com/xyloman/configserver-on-tap/pkg/errs"

func (e *InvalidOptionError) Is(target error) bool {
	return e.Error() == target.Error()
}

func (e *InvalidOptionError) Unwrap() error {
	return e.Err
}

func (e *InvalidOptionError) Error() string {
	return errs.String("InvalidOptionError", map[string]interface{}{"key": e.Key}, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

func (e *OutputError) Error() string {
	return errs.String("OutputError", map[string]interface{}{"path": e.Path}, e.Err)
}
