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

package gitcheck

// Remote is the git backend described by the mapped
// spring.cloud.config.server.git properties.
type Remote struct {
	URI               string
	Username          string
	Password          string
	SkipSSLValidation bool
}

type MissingPropertyError struct {
	Key string
}

type InvalidPropertyError struct {
	Key string
	Err error
}

type ListError struct {
	URI string
	Err error
}
