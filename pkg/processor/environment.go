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

package processor

import (
	"github.com/spf13/cast"
	"github.com/xyloman/configserver-on-tap/pkg/binding"
	"github.com/xyloman/configserver-on-tap/pkg/properties"
)

var _ Processor = ProcessorFunc(nil)
var _ Environment = MapEnvironment(nil)

func (f ProcessorFunc) Process(env Environment, bindings binding.Bindings, props properties.Properties) {
	f(env, bindings, props)
}

func (m MapEnvironment) IsSet(key string) bool {
	_, ok := m[key]
	return ok
}

func (m MapEnvironment) Get(key string) interface{} {
	return m[key]
}

// Bool returns the boolean value of key, or def when env is nil, the key is
// unset, or the value cannot be read as a boolean.
func Bool(env Environment, key string, def bool) bool {
	if env == nil || !env.IsSet(key) {
		return def
	}

	v := env.Get(key)
	if v == nil {
		return def
	}

	b, err := cast.ToBoolE(v)
	if err != nil {
		return def
	}
	return b
}
