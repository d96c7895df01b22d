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
	"github.com/xyloman/configserver-on-tap/pkg/binding"
	"github.com/xyloman/configserver-on-tap/pkg/properties"
)

// Environment is the read-only view of the resolved configuration a
// processor consults for its toggles. *viper.Viper satisfies it.
type Environment interface {
	IsSet(key string) bool
	Get(key string) interface{}
}

// Processor maps bindings onto configuration properties. Implementations
// must not fail: a missing binding or a disabled toggle leaves props as is.
type Processor interface {
	Process(env Environment, bindings binding.Bindings, props properties.Properties)
}

// ProcessorFunc lets an ordinary function act as a Processor.
type ProcessorFunc func(env Environment, bindings binding.Bindings, props properties.Properties)

// MapEnvironment is an Environment backed by a plain map. Keys are exact;
// no case folding or nesting is applied.
type MapEnvironment map[string]interface{}
