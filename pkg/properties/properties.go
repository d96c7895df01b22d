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
	"reflect"
	"sort"
)

// New returns an empty property mapping.
func New() Properties {
	return Properties{}
}

// Put stores value under key, overwriting any previous value.
func (p Properties) Put(key string, value interface{}) {
	p[key] = value
}

// Get returns the value stored under key and whether the key is present.
func (p Properties) Get(key string) (interface{}, bool) {
	v, ok := p[key]
	return v, ok
}

// Keys returns the property keys in sorted order.
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a shallow copy of p.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge copies every entry of other into p, overwriting existing keys.
func (p Properties) Merge(other Properties) {
	for k, v := range other {
		p[k] = v
	}
}

// Changes returns the entries of p that are missing from base or whose
// value differs from the one in base. Keys removed from p are not reported.
func (p Properties) Changes(base Properties) Properties {
	out := Properties{}
	for k, v := range p {
		old, ok := base[k]
		if !ok || !reflect.DeepEqual(old, v) {
			out[k] = v
		}
	}
	return out
}
