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

package binding

// NewSet returns a Set holding bindings in the given order.
func NewSet(bindings ...Binding) *Set {
	s := &Set{bindings: make([]Binding, 0, len(bindings))}
	for _, b := range bindings {
		s.bindings = append(s.bindings, b.copy())
	}
	return s
}

func (s *Set) FilterBindings(bindingType string) []Binding {
	matches := []Binding{}
	if s == nil {
		return matches
	}
	for _, b := range s.bindings {
		if b.Type == bindingType {
			matches = append(matches, b.copy())
		}
	}
	return matches
}

func (s *Set) All() []Binding {
	if s == nil {
		return []Binding{}
	}
	all := make([]Binding, 0, len(s.bindings))
	for _, b := range s.bindings {
		all = append(all, b.copy())
	}
	return all
}

// Len returns the number of bindings in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.bindings)
}
