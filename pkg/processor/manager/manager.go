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

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/xyloman/configserver-on-tap/internal/pkg/panics"
	"github.com/xyloman/configserver-on-tap/pkg/binding"
	"github.com/xyloman/configserver-on-tap/pkg/processor"
	"github.com/xyloman/configserver-on-tap/pkg/properties"
	"golang.org/x/sync/errgroup"
)

var _ Manager = (*manager)(nil)

func New() *manager {
	return &manager{}
}

func (m *manager) Register(name string, p processor.Processor) error {
	if name == "" {
		return &InvalidArgumentError{
			Err: errors.New("processor name cannot be empty"),
		}
	}

	if p == nil {
		return &NilProcessorError{}
	}

	m.Lock()
	defer m.Unlock()

	if m.indexOf(name) >= 0 {
		return &AlreadyRegisteredError{Name: name}
	}

	m.registrations = append(m.registrations, Registration{Name: name, Processor: p})
	return nil
}

func (m *manager) Unregister(name string) error {
	m.Lock()
	defer m.Unlock()

	i := m.indexOf(name)
	if i < 0 {
		return &NotFoundError{Name: name}
	}

	m.registrations = append(m.registrations[:i:i], m.registrations[i+1:]...)
	return nil
}

func (m *manager) Registrations() []Registration {
	m.Lock()
	defer m.Unlock()

	r := make([]Registration, len(m.registrations))
	copy(r, m.registrations)
	return r
}

func (m *manager) Processor(name string) (processor.Processor, error) {
	m.Lock()
	defer m.Unlock()

	i := m.indexOf(name)
	if i < 0 {
		return nil, &NotFoundError{Name: name}
	}
	return m.registrations[i].Processor, nil
}

func (m *manager) Process(
	ctx context.Context,
	env processor.Environment,
	bindings binding.Bindings,
	props properties.Properties,
) error {
	if props == nil {
		return &InvalidArgumentError{
			Err: errors.New("properties cannot be nil"),
		}
	}

	regs := m.Registrations()
	changes := make([]properties.Properties, len(regs))
	panicked := make([]error, len(regs))

	var g errgroup.Group
	for i, r := range regs {
		i, r := i, r
		work := props.Clone()
		g.Go(func() error {
			pe := panics.Safely(func() {
				r.Processor.Process(env, bindings, work)
			})
			if pe != nil {
				log.Error().Str("op", "manager.Process").Str("processor", r.Name).
					Str("stackTrace", pe.StackTrace()).Msg("processor panic: " + pe.Error())
				panicked[i] = &ProcessorPanicError{Name: r.Name, Err: pe}
				return nil
			}

			changes[i] = work.Changes(props)
			return nil
		})
	}

	// Processors never return errors; panics are collected per slot.
	_ = g.Wait()

	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	var first error
	for i := range regs {
		if panicked[i] != nil {
			if first == nil {
				first = panicked[i]
			}
			continue
		}
		props.Merge(changes[i])
	}

	return first
}

func (m *manager) indexOf(name string) int {
	for i, r := range m.registrations {
		if r.Name == name {
			return i
		}
	}
	return -1
}
