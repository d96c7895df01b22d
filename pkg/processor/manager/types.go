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
	"sync"

	"github.com/xyloman/configserver-on-tap/pkg/binding"
	"github.com/xyloman/configserver-on-tap/pkg/processor"
	"github.com/xyloman/configserver-on-tap/pkg/properties"
)

type Registration struct {
	Name      string
	Processor processor.Processor
}

type Manager interface {
	Register(name string, p processor.Processor) error
	Unregister(name string) error

	Registrations() []Registration
	Processor(name string) (processor.Processor, error)

	// Process runs every registered processor against its own copy of props
	// and folds each one's changes back into props in registration order.
	Process(ctx context.Context, env processor.Environment, bindings binding.Bindings, props properties.Properties) error
}

type manager struct {
	sync.Mutex

	registrations []Registration
}

type InvalidArgumentError struct {
	Err error
}

type NilProcessorError struct{}

type AlreadyRegisteredError struct {
	Name string
}

type NotFoundError struct {
	Name string
}

type ProcessorPanicError struct {
	Name string
	Err  error
}
