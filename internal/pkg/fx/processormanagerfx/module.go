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

package processormanagerfx

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xyloman/configserver-on-tap/pkg/processor"
	"github.com/xyloman/configserver-on-tap/pkg/processor/manager"
	"github.com/xyloman/configserver-on-tap/pkg/processors/encryptkey"
	"github.com/xyloman/configserver-on-tap/pkg/processors/gitauth"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		ProvideProcessorManager,
	),
)

type ProcessorIn struct {
	fx.In

	Logger *zerolog.Logger
}

type ProcessorOut struct {
	fx.Out

	ProcessorManager manager.Manager
}

func ProvideProcessorManager(in ProcessorIn) (ProcessorOut, error) {
	out := ProcessorOut{}

	mgr := manager.New()

	defaultProcessors := []struct {
		name      string
		processor processor.Processor
	}{
		{name: "gitauth", processor: gitauth.New(in.Logger)},
		{name: "encryptkey", processor: encryptkey.New(in.Logger)},
	}

	for _, p := range defaultProcessors {
		err := mgr.Register(p.name, p.processor)
		if err != nil {
			return out, fmt.Errorf("could not register %s processor: %w", p.name, err)
		}
	}

	out.ProcessorManager = mgr
	return out, nil
}
