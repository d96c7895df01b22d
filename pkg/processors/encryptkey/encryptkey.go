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

package encryptkey

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/xyloman/configserver-on-tap/pkg/binding"
	"github.com/xyloman/configserver-on-tap/pkg/processor"
	"github.com/xyloman/configserver-on-tap/pkg/properties"
)

var _ processor.Processor = (*Processor)(nil)

// New returns a processor that logs to logger, or to the global logger
// when logger is nil.
func New(logger *zerolog.Logger) *Processor {
	if logger == nil {
		logger = &log.Logger
	}
	return &Processor{logger: logger}
}

// Process writes the key of the first configserver-encrypt-key binding to
// encrypt.key. The key itself never reaches the log.
func (p *Processor) Process(env processor.Environment, bindings binding.Bindings, props properties.Properties) {
	if !processor.Bool(env, EnableKey, true) || bindings == nil {
		return
	}

	matches := bindings.FilterBindings(BindingType)
	if len(matches) == 0 {
		return
	}

	b := matches[0]
	if key, ok := b.Get(secretKey); ok {
		props.Put(KeyProperty, key)
	} else {
		props.Put(KeyProperty, nil)
	}

	p.logger.Info().Str("op", "encryptkey.Process").Str("binding", b.Name).
		Msg("Mapped " + KeyProperty + " from binding")
}
