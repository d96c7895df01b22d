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

import (
	"github.com/rs/zerolog"
	"github.com/xyloman/configserver-on-tap/internal/pkg/config"
	"github.com/xyloman/configserver-on-tap/pkg/binding"
	"github.com/xyloman/configserver-on-tap/pkg/processor/manager"
	"go.uber.org/fx"
)

const (
	LogLevelKey     = "configserver.logLevel"
	BindingsFileKey = "configserver.bindings.file"
	OutputFormatKey = "configserver.output.format"
	OutputFileKey   = "configserver.output.file"
	GitTimeoutKey   = "configserver.git.timeout"

	// PropertiesFileKey names an optional yaml, json or .properties
	// document whose properties seed the mapping before any processor runs.
	PropertiesFileKey = "configserver.properties.file"
)

const LogRunId = "tx.runId"

const defaultGitTimeoutSeconds = 30

type PipelineIn struct {
	fx.In

	Config   config.Config
	Logger   *zerolog.Logger
	Manager  manager.Manager
	Bindings binding.Bindings
}

// Pipeline runs the registered processors over a binding set and renders
// the resulting properties.
type Pipeline struct {
	config   config.Config
	logger   *zerolog.Logger
	manager  manager.Manager
	bindings binding.Bindings
}

type baseError interface {
	error
	Unwrap() error
}

type InvalidOptionError struct {
	baseError

	Key string
	Err error
}

type OutputError struct {
	baseError

	Path string
	Err  error
}
