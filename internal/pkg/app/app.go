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
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/xyloman/configserver-on-tap/internal/pkg/config"
	pkgapp "github.com/xyloman/configserver-on-tap/pkg/app"
	"github.com/xyloman/configserver-on-tap/pkg/binding"
	"github.com/xyloman/configserver-on-tap/pkg/gitcheck"
	"github.com/xyloman/configserver-on-tap/pkg/properties"
)

// ProvideLogger returns the global logger at the configured level, tagged
// with an id shared by every line of this run.
func ProvideLogger(config config.Config) (*zerolog.Logger, error) {
	logger, err := pkgapp.InitLogging(config.GetString(LogLevelKey))
	if err != nil {
		return nil, &InvalidOptionError{Key: LogLevelKey, Err: err}
	}
	logger = logger.With().Str(LogRunId, uuid.New().String()).Logger()
	return &logger, nil
}

func ProvideBindings(config config.Config, logger *zerolog.Logger) (binding.Bindings, error) {
	path := config.GetString(BindingsFileKey)
	if path == "" {
		return nil, &InvalidOptionError{
			Key: BindingsFileKey,
			Err: errors.New("a bindings manifest is required"),
		}
	}

	set, err := binding.LoadManifestFile(path)
	if err != nil {
		logger.Error().Str("op", "ProvideBindings").Str("path", path).Msg(err.Error())
		return nil, err
	}

	logger.Info().Str("op", "ProvideBindings").Str("path", path).Int("count", set.Len()).
		Msg("Bindings loaded")
	return set, nil
}

func NewPipeline(in PipelineIn) *Pipeline {
	return &Pipeline{
		config:   in.Config,
		logger:   in.Logger,
		manager:  in.Manager,
		bindings: in.Bindings,
	}
}

// Process returns the properties produced by every registered processor.
// The configuration doubles as the processors' environment.
func (p *Pipeline) Process(ctx context.Context) (properties.Properties, error) {
	props, err := p.baseProperties()
	if err != nil {
		p.logger.Error().Str("op", "Pipeline.Process").Msg(err.Error())
		return nil, err
	}

	err = p.manager.Process(ctx, p.config, p.bindings, props)
	if err != nil {
		p.logger.Error().Str("op", "Pipeline.Process").Msg(err.Error())
		return nil, err
	}

	p.logger.Debug().Str("op", "Pipeline.Process").Strs("keys", props.Keys()).Msg("Properties mapped")
	return props, nil
}

func (p *Pipeline) baseProperties() (properties.Properties, error) {
	path := p.config.GetString(PropertiesFileKey)
	if path == "" {
		return properties.New(), nil
	}

	props, err := properties.ReadFile(path)
	if err != nil {
		return nil, &InvalidOptionError{Key: PropertiesFileKey, Err: err}
	}
	p.logger.Info().Str("op", "Pipeline.Process").Str("file", path).Int("count", len(props)).Msg("Base properties loaded")
	return props, nil
}

func (p *Pipeline) format() (properties.Format, error) {
	name := p.config.GetString(OutputFormatKey)
	if name == "" {
		return properties.FormatYAML, nil
	}

	f, err := properties.ParseFormat(name)
	if err != nil {
		return "", &InvalidOptionError{Key: OutputFormatKey, Err: err}
	}
	return f, nil
}

// WriteTo processes the bindings and renders the result to w in the
// configured output format.
func (p *Pipeline) WriteTo(ctx context.Context, w io.Writer) error {
	format, err := p.format()
	if err != nil {
		return err
	}

	props, err := p.Process(ctx)
	if err != nil {
		return err
	}

	return props.Write(w, format)
}

// WriteProperties renders the processed properties to the configured
// output file, or to stdout when none is set.
func WriteProperties(p *Pipeline) error {
	path := p.config.GetString(OutputFileKey)
	if path == "" {
		return p.WriteTo(context.Background(), os.Stdout)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return &OutputError{Path: path, Err: err}
	}

	err = p.WriteTo(context.Background(), f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = &OutputError{Path: path, Err: cerr}
	}
	if err != nil {
		return err
	}

	p.logger.Info().Str("op", "WriteProperties").Str("path", path).Msg("Properties written")
	return nil
}

// VerifyGit checks that the mapped git credentials can list the remote's
// references.
func VerifyGit(p *Pipeline) error {
	props, err := p.Process(context.Background())
	if err != nil {
		return err
	}

	remote, err := gitcheck.FromProperties(props)
	if err != nil {
		p.logger.Error().Str("op", "VerifyGit").Msg(err.Error())
		return err
	}

	timeout := p.config.GetInt(GitTimeoutKey)
	if timeout <= 0 {
		timeout = defaultGitTimeoutSeconds
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	refs, err := remote.ListRefs(ctx)
	if err != nil {
		p.logger.Error().Str("op", "VerifyGit").Str("uri", remote.URI).Msg(err.Error())
		return err
	}

	p.logger.Info().Str("op", "VerifyGit").Str("uri", remote.URI).Int("refs", len(refs)).
		Msg("Git remote reachable")
	return nil
}
