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

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/xyloman/configserver-on-tap/internal/pkg/app"
	"github.com/xyloman/configserver-on-tap/internal/pkg/cli"
	"github.com/xyloman/configserver-on-tap/internal/pkg/fx/processormanagerfx"
	"github.com/xyloman/configserver-on-tap/internal/pkg/panics"
	"go.uber.org/fx"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Maps the bindings manifest onto config server properties",
	Long: `Runs every bindings processor over the manifest and writes the
resulting properties as yaml, json or Java properties`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(app.WriteProperties)
	},
}

// runPipeline builds the processing graph and invokes fn with it. fx runs
// invokes during construction so no lifecycle start is needed.
func runPipeline(fn func(p *app.Pipeline) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			panicErr := panics.ToError(p)
			log.Logger.Error().Str("op", "runPipeline").Str("error", panicErr.Error()).
				Str("stackTrace", panicErr.StackTrace()).Msg("A panic has occurred")
			err = panicErr
		}
	}()

	//fx logs its own wiring through Printf, which zerolog only emits at
	//debug level, so it gets a separate logger
	initLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	pipelineApp := fx.New(
		processormanagerfx.Module,
		fx.Provide(
			AppConfig,
			app.ProvideLogger,
			app.ProvideBindings,
			app.NewPipeline,
		),
		fx.Logger(&initLogger),
		fx.Invoke(fn),
	)
	return pipelineApp.Err()
}

func init() {
	rootCmd.AddCommand(processCmd)
	err := cli.ViperAddArguments(
		processCmd,
		[]cli.Argument{
			{
				Name: "format", Shorthand: "f", Type: cli.ArgTypeString,
				Default: "yaml", LookupKey: app.OutputFormatKey,
				Description: "output format (yaml, json, properties)",
			},
			{
				Name: "output", Shorthand: "o", Type: cli.ArgTypeString,
				Default: "", LookupKey: app.OutputFileKey,
				Description: "output file (default is stdout)",
			},
		},
	)
	if err != nil {
		log.Fatal().Str("op", "init").Msg(err.Error())
	}
}
