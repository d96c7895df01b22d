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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xyloman/configserver-on-tap/internal/pkg/app"
	"github.com/xyloman/configserver-on-tap/internal/pkg/cli"
	"github.com/xyloman/configserver-on-tap/internal/pkg/config"
)

var rootCmd = &cobra.Command{
	Use:   "configserver-bindings",
	Short: "Maps service bindings onto config server properties",
	Long: `Reads a manifest of service bindings and maps the git credentials and
encryption key bindings onto Spring Cloud Config Server properties`,
	SilenceUsage: true,
}

func Execute() {
	//Initialize logging for command setup. Log level will be set
	//later when we read in the configurations
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.With().Str("app.id", "configserver-bindings").Logger()

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Str("op", "Execute").Msg(err.Error())
	}
}

func AppConfig() config.Config {
	return viper.GetViper()
}

func init() {
	cobra.OnInitialize(initConfig)
	err := cli.ViperAddArguments(
		rootCmd,
		[]cli.Argument{
			{
				Name: "config", Type: cli.ArgTypeString,
				Default: "", Persistent: true,
				Description: "config file (default is $HOME/configserver.yaml)",
			},
			{
				Name: "logLevel", Type: cli.ArgTypeString,
				Default: "info", Persistent: true, LookupKey: app.LogLevelKey,
				Description: "log level",
			},
			{
				Name: "bindings", Shorthand: "b", Type: cli.ArgTypeString,
				Default: "", Persistent: true, LookupKey: app.BindingsFileKey,
				Description: "bindings manifest (yaml or json)",
			},
			{
				Name: "properties", Type: cli.ArgTypeString,
				Default: "", Persistent: true, LookupKey: app.PropertiesFileKey,
				Description: "base properties the bindings are mapped onto (yaml, json or .properties)",
			},
		},
	)
	if err != nil {
		log.Fatal().Str("op", "init").Msg(err.Error())
	}
}

func initConfig() {
	err := cli.ViperConfig("", "configserver")
	if err != nil {
		log.Fatal().Str("op", "initConfig").Msg(err.Error())
	}
}
