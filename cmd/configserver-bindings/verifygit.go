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
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/xyloman/configserver-on-tap/internal/pkg/app"
	"github.com/xyloman/configserver-on-tap/internal/pkg/cli"
)

var verifyGitCmd = &cobra.Command{
	Use:   "verify-git",
	Short: "Checks the mapped git credentials against the remote",
	Long: `Maps the bindings manifest and lists the references of the resulting
spring.cloud.config.server.git remote`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline(app.VerifyGit)
	},
}

func init() {
	rootCmd.AddCommand(verifyGitCmd)
	err := cli.ViperAddArguments(
		verifyGitCmd,
		[]cli.Argument{
			{
				Name: "timeout", Type: cli.ArgTypeInt,
				Default: 30, LookupKey: app.GitTimeoutKey,
				Description: "seconds to wait for the git remote",
			},
		},
	)
	if err != nil {
		log.Fatal().Str("op", "init").Msg(err.Error())
	}
}
