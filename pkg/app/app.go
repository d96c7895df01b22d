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
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var Version = "v0.0.0"

// InitLogging sets the global log level and returns the global logger
// annotated with the app version. An empty level means info.
func InitLogging(level string) (zerolog.Logger, error) {
	if strings.TrimSpace(level) == "" {
		level = zerolog.InfoLevel.String()
	}

	logLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return log.Logger, err
	}

	zerolog.SetGlobalLevel(logLevel)
	return log.With().Str("app.version", Version).Logger(), nil
}
