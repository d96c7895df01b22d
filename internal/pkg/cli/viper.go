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

package cli

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ViperAddArgument registers a on cmd and binds the flag to its lookup
// key in the global viper instance.
func ViperAddArgument(cmd *cobra.Command, a Argument) error {
	if cmd == nil {
		return &EmptyCmdArgumentError{}
	}

	if a.Default == nil {
		return &NoDefaultSetError{Name: a.Name}
	}

	var fs *pflag.FlagSet
	if a.Persistent {
		fs = cmd.PersistentFlags()
	} else {
		fs = cmd.Flags()
	}

	switch a.Type {
	case ArgTypeBool:
		fs.BoolP(a.Name, a.Shorthand, a.Default.(bool), a.Description)
	case ArgTypeBoolSlice:
		fs.BoolSliceP(a.Name, a.Shorthand, a.Default.([]bool), a.Description)
	case ArgTypeInt:
		fs.IntP(a.Name, a.Shorthand, a.Default.(int), a.Description)
	case ArgTypeIntSlice:
		fs.IntSliceP(a.Name, a.Shorthand, a.Default.([]int), a.Description)
	case ArgTypeString:
		fs.StringP(a.Name, a.Shorthand, a.Default.(string), a.Description)
	case ArgTypeStringSlice:
		fs.StringSliceP(a.Name, a.Shorthand, a.Default.([]string), a.Description)
	default:
		return &UnsupportedArgTypeError{Name: a.Name, Type: a.Type}
	}

	if a.LookupKey == "" {
		a.LookupKey = a.Name
	}
	return viper.BindPFlag(a.LookupKey, fs.Lookup(a.Name))
}

func ViperAddArguments(cmd *cobra.Command, aList []Argument) error {
	if cmd == nil {
		return &EmptyCmdArgumentError{}
	}

	for _, a := range aList {
		err := ViperAddArgument(cmd, a)
		if err != nil {
			return err
		}
	}

	return nil
}

// ViperConfig sets up the global viper instance: environment variables
// prefixed with envPrefix override file values, with "." and "-" in keys
// mapped to "_". When the "config" key is empty the file configName is
// looked up in the working directory and $HOME and may be absent;
// otherwise the named file must load.
func ViperConfig(envPrefix, configName string) error {
	viper.SetConfigName(configName)
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	config := viper.GetString("config")
	if config == "" {
		err := viper.ReadInConfig()
		if err != nil {
			var fileNotFoundErr viper.ConfigFileNotFoundError
			if !errors.As(err, &fileNotFoundErr) {
				return &ConfigError{Path: config, Err: err}
			}
		}
		return nil
	}

	ext := strings.TrimLeft(filepath.Ext(config), ".")
	if ext == "" {
		ext = "yaml"
	}
	viper.SetConfigType(ext)

	parts := strings.SplitN(config, "://", 2)
	if len(parts) == 2 {
		if parts[0] != "file" {
			return &ConfigError{Path: config, Err: &ConfigNotSupportedProtocolError{Protocol: parts[0]}}
		}
		config = parts[1]
	}

	viper.SetConfigFile(config)
	if err := viper.ReadInConfig(); err != nil {
		return &ConfigError{Path: config, Err: err}
	}
	return nil
}
