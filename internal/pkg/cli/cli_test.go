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

package cli_test

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xyloman/configserver-on-tap/internal/pkg/cli"
	"github.com/xyloman/configserver-on-tap/pkg/errs"
)

func newCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use",
		Short: "short",
		Long:  `long`,
	}
}

func configArgument() cli.Argument {
	return cli.Argument{
		Name: "config", Type: cli.ArgTypeString,
		Default: "", Persistent: true,
		Description: "config file (default is $HOME/cli.yaml)",
	}
}

func TestConfigErrors(t *testing.T) {
	viper.Reset()
	a := NewWithT(t)
	a.Expect(cli.ViperAddArgument(newCmd(), configArgument())).To(Succeed())

	testCases := [][]string{
		{"noextension", `ConfigError (path=noextension): open noextension: no such file or directory`},
		{"./mymissingfile.yaml", `ConfigError (path=./mymissingfile.yaml): open ./mymissingfile.yaml: no such file or directory`},
		{"./config.weirdext", `ConfigError (path=./config.weirdext): Unsupported Config Type "weirdext"`},
		{"file://config.yaml", `ConfigError (path=config.yaml): open config.yaml: no such file or directory`},
		{"f://random/protocol.json", `ConfigError (path=f://random/protocol.json): ConfigNotSupportedProtocolError (protocol=f)`},
	}

	for _, test := range testCases {
		t.Run(test[0], func(t *testing.T) {
			a := NewWithT(t)
			viper.Set("config", test[0])
			err := cli.ViperConfig("", "cli")
			a.Expect(errs.Type(err)).To(Equal(errs.Type(&cli.ConfigError{})))
			a.Expect(err).To(MatchError(test[1]))
		})
	}
}

func TestArgumentErrors(t *testing.T) {
	a := NewWithT(t)

	err := cli.ViperAddArgument(nil, configArgument())
	a.Expect(errs.Type(err)).To(Equal(errs.Type(&cli.EmptyCmdArgumentError{})))
	a.Expect(err).To(MatchError("EmptyCmdArgumentError"))

	err = cli.ViperAddArguments(nil, []cli.Argument{configArgument()})
	a.Expect(errs.Type(err)).To(Equal(errs.Type(&cli.EmptyCmdArgumentError{})))

	noDefault := configArgument()
	noDefault.Default = nil
	err = cli.ViperAddArgument(newCmd(), noDefault)
	a.Expect(err).To(MatchError("NoDefaultSetError (name=config)"))

	err = cli.ViperAddArgument(newCmd(), cli.Argument{Name: "ratio", Type: "float", Default: 0.5})
	a.Expect(err).To(MatchError("UnsupportedArgTypeError (name=ratio type=float)"))
}

func TestConfigRead(t *testing.T) {
	viper.Reset()
	a := NewWithT(t)
	cmd := newCmd()

	a.Expect(cli.ViperAddArgument(cmd, configArgument())).To(Succeed())
	a.Expect(cli.ViperAddArguments(
		cmd,
		[]cli.Argument{
			{
				Name: "string", Type: cli.ArgTypeString,
				Default: "", LookupKey: "string",
				Description: "A string",
			},
			{
				Name: "boolean", Type: cli.ArgTypeBool,
				Default: false, LookupKey: "boolean",
				Description: "A bool",
			},
			{
				Name: "number", Type: cli.ArgTypeInt,
				Default: 8080, LookupKey: "number",
				Description: "An int",
			},
			{
				Name: "array", Type: cli.ArgTypeStringSlice,
				Default: []string{}, LookupKey: "array",
				Description: "A string array",
			},
		},
	)).To(Succeed())

	viper.Set("config", "file://./testdata/cli.yaml")
	a.Expect(cli.ViperConfig("", "cli")).To(Succeed())

	expected := map[string]interface{}{
		"string":  "Here is a string",
		"boolean": true,
		"number":  12,
		"array":   []interface{}{"one", "two", "three"},
		"spring.cloud.config.server.bindings.git-auth.enable": false,
	}
	for k, v := range expected {
		if diff := cmp.Diff(v, viper.Get(k)); diff != "" {
			t.Errorf("unexpected value for %s (-want +got):\n%s", k, diff)
		}
	}
}

func TestEnvironmentOverride(t *testing.T) {
	viper.Reset()
	a := NewWithT(t)

	const env = "SPRING_CLOUD_CONFIG_SERVER_BINDINGS_ENCRYPT_KEY_ENABLE"
	a.Expect(os.Setenv(env, "false")).To(Succeed())
	defer os.Unsetenv(env)

	a.Expect(cli.ViperConfig("", "does-not-exist")).To(Succeed())

	key := "spring.cloud.config.server.bindings.encrypt-key.enable"
	a.Expect(viper.IsSet(key)).To(BeTrue())
	a.Expect(viper.GetBool(key)).To(BeFalse())
}
